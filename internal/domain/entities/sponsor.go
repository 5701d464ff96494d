package entities

import "encoding/json"

// SponsorPlan is a plan a sponsor has paid for.
type SponsorPlan struct {
	PlanID         string            `json:"plan_id" validate:"required"`
	Rank           int               `json:"rank"`
	UserID         string            `json:"user_id"`
	Status         int               `json:"status"`
	Name           *string           `json:"name" validate:"required"`
	Pic            string            `json:"pic"`
	Desc           string            `json:"desc"`
	Price          *string           `json:"price" validate:"required"`
	UpdateTime     int64             `json:"update_time"`
	PayMonth       int               `json:"pay_month"`
	ShowPrice      string            `json:"show_price"`
	Independent    int               `json:"independent"`
	Permanent      int               `json:"permanent"`
	CanBuyHide     int               `json:"can_buy_hide"`
	NeedAddress    int               `json:"need_address"`
	ProductType    int               `json:"product_type"`
	SaleLimitCount int               `json:"sale_limit_count"`
	NeedInviteCode bool              `json:"need_invite_code"`
	ExpireTime     int64             `json:"expire_time"`
	SkuProcessed   []json.RawMessage `json:"sku_processed"`
	RankType       int               `json:"rankType"`
}

type Timing struct {
	TimingOn  int64 `json:"timing_on"`
	TimingOff int64 `json:"timing_off"`
}

// CurrentPlan is the sponsor's current plan. A node carrying only an empty
// name means the sponsor has no plan.
type CurrentPlan struct {
	CanAliAgreement      *int              `json:"can_ali_agreement,omitempty"`
	PlanID               string            `json:"plan_id,omitempty"`
	Rank                 *int              `json:"rank,omitempty"`
	UserID               string            `json:"user_id,omitempty"`
	Status               *int              `json:"status,omitempty"`
	Name                 *string           `json:"name" validate:"required"`
	Pic                  string            `json:"pic,omitempty"`
	Desc                 string            `json:"desc,omitempty"`
	Price                string            `json:"price,omitempty"`
	UpdateTime           *int64            `json:"update_time,omitempty"`
	Timing               *Timing           `json:"timing,omitempty"`
	PayMonth             *int              `json:"pay_month,omitempty"`
	ShowPrice            string            `json:"show_price,omitempty"`
	ShowPriceAfterAdjust string            `json:"show_price_after_adjust,omitempty"`
	HasCoupon            *int              `json:"has_coupon,omitempty"`
	Coupon               []json.RawMessage `json:"coupon,omitempty"`
	FavorablePrice       *int              `json:"favorable_price,omitempty"`
	Independent          *int              `json:"independent,omitempty"`
	Permanent            *int              `json:"permanent,omitempty"`
	CanBuyHide           *int              `json:"can_buy_hide,omitempty"`
	NeedAddress          *int              `json:"need_address,omitempty"`
	ProductType          *int              `json:"product_type,omitempty"`
	SaleLimitCount       *int              `json:"sale_limit_count,omitempty"`
	NeedInviteCode       *bool             `json:"need_invite_code,omitempty"`
	BundleStock          *int              `json:"bundle_stock,omitempty"`
	BundleSkuSelectCount *int              `json:"bundle_sku_select_count,omitempty"`
	Config               map[string]any    `json:"config,omitempty"`
	HasPlanConfig        *int              `json:"has_plan_config,omitempty"`
	ShippingFeeInfo      []json.RawMessage `json:"shipping_fee_info,omitempty"`
	ExpireTime           *int64            `json:"expire_time,omitempty"`
	SkuProcessed         []json.RawMessage `json:"sku_processed,omitempty"`
	RankType             *int              `json:"rankType,omitempty"`
}

func (p CurrentPlan) IsEmpty() bool {
	return p.Name == nil || (*p.Name == "" && p.PlanID == "")
}

type User struct {
	UserID string  `json:"user_id" validate:"required"`
	Name   *string `json:"name" validate:"required"`
	Avatar *string `json:"avatar" validate:"required"`
}

// Sponsor is one entry of the query-sponsor list.
type Sponsor struct {
	SponsorPlans []SponsorPlan `json:"sponsor_plans" validate:"required,dive"`
	CurrentPlan  *CurrentPlan  `json:"current_plan" validate:"required"`
	// AllSumAmount is the pre-discount total; redeem codes inflate it.
	AllSumAmount *string `json:"all_sum_amount" validate:"required"`
	CreateTime   int64   `json:"create_time,omitempty"`
	FirstPayTime int64   `json:"first_pay_time,omitempty"`
	LastPayTime  *int64  `json:"last_pay_time" validate:"required"`
	User         *User   `json:"user" validate:"required"`
}
