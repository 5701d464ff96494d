package entities

import (
	"github.com/shopspring/decimal"
)

// OrderStatusPaid is the only status afdian currently pushes ("交易成功").
const OrderStatusPaid = 2

const (
	ProductTypeSponsorPlan = 0
	ProductTypeSalePlan    = 1
)

// SkuDetail is one purchased model of a sale plan.
type SkuDetail struct {
	SkuID   string `json:"sku_id" validate:"required"`
	Count   *int   `json:"count" validate:"required"`
	Name    string `json:"name"`
	AlbumID string `json:"album_id,omitempty"`
	Pic     string `json:"pic,omitempty"`
	// Stock is sent either as a string or as a number.
	Stock  any    `json:"stock,omitempty"`
	PostID string `json:"post_id,omitempty"`
}

// Order is an afdian order as pushed by the webhook and returned by query-order.
//
// Required wire fields are pointers so that a missing field can be told apart
// from a zero value (month, status and product_type are legitimately 0).
// Orders are read-only once received.
type Order struct {
	OutTradeNo     string      `json:"out_trade_no" validate:"required"`
	CustomOrderID  string      `json:"custom_order_id,omitempty"`
	PlanTitle      string      `json:"plan_title,omitempty"`
	CreateTime     int64       `json:"create_time,omitempty"`
	UserPrivateID  string      `json:"user_private_id,omitempty"`
	UserID         *string     `json:"user_id" validate:"required"`
	PlanID         *string     `json:"plan_id" validate:"required"`
	Title          string      `json:"title,omitempty"`
	Month          *int        `json:"month" validate:"required"`
	TotalAmount    *string     `json:"total_amount" validate:"required"`
	ShowAmount     *string     `json:"show_amount" validate:"required"`
	Status         *int        `json:"status" validate:"required"`
	Remark         string      `json:"remark,omitempty"`
	RedeemID       string      `json:"redeem_id,omitempty"`
	ProductType    *int        `json:"product_type" validate:"required"`
	Discount       string      `json:"discount,omitempty"`
	SkuDetail      []SkuDetail `json:"sku_detail,omitempty" validate:"omitempty,dive"`
	AddressPerson  string      `json:"address_person,omitempty"`
	AddressPhone   string      `json:"address_phone,omitempty"`
	AddressAddress string      `json:"address_address,omitempty"`
}

func (o Order) Payer() string {
	if o.UserID == nil {
		return ""
	}
	return *o.UserID
}

func (o Order) Plan() string {
	if o.PlanID == nil {
		return ""
	}
	return *o.PlanID
}

func (o Order) StatusCode() int {
	if o.Status == nil {
		return 0
	}
	return *o.Status
}

func (o Order) IsPaid() bool {
	return o.StatusCode() == OrderStatusPaid
}

func (o Order) IsSalePlan() bool {
	return o.ProductType != nil && *o.ProductType == ProductTypeSalePlan
}

// TotalAmountDecimal is the amount actually paid; "0.00" when a redeem code was used.
func (o Order) TotalAmountDecimal() (decimal.Decimal, error) {
	return parseAmount(o.TotalAmount)
}

// ShowAmountDecimal is the displayed amount, before any discount.
func (o Order) ShowAmountDecimal() (decimal.Decimal, error) {
	return parseAmount(o.ShowAmount)
}

func (o Order) DiscountDecimal() (decimal.Decimal, error) {
	if o.Discount == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(o.Discount)
}

func parseAmount(v *string) (decimal.Decimal, error) {
	if v == nil || *v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*v)
}
