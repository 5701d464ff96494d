package response

import (
	"time"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase"
)

type BotResponse struct {
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
	Connected bool   `json:"connected"`
	UID       string `json:"uid,omitempty"`
}

func FromBotStatuses(statuses []usecase.BotStatus) []BotResponse {
	out := make([]BotResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, BotResponse{
			UserID:    s.UserID,
			Kind:      string(s.Kind),
			Connected: s.Connected,
			UID:       s.UID,
		})
	}
	return out
}

type PingResponse struct {
	UserID string `json:"user_id"`
	UID    string `json:"uid"`
}

func FromPing(userID string, p *afdian.PingResponse) PingResponse {
	res := PingResponse{UserID: userID}
	if p != nil && p.Data != nil && p.Data.UID != nil {
		res.UID = *p.Data.UID
	}
	return res
}

type OrderResponse struct {
	OutTradeNo    string `json:"out_trade_no"`
	UserID        string `json:"user_id"`
	UserPrivateID string `json:"user_private_id,omitempty"`
	PlanID        string `json:"plan_id"`
	Title         string `json:"title,omitempty"`
	Month         int    `json:"month"`
	Status        int    `json:"status"`
	SalePlan      bool   `json:"sale_plan"`
	TotalAmount   string `json:"total_amount"`
	ShowAmount    string `json:"show_amount"`
	Discount      string `json:"discount,omitempty"`
	Remark        string `json:"remark,omitempty"`
	CreateTime    int64  `json:"create_time,omitempty"`
}

// FromOrder renders amounts with two decimals; unparseable amounts are
// passed through as sent.
func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		OutTradeNo:    o.OutTradeNo,
		UserID:        o.Payer(),
		UserPrivateID: o.UserPrivateID,
		PlanID:        o.Plan(),
		Title:         o.Title,
		Status:        o.StatusCode(),
		SalePlan:      o.IsSalePlan(),
		Remark:        o.Remark,
		CreateTime:    o.CreateTime,
		Discount:      o.Discount,
	}
	if o.Month != nil {
		res.Month = *o.Month
	}
	if o.TotalAmount != nil {
		res.TotalAmount = *o.TotalAmount
	}
	if o.ShowAmount != nil {
		res.ShowAmount = *o.ShowAmount
	}
	if v, err := o.TotalAmountDecimal(); err == nil {
		res.TotalAmount = v.StringFixed(2)
	}
	if v, err := o.ShowAmountDecimal(); err == nil {
		res.ShowAmount = v.StringFixed(2)
	}
	return res
}

type OrderPageResponse struct {
	TotalCount int             `json:"total_count"`
	TotalPage  int             `json:"total_page"`
	Orders     []OrderResponse `json:"orders"`
}

func FromOrderPage(r *afdian.OrderResponse) OrderPageResponse {
	res := OrderPageResponse{Orders: []OrderResponse{}}
	if r == nil || r.Data == nil {
		return res
	}
	res.TotalCount = derefInt(r.Data.TotalCount)
	res.TotalPage = derefInt(r.Data.TotalPage)
	for _, o := range r.Data.List {
		res.Orders = append(res.Orders, FromOrder(o))
	}
	return res
}

type SponsorResponse struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar,omitempty"`
	AllSumAmount string `json:"all_sum_amount"`
	CurrentPlan  string `json:"current_plan,omitempty"`
	LastPayTime  int64  `json:"last_pay_time"`
}

type SponsorPageResponse struct {
	TotalCount int               `json:"total_count"`
	TotalPage  int               `json:"total_page"`
	Sponsors   []SponsorResponse `json:"sponsors"`
}

func FromSponsorPage(r *afdian.SponsorResponse) SponsorPageResponse {
	res := SponsorPageResponse{Sponsors: []SponsorResponse{}}
	if r == nil || r.Data == nil {
		return res
	}
	res.TotalCount = derefInt(r.Data.TotalCount)
	res.TotalPage = derefInt(r.Data.TotalPage)
	for _, s := range r.Data.List {
		item := SponsorResponse{}
		if s.User != nil {
			item.UserID = s.User.UserID
			item.Name = derefString(s.User.Name)
			item.Avatar = derefString(s.User.Avatar)
		}
		item.AllSumAmount = derefString(s.AllSumAmount)
		if s.CurrentPlan != nil && !s.CurrentPlan.IsEmpty() {
			item.CurrentPlan = derefString(s.CurrentPlan.Name)
		}
		if s.LastPayTime != nil {
			item.LastPayTime = *s.LastPayTime
		}
		res.Sponsors = append(res.Sponsors, item)
	}
	return res
}

type DeliveryResponse struct {
	ID         string    `json:"id"`
	OutTradeNo string    `json:"out_trade_no,omitempty"`
	Decision   string    `json:"decision"`
	Reason     string    `json:"reason,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

func FromDeliveries(ds []entities.WebhookDelivery) []DeliveryResponse {
	out := make([]DeliveryResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, DeliveryResponse{
			ID:         d.ID,
			OutTradeNo: d.OutTradeNo,
			Decision:   string(d.Decision),
			Reason:     d.Reason,
			Detail:     d.Detail,
			ReceivedAt: d.ReceivedAt,
		})
	}
	return out
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
