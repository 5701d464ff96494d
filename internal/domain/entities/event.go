package entities

import "fmt"

// TestOrderTradeNo is the trade number afdian uses when the developer presses
// "send test" in the dashboard. It never exists on the query side.
const TestOrderTradeNo = "202106232138371083454010626"

// WebhookData is the data node of an order notification.
type WebhookData struct {
	Type  string `json:"type,omitempty"`
	Order *Order `json:"order" validate:"required"`
}

// OrderNotifyEvent is built once per inbound webhook call from its JSON body.
type OrderNotifyEvent struct {
	EC   *int         `json:"ec" validate:"required"`
	EM   *string      `json:"em" validate:"required"`
	Data *WebhookData `json:"data" validate:"required"`
}

func (e OrderNotifyEvent) Type() string {
	return "notice"
}

func (e OrderNotifyEvent) EventName() string {
	return "order_notify"
}

func (e OrderNotifyEvent) OutTradeNo() string {
	if e.Data == nil || e.Data.Order == nil {
		return ""
	}
	return e.Data.Order.OutTradeNo
}

// UserID returns the sponsor's private id, which is also the session id.
func (e OrderNotifyEvent) UserID() string {
	if e.Data == nil || e.Data.Order == nil {
		return ""
	}
	return e.Data.Order.UserPrivateID
}

func (e OrderNotifyEvent) IsTestOrder() bool {
	return e.OutTradeNo() == TestOrderTradeNo
}

func (e OrderNotifyEvent) Description() string {
	return fmt.Sprintf("Order %s from user @%s", e.OutTradeNo(), e.UserID())
}
