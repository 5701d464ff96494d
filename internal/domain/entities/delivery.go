package entities

import "time"

// DeliveryDecision is the outcome of one inbound webhook call.
type DeliveryDecision string

const (
	DeliveryAccepted DeliveryDecision = "accepted"
	DeliveryRejected DeliveryDecision = "rejected"
)

// WebhookDelivery is the audit record kept for every webhook call that
// reached the verification pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Only the decision is kept, the order payload is not persisted.
type WebhookDelivery struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	OutTradeNo string           `json:"out_trade_no"`
	Decision   DeliveryDecision `json:"decision"`
	Reason     string           `json:"reason,omitempty"`
	Detail     string           `json:"detail,omitempty"`
	ReceivedAt time.Time        `json:"received_at"`
}
