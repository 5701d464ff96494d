package response

import "afdian_adapter/internal/usecase"

// WebhookAck is the only body afdian gets back from a webhook call.
type WebhookAck struct {
	EC int    `json:"ec"`
	EM string `json:"em"`
}

func FromWebhookOutcome(o usecase.WebhookOutcome) WebhookAck {
	return WebhookAck{EC: o.Code, EM: o.Message}
}
