package interfaces

import (
	"context"

	"afdian_adapter/internal/domain/entities"
)

// IDeliveryRepository keeps the webhook delivery audit trail.
type IDeliveryRepository interface {
	Record(ctx context.Context, d entities.WebhookDelivery) error
	ListByUserID(ctx context.Context, userID string) ([]entities.WebhookDelivery, error)
}
