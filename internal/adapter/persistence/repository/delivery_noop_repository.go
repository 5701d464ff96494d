package repository

import (
	"context"

	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase/interfaces"
)

// NoopDeliveryRepository is used when the delivery ledger is disabled.
type NoopDeliveryRepository struct{}

var _ interfaces.IDeliveryRepository = NoopDeliveryRepository{}

func (NoopDeliveryRepository) Record(context.Context, entities.WebhookDelivery) error {
	return nil
}

func (NoopDeliveryRepository) ListByUserID(context.Context, string) ([]entities.WebhookDelivery, error) {
	return []entities.WebhookDelivery{}, nil
}
