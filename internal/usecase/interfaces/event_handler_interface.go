package interfaces

import (
	"context"

	"afdian_adapter/internal/domain/entities"
)

// IEventHandler is the application side of an authorized order notification.
type IEventHandler interface {
	HandleEvent(ctx context.Context, bot *entities.Bot, event entities.OrderNotifyEvent) error
}

// IErrorReporter receives failures of detached event tasks, which have no
// caller to return them to.
type IErrorReporter interface {
	Report(ctx context.Context, err error, fields map[string]any)
}

// IEventDispatcher hands an authorized event to a detached processing task
// and returns its task id without waiting for it.
type IEventDispatcher interface {
	Submit(ctx context.Context, bot *entities.Bot, event entities.OrderNotifyEvent) string
}
