package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/infrastructure/metrics"
	"afdian_adapter/internal/usecase/interfaces"
)

// EventDispatcher runs each authorized event on its own goroutine. The
// webhook answer never waits for it; failures and panics go to the
// error reporter.
type EventDispatcher struct {
	handler  interfaces.IEventHandler
	reporter interfaces.IErrorReporter
	logger   logrus.FieldLogger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ interfaces.IEventDispatcher = (*EventDispatcher)(nil)

func NewEventDispatcher(handler interfaces.IEventHandler, reporter interfaces.IErrorReporter, logger logrus.FieldLogger) *EventDispatcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if reporter == nil {
		reporter = NewLoggingErrorReporter(logger)
	}
	return &EventDispatcher{handler: handler, reporter: reporter, logger: logger}
}

// Submit starts the task and returns its id. ctx only contributes values;
// its cancellation does not reach the task. After Shutdown nothing is
// started and the id is empty.
func (d *EventDispatcher) Submit(ctx context.Context, bot *entities.Bot, event entities.OrderNotifyEvent) string {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.WithField("out_trade_no", event.OutTradeNo()).Warn("[afdian][dispatch] dispatcher closed, event dropped")
		metrics.EventTasksTotal.WithLabelValues("dropped").Inc()
		return ""
	}
	d.wg.Add(1)
	d.mu.Unlock()

	taskID := uuid.NewString()
	metrics.EventTasksInFlight.Inc()
	go d.run(context.WithoutCancel(ctx), taskID, bot, event)
	return taskID
}

func (d *EventDispatcher) run(ctx context.Context, taskID string, bot *entities.Bot, event entities.OrderNotifyEvent) {
	defer d.wg.Done()
	defer metrics.EventTasksInFlight.Dec()

	fields := map[string]any{
		"task_id":      taskID,
		"bot":          bot.SelfID(),
		"event":        event.EventName(),
		"out_trade_no": event.OutTradeNo(),
	}
	defer func() {
		if r := recover(); r != nil {
			metrics.EventTasksTotal.WithLabelValues("panic").Inc()
			d.reporter.Report(ctx, fmt.Errorf("event task panic: %v", r), fields)
		}
	}()

	if err := d.handler.HandleEvent(ctx, bot, event); err != nil {
		metrics.EventTasksTotal.WithLabelValues("error").Inc()
		d.reporter.Report(ctx, err, fields)
		return
	}
	metrics.EventTasksTotal.WithLabelValues("ok").Inc()
}

// Shutdown stops accepting events and waits for running tasks until ctx ends.
func (d *EventDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
