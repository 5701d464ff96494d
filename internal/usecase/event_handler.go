package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase/interfaces"
)

// LoggingEventHandler is the default event handler: it logs the order.
type LoggingEventHandler struct {
	logger logrus.FieldLogger
}

var _ interfaces.IEventHandler = (*LoggingEventHandler)(nil)

func NewLoggingEventHandler(logger logrus.FieldLogger) *LoggingEventHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingEventHandler{logger: logger}
}

func (h *LoggingEventHandler) HandleEvent(_ context.Context, bot *entities.Bot, event entities.OrderNotifyEvent) error {
	order := event.Data.Order
	fields := logrus.Fields{
		"bot":          bot.SelfID(),
		"out_trade_no": order.OutTradeNo,
		"plan_id":      order.Plan(),
		"status":       order.StatusCode(),
		"sale_plan":    order.IsSalePlan(),
	}
	if order.Month != nil {
		fields["month"] = *order.Month
	}
	if total, err := order.TotalAmountDecimal(); err == nil {
		fields["total_amount"] = total.StringFixed(2)
	}
	if show, err := order.ShowAmountDecimal(); err == nil {
		fields["show_amount"] = show.StringFixed(2)
	}
	if discount, err := order.DiscountDecimal(); err == nil && !discount.IsZero() {
		fields["discount"] = discount.StringFixed(2)
	}
	if order.Remark != "" {
		fields["remark"] = order.Remark
	}
	h.logger.WithFields(fields).Info(event.Description())
	return nil
}

// LoggingErrorReporter reports task failures to the log.
type LoggingErrorReporter struct {
	logger logrus.FieldLogger
}

var _ interfaces.IErrorReporter = (*LoggingErrorReporter)(nil)

func NewLoggingErrorReporter(logger logrus.FieldLogger) *LoggingErrorReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LoggingErrorReporter{logger: logger}
}

func (r *LoggingErrorReporter) Report(_ context.Context, err error, fields map[string]any) {
	r.logger.WithFields(logrus.Fields(fields)).WithError(err).Error("[afdian][dispatch] event task failed")
}
