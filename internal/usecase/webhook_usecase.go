package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/infrastructure/metrics"
	"afdian_adapter/internal/usecase/interfaces"
)

// Reasons decided by the pipeline itself, before or after verification.
const (
	ReasonBotNotFound     VerifyReason = "bot-not-found"
	ReasonParseFailed     VerifyReason = "parse-failed"
	ReasonTestOrder       VerifyReason = "test-order"
	ReasonHookOnly        VerifyReason = "hook-only"
	ReasonBotNotConnected VerifyReason = "bot-not-connected"
	ReasonDispatchClosed  VerifyReason = "dispatch-closed"
)

const MessageDispatchClosed = "service shutting down"

// WebhookPolicy holds the switches of the webhook pipeline.
type WebhookPolicy struct {
	// HookOnlyBypass dispatches pushes for bots without a token unverified.
	HookOnlyBypass bool
	// AutoRegisterHookBots turns an unknown user id into a hook-only bot.
	AutoRegisterHookBots bool
}

// WebhookOutcome is the answer for one webhook call: the HTTP status and the
// {ec, em} body.
type WebhookOutcome struct {
	StatusCode int
	Code       int
	Message    string
	Reason     VerifyReason
	TaskID     string
}

// IWebhookUseCase turns one raw order push into an answer for the platform.
//
// Pipeline:
//   - resolve the bot from the route user id
//   - parse and validate the body
//   - skip verification for the dashboard test order and hook-only bots
//   - verify the order through query-order
//   - hand the event to a detached task
type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, userID string, body []byte) WebhookOutcome
}

type WebhookUseCase struct {
	bots       IBotConnector
	verifier   IOrderVerifier
	dispatcher interfaces.IEventDispatcher
	deliveries interfaces.IDeliveryRepository
	policy     WebhookPolicy
	validate   *validator.Validate
	logger     logrus.FieldLogger
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	bots IBotConnector,
	verifier IOrderVerifier,
	dispatcher interfaces.IEventDispatcher,
	deliveries interfaces.IDeliveryRepository,
	policy WebhookPolicy,
	logger logrus.FieldLogger,
) *WebhookUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &WebhookUseCase{
		bots:       bots,
		verifier:   verifier,
		dispatcher: dispatcher,
		deliveries: deliveries,
		policy:     policy,
		validate:   validator.New(),
		logger:     logger,
	}
}

func (u *WebhookUseCase) HandleNotification(ctx context.Context, userID string, body []byte) WebhookOutcome {
	log := u.logger.WithField("user_id", userID)

	cred, err := u.resolve(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("[afdian][webhook] unknown bot")
		metrics.WebhookDeliveriesTotal.WithLabelValues(string(entities.DeliveryRejected), string(ReasonBotNotFound)).Inc()
		return WebhookOutcome{StatusCode: http.StatusNotFound, Code: http.StatusNotFound, Message: MessageBotNotFound, Reason: ReasonBotNotFound}
	}

	event, err := u.parse(body)
	if err != nil {
		log.WithError(err).WithField("body", string(body)).Warn("[afdian][webhook] parse data failed")
		return u.conclude(ctx, userID, "", reject(http.StatusBadRequest, MessageParseFailed, ReasonParseFailed), err.Error())
	}

	tradeNo := event.OutTradeNo()
	log = log.WithField("out_trade_no", tradeNo)

	if event.IsTestOrder() {
		log.Info("[afdian][webhook] test order received, verification skipped")
		return u.dispatch(ctx, log, userID, event, ReasonTestOrder)
	}

	if !cred.HasToken() {
		if !u.policy.HookOnlyBypass {
			log.Warn("[afdian][webhook] hook-only bot cannot verify orders")
			return u.conclude(ctx, userID, tradeNo, reject(http.StatusBadRequest, MessageVerifyUnavailable, ReasonVerifyUnavailable), "")
		}
		log.Debug("[afdian][webhook] hook-only bot, verification skipped")
		return u.dispatch(ctx, log, userID, event, ReasonHookOnly)
	}

	verdict := u.verifier.Verify(ctx, cred, tradeNo)
	if !verdict.Authorized {
		log.WithFields(logrus.Fields{
			"reason":  verdict.Reason,
			"status":  verdict.StatusCode,
			"ec":      verdict.Code,
			"explain": verdict.Explain,
			"debug":   verdict.Debug,
			"body":    string(verdict.Body),
			"detail":  verdict.Detail,
		}).Warn("[afdian][webhook] verify rejected")
		detail := verdict.Detail
		if verdict.Explain != "" {
			detail = verdict.Explain
		}
		return u.conclude(ctx, userID, tradeNo, reject(http.StatusBadRequest, verdict.Message, verdict.Reason), detail)
	}

	return u.dispatch(ctx, log, userID, event, ReasonVerified)
}

func (u *WebhookUseCase) resolve(ctx context.Context, userID string) (entities.BotCredential, error) {
	cred, err := u.bots.Credential(userID)
	if err == nil || !errors.Is(err, ErrBotNotFound) || !u.policy.AutoRegisterHookBots {
		return cred, err
	}
	bot, err := u.bots.RegisterHookBot(ctx, userID)
	if err != nil {
		return entities.BotCredential{}, err
	}
	return bot.Credential, nil
}

func (u *WebhookUseCase) parse(body []byte) (entities.OrderNotifyEvent, error) {
	var event entities.OrderNotifyEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return entities.OrderNotifyEvent{}, err
	}
	if err := u.validate.Struct(event); err != nil {
		return entities.OrderNotifyEvent{}, err
	}
	return event, nil
}

// dispatch needs a live bot. A configured but unconnected bot at this point
// is a lifecycle bug, reported loudly instead of acknowledged.
func (u *WebhookUseCase) dispatch(ctx context.Context, log logrus.FieldLogger, userID string, event entities.OrderNotifyEvent, reason VerifyReason) WebhookOutcome {
	bot, err := u.bots.Bot(userID)
	if err != nil {
		log.WithError(err).Error("[afdian][webhook] authorized event for a bot that is not connected")
		return u.conclude(ctx, userID, event.OutTradeNo(), reject(http.StatusNotFound, MessageBotNotConnected, ReasonBotNotConnected), err.Error())
	}

	taskID := u.dispatcher.Submit(ctx, bot, event)
	if taskID == "" {
		// Not acknowledged, so afdian pushes it again later.
		log.WithField("reason", reason).Warn("[afdian][webhook] dispatcher closed, event not accepted")
		return u.conclude(ctx, userID, event.OutTradeNo(), reject(http.StatusServiceUnavailable, MessageDispatchClosed, ReasonDispatchClosed), "")
	}
	log.WithFields(logrus.Fields{"task_id": taskID, "reason": reason}).Info("[afdian][webhook] event dispatched")

	outcome := WebhookOutcome{
		StatusCode: http.StatusOK,
		Code:       http.StatusOK,
		Message:    MessageSuccess,
		Reason:     reason,
		TaskID:     taskID,
	}
	return u.conclude(ctx, userID, event.OutTradeNo(), outcome, "")
}

// conclude records the delivery and counts it. Recording failures are
// logged only; they never change the answer.
func (u *WebhookUseCase) conclude(ctx context.Context, userID, tradeNo string, outcome WebhookOutcome, detail string) WebhookOutcome {
	decision := entities.DeliveryRejected
	if outcome.StatusCode == http.StatusOK {
		decision = entities.DeliveryAccepted
	}
	metrics.WebhookDeliveriesTotal.WithLabelValues(string(decision), string(outcome.Reason)).Inc()

	if u.deliveries == nil {
		return outcome
	}
	delivery := entities.WebhookDelivery{
		ID:         uuid.NewString(),
		UserID:     userID,
		OutTradeNo: tradeNo,
		Decision:   decision,
		Reason:     string(outcome.Reason),
		Detail:     detail,
		ReceivedAt: time.Now().UTC(),
	}
	if err := u.deliveries.Record(ctx, delivery); err != nil {
		u.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":      userID,
			"out_trade_no": tradeNo,
		}).Warn("[afdian][webhook] delivery record failed")
	}
	return outcome
}

func reject(status int, message string, reason VerifyReason) WebhookOutcome {
	return WebhookOutcome{StatusCode: status, Code: status, Message: message, Reason: reason}
}
