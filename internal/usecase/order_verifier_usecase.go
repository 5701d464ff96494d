package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/infrastructure/metrics"
)

const DefaultVerifyTimeout = 5 * time.Second

// VerifyReason names why a webhook call was authorized or rejected.
type VerifyReason string

const (
	ReasonVerified          VerifyReason = "verified"
	ReasonTransportFailure  VerifyReason = "transport-failure"
	ReasonRemoteError       VerifyReason = "remote-error"
	ReasonOrderNotFound     VerifyReason = "order-not-found"
	ReasonUnexpectedShape   VerifyReason = "unexpected-response-shape"
	ReasonVerifyUnavailable VerifyReason = "verify-unavailable"
)

// Answer messages ("em") of the webhook endpoint. The platform dashboard
// shows them to the creator verbatim.
const (
	MessageSuccess             = "success"
	MessageBotNotFound         = "bot not found"
	MessageBotNotConnected     = "bot not connected"
	MessageParseFailed         = "parse data failed"
	MessageVerifyRequestFailed = "Webhook data request failed when verify"
	MessageOrderListEmpty      = "order list is empty"
	MessageOrderNotFound       = "order not found when verify"
	MessageUnexpectedResponse  = "unexpected verify response"
	MessageVerifyUnavailable   = "verify unavailable for hook bot"
)

// Verdict is the outcome of one order verification. The diagnostic fields
// are only filled for rejections and only when the platform sent them.
type Verdict struct {
	Authorized bool
	Reason     VerifyReason
	Message    string
	Detail     string
	StatusCode int
	Code       int
	Explain    string
	Debug      string
	Body       []byte
}

// IOrderVerifier checks a pushed order against the query side of the API.
type IOrderVerifier interface {
	Verify(ctx context.Context, cred entities.BotCredential, tradeNo string) Verdict
}

// OrderVerifier authorizes a pushed order only when query-order returns an
// entry with the same trade number. It never retries.
type OrderVerifier struct {
	api     IAfdianAPIUseCase
	timeout time.Duration
}

var _ IOrderVerifier = (*OrderVerifier)(nil)

func NewOrderVerifier(api IAfdianAPIUseCase, timeout time.Duration) *OrderVerifier {
	if timeout <= 0 {
		timeout = DefaultVerifyTimeout
	}
	return &OrderVerifier{api: api, timeout: timeout}
}

func (v *OrderVerifier) Verify(ctx context.Context, cred entities.BotCredential, tradeNo string) Verdict {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	verdict := v.verify(ctx, cred, tradeNo)
	metrics.VerificationDuration.WithLabelValues(string(verdict.Reason)).Observe(time.Since(start).Seconds())
	return verdict
}

func (v *OrderVerifier) verify(ctx context.Context, cred entities.BotCredential, tradeNo string) Verdict {
	resp, err := v.api.QueryOrderByTradeNo(ctx, cred, tradeNo)
	if err != nil {
		return verdictFromError(err)
	}

	if len(resp.Data.List) == 0 {
		return Verdict{
			Reason:  ReasonOrderNotFound,
			Message: MessageOrderListEmpty,
			Detail:  "query-order returned an empty list",
		}
	}
	if _, ok := resp.Data.Find(tradeNo); !ok {
		return Verdict{
			Reason:  ReasonOrderNotFound,
			Message: MessageOrderNotFound,
			Detail:  "no entry with out_trade_no " + tradeNo,
		}
	}
	return Verdict{Authorized: true, Reason: ReasonVerified, Message: MessageSuccess}
}

func verdictFromError(err error) Verdict {
	var (
		failed   *afdian.ActionFailed
		parseErr *afdian.ParseError
	)
	switch {
	case errors.Is(err, ErrHookBotNoToken):
		return Verdict{Reason: ReasonVerifyUnavailable, Message: MessageVerifyUnavailable, Detail: err.Error()}
	case errors.As(err, &failed) && failed.StatusCode == http.StatusOK:
		return Verdict{
			Reason:     ReasonRemoteError,
			Message:    MessageVerifyRequestFailed,
			Detail:     err.Error(),
			StatusCode: failed.StatusCode,
			Code:       failed.Code,
			Explain:    failed.Explain,
			Debug:      failed.Debug,
			Body:       failed.Body,
		}
	case errors.As(err, &failed):
		return Verdict{
			Reason:     ReasonTransportFailure,
			Message:    MessageVerifyRequestFailed,
			Detail:     err.Error(),
			StatusCode: failed.StatusCode,
			Body:       failed.Body,
		}
	case errors.As(err, &parseErr):
		return Verdict{Reason: ReasonUnexpectedShape, Message: MessageUnexpectedResponse, Detail: err.Error(), Body: parseErr.Body}
	case errors.Is(err, ErrUnexpectedResponse):
		return Verdict{Reason: ReasonUnexpectedShape, Message: MessageUnexpectedResponse, Detail: err.Error()}
	default:
		return Verdict{Reason: ReasonTransportFailure, Message: MessageVerifyRequestFailed, Detail: err.Error()}
	}
}
