package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/infrastructure/metrics"
	"afdian_adapter/internal/usecase/interfaces"
)

var (
	ErrInvalidPage        = errors.New("page must be greater than zero")
	ErrInvalidPerPage     = errors.New("per_page must be between 1 and 100")
	ErrHookBotNoToken     = errors.New("hook-only bot has no api token")
	ErrEmptyTradeNo       = errors.New("out_trade_no is empty")
	ErrUnexpectedResponse = errors.New("unexpected api response shape")
)

const (
	pingProbeValue    = 333
	maxSponsorPerPage = 100
)

// APIOptions configures the outbound side of signed calls.
type APIOptions struct {
	APIBase string
	Method  string
	Timeout time.Duration
}

// IAfdianAPIUseCase exposes the afdian open API for one bot credential.
//
// Every call is signed with the credential token. Hook-only credentials are
// refused with ErrHookBotNoToken before anything is sent.
type IAfdianAPIUseCase interface {
	CallAPI(ctx context.Context, cred entities.BotCredential, endpoint string, params map[string]any) (afdian.Classified, error)
	Ping(ctx context.Context, cred entities.BotCredential) (*afdian.PingResponse, error)
	QueryOrderByPage(ctx context.Context, cred entities.BotCredential, page int) (*afdian.OrderResponse, error)
	QueryOrderByTradeNo(ctx context.Context, cred entities.BotCredential, tradeNo string) (*afdian.OrderResponse, error)
	QueryOrdersByTradeNos(ctx context.Context, cred entities.BotCredential, tradeNos []string) (*afdian.OrderResponse, error)
	QuerySponsor(ctx context.Context, cred entities.BotCredential, page, perPage int) (*afdian.SponsorResponse, error)
}

type AfdianAPIUseCase struct {
	client     interfaces.IPlatformClient
	classifier *afdian.ResponseClassifier
	opts       APIOptions
	now        func() time.Time
	logger     logrus.FieldLogger
}

var _ IAfdianAPIUseCase = (*AfdianAPIUseCase)(nil)

func NewAfdianAPIUseCase(client interfaces.IPlatformClient, opts APIOptions, logger logrus.FieldLogger) *AfdianAPIUseCase {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if opts.Method == "" {
		opts.Method = http.MethodPost
	}
	return &AfdianAPIUseCase{
		client:     client,
		classifier: afdian.NewResponseClassifier(),
		opts:       opts,
		now:        time.Now,
		logger:     logger,
	}
}

func (u *AfdianAPIUseCase) CallAPI(ctx context.Context, cred entities.BotCredential, endpoint string, params map[string]any) (afdian.Classified, error) {
	c, _, err := u.call(ctx, cred, endpoint, params)
	return c, err
}

func (u *AfdianAPIUseCase) Ping(ctx context.Context, cred entities.BotCredential) (*afdian.PingResponse, error) {
	c, err := u.callAs(ctx, cred, afdian.EndpointPing, map[string]any{"a": pingProbeValue}, afdian.KindPing)
	if err != nil {
		return nil, err
	}
	return c.Ping, nil
}

func (u *AfdianAPIUseCase) QueryOrderByPage(ctx context.Context, cred entities.BotCredential, page int) (*afdian.OrderResponse, error) {
	if page <= 0 {
		return nil, ErrInvalidPage
	}
	c, err := u.callAs(ctx, cred, afdian.EndpointQueryOrder, map[string]any{"page": page}, afdian.KindOrder)
	if err != nil {
		return nil, err
	}
	return c.Order, nil
}

func (u *AfdianAPIUseCase) QueryOrderByTradeNo(ctx context.Context, cred entities.BotCredential, tradeNo string) (*afdian.OrderResponse, error) {
	return u.QueryOrdersByTradeNos(ctx, cred, []string{tradeNo})
}

// QueryOrdersByTradeNos looks several orders up in one call; the platform
// takes them comma separated.
func (u *AfdianAPIUseCase) QueryOrdersByTradeNos(ctx context.Context, cred entities.BotCredential, tradeNos []string) (*afdian.OrderResponse, error) {
	cleaned := make([]string, 0, len(tradeNos))
	for _, no := range tradeNos {
		if no = strings.TrimSpace(no); no != "" {
			cleaned = append(cleaned, no)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyTradeNo
	}
	params := map[string]any{"out_trade_no": strings.Join(cleaned, ",")}
	c, err := u.callAs(ctx, cred, afdian.EndpointQueryOrder, params, afdian.KindOrder)
	if err != nil {
		return nil, err
	}
	return c.Order, nil
}

func (u *AfdianAPIUseCase) QuerySponsor(ctx context.Context, cred entities.BotCredential, page, perPage int) (*afdian.SponsorResponse, error) {
	if page <= 0 {
		return nil, ErrInvalidPage
	}
	if perPage < 1 || perPage > maxSponsorPerPage {
		return nil, ErrInvalidPerPage
	}
	params := map[string]any{"page": page, "per_page": perPage}
	c, err := u.callAs(ctx, cred, afdian.EndpointQuerySponsor, params, afdian.KindSponsor)
	if err != nil {
		return nil, err
	}
	return c.Sponsor, nil
}

// callAs performs a call and insists on one answer shape. An empty sponsor
// list is indistinguishable from an empty order list and is classified as
// an order page first, so the wanted shape is tried explicitly.
func (u *AfdianAPIUseCase) callAs(ctx context.Context, cred entities.BotCredential, endpoint string, params map[string]any, kind afdian.Kind) (afdian.Classified, error) {
	c, body, err := u.call(ctx, cred, endpoint, params)
	if err != nil {
		return afdian.Classified{}, err
	}
	if c.Kind == kind {
		return c, nil
	}
	if as, err := u.classifier.ClassifyAs(body, kind); err == nil {
		return as, nil
	}
	u.logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"expected": kind,
		"got":      c.Kind,
	}).Warn("[afdian][api] unexpected response shape")
	return afdian.Classified{}, fmt.Errorf("%w: expected %s, got %s", ErrUnexpectedResponse, kind, c.Kind)
}

func (u *AfdianAPIUseCase) call(ctx context.Context, cred entities.BotCredential, endpoint string, params map[string]any) (afdian.Classified, []byte, error) {
	name, err := afdian.NormalizeEndpoint(endpoint)
	if err != nil {
		return afdian.Classified{}, nil, err
	}
	if !cred.HasToken() {
		return afdian.Classified{}, nil, ErrHookBotNoToken
	}
	req, err := afdian.NewSignedRequest(u.opts.Method, u.opts.APIBase, name, cred, params, u.now())
	if err != nil {
		return afdian.Classified{}, nil, err
	}

	if u.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.Timeout)
		defer cancel()
	}

	log := u.logger.WithFields(logrus.Fields{"endpoint": name, "user_id": cred.UserID})
	start := time.Now()
	raw, err := u.client.Do(ctx, req)
	metrics.APICallDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APICallsTotal.WithLabelValues(name, "transport_error").Inc()
		log.WithError(err).Warn("[afdian][api] transport failure")
		return afdian.Classified{}, nil, err
	}

	if raw.StatusCode != http.StatusOK {
		metrics.APICallsTotal.WithLabelValues(name, "http_error").Inc()
		failed := u.actionFailed(name, raw)
		log.WithFields(logrus.Fields{"status": raw.StatusCode, "body": string(raw.Body)}).Warn("[afdian][api] unexpected http status")
		return afdian.Classified{}, raw.Body, failed
	}

	c, err := u.classifier.Classify(raw.Body)
	if err != nil {
		metrics.APICallsTotal.WithLabelValues(name, "parse_error").Inc()
		log.WithError(err).WithField("body", string(raw.Body)).Warn("[afdian][api] unparseable response")
		return afdian.Classified{}, raw.Body, err
	}

	if !c.Envelope.OK() || c.Kind == afdian.KindWrong || c.Kind == afdian.KindTimestampExpired {
		metrics.APICallsTotal.WithLabelValues(name, "remote_error").Inc()
		failed := u.actionFailed(name, raw)
		log.WithFields(logrus.Fields{
			"ec":      failed.Code,
			"em":      failed.Message,
			"explain": failed.Explain,
			"debug":   failed.Debug,
		}).Warn("[afdian][api] remote error")
		return c, raw.Body, failed
	}

	metrics.APICallsTotal.WithLabelValues(name, "ok").Inc()
	return c, raw.Body, nil
}

// actionFailed collects whatever error fields the body carries. Error
// bodies also satisfy the timestamp shape, so the debug node is read through
// an explicit Wrong decode.
func (u *AfdianAPIUseCase) actionFailed(endpoint string, raw afdian.RawResponse) *afdian.ActionFailed {
	failed := &afdian.ActionFailed{
		Endpoint:   endpoint,
		StatusCode: raw.StatusCode,
		Body:       raw.Body,
	}
	if c, err := u.classifier.Classify(raw.Body); err == nil {
		failed.Code = c.Code()
		failed.Message = c.Message()
		failed.Explain = c.Explain()
	}
	if w, err := u.classifier.ClassifyAs(raw.Body, afdian.KindWrong); err == nil {
		failed.Debug = w.Wrong.DebugString()
		if failed.Explain == "" {
			failed.Explain = w.Wrong.Explain()
		}
	}
	return failed
}
