package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/usecase/interfaces"
)

const (
	defaultClientTimeout     = 10 * time.Second
	defaultResponseBodyLimit = int64(4 << 20) // 4 MiB
	userAgent                = "afdian-adapter/1.0"
)

var ErrResponseTooLarge = errors.New("response body exceeds limit")

// AfdianClient sends signed requests to the afdian open API.
type AfdianClient struct {
	httpClient           *http.Client
	MaxResponseBodyBytes int64
	logger               logrus.FieldLogger
}

var _ interfaces.IPlatformClient = (*AfdianClient)(nil)

func NewAfdianClient(timeout time.Duration, logger logrus.FieldLogger) *AfdianClient {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &AfdianClient{
		httpClient:           &http.Client{Timeout: timeout},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
		logger:               logger,
	}
}

func (c *AfdianClient) Do(ctx context.Context, req afdian.SignedRequest) (afdian.RawResponse, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return afdian.RawResponse{}, fmt.Errorf("%w: build %s request: %w", afdian.ErrNetwork, req.Endpoint, err)
	}

	log := c.logger.WithFields(logrus.Fields{
		"endpoint": req.Endpoint,
		"method":   req.Method,
		"user_id":  req.UserID,
	})
	log.Debug("[afdian][client] sending request")

	start := time.Now()
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("[afdian][client] request failed")
		return afdian.RawResponse{}, fmt.Errorf("%w: %s %s: %w", afdian.ErrNetwork, req.Method, req.Endpoint, err)
	}
	defer httpRes.Body.Close()

	limit := c.MaxResponseBodyBytes
	if limit <= 0 {
		limit = defaultResponseBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(httpRes.Body, limit+1))
	if err != nil {
		return afdian.RawResponse{}, fmt.Errorf("%w: read %s response: %w", afdian.ErrNetwork, req.Endpoint, err)
	}
	if int64(len(body)) > limit {
		return afdian.RawResponse{}, fmt.Errorf("%w: %s: %w", afdian.ErrNetwork, req.Endpoint, ErrResponseTooLarge)
	}

	log.WithFields(logrus.Fields{
		"status":      httpRes.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("[afdian][client] response received")

	return afdian.RawResponse{StatusCode: httpRes.StatusCode, Body: body}, nil
}

func (c *AfdianClient) newRequest(ctx context.Context, req afdian.SignedRequest) (*http.Request, error) {
	if req.Method == http.MethodGet {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
		if err != nil {
			return nil, err
		}
		httpReq.URL.RawQuery = req.Query().Encode()
		httpReq.Header.Set("User-Agent", userAgent)
		return httpReq, nil
	}

	payload, err := json.Marshal(req.Payload())
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	return httpReq, nil
}
