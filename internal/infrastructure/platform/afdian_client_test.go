package platform

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func signed(t *testing.T, method, base string) afdian.SignedRequest {
	t.Helper()
	req, err := afdian.NewSignedRequest(method, base, afdian.EndpointQueryOrder,
		entities.BotCredential{UserID: "user_id1", Token: "token1"},
		map[string]any{"out_trade_no": "X1"}, time.Unix(1700000000, 0))
	require.NoError(t, err)
	return req
}

func TestAfdianClient_PostSendsSignedJSON(t *testing.T) {
	var got afdian.RequestEcho
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/open/query-order", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ec":200,"em":"ok"}`))
	}))
	defer srv.Close()

	c := NewAfdianClient(time.Second, quietLogger())
	res, err := c.Do(context.Background(), signed(t, http.MethodPost, srv.URL))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"ec":200,"em":"ok"}`, string(res.Body))
	assert.Equal(t, "user_id1", got.UserID)
	assert.Equal(t, `{"out_trade_no":"X1"}`, got.Params)
	assert.Equal(t, int64(1700000000), got.TS)
	assert.Equal(t, "f7204b9e3719b1371a5022cc422ce10e", got.Sign)
}

func TestAfdianClient_GetSendsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		assert.Equal(t, "user_id1", q.Get("user_id"))
		assert.Equal(t, `{"out_trade_no":"X1"}`, q.Get("params"))
		assert.Equal(t, "1700000000", q.Get("ts"))
		assert.Equal(t, "f7204b9e3719b1371a5022cc422ce10e", q.Get("sign"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewAfdianClient(time.Second, quietLogger())
	_, err := c.Do(context.Background(), signed(t, http.MethodGet, srv.URL))
	require.NoError(t, err)
}

func TestAfdianClient_NonOKStatusIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewAfdianClient(time.Second, quietLogger())
	res, err := c.Do(context.Background(), signed(t, http.MethodPost, srv.URL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.Equal(t, "upstream down", string(res.Body))
}

func TestAfdianClient_TransportErrorWrapsErrNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewAfdianClient(time.Second, quietLogger())
	_, err := c.Do(context.Background(), signed(t, http.MethodPost, base))
	require.Error(t, err)
	assert.True(t, errors.Is(err, afdian.ErrNetwork))
}

func TestAfdianClient_TimeoutWrapsErrNetwork(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewAfdianClient(5*time.Second, quietLogger())
	_, err := c.Do(ctx, signed(t, http.MethodPost, srv.URL))
	require.Error(t, err)
	assert.True(t, errors.Is(err, afdian.ErrNetwork))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestAfdianClient_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 64)))
	}))
	defer srv.Close()

	c := NewAfdianClient(time.Second, quietLogger())
	c.MaxResponseBodyBytes = 16
	_, err := c.Do(context.Background(), signed(t, http.MethodPost, srv.URL))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrResponseTooLarge))
}
