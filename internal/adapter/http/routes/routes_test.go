package routes

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"

	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/infrastructure/config"
	mock_interfaces "afdian_adapter/internal/usecase/interfaces/mocks"
)

const (
	pingBody  = `{"ec":200,"em":"","data":{"uid":"uid-1"}}`
	wrongBody = `{"ec":400005,"em":"sign validation failed","data":{"explain":"sign mismatch, check token","debug":{"kv_string":"params{\"out_trade_no\":\"X1\"}ts1700000000user_iduser_id1"}}}`
)

func orderJSON(tradeNo string) string {
	return fmt.Sprintf(`{"out_trade_no":%q,"user_id":"sponsor1","plan_id":"plan1","month":1,"total_amount":"5.00","show_amount":"5.00","status":2,"product_type":0,"sku_detail":[]}`, tradeNo)
}

func notifyBody(tradeNo string) string {
	return fmt.Sprintf(`{"ec":200,"em":"ok","data":{"type":"order","order":%s}}`, orderJSON(tradeNo))
}

func orderListBody(tradeNos ...string) []byte {
	items := make([]string, 0, len(tradeNos))
	for _, no := range tradeNos {
		items = append(items, orderJSON(no))
	}
	return []byte(fmt.Sprintf(`{"ec":200,"em":"ok","data":{"list":[%s],"total_count":%d,"total_page":1}}`, strings.Join(items, ","), len(items)))
}

func testConfig(bots ...entities.BotCredential) *config.Config {
	return &config.Config{
		APIBase:   "https://afdian.test",
		APIMethod: http.MethodPost,
		Bots:      bots,
		Webhook: config.WebhookConfig{
			HookOnlyBypass: true,
			VerifyTimeout:  time.Second,
			RequestTimeout: time.Second,
		},
	}
}

type e2eFixture struct {
	app     *App
	client  *mock_interfaces.MockIPlatformClient
	handler *mock_interfaces.MockIEventHandler
	hook    *test.Hook
}

// newE2EFixture answers ping with success and query-order with orderAnswer.
func newE2EFixture(t *testing.T, ctrl *gomock.Controller, cfg *config.Config, orderAnswer []byte) *e2eFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	f := &e2eFixture{
		client:  mock_interfaces.NewMockIPlatformClient(ctrl),
		handler: mock_interfaces.NewMockIEventHandler(ctrl),
		hook:    hook,
	}
	f.client.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req afdian.SignedRequest) (afdian.RawResponse, error) {
			if req.Endpoint == "ping" {
				return afdian.RawResponse{StatusCode: http.StatusOK, Body: []byte(pingBody)}, nil
			}
			return afdian.RawResponse{StatusCode: http.StatusOK, Body: orderAnswer}, nil
		}).AnyTimes()

	app, err := NewApp(context.Background(), cfg, Options{
		Client:  f.client,
		Handler: f.handler,
		Logger:  log,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f.app = app
	return f
}

func (f *e2eFixture) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.app.Router.ServeHTTP(w, req)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := f.app.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	return w
}

func expectAck(t *testing.T, w *httptest.ResponseRecorder, status int, ack string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	if got := strings.TrimSpace(w.Body.String()); got != ack {
		t.Fatalf("expected body %s, got %s", ack, got)
	}
}

var tokenBot = entities.BotCredential{UserID: "user_id1", Token: "token1"}

func TestWebhook_VerifiedOrderIsDispatchedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), orderListBody("X0", "X1"))

	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bot *entities.Bot, event entities.OrderNotifyEvent) error {
			if bot.SelfID() != "user_id1" || event.OutTradeNo() != "X1" {
				t.Errorf("unexpected event %s for bot %s", event.OutTradeNo(), bot.SelfID())
			}
			return nil
		}).Times(1)

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody("X1"))
	expectAck(t, w, http.StatusOK, `{"ec":200,"em":"success"}`)
}

func TestWebhook_EmptyOrderListIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), orderListBody())
	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody("X1"))
	expectAck(t, w, http.StatusBadRequest, `{"ec":400,"em":"order list is empty"}`)
}

func TestWebhook_WrongEnvelopeIsRejectedWithDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), []byte(wrongBody))
	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody("X1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var found *logrus.Entry
	for _, entry := range f.hook.AllEntries() {
		if entry.Message == "[afdian][webhook] verify rejected" {
			found = entry
		}
	}
	if found == nil {
		t.Fatalf("expected a rejection log entry")
	}
	if found.Data["explain"] != "sign mismatch, check token" {
		t.Fatalf("missing explain in %v", found.Data)
	}
	if debug, _ := found.Data["debug"].(string); !strings.Contains(debug, "user_iduser_id1") {
		t.Fatalf("missing debug in %v", found.Data)
	}
}

func TestWebhook_UnknownBot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), orderListBody("X1"))
	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := f.post(t, "/afdian/webhooks/nobody", notifyBody("X1"))
	expectAck(t, w, http.StatusNotFound, `{"ec":404,"em":"bot not found"}`)
}

func TestWebhook_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gin.SetMode(gin.TestMode)

	client := mock_interfaces.NewMockIPlatformClient(ctrl)
	handler := mock_interfaces.NewMockIEventHandler(ctrl)
	// Only the startup ping may reach the platform.
	client.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req afdian.SignedRequest) (afdian.RawResponse, error) {
			if req.Endpoint != "ping" {
				t.Errorf("unexpected call to %s", req.Endpoint)
			}
			return afdian.RawResponse{StatusCode: http.StatusOK, Body: []byte(pingBody)}, nil
		}).Times(1)
	handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	log, _ := test.NewNullLogger()
	app, err := NewApp(context.Background(), testConfig(tokenBot), Options{Client: client, Handler: handler, Logger: log})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f := &e2eFixture{app: app}

	w := f.post(t, "/afdian/webhooks/user_id1", `{"ec":200,"em":"ok","data":{"type":"order","order":`)
	expectAck(t, w, http.StatusBadRequest, `{"ec":400,"em":"parse data failed"}`)
}

func TestWebhook_TestOrderSkipsVerification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), []byte(wrongBody))
	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody(entities.TestOrderTradeNo))
	expectAck(t, w, http.StatusOK, `{"ec":200,"em":"success"}`)
}

func TestWebhook_HookOnlyBotNeverCallsPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gin.SetMode(gin.TestMode)

	client := mock_interfaces.NewMockIPlatformClient(ctrl)
	client.EXPECT().Do(gomock.Any(), gomock.Any()).Times(0)
	handler := mock_interfaces.NewMockIEventHandler(ctrl)
	handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	log, _ := test.NewNullLogger()
	cfg := testConfig(entities.BotCredential{UserID: "hook_user"})
	app, err := NewApp(context.Background(), cfg, Options{Client: client, Handler: handler, Logger: log})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f := &e2eFixture{app: app}

	w := f.post(t, "/afdian/webhooks/hook_user", notifyBody("H1"))
	expectAck(t, w, http.StatusOK, `{"ec":200,"em":"success"}`)
}

func TestWebhook_SecretPathSegment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := testConfig(tokenBot)
	cfg.HookSecret = "s3cret"
	f := newE2EFixture(t, ctrl, cfg, orderListBody("X1"))
	f.handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/afdian/webhooks/user_id1", bytes.NewBufferString(notifyBody("X1")))
	w := httptest.NewRecorder()
	f.app.Router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected the unprefixed path to be unrouted, got %d", w.Code)
	}

	w = f.post(t, "/afdian/s3cret/webhooks/user_id1", notifyBody("X1"))
	expectAck(t, w, http.StatusOK, `{"ec":200,"em":"success"}`)
}

func TestRouter_SystemRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newE2EFixture(t, ctrl, testConfig(tokenBot), orderListBody())

	for _, path := range []string{"/v1/ping", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		f.app.Router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestRouter_BotAPIAuth(t *testing.T) {
	get := func(app *App, header string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/bots", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("unmounted without a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newE2EFixture(t, ctrl, testConfig(tokenBot), orderListBody())

		if code := get(f.app, "Bearer anything"); code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})

	t.Run("guarded by the configured token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cfg := testConfig(tokenBot)
		cfg.API.Token = "admin-token"
		f := newE2EFixture(t, ctrl, cfg, orderListBody())

		if code := get(f.app, ""); code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without header, got %d", code)
		}
		if code := get(f.app, "Bearer wrong"); code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with a wrong token, got %d", code)
		}
		if code := get(f.app, "Bearer admin-token"); code != http.StatusOK {
			t.Fatalf("expected 200 with the token, got %d", code)
		}
	})
}

func TestWebhook_TestOrderWhilePlatformDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gin.SetMode(gin.TestMode)

	client := mock_interfaces.NewMockIPlatformClient(ctrl)
	client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(afdian.RawResponse{}, afdian.ErrNetwork).AnyTimes()
	handler := mock_interfaces.NewMockIEventHandler(ctrl)
	handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	log, _ := test.NewNullLogger()
	app, err := NewApp(context.Background(), testConfig(tokenBot), Options{Client: client, Handler: handler, Logger: log})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f := &e2eFixture{app: app}

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody(entities.TestOrderTradeNo))
	expectAck(t, w, http.StatusOK, `{"ec":200,"em":"success"}`)
}

func TestWebhook_VerificationWhilePlatformDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gin.SetMode(gin.TestMode)

	client := mock_interfaces.NewMockIPlatformClient(ctrl)
	client.EXPECT().Do(gomock.Any(), gomock.Any()).Return(afdian.RawResponse{}, afdian.ErrNetwork).AnyTimes()
	handler := mock_interfaces.NewMockIEventHandler(ctrl)
	handler.EXPECT().HandleEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	log, _ := test.NewNullLogger()
	app, err := NewApp(context.Background(), testConfig(tokenBot), Options{Client: client, Handler: handler, Logger: log})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	f := &e2eFixture{app: app}

	w := f.post(t, "/afdian/webhooks/user_id1", notifyBody("X1"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unverifiable order, got %d (%s)", w.Code, w.Body.String())
	}
}
