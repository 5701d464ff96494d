package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	response "afdian_adapter/internal/adapter/http/dto/response"
	"afdian_adapter/internal/adapter/http/handlers/mocks"
	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase"
	mock_interfaces "afdian_adapter/internal/usecase/interfaces/mocks"
	"afdian_adapter/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var handlerCred = entities.BotCredential{UserID: "user_id1", Token: "token1"}

type botHandlerFixture struct {
	router     *gin.Engine
	bots       *mocks.MockIBotConnector
	api        *mocks.MockIAfdianAPIUseCase
	deliveries *mock_interfaces.MockIDeliveryRepository
}

func newBotHandlerFixture(ctrl *gomock.Controller) *botHandlerFixture {
	f := &botHandlerFixture{
		bots:       mocks.NewMockIBotConnector(ctrl),
		api:        mocks.NewMockIAfdianAPIUseCase(ctrl),
		deliveries: mock_interfaces.NewMockIDeliveryRepository(ctrl),
	}
	h := NewBotHandler(f.bots, f.api, f.deliveries)

	f.router = gin.New()
	f.router.GET("/v1/bots", h.ListBots)
	f.router.GET("/v1/bots/:user_id/ping", h.Ping)
	f.router.GET("/v1/bots/:user_id/orders", h.QueryOrders)
	f.router.GET("/v1/bots/:user_id/sponsors", h.QuerySponsors)
	f.router.GET("/v1/bots/:user_id/deliveries", h.ListDeliveries)
	return f
}

func (f *botHandlerFixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func TestBotHandler_ListBots(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newBotHandlerFixture(ctrl)

	f.bots.EXPECT().List().Return([]usecase.BotStatus{
		{UserID: "user_id1", Kind: entities.BotKindToken, Connected: true, UID: "uid-1"},
	})

	w := f.get("/v1/bots")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.BotResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(got) != 1 || got[0].UID != "uid-1" || got[0].Kind != "token" {
		t.Fatalf("unexpected bots %+v", got)
	}
}

func TestBotHandler_Ping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown bot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("nobody").Return(entities.BotCredential{}, usecase.ErrBotNotFound)

		w := f.get("/v1/bots/nobody/ping")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "BOT_NOT_FOUND" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().Ping(gomock.Any(), handlerCred).Return(&afdian.PingResponse{Data: &afdian.PingData{UID: strPtr("uid-1")}}, nil)

		w := f.get("/v1/bots/user_id1/ping")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.PingResponse
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.UID != "uid-1" || got.UserID != "user_id1" {
			t.Fatalf("unexpected ping %+v", got)
		}
	})

	t.Run("remote error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().Ping(gomock.Any(), handlerCred).Return(nil, &afdian.ActionFailed{
			Endpoint: "ping", StatusCode: 200, Code: 400005, Message: "sign validation failed", Explain: "bad token",
		})

		w := f.get("/v1/bots/user_id1/ping")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "AFDIAN_REMOTE_ERROR" || body.Message != "sign validation failed: bad token" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("hook bot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		hook := entities.BotCredential{UserID: "hook"}
		f.bots.EXPECT().Credential("hook").Return(hook, nil)
		f.api.EXPECT().Ping(gomock.Any(), hook).Return(nil, usecase.ErrHookBotNoToken)

		if w := f.get("/v1/bots/hook/ping"); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestBotHandler_QueryOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("by trade numbers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().QueryOrdersByTradeNos(gomock.Any(), handlerCred, []string{"A1", "B2"}).Return(&afdian.OrderResponse{
			Data: &afdian.OrderPage{List: []entities.Order{{OutTradeNo: "A1"}, {OutTradeNo: "B2"}}},
		}, nil)

		w := f.get("/v1/bots/user_id1/orders?out_trade_no=A1,B2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.OrderPageResponse
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got.Orders) != 2 || got.Orders[1].OutTradeNo != "B2" {
			t.Fatalf("unexpected orders %+v", got)
		}
	})

	t.Run("by page defaults to first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().QueryOrderByPage(gomock.Any(), handlerCred, 1).Return(&afdian.OrderResponse{Data: &afdian.OrderPage{}}, nil)

		if w := f.get("/v1/bots/user_id1/orders"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().QueryOrderByPage(gomock.Any(), handlerCred, -1).Return(nil, usecase.ErrInvalidPage)

		if w := f.get("/v1/bots/user_id1/orders?page=-1"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non numeric page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)

		if w := f.get("/v1/bots/user_id1/orders?page=abc"); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBotHandlerFixture(ctrl)
		f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
		f.api.EXPECT().QueryOrderByPage(gomock.Any(), handlerCred, 2).Return(nil, errors.Join(afdian.ErrNetwork, errors.New("dial tcp")))

		if w := f.get("/v1/bots/user_id1/orders?page=2"); w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestBotHandler_QuerySponsors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newBotHandlerFixture(ctrl)
	f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
	f.api.EXPECT().QuerySponsor(gomock.Any(), handlerCred, 2, 50).Return(&afdian.SponsorResponse{Data: &afdian.SponsorPage{}}, nil)

	w := f.get("/v1/bots/user_id1/sponsors?page=2&per_page=50")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got response.SponsorPageResponse
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Sponsors == nil || len(got.Sponsors) != 0 {
		t.Fatalf("expected an empty sponsor list, got %+v", got)
	}
}

func TestBotHandler_ListDeliveries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newBotHandlerFixture(ctrl)
	f.bots.EXPECT().Credential("user_id1").Return(handlerCred, nil)
	f.deliveries.EXPECT().ListByUserID(gomock.Any(), "user_id1").Return([]entities.WebhookDelivery{{
		ID:         "d-1",
		UserID:     "user_id1",
		OutTradeNo: "X1",
		Decision:   entities.DeliveryAccepted,
		Reason:     "verified",
		ReceivedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}, nil)

	w := f.get("/v1/bots/user_id1/deliveries")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.DeliveryResponse
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Decision != "accepted" || got[0].OutTradeNo != "X1" {
		t.Fatalf("unexpected deliveries %+v", got)
	}
}

func TestMapBotError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"not found", usecase.ErrBotNotFound, "BOT_NOT_FOUND", http.StatusNotFound},
		{"not connected", usecase.ErrBotNotConnected, "BOT_NOT_CONNECTED", http.StatusConflict},
		{"per page", usecase.ErrInvalidPerPage, "INVALID_REQUEST", http.StatusBadRequest},
		{"empty trade no", usecase.ErrEmptyTradeNo, "INVALID_REQUEST", http.StatusBadRequest},
		{"api not available", &afdian.APINotAvailableError{Endpoint: "query-plan"}, "API_NOT_AVAILABLE", http.StatusBadRequest},
		{"http status", &afdian.ActionFailed{Endpoint: "ping", StatusCode: 503}, "AFDIAN_UNAVAILABLE", http.StatusBadGateway},
		{"unexpected", usecase.ErrUnexpectedResponse, "AFDIAN_UNEXPECTED_RESPONSE", http.StatusBadGateway},
		{"parse", &afdian.ParseError{Reason: afdian.ParseNotJSON}, "AFDIAN_UNEXPECTED_RESPONSE", http.StatusBadGateway},
		{"other", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapBotError(tt.err)
			if got.Code != tt.code || got.HTTPStatus != tt.status {
				t.Fatalf("expected %s/%d, got %s/%d", tt.code, tt.status, got.Code, got.HTTPStatus)
			}
		})
	}
}
