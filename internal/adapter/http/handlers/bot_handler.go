package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	request "afdian_adapter/internal/adapter/http/dto/request"
	response "afdian_adapter/internal/adapter/http/dto/response"
	"afdian_adapter/internal/domain/afdian"
	"afdian_adapter/internal/domain/entities"
	"afdian_adapter/internal/usecase"
	"afdian_adapter/internal/usecase/interfaces"
	"afdian_adapter/pkg"
)

// BotHandler exposes the signed API of the configured bots.
type BotHandler struct {
	bots       usecase.IBotConnector
	api        usecase.IAfdianAPIUseCase
	deliveries interfaces.IDeliveryRepository
}

func NewBotHandler(bots usecase.IBotConnector, api usecase.IAfdianAPIUseCase, deliveries interfaces.IDeliveryRepository) *BotHandler {
	return &BotHandler{bots: bots, api: api, deliveries: deliveries}
}

// ListBots godoc
// @Summary  List configured bots
// @Tags     bots
// @Security Bearer
// @Produce  json
// @Success  200  {array}  response.BotResponse
// @Router   /v1/bots [get]
func (h *BotHandler) ListBots(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBotStatuses(h.bots.List()))
}

// Ping godoc
// @Summary  Ping afdian with the bot credentials
// @Tags     bots
// @Security Bearer
// @Produce  json
// @Param    user_id  path      string  true  "creator user id"
// @Success  200      {object}  response.PingResponse
// @Failure  401      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Failure  502      {object}  pkg.HTTPError
// @Router   /v1/bots/{user_id}/ping [get]
func (h *BotHandler) Ping(c *gin.Context) {
	cred, ok := h.credential(c)
	if !ok {
		return
	}
	resp, err := h.api.Ping(c.Request.Context(), cred)
	if err != nil {
		h.fail(c, "ping", cred.UserID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPing(cred.UserID, resp))
}

// QueryOrders godoc
// @Summary  Query orders of the bot
// @Tags     bots
// @Security Bearer
// @Produce  json
// @Param    user_id       path      string  true   "creator user id"
// @Param    page          query     int     false  "page, from 1"
// @Param    out_trade_no  query     string  false  "comma separated trade numbers"
// @Success  200           {object}  response.OrderPageResponse
// @Failure  400           {object}  pkg.HTTPError
// @Failure  404           {object}  pkg.HTTPError
// @Router   /v1/bots/{user_id}/orders [get]
func (h *BotHandler) QueryOrders(c *gin.Context) {
	cred, ok := h.credential(c)
	if !ok {
		return
	}
	var q request.OrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var (
		resp *afdian.OrderResponse
		err  error
	)
	if tradeNos := q.TradeNos(); len(tradeNos) > 0 {
		resp, err = h.api.QueryOrdersByTradeNos(c.Request.Context(), cred, tradeNos)
	} else {
		resp, err = h.api.QueryOrderByPage(c.Request.Context(), cred, q.Page)
	}
	if err != nil {
		h.fail(c, "query-order", cred.UserID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderPage(resp))
}

// QuerySponsors godoc
// @Summary  Query sponsors of the bot
// @Tags     bots
// @Security Bearer
// @Produce  json
// @Param    user_id   path      string  true   "creator user id"
// @Param    page      query     int     false  "page, from 1"
// @Param    per_page  query     int     false  "1 to 100"
// @Success  200       {object}  response.SponsorPageResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  404       {object}  pkg.HTTPError
// @Router   /v1/bots/{user_id}/sponsors [get]
func (h *BotHandler) QuerySponsors(c *gin.Context) {
	cred, ok := h.credential(c)
	if !ok {
		return
	}
	var q request.SponsorsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	resp, err := h.api.QuerySponsor(c.Request.Context(), cred, q.Page, q.PerPage)
	if err != nil {
		h.fail(c, "query-sponsor", cred.UserID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSponsorPage(resp))
}

// ListDeliveries godoc
// @Summary  List recorded webhook deliveries of the bot
// @Tags     bots
// @Security Bearer
// @Produce  json
// @Param    user_id  path     string  true  "creator user id"
// @Success  200      {array}  response.DeliveryResponse
// @Failure  404      {object} pkg.HTTPError
// @Router   /v1/bots/{user_id}/deliveries [get]
func (h *BotHandler) ListDeliveries(c *gin.Context) {
	cred, ok := h.credential(c)
	if !ok {
		return
	}
	deliveries, err := h.deliveries.ListByUserID(c.Request.Context(), cred.UserID)
	if err != nil {
		h.fail(c, "list-deliveries", cred.UserID, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveries(deliveries))
}

func (h *BotHandler) credential(c *gin.Context) (entities.BotCredential, bool) {
	cred, err := h.bots.Credential(c.Param("user_id"))
	if err != nil {
		appErr := mapBotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.BotCredential{}, false
	}
	return cred, true
}

func (h *BotHandler) fail(c *gin.Context, action, userID string, err error) {
	logrus.WithError(err).WithFields(logrus.Fields{
		"action":  action,
		"user_id": userID,
	}).Warn("[afdian][handler] bot api call failed")
	appErr := mapBotError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBotError(err error) *pkg.AppError {
	var failed *afdian.ActionFailed
	switch {
	case errors.Is(err, usecase.ErrBotNotFound):
		return pkg.NewDomainErrorSimple("BOT_NOT_FOUND", "Bot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBotNotConnected):
		return pkg.NewDomainErrorSimple("BOT_NOT_CONNECTED", "Bot not connected", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPage), errors.Is(err, usecase.ErrInvalidPerPage), errors.Is(err, usecase.ErrEmptyTradeNo):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHookBotNoToken):
		return pkg.NewDomainErrorSimple("HOOK_BOT_NO_TOKEN", "Hook-only bot cannot call the afdian API", http.StatusConflict)
	case errors.Is(err, afdian.ErrAPINotAvailable):
		return pkg.NewDomainErrorSimple("API_NOT_AVAILABLE", "API not available", http.StatusBadRequest)
	case errors.As(err, &failed) && failed.IsRemote():
		msg := failed.Message
		if failed.Explain != "" {
			msg += ": " + failed.Explain
		}
		return pkg.NewDomainError("AFDIAN_REMOTE_ERROR", msg, err, http.StatusBadGateway)
	case errors.As(err, &failed), errors.Is(err, afdian.ErrNetwork):
		return pkg.NewDomainError("AFDIAN_UNAVAILABLE", "afdian API request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUnexpectedResponse):
		return pkg.NewDomainError("AFDIAN_UNEXPECTED_RESPONSE", "Unexpected afdian response", err, http.StatusBadGateway)
	default:
		var parseErr *afdian.ParseError
		if errors.As(err, &parseErr) {
			return pkg.NewDomainError("AFDIAN_UNEXPECTED_RESPONSE", "Unexpected afdian response", err, http.StatusBadGateway)
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
