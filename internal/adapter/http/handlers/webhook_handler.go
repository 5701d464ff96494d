package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	response "afdian_adapter/internal/adapter/http/dto/response"
	"afdian_adapter/internal/usecase"
)

const maxWebhookBodyBytes = 1 << 20

// WebhookHandler receives afdian order pushes.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Receive godoc
// @Summary      Receive an order push
// @Description  Verifies the pushed order against query-order and dispatches it. afdian only reads ec/em.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        user_id  path      string  true  "creator user id of the bot"
// @Success      200      {object}  response.WebhookAck
// @Failure      400      {object}  response.WebhookAck
// @Failure      404      {object}  response.WebhookAck
// @Router       /afdian/webhooks/{user_id} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	userID := c.Param("user_id")

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("[afdian][handler] read webhook body failed")
		c.JSON(http.StatusBadRequest, response.WebhookAck{EC: http.StatusBadRequest, EM: usecase.MessageParseFailed})
		return
	}

	outcome := h.usecase.HandleNotification(c.Request.Context(), userID, body)
	c.JSON(outcome.StatusCode, response.FromWebhookOutcome(outcome))
}
