package routes

import (
	"afdian_adapter/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addWebhookRoutes mounts one push endpoint per bot, keyed by user id.
// basePath may carry the shared secret segment.
func addWebhookRoutes(router *gin.Engine, basePath string, webhookHandler *handlers.WebhookHandler) {
	router.POST(basePath+"/:user_id", webhookHandler.Receive)
}
