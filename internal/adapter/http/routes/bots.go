package routes

import (
	"afdian_adapter/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBots = "/bots"
)

// addBotRoutes mounts the management API behind a bearer token. Without a
// token the routes are not mounted at all.
func addBotRoutes(rg *gin.RouterGroup, token string, botHandler *handlers.BotHandler) {
	if token == "" {
		return
	}
	bots := rg.Group(PathBots, handlers.RequireBearer(token))
	{
		bots.GET("", botHandler.ListBots)
		bots.GET("/:user_id/ping", botHandler.Ping)
		bots.GET("/:user_id/orders", botHandler.QueryOrders)
		bots.GET("/:user_id/sponsors", botHandler.QuerySponsors)
		bots.GET("/:user_id/deliveries", botHandler.ListDeliveries)
	}
}
