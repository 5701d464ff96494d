package main

import (
	_ "afdian_adapter/docs"
	"afdian_adapter/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           afdian Adapter API
// @version         1.0
// @description     Receives afdian order pushes, verifies them against the open API and exposes the signed API of the configured bots.

// @license.name  MIT

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the api.token value.

func main() {
	routes.Run()
}
