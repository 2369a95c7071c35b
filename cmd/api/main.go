package main

import (
	_ "storefront/docs"
	"storefront/internal/adapter/http/routes"
	"storefront/internal/config"
	"storefront/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           Storefront API
// @version         1.0
// @description     Demo storefront: read-only catalog, simulated cart, orders and ratings.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("storefront stopped")
	}
}
