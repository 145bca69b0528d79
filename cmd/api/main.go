package main

import (
	"taskloop/internal/adapter/http/routes"
	"taskloop/internal/infrastructure/config"
	"taskloop/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taskloop API
// @version         1.0
// @description     Field-service back office: clients, quotes, jobs, requests, invoices, payments and calendar.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	log := logging.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.WithError(err).Fatal("configure logging")
	}

	if err := routes.Run(cfg); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
