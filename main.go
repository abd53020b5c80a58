package main

import (
	"fmt"

	"backend/configs"
	"backend/notify"
	"backend/pkg/logging"
	"backend/routes"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logger := logging.New("littlelemon-api")

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		logger.Fatal().Err(err).Msg("seed admin failed")
	}

	// Order event feed (WebSocket) + optional broker publisher
	feed := ws.NewOrderFeed(logger)
	go feed.Run()

	publisher := notify.Fanout{feed}
	if cfg.AMQPURL != "" {
		amqpPub, err := notify.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			logger.Warn().Err(err).Msg("amqp unavailable, order events stay local")
		} else {
			defer amqpPub.Close()
			publisher = append(publisher, amqpPub)
		}
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, db, cfg, logger, publisher, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
