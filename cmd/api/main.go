package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/agendalivre/agenda-api/internal/calendar"
	"github.com/agendalivre/agenda-api/internal/config"
	dbpkg "github.com/agendalivre/agenda-api/internal/db"
	"github.com/agendalivre/agenda-api/internal/logger"
	"github.com/agendalivre/agenda-api/internal/middleware"
	"github.com/agendalivre/agenda-api/internal/payment"
	"github.com/agendalivre/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	var payments payment.Gateway = payment.Disabled{}
	if cfg.MPAccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure payment gateway")
		}
		payments = mp
		log.Info().Msg("payment gateway enabled")
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Redis:    rdb,
		Config:   cfg,
		Log:      log,
		Payments: payments,
		Calendar: calendar.Noop{},
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
