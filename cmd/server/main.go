package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tablebook/reservation-system/internal/api"
	"github.com/tablebook/reservation-system/internal/core/service"
	mongodb "github.com/tablebook/reservation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/tablebook/reservation-system/internal/infrastructure/db/redis"
	"github.com/tablebook/reservation-system/internal/infrastructure/queue"
	"github.com/tablebook/reservation-system/internal/pkg/config"
	"github.com/tablebook/reservation-system/pkg/logger"

	_ "github.com/tablebook/reservation-system/docs"
)

// @title           Reservation System API
// @version         1.0
// @description     Ownership-scoped reservation management.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	reservationRepo := mongodb.NewReservationRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	if err := reservationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("reservation index creation failed")
	}
	if err := authRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	// --- Services ---
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activityService, log)
	// Workers outlive the signal context: requests still draining during
	// shutdown record events, and Stop below flushes them before exit.
	dispatcher.Start(context.Background())

	reservationService := service.NewReservationService(reservationRepo, dispatcher, log)
	authService := service.NewAuthService(authRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Reservations: reservationService,
		Auth:         authService,
		Activity:     activityRepo,
		Denylist:     denylist,
		Mongo:        db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	dispatcher.Stop()
	log.Info().Msg("server stopped")
}
