package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"time"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/localscene/events-backend/internal/api"
	"github.com/localscene/events-backend/internal/business/schedule"
	"github.com/localscene/events-backend/internal/config"
	"github.com/localscene/events-backend/internal/database"
	"github.com/localscene/events-backend/internal/database/events"
	"github.com/localscene/events-backend/internal/database/overrides"
	"github.com/localscene/events-backend/internal/database/user"
	"github.com/localscene/events-backend/internal/database/venues"
	"github.com/localscene/events-backend/internal/dates"
	"github.com/localscene/events-backend/internal/digest"
	"github.com/localscene/events-backend/internal/pkg/fcm"
	"github.com/localscene/events-backend/internal/pkg/jwt"
	"github.com/localscene/events-backend/internal/pkg/oauth"
	"github.com/localscene/events-backend/internal/redis"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	cal, err := dates.NewCalendar(config.Timezone())
	if err != nil {
		logger.Fatalw("unable to load timezone", "tz", config.Timezone(), "err", err)
	}

	jwts := jwt.NewManger()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	refreshTokens := redis.NewRefreshTokenRepository(redisPool, logger)
	digestMarkers := redis.NewDigestMarkerRepository(redisPool)
	go startSessionsCleanup(ctx, logger, refreshTokens)

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}
	usersRepository := user.NewRepository()
	eventsRepository := events.NewRepository()
	overridesRepository := overrides.NewRepository()
	venuesRepository := venues.NewRepository()

	scheduleService := schedule.NewService(db, cal, logger, eventsRepository, overridesRepository)

	fcmService, err := fcm.NewService(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize fcm service", "err", err)
	}

	sender := digest.NewSender(db, logger, cal, scheduleService, venuesRepository, usersRepository, digestMarkers, fcmService)
	if err := sender.Start(ctx); err != nil {
		logger.Fatalw("unable to start digest sender", "err", err)
	}

	api, err := api.NewApi(
		logger,
		rand.Reader,
		jwts,
		tokenParser,
		refreshTokens,
		db,
		usersRepository,
		eventsRepository,
		overridesRepository,
		venuesRepository,
		scheduleService,
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func startSessionsCleanup(ctx context.Context, logger *zap.SugaredLogger, sessions *redis.RefreshTokenRepository) {
	ticker := time.NewTicker(config.SessionCleanupPeriod())
	done := make(chan bool)

	closer.Bind(func() {
		done <- true
		ticker.Stop()
	})

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				logger.Errorw("session cleanup failed", "err", err)
			}
		}
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
