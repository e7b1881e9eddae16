package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/nikhilkumar-05/MediCare/internal/config"
	"github.com/nikhilkumar-05/MediCare/internal/handler"
	adminHandler "github.com/nikhilkumar-05/MediCare/internal/handler/admin"
	appointmentHandler "github.com/nikhilkumar-05/MediCare/internal/handler/appointment"
	authHandler "github.com/nikhilkumar-05/MediCare/internal/handler/auth"
	feedbackHandler "github.com/nikhilkumar-05/MediCare/internal/handler/feedback"
	recordHandler "github.com/nikhilkumar-05/MediCare/internal/handler/record"
	"github.com/nikhilkumar-05/MediCare/internal/middleware"
	"github.com/nikhilkumar-05/MediCare/internal/repository/postgres"
	"github.com/nikhilkumar-05/MediCare/internal/router"
	adminService "github.com/nikhilkumar-05/MediCare/internal/service/admin"
	appointmentService "github.com/nikhilkumar-05/MediCare/internal/service/appointment"
	authService "github.com/nikhilkumar-05/MediCare/internal/service/auth"
	doctorService "github.com/nikhilkumar-05/MediCare/internal/service/doctor"
	feedbackService "github.com/nikhilkumar-05/MediCare/internal/service/feedback"
	recordService "github.com/nikhilkumar-05/MediCare/internal/service/record"
	"github.com/nikhilkumar-05/MediCare/pkg/auth"
	"github.com/nikhilkumar-05/MediCare/pkg/cache"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)
	feedbackRepo := postgres.NewFeedbackRepository(db)

	// Doctor directory cache: Redis when configured, in-process otherwise.
	var dirCache cache.Cache
	if cfg.Redis.URL != "" {
		dirCache, err = cache.NewRedisCache(cache.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	} else {
		dirCache = cache.NewMemoryCache(cfg.Cache.DoctorListTTL, 5*time.Minute)
	}

	jwtSvc := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Expiry:        cfg.JWT.Expiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	// Services
	authSvc := authService.NewService(accountRepo, jwtSvc)
	doctorSvc := doctorService.NewService(doctorRepo, accountRepo, dirCache, cfg.Cache.DoctorListTTL)
	adminSvc := adminService.NewService(accountRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, doctorRepo)
	recordSvc := recordService.NewService(recordRepo)
	feedbackSvc := feedbackService.NewService(feedbackRepo, doctorRepo)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc, doctorSvc)
	adminH := adminHandler.NewHandler(adminSvc, doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	recordH := recordHandler.NewHandler(recordSvc)
	feedbackH := feedbackHandler.NewHandler(feedbackSvc)

	var rateLimit rate.Limit
	if cfg.RateLimit.Enabled {
		rateLimit = rate.Limit(cfg.RateLimit.RPS)
	}

	r := router.NewRouter(
		authMiddleware,
		authH,
		adminH,
		appointmentH,
		recordH,
		feedbackH,
		h,
		router.Config{
			RateLimit:     rateLimit,
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "medicare_http",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
