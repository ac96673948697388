package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medidesk/frontdesk-api/internal/config"
	"github.com/medidesk/frontdesk-api/internal/handler"
	appointmentHandler "github.com/medidesk/frontdesk-api/internal/handler/appointment"
	authHandler "github.com/medidesk/frontdesk-api/internal/handler/auth"
	patientHandler "github.com/medidesk/frontdesk-api/internal/handler/patient"
	"github.com/medidesk/frontdesk-api/internal/middleware"
	"github.com/medidesk/frontdesk-api/internal/repository/postgres"
	"github.com/medidesk/frontdesk-api/internal/router"
	appointmentService "github.com/medidesk/frontdesk-api/internal/service/appointment"
	authService "github.com/medidesk/frontdesk-api/internal/service/auth"
	patientService "github.com/medidesk/frontdesk-api/internal/service/patient"
	"github.com/medidesk/frontdesk-api/internal/session"
	"github.com/medidesk/frontdesk-api/pkg/auth"
	"github.com/medidesk/frontdesk-api/pkg/logger"
)

func main() {
	log := logger.New(logger.Options{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	denylist, err := session.NewRedisDenylist(cfg.Redis.URL)
	if err != nil {
		log.Fatal(err, "failed to connect to Redis")
	}

	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	userRepo := postgres.NewUserRepository(db)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientSvc)
	authSvc := authService.NewService(userRepo, jwtSvc, denylist)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		handler.NewHealthHandler(db),
		router.Config{
			RateLimitRPS:   50,
			RateLimitBurst: 100,
			MetricsPrefix:  "frontdesk",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
