// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/config"
	"github.com/LauraInd/TestingAPIs/internal/database"
	"github.com/LauraInd/TestingAPIs/internal/handler"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/LauraInd/TestingAPIs/internal/service"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// ── 1. Connect to PostgreSQL ──────────────────────────────────────────
	pool, err := database.NewPool(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database")
	}
	defer pool.Close()
	if err := database.CreateSchema(ctx, pool); err != nil {
		logrus.WithError(err).Fatal("schema")
	}
	logrus.Info("connected to PostgreSQL")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewEventCategoryRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	reservationRepo := repository.NewReservationRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	userSvc := service.NewUserService(userRepo)
	categorySvc := service.NewEventCategoryService(categoryRepo)
	eventSvc := service.NewEventService(eventRepo, categoryRepo, cfg.StampEventDate)
	reservationSvc := service.NewReservationService(reservationRepo)
	paymentSvc := service.NewPaymentService(paymentRepo)

	// ── 3. Build the router ───────────────────────────────────────────────
	r := handler.NewRouter(
		handler.NewUserHandler(userSvc),
		handler.NewEventCategoryHandler(categorySvc),
		handler.NewEventHandler(eventSvc),
		handler.NewReservationHandler(reservationSvc),
		handler.NewPaymentHandler(paymentSvc),
	)

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		logrus.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("graceful shutdown failed")
	}
	logrus.Info("server stopped")
}
