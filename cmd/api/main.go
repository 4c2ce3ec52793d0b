// Command api runs the 77 Cargo careers and contact backend.
//
// @title 77 Cargo API
// @version 1.0
// @description Careers and contact backend for 77 Cargo.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
	"cargo-backend/internal/logging"
	"cargo-backend/internal/server"
	"cargo-backend/internal/validation"
)

func gracefulShutdown(apiServer *http.Server, log *logrus.Logger, done chan<- struct{}) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exiting")
	close(done)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $CONFIG_FILE)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	log := logging.New(cfg)
	gin.SetMode(cfg.Server.Mode)

	if err := validation.Setup(); err != nil {
		log.WithError(err).Fatal("failed to register validators")
	}

	db, err := database.NewDBInstance(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("database failed to initialize")
	}
	defer func() { _ = db.Close() }()

	redisClient, err := database.NewRedisClient(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("redis failed to initialize")
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	apiServer, err := server.NewServer(cfg, log, db, redisClient)
	if err != nil {
		log.WithError(err).Fatal("server failed to initialize")
	}

	done := make(chan struct{})
	go gracefulShutdown(apiServer, log, done)

	log.WithField("addr", apiServer.Addr).Info("server listening")
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("http server error")
		os.Exit(1)
	}

	<-done
}
