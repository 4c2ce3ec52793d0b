package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"cargo-backend/internal/auth"
	"cargo-backend/internal/config"
	"cargo-backend/internal/database"
)

// MyServer holds the dependencies every route handler is built from
type MyServer struct {
	Config    *config.Config
	DB        *database.DBinstanceStruct
	Log       *logrus.Logger
	Redis     *redis.Client
	Blacklist auth.JwtBlacklistStore
	AdminAuth *auth.AdminAuthHandler
}

// NewMyServer wires the shared dependencies. redisClient may be nil.
func NewMyServer(cfg *config.Config, log *logrus.Logger, db *database.DBinstanceStruct, redisClient *redis.Client) (*MyServer, error) {
	adminAuth, err := auth.NewAdminAuthHandler(cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.AdminEnabled() {
		log.Warn("ADMIN_USERNAME and ADMIN_PASSWORD are not set, admin endpoints are open to everyone")
	}
	if cfg.Auth.SecretKey == config.DefaultSecretKey && cfg.Server.Mode == "release" {
		log.Warn("SECRET_KEY is the default value, set a real secret in production")
	}

	return &MyServer{
		Config:    cfg,
		DB:        db,
		Log:       log,
		Redis:     redisClient,
		Blacklist: auth.NewBlacklistStore(redisClient),
		AdminAuth: adminAuth,
	}, nil
}

// Close releases what MyServer started itself. The database and redis client
// belong to the caller.
func (s *MyServer) Close() error {
	if c, ok := s.Blacklist.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// NewServer construct new http.Server serving the API and the frontend
func NewServer(cfg *config.Config, log *logrus.Logger, db *database.DBinstanceStruct, redisClient *redis.Client) (*http.Server, error) {
	s, err := NewMyServer(cfg, log, db, redisClient)
	if err != nil {
		return nil, fmt.Errorf("failed to build server: %w", err)
	}

	// Declare Server config
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	server.RegisterOnShutdown(func() {
		if err := s.Close(); err != nil {
			log.WithError(err).Warn("failed to close server resources")
		}
	})

	return server, nil
}
