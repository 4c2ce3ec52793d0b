// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "cargo-backend/docs"

	"cargo-backend/internal/auth"
	"cargo-backend/internal/controller/application"
	"cargo-backend/internal/controller/contact"
	"cargo-backend/internal/controller/frontend"
	"cargo-backend/internal/controller/health"
	"cargo-backend/internal/middleware"
	"cargo-backend/internal/utilities"
)

func (s *MyServer) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(s.Config.Server.AllowOrigins) == 0 || utilities.Contains(s.Config.Server.AllowOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = s.Config.Server.AllowOrigins
	cfg.AllowCredentials = true
	return cfg
}

// RegisterRoutes builds the route table: API routes first, then the
// frontend mounts, then the fallback.
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(s.Log),
		middleware.Recovery(s.Log),
		middleware.SafeHeader(),
		cors.New(s.corsConfig()),
	)

	appController := application.NewApplicationController(s.DB)
	contactController := contact.NewContactController(s.DB)
	healthController := health.NewHealthController(s.DB)
	frontendController := frontend.NewFrontendController(s.Config, s.Log)
	logoutController := auth.NewLogoutController(s.Blacklist, s.Log)

	limiter := middleware.RateLimiterMiddleware(s.Config.RateLimit.RequestsPerSecond, s.Redis)
	bodyLimit := middleware.SizeLimit(s.Config.Server.MaxBodyBytes)
	requireAdmin := []gin.HandlerFunc{
		middleware.RequireAdmin(s.Config),
		middleware.JwtBlacklistCheck(s.Blacklist, s.Log),
	}

	api := r.Group("/api")
	{
		api.GET("/health", healthController.Liveness)
		api.GET("/health/db", healthController.Database)

		// Public submissions
		api.POST("/applications", limiter, bodyLimit, appController.CreateApplication)
		api.POST("/contact", limiter, bodyLimit, contactController.CreateContactMessage)

		authRoute := api.Group("/auth")
		{
			authRoute.POST("/login", limiter, bodyLimit, s.AdminAuth.LoginHandler)
			authRoute.POST("/logout", append(requireAdmin, logoutController.LogoutHandler)...)
		}

		needAdmin := api.Group("", requireAdmin...)
		{
			needAdmin.GET("/applications", appController.ListApplications)
			needAdmin.GET("/applications/:id", appController.GetApplication)
			needAdmin.PATCH("/applications/:id/status", bodyLimit, appController.UpdateApplicationStatus)
			needAdmin.DELETE("/applications/:id", appController.DeleteApplication)
			needAdmin.GET("/contact", contactController.ListContactMessages)
		}
	}

	if s.Config.Server.Mode != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	frontendController.Mount(r)
	r.GET("/", frontendController.Home)
	r.NoRoute(frontendController.Fallback)

	return r
}
