package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/to-goingon/notion-invoice-web/internal/auth"
	authhandler "github.com/to-goingon/notion-invoice-web/internal/auth/handler"
	"github.com/to-goingon/notion-invoice-web/internal/config"
	invoicehandler "github.com/to-goingon/notion-invoice-web/internal/invoice/handler"
	"github.com/to-goingon/notion-invoice-web/internal/middleware"
	"github.com/to-goingon/notion-invoice-web/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	codec, err := session.NewCodec(cfg.SessionSecret)
	if err != nil {
		return nil, nil, err
	}

	authService := auth.NewService(
		auth.AdminIdentity{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		codec,
		cfg.SessionDuration,
	)

	cookieOpts := session.CookieOptions{
		Secure: cfg.IsProduction(),
	}

	authHandler := authhandler.NewHandler(authService, cookieOpts)
	invoiceHandler := invoicehandler.NewHandler(infra.Invoices)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	invoiceHandler.RegisterRoutes(api)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.Redis != nil {
			return infra.Redis.Close()
		}
		return nil
	}, nil
}
