package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"novelhub/internal/api/handler"
	"novelhub/internal/api/middleware"
	"novelhub/internal/api/repository"
	"novelhub/internal/api/service"
	"novelhub/internal/config"
	"novelhub/internal/mockdata"
	"novelhub/pkg/logger"
)

// totalChaptersPerNovel is how many chapters each seeded demo novel carries.
const totalChaptersPerNovel = 300

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory stores; everything resets on restart
	userRepo := repository.NewUserRepository()
	refreshTokenRepo := repository.NewRefreshTokenRepository()
	novelRepo := repository.NewNovelRepository()
	accessRepo := repository.NewChapterAccessRepository()
	directory := repository.NewNotificationDirectory(cfg.NotificationTTL)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	notificationService := service.NewNotificationService(directory, userRepo)
	pointsService := service.NewPointsService(userRepo, novelRepo, accessRepo)
	topUpService := service.NewTopUpService(directory, userRepo, pointsService, log, cfg.SimulatedLatency)
	contactService := service.NewContactService(directory, userRepo)
	novelService := service.NewNovelService(novelRepo, accessRepo, userRepo, directory, log, cfg.SimulatedLatency)

	if err := mockdata.Seed(userRepo, novelRepo, directory, cfg.FreeChapters, cfg.ChapterPrice, totalChaptersPerNovel, log); err != nil {
		log.WithError(err).Fatal("failed to seed mock data")
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds()))
	notificationHandler := handler.NewNotificationHandler(notificationService)
	novelHandler := handler.NewNovelHandler(novelService, pointsService, cfg.FreeChapters, cfg.ChapterPrice)
	topUpHandler := handler.NewTopUpHandler(topUpService)
	contactHandler := handler.NewContactHandler(contactService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "API is alive",
		})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.NewStrictRateLimiter())
	authHandler.RegisterRoutes(authGroup)

	// Catalog is public; a valid token only enriches the response
	publicGroup := api.Group("")
	publicGroup.Use(middleware.OptionalAuth(authService))
	novelHandler.RegisterPublicRoutes(publicGroup)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	novelHandler.RegisterProtectedRoutes(protected)
	notificationHandler.RegisterRoutes(protected)
	topUpHandler.RegisterRoutes(protected)
	contactHandler.RegisterRoutes(protected)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authService))
	novelHandler.RegisterAdminRoutes(admin)

	// Background retention sweep
	sweepDone := make(chan struct{})
	go directory.StartSweepRoutine(cfg.SweepInterval, sweepDone)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.WithField("addr", addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	close(sweepDone)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}
