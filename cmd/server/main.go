package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	_ "peerswipe/docs" // swagger docs

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"

	"peerswipe/internal/auth"
	"peerswipe/internal/cache"
	"peerswipe/internal/config"
	"peerswipe/internal/db"
	"peerswipe/internal/handler"
	"peerswipe/internal/pseudonym"
	"peerswipe/internal/repository"
	"peerswipe/internal/router"
	"peerswipe/internal/service"
)

// @title PeerSwipe API
// @version 1.0
// @description Anonymous peer support: post problems, swipe to match, chat under a pseudonym.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Printf("sentry init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range db.Models() {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, continuing without cache: %v", err)
	}

	// Initialize repositories
	store := repository.NewStore(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(store.Users(), cacheClient)
	authService := service.NewAuthService(store.Users(), userService, jwtService, tokenStore, pseudonym.NewGenerator())
	problemService := service.NewProblemService(store.Problems())
	matchService := service.NewMatchService(store.Matches(), store.Messages())
	swipeService := service.NewSwipeService(store.Problems(), store.Swipes(), matchService)
	reportService := service.NewReportService(store.Reports(), store.Problems(), store.Messages())
	moderationService := service.NewModerationService(store, userService)

	e := echo.New()
	router.Register(e, cfg, jwtService, authService, router.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.CookieSecure),
		Problem: handler.NewProblemHandler(problemService, swipeService),
		Match:   handler.NewMatchHandler(matchService),
		Report:  handler.NewReportHandler(reportService),
		Admin:   handler.NewAdminHandler(moderationService),
	})

	swaggerURL := cfg.SwaggerHost
	if swaggerURL == "" {
		swaggerURL = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(swaggerURL, "http://") && !strings.HasPrefix(swaggerURL, "https://") {
		swaggerURL = "http://" + swaggerURL
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
