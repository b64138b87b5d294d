// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"gari-service/internal/config"
	"gari-service/internal/db"
	authHandler "gari-service/internal/handlers/auth"
	catalogHandler "gari-service/internal/handlers/catalog"
	inquiryHandler "gari-service/internal/handlers/inquiry"
	listingHandler "gari-service/internal/handlers/listing"
	wsHandler "gari-service/internal/handlers/websocket"
	"gari-service/internal/middleware"
	"gari-service/internal/pkg/jwt"
	"gari-service/internal/pkg/session"
	"gari-service/internal/repository/postgres"
	authService "gari-service/internal/service/auth"
	catalogService "gari-service/internal/service/catalog"
	inquiryService "gari-service/internal/service/inquiry"
	listingService "gari-service/internal/service/listing"
	"gari-service/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB()
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       0,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] connected successfully")

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- JWT Manager -----
	jwtManager, err := jwt.LoadAndBuild(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT manager: %w", err)
	}

	// ----- Session Manager & Rate Limiter -----
	sessionManager := session.NewManager(redisClient)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	listingRepo := postgres.NewListingRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)

	// ----- WebSocket Hub -----
	hub := ws.NewHub(jwtManager.Verifier, sessionManager, logger)
	go hub.Run(ctx)

	// ----- Services -----
	authSvc := authService.NewAuthService(userRepo, jwtManager, sessionManager, rateLimiter, logger)
	catalogSvc := catalogService.NewCatalogService(catalogRepo, logger)
	listingSvc := listingService.NewListingService(listingRepo, catalogRepo, logger)
	inquirySvc := inquiryService.NewInquiryService(inquiryRepo, listingRepo, rateLimiter, hub, logger)

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:    authHandler.NewAuthHandler(authSvc),
		CatalogHandler: catalogHandler.NewCatalogHandler(catalogSvc),
		ListingHandler: listingHandler.NewListingHandler(listingSvc),
		InquiryHandler: inquiryHandler.NewInquiryHandler(inquirySvc),
		WSHandler:      wsHandler.NewWebSocketHandler(hub, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(authSvc),
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
