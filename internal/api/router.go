package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/terangamarket/marketplace-api/docs"
	"github.com/terangamarket/marketplace-api/internal/api/handler"
	"github.com/terangamarket/marketplace-api/internal/api/middleware"
	"github.com/terangamarket/marketplace-api/internal/core/domain"
	"github.com/terangamarket/marketplace-api/internal/core/service"
	mongodb "github.com/terangamarket/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/terangamarket/marketplace-api/internal/infrastructure/db/redis"
	"github.com/terangamarket/marketplace-api/internal/infrastructure/queue"
)

// Config carries the settings the HTTP layer needs.
type Config struct {
	JWTSecret string
	Workers   int     // event dispatcher worker count
	RateLimit float64 // requests per second per client, 0 disables
}

// Server bundles the Echo instance with the components main needs to
// bootstrap and run the service.
type Server struct {
	Echo       *echo.Echo
	Dispatcher *queue.Dispatcher

	tierRepo     *mongodb.TierRepository
	configRepo   *mongodb.DeliveryConfigRepository
	shipmentRepo *mongodb.ShipmentRepository
	authRepo     *mongodb.AuthRepository

	commission      *service.CommissionService
	deliveryConfigs *service.DeliveryConfigService
}

// NewServer wires repositories, services, handlers and routes.
func NewServer(db *mongo.Database, rdb *redis.Client, cfg Config, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))
	if cfg.RateLimit > 0 {
		e.Use(echomiddleware.RateLimiter(
			echomiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	// --- Repositories ---
	tierRepo := mongodb.NewTierRepository(db)
	sellerRepo := mongodb.NewSellerRepository(db)
	configRepo := mongodb.NewDeliveryConfigRepository(db)
	shipmentRepo := mongodb.NewShipmentRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	revoker := redisdb.NewTokenRevoker(rdb)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Services ---
	commission := service.NewCommissionService(tierRepo, sellerRepo, log)
	shipping := service.NewShippingService(configRepo, log)
	deliveryConfigs := service.NewDeliveryConfigService(configRepo, log)
	quotes := service.NewQuoteService(commission, shipping, log)
	shipments := service.NewShipmentService(shipmentRepo, shipping, log)
	events := service.NewEventService(shipments, dedup, log)
	auth := service.NewAuthService(authRepo, revoker, cfg.JWTSecret, 24*time.Hour)

	dispatcher := queue.NewDispatcher(cfg.Workers, events, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(auth)
	quoteHandler := handler.NewQuoteHandler(quotes)
	commissionHandler := handler.NewCommissionHandler(commission)
	configHandler := handler.NewDeliveryConfigHandler(deliveryConfigs)
	shipmentHandler := handler.NewShipmentHandler(shipments)
	eventHandler := handler.NewEventHandler(dispatcher)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	authed := middleware.Auth(cfg.JWTSecret, revoker)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authed)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Pricing ---
	v1 := e.Group("/v1", authed)
	v1.POST("/quotes", quoteHandler.Quote)
	v1.GET("/commission/breakdown", commissionHandler.Breakdown)

	tiers := v1.Group("/commission/tiers", adminOnly)
	tiers.GET("", commissionHandler.ListTiers)
	tiers.POST("", commissionHandler.CreateTier)
	tiers.PATCH("/:id/deactivate", commissionHandler.DeactivateTier)
	tiers.DELETE("/:id", commissionHandler.DeleteTier)

	configs := v1.Group("/delivery-configs", adminOnly)
	configs.GET("", configHandler.List)
	configs.POST("", configHandler.Create)
	configs.PUT("/:id", configHandler.Update)
	configs.PATCH("/:id/deactivate", configHandler.Deactivate)

	// --- Shipments ---
	v1.POST("/shipments", shipmentHandler.Create, middleware.RBAC(domain.RoleSeller, domain.RoleAdmin))
	v1.GET("/shipments", shipmentHandler.List)
	v1.GET("/shipments/late", shipmentHandler.ListLate, adminOnly)
	v1.GET("/shipments/:tracking_number", shipmentHandler.Get)
	v1.PATCH("/shipments/:tracking_number/status", shipmentHandler.UpdateStatus, middleware.RBAC(domain.RoleSeller, domain.RoleAdmin))

	// --- Carrier event ingestion ---
	tracking := v1.Group("/tracking", middleware.RBAC(domain.RoleCarrier, domain.RoleAdmin))
	tracking.POST("/events", eventHandler.Receive)
	tracking.POST("/events/batch", eventHandler.ReceiveBatch)

	return &Server{
		Echo:            e,
		Dispatcher:      dispatcher,
		tierRepo:        tierRepo,
		configRepo:      configRepo,
		shipmentRepo:    shipmentRepo,
		authRepo:        authRepo,
		commission:      commission,
		deliveryConfigs: deliveryConfigs,
	}
}

// Bootstrap creates indexes and seeds the default commission tiers and
// delivery configurations. Safe to run on every start; seeding is a no-op
// when data already exists.
func (s *Server) Bootstrap(ctx context.Context) error {
	if err := s.tierRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.configRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.shipmentRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.authRepo.EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := s.commission.SeedDefaultTiers(ctx); err != nil {
		return err
	}
	return s.deliveryConfigs.SeedDefaults(ctx)
}
