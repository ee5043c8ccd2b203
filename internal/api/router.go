package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/smartcare-io/admin-api/docs"
	"github.com/smartcare-io/admin-api/internal/api/handler"
	"github.com/smartcare-io/admin-api/internal/api/middleware"
	"github.com/smartcare-io/admin-api/internal/core/domain"
	"github.com/smartcare-io/admin-api/internal/core/ports"
	"github.com/smartcare-io/admin-api/internal/core/service"
	"github.com/smartcare-io/admin-api/internal/infrastructure/config"
	mongorepo "github.com/smartcare-io/admin-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/smartcare-io/admin-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	cfg *config.Config,
	db *mongo.Database,
	rdb *redis.Client,
	invites ports.InviteDispatcher,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("smartcare"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	partnerRepo := mongorepo.NewPartnerRepository(db)
	ticketRepo := mongorepo.NewTicketRepository(db)
	tokenStore := redisrepo.NewInviteTokenStore(rdb)

	userService := service.NewUserService(userRepo, partnerRepo, tokenStore, invites, log)
	ticketService := service.NewTicketService(ticketRepo, log)
	partnerService := service.NewPartnerService(partnerRepo)
	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, 24*time.Hour)

	production := cfg.Production()
	userHandler := handler.NewUserHandler(userService, log, production)
	ticketHandler := handler.NewTicketHandler(ticketService, log, production)
	partnerHandler := handler.NewPartnerHandler(partnerService, log, production)
	authHandler := handler.NewAuthHandler(authService, log)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/activate", authHandler.Activate)

	// --- Admin routes ---
	users := e.Group("/v1/users", authRequired, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)

	partners := e.Group("/v1/partners", authRequired, adminOnly)
	partners.GET("", partnerHandler.List)

	// --- Ticket routes (any authenticated principal) ---
	tickets := e.Group("/v1/tickets", authRequired)
	tickets.GET("", ticketHandler.List)
	tickets.POST("", ticketHandler.Create)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
