package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/productcatalog/catalog-api/internal/api/handler"
	"github.com/productcatalog/catalog-api/internal/api/middleware"
	"github.com/productcatalog/catalog-api/internal/core/domain"
	"github.com/productcatalog/catalog-api/internal/core/service"
	"github.com/productcatalog/catalog-api/internal/core/token"
	"github.com/productcatalog/catalog-api/internal/infrastructure/config"
	mongodb "github.com/productcatalog/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/productcatalog/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, 24*time.Hour)

	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, issuer)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb, cfg.ProductCacheTTL)
	productService := service.NewProductService(productRepo, productCache, log)
	productHandler := handler.NewProductHandler(productService, log)

	authRequired := middleware.Auth(issuer)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Product routes (bearer token required; mutations are admin-only) ---
	products := e.Group("/products", authRequired)
	products.GET("", productHandler.List)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
