package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/mercadito/ecommerce-api/internal/api/handler"
	"github.com/mercadito/ecommerce-api/internal/api/middleware"
	"github.com/mercadito/ecommerce-api/internal/core/service"
	mongostore "github.com/mercadito/ecommerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/mercadito/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/mercadito/ecommerce-api/internal/pkg/config"
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
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	cartRepo := mongostore.NewCartRepository(db)
	catalog := redisstore.NewProductCache(rdb, productRepo)

	tokens := service.NewTokenService(service.TokenConfig{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	}, userRepo)
	authService := service.NewAuthService(userRepo, tokens)
	stockGuard := service.NewStockService(productRepo)
	cartService := service.NewCartService(cartRepo, stockGuard, catalog, log)
	productService := service.NewProductService(catalog, log)

	cookieOpts := middleware.CookieOptions{
		Secure:     cfg.IsProduction(),
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	}
	authMW := middleware.Auth(tokens, cookieOpts)

	// 5 attempts at once, then one every 2 seconds per client IP.
	loginLimiter := middleware.NewRateLimiter(rate.Limit(0.5), 5)

	authHandler := handler.NewAuthHandler(authService, cookieOpts)
	cartHandler := handler.NewCartHandler(cartService)
	productHandler := handler.NewProductHandler(productService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginLimiter.Middleware())
	e.POST("/auth/logout", authHandler.Logout)

	// --- Catalog routes (reads public, writes authenticated) ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authMW)
	products.PUT("/:id", productHandler.Update, authMW)
	products.DELETE("/:id", productHandler.Delete, authMW)

	// --- Cart routes (all authenticated) ---
	cart := e.Group("/cart", authMW)
	cart.GET("", cartHandler.Get)
	cart.GET("/summary", cartHandler.Summary)
	cart.POST("/add", cartHandler.Add)
	cart.PUT("/update", cartHandler.Update)
	cart.DELETE("/remove", cartHandler.Remove)
	cart.DELETE("/clear", cartHandler.Clear)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
