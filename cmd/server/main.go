package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	pantryapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/pantry"
	productionapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/production"
	salesapp "github.com/sudarsanyes/axolotl-kitchen/internal/application/sales"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/auth"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/config"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/logger"
	"github.com/sudarsanyes/axolotl-kitchen/internal/infrastructure/persistence"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/handler"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/middleware"
	"github.com/sudarsanyes/axolotl-kitchen/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Kitchen Ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	ingredientRepo := persistence.NewGormIngredientRepository(db.DB)
	lotRepo := persistence.NewGormProductionLotRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	lotCodeAllocator := persistence.NewGormLotCodeAllocator(db.DB)

	// Initialize application services
	ingredientService := pantryapp.NewIngredientService(ingredientRepo)
	lotService := productionapp.NewLotService(
		lotRepo,
		ingredientRepo,
		lotCodeAllocator,
		cfg.Inventory.ShelfLifeDays,
		cfg.Inventory.LotCodePrefix,
	)
	salesService := salesapp.NewSalesService(saleRepo, lotRepo)

	// Token verification only; issuance happens out of band
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	base := handler.NewBaseHandler(log)
	ingredientHandler := handler.NewIngredientHandler(base, ingredientService)
	lotHandler := handler.NewLotHandler(base, lotService)
	saleHandler := handler.NewSaleHandler(base, salesService)
	systemHandler := handler.NewSystemHandler(base, db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators before any routes bind requests
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and request
	// logging can tag their entries.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning, unauthenticated)
	engine.GET("/health", systemHandler.Health)

	// API routes; reads are open, mutations require a bearer token
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService:   jwtService,
		SkipReadOnly: true,
		Logger:       log,
	}))
	r.Register(ingredientHandler).
		Register(lotHandler).
		Register(saleHandler).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
