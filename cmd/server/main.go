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

	catalogapp "github.com/babyheaven/backend/internal/application/catalog"
	financeapp "github.com/babyheaven/backend/internal/application/finance"
	identityapp "github.com/babyheaven/backend/internal/application/identity"
	reportapp "github.com/babyheaven/backend/internal/application/report"
	tradeapp "github.com/babyheaven/backend/internal/application/trade"
	"github.com/babyheaven/backend/internal/infrastructure/auth"
	"github.com/babyheaven/backend/internal/infrastructure/config"
	"github.com/babyheaven/backend/internal/infrastructure/event"
	"github.com/babyheaven/backend/internal/infrastructure/logger"
	"github.com/babyheaven/backend/internal/infrastructure/persistence"
	"github.com/babyheaven/backend/internal/interfaces/http/handler"
	"github.com/babyheaven/backend/internal/interfaces/http/middleware"
	"github.com/babyheaven/backend/internal/interfaces/http/router"
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

	log.Info("Starting Baby Heaven backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
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
	productRepo := persistence.NewGormProductRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Token blacklist: Redis when reachable, otherwise an in-process
	// fallback. The shop runs a single backend instance, so the
	// fallback still honors logouts until the next restart.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing redis connection", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	productService := catalogapp.NewProductService(productRepo)
	salesOrderService := tradeapp.NewSalesOrderService(salesOrderRepo, productRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	reportService := reportapp.NewReportService(salesOrderRepo, expenseRepo, productRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)

	// Initialize event bus and inject it into publishing services
	eventBus := event.NewInMemoryEventBus(log)
	productService.SetEventPublisher(eventBus)
	salesOrderService.SetEventPublisher(eventBus)
	expenseService.SetEventPublisher(eventBus)

	// Publish reorder warnings to the log when products sell out
	reorderHandler := catalogapp.NewReorderAlertHandler(productRepo, log)
	eventBus.Subscribe(reorderHandler)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	salesOrderHandler := handler.NewSalesOrderHandler(salesOrderService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)
	systemHandler := handler.NewSystemHandler(db.Ping)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)

	productRoutes := router.NewDomainGroup("catalog", "/products")
	productRoutes.POST("", productHandler.Create)
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/sellable", productHandler.ListSellable)
	productRoutes.GET("/:id", productHandler.GetByID)
	productRoutes.PUT("/:id", productHandler.Update)
	productRoutes.PUT("/:id/inventory", productHandler.AdjustInventory)
	productRoutes.DELETE("/:id", productHandler.Delete)

	orderRoutes := router.NewDomainGroup("trade", "/orders")
	orderRoutes.POST("", salesOrderHandler.Place)
	orderRoutes.GET("", salesOrderHandler.List)
	orderRoutes.GET("/number/:number", salesOrderHandler.GetByNumber)
	orderRoutes.GET("/:id", salesOrderHandler.GetByID)
	orderRoutes.PUT("/:id", salesOrderHandler.Update)
	orderRoutes.DELETE("/:id", salesOrderHandler.Delete)

	expenseRoutes := router.NewDomainGroup("finance", "/expenses")
	expenseRoutes.POST("", expenseHandler.Record)
	expenseRoutes.GET("", expenseHandler.List)
	expenseRoutes.GET("/:id", expenseHandler.GetByID)
	expenseRoutes.PUT("/:id", expenseHandler.Update)
	expenseRoutes.DELETE("/:id", expenseHandler.Delete)

	reportRoutes := router.NewDomainGroup("report", "/reports")
	reportRoutes.GET("/sales", reportHandler.MonthlySales)
	reportRoutes.GET("/inventory", reportHandler.Inventory)
	reportRoutes.GET("/dashboard", reportHandler.Dashboard)

	r.Register(authRoutes).
		Register(productRoutes).
		Register(orderRoutes).
		Register(expenseRoutes).
		Register(reportRoutes)

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
