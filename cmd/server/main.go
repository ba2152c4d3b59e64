package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	dictapp "github.com/mdm/backend/internal/application/dictionary"
	geoapp "github.com/mdm/backend/internal/application/geo"
	identityapp "github.com/mdm/backend/internal/application/identity"
	jobsapp "github.com/mdm/backend/internal/application/jobs"
	mdmapp "github.com/mdm/backend/internal/application/mdm"
	"github.com/mdm/backend/internal/infrastructure/auth"
	"github.com/mdm/backend/internal/infrastructure/cache"
	"github.com/mdm/backend/internal/infrastructure/compliance"
	"github.com/mdm/backend/internal/infrastructure/config"
	"github.com/mdm/backend/internal/infrastructure/event"
	"github.com/mdm/backend/internal/infrastructure/logger"
	"github.com/mdm/backend/internal/infrastructure/persistence"
	"github.com/mdm/backend/internal/infrastructure/telemetry"
	"github.com/mdm/backend/internal/interfaces/http/handler"
	"github.com/mdm/backend/internal/interfaces/http/middleware"
	"github.com/mdm/backend/internal/interfaces/http/router"
)

// version is set at build time via -ldflags
var version = "dev"

// productCacheTTL bounds staleness of the Redis product projection when
// the service misses a removal
const productCacheTTL = 24 * time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.NewFromAppConfig(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting MDM backend",
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	// Connect to database. SQL logging stays off in production.
	gormLogLevel := gormlogger.Silent
	if cfg.App.Env != "production" {
		gormLogLevel = gormlogger.Warn
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()

	// Telemetry providers. Both degrade to no-ops when disabled.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tracerProvider.Shutdown(shutdownCtx)
	}()

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = meterProvider.Shutdown(shutdownCtx)
	}()

	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:          cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		SlowQueryThresh:  cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:         "postgresql",
		WithoutVariables: true,
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Redis backs the product read projection and the token blacklist.
	// The service stays up without it, with both features degraded.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	var productCache mdmapp.ProductCache
	var blacklist auth.TokenBlacklist
	pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unavailable, product cache disabled and token blacklist in-memory", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		productCache = cache.NewRedisProductCache(redisClient, productCacheTTL)
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	}
	pingCancel()

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	catalogRepo := persistence.NewGormCatalogRepository(db.DB)
	channelRepo := persistence.NewGormChannelRepository(db.DB)
	catalogProductRepo := persistence.NewGormCatalogProductRepository(db.DB)
	regionRepo := persistence.NewGormRegionRepository(db.DB)
	countryRepo := persistence.NewGormCountryRepository(db.DB)
	localeRepo := persistence.NewGormLocaleRepository(db.DB)
	dictionaryRepo := persistence.NewGormDictionaryRepository(db.DB)
	backgroundJobRepo := persistence.NewGormBackgroundJobRepository(db.DB)
	workflowJobRepo := persistence.NewGormWorkflowJobRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	// Event serialization and transactional outbox. Repositories save
	// domain events into the outbox in the same transaction as the
	// aggregate.
	serializer := event.NewEventSerializer()
	event.RegisterAllEvents(serializer)

	outboxPublisher := event.NewOutboxPublisher(serializer)
	productRepo.SetOutboxEventSaver(outboxPublisher)
	catalogRepo.SetOutboxEventSaver(outboxPublisher)
	catalogProductRepo.SetOutboxEventSaver(outboxPublisher)
	userRepo.SetOutboxEventSaver(outboxPublisher)

	// Compliance collaborator. Optional: the tree renders without
	// annotation and the proxy endpoints answer 503 when unconfigured.
	var complianceClient geoapp.ComplianceClient
	if client, err := compliance.NewHTTPClient(cfg.Compliance, log); err == nil {
		complianceClient = client
	} else {
		log.Warn("Compliance screening disabled", zap.Error(err))
	}

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	productService := mdmapp.NewProductService(productRepo, productCache, log)
	catalogService := mdmapp.NewCatalogService(catalogRepo, channelRepo, regionRepo)
	catalogProductService := mdmapp.NewCatalogProductService(catalogProductRepo, catalogRepo, productRepo)
	dictionaryService := dictapp.NewService(dictionaryRepo)
	jobsService := jobsapp.NewMonitorService(backgroundJobRepo, workflowJobRepo)
	treeService := geoapp.NewTreeService(regionRepo, countryRepo, localeRepo, complianceClient, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)

	// SSE fan-out subscribes to the event bus and relays selected
	// domain events to connected clients. Delivery is wrapped with
	// idempotency so outbox retries do not produce duplicate pushes.
	streamHandler := handler.NewEventStreamHandler(cfg.SSE, handler.WithStreamLogger(log))
	defer streamHandler.Stop()

	idempotencyStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log)).CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	idempotentStream := event.NewIdempotentHandler(streamHandler, idempotencyStore, log)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(idempotentStream, idempotentStream.EventTypes()...)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = eventBus.Stop(stopCtx)
	}()

	// Outbox processor polls pending entries and publishes them on the bus
	if cfg.Event.ProcessorEnabled {
		processorCfg := event.DefaultOutboxProcessorConfig()
		if cfg.Event.BatchSize > 0 {
			processorCfg.BatchSize = cfg.Event.BatchSize
		}
		if cfg.Event.PollInterval > 0 {
			processorCfg.PollInterval = cfg.Event.PollInterval
		}
		processorCfg.CleanupEnabled = cfg.Event.CleanupEnabled
		if cfg.Event.CleanupRetention > 0 {
			processorCfg.CleanupRetention = cfg.Event.CleanupRetention
		}
		outboxProcessor := event.NewOutboxProcessor(outboxRepo, eventBus, serializer, processorCfg, log)
		if err := outboxProcessor.Start(ctx); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = outboxProcessor.Stop(stopCtx)
		}()
	}

	// HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	catalogProductHandler := handler.NewCatalogProductHandler(catalogProductService)
	dictionaryHandler := handler.NewDataDictionaryHandler(dictionaryService)
	treeHandler := handler.NewTreeHandler(treeService)
	complianceHandler := handler.NewComplianceHandler(treeService)
	jobsHandler := handler.NewJobsHandler(jobsService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(version)

	// Gin setup
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	// Global middleware, ordered:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. Tracing/Metrics - Observability
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow))
	}

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.Tracing())
		engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			ServiceName:   cfg.Telemetry.ServiceName,
			Enabled:       true,
		}))
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT authentication for API routes, with public endpoints skipped
	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Tenant resolution runs after JWT so claims win over the
	// X-Tenant-ID header. Public endpoints skip tenant checks too.
	tenantConfig := middleware.DefaultTenantConfig()
	tenantConfig.SkipPaths = append(tenantConfig.SkipPaths, jwtConfig.SkipPaths...)
	tenantConfig.Logger = log
	r.Use(middleware.TenantMiddlewareWithConfig(tenantConfig))

	// Product master data
	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.POST("", productHandler.Create)
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/analytics/summary", productHandler.Summary)
	productRoutes.GET("/types/list", productHandler.Types)
	productRoutes.GET("/:id", productHandler.GetByID)
	productRoutes.PUT("/:id", productHandler.Update)
	productRoutes.DELETE("/:id", productHandler.Delete)

	// Catalogs with channel and region lookups
	catalogRoutes := router.NewDomainGroup("catalogs", "/catalogs")
	catalogRoutes.POST("", catalogHandler.Create)
	catalogRoutes.GET("", catalogHandler.List)
	catalogRoutes.GET("/channels", catalogHandler.Channels)
	catalogRoutes.GET("/regions", catalogHandler.Regions)
	catalogRoutes.GET("/:id", catalogHandler.GetByID)
	catalogRoutes.PUT("/:id", catalogHandler.Update)
	catalogRoutes.DELETE("/:id", catalogHandler.Delete)

	// Catalog-product assignments, addressed by composite key
	catalogProductRoutes := router.NewDomainGroup("catalogproduct", "/catalogproduct")
	catalogProductRoutes.POST("", catalogProductHandler.Add)
	catalogProductRoutes.PUT("/:catalogId/:productId", catalogProductHandler.Update)
	catalogProductRoutes.DELETE("/:catalogId/:productId", catalogProductHandler.Remove)
	catalogProductRoutes.GET("/catalog/:catalogId", catalogProductHandler.ListByCatalog)

	// Data dictionary
	dictionaryRoutes := router.NewDomainGroup("data-dictionary", "/data-dictionary")
	dictionaryRoutes.GET("", dictionaryHandler.List)
	dictionaryRoutes.GET("/categories", dictionaryHandler.Categories)
	dictionaryRoutes.GET("/validation-rules", dictionaryHandler.ValidationRules)

	// Geographic hierarchy
	treeRoutes := router.NewDomainGroup("tree", "/tree")
	treeRoutes.GET("", treeHandler.Tree)
	treeRoutes.POST("/nodes", treeHandler.CreateNode)
	treeRoutes.DELETE("/nodes/:id", treeHandler.DeleteNode)

	// Trade-compliance proxy
	complianceRoutes := router.NewDomainGroup("compliance", "/compliance")
	complianceRoutes.GET("/screen/country/:code", complianceHandler.ScreenCountry)
	complianceRoutes.GET("/assess/region/:code", complianceHandler.AssessRegion)

	// Job monitoring
	jobRoutes := router.NewDomainGroup("catalogmanagement", "/catalogmanagement")
	jobRoutes.GET("/jobs", jobsHandler.Jobs)
	jobRoutes.GET("/jobs/stats", jobsHandler.Stats)
	jobRoutes.GET("/workflow-jobs", jobsHandler.WorkflowJobs)

	// Authentication, with a stricter per-IP budget against brute force
	authRoutes := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRoutes.Use(middleware.AuthRateLimit(authLimiter))
	}
	authRoutes.POST("/login", authHandler.Login)
	authRoutes.POST("/refresh", authHandler.Refresh)
	authRoutes.POST("/logout", authHandler.Logout)

	// User management
	userRoutes := router.NewDomainGroup("users", "/users")
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.GetByID)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)

	// Live event stream
	eventRoutes := router.NewDomainGroup("events", "/events")
	eventRoutes.GET("/stream", streamHandler.Stream)

	// System endpoints
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/info", systemHandler.Info)

	r.Register(productRoutes).
		Register(catalogRoutes).
		Register(catalogProductRoutes).
		Register(dictionaryRoutes).
		Register(treeRoutes).
		Register(complianceRoutes).
		Register(jobRoutes).
		Register(authRoutes).
		Register(userRoutes).
		Register(eventRoutes).
		Register(systemRoutes)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
