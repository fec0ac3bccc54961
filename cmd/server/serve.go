package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/loja/backend/docs"
	catalogapp "github.com/loja/backend/internal/application/catalog"
	identityapp "github.com/loja/backend/internal/application/identity"
	partnerapp "github.com/loja/backend/internal/application/partner"
	tradeapp "github.com/loja/backend/internal/application/trade"
	"github.com/loja/backend/internal/infrastructure/auth"
	"github.com/loja/backend/internal/infrastructure/cache"
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/loja/backend/internal/infrastructure/event"
	"github.com/loja/backend/internal/infrastructure/logger"
	"github.com/loja/backend/internal/infrastructure/persistence"
	"github.com/loja/backend/internal/infrastructure/telemetry"
	"github.com/loja/backend/internal/interfaces/http/handler"
	"github.com/loja/backend/internal/interfaces/http/middleware"
	"github.com/loja/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logCfg := &logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	log, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	if tel.Logs.IsEnabled() {
		log, err = logger.New(logCfg, tel.Logs.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level)))
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting loja backend",
		zap.String("version", version),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database_driver", cfg.Database.Driver),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBName:     cfg.Database.DBName,
		LogFullSQL: cfg.Telemetry.DBLogFullSQL,
	}, log); err != nil {
		return err
	}

	if cfg.Database.Driver == config.DriverSQLite || cfg.Database.AutoMigrate {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
		log.Info("Schema migrated")
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWT)

	productService := catalogapp.NewProductService(productRepo, supplierRepo, log)
	clientService := partnerapp.NewClientService(clientRepo, log)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	userService := identityapp.NewUserService(userRepo, hasher, log)
	authService := identityapp.NewAuthService(userRepo, hasher, jwtService, tel.Metrics, log)
	saleService := tradeapp.NewSaleService(saleRepo, productRepo, clientRepo, log)

	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewLogHandler(log))
	eventBus.Subscribe(tel.Metrics)
	if err := eventBus.Start(ctx); err != nil {
		return fmt.Errorf("start event bus: %w", err)
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	productService.SetEventPublisher(eventBus)
	clientService.SetEventPublisher(eventBus)
	supplierService.SetEventPublisher(eventBus)
	userService.SetEventPublisher(eventBus)
	saleService.SetEventPublisher(eventBus)

	var loginLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		store, err := cache.NewCounterStoreFactory(cfg.Redis, cache.WithLogger(log)).Create(cfg.HTTP.RateLimitStore)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		loginLimiter = middleware.NewRateLimiter(store, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow, log)
	}

	httpMetrics, err := middleware.NewHTTPMetrics()
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Options{
		HTTP:             cfg.HTTP,
		Swagger:          cfg.Swagger,
		Verifier:         jwtService,
		TokenRecorder:    tel.Metrics,
		LoginLimiter:     loginLimiter,
		Metrics:          httpMetrics,
		TracingEnabled:   cfg.Telemetry.Enabled,
		ServiceName:      cfg.Telemetry.ServiceName,
		ProfilingEnabled: cfg.Telemetry.ProfilingEnabled,
		Logger:           log,
	}, router.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService),
		Client:   handler.NewClientHandler(clientService),
		Supplier: handler.NewSupplierHandler(supplierService),
		User:     handler.NewUserHandler(userService),
		Sale:     handler.NewSaleHandler(saleService),
		System:   handler.NewSystemHandler(db, version),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited gracefully")
	return nil
}
