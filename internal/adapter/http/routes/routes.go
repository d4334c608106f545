package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "estimate_app/docs"
	"estimate_app/internal/adapter/http/handlers"
	"estimate_app/internal/adapter/http/middleware"
	"estimate_app/internal/adapter/persistence/repository"
	"estimate_app/internal/adapter/persistence/store"
	"estimate_app/internal/adapter/render"
	"estimate_app/internal/config"
	"estimate_app/internal/infrastructure/logger"
	"estimate_app/internal/infrastructure/metrics"
	"estimate_app/internal/usecase"
	"estimate_app/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything NewRouter needs. Registry may be nil, in which
// case /metrics is not mounted.
type Dependencies struct {
	Config   *config.Config
	Log      *zap.Logger
	Store    interfaces.IRecordStore
	Registry *prometheus.Registry
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recordStore, closeStore, err := store.Open(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open record store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			zlog.Warn("record store close failed", zap.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router, err := NewRouter(ctx, Dependencies{Config: cfg, Log: zlog, Store: recordStore, Registry: registry})
	if err != nil {
		zlog.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("http server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("failed to startup the application", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}

// NewRouter wires repositories, use cases and handlers on top of deps.Store.
func NewRouter(ctx context.Context, deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	zlog := logger.OrNop(deps.Log)

	var m *metrics.Metrics
	if deps.Registry != nil {
		m = metrics.New(deps.Registry, metrics.Config{ServiceName: "estimate_app", Environment: cfg.Env})
	}

	clientRepo := repository.NewClientRepository(deps.Store, zlog)
	estimateRepo := repository.NewEstimateRepository(deps.Store, zlog)
	settingsRepo := repository.NewSettingsRepository(deps.Store, zlog)

	if cfg.SeedSampleData {
		if _, err := usecase.SeedSampleData(ctx, clientRepo, estimateRepo, time.Now(), zlog); err != nil {
			return nil, err
		}
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo, zlog)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo, zlog)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, clientRepo, settingsRepo, zlog)
	if m != nil {
		estimateUseCase.WithMetrics(m)
	}

	clientHandler := handlers.NewClientHandler(clientUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, settingsUseCase, render.NewRenderer())

	router := gin.New()
	setMiddlewares(router, zlog, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClientRoutes(v1, clientHandler)
	addEstimateRoutes(v1, estimateHandler)
	addSettingsRoutes(v1, settingsHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine, zlog *zap.Logger, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zlog))
	router.Use(middleware.Recovery(zlog))
	router.Use(middleware.CORS())
	if m != nil {
		router.Use(middleware.Metrics(m))
	}
}
