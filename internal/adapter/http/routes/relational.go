package routes

import (
	"log"
	"strconv"

	"estimate_app/internal/adapter/http/handlers"
	"estimate_app/internal/adapter/http/middleware"
	"estimate_app/internal/adapter/persistence/relational"
	"estimate_app/internal/config"
	"estimate_app/internal/infrastructure/database"
	"estimate_app/internal/infrastructure/logger"
	"estimate_app/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RunRelational starts the table-backed CRUD service on RELATIONAL_PORT.
func RunRelational() {
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

	db, err := database.OpenRelational(cfg.RelationalDriver, cfg.RelationalDSN)
	if err != nil {
		zlog.Fatal("database connection failed", zap.String("driver", cfg.RelationalDriver), zap.Error(err))
	}
	repo := relational.NewRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	zlog.Info("connected to relational database", zap.String("driver", cfg.RelationalDriver))

	router := NewRelationalRouter(repo, zlog)
	if err := router.Run(":" + strconv.Itoa(cfg.RelationalPort)); err != nil {
		zlog.Fatal("failed to startup the application", zap.Error(err))
	}
}

func NewRelationalRouter(repo interfaces.IRelationalRepository, zlog *zap.Logger) *gin.Engine {
	zlog = logger.OrNop(zlog)
	h := handlers.NewRelationalHandler(repo, zlog)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(zlog), middleware.Recovery(zlog), middleware.CORS())

	router.GET("/", h.Root)
	router.GET(PathClients, h.ListClients)
	router.POST(PathClients, h.CreateClient)
	router.GET(PathEstimates, h.ListEstimates)
	router.POST(PathEstimates, h.CreateEstimate)
	return router
}
