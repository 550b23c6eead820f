package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/aps-eligibility-api/api/swagger"
	"github.com/noah-isme/aps-eligibility-api/internal/repository"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	"github.com/noah-isme/aps-eligibility-api/pkg/cache"
	"github.com/noah-isme/aps-eligibility-api/pkg/config"
	"github.com/noah-isme/aps-eligibility-api/pkg/database"
	"github.com/noah-isme/aps-eligibility-api/pkg/logger"
)

// @title APS Eligibility API
// @version 1.0.0
// @description Course eligibility and university matching for South African APS scores
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var cacheRepo *repository.CacheRepository
	if cfg.Eligibility.CacheEnabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, eligibility cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, "aps")
			defer cacheRepo.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(nil, metricsSvc, cfg.Eligibility.CacheTTL, logr, false)
	if cacheRepo != nil {
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Eligibility.CacheTTL, logr, true)
	}

	catalogParams := service.CatalogServiceParams{Cache: cacheSvc, Metrics: metricsSvc, Logger: logr}
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Fatal("connect catalog database", zap.Error(err))
		}
		defer db.Close() //nolint:errcheck
		catalogParams.Source = repository.NewCatalogRepository(db)
		catalogParams.SourceName = config.CatalogSourcePostgres
	}
	catalogSvc := service.NewCatalogService(catalogParams)
	if err := catalogSvc.Load(ctx); err != nil {
		logr.Fatal("load catalog", zap.Error(err))
	}

	eligibilitySvc := service.NewEligibilityService(service.EligibilityServiceParams{
		Catalog:   catalogSvc,
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validator.New(),
		Logger:    logr,
		Config: service.EligibilityConfig{
			Tolerance:          cfg.Eligibility.AlmostTolerance,
			CompetitiveAPS:     cfg.Eligibility.CompetitiveAPS,
			MaxRecommendations: cfg.Eligibility.MaxRecommendations,
			CacheTTL:           cfg.Eligibility.CacheTTL,
		},
	})
	exportSvc := service.NewExportService(eligibilitySvc, nil, nil, logr, cfg.Exports.Enabled)

	router := newRouter(routerDeps{
		cfg:         cfg,
		logger:      logr,
		catalog:     catalogSvc,
		eligibility: eligibilitySvc,
		exports:     exportSvc,
		metrics:     metricsSvc,
		cache:       cacheRepo,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
