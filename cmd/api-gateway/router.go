package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/aps-eligibility-api/internal/handler"
	"github.com/noah-isme/aps-eligibility-api/internal/middleware"
	"github.com/noah-isme/aps-eligibility-api/internal/repository"
	"github.com/noah-isme/aps-eligibility-api/internal/service"
	"github.com/noah-isme/aps-eligibility-api/pkg/config"
	"github.com/noah-isme/aps-eligibility-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/aps-eligibility-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/aps-eligibility-api/pkg/middleware/requestid"
)

type routerDeps struct {
	cfg         *config.Config
	logger      *zap.Logger
	catalog     *service.CatalogService
	eligibility *service.EligibilityService
	exports     *service.ExportService
	metrics     *service.MetricsService
	cache       *repository.CacheRepository
}

func newRouter(deps routerDeps) *gin.Engine {
	cfg := deps.cfg

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if deps.metrics != nil {
		r.Use(middleware.Metrics(deps.metrics))
	}
	r.Use(middleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(deps.metrics, deps.catalog, nil)
	if deps.cache != nil {
		metricsHandler = handler.NewMetricsHandler(deps.metrics, deps.catalog, deps.cache)
	}
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	catalogHandler := handler.NewCatalogHandler(deps.catalog)
	eligibilityHandler := handler.NewEligibilityHandler(deps.eligibility)
	exportHandler := handler.NewExportHandler(deps.exports)

	api := r.Group(cfg.APIPrefix)
	api.GET("/universities", catalogHandler.Universities)
	api.GET("/universities/:id/programs", eligibilityHandler.Programs)
	api.GET("/universities/:id/programs/export", exportHandler.Programs)
	api.POST("/universities/:id/eligibility", eligibilityHandler.Evaluate)
	api.POST("/eligibility", eligibilityHandler.Summary)
	api.GET("/courses/:name/eligibility", eligibilityHandler.Course)
	api.POST("/aps/calculate", eligibilityHandler.CalculateAPS)
	api.GET("/catalog/issues", catalogHandler.Issues)

	return r
}
