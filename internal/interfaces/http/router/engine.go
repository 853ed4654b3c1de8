package router

import (
	"github.com/erp/partners/internal/infrastructure/config"
	"github.com/erp/partners/internal/infrastructure/logger"
	"github.com/erp/partners/internal/interfaces/http/handler"
	"github.com/erp/partners/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// EngineConfig carries everything NewEngine wires together
type EngineConfig struct {
	HTTP    config.HTTPConfig
	Tracing middleware.TracingConfig
	Swagger bool

	Logger      *zap.Logger
	Idempotency gin.HandlerFunc

	Partners *handler.PartnerHandler
	Pages    *handler.PageHandler
	Health   *handler.HealthHandler
}

// NewEngine builds the gin engine with the middleware chain and all routes.
// Handlers left nil are not mounted.
func NewEngine(cfg EngineConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Warn("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = engine.SetTrustedProxies(nil)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Tracing))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Health != nil {
		RegisterHealth(engine, cfg.Health)
	}
	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := NewRouter(engine, WithAPIVersion("v1"))
	if cfg.Partners != nil {
		r.Register(PartnerRoutes(cfg.Partners, cfg.Idempotency))
	}
	r.Setup()

	if cfg.Pages != nil {
		RegisterPages(engine, cfg.Pages)
	}

	return engine
}
