package router

import (
	"github.com/gin-gonic/gin"
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/loja/backend/internal/infrastructure/logger"
	"github.com/loja/backend/internal/interfaces/http/handler"
	"github.com/loja/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by New
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Client   *handler.ClientHandler
	Supplier *handler.SupplierHandler
	User     *handler.UserHandler
	Sale     *handler.SaleHandler
	System   *handler.SystemHandler
}

// Options configures the engine built by New
type Options struct {
	HTTP    config.HTTPConfig
	Swagger config.SwaggerConfig

	// Verifier checks bearer tokens on the probe routes, and on every CRUD
	// route when HTTP.ProtectCRUD is set
	Verifier middleware.TokenVerifier
	// TokenRecorder is optional
	TokenRecorder middleware.TokenCheckRecorder
	// LoginLimiter throttles POST /login when HTTP.RateLimitEnabled is set
	LoginLimiter *middleware.RateLimiter
	// Metrics enables GET /metrics when set
	Metrics *middleware.HTTPMetrics

	TracingEnabled   bool
	ServiceName      string
	TracerProvider   trace.TracerProvider
	ProfilingEnabled bool

	Logger *zap.Logger
}

// New builds the gin engine with the middleware stack and every route
func New(opts Options, h Handlers) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(opts.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(opts.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	if opts.TracingEnabled {
		tracing := middleware.DefaultTracingConfig()
		if opts.ServiceName != "" {
			tracing.ServiceName = opts.ServiceName
		}
		tracing.TracerProvider = opts.TracerProvider
		engine.Use(middleware.TracingWithConfig(tracing))
		engine.Use(middleware.TracingAttributeInjector())
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(logger.GinMiddleware(log))
	if opts.ProfilingEnabled {
		engine.Use(middleware.ProfilingWithConfig(middleware.DefaultProfilingConfig()))
	}
	if opts.Metrics != nil {
		engine.Use(opts.Metrics.Middleware())
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(opts.HTTP)))
	engine.Use(middleware.BodyLimit(opts.HTTP.MaxBodySize))

	engine.GET("/health", h.System.Health)
	if opts.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    opts.Swagger.Enabled,
			AllowedIPs: opts.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	auth := jwtMiddleware(opts, log)
	var crudAuth gin.HandlerFunc
	if opts.HTTP.ProtectCRUD {
		crudAuth = auth
	}

	var loginLimit gin.HandlerFunc
	if opts.HTTP.RateLimitEnabled && opts.LoginLimiter != nil {
		loginLimit = middleware.RateLimit(opts.LoginLimiter)
		log.Info("Login rate limiting enabled",
			zap.Int("requests", opts.LoginLimiter.Limit()),
			zap.Duration("window", opts.HTTP.RateLimitWindow),
		)
	}

	r := NewRouter(engine)
	for _, group := range domainGroups(h, auth, crudAuth, loginLimit) {
		r.Register(group)
	}
	r.Setup()

	return engine
}

// domainGroups lays out the public routes. auth guards the probes; crudAuth
// is nil unless the CRUD routes are protected too.
func domainGroups(h Handlers, auth, crudAuth, loginLimit gin.HandlerFunc) []*DomainGroup {
	login := NewDomainGroup("login", "").Use(loginLimit)
	login.POST("/login", h.Auth.Login)

	probes := NewDomainGroup("probes", "").Use(auth, middleware.TracingAttributeInjector())
	probes.GET("/rotaSegura", h.Auth.RotaSegura)
	probes.GET("/rotaProtegida", h.Auth.RotaProtegida)

	catalog := NewDomainGroup("catalog", "").Use(crudAuth)
	catalog.POST("/createproduto", h.Product.Create)
	catalog.GET("/produtos", h.Product.List)
	catalog.GET("/produtos/:id", h.Product.GetByID)
	catalog.PUT("/produtos/:id", h.Product.Update)
	catalog.DELETE("/produtos/:id", h.Product.Delete)

	partner := NewDomainGroup("partner", "").Use(crudAuth)
	partner.POST("/createcliente", h.Client.Create)
	partner.GET("/clientes", h.Client.List)
	partner.GET("/clientes/:id", h.Client.GetByID)
	partner.PUT("/clientes/:id", h.Client.Update)
	partner.DELETE("/clientes/:id", h.Client.Delete)
	partner.POST("/createfornecedor", h.Supplier.Create)
	partner.GET("/fornecedores", h.Supplier.List)
	partner.GET("/fornecedores/:id", h.Supplier.GetByID)
	partner.PUT("/fornecedores/:id", h.Supplier.Update)
	partner.DELETE("/fornecedores/:id", h.Supplier.Delete)

	identity := NewDomainGroup("identity", "").Use(crudAuth)
	identity.POST("/createusuario", h.User.Create)
	identity.GET("/usuarios", h.User.List)
	identity.GET("/usuarios/:id", h.User.GetByID)
	identity.PUT("/usuarios/:id", h.User.Update)
	identity.DELETE("/usuarios/:id", h.User.Delete)

	trade := NewDomainGroup("trade", "").Use(crudAuth)
	trade.POST("/createvenda", h.Sale.Create)
	trade.GET("/vendas", h.Sale.List)
	trade.GET("/vendas/:id", h.Sale.GetByID)
	trade.GET("/vendas/produto/:id", h.Sale.ByProduct)
	trade.GET("/vendas/produto/sum/:id", h.Sale.SummaryByProduct)
	trade.GET("/vendas/cliente/:id", h.Sale.ByClient)
	trade.GET("/vendas/cliente/sum/:id", h.Sale.SummaryByClient)

	system := NewDomainGroup("system", "/system")
	system.GET("/info", h.System.Info)

	return []*DomainGroup{login, probes, catalog, partner, identity, trade, system}
}

func jwtMiddleware(opts Options, log *zap.Logger) gin.HandlerFunc {
	return middleware.JWTAuthWithConfig(middleware.JWTMiddlewareConfig{
		Verifier: opts.Verifier,
		Recorder: opts.TokenRecorder,
		Logger:   log,
	})
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
