// Package httpapi wires the HTTP transport (Gin) to the news services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Every unmatched route or method answers with the JSON error envelope
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/docs"
	"github.com/tbourn/nc-news/internal/config"
	"github.com/tbourn/nc-news/internal/http/handlers"
	"github.com/tbourn/nc-news/internal/http/middleware"
	"github.com/tbourn/nc-news/internal/services"
)

var (
	corsMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderIdempotencyKey}
	corsExpose  = []string{"X-Request-ID", "Content-Length", middleware.HeaderIdempotencyReplayed}
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine and mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access log with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Gzip (skips /metrics, which compresses itself)
//  8. Idempotency validator (before rate limiter to allow bypass on replay)
//  9. Rate limiter (per IP, bypass on replay; disabled when RateRPS is 0)
//  10. CORS and Security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.Logger(middleware.LogOptions{
		MaskHeaders: []string{"X-API-Key"},
		LogHeaders:  cfg.LogLevel == "debug",
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(cfg.MaxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithCustomShouldCompressFn(shouldGzip("/metrics"))))

	// 8) Idempotency validation (before rate limiting)
	idemSvc := &services.IdempotencyService{DB: db, TTL: cfg.IdempotencyTTL}
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{MaxLen: 200}, idemSvc.Exists))

	// 9) Token-bucket rate limiter per IP
	if cfg.RateRPS > 0 {
		rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP())
		r.Use(rl.Handler())
	}

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header.
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExpose,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist.
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     corsMethods,
			AllowHeaders:     corsHeaders,
			ExposeHeaders:    corsExpose,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	// Liveness/readiness
	r.GET("/health", health(db))

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db
	limits := services.Limits{Default: cfg.Pages.DefaultLimit, Max: cfg.Pages.MaxLimit}
	h := handlers.New(
		&services.TopicService{DB: db},
		&services.ArticleService{DB: db, Limits: limits},
		&services.CommentService{DB: db, Limits: limits},
		&services.UserService{DB: db},
		idemSvc,
	)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.GET("", h.GetEndpoints)

		// Topics
		api.GET("/topics", h.ListTopics)
		api.POST("/topics", h.CreateTopic)

		// Articles
		api.GET("/articles", h.ListArticles)
		api.POST("/articles", h.CreateArticle)
		api.GET("/articles/:article_id", h.GetArticle)
		api.PATCH("/articles/:article_id", h.VoteArticle)
		api.DELETE("/articles/:article_id", h.DeleteArticle)

		// Comments
		api.GET("/articles/:article_id/comments", h.ListComments)
		api.POST("/articles/:article_id/comments", h.CreateComment)
		api.PATCH("/comments/:comment_id", h.VoteComment)
		api.DELETE("/comments/:comment_id", h.DeleteComment)

		// Users
		api.GET("/users", h.ListUsers)
		api.POST("/users", h.CreateUser)
		api.GET("/users/:username", h.GetUser)
	}
}

// health pings the store; an unreachable database is 503.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("health: database unreachable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// shouldGzip decides per request whether gzip wraps the response: the client
// must accept gzip, the path must not be excluded, and the method must be one
// that answers with a body. A successful DELETE is a 204 and must not carry
// a Content-Encoding.
func shouldGzip(excluded ...string) func(c *gin.Context) bool {
	skip := make(map[string]struct{}, len(excluded))
	for _, p := range excluded {
		skip[p] = struct{}{}
	}
	return func(c *gin.Context) bool {
		req := c.Request
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") ||
			strings.Contains(req.Header.Get("Connection"), "Upgrade") {
			return false
		}
		if req.Method == http.MethodDelete || req.Method == http.MethodHead {
			return false
		}
		_, hit := skip[req.URL.Path]
		return !hit
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
