package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/assist"
	"resume-builder/internal/export"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

// RouterDeps carries the handlers and config the router mounts.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	AssistHandler *assist.Handler
	ExportHandler *export.Handler

	// Limiter may be injected for tests; nil gets a fresh one.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules:    defaultRateLimits,
			GroupFor: limitGroup,
			Limiter:  deps.Limiter,
		}),
	)

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ResumeHandler.RegisterRoutes(api)
	deps.AssistHandler.RegisterRoutes(api)
	deps.ExportHandler.RegisterRoutes(api)

	return r
}

// Exports hold a Chrome page open, so they get a far smaller budget than
// the text-only assist calls. CRUD is never throttled.
var defaultRateLimits = map[string]middleware.RateLimitRule{
	"assist": {Rate: 2, Burst: 10},
	"export": {Rate: 0.5, Burst: 3},
}

func limitGroup(c *gin.Context) string {
	path := c.Request.URL.Path
	switch {
	case strings.HasSuffix(path, "/optimize-resume"),
		strings.HasSuffix(path, "/generate-cover-letter"),
		strings.HasSuffix(path, "/ats-scan"):
		return "assist"
	case strings.HasSuffix(path, "/export"),
		strings.HasSuffix(path, "/export/cover-letter"):
		return "export"
	default:
		return ""
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
