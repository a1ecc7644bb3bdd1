package server

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	socialauth "lookcircuit-backend/internal/auth"
	"lookcircuit-backend/internal/catalog"
	"lookcircuit-backend/internal/design"
	"lookcircuit-backend/internal/recommendations"
	"lookcircuit-backend/internal/scans"
	"lookcircuit-backend/internal/sessions"
	"lookcircuit-backend/internal/shared/config"
	"lookcircuit-backend/internal/shared/metrics"
	"lookcircuit-backend/internal/shared/server/middleware"
	"lookcircuit-backend/internal/shared/server/respond"
	"lookcircuit-backend/internal/shared/storage/db"
	"lookcircuit-backend/internal/users"
	"lookcircuit-backend/internal/wardrobe"
)

const (
	apiPrefix     = "/api/v1"
	analysisGroup = "ANALYSIS"
)

// RouterDeps are the handlers mounted under /api/v1. Nil handlers are skipped.
// A nil DB means the in-memory repositories are serving.
type RouterDeps struct {
	Config                 config.Config
	DB                     *sql.DB
	ScanHandler            *scans.Handler
	RecommendationsHandler *recommendations.Handler
	CatalogHandler         *catalog.Handler
	WardrobeHandler        *wardrobe.Handler
	UserHandler            *users.Handler
	SessionHandler         *sessions.Handler
	DesignHandler          *design.Handler
	SocialAuth             *socialauth.Service
	RateLimiter            *middleware.RateLimiter
}

// PublicPaths lists routes reachable without a token or guest id.
func PublicPaths() []string {
	return []string{
		"/health",
		"/metrics",
		apiPrefix + "/design/tokens",
		apiPrefix + "/auth/",
	}
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(PublicPaths()...),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				analysisGroup: {
					Rate:  float64(deps.Config.AnalysisRatePerMin) / 60.0,
					Burst: deps.Config.AnalysisBurst,
				},
			},
			GroupFor: rateLimitGroup,
			Limiter:  deps.RateLimiter,
		}),
	)

	health := func(c *gin.Context) {
		respond.OK(c, gin.H{
			"ok":       true,
			"project":  deps.Config.ProjectName,
			"database": db.Status(c.Request.Context(), deps.DB),
		})
	}
	r.GET("/health", health)
	r.GET("/metrics", metrics.Handler())

	api := r.Group(apiPrefix)
	api.GET("/health", health)
	if deps.SocialAuth != nil {
		deps.SocialAuth.RegisterRoutes(api)
	}
	if deps.DesignHandler != nil {
		deps.DesignHandler.RegisterRoutes(api)
	}
	if deps.ScanHandler != nil {
		deps.ScanHandler.RegisterRoutes(api)
	}
	if deps.RecommendationsHandler != nil {
		deps.RecommendationsHandler.RegisterRoutes(api)
	}
	if deps.CatalogHandler != nil {
		deps.CatalogHandler.RegisterRoutes(api)
	}
	if deps.WardrobeHandler != nil {
		deps.WardrobeHandler.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.SessionHandler != nil {
		deps.SessionHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup puts image uploads in the analysis bucket. Everything else is unlimited.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, apiPrefix+"/analysis/") {
		return analysisGroup
	}
	return ""
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
