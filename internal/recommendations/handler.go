package recommendations

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/metrics"
	"lookcircuit-backend/internal/shared/server/respond"
	"lookcircuit-backend/internal/shared/telemetry"
)

type Handler struct {
	Bundles BundleSource
}

func NewHandler(bundles BundleSource) *Handler {
	if bundles == nil {
		bundles = StaticSource{}
	}
	return &Handler{Bundles: bundles}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	recs := rg.Group("/recommendations")
	recs.POST("/generate", h.generate)
	recs.GET("/occasion/:occasion", h.occasion)
	recs.GET("/occasions", h.occasions)
	recs.GET("/bundle", h.bundle)
	recs.GET("/health", h.health)
}

func (h *Handler) generate(c *gin.Context) {
	var req Input
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid recommendation request", gin.H{"reason": err.Error()})
		return
	}
	res := Generate(req)
	metrics.IncRecommendations()
	telemetry.Info("recommendations.generate", map[string]any{
		"request_id": c.GetString("requestId"),
		"season":     res.ColorAnalysis.Season,
		"face_shape": strings.ToLower(req.FaceShape),
		"hair_light": res.AlternativeStyling != nil,
	})
	respond.OK(c, gin.H{"recommendations": res})
}

func (h *Handler) occasion(c *gin.Context) {
	occasion := strings.TrimSpace(c.Param("occasion"))
	if occasion == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "occasion is required", nil)
		return
	}
	gender := c.DefaultQuery("gender", defaultGender)
	respond.OK(c, gin.H{"outfit": OutfitFor(occasion, gender, DefaultPalette)})
}

func (h *Handler) occasions(c *gin.Context) {
	respond.OK(c, gin.H{"occasions": Occasions()})
}

func (h *Handler) bundle(c *gin.Context) {
	respond.OK(c, h.Bundles.Bundle())
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"status": "ready", "engine": "initialized"})
}
