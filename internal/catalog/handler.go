package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/recommendations"
	"lookcircuit-backend/internal/shared/metrics"
	"lookcircuit-backend/internal/shared/server/respond"
	"lookcircuit-backend/internal/shared/telemetry"
)

type Handler struct {
	Catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{Catalog: c}
}

type discoverRequest struct {
	ColorPalette []string `json:"colorPalette" binding:"required,min=1,dive,hexcolor"`
	Categories   []string `json:"categories" binding:"required,min=1"`
	Occasion     string   `json:"occasion"`
	MaxResults   int      `json:"maxResults" binding:"omitempty,min=1,max=100"`
}

type outfitRequest struct {
	Outfit       *recommendations.Outfit `json:"outfit"`
	Occasion     string                  `json:"occasion"`
	Gender       string                  `json:"gender"`
	ColorPalette []string                `json:"colorPalette" binding:"omitempty,dive,hexcolor"`
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	products.GET("", h.list)
	products.GET("/categories", h.categories)
	products.GET("/by-color", h.byColor)
	products.POST("/discover", h.discover)
	products.POST("/outfit", h.outfit)
	products.GET("/health", h.health)
}

func (h *Handler) list(c *gin.Context) {
	f, err := NewFilter(c.Query("search"), c.Query("category"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category", gin.H{"allowed": ShopCategories})
		return
	}
	results, err := h.Catalog.Products(c.Request.Context(), f)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list products", nil)
		return
	}
	respond.OK(c, gin.H{"products": results, "empty": results.Empty(), "filter": f})
}

func (h *Handler) categories(c *gin.Context) {
	respond.OK(c, gin.H{"categories": DiscoveryCategories, "shopCategories": ShopCategories})
}

func (h *Handler) byColor(c *gin.Context) {
	hex := strings.TrimSpace(c.Query("hex"))
	if hex == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "hex is required", nil)
		return
	}
	tolerance := DefaultTolerance
	if raw := strings.TrimSpace(c.Query("tolerance")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "tolerance must be a positive number", nil)
			return
		}
		tolerance = v
	}
	products, err := h.Catalog.ByColor(hex, tolerance)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid hex color", gin.H{"reason": err.Error()})
		return
	}
	if products == nil {
		products = []Product{}
	}
	respond.OK(c, gin.H{"products": products, "totalCount": len(products)})
}

func (h *Handler) discover(c *gin.Context) {
	var req discoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid discovery request", gin.H{"reason": err.Error()})
		return
	}
	groups := h.Catalog.Discover(req.ColorPalette, req.Categories, req.Occasion, req.MaxResults)
	total := Count(groups)
	metrics.IncDiscovery()
	telemetry.Info("products.discover", map[string]any{
		"request_id": c.GetString("requestId"),
		"categories": len(req.Categories),
		"total":      total,
	})
	respond.OK(c, gin.H{"products": groups, "totalCount": total})
}

var errOutfitMissing = errors.New("outfit or occasion is required")

func (h *Handler) outfit(c *gin.Context) {
	var req outfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid outfit request", gin.H{"reason": err.Error()})
		return
	}
	palette := req.ColorPalette
	if len(palette) == 0 {
		palette = recommendations.DefaultPalette
	}
	var outfit recommendations.Outfit
	switch {
	case req.Outfit != nil:
		outfit = *req.Outfit
	case strings.TrimSpace(req.Occasion) != "":
		outfit = recommendations.OutfitFor(req.Occasion, req.Gender, palette)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", errOutfitMissing.Error(), nil)
		return
	}
	groups := h.Catalog.OutfitProducts(outfit, palette)
	metrics.IncDiscovery()
	respond.OK(c, gin.H{"outfit": outfit, "products": groups, "totalCount": Count(groups)})
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"status": "ready", "engine": "initialized"})
}
