package scans

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/server/middleware"
	"lookcircuit-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scans service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	analysis := rg.Group("/analysis")
	analysis.POST("/face", h.analyzeFace)
	analysis.GET("/scans", h.listScans)
	analysis.GET("/scans/:id", h.getScan)
	analysis.GET("/scans/:id/thumbnail", h.thumbnail)
	analysis.GET("/health", h.health)
}

func (h *Handler) analyzeFace(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", []map[string]string{
			{"field": "file", "issue": "required"},
		})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer f.Close()

	scan, err := h.Svc.Analyze(c.Request.Context(), userID, Upload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        f,
	})
	if scan.ID != "" {
		c.Set(middleware.ScanIDKey, scan.ID)
	}
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "File must be an image", []map[string]string{
				{"field": "file", "issue": "content_type"},
			})
		case errors.Is(err, ErrImageTooSmall):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Image must be at least 480x480", []map[string]string{
				{"field": "file", "issue": "too_small"},
			})
		case errors.Is(err, ErrImageTooLarge):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Image must be at most 8000x8000", []map[string]string{
				{"field": "file", "issue": "too_large"},
			})
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid upload", nil)
		case errors.Is(err, ErrNoFace):
			respond.Error(c, http.StatusBadRequest, "no_face_detected", "No face detected. Please upload a clear photo of your face.", gin.H{"scanId": scan.ID})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze image", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"scanId":    scan.ID,
		"status":    scan.Status,
		"analyzer":  scan.Analyzer,
		"result":    scan.Result,
		"createdAt": scan.CreatedAt,
	})
}

func (h *Handler) getScan(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	scan, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "scan id is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "scan not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch scan", nil)
		}
		return
	}
	c.Set(middleware.ScanIDKey, scan.ID)
	respond.OK(c, scan)
}

func (h *Handler) thumbnail(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	rc, err := h.Svc.Thumbnail(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "scan id is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "thumbnail not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load thumbnail", nil)
		}
		return
	}
	defer rc.Close()
	c.Set(middleware.ScanIDKey, c.Param("id"))
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", rc, map[string]string{
		"Cache-Control": "private, max-age=86400",
	})
}

func (h *Handler) listScans(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list scans", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, s := range list {
		item := gin.H{
			"scanId":    s.ID,
			"status":    s.Status,
			"createdAt": s.CreatedAt,
		}
		if s.Result != nil {
			item["colorSeason"] = s.Result.ColorSeason
			item["faceShape"] = s.Result.FaceShape.Shape
			item["skinTone"] = s.Result.SkinTone.Label
		}
		resp = append(resp, item)
	}
	respond.OK(c, resp)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"status": "ready", "analyzer": h.Svc.Analyzer.Name()})
}
