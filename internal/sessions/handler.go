package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/flow"
	"lookcircuit-backend/internal/shared/metrics"
	"lookcircuit-backend/internal/shared/server/middleware"
	"lookcircuit-backend/internal/shared/server/respond"
	"lookcircuit-backend/internal/shared/telemetry"
)

type Handler struct {
	Manager *Manager
}

func NewHandler(m *Manager) *Handler {
	return &Handler{Manager: m}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/flow/sessions")
	sessions.POST("", h.create)
	sessions.GET("/:id", h.get)
	sessions.POST("/:id/events", h.event)
}

func (h *Handler) create(c *gin.Context) {
	snap, err := h.Manager.Create(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}
	c.Set(middleware.SessionIDKey, snap.ID)
	respond.Created(c, snap)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.SessionIDKey, id)
	snap, err := h.Manager.Get(c.Request.Context(), middleware.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}
	respond.OK(c, snap)
}

func (h *Handler) event(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.SessionIDKey, id)

	var ev Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "event type is required", nil)
		return
	}
	c.Set(middleware.FlowEventKey, ev.Type)

	snap, err := h.Manager.Apply(c.Request.Context(), middleware.UserIDFromContext(c), id, ev)
	if err != nil {
		code := ErrorCode(err)
		metrics.IncFlowEvent(metricType(ev.Type), code)
		h.fail(c, code, err, snap)
		return
	}
	metrics.IncFlowEvent(metricType(ev.Type), "ok")
	telemetry.Info("flow.event", map[string]any{
		"session_id": snap.ID,
		"event":      ev.Type,
		"route":      snap.Flow.Route,
		"tab":        snap.Flow.Tab,
		"scan":       snap.Flow.Scan,
	})
	respond.OK(c, snap)
}

func (h *Handler) fail(c *gin.Context, code string, err error, snap Snapshot) {
	switch code {
	case "not_found":
		respond.Error(c, http.StatusNotFound, code, "session not found", nil)
	case "validation_error":
		respond.Error(c, http.StatusBadRequest, code, err.Error(), nil)
	case "internal_error":
		respond.Error(c, http.StatusInternalServerError, code, "failed to apply event", nil)
	default:
		details := gin.H{"state": snap}
		message := err.Error()
		if notice, ok := flow.NoticeFrom(err); ok {
			details["notice"] = notice
			message = notice.Message
		}
		respond.Error(c, http.StatusConflict, code, message, details)
	}
}
