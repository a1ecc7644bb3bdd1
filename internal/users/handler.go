package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/server/middleware"
	"lookcircuit-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.GET("/me", h.me)
	users.PUT("/me", h.updateMe)
}

func (h *Handler) me(c *gin.Context) {
	userID, ok := h.requireAccount(c)
	if !ok {
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.writeErr(c, err, "failed to load user")
		return
	}
	respond.OK(c, user)
}

func (h *Handler) updateMe(c *gin.Context) {
	userID, ok := h.requireAccount(c)
	if !ok {
		return
	}
	var req ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile update", gin.H{"reason": err.Error()})
		return
	}
	user, err := h.Svc.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.writeErr(c, err, "failed to update user")
		return
	}
	respond.OK(c, user)
}

func (h *Handler) requireAccount(c *gin.Context) (string, bool) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return "", false
	}
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "login required", nil)
		return "", false
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return "", false
	}
	return userID, true
}

func (h *Handler) writeErr(c *gin.Context, err error, message string) {
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
}
