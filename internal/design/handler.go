package design

import (
	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/server/respond"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/design/tokens", h.tokens)
}

func (h *Handler) tokens(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	respond.OK(c, Default())
}
