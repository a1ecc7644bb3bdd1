package wardrobe

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/server/middleware"
	"lookcircuit-backend/internal/shared/server/respond"
)

type Handler struct {
	Repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wardrobe/items", h.items)
}

func (h *Handler) items(c *gin.Context) {
	tab, err := ParseTab(c.Query("tab"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"allowed": []Tab{TabOwned, TabWishlist}})
		return
	}
	mode, err := ParseMode(c.Query("view"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"allowed": []Mode{ModeGrid, ModeList}})
		return
	}
	owned, err := h.Repo.Items(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load wardrobe", nil)
		return
	}
	view := View{Tab: tab, Mode: mode}
	items := view.Visible(owned)
	respond.OK(c, gin.H{
		"tab":   view.Tab,
		"view":  view.Mode,
		"items": items,
		"empty": len(items) == 0,
	})
}
