package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/cache"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
)

// Handler exposes the site settings singleton. Reads are public and
// served through the cache; updates are admin-only and invalidate it.
type Handler struct {
	store *cache.SettingsStore
}

func NewHandler(store *cache.SettingsStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/settings", h.Get)
	admin.PUT("/settings", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.store.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
		return
	}

	response.Success(c, http.StatusOK, s)
}

func (h *Handler) Update(c *gin.Context) {
	var req domain.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if req.DefaultTaxRate < 0 || req.DefaultTaxRate > 1 ||
		req.ServiceFeePercentage < 0 || req.ServiceFeePercentage > 1 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rates must be between 0 and 1")
		return
	}

	if err := h.store.Update(c.Request.Context(), &req); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update settings")
		return
	}

	response.Success(c, http.StatusOK, &req)
}
