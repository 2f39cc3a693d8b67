package catalog

import (
	"net/http"

	"placehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/places", h.Search)
	public.GET("/places/:id", h.GetByID)
	public.GET("/categories", h.Categories)
}

// Search lists approved places, optionally filtered.
// @Summary		Search places
// @Description	Case-insensitive substring match over name, description, address and category. Category filter is exact unless "All".
// @Tags		Catalog
// @Param		q			query	string	false	"Search text"
// @Param		category	query	string	false	"Category filter"
// @Success		200	{object}	map[string]interface{}	"Matching places"
// @Router		/places [GET]
func (h *Handler) Search(c *gin.Context) {
	places, err := h.svc.Search(c.Request.Context(), c.Query("q"), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, places)
}

func (h *Handler) GetByID(c *gin.Context) {
	place, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, place)
}

func (h *Handler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, categories)
}
