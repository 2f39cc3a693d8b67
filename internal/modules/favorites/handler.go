package favorites

import (
	"net/http"

	"placehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler builds a per-request Index bound from the verified token, so every
// call operates on the caller's own view and nothing is shared across users.
type Handler struct {
	favorites FavoriteRepo
	places    PlaceGate
}

func NewHandler(favorites FavoriteRepo, places PlaceGate) *Handler {
	return &Handler{favorites: favorites, places: places}
}

func (h *Handler) RegisterRoutes(optional *gin.RouterGroup) {
	optional.POST("/favorites/:placeId/toggle", h.Toggle)
	optional.GET("/favorites/:placeId", h.IsFavorite)
	optional.GET("/favorites", h.List)
}

func (h *Handler) index(c *gin.Context) *Index {
	idx := NewIndex(h.favorites, h.places)
	idx.Bind(c.GetString("user_id"))
	return idx
}

// Toggle flips favorite membership for the caller.
// @Summary		Toggle favorite
// @Tags		Favorites
// @Security	BearerAuth
// @Param		placeId	path	string	true	"Place ID"
// @Success		200	{object}	map[string]interface{}	"New membership state"
// @Failure		401	{object}	map[string]interface{}	"No authenticated user"
// @Router		/favorites/:placeId/toggle [POST]
func (h *Handler) Toggle(c *gin.Context) {
	favorite, err := h.index(c).Toggle(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		switch err {
		case ErrAuthRequired:
			response.Error(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Sign in to manage favorites")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorite": favorite})
}

func (h *Handler) IsFavorite(c *gin.Context) {
	favorite, err := h.index(c).IsFavorite(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorite": favorite})
}

func (h *Handler) List(c *gin.Context) {
	favorites, err := h.index(c).List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, favorites)
}
