package review

import (
	"net/http"

	"placehub/internal/pkg/response"
	"placehub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/places/:id/reviews", h.ListByPlace)
		public.GET("/places/:id/rating", h.Rating)
	}

	if protected != nil {
		protected.POST("/reviews", h.Create)
		protected.GET("/reviews/mine", h.ListMine)
		protected.GET("/places/:id/reviewed", h.HasReviewed)
		protected.PUT("/reviews/:id", h.Update)
		protected.DELETE("/reviews/:id", h.Delete)
	}
}

// Create posts a review for a place.
// @Summary		Write a review
// @Description	One review per user per place; a second attempt returns 409 and leaves the average unchanged.
// @Tags		Reviews
// @Security	BearerAuth
// @Param		request	body	CreateReviewRequest	true	"Review (place_id, rating 1-5, comment)"
// @Success		201	{object}	map[string]interface{}	"Stored review"
// @Failure		400	{object}	map[string]interface{}	"Rating out of range or missing fields"
// @Failure		409	{object}	map[string]interface{}	"Review already exists"
// @Router		/reviews [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid fields", fields)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("user_name"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Rating must be between 1 and 5")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "Only one review per user per place")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, rv)
}

// ListByPlace returns a place's reviews, newest first.
func (h *Handler) ListByPlace(c *gin.Context) {
	reviews, err := h.svc.ListByPlace(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

// Rating returns the recomputed average rating for a place.
func (h *Handler) Rating(c *gin.Context) {
	rating, err := h.svc.Rating(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, rating)
}

func (h *Handler) ListMine(c *gin.Context) {
	reviews, err := h.svc.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) HasReviewed(c *gin.Context) {
	reviewed, err := h.svc.HasReviewed(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviewed": reviewed})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.writeMutationErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		h.writeMutationErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeMutationErr(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Rating must be between 1 and 5")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only modify your own review")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
