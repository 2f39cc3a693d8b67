package moderation

import (
	"io"
	"net/http"

	"placehub/internal/pkg/assets"
	"placehub/internal/pkg/response"
	"placehub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 5 << 20

type Handler struct {
	svc    *Service
	photos assets.Store
}

func NewHandler(svc *Service, photos assets.Store) *Handler {
	return &Handler{svc: svc, photos: photos}
}

func (h *Handler) RegisterRoutes(protected, moderator *gin.RouterGroup) {
	if protected != nil {
		protected.POST("/submissions", h.Submit)
		protected.GET("/submissions/mine", h.ListMine)
		protected.POST("/submissions/photos", h.UploadPhoto)
	}

	if moderator != nil {
		moderator.GET("/moderation/pending", h.ListPending)
		moderator.GET("/moderation/history", h.ListHistory)
		moderator.POST("/moderation/:id/approve", h.Approve)
		moderator.POST("/moderation/:id/reject", h.Reject)
	}
}

// Submit proposes a new place for moderation.
// @Summary		Submit a place
// @Description	Creates a pending submission from the caller's fields. The place becomes visible in the catalog only after a moderator approves it.
// @Tags		Moderation
// @Security	BearerAuth
// @Param		request	body	SubmitRequest	true	"Place fields"
// @Success		201	{object}	map[string]interface{}	"Pending submission"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Router		/submissions [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Invalid fields", fields)
		return
	}

	userID := c.GetString("user_id")
	userName := c.GetString("user_name")

	sub, err := h.svc.Submit(c.Request.Context(), userID, userName, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Required fields missing or out of range")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, sub)
}

// ListMine returns the caller's own submissions, newest first.
func (h *Handler) ListMine(c *gin.Context) {
	subs, err := h.svc.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// UploadPhoto stores one photo and returns its URL for use in a submission.
func (h *Handler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Missing photo file")
		return
	}
	if file.Size > maxPhotoBytes {
		response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Photo exceeds 5MB limit")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	url, err := h.photos.Upload(c.Request.Context(), file.Filename, data)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Upload failed")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}

// ListPending returns all submissions still waiting for a decision.
// @Summary		Pending submissions
// @Tags		Moderation
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}	"Pending submissions, newest first"
// @Router		/moderation/pending [GET]
func (h *Handler) ListPending(c *gin.Context) {
	subs, err := h.svc.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// ListHistory returns submissions the calling moderator already decided.
func (h *Handler) ListHistory(c *gin.Context) {
	subs, err := h.svc.ListHistory(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

// Approve decides a pending submission and promotes it into the catalog.
// @Summary		Approve a submission
// @Description	Transitions pending to approved and creates the catalog place in the same transaction. A submission already decided by another moderator returns 409.
// @Tags		Moderation
// @Security	BearerAuth
// @Param		id	path	string	true	"Submission ID"
// @Success		200	{object}	map[string]interface{}	"Promoted place"
// @Failure		404	{object}	map[string]interface{}	"Unknown submission"
// @Failure		409	{object}	map[string]interface{}	"Already decided"
// @Router		/moderation/:id/approve [POST]
func (h *Handler) Approve(c *gin.Context) {
	place, err := h.svc.Approve(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("user_name"),
	)
	if err != nil {
		h.writeDecideErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, place)
}

// Reject decides a pending submission without promotion.
func (h *Handler) Reject(c *gin.Context) {
	err := h.svc.Reject(
		c.Request.Context(),
		c.Param("id"),
		c.GetString("user_id"),
		c.GetString("user_name"),
	)
	if err != nil {
		h.writeDecideErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "rejected"})
}

func (h *Handler) writeDecideErr(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Submission already decided")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
