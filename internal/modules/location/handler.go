package location

import (
	"net/http"

	"placehub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(optional *gin.RouterGroup) {
	optional.GET("/location", h.Current)
	optional.POST("/location/device", h.ReportDevice)
	optional.POST("/location/manual", h.SetManual)
	optional.POST("/location/reset", h.Reset)
	optional.POST("/location/refresh", h.Refresh)
}

// Pointers keep missing-field detection without rejecting the zero value:
// lat 0 (equator) and lon 0 (prime meridian) are valid coordinates.
type coordinateRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

func (h *Handler) resolver(c *gin.Context) *Resolver {
	key := c.GetString("user_id")
	if key == "" {
		key = c.ClientIP()
	}
	return h.sessions.For(key)
}

// Current returns the session's resolved location.
// @Summary		Current location
// @Description	Precedence: sticky manual choice, then last device fix, then the default coordinate.
// @Tags		Location
// @Success		200	{object}	map[string]interface{}	"Resolved sample"
// @Router		/location [GET]
func (h *Handler) Current(c *gin.Context) {
	response.Success(c, http.StatusOK, h.resolver(c).Current())
}

func (h *Handler) ReportDevice(c *gin.Context) {
	var req coordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid coordinates")
		return
	}

	r := h.resolver(c)
	r.ReportDevice(*req.Lat, *req.Lon)
	response.Success(c, http.StatusOK, r.Current())
}

func (h *Handler) SetManual(c *gin.Context) {
	var req coordinateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid coordinates")
		return
	}

	r := h.resolver(c)
	r.SetManual(*req.Lat, *req.Lon)
	response.Success(c, http.StatusOK, r.Current())
}

func (h *Handler) Reset(c *gin.Context) {
	r := h.resolver(c)
	r.Reset()
	response.Success(c, http.StatusOK, r.Current())
}

// Refresh triggers one bounded fix acquisition and returns the resolved
// sample, which is unchanged when the fetch fails or a manual choice is
// active.
func (h *Handler) Refresh(c *gin.Context) {
	response.Success(c, http.StatusOK, h.resolver(c).Refresh(c.Request.Context()))
}
