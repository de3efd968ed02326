package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"traffic-dashboard/internal/model"
	"traffic-dashboard/internal/poller"
	"traffic-dashboard/internal/service"
)

type Handler struct {
	traffic *service.TrafficService
	poll    *poller.Poller
	log     zerolog.Logger
}

func NewHandler(traffic *service.TrafficService, poll *poller.Poller, log zerolog.Logger) *Handler {
	return &Handler{traffic: traffic, poll: poll, log: log}
}

func (h *Handler) Register(r *gin.Engine) {
	dashboard := r.Group("/dashboard")

	dashboard.GET("/snapshot", h.getSnapshot)
	dashboard.GET("/cameras", h.listCameras)
	dashboard.GET("/intervals", h.listIntervals)
	dashboard.PUT("/selection", h.putSelection)
	dashboard.POST("/refresh", h.postRefresh)
}

func (h *Handler) getSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(h.poll.Snapshot()))
}

func (h *Handler) listCameras(c *gin.Context) {
	cameras, err := h.traffic.ListCameras(c.Request.Context())
	if err != nil {
		// Upstream trouble degrades to an empty list plus one message; the
		// next poll or a manual refresh is the recovery path.
		c.JSON(http.StatusOK, gin.H{"data": []model.Camera{}, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, successResponse(cameras))
}

func (h *Handler) listIntervals(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(service.IntervalLabels()))
}

type selectionRequest struct {
	Mode        string `json:"mode"`
	Date        string `json:"date"`
	Interval    string `json:"interval"`
	CameraID    *int   `json:"camera_id"`
	AutoRefresh *bool  `json:"auto_refresh"`
}

func (h *Handler) putSelection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid selection payload"))
		return
	}

	sel := model.Selection{
		Mode:        model.SelectionMode(strings.TrimSpace(req.Mode)),
		Interval:    strings.TrimSpace(req.Interval),
		CameraID:    req.CameraID,
		AutoRefresh: true,
	}
	if req.AutoRefresh != nil {
		sel.AutoRefresh = *req.AutoRefresh
	}

	if dateStr := strings.TrimSpace(req.Date); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid date, want YYYY-MM-DD"))
			return
		}
		sel.Date = parsed
	}

	// Resolve once up front so a malformed selection is rejected here instead
	// of failing every poll cycle.
	if _, err := service.ResolveWindow(sel, time.Now()); err != nil {
		h.handleError(c, err)
		return
	}

	h.poll.SetSelection(sel)

	c.JSON(http.StatusOK, successResponse(sel))
}

func (h *Handler) postRefresh(c *gin.Context) {
	h.poll.Refresh()
	c.JSON(http.StatusAccepted, successResponse("refresh scheduled"))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedSelection):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
