package delivery

import (
	"errors"
	"net/http"

	"adsniper/internal/domain"
	"adsniper/internal/usecase"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// read side of the hosting map surface
type ViewportSource interface {
	Viewport() (bounds domain.Bounds, padding int, issued bool)
}

// Initial viewport shown before any bounds fit has been issued
type MapDefaults struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	Zoom      float64 `json:"zoom"`
}

// handles HTTP requests
type HTTPHandlers struct {
	campaigns   *usecase.CampaignService
	editor      *usecase.GeometryEditor
	viewport    ViewportSource
	mapDefaults MapDefaults
	logger      *logger.Logger
	metrics     *metrics.Metrics
}

// creates new HTTP handlers
func NewHTTPHandlers(
	campaigns *usecase.CampaignService,
	editor *usecase.GeometryEditor,
	viewport ViewportSource,
	mapDefaults MapDefaults,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *HTTPHandlers {
	return &HTTPHandlers{
		campaigns:   campaigns,
		editor:      editor,
		viewport:    viewport,
		mapDefaults: mapDefaults,
		logger:      logger,
		metrics:     metrics,
	}
}

// HealthCheck reports service liveness
func (h *HTTPHandlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListCampaigns returns the full campaign list, newest-first
func (h *HTTPHandlers) ListCampaigns(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	campaigns := h.campaigns.List()
	c.JSON(http.StatusOK, gin.H{
		"campaigns":  campaigns,
		"count":      len(campaigns),
		"request_id": c.GetString("request_id"),
	})
}

// CreateCampaign creates a campaign from the submitted form payload
func (h *HTTPHandlers) CreateCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")

	var input domain.CreateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request body",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}

	campaign, persisted, err := h.campaigns.Create(input)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Validation failed",
				"field":      ve.Field,
				"message":    ve.Reason,
				"request_id": requestID,
			})
			return
		}
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Campaign creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Campaign creation failed",
			"request_id": requestID,
		})
		return
	}

	response := gin.H{
		"campaign":   campaign,
		"persisted":  persisted,
		"request_id": requestID,
	}
	if !persisted {
		response["warning"] = "Campaign saved in memory only; changes may not survive a restart"
	}
	c.JSON(http.StatusCreated, response)
}

// GetCampaign returns a single campaign by id
func (h *HTTPHandlers) GetCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	campaign, err := h.campaigns.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Campaign not found",
			"request_id": c.GetString("request_id"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign":   campaign,
		"request_id": c.GetString("request_id"),
	})
}

// UpdateCampaign shallow-merges a patch onto a campaign
func (h *HTTPHandlers) UpdateCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	requestID := c.GetString("request_id")

	var patch domain.CampaignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request body",
			"message":    err.Error(),
			"request_id": requestID,
		})
		return
	}
	if patch.Status != nil && !domain.ValidStatus(*patch.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid status",
			"message":    "status must be one of PENDING, ACTIVE, DONE",
			"request_id": requestID,
		})
		return
	}

	campaign, found, persisted := h.campaigns.Update(c.Param("id"), patch)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Campaign not found",
			"request_id": requestID,
		})
		return
	}

	response := gin.H{
		"campaign":   campaign,
		"persisted":  persisted,
		"request_id": requestID,
	}
	if !persisted {
		response["warning"] = "Campaign saved in memory only; changes may not survive a restart"
	}
	c.JSON(http.StatusOK, response)
}

// DeleteCampaign removes a campaign; deleting an unknown id is a no-op
func (h *HTTPHandlers) DeleteCampaign(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	h.campaigns.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GetSummary returns the derived rollup across all campaigns
func (h *HTTPHandlers) GetSummary(c *gin.Context) {
	h.metrics.IncHTTPRequestsInFlight()
	defer h.metrics.DecHTTPRequestsInFlight()

	c.JSON(http.StatusOK, gin.H{
		"summary":    h.campaigns.Summary(),
		"request_id": c.GetString("request_id"),
	})
}

// EditorStart enters drawing mode
func (h *HTTPHandlers) EditorStart(c *gin.Context) {
	h.editor.StartDrawing()
	h.editorState(c)
}

// EditorAddPoint appends a vertex to the draft
func (h *HTTPHandlers) EditorAddPoint(c *gin.Context) {
	var p domain.Point
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid point",
			"message":    err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}
	h.editor.AddPoint(p)
	h.editorState(c)
}

// EditorCommit attempts to commit the draft. A short draft is a no-op and
// the state echo shows the editor still drawing.
func (h *HTTPHandlers) EditorCommit(c *gin.Context) {
	h.editor.Commit()
	h.editorState(c)
}

// EditorCancel discards the draft
func (h *HTTPHandlers) EditorCancel(c *gin.Context) {
	h.editor.Cancel()
	h.editorState(c)
}

// EditorDeletePolygon removes one committed polygon
func (h *HTTPHandlers) EditorDeletePolygon(c *gin.Context) {
	h.editor.DeletePolygon(c.Param("id"))
	h.editorState(c)
}

// EditorClearAll empties the committed list
func (h *HTTPHandlers) EditorClearAll(c *gin.Context) {
	h.editor.ClearAll()
	h.editorState(c)
}

// EditorSelect toggles the selected polygon
func (h *HTTPHandlers) EditorSelect(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "Invalid request body",
			"message":    err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}
	h.editor.Select(body.ID)
	h.editorState(c)
}

// EditorState returns the current editor state
func (h *HTTPHandlers) EditorState(c *gin.Context) {
	h.editorState(c)
}

func (h *HTTPHandlers) editorState(c *gin.Context) {
	state := gin.H{
		"mode":         h.editor.Mode(),
		"draft":        h.editor.Draft(),
		"polygons":     h.editor.Polygons(),
		"selected":     h.editor.Selected(),
		"geofences":    h.editor.Drafts(),
		"map_defaults": h.mapDefaults,
		"request_id":   c.GetString("request_id"),
	}
	if h.viewport != nil {
		if bounds, padding, issued := h.viewport.Viewport(); issued {
			state["viewport"] = gin.H{"bounds": bounds, "padding": padding}
		}
	}
	c.JSON(http.StatusOK, state)
}
