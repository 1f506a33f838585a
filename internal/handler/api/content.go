package api

import (
	"errors"
	"net/http"

	reqdto "ecotrack/internal/handler/dto/request"
	resdto "ecotrack/internal/handler/dto/response"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentCommands commands.ContentCommands
	tipCommands     commands.TipCommands
	contentQueries  queries.ContentQueries
}

func NewContentHandler(
	contentCommands commands.ContentCommands,
	tipCommands commands.TipCommands,
	contentQueries queries.ContentQueries,
) *ContentHandler {
	return &ContentHandler{
		contentCommands: contentCommands,
		tipCommands:     tipCommands,
		contentQueries:  contentQueries,
	}
}

// @Summary List drop-off locations
// @Tags content
// @Produce json
// @Success 200 {array} queries.LocationView
// @Router /locations [get]
func (h *ContentHandler) ListLocations(c *gin.Context) {
	views, err := h.contentQueries.ListLocations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create drop-off location
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /locations [post]
func (h *ContentHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.contentCommands.CreateLocation(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List eco tips
// @Tags content
// @Produce json
// @Success 200 {array} queries.TipView
// @Router /tips [get]
func (h *ContentHandler) ListTips(c *gin.Context) {
	views, err := h.contentQueries.ListTips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create eco tip
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTipRequest true "Tip"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tips [post]
func (h *ContentHandler) CreateTip(c *gin.Context) {
	var req reqdto.CreateTipRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.contentCommands.CreateTip(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Send eco tips
// @Description Mail every opted-in user their next tip in rotation
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DispatchResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tips/send [post]
func (h *ContentHandler) SendTips(c *gin.Context) {
	result, err := h.tipCommands.DispatchTips(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoTipsAvailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No tips available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.DispatchResponse{
		Recipients: result.Recipients,
		Sent:       result.Sent,
		Failed:     result.Failed,
	})
}

// @Summary Submit feedback
// @Tags content
// @Accept json
// @Produce json
// @Param request body reqdto.FeedbackRequest true "Feedback"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /feedback [post]
func (h *ContentHandler) SubmitFeedback(c *gin.Context) {
	var req reqdto.FeedbackRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.contentCommands.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List feedback
// @Tags content
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.FeedbackView
// @Failure 403 {object} map[string]string
// @Router /feedback [get]
func (h *ContentHandler) ListFeedback(c *gin.Context) {
	views, err := h.contentQueries.ListFeedback(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
