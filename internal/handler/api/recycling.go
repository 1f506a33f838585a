package api

import (
	"errors"
	"net/http"

	reqdto "ecotrack/internal/handler/dto/request"
	resdto "ecotrack/internal/handler/dto/response"
	"ecotrack/internal/handler/middleware"
	"ecotrack/internal/usecase/commands"
	"ecotrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RecyclingHandler struct {
	recyclingCommands commands.RecyclingCommands
	recyclingQueries  queries.RecyclingQueries
}

func NewRecyclingHandler(recyclingCommands commands.RecyclingCommands, recyclingQueries queries.RecyclingQueries) *RecyclingHandler {
	return &RecyclingHandler{
		recyclingCommands: recyclingCommands,
		recyclingQueries:  recyclingQueries,
	}
}

// @Summary Log recycling activity
// @Description Record a drop-off and credit the earned points
// @Tags recycling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRecyclingLogRequest true "Activity"
// @Success 201 {object} resdto.LogActivityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /recycling-logs [post]
func (h *RecyclingHandler) CreateLog(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateRecyclingLogRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.recyclingCommands.LogActivity(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidMaterial):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid material type",
			})
		case errors.Is(err, commands.ErrInvalidActivity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recycling activity",
			})
		case errors.Is(err, commands.ErrActivityUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLogActivityResult(result))
}

// @Summary Recycling history
// @Tags recycling
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RecyclingLogView
// @Failure 401 {object} map[string]string
// @Router /recycling-logs [get]
func (h *RecyclingHandler) ListLogs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.recyclingQueries.ListLogs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Recycling progress
// @Description Lifetime totals plus the current point balance
// @Tags recycling
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ProgressView
// @Failure 401 {object} map[string]string
// @Router /progress [get]
func (h *RecyclingHandler) GetProgress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.recyclingQueries.GetProgress(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
