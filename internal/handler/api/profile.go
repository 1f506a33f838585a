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

type ProfileHandler struct {
	profileCommands commands.ProfileCommands
	userQueries     queries.UserQueries
}

func NewProfileHandler(profileCommands commands.ProfileCommands, userQueries queries.UserQueries) *ProfileHandler {
	return &ProfileHandler{
		profileCommands: profileCommands,
		userQueries:     userQueries,
	}
}

// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.UserView
// @Failure 401 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	user, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
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

	c.JSON(http.StatusOK, user)
}

// @Summary Update profile
// @Description Partially update name, country, avatar URL or marketing opt-in
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateProfileRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.profileCommands.UpdateProfile(c.Request.Context(), userID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileUserNotFound):
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

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Profile updated."})
}
