package api

import (
	"net/http"

	"ecotrack/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardQueries queries.LeaderboardQueries
}

func NewLeaderboardHandler(leaderboardQueries queries.LeaderboardQueries) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardQueries: leaderboardQueries}
}

// @Summary Top recyclers
// @Description Ten most active users by lifetime recycled quantity
// @Tags leaderboard
// @Produce json
// @Success 200 {array} queries.LeaderboardUserEntry
// @Router /leaderboard/users [get]
func (h *LeaderboardHandler) TopUsers(c *gin.Context) {
	entries, err := h.leaderboardQueries.TopUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Top countries
// @Description Ten most active countries by lifetime recycled quantity
// @Tags leaderboard
// @Produce json
// @Success 200 {array} queries.LeaderboardCountryEntry
// @Router /leaderboard/countries [get]
func (h *LeaderboardHandler) TopCountries(c *gin.Context) {
	entries, err := h.leaderboardQueries.TopCountries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}
