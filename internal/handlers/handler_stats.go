package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/parenting_journal_app/internal/core/ports/services"
	"github.com/SscSPs/parenting_journal_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// statsHandler serves the computed journal statistics of a family.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

func newStatsHandler(ss portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{statsService: ss}
}

// registerStatsRoutes registers stats routes on a /families/:family_id group.
func registerStatsRoutes(family *gin.RouterGroup, statsService portssvc.StatsSvcFacade) {
	h := newStatsHandler(statsService)

	stats := family.Group("/stats")
	{
		stats.GET("/journal", h.getJournalStats)
		stats.GET("/mood", h.getMoodAnalytics)
	}
}

// getJournalStats godoc
// @Summary Journal statistics
// @Description Total and weekly entry counts, the weekly split by entry type and the longest daily streak.
// @Tags stats
// @Produce json
// @Param family_id path string true "Family ID"
// @Success 200 {object} dto.JournalStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Stored entry data is malformed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/stats/journal [get]
func (h *statsHandler) getJournalStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	familyID, ok := bindFamilyID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.JournalStats(c.Request.Context(), familyID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute journal statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalStatsResponse(stats))
}

// getMoodAnalytics godoc
// @Summary Mood analytics
// @Description Mood distribution, 30-day trends, weekly positivity and the current mood streak.
// @Tags stats
// @Produce json
// @Param family_id path string true "Family ID"
// @Success 200 {object} dto.MoodAnalyticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Stored entry data is malformed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /families/{family_id}/stats/mood [get]
func (h *statsHandler) getMoodAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	familyID, ok := bindFamilyID(c)
	if !ok {
		return
	}

	analytics, err := h.statsService.MoodAnalytics(c.Request.Context(), familyID, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute mood analytics")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoodAnalyticsResponse(analytics))
}
