package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centavo/internal/services"
)

// StatisticsHandler handles reporting requests.
type StatisticsHandler struct {
	statisticsService services.StatisticsServicer
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statisticsService services.StatisticsServicer) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GetSummary handles the retrieval of whole-ledger totals
// @Summary     Get ledger summary
// @Description Get total income, total expenses, and the current balance over the entire ledger
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Success     200 {object} services.Summary "Ledger totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics/summary [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.statisticsService.GetSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetCounts handles the retrieval of ledger record counts
// @Summary     Get record counts
// @Description Get the number of income and expense records
// @Tags        statistics
// @Accept      json
// @Produce     json
// @Success     200 {object} services.Counts "Record counts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /statistics/counts [get]
func (h *StatisticsHandler) GetCounts(c *gin.Context) {
	counts, err := h.statisticsService.GetCounts()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
