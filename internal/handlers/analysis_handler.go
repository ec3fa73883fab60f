package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "centavo/internal/errors"
	"centavo/internal/period"
	"centavo/internal/services"
)

// AnalysisHandler handles financial-analysis requests.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalysisRequest represents the request payload for a financial analysis
type AnalysisRequest struct {
	Period   string `json:"period" binding:"omitempty,period_token"`
	UserGoal string `json:"user_goal" binding:"omitempty,max=500"`
}

// GetFinancialAnalysis handles a financial-analysis request
// @Summary     Analyze finances
// @Description Build a ledger snapshot for the requested period and return advisory text. Falls back to a locally computed summary when the AI service is unavailable.
// @Tags        ai
// @Accept      json
// @Produce     json
// @Param       request body AnalysisRequest true "Analysis parameters"
// @Success     200 {object} services.AnalysisResult "Analysis and snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ai [post]
func (h *AnalysisHandler) GetFinancialAnalysis(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Period == "" {
		req.Period = period.CurrentMonth
	}

	result, err := h.analysisService.GetFinancialAnalysis(c.Request.Context(), req.Period, req.UserGoal)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
