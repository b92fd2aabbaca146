package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

type remittanceHandler struct {
	remittances portssvc.RemittanceSvc
	rates       portssvc.ExchangeRateSvc
}

func registerRemittanceRoutes(rg *gin.RouterGroup, remittances portssvc.RemittanceSvc, rates portssvc.ExchangeRateSvc) {
	h := &remittanceHandler{remittances: remittances, rates: rates}

	rg.GET("/exchange-rates", h.listExchangeRates)

	r := rg.Group("/remittances")
	{
		r.POST("/preview", h.preview)
		r.POST("", h.submit)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags remittances
// @Produce json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 502 {object} dto.ErrorResponse "Backend failure"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *remittanceHandler) listExchangeRates(c *gin.Context) {
	rates, err := h.rates.ListRates(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// preview godoc
// @Summary Preview a remittance
// @Description Computes the 1% fee, the total and the converted amount without validating the draft
// @Tags remittances
// @Accept json
// @Produce json
// @Param draft body dto.RemittanceDraftRequest true "Draft"
// @Success 200 {object} dto.PreviewResponse
// @Security BearerAuth
// @Router /remittances/preview [post]
func (h *remittanceHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RemittanceDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RemittancePreview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.remittances.Preview(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to preview remittance")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreviewResultResponse(result))
}

// submit godoc
// @Summary Send a remittance
// @Description Validates the draft, checks the limits and creates the remittance once confirmed
// @Tags remittances
// @Accept json
// @Produce json
// @Param remittance body dto.SubmitRemittanceRequest true "Draft and confirmation"
// @Success 201 {object} dto.SubmitRemittanceResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Submission already in progress"
// @Failure 422 {object} dto.ErrorResponse "Limit exceeded"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Failure 502 {object} dto.ErrorResponse "Backend failure"
// @Security BearerAuth
// @Router /remittances [post]
func (h *remittanceHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitRemittanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitRemittance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.remittances.Submit(c.Request.Context(), userID, req.ToDomain(), portssvc.Confirmed(req.Confirm))
	if err != nil {
		respondError(c, err, "Failed to send remittance")
		return
	}
	logger.Info("Remittance created", slog.Int64("remittance_id", result.Result.ID))
	c.JSON(http.StatusCreated, dto.ToSubmitRemittanceResponse(result))
}
