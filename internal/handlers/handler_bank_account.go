package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

type bankAccountHandler struct {
	accounts portssvc.BankAccountSvc
}

func registerBankAccountRoutes(rg *gin.RouterGroup, accounts portssvc.BankAccountSvc) {
	h := &bankAccountHandler{accounts: accounts}

	ba := rg.Group("/bank-account")
	{
		ba.GET("", h.getBankAccount)
		ba.PUT("", h.saveBankAccount)
	}
}

// getBankAccount godoc
// @Summary Get the linked bank account
// @Description Returns {"account": null} when nothing is registered
// @Tags bank account
// @Produce json
// @Success 200 {object} dto.BankAccountResponse
// @Security BearerAuth
// @Router /bank-account [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	account, err := h.accounts.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load bank account")
		return
	}
	c.JSON(http.StatusOK, dto.BankAccountResponse{Account: account})
}

// saveBankAccount godoc
// @Summary Register the linked bank account
// @Tags bank account
// @Accept json
// @Produce json
// @Param account body dto.SaveBankAccountRequest true "Account and confirmation"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Security BearerAuth
// @Router /bank-account [put]
func (h *bankAccountHandler) saveBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	saved, err := h.accounts.Save(c.Request.Context(), userID, req.ToDomain(), portssvc.Confirmed(req.Confirm))
	if err != nil {
		respondError(c, err, "Failed to save bank account")
		return
	}
	c.JSON(http.StatusOK, dto.BankAccountResponse{Account: saved})
}
