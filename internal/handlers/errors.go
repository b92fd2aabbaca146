package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto its HTTP status and error body.
// fallback is the message shown for unexpected failures.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var (
		verr *apperrors.ValidationError
		lerr *domain.LimitExceededError
		berr *apperrors.BackendError
	)
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failed", slog.String("field", verr.Field), slog.String("error", verr.Message))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.As(err, &lerr):
		logger.Info("Remittance rejected by limit check", slog.String("exceeded_type", string(lerr.Check.ExceededType)))
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:        apperrors.ErrLimitExceeded.Error(),
			Details:      lerr.Check.Explain(),
			ExceededType: string(lerr.Check.ExceededType),
		})
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		c.JSON(http.StatusPreconditionRequired, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrSubmissionInProgress):
		logger.Warn("Duplicate submission rejected")
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrLimitUnavailable):
		logger.Error("Limit info unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: apperrors.ErrLimitUnavailable.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Action not allowed in current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		msg := err.Error()
		if errors.As(err, &berr) && berr.Message != "" {
			msg = berr.Message
		}
		logger.Warn("Backend rejected input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
	case errors.Is(err, apperrors.ErrBackend):
		logger.Error("Backend failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: fallback})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// requireUserID reads the authenticated user or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
