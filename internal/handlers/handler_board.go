package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

type boardHandler struct {
	board portssvc.BoardSvc
}

func registerBoardRoutes(rg *gin.RouterGroup, board portssvc.BoardSvc) {
	h := &boardHandler{board: board}

	notices := rg.Group("/notices")
	{
		notices.GET("", h.listNotices)
		notices.GET("/:id", h.getNotice)
	}
	qna := rg.Group("/qna")
	{
		qna.GET("", h.listQuestions)
		qna.POST("", h.askQuestion)
	}
}

// listNotices godoc
// @Summary List notices
// @Tags board
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} domain.NoticePage
// @Security BearerAuth
// @Router /notices [get]
func (h *boardHandler) listNotices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListNoticesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListNotices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	page, err := h.board.ListNotices(c.Request.Context(), params.Page, params.Size)
	if err != nil {
		respondError(c, err, "Failed to load notices")
		return
	}
	c.JSON(http.StatusOK, page)
}

// getNotice godoc
// @Summary Get a notice
// @Tags board
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} domain.Notice
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Security BearerAuth
// @Router /notices/{id} [get]
func (h *boardHandler) getNotice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperrors.NewValidationError("id", "invalid notice id"), "Failed to load notice")
		return
	}
	notice, err := h.board.GetNotice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load notice")
		return
	}
	c.JSON(http.StatusOK, notice)
}

// listQuestions godoc
// @Summary List my questions
// @Tags board
// @Produce json
// @Success 200 {object} dto.ListQuestionsResponse
// @Security BearerAuth
// @Router /qna [get]
func (h *boardHandler) listQuestions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	questions, err := h.board.ListQuestions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load questions")
		return
	}
	c.JSON(http.StatusOK, dto.ListQuestionsResponse{Questions: questions})
}

// askQuestion godoc
// @Summary Ask a question
// @Tags board
// @Accept json
// @Produce json
// @Param question body dto.AskQuestionRequest true "Question and confirmation"
// @Success 201 {object} domain.Question
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Security BearerAuth
// @Router /qna [post]
func (h *boardHandler) askQuestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AskQuestion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	q, err := h.board.AskQuestion(c.Request.Context(), userID, req.ToDomain(), portssvc.Confirmed(req.Confirm))
	if err != nil {
		respondError(c, err, "Failed to submit question")
		return
	}
	c.JSON(http.StatusCreated, q)
}
