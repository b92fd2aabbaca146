package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	"github.com/SscSPs/remittance_web/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/dto"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

// limitHandler serves the limit state and the limit request editor.
type limitHandler struct {
	state  portssvc.LimitStateSvc
	editor portssvc.LimitEditorSvc
}

func newLimitHandler(state portssvc.LimitStateSvc, editor portssvc.LimitEditorSvc) *limitHandler {
	return &limitHandler{state: state, editor: editor}
}

func registerLimitRoutes(rg *gin.RouterGroup, state portssvc.LimitStateSvc, editor portssvc.LimitEditorSvc) {
	h := newLimitHandler(state, editor)

	limits := rg.Group("/limits")
	{
		limits.GET("", h.getLimitState)
		limits.POST("/refresh", h.refreshLimitState)
	}

	requests := rg.Group("/limit-requests")
	{
		requests.DELETE("/:id", h.cancelRequest)

		ed := requests.Group("/editor")
		ed.POST("", h.openEditor)
		ed.GET("", h.getEditor)
		ed.DELETE("", h.closeEditor)
		ed.PUT("/fields", h.updateFields)
		ed.POST("/files/:slot", h.selectFile)
		ed.DELETE("/files/:slot", h.removeFile)
		ed.POST("/submit", h.submit)
	}
}

// getLimitState godoc
// @Summary Get the current limit state
// @Description Returns the current limit, the active request and the derived request flags
// @Tags limits
// @Produce json
// @Success 200 {object} dto.LimitStateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Cannot load limit info"
// @Security BearerAuth
// @Router /limits [get]
func (h *limitHandler) getLimitState(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	state, err := h.state.Read(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load limit info")
		return
	}
	c.JSON(http.StatusOK, dto.ToLimitStateResponse(state))
}

// refreshLimitState godoc
// @Summary Reload the limit state
// @Description Re-fetches the limit and the request list from the backend
// @Tags limits
// @Produce json
// @Success 200 {object} dto.LimitStateResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Cannot load limit info"
// @Security BearerAuth
// @Router /limits/refresh [post]
func (h *limitHandler) refreshLimitState(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	state, err := h.state.Refresh(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load limit info")
		return
	}
	c.JSON(http.StatusOK, dto.ToLimitStateResponse(state))
}

// openEditor godoc
// @Summary Open the limit request editor
// @Description Opens a CREATE, EDIT (rejected request) or RE_REQUEST editor, replacing any open one
// @Tags limit requests
// @Accept json
// @Produce json
// @Param editor body dto.OpenEditorRequest true "Editor mode"
// @Success 201 {object} domain.EditorSnapshot
// @Failure 400 {object} dto.ErrorResponse "Invalid mode"
// @Failure 409 {object} dto.ErrorResponse "Mode not allowed in the current state"
// @Security BearerAuth
// @Router /limit-requests/editor [post]
func (h *limitHandler) openEditor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenEditor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	mode, err := domain.ParseEditorMode(req.Mode, req.RequestID)
	if err != nil {
		respondError(c, err, "Failed to open editor")
		return
	}
	snap, err := h.editor.Open(c.Request.Context(), userID, mode)
	if err != nil {
		respondError(c, err, "Failed to open editor")
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// getEditor godoc
// @Summary Get the open editor
// @Tags limit requests
// @Produce json
// @Success 200 {object} domain.EditorSnapshot
// @Failure 404 {object} dto.ErrorResponse "No editor open"
// @Security BearerAuth
// @Router /limit-requests/editor [get]
func (h *limitHandler) getEditor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	snap, err := h.editor.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load editor")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// closeEditor godoc
// @Summary Close the editor without submitting
// @Tags limit requests
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /limit-requests/editor [delete]
func (h *limitHandler) closeEditor(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.editor.Close(c.Request.Context(), userID); err != nil {
		respondError(c, err, "Failed to close editor")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateFields godoc
// @Summary Update the editor's text fields
// @Description Sets the limit amounts and reason. Omitted fields keep their value.
// @Tags limit requests
// @Accept json
// @Produce json
// @Param fields body dto.UpdateEditorFieldsRequest true "Fields"
// @Success 200 {object} domain.EditorSnapshot
// @Failure 404 {object} dto.ErrorResponse "No editor open"
// @Security BearerAuth
// @Router /limit-requests/editor/fields [put]
func (h *limitHandler) updateFields(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEditorFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEditorFields", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	snap, err := h.editor.SetFields(c.Request.Context(), userID, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to update editor")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// selectFile godoc
// @Summary Attach an evidence file
// @Description Puts a file into an empty or removed slot. Max 10 MiB; jpeg, png, gif or pdf.
// @Tags limit requests
// @Accept multipart/form-data
// @Produce json
// @Param slot path string true "Slot (income, bankbook, business)"
// @Param file formData file true "Evidence file"
// @Success 200 {object} domain.EditorSnapshot
// @Failure 400 {object} dto.ErrorResponse "Rejected file or occupied slot"
// @Failure 409 {object} dto.ErrorResponse "Re-requests take no files"
// @Security BearerAuth
// @Router /limit-requests/editor/files/{slot} [post]
func (h *limitHandler) selectFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, err := domain.ParseEvidenceKind(c.Param("slot"))
	if err != nil {
		respondError(c, err, "Failed to attach file")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Evidence file missing from form", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError(kind.FieldName(), "choose a file to attach"), "Failed to attach file")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer f.Close()
	// One byte past the cap is enough for the size check to fail.
	data, err := io.ReadAll(io.LimitReader(f, domain.MaxEvidenceSize+1))
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}

	snap, err := h.editor.SelectFile(c.Request.Context(), userID, kind, fh.Filename, data)
	if err != nil {
		respondError(c, err, "Failed to attach file")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// removeFile godoc
// @Summary Clear an evidence slot
// @Tags limit requests
// @Produce json
// @Param slot path string true "Slot (income, bankbook, business)"
// @Success 200 {object} domain.EditorSnapshot
// @Security BearerAuth
// @Router /limit-requests/editor/files/{slot} [delete]
func (h *limitHandler) removeFile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	kind, err := domain.ParseEvidenceKind(c.Param("slot"))
	if err != nil {
		respondError(c, err, "Failed to remove file")
		return
	}
	snap, err := h.editor.RemoveFile(c.Request.Context(), userID, kind)
	if err != nil {
		respondError(c, err, "Failed to remove file")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// submit godoc
// @Summary Submit the open editor
// @Description Validates the form and, once confirmed, creates or updates the limit request
// @Tags limit requests
// @Accept json
// @Produce json
// @Param confirm body dto.ConfirmRequest true "Confirmation"
// @Success 201 {object} dto.LimitRequestSubmittedResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 409 {object} dto.ErrorResponse "Submission already in progress"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Failure 502 {object} dto.ErrorResponse "Backend failure"
// @Security BearerAuth
// @Router /limit-requests/editor/submit [post]
func (h *limitHandler) submit(c *gin.Context) {
	var req dto.ConfirmRequest
	// An empty body means "not confirmed".
	_ = c.ShouldBindJSON(&req)
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	created, err := h.editor.Submit(c.Request.Context(), userID, portssvc.Confirmed(req.Confirm))
	if err != nil {
		respondError(c, err, "Failed to submit limit request")
		return
	}
	c.JSON(http.StatusCreated, dto.LimitRequestSubmittedResponse{
		Request: created,
		Message: "Limit request submitted",
	})
}

// cancelRequest godoc
// @Summary Cancel a pending limit request
// @Tags limit requests
// @Param id path int true "Request ID"
// @Param confirm query bool true "Confirmation"
// @Success 204 "No Content"
// @Failure 409 {object} dto.ErrorResponse "Request is not pending"
// @Failure 428 {object} dto.ErrorResponse "Confirmation required"
// @Security BearerAuth
// @Router /limit-requests/{id} [delete]
func (h *limitHandler) cancelRequest(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, apperrors.NewValidationError("id", "invalid request id"), "Failed to cancel request")
		return
	}
	confirm, _ := strconv.ParseBool(c.Query("confirm"))
	if err := h.editor.CancelRequest(c.Request.Context(), userID, id, portssvc.Confirmed(confirm)); err != nil {
		respondError(c, err, "Failed to cancel request")
		return
	}
	c.Status(http.StatusNoContent)
}
