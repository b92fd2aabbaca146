package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/remittance_web/internal/apperrors"
	portssvc "github.com/SscSPs/remittance_web/internal/core/ports/services"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fileHandler struct {
	files portssvc.FileSvc
}

func registerFileRoutes(rg *gin.RouterGroup, files portssvc.FileSvc) {
	h := &fileHandler{files: files}
	rg.GET("/files/:fileId", h.downloadFile)
}

// downloadFile godoc
// @Summary Download an evidence file
// @Description Streams an attachment of one of the user's limit requests
// @Tags files
// @Produce octet-stream
// @Param fileId path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Security BearerAuth
// @Router /files/{fileId} [get]
func (h *fileHandler) downloadFile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	fileID, err := strconv.ParseInt(c.Param("fileId"), 10, 64)
	if err != nil || fileID <= 0 {
		respondError(c, apperrors.NewValidationError("fileId", "invalid file id"), "Failed to download file")
		return
	}

	body, contentType, err := h.files.DownloadFile(c.Request.Context(), userID, fileID)
	if err != nil {
		respondError(c, err, "Failed to download file")
		return
	}
	defer body.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, body); err != nil {
		logger.Warn("File stream interrupted", slog.Int64("file_id", fileID), slog.String("error", err.Error()))
	}
}
