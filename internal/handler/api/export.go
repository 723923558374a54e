package api

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"

	"fullplanes/internal/handler/httperr"
	"fullplanes/internal/handler/middleware"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/usecase"

	"github.com/gin-gonic/gin"
)

const exportFileName = "flug-report.csv"

type ExportHandler struct {
	sessionUC usecase.SessionUseCase
	logger    *slog.Logger
}

func NewExportHandler(sessionUC usecase.SessionUseCase, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{sessionUC: sessionUC, logger: logger}
}

// CSV streams the last search of the caller's session.
//
// @Summary Export last search as CSV
// @Tags export
// @Produce text/csv
// @Success 200 {file} file "flug-report.csv"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	rows, err := h.sessionUC.ExportRows(middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, errs.ErrNoSession) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No search results to export, run a search first", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Export failed", nil)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename="+exportFileName)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.WriteAll(rows); err != nil {
		// headers are already sent; nothing left but to log
		h.logger.Error("failed to write csv export", "error", err.Error())
	}
}
