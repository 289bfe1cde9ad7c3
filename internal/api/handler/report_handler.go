package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gameops/ticket-board/internal/core/ports"
)

// maxCSVBytes caps the accepted upload size. Weekly stat exports are a
// few kilobytes; anything past this is not a stats file.
const maxCSVBytes = 4 << 20

// ReportHandler handles weekly report generation from uploaded CSV stats.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Build handles POST /v1/reports. Expects multipart form fields
// "supervisor" and "day" plus the stats CSV under "file".
//
// @Summary      Build a weekly report
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        supervisor  formData  string  true  "Supervisor whose squad to report on"
// @Param        day         formData  string  true  "Report day, Четверг or Воскресенье"
// @Param        file        formData  file    true  "Ticket stats CSV"
// @Success      200         {object}  reportResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      422         {object}  errorResponse
// @Router       /v1/reports [post]
func (h *ReportHandler) Build(c echo.Context) error {
	supervisor := c.FormValue("supervisor")
	day := c.FormValue("day")
	if supervisor == "" || day == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "supervisor and day are required")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer src.Close()

	body, err := io.ReadAll(io.LimitReader(src, maxCSVBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	if len(body) > maxCSVBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file too large")
	}

	result, err := h.reports.BuildReport(c.Request().Context(), ports.BuildReportInput{
		Supervisor: supervisor,
		Day:        day,
		CSV:        body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reportResponse{
		Report:          result.Report,
		Players:         result.Players,
		MatchedRows:     result.MatchedRows,
		DuplicateUpload: result.DuplicateUpload,
	})
}
