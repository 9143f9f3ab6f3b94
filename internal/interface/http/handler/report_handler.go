package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/reporting"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/dto"
	"github.com/ignatzorin/tecsolutions-backend/internal/interface/http/response"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/clock"
	"github.com/ignatzorin/tecsolutions-backend/internal/usecase/report"
)

type ReportHandler struct {
	generateUC *report.GenerateReportUseCase
	exportUC   *report.ExportReportUseCase
	clock      clock.Clock
}

func NewReportHandler(generateUC *report.GenerateReportUseCase, exportUC *report.ExportReportUseCase, clk clock.Clock) *ReportHandler {
	return &ReportHandler{
		generateUC: generateUC,
		exportUC:   exportUC,
		clock:      clk,
	}
}

// GetReport обрабатывает GET /api/reports?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *ReportHandler) GetReport(c *gin.Context) {
	period, err := reporting.ParseRange(c.Query("start"), c.Query("end"), h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	r, err := h.generateUC.Execute(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToReportResponse(r))
}

// ExportReport отдаёт отчёт файлом relatorio_<start>_<end>.json.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	period, err := reporting.ParseRange(c.Query("start"), c.Query("end"), h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	exported, err := h.exportUC.Execute(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, exported.FileName, "application/json", exported.Content)
}
