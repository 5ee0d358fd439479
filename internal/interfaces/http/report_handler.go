package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/application/reporting"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// MonthlyReportPDFGenerator genera el PDF del reporte mensual.
type MonthlyReportPDFGenerator interface {
	GenerateMonthlyReport(summary *dto.MonthlyReportDTO, movements []*entity.StockMovement) ([]byte, error)
}

// ReportHandler maneja los reportes de movimientos.
type ReportHandler struct {
	uc  *reporting.ReportUseCase
	pdf MonthlyReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase, pdf MonthlyReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Movements devuelve el historial de movimientos, más recientes primero.
// Acepta ?limit=N; sin parámetro devuelve todo el historial.
// GET /api/movements
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	movements, err := h.uc.RecentMovements(c.Context(), limit)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// Monthly devuelve entradas/salidas del mes en curso y el stock total.
// GET /api/reports/monthly
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	report, err := h.uc.MonthlySummary(c.Context(), time.Now())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(report)
}

// MonthlyPDF devuelve el reporte del mes como PDF descargable.
// GET /api/reports/monthly/pdf
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	now := time.Now()
	summary, err := h.uc.MonthlySummary(c.Context(), now)
	if err != nil {
		return internalError(c, err)
	}
	movements, err := h.uc.MonthMovements(c.Context(), now)
	if err != nil {
		return internalError(c, err)
	}
	data, err := h.pdf.GenerateMonthlyReport(summary, movements)
	if err != nil {
		return internalError(c, err)
	}
	filename := fmt.Sprintf("stock_report_%04d-%02d.pdf", summary.Year, summary.Month)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
