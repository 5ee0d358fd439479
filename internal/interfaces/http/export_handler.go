package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acrilico-stock-api/internal/application/export"
	"github.com/jhoicas/acrilico-stock-api/internal/application/usecase"
)

// ExportHandler descarga el stock actual como CSV.
type ExportHandler struct {
	sheets *usecase.SheetUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(sheets *usecase.SheetUseCase) *ExportHandler {
	return &ExportHandler{sheets: sheets}
}

// CSV devuelve el stock como CSV delimitado por punto y coma.
// GET /api/export/csv
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	sheets, err := h.sheets.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteSheetsCSV(&buf, sheets); err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, export.CSVFilename(time.Now())))
	return c.Send(buf.Bytes())
}
