// Package reporting contiene los casos de uso de reportes de movimientos.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/inventory"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// ReportUseCase genera el resumen de entradas/salidas del mes en curso y el
// stock total. Solo se produce "este mes": no se persisten resúmenes pasados,
// se recalcula sobre el historial cada vez.
type ReportUseCase struct {
	movRepo   repository.MovementRepository
	sheetRepo repository.SheetRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(movRepo repository.MovementRepository, sheetRepo repository.SheetRepository) *ReportUseCase {
	return &ReportUseCase{movRepo: movRepo, sheetRepo: sheetRepo}
}

// MonthlySummary calcula el resumen del mes de `now` (reloj de pared).
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, now time.Time) (*dto.MonthlyReportDTO, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	movements, err := uc.movRepo.ListBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("reporte: movimientos del mes: %w", err)
	}
	sum := inventory.Summarize(movements, now)

	total, err := uc.sheetRepo.TotalQuantity(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: stock total: %w", err)
	}

	return &dto.MonthlyReportDTO{
		Year:       sum.Year,
		Month:      sum.Month,
		Entries:    sum.Entries,
		Exits:      sum.Exits,
		TotalStock: total,
	}, nil
}

// MonthMovements devuelve los movimientos del mes de `now`, más recientes
// primero (insumo del PDF del reporte).
func (uc *ReportUseCase) MonthMovements(ctx context.Context, now time.Time) ([]*entity.StockMovement, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	return uc.movRepo.ListBetween(ctx, monthStart, monthEnd)
}

// RecentMovements devuelve el historial de movimientos, más recientes primero.
// limit <= 0 significa sin tope.
func (uc *ReportUseCase) RecentMovements(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	return uc.movRepo.ListRecent(ctx, limit)
}
