package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// SheetRepository define el puerto de persistencia para láminas (DIP).
type SheetRepository interface {
	Create(ctx context.Context, sheet *entity.Sheet) error
	GetByID(ctx context.Context, id string) (*entity.Sheet, error)
	// GetByStockLineForUpdate busca la lámina por su clave de fusión
	// (type, thickness, size) bloqueando la fila (SELECT FOR UPDATE).
	// Devuelve nil sin error si no existe.
	GetByStockLineForUpdate(ctx context.Context, sheetType string, thickness decimal.Decimal, size string) (*entity.Sheet, error)
	// GetForUpdate obtiene la lámina por ID bloqueando la fila.
	GetForUpdate(ctx context.Context, id string) (*entity.Sheet, error)
	Update(ctx context.Context, sheet *entity.Sheet) error
	UpdateLocation(ctx context.Context, id, location string) error
	List(ctx context.Context) ([]*entity.Sheet, error)
	Delete(ctx context.Context, id string) error
	// TotalQuantity suma la cantidad de todas las láminas (stock total actual).
	TotalQuantity(ctx context.Context) (int64, error)
}
