package repository

import (
	"context"
	"time"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos de stock.
// El historial es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent devuelve movimientos ordenados del más reciente al más antiguo.
	// limit <= 0 significa sin tope.
	ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error)
	// ListBetween devuelve los movimientos con created_at en [from, to), más
	// recientes primero.
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.StockMovement, error)
}
