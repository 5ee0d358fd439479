package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, sheet_id, kind, quantity, sheet_type, sheet_thickness, sheet_size, sheet_location, note, actor_id, actor_name, created_at`

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el historial es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.SheetID, m.Kind, m.Quantity,
		m.SheetType, m.SheetThickness, m.SheetSize, m.SheetLocation,
		m.Note, m.ActorID, m.ActorName, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListRecent lista movimientos del más reciente al más antiguo.
// limit <= 0 significa sin tope.
func (r *MovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// ListBetween lista movimientos con created_at en [from, to), más recientes primero.
func (r *MovementRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`
	return r.list(ctx, query, from, to)
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.SheetID, &m.Kind, &m.Quantity,
			&m.SheetType, &m.SheetThickness, &m.SheetSize, &m.SheetLocation,
			&m.Note, &m.ActorID, &m.ActorName, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
