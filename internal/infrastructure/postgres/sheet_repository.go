package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

var _ repository.SheetRepository = (*SheetRepo)(nil)

const sheetColumns = `id, type, thickness, size, location, quantity, last_in, last_out, created_at, updated_at`

// SheetRepo implementación de SheetRepository sobre PostgreSQL (usable con pool o tx).
type SheetRepo struct {
	q Querier
}

// NewSheetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSheetRepository(q Querier) *SheetRepo {
	return &SheetRepo{q: q}
}

// Create persiste una lámina nueva. El índice único sobre (type, thickness,
// size) convierte una duplicación concurrente en ErrDuplicate.
func (r *SheetRepo) Create(ctx context.Context, s *entity.Sheet) error {
	query := `
		INSERT INTO sheets (` + sheetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Type, s.Thickness, s.Size, s.Location, s.Quantity,
		s.LastIn, s.LastOut, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sheet: %w", err)
	}
	return nil
}

// GetByID obtiene una lámina por ID. Devuelve nil sin error si no existe.
func (r *SheetRepo) GetByID(ctx context.Context, id string) (*entity.Sheet, error) {
	return r.get(ctx, `SELECT `+sheetColumns+` FROM sheets WHERE id = $1`, id)
}

// GetForUpdate obtiene la lámina por ID bloqueando la fila (SELECT FOR UPDATE).
func (r *SheetRepo) GetForUpdate(ctx context.Context, id string) (*entity.Sheet, error) {
	return r.get(ctx, `SELECT `+sheetColumns+` FROM sheets WHERE id = $1 FOR UPDATE`, id)
}

// GetByStockLineForUpdate busca por la clave de fusión exacta bloqueando la
// fila. La comparación de type y size es sensible a mayúsculas; thickness se
// compara por igualdad numérica (NUMERIC).
func (r *SheetRepo) GetByStockLineForUpdate(ctx context.Context, sheetType string, thickness decimal.Decimal, size string) (*entity.Sheet, error) {
	query := `
		SELECT ` + sheetColumns + `
		FROM sheets WHERE type = $1 AND thickness = $2 AND size = $3
		FOR UPDATE`
	return r.get(ctx, query, sheetType, thickness, size)
}

// Update persiste cantidad, ubicación y timestamps de una lámina existente.
// Los campos descriptivos de la clave de fusión no se tocan.
func (r *SheetRepo) Update(ctx context.Context, s *entity.Sheet) error {
	query := `
		UPDATE sheets
		SET quantity = $2, location = $3, last_in = $4, last_out = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Quantity, s.Location, s.LastIn, s.LastOut, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLocation corrige solo la ubicación.
func (r *SheetRepo) UpdateLocation(ctx context.Context, id, location string) error {
	tag, err := r.q.Exec(ctx, `UPDATE sheets SET location = $2, updated_at = NOW() WHERE id = $1`, id, location)
	if err != nil {
		return fmt.Errorf("update sheet location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todas las láminas (la colección no define orden; se lista por
// tipo/espesor para estabilidad de lectura).
func (r *SheetRepo) List(ctx context.Context) ([]*entity.Sheet, error) {
	rows, err := r.q.Query(ctx, `SELECT `+sheetColumns+` FROM sheets ORDER BY type, thickness, size`)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sheet
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete da de baja una lámina.
func (r *SheetRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sheets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TotalQuantity suma el stock actual de todas las láminas.
func (r *SheetRepo) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM sheets`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total quantity: %w", err)
	}
	return total, nil
}

func (r *SheetRepo) get(ctx context.Context, query string, args ...any) (*entity.Sheet, error) {
	s, err := scanSheet(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSheet(row rowScanner) (*entity.Sheet, error) {
	var s entity.Sheet
	err := row.Scan(
		&s.ID, &s.Type, &s.Thickness, &s.Size, &s.Location, &s.Quantity,
		&s.LastIn, &s.LastOut, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan sheet: %w", err)
	}
	return &s, nil
}
