package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// SheetNotifier publica que la colección de láminas cambió (espejo en vivo).
type SheetNotifier interface {
	SheetsChanged(ctx context.Context)
}

// SheetUseCase casos de uso CRUD para láminas. La cantidad nunca se edita por
// aquí: todo cambio de stock pasa por el caso de uso de reconciliación para que
// quede su movimiento. De los campos descriptivos solo Location es corregible.
type SheetUseCase struct {
	repo     repository.SheetRepository
	notifier SheetNotifier
}

// NewSheetUseCase construye el caso de uso. notifier puede ser nil.
func NewSheetUseCase(repo repository.SheetRepository, notifier SheetNotifier) *SheetUseCase {
	return &SheetUseCase{repo: repo, notifier: notifier}
}

// List devuelve todas las láminas.
func (uc *SheetUseCase) List(ctx context.Context) ([]*entity.Sheet, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene una lámina por ID. Devuelve ErrNotFound si no existe.
func (uc *SheetUseCase) GetByID(ctx context.Context, id string) (*entity.Sheet, error) {
	sheet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}
	return sheet, nil
}

// UpdateLocation corrige la ubicación física de una lámina.
func (uc *SheetUseCase) UpdateLocation(ctx context.Context, id, location string) error {
	if strings.TrimSpace(location) == "" {
		return domain.ErrInvalidInput
	}
	sheet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sheet == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.UpdateLocation(ctx, id, location); err != nil {
		return err
	}
	if uc.notifier != nil {
		uc.notifier.SheetsChanged(ctx)
	}
	return nil
}

// Delete da de baja una lámina. El historial de movimientos no se toca: cada
// movimiento conserva su propio snapshot descriptivo.
func (uc *SheetUseCase) Delete(ctx context.Context, id string) error {
	sheet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sheet == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.notifier != nil {
		uc.notifier.SheetsChanged(ctx)
	}
	return nil
}
