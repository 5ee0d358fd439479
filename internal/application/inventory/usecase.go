package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// ReconcileStockUseCase aplica cambios de stock manteniendo la tabla de láminas
// sin duplicados y el historial de movimientos completo. Toda la secuencia
// lectura-decisión-escritura ocurre dentro de una transacción con bloqueo de
// fila (SELECT FOR UPDATE), de modo que dos altas concurrentes sobre la misma
// línea de stock se serializan y nunca se pierde un incremento.
type ReconcileStockUseCase struct {
	txRunner TxRunner
	notifier ChangeNotifier
}

// NewReconcileStockUseCase construye el caso de uso. notifier puede ser nil
// (sin espejo en vivo, útil en tests).
func NewReconcileStockUseCase(txRunner TxRunner, notifier ChangeNotifier) *ReconcileStockUseCase {
	return &ReconcileStockUseCase{txRunner: txRunner, notifier: notifier}
}

// Actor identifica quién firma la escritura (de los claims de la sesión).
type Actor struct {
	ID   string
	Name string
}

// ReceiveInput entrada para Receive: un lote entrante de láminas.
type ReceiveInput struct {
	Type      string
	Thickness decimal.Decimal // mm
	Size      string
	Location  string
	Quantity  int64
}

// Receive registra un lote entrante. Si ya existe una lámina con la misma
// tripleta (type, thickness, size) se fusiona: suma la cantidad, estampa
// last_in y agrega exactamente un movimiento INPUT con el snapshot descriptivo.
// Si no existe, crea la lámina con la cantidad dada; en ese caso no se agrega
// movimiento (el alta inicial queda auditada por created_at de la propia fila).
func (uc *ReconcileStockUseCase) Receive(ctx context.Context, actor Actor, in ReceiveInput) error {
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Size) == "" || strings.TrimSpace(in.Location) == "" {
		return domain.ErrInvalidInput
	}
	if !in.Thickness.GreaterThan(decimal.Zero) || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(sheetRepo repository.SheetRepository, movRepo repository.MovementRepository) error {
		sheet, err := sheetRepo.GetByStockLineForUpdate(ctx, in.Type, in.Thickness, in.Size)
		if err != nil {
			return err
		}
		if sheet == nil {
			sheet = &entity.Sheet{
				ID:        uuid.New().String(),
				Type:      in.Type,
				Thickness: in.Thickness,
				Size:      in.Size,
				Location:  in.Location,
				Quantity:  in.Quantity,
				LastIn:    &now,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return sheetRepo.Create(ctx, sheet)
		}

		sheet.Quantity += in.Quantity
		sheet.LastIn = &now
		sheet.UpdatedAt = now
		if err := sheetRepo.Update(ctx, sheet); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			Kind:      entity.MovementKindINPUT,
			Quantity:  in.Quantity,
			ActorID:   actor.ID,
			ActorName: actor.Name,
			CreatedAt: now,
		}
		mov.SnapshotFrom(sheet)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return err
	}
	uc.notifyStockChanged(ctx)
	return nil
}

// AdjustInput entrada para Adjust: corrección manual o retiro.
type AdjustInput struct {
	SheetID  string
	Kind     string // INPUT | OUTPUT
	Quantity int64
	Note     string
}

// Adjust aplica un ajuste sobre una lámina existente. OUTPUT con cantidad mayor
// al stock actual se rechaza con ErrInsufficientStock sin escribir nada. La
// actualización de la cantidad y el alta del movimiento (con snapshot y nota)
// se confirman en la misma transacción.
func (uc *ReconcileStockUseCase) Adjust(ctx context.Context, actor Actor, in AdjustInput) error {
	if in.SheetID == "" || in.Quantity <= 0 || !entity.ValidKind(in.Kind) {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(sheetRepo repository.SheetRepository, movRepo repository.MovementRepository) error {
		sheet, err := sheetRepo.GetForUpdate(ctx, in.SheetID)
		if err != nil {
			return err
		}
		if sheet == nil {
			return domain.ErrNotFound
		}

		switch in.Kind {
		case entity.MovementKindOUTPUT:
			if in.Quantity > sheet.Quantity {
				return domain.ErrInsufficientStock
			}
			sheet.Quantity -= in.Quantity
			sheet.LastOut = &now
		case entity.MovementKindINPUT:
			sheet.Quantity += in.Quantity
			sheet.LastIn = &now
		}
		sheet.UpdatedAt = now
		if err := sheetRepo.Update(ctx, sheet); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			Kind:      in.Kind,
			Quantity:  in.Quantity,
			Note:      in.Note,
			ActorID:   actor.ID,
			ActorName: actor.Name,
			CreatedAt: now,
		}
		mov.SnapshotFrom(sheet)
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return err
	}
	uc.notifyStockChanged(ctx)
	return nil
}

func (uc *ReconcileStockUseCase) notifyStockChanged(ctx context.Context) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.SheetsChanged(ctx)
	uc.notifier.MovementsChanged(ctx)
}
