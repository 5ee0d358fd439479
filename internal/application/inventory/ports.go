package inventory

import (
	"context"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de la lámina y
// el alta del movimiento se confirman o se revierten como una unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sheetRepo repository.SheetRepository,
		movRepo repository.MovementRepository,
	) error) error
}

// ChangeNotifier publica a los clientes en vivo que una colección cambió y su
// snapshot debe reemplazarse. Se invoca solo después de un commit exitoso.
type ChangeNotifier interface {
	SheetsChanged(ctx context.Context)
	MovementsChanged(ctx context.Context)
}
