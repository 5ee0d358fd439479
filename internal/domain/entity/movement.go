package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementKindINPUT  = "INPUT"  // entrada de mercancía
	MovementKindOUTPUT = "OUTPUT" // salida / retiro
)

// StockMovement es el registro de auditoría inmutable de un cambio de cantidad
// sobre una lámina. Lleva una copia desnormalizada de los campos descriptivos de
// la lámina en el momento del movimiento, de modo que el historial sobrevive a
// ediciones o bajas posteriores de la fila de stock.
type StockMovement struct {
	ID             string          `json:"id"`
	SheetID        string          `json:"sheet_id"`
	Kind           string          `json:"kind"`     // INPUT | OUTPUT
	Quantity       int64           `json:"quantity"` // siempre > 0; el signo lo da Kind
	SheetType      string          `json:"sheet_type"`
	SheetThickness decimal.Decimal `json:"sheet_thickness"`
	SheetSize      string          `json:"sheet_size"`
	SheetLocation  string          `json:"sheet_location"`
	Note           string          `json:"note,omitempty"`
	ActorID        string          `json:"actor_id"`
	ActorName      string          `json:"actor_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SnapshotFrom copia los campos descriptivos de la lámina al movimiento.
func (m *StockMovement) SnapshotFrom(s *Sheet) {
	m.SheetID = s.ID
	m.SheetType = s.Type
	m.SheetThickness = s.Thickness
	m.SheetSize = s.Size
	m.SheetLocation = s.Location
}

// IsInput indica si el movimiento suma stock.
func (m *StockMovement) IsInput() bool { return m.Kind == MovementKindINPUT }

// ValidKind valida el tipo de movimiento.
func ValidKind(kind string) bool {
	return kind == MovementKindINPUT || kind == MovementKindOUTPUT
}
