package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sheet representa una línea de stock de lámina acrílica: un tipo concreto en un
// espesor y tamaño determinados, ubicada en un rack.
//
// La clave lógica de fusión es (Type, Thickness, Size): dos filas con la misma
// tripleta son la misma línea de stock y nunca deben duplicarse. La comparación
// es sensible a mayúsculas y el espesor se compara por igualdad numérica exacta.
// Quantity y los timestamps Last* son los únicos campos mutables tras la creación;
// Location puede corregirse manualmente, el resto es descriptivo e inmutable.
type Sheet struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`      // ej. "Cristal", "Blanco Opal"
	Thickness decimal.Decimal `json:"thickness"` // milímetros, > 0
	Size      string          `json:"size"`      // ej. "1220x2440"
	Location  string          `json:"location"`  // ej. "Rack A-3"
	Quantity  int64           `json:"quantity"`  // nunca negativo
	LastIn    *time.Time      `json:"last_in,omitempty"`
	LastOut   *time.Time      `json:"last_out,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SameStockLine indica si la lámina pertenece a la misma línea lógica de stock
// que la tripleta dada (criterio de fusión del alta de mercancía).
func (s *Sheet) SameStockLine(sheetType string, thickness decimal.Decimal, size string) bool {
	return s.Type == sheetType && s.Thickness.Equal(thickness) && s.Size == size
}
