package inventory

import (
	"time"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// MonthlySummary es el resumen de entradas y salidas del mes en curso.
type MonthlySummary struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Entries int64 `json:"entries"` // suma de cantidades INPUT del mes
	Exits   int64 `json:"exits"`   // suma de cantidades OUTPUT del mes
}

// Summarize pliega el historial de movimientos al resumen del mes de `now`
// (servicio de dominio, sin estado). Los movimientos fuera del año+mes de `now`
// se excluyen sin importar su cantidad; un conjunto vacío produce (0, 0).
func Summarize(movements []*entity.StockMovement, now time.Time) MonthlySummary {
	sum := MonthlySummary{Year: now.Year(), Month: int(now.Month())}
	for _, m := range movements {
		// Se compara en la zona horaria de `now` (timestamptz puede venir en UTC).
		t := m.CreatedAt.In(now.Location())
		if t.Year() != now.Year() || t.Month() != now.Month() {
			continue
		}
		switch m.Kind {
		case entity.MovementKindINPUT:
			sum.Entries += m.Quantity
		case entity.MovementKindOUTPUT:
			sum.Exits += m.Quantity
		}
	}
	return sum
}
