package dto

// MonthlyReportDTO respuesta de GET /api/reports/monthly: entradas y salidas del
// mes en curso más el stock total actual (este último sin filtro temporal).
type MonthlyReportDTO struct {
	Year       int   `json:"year"`
	Month      int   `json:"month"`
	Entries    int64 `json:"entries"`
	Exits      int64 `json:"exits"`
	TotalStock int64 `json:"total_stock"`
}
