// Package export genera los archivos descargables del stock (CSV y PDF).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

// Encabezado del CSV de stock (formato acordado con el cliente; no traducir).
var csvHeader = []string{"ID", "TIPO", "ESPESSURA_MM", "TAMANHO", "LOCALIZACAO", "QUANTIDADE", "ULTIMA_ENTRADA"}

const csvTimeLayout = "2006-01-02 15:04"

// CSVFilename devuelve el nombre del archivo para la fecha dada:
// stock_acrylic_<YYYY-MM-DD>.csv
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("stock_acrylic_%s.csv", now.Format("2006-01-02"))
}

// WriteSheetsCSV escribe el stock actual como CSV delimitado por punto y coma.
// Los valores que contienen delimitador, comillas o salto de línea van entre
// comillas dobles con las comillas internas duplicadas (encoding/csv lo hace).
func WriteSheetsCSV(w io.Writer, sheets []*entity.Sheet) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, s := range sheets {
		lastIn := ""
		if s.LastIn != nil {
			lastIn = s.LastIn.Format(csvTimeLayout)
		}
		row := []string{
			s.ID,
			s.Type,
			s.Thickness.String(),
			s.Size,
			s.Location,
			strconv.FormatInt(s.Quantity, 10),
			lastIn,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: fila %s: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
