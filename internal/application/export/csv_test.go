package export_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acrilico-stock-api/internal/application/export"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

func TestCSVFilename(t *testing.T) {
	now := time.Date(2026, time.August, 30, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "stock_acrylic_2026-08-30.csv", export.CSVFilename(now))
}

// N láminas producen N+1 líneas (encabezado + una por lámina), separadas por
// punto y coma.
func TestWriteSheetsCSV_EncabezadoYFilas(t *testing.T) {
	lastIn := time.Date(2026, time.August, 12, 9, 30, 0, 0, time.UTC)
	sheets := []*entity.Sheet{
		{
			ID:        "s-1",
			Type:      "Cristal",
			Thickness: decimal.NewFromInt(3),
			Size:      "1220x2440",
			Location:  "Rack A-3",
			Quantity:  15,
			LastIn:    &lastIn,
		},
		{
			ID:        "s-2",
			Type:      "Blanco Opal",
			Thickness: decimal.NewFromFloat(5.5),
			Size:      "600x400",
			Location:  "Rack B-1",
			Quantity:  4,
			// sin LastIn: columna vacía
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteSheetsCSV(&buf, sheets))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "encabezado + 2 filas")

	assert.Equal(t, "ID;TIPO;ESPESSURA_MM;TAMANHO;LOCALIZACAO;QUANTIDADE;ULTIMA_ENTRADA", lines[0])
	assert.Equal(t, "s-1;Cristal;3;1220x2440;Rack A-3;15;2026-08-12 09:30", lines[1])
	assert.Equal(t, "s-2;Blanco Opal;5.5;600x400;Rack B-1;4;", lines[2])
}

// Valores con delimitador o comillas sobreviven un round-trip de lectura CSV.
func TestWriteSheetsCSV_EscapaDelimitadorYComillas(t *testing.T) {
	sheets := []*entity.Sheet{
		{
			ID:        "s-raro",
			Type:      `Acrílico "premium"; espejo`,
			Thickness: decimal.NewFromInt(2),
			Size:      "1000x500",
			Location:  "Rack; C-2",
			Quantity:  1,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteSheetsCSV(&buf, sheets))

	r := csv.NewReader(&buf)
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err, "el CSV generado debe ser parseable")

	require.Len(t, records, 2)
	assert.Equal(t, `Acrílico "premium"; espejo`, records[1][1],
		"el tipo con comillas y punto y coma debe recuperarse intacto")
	assert.Equal(t, "Rack; C-2", records[1][4])
}

func TestWriteSheetsCSV_SinLaminas_SoloEncabezado(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSheetsCSV(&buf, nil))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1, "sin stock el CSV contiene solo el encabezado")
}
