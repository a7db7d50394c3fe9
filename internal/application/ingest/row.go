// Package ingest implementa el pipeline de ingesta de inventario:
// parseo tolerante de filas tabulares (Excel, Excel legado o texto plano),
// derivación del inventario corrido de 3 días y reemplazo transaccional
// del catálogo del usuario.
package ingest

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Mapeo posicional de columnas (0-indexado). Las filas con menos de
// minRowCells celdas se descartan en silencio: la carga es "best effort"
// sobre datos imperfectos del usuario.
const (
	colID               = 0
	colName             = 1
	colOpeningInventory = 2
	minRowCells         = 15
)

// ProductRow fila ya parseada de la hoja de cálculo, previa a derivación.
// Los índices 0..2 de cada arreglo corresponden a los días 1..3.
type ProductRow struct {
	ID               string
	Name             string
	OpeningInventory int
	ProcurementQty   [3]int
	ProcurementPrice [3]decimal.Decimal
	SalesQty         [3]int
	SalesPrice       [3]decimal.Decimal
}

// LenientInt parsea una celda como entero con política tolerante: cualquier
// fallo (celda vacía, texto no numérico) produce 0, nunca error. Acepta
// también celdas con formato decimal ("10.0" → 10) porque Excel suele
// renderizar enteros así.
func LenientInt(cell string) int {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// priceCleaner quita símbolos de moneda, separadores de miles y espacios
// antes del parseo ("$1,234.50" → "1234.50").
var priceCleaner = strings.NewReplacer("$", "", ",", "", " ", "", "\t", "", " ", "")

// LenientPrice parsea una celda de precio con política tolerante: limpia
// símbolos de moneda, comas y espacios, y cualquier fallo produce 0.0,
// nunca error.
func LenientPrice(cell string) decimal.Decimal {
	s := priceCleaner.Replace(strings.TrimSpace(cell))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseRow convierte una fila de celdas en un ProductRow. Devuelve ok=false
// cuando la fila debe descartarse: menos de minRowCells celdas, o ID/nombre
// vacíos después de recortar espacios. Las celdas numéricas malformadas no
// descartan la fila; caen al valor neutro vía LenientInt/LenientPrice.
func parseRow(cells []string) (ProductRow, bool) {
	if len(cells) < minRowCells {
		return ProductRow{}, false
	}

	row := ProductRow{
		ID:               strings.TrimSpace(cells[colID]),
		Name:             strings.TrimSpace(cells[colName]),
		OpeningInventory: LenientInt(cells[colOpeningInventory]),
	}
	if row.ID == "" || row.Name == "" {
		return ProductRow{}, false
	}

	// Pares (cantidad, precio) de compras en columnas (3,4),(5,6),(7,8)
	// y de ventas en (9,10),(11,12),(13,14).
	for i := 0; i < 3; i++ {
		row.ProcurementQty[i] = LenientInt(cells[3+i*2])
		row.ProcurementPrice[i] = LenientPrice(cells[4+i*2])
		row.SalesQty[i] = LenientInt(cells[9+i*2])
		row.SalesPrice[i] = LenientPrice(cells[10+i*2])
	}

	return row, true
}

// parseRows aplica parseRow a cada fila de datos (sin encabezado) y conserva
// solo las válidas.
func parseRows(raw [][]string) []ProductRow {
	rows := make([]ProductRow, 0, len(raw))
	for _, cells := range raw {
		if row, ok := parseRow(cells); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
