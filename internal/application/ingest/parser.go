package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxLegacyRows tope de filas a leer de un .xls legado; extrame/xls exige
// un máximo explícito.
const maxLegacyRows = 65536

// ParseUpload despacha el archivo subido al parser que corresponde según
// extensión y content-type: workbook moderno (.xlsx/.xlsm), workbook legado
// (.xls) o texto plano delimitado (.csv/.txt). Los tres formatos convergen
// en el mismo mapeo de columnas y las mismas reglas de tolerancia.
//
// Un contenedor ilegible o un formato no reconocido es un error estructural;
// las celdas malformadas nunca lo son.
func ParseUpload(filename, contentType string, data []byte) ([]ProductRow, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	ct := strings.ToLower(contentType)

	switch {
	case ext == ".xlsx" || ext == ".xlsm" || strings.Contains(ct, "spreadsheetml"):
		return ParseWorkbook(data)
	case ext == ".xls" || strings.Contains(ct, "ms-excel"):
		return ParseLegacyWorkbook(data)
	case ext == ".csv" || ext == ".txt" || strings.Contains(ct, "text/csv") || strings.Contains(ct, "text/plain"):
		return ParseCSV(data), nil
	default:
		return nil, fmt.Errorf("formato de archivo no soportado: %q (%s)", filename, contentType)
	}
}

// padRow rellena la fila con celdas vacías hasta minRowCells. Los lectores
// de workbook recortan las celdas en blanco al final de cada fila, pero una
// celda ausente equivale a una vacía: cae a 0 por las reglas de tolerancia.
// Una fila rellenada sin ID o nombre se descarta igual en parseRow.
func padRow(cells []string) []string {
	if len(cells) >= minRowCells {
		return cells
	}
	padded := make([]string, minRowCells)
	copy(padded, cells)
	return padded
}

// ParseWorkbook parsea la primera hoja de un workbook .xlsx. La primera fila
// es encabezado y se descarta.
func ParseWorkbook(data []byte) ([]ProductRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook sin hojas")
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}
	rows := raw[1:]
	for i := range rows {
		rows[i] = padRow(rows[i])
	}
	return parseRows(rows), nil
}

// ParseLegacyWorkbook parsea la primera hoja de un workbook .xls (formato
// binario BIFF). Mismo encabezado y mismas reglas que ParseWorkbook; las
// demás hojas del archivo se ignoran. Se leen exactamente las minRowCells
// primeras columnas de cada fila, así las celdas finales en blanco quedan
// vacías en vez de recortadas.
func ParseLegacyWorkbook(data []byte) ([]ProductRow, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("abrir workbook legado: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("workbook legado sin hojas")
	}
	if sheet.MaxRow == 0 {
		// A lo sumo la fila de encabezado.
		return nil, nil
	}

	maxRow := int(sheet.MaxRow)
	if maxRow >= maxLegacyRows {
		maxRow = maxLegacyRows - 1
	}
	raw := make([][]string, 0, maxRow)
	for i := 1; i <= maxRow; i++ { // fila 0 es encabezado
		row := legacyRow(sheet, i)
		if row == nil {
			continue
		}
		cells := make([]string, minRowCells)
		for j := range cells {
			cells[j] = row.Col(j)
		}
		raw = append(raw, cells)
	}
	return parseRows(raw), nil
}

// legacyRow obtiene la fila idx de la hoja tolerando huecos: WorkSheet.Row
// entra en pánico cuando la fila no existe en su mapa interno, y una fila
// ausente aquí solo significa fila vacía.
func legacyRow(sheet *xls.WorkSheet, idx int) (row *xls.Row) {
	defer func() { _ = recover() }()
	return sheet.Row(idx)
}

// ParseCSV parsea texto plano delimitado por comas: una fila por línea,
// celdas separadas por coma simple (sin comillas ni escapes; es el formato
// que exporta la plantilla de carga). La primera línea es encabezado y se
// descarta. No tiene modo de fallo estructural: cada línea corta o
// malformada simplemente se omite.
func ParseCSV(data []byte) []ProductRow {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) <= 1 {
		return nil
	}
	raw := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		raw = append(raw, strings.Split(line, ","))
	}
	return parseRows(raw)
}
