// Package sheet parses CSV exports of the studio's billing sheet into ledger
// create params. Column headers are matched by name, so the sheet's column
// order does not matter.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/studiodesk/studiodesk/internal/encoding"
	"github.com/studiodesk/studiodesk/internal/ledger"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// headerAliases maps accepted column names to canonical fields. Sheets come
// from several spreadsheet templates, hence the synonyms.
var headerAliases = map[string]string{
	"studio":     "studio",
	"person":     "person",
	"customer":   "person",
	"name":       "person",
	"phone":      "phone",
	"contact":    "phone",
	"date":       "date",
	"shoot date": "date",
	"camera":     "camera",
	"location":   "location",
	"venue":      "location",
	"advance":    "advance",
	"deposit":    "advance",
	"total":      "total",
	"amount":     "total",
}

func (p *Parser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	// Small files only; buffering lets the delimiter be re-detected.
	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}

	rows, err := readRows(data)
	if err != nil {
		return nil, err
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no billing sheet header found: expected columns like person, advance, total")
	}

	return parseRows(cols, rows[headerIdx+1:]), nil
}

func readRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

func detectDelimiter(data []byte) rune {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	if !bytes.ContainsRune(line, ',') && bytes.ContainsRune(line, ';') {
		return ';'
	}

	return ','
}

// colIndex maps canonical field names to their column index.
type colIndex map[string]int

// detectHeader scans for the first row where at least one amount column and
// one identity column are recognizable.
func detectHeader(rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if field, ok := headerAliases[name]; ok {
				if _, taken := cols[field]; !taken {
					cols[field] = i
				}
			}
		}

		_, hasAmount := cols["total"]
		_, hasPerson := cols["person"]
		_, hasStudio := cols["studio"]

		if hasAmount && (hasPerson || hasStudio) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func parseRows(cols colIndex, rows [][]string) []ledger.CreateParams {
	var params []ledger.CreateParams

	for _, row := range rows {
		p := ledger.CreateParams{
			Studio:    cellValue(row, cols, "studio"),
			Person:    cellValue(row, cols, "person"),
			Phone:     cellValue(row, cols, "phone"),
			ShootDate: cellValue(row, cols, "date"),
			Camera:    cellValue(row, cols, "camera"),
			Location:  cellValue(row, cols, "location"),
			Advance:   cellValue(row, cols, "advance"),
			Total:     cellValue(row, cols, "total"),
		}

		// Footer/blank rows carry no identity and are skipped.
		if p.Person == "" && p.Studio == "" {
			continue
		}

		params = append(params, p)
	}

	return params
}

func cellValue(row []string, cols colIndex, field string) string {
	idx, ok := cols[field]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
