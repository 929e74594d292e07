package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// XLSXOptions configures the XLSX parser.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
	SkipRows   int    // number of leading rows to drop
}

// ReadXLSX reads an XLSX file and returns its rows. Row.Line is the 1-based
// sheet row number. Trailing empty rows are dropped.
func ReadXLSX(path string, opts XLSXOptions) ([]Row, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: open file")
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}

	return sheetRows(sheet, opts.SkipRows), nil
}

// sheetRows converts sheet rows from index skip on. Absent rows are skipped
// without shifting the line numbers of later rows.
func sheetRows(sheet *xlsx.Sheet, skip int) []Row {
	var rows []Row
	for i, row := range sheet.Rows {
		if i < skip || row == nil {
			continue
		}
		rows = append(rows, Row{Line: i + 1, Fields: rowToStrings(row)})
	}

	for len(rows) > 0 && isBlank(rows[len(rows)-1].Fields) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func getSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}

	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("xlsx: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}

	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
