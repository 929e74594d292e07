// Package export writes the full disclosure dump in CSV, JSON, YAML or XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/paygap/internal/dataset"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatXLSX}

// SheetName is the worksheet name of XLSX exports.
const SheetName = "Pay Gap"

// ParseFormat maps a name (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatCSV, FormatJSON, FormatYAML, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", eris.Errorf("export: unsupported format %q", name)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Ext returns the file extension of the format including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Table is the serialized shape of the full dump.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    [][]any  `json:"rows" yaml:"rows"`
}

// TableOf returns the full dump of ds. Missing cells are nil.
func TableOf(ds *dataset.Dataset) Table {
	return Table{Columns: ds.Columns(), Rows: ds.Rows()}
}

// Write serializes ds to w in format f.
func Write(w io.Writer, ds *dataset.Dataset, f Format) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, ds)
	case FormatJSON:
		return WriteJSON(w, ds)
	case FormatYAML:
		return WriteYAML(w, ds)
	case FormatXLSX:
		return WriteXLSX(w, ds)
	}
	return eris.Errorf("export: unsupported format %q", f)
}

// WriteCSV writes the header followed by one line per record. Missing cells
// are empty.
func WriteCSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ds.Columns()); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for _, row := range ds.Rows() {
		line := make([]string, len(row))
		for i, v := range row {
			line[i] = formatCell(v)
		}
		if err := cw.Write(line); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

// WriteJSON writes the dump as {"columns": [...], "rows": [[...], ...]}.
func WriteJSON(w io.Writer, ds *dataset.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(TableOf(ds)), "export: encode json")
}

// WriteYAML writes the dump with the same shape as WriteJSON.
func WriteYAML(w io.Writer, ds *dataset.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(TableOf(ds)); err != nil {
		return eris.Wrap(err, "export: encode yaml")
	}
	return eris.Wrap(enc.Close(), "export: close yaml encoder")
}

// WriteXLSX writes the dump as a single-sheet workbook. Numbers keep their
// numeric cell type; missing cells are left blank.
func WriteXLSX(w io.Writer, ds *dataset.Dataset) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range ds.Columns() {
		header.AddCell().SetString(col)
	}

	for _, row := range ds.Rows() {
		r := sheet.AddRow()
		for _, v := range row {
			cell := r.AddCell()
			switch val := v.(type) {
			case nil:
			case float64:
				cell.SetFloat(val)
			case int:
				cell.SetInt(val)
			case string:
				cell.SetString(val)
			default:
				cell.SetString(formatCell(val))
			}
		}
	}

	return eris.Wrap(file.Write(w), "export: write xlsx")
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}
