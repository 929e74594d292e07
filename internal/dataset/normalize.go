package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/model"
)

// columnRenames fixes source headers that do not follow the dataset's naming.
var columnRenames = map[string]string{
	"Q1 Men": model.Q1Male.String(),
}

// ReportLabel wraps a report URL in a link labelled "Report".
func ReportLabel(url string) string {
	return fmt.Sprintf("[Report](%s)", url)
}

// CompanyLabel wraps a company site URL in a link labelled with the company name.
func CompanyLabel(name, site string) string {
	return fmt.Sprintf("[%s](%s)", name, site)
}

// normalizeHeader trims header cells and applies columnRenames.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if renamed, ok := columnRenames[h]; ok {
			h = renamed
		}
		out[i] = h
	}
	return out
}

// dumpColumns returns the column order of the full dataset dump: the source
// header followed by the derived company label.
func dumpColumns(header []string) []string {
	cols := make([]string, 0, len(header)+1)
	hasCompany := false
	for _, h := range header {
		if h == "" {
			continue
		}
		if h == model.ColCompany {
			hasCompany = true
		}
		cols = append(cols, h)
	}
	if !hasCompany {
		cols = append(cols, model.ColCompany)
	}
	return cols
}

// recordFromRow builds a normalized record from one data row. The header must
// already be normalized. line is the 1-based source line used in log fields.
func recordFromRow(header []string, row []string, line int) model.PayGapRecord {
	var rec model.PayGapRecord

	for i, col := range header {
		var cell string
		if i < len(row) {
			cell = row[i]
		}

		switch col {
		case "":
			continue
		case model.ColCompanyName:
			rec.CompanyName = cell
		case model.ColCompanySite:
			rec.CompanySite = cell
		case model.ColReportLink:
			rec.ReportURL = cell
		case model.ColReportYear:
			rec.ReportYear = parseYear(cell, line)
		case model.ColCompany:
			// Derived below; a source column of the same name is overwritten.
		default:
			if f, ok := model.ParseNumericField(col); ok {
				m, err := model.ParseMeasure(cell)
				if err != nil {
					zap.L().Warn("dataset: unparseable numeric cell treated as missing",
						zap.Int("line", line),
						zap.String("column", col),
						zap.String("value", cell),
					)
				}
				rec.Set(f, m)
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[col] = cell
		}
	}

	rec.ReportLink = ReportLabel(rec.ReportURL)
	rec.Company = CompanyLabel(rec.CompanyName, rec.CompanySite)
	return rec
}

// parseYear accepts "2023" and float renderings such as "2023.0".
func parseYear(s string, line int) int {
	s = strings.TrimSpace(s)
	if model.IsMissingText(s) {
		return 0
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f)
	}
	zap.L().Warn("dataset: unparseable report year treated as missing",
		zap.Int("line", line),
		zap.String("value", s),
	)
	return 0
}
