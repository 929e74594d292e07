package model

import "fmt"

// Text column names of the disclosure dataset.
const (
	ColCompanyName = "Company Name"
	ColCompanySite = "Company Site"
	ColReportLink  = "Report Link"
	ColReportYear  = "Report Year"
	// ColCompany is the derived company label column.
	ColCompany = "Company"
)

// Measures holds one value per numeric field, indexed by NumericField.
type Measures [numericFieldCount]Measure

// PayGapRecord is one company's disclosure for one report year.
type PayGapRecord struct {
	CompanyName string `json:"company_name"`
	CompanySite string `json:"company_site"`
	// ReportURL is the report link as published; ReportLink is its display label.
	ReportURL  string `json:"report_url"`
	ReportLink string `json:"report_link"`
	// Company is the display label linking CompanyName to CompanySite.
	Company    string `json:"company"`
	ReportYear int    `json:"report_year"`

	Measures Measures `json:"-"`

	// Extra holds source columns the record has no typed field for.
	Extra map[string]string `json:"extra,omitempty"`
}

// Measure returns the value of a numeric field.
func (r PayGapRecord) Measure(f NumericField) Measure {
	if f < 0 || f >= numericFieldCount {
		return Missing
	}
	return r.Measures[f]
}

// Set stores the value of a numeric field.
func (r *PayGapRecord) Set(f NumericField, m Measure) {
	if f < 0 || f >= numericFieldCount {
		return
	}
	r.Measures[f] = m
}

// Value returns the dump value of a column: a string, an int, a float64, or
// nil when the cell is missing.
func (r PayGapRecord) Value(column string) any {
	switch column {
	case ColCompanyName:
		return textValue(r.CompanyName)
	case ColCompanySite:
		return textValue(r.CompanySite)
	case ColReportLink:
		return textValue(r.ReportLink)
	case ColCompany:
		return textValue(r.Company)
	case ColReportYear:
		if r.ReportYear == 0 {
			return nil
		}
		return r.ReportYear
	}
	if f, ok := ParseNumericField(column); ok {
		return r.Measures[f].Any()
	}
	if v, ok := r.Extra[column]; ok {
		return textValue(v)
	}
	return nil
}

// Values returns the dump values of the given columns in order.
func (r PayGapRecord) Values(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = r.Value(c)
	}
	return out
}

// Key identifies the record by company and year.
func (r PayGapRecord) Key() string {
	return fmt.Sprintf("%s/%d", r.CompanyName, r.ReportYear)
}

func textValue(s string) any {
	if IsMissingText(s) {
		return nil
	}
	return s
}
