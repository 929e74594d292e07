// Package dataset loads the gender pay gap disclosures and holds them as an
// immutable in-memory table.
package dataset

import (
	"maps"
	"slices"
	"time"

	"github.com/sells-group/paygap/internal/model"
)

// Dataset is the loaded, normalized disclosure table. It is never mutated
// after construction and is safe for concurrent readers.
type Dataset struct {
	records   []model.PayGapRecord
	columns   []string
	companies []string
	source    string
	loadedAt  time.Time
}

// New builds a Dataset from normalized records. columns is the dump column
// order; nil derives it from the standard schema.
func New(records []model.PayGapRecord, columns []string) *Dataset {
	if columns == nil {
		columns = StandardColumns()
	}
	ds := &Dataset{
		records:  cloneRecords(records),
		columns:  slices.Clone(columns),
		loadedAt: time.Now().UTC(),
	}
	ds.companies = uniqueCompanies(ds.records)
	return ds
}

// StandardColumns returns the dump columns of the published schema.
func StandardColumns() []string {
	cols := []string{model.ColReportLink, model.ColCompanyName, model.ColCompanySite, model.ColReportYear}
	cols = append(cols, model.NumericColumns()...)
	return append(cols, model.ColCompany)
}

// cloneRecords copies records including their Extra maps.
func cloneRecords(records []model.PayGapRecord) []model.PayGapRecord {
	out := slices.Clone(records)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

func uniqueCompanies(records []model.PayGapRecord) []string {
	seen := make(map[string]struct{}, len(records))
	var out []string
	for _, r := range records {
		if model.IsMissingText(r.CompanyName) {
			continue
		}
		if _, ok := seen[r.CompanyName]; ok {
			continue
		}
		seen[r.CompanyName] = struct{}{}
		out = append(out, r.CompanyName)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the i-th record.
func (d *Dataset) Record(i int) model.PayGapRecord {
	r := d.records[i]
	r.Extra = maps.Clone(r.Extra)
	return r
}

// Records returns a copy of all records in source order.
func (d *Dataset) Records() []model.PayGapRecord { return cloneRecords(d.records) }

// Columns returns the dump column order.
func (d *Dataset) Columns() []string { return slices.Clone(d.columns) }

// NumericColumns returns the fixed list of numeric column names.
func (d *Dataset) NumericColumns() []string { return model.NumericColumns() }

// Companies returns the sorted unique company names.
func (d *Dataset) Companies() []string { return slices.Clone(d.companies) }

// HasCompany reports whether any record carries the company name.
func (d *Dataset) HasCompany(name string) bool {
	_, found := slices.BinarySearch(d.companies, name)
	return found
}

// Years returns the distinct report years present, most recent first.
func (d *Dataset) Years() []int {
	seen := make(map[int]struct{})
	var out []int
	for _, r := range d.records {
		if r.ReportYear == 0 {
			continue
		}
		if _, ok := seen[r.ReportYear]; ok {
			continue
		}
		seen[r.ReportYear] = struct{}{}
		out = append(out, r.ReportYear)
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// CompaniesForYear returns the sorted unique company names reporting in year.
func (d *Dataset) CompaniesForYear(year int) []string {
	var matching []model.PayGapRecord
	for _, r := range d.records {
		if r.ReportYear == year {
			matching = append(matching, r)
		}
	}
	return uniqueCompanies(matching)
}

// Find returns the first record for company in year.
func (d *Dataset) Find(year int, company string) (model.PayGapRecord, bool) {
	for _, r := range d.records {
		if r.CompanyName == company && r.ReportYear == year {
			r.Extra = maps.Clone(r.Extra)
			return r, true
		}
	}
	return model.PayGapRecord{}, false
}

// Rows returns the full dump: one value slice per record in Columns order.
// Missing cells are nil.
func (d *Dataset) Rows() [][]any {
	rows := make([][]any, len(d.records))
	for i := range d.records {
		rows[i] = d.records[i].Values(d.columns)
	}
	return rows
}

// Source returns where the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }
