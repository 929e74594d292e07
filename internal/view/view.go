// Package view derives the per-selection presentation of one company's
// disclosure: the pay gap table, the quartile series and the filled row.
package view

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/model"
)

// Pay gap table categories.
const (
	CategoryHourly    = "Hourly Pay Gap"
	CategoryPartTime  = "Part Time"
	CategoryTemporary = "Temporary"
)

// Quartiles are the quartile labels in chart order.
var Quartiles = []string{"Q1", "Q2", "Q3", "Q4"}

// Cell is a measure of the selected row. A missing value renders as "".
type Cell struct {
	model.Measure
}

// MarshalJSON encodes a missing cell as an empty string.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte(`""`), nil
	}
	return json.Marshal(c.Value)
}

// PayGapRow is one row of the pay gap table.
type PayGapRow struct {
	Category string `json:"category"`
	Mean     Cell   `json:"mean"`
	Median   Cell   `json:"median"`
}

// QuartileSeries holds the male and female composition per quartile.
type QuartileSeries struct {
	Labels []string `json:"labels"`
	Male   []Cell   `json:"male"`
	Female []Cell   `json:"female"`
}

// Field is one column of the filled row.
type Field struct {
	Column string `json:"column"`
	Value  any    `json:"value"`
}

// View is the derived presentation of one selected record.
type View struct {
	Year        int    `json:"year"`
	CompanyName string `json:"company_name"`
	CompanySite string `json:"company_site"`
	ReportURL   string `json:"report_url"`
	// Heading is a markdown heading linking the company site.
	Heading   string         `json:"heading"`
	PayGap    []PayGapRow    `json:"pay_gap"`
	Quartiles QuartileSeries `json:"quartiles"`
	// Row is the full record with missing values replaced by "".
	Row []Field `json:"row"`
}

var payGapFields = []struct {
	category     string
	mean, median model.NumericField
}{
	{CategoryHourly, model.MeanHourlyGap, model.MedianHourlyGap},
	{CategoryPartTime, model.MeanHourlyGapPartTime, model.MedianHourlyGapPartTime},
	{CategoryTemporary, model.MeanHourlyGapPartTemp, model.MedianHourlyGapPartTemp},
}

// Select returns the view for company in year. ok is false when no record
// matches; callers then render nothing for the per-company sections.
func Select(ds *dataset.Dataset, year int, company string) (View, bool) {
	rec, ok := ds.Find(year, company)
	if !ok {
		return View{}, false
	}
	return build(rec, ds.Columns()), true
}

func build(rec model.PayGapRecord, columns []string) View {
	v := View{
		Year:        rec.ReportYear,
		CompanyName: rec.CompanyName,
		CompanySite: rec.CompanySite,
		ReportURL:   rec.ReportURL,
		Heading: fmt.Sprintf("## %d Gender Pay Gap Report for [%s](%s)",
			rec.ReportYear, rec.CompanyName, rec.CompanySite),
	}

	for _, f := range payGapFields {
		v.PayGap = append(v.PayGap, PayGapRow{
			Category: f.category,
			Mean:     Cell{rec.Measure(f.mean)},
			Median:   Cell{rec.Measure(f.median)},
		})
	}

	v.Quartiles.Labels = append([]string(nil), Quartiles...)
	for q := 1; q <= len(Quartiles); q++ {
		male, female, _ := model.Quartile(q)
		v.Quartiles.Male = append(v.Quartiles.Male, Cell{rec.Measure(male)})
		v.Quartiles.Female = append(v.Quartiles.Female, Cell{rec.Measure(female)})
	}

	for _, col := range columns {
		val := rec.Value(col)
		if val == nil {
			val = ""
		}
		v.Row = append(v.Row, Field{Column: col, Value: val})
	}
	return v
}

// Companies returns the sorted unique company names for selector population.
func Companies(ds *dataset.Dataset) []string {
	return ds.Companies()
}

// Validate checks a selection taken from free-form input.
func Validate(ds *dataset.Dataset, sel model.Selection) error {
	if err := model.ValidateYear(sel.Year); err != nil {
		return err
	}
	if !ds.HasCompany(sel.Company) {
		return eris.Wrapf(model.ErrUnknownCompany, "company %q", sel.Company)
	}
	return nil
}

// Default returns the initial selection: the default year and the first
// company in sorted order.
func Default(ds *dataset.Dataset) model.Selection {
	sel := model.Selection{Year: model.DefaultYear}
	if companies := ds.Companies(); len(companies) > 0 {
		sel.Company = companies[0]
	}
	return sel
}
