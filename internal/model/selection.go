package model

import (
	"slices"

	"github.com/rotisserie/eris"
)

// SupportedYears lists the selectable report years, most recent first.
var SupportedYears = []int{2023, 2022}

// DefaultYear is the year selected when none is given.
const DefaultYear = 2023

var (
	// ErrUnsupportedYear is returned for a year outside SupportedYears.
	ErrUnsupportedYear = eris.New("model: unsupported report year")
	// ErrUnknownCompany is returned for a company absent from the dataset.
	ErrUnknownCompany = eris.New("model: unknown company")
)

// Selection is a user's choice of report year and company.
type Selection struct {
	Year    int    `json:"year"`
	Company string `json:"company"`
}

// IsSupportedYear reports whether year is selectable.
func IsSupportedYear(year int) bool {
	return slices.Contains(SupportedYears, year)
}

// ValidateYear returns ErrUnsupportedYear when year is not selectable.
func ValidateYear(year int) error {
	if !IsSupportedYear(year) {
		return eris.Wrapf(ErrUnsupportedYear, "year %d", year)
	}
	return nil
}
