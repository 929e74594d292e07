package model

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Measure is a numeric cell that may be absent.
type Measure struct {
	Value float64
	Valid bool
}

// Present returns a valid measure holding v.
func Present(v float64) Measure {
	return Measure{Value: v, Valid: true}
}

// Missing is the absent measure.
var Missing = Measure{}

// naTokens mirrors the tokens the publishing pipeline writes for absent values.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// IsMissingText reports whether s is one of the recognised missing-value tokens.
func IsMissingText(s string) bool {
	_, ok := naTokens[strings.TrimSpace(s)]
	return ok
}

// ParseMeasure parses a cell of a numeric column. Missing-value tokens yield
// Missing with a nil error.
func ParseMeasure(s string) (Measure, error) {
	s = strings.TrimSpace(s)
	if IsMissingText(s) {
		return Missing, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing, eris.Wrapf(err, "model: parse measure %q", s)
	}
	return Present(v), nil
}

// String renders the measure for display; missing renders as "".
func (m Measure) String() string {
	if !m.Valid {
		return ""
	}
	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Any returns the value as float64, or nil when missing.
func (m Measure) Any() any {
	if !m.Valid {
		return nil
	}
	return m.Value
}

// MarshalJSON encodes a missing measure as null.
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts a number or null.
func (m *Measure) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		*m = Missing
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return eris.Wrap(err, "model: unmarshal measure")
	}
	*m = Present(v)
	return nil
}
