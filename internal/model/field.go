package model

// NumericField identifies one of the numeric percentage/gap columns of a
// disclosure record.
type NumericField int

const (
	MeanHourlyGap NumericField = iota
	MedianHourlyGap
	MeanBonusGap
	MedianBonusGap
	MeanHourlyGapPartTime
	MedianHourlyGapPartTime
	MeanHourlyGapPartTemp
	MedianHourlyGapPartTemp
	PercentageBonusPaidFemale
	PercentageBonusPaidMale
	PercentageBIKPaidFemale
	PercentageBIKPaidMale
	Q1Female
	Q1Male
	Q2Female
	Q2Male
	Q3Female
	Q3Male
	Q4Female
	Q4Male
	PercentageEmployeesFemale
	PercentageEmployeesMale

	numericFieldCount
)

// NumericFieldCount is the number of numeric columns in a record.
const NumericFieldCount = int(numericFieldCount)

var numericFieldNames = [numericFieldCount]string{
	MeanHourlyGap:             "Mean Hourly Gap",
	MedianHourlyGap:           "Median Hourly Gap",
	MeanBonusGap:              "Mean Bonus Gap",
	MedianBonusGap:            "Median Bonus Gap",
	MeanHourlyGapPartTime:     "Mean Hourly Gap Part Time",
	MedianHourlyGapPartTime:   "Median Hourly Gap Part Time",
	MeanHourlyGapPartTemp:     "Mean Hourly Gap Part Temp",
	MedianHourlyGapPartTemp:   "Median Hourly Gap Part Temp",
	PercentageBonusPaidFemale: "Percentage Bonus Paid Female",
	PercentageBonusPaidMale:   "Percentage Bonus Paid Male",
	PercentageBIKPaidFemale:   "Percentage BIK Paid Female",
	PercentageBIKPaidMale:     "Percentage BIK Paid Male",
	Q1Female:                  "Q1 Female",
	Q1Male:                    "Q1 Male",
	Q2Female:                  "Q2 Female",
	Q2Male:                    "Q2 Male",
	Q3Female:                  "Q3 Female",
	Q3Male:                    "Q3 Male",
	Q4Female:                  "Q4 Female",
	Q4Male:                    "Q4 Male",
	PercentageEmployeesFemale: "Percentage Employees Female",
	PercentageEmployeesMale:   "Percentage Employees Male",
}

var numericFieldByName = func() map[string]NumericField {
	m := make(map[string]NumericField, numericFieldCount)
	for i, name := range numericFieldNames {
		m[name] = NumericField(i)
	}
	return m
}()

// String returns the column name of the field.
func (f NumericField) String() string {
	if f < 0 || f >= numericFieldCount {
		return "unknown"
	}
	return numericFieldNames[f]
}

// ParseNumericField maps a column name to its field.
func ParseNumericField(name string) (NumericField, bool) {
	f, ok := numericFieldByName[name]
	return f, ok
}

// NumericFields returns all numeric fields in column order.
func NumericFields() []NumericField {
	out := make([]NumericField, numericFieldCount)
	for i := range out {
		out[i] = NumericField(i)
	}
	return out
}

// NumericColumns returns the fixed list of numeric column names.
func NumericColumns() []string {
	out := make([]string, numericFieldCount)
	copy(out, numericFieldNames[:])
	return out
}

// Quartile returns the male and female composition fields for quartile q (1..4).
func Quartile(q int) (male, female NumericField, ok bool) {
	switch q {
	case 1:
		return Q1Male, Q1Female, true
	case 2:
		return Q2Male, Q2Female, true
	case 3:
		return Q3Male, Q3Female, true
	case 4:
		return Q4Male, Q4Female, true
	}
	return 0, 0, false
}
