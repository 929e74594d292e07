package view

// Series colors of the quartile chart.
const (
	MaleColor   = "#19A0AA"
	FemaleColor = "#F15F36"
)

// Chart is a plotly figure: a stacked horizontal bar of quartile composition.
type Chart struct {
	Data   []BarTrace  `json:"data"`
	Layout ChartLayout `json:"layout"`
}

// BarTrace is one series of the chart.
type BarTrace struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Orientation  string   `json:"orientation"`
	X            []Cell   `json:"x"`
	Y            []string `json:"y"`
	Text         []string `json:"text"`
	TextPosition string   `json:"textposition"`
	Marker       Marker   `json:"marker"`
}

// Marker sets a trace color.
type Marker struct {
	Color string `json:"color"`
}

// ChartLayout is the figure layout.
type ChartLayout struct {
	BarMode      string `json:"barmode"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
}

// Axis configures one chart axis.
type Axis struct {
	Title      AxisTitle `json:"title"`
	TickSuffix string    `json:"ticksuffix,omitempty"`
}

// AxisTitle is an axis caption.
type AxisTitle struct {
	Text string `json:"text"`
}

// NewChart builds the quartile chart for v.
func NewChart(v View) Chart {
	return Chart{
		Data: []BarTrace{
			newBarTrace("Male", MaleColor, v.Quartiles.Labels, v.Quartiles.Male),
			newBarTrace("Female", FemaleColor, v.Quartiles.Labels, v.Quartiles.Female),
		},
		Layout: ChartLayout{
			BarMode:      "stack",
			XAxis:        Axis{Title: AxisTitle{Text: "Percentage"}, TickSuffix: "%"},
			YAxis:        Axis{Title: AxisTitle{Text: "Quartile"}},
			PaperBGColor: "white",
			PlotBGColor:  "white",
		},
	}
}

func newBarTrace(name, color string, labels []string, values []Cell) BarTrace {
	text := make([]string, len(values))
	for i, c := range values {
		text[i] = c.String()
	}
	return BarTrace{
		Type:         "bar",
		Name:         name,
		Orientation:  "h",
		X:            values,
		Y:            labels,
		Text:         text,
		TextPosition: "inside",
		Marker:       Marker{Color: color},
	}
}
