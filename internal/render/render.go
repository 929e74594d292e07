package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/rotisserie/eris"

	"github.com/sells-group/paygap/internal/model"
	"github.com/sells-group/paygap/internal/view"
)

// BarWidth is the width in columns of a full quartile bar.
const BarWidth = 40

// Options configures a Renderer.
type Options struct {
	// Plain disables glamour markdown rendering. Markdown is written as-is.
	Plain bool
	// WordWrap for markdown. Default: 80.
	WordWrap int
	// Style is a glamour standard style name. Empty selects automatically.
	Style string
}

// Renderer writes views and listings to a terminal.
type Renderer struct {
	md *glamour.TermRenderer
}

// New creates a Renderer.
func New(opts Options) (*Renderer, error) {
	if opts.Plain {
		return &Renderer{}, nil
	}
	if opts.WordWrap <= 0 {
		opts.WordWrap = 80
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" {
		style = glamour.WithStandardStyle(opts.Style)
	}
	md, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(opts.WordWrap))
	if err != nil {
		return nil, eris.Wrap(err, "render: create markdown renderer")
	}
	return &Renderer{md: md}, nil
}

// Markdown renders a markdown fragment.
func (r *Renderer) Markdown(text string) (string, error) {
	if r.md == nil {
		return text + "\n", nil
	}
	out, err := r.md.Render(text)
	if err != nil {
		return "", eris.Wrap(err, "render: markdown")
	}
	return out, nil
}

// Page writes the page title with the About and Data Source sections.
func (r *Renderer) Page(w io.Writer) error {
	fmt.Fprintln(w, TitleStyle.Render(view.Title))
	md := fmt.Sprintf("### %s\n\n%s\n\n### %s\n\n%s\n",
		view.AboutTitle, view.About, view.DataSourceTitle, view.DataSource)
	out, err := r.Markdown(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// View writes the per-company sections of v: heading, pay gap table,
// quartile bars and the full record.
func (r *Renderer) View(w io.Writer, v view.View) error {
	heading, err := r.Markdown(v.Heading + "\n\n" + view.ReportHint)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, heading); err != nil {
		return eris.Wrap(err, "render: write heading")
	}

	fmt.Fprintln(w, SectionStyle.Render(view.PayGapTitle))
	if err := PayGapTable(w, v.PayGap); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, SectionStyle.Render(view.QuartileTitle))
	fmt.Fprintln(w, QuartileBars(v.Quartiles))
	fmt.Fprintln(w)

	return RecordTable(w, v.Row)
}

// NoMatch writes the message shown when a selection has no record.
func NoMatch(w io.Writer, sel model.Selection) {
	fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("%s (%s, %d)", view.NoReport, sel.Company, sel.Year)))
}

// PayGapTable writes the three-row category/mean/median table.
func PayGapTable(w io.Writer, rows []view.PayGapRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Mean"),
		TableHeaderStyle.Render("Median"))
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Category, row.Mean.String(), row.Median.String())
	}
	return eris.Wrap(tw.Flush(), "render: pay gap table")
}

// RecordTable writes the filled row as column/value pairs.
func RecordTable(w io.Writer, fields []view.Field) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\n", SubtleStyle.Render(f.Column), formatValue(f.Value))
	}
	return eris.Wrap(tw.Flush(), "render: record table")
}

// QuartileBars draws one stacked bar per quartile, male then female.
func QuartileBars(q view.QuartileSeries) string {
	lines := make([]string, 0, len(q.Labels)+1)
	for i, label := range q.Labels {
		var male, female view.Cell
		if i < len(q.Male) {
			male = q.Male[i]
		}
		if i < len(q.Female) {
			female = q.Female[i]
		}
		m, f := barSegments(male, female)
		lines = append(lines, fmt.Sprintf("%s %s%s%s %s",
			label,
			MaleStyle.Render(strings.Repeat("█", m)),
			FemaleStyle.Render(strings.Repeat("█", f)),
			strings.Repeat(" ", BarWidth-m-f),
			percentPair(male, female),
		))
	}
	lines = append(lines, fmt.Sprintf("%s %s  %s",
		strings.Repeat(" ", 2),
		MaleStyle.Render("█ Male"),
		FemaleStyle.Render("█ Female")))
	return strings.Join(lines, "\n")
}

// barSegments converts percentages to bar widths. Missing values draw nothing
// and the total never exceeds BarWidth.
func barSegments(male, female view.Cell) (int, int) {
	width := func(c view.Cell) int {
		if !c.Valid || c.Value <= 0 {
			return 0
		}
		return int(math.Round(math.Min(c.Value, 100) / 100 * BarWidth))
	}
	m, f := width(male), width(female)
	if m+f > BarWidth {
		f = BarWidth - m
	}
	return m, f
}

func percentPair(male, female view.Cell) string {
	pct := func(c view.Cell) string {
		if !c.Valid {
			return "-"
		}
		return c.String() + "%"
	}
	return SubtleStyle.Render(fmt.Sprintf("%s / %s", pct(male), pct(female)))
}

// Companies writes one company name per line.
func Companies(w io.Writer, names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return eris.Wrap(err, "render: companies")
		}
	}
	return nil
}

// Error writes err in the error style.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("error: "+err.Error()))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return model.Present(val).String()
	default:
		return fmt.Sprint(val)
	}
}
