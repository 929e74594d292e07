// Package tui is an interactive terminal explorer for the pay gap dataset.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rotisserie/eris"

	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/model"
	"github.com/sells-group/paygap/internal/render"
	"github.com/sells-group/paygap/internal/view"
)

const listWidth = 32

type companyItem string

func (c companyItem) FilterValue() string { return string(c) }
func (c companyItem) Title() string       { return string(c) }
func (c companyItem) Description() string { return "" }

type keyMap struct {
	NextYear key.Binding
	PrevYear key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	NextYear: key.NewBinding(key.WithKeys("y", "tab"), key.WithHelp("y/tab", "next year")),
	PrevYear: key.NewBinding(key.WithKeys("Y", "shift+tab"), key.WithHelp("Y", "previous year")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	yearStyle = lipgloss.NewStyle().
			Padding(0, 1)

	activeYearStyle = yearStyle.
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(render.MaleColor)
)

// Model is the bubbletea model of the explorer.
type Model struct {
	ds      *dataset.Dataset
	list    list.Model
	yearIdx int
	width   int
	height  int
}

// New creates the explorer with sel preselected.
func New(ds *dataset.Dataset, sel model.Selection) Model {
	companies := view.Companies(ds)
	items := make([]list.Item, len(companies))
	for i, c := range companies {
		items[i] = companyItem(c)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, listWidth, 20)
	l.Title = "Select a Company"
	l.SetShowStatusBar(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.NextYear, keys.Quit}
	}
	if i := slices.Index(companies, sel.Company); i >= 0 {
		l.Select(i)
	}

	yearIdx := slices.Index(model.SupportedYears, sel.Year)
	if yearIdx < 0 {
		yearIdx = slices.Index(model.SupportedYears, model.DefaultYear)
	}

	return Model{ds: ds, list: l, yearIdx: yearIdx, width: 100, height: 24}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(listWidth, max(msg.Height-2, 5))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.list.FilterState() != list.Filtering {
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.NextYear):
				m.yearIdx = (m.yearIdx + 1) % len(model.SupportedYears)
				return m, nil
			case key.Matches(msg, keys.PrevYear):
				m.yearIdx = (m.yearIdx + len(model.SupportedYears) - 1) % len(model.SupportedYears)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Selection returns the current year and highlighted company.
func (m Model) Selection() model.Selection {
	sel := model.Selection{Year: model.SupportedYears[m.yearIdx]}
	if item, ok := m.list.SelectedItem().(companyItem); ok {
		sel.Company = string(item)
	}
	return sel
}

// View implements tea.Model.
func (m Model) View() string {
	detailWidth := max(m.width-listWidth-4, 20)
	right := lipgloss.JoinVertical(lipgloss.Left,
		render.TitleStyle.Render(view.Title),
		m.yearTabs(),
		"",
		m.detail(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		render.BoxStyle.Width(detailWidth).Render(right),
	)
}

func (m Model) yearTabs() string {
	tabs := make([]string, len(model.SupportedYears))
	for i, y := range model.SupportedYears {
		style := yearStyle
		if i == m.yearIdx {
			style = activeYearStyle
		}
		tabs[i] = style.Render(fmt.Sprint(y))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// detail renders the per-company sections for the current selection.
func (m Model) detail() string {
	sel := m.Selection()
	if sel.Company == "" {
		return render.SubtleStyle.Render("No companies loaded.")
	}
	v, ok := view.Select(m.ds, sel.Year, sel.Company)
	if !ok {
		return render.SubtleStyle.Render(view.NoReport)
	}

	var b strings.Builder
	b.WriteString(render.SectionStyle.Render(fmt.Sprintf("%d Gender Pay Gap Report for %s", v.Year, v.CompanyName)))
	b.WriteString("\n")
	b.WriteString(render.SubtleStyle.Render(v.CompanySite))
	b.WriteString("\n\n")
	b.WriteString(render.SectionStyle.Render(view.PayGapTitle))
	b.WriteString("\n")
	_ = render.PayGapTable(&b, v.PayGap)
	b.WriteString("\n")
	b.WriteString(render.SectionStyle.Render(view.QuartileTitle))
	b.WriteString("\n")
	b.WriteString(render.QuartileBars(v.Quartiles))
	if v.ReportURL != "" {
		b.WriteString("\n\n")
		b.WriteString(render.SubtleStyle.Render("Report: " + v.ReportURL))
	}
	return b.String()
}

// Run starts the explorer on the terminal and blocks until the user quits.
func Run(ds *dataset.Dataset, sel model.Selection, opts ...tea.ProgramOption) (model.Selection, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(ds, sel), opts...).Run()
	if err != nil {
		return sel, eris.Wrap(err, "tui: run")
	}
	if fm, ok := final.(Model); ok {
		return fm.Selection(), nil
	}
	return sel, nil
}
