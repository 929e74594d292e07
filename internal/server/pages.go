package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/model"
	"github.com/sells-group/paygap/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	index *template.Template
}

func loadPages() (*pages, error) {
	t, err := template.New("index.html").Funcs(template.FuncMap{
		"markdown": markdownHTML,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, eris.Wrap(err, "server: parse templates")
	}
	return &pages{index: t}, nil
}

// markdownHTML converts trusted markdown copy to HTML. goldmark drops raw
// HTML by default.
func markdownHTML(md string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", eris.Wrap(err, "server: render markdown")
	}
	return template.HTML(buf.String()), nil //nolint:gosec
}

type indexData struct {
	Title           string
	AboutTitle      string
	About           string
	DataSourceTitle string
	DataSource      string
	PayGapTitle     string
	QuartileTitle   string
	ReportHint      string
	NoReport        string

	Years     []int
	Companies []string
	Selection model.Selection
	Error     string

	View      *view.View
	ChartJSON template.JS

	Columns []string
	Rows    [][]string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sel := view.Default(s.ds)
	sel.Year = s.defaultYear()

	data := indexData{
		Title:           view.Title,
		AboutTitle:      view.AboutTitle,
		About:           view.About,
		DataSourceTitle: view.DataSourceTitle,
		DataSource:      view.DataSource,
		PayGapTitle:     view.PayGapTitle,
		QuartileTitle:   view.QuartileTitle,
		ReportHint:      view.ReportHint,
		NoReport:        view.NoReport,
		Years:           model.SupportedYears,
		Companies:       view.Companies(s.ds),
		Columns:         s.ds.Columns(),
		Rows:            displayRows(s.ds.Rows()),
	}

	status := http.StatusOK
	q := r.URL.Query()
	if y := q.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			status, data.Error = http.StatusBadRequest, "year must be an integer"
		}
		sel.Year = year
	}
	if c := q.Get("company"); c != "" {
		sel.Company = c
	}
	data.Selection = sel

	if data.Error == "" && sel.Company != "" {
		err := view.Validate(s.ds, sel)
		switch {
		case errors.Is(err, model.ErrUnsupportedYear):
			status, data.Error = http.StatusBadRequest, err.Error()
		case errors.Is(err, model.ErrUnknownCompany):
			status, data.Error = http.StatusNotFound, err.Error()
		case err != nil:
			status, data.Error = http.StatusInternalServerError, err.Error()
		}
	}

	if data.Error == "" && sel.Company != "" {
		if v, ok := view.Select(s.ds, sel.Year, sel.Company); ok {
			chart, err := json.Marshal(view.NewChart(v))
			if err != nil {
				writeError(w, http.StatusInternalServerError, "encode chart")
				return
			}
			data.View = &v
			data.ChartJSON = template.JS(chart) //nolint:gosec
		}
	}

	var buf bytes.Buffer
	if err := s.pages.index.Execute(&buf, data); err != nil {
		zap.L().Error("server: render index", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// displayRows formats the full dump for the HTML table. Missing cells render
// empty.
func displayRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(row))
		for j, v := range row {
			switch val := v.(type) {
			case nil:
			case string:
				line[j] = val
			case int:
				line[j] = strconv.Itoa(val)
			case float64:
				line[j] = model.Present(val).String()
			}
		}
		out[i] = line
	}
	return out
}
