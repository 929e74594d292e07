package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/paygap/internal/dataset"
	"github.com/sells-group/paygap/internal/model"
)

func record(company string, year int, values map[model.NumericField]float64) model.PayGapRecord {
	r := model.PayGapRecord{
		CompanyName: company,
		CompanySite: "https://example.ie/" + company,
		ReportURL:   "https://example.ie/" + company + "/report.pdf",
		ReportYear:  year,
	}
	r.ReportLink = dataset.ReportLabel(r.ReportURL)
	r.Company = dataset.CompanyLabel(r.CompanyName, r.CompanySite)
	for f, v := range values {
		r.Set(f, model.Present(v))
	}
	return r
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ds := dataset.New([]model.PayGapRecord{
		record("X", 2022, map[model.NumericField]float64{
			model.MeanHourlyGap:   12.5,
			model.MedianHourlyGap: 10,
			model.Q1Male:          40,
			model.Q1Female:        60,
		}),
		record("Acme", 2022, nil),
		record("Beta", 2023, map[model.NumericField]float64{model.MeanHourlyGap: 3}),
	}, nil)
	s, err := New(ds, Config{})
	require.NoError(t, err)
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["records"])
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestYearsAndColumns(t *testing.T) {
	s := newTestServer(t)

	body := decode(t, get(t, s, "/api/years"))
	assert.Equal(t, []any{float64(2023), float64(2022)}, body["years"])
	assert.Equal(t, float64(2023), body["default"])

	body = decode(t, get(t, s, "/api/columns"))
	assert.Len(t, body["columns"], len(dataset.StandardColumns()))
	assert.Len(t, body["numeric"], model.NumericFieldCount)
}

func TestCompanies(t *testing.T) {
	s := newTestServer(t)

	body := decode(t, get(t, s, "/api/companies"))
	assert.Equal(t, []any{"Acme", "Beta", "X"}, body["companies"])

	body = decode(t, get(t, s, "/api/companies?year=2023"))
	assert.Equal(t, []any{"Beta"}, body["companies"])

	body = decode(t, get(t, s, "/api/companies?year=1999"))
	assert.Equal(t, []any{}, body["companies"])

	assert.Equal(t, http.StatusBadRequest, get(t, s, "/api/companies?year=abc").Code)
}

func TestView(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/view?year=2022&company=X")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode(t, rec)["view"].(map[string]any)
	assert.Equal(t, float64(2022), v["year"])
	payGap := v["pay_gap"].([]any)
	require.Len(t, payGap, 3)
	assert.Equal(t, map[string]any{"category": "Hourly Pay Gap", "mean": 12.5, "median": float64(10)}, payGap[0])
	assert.Equal(t, map[string]any{"category": "Part Time", "mean": "", "median": ""}, payGap[1])
}

func TestView_NoMatchIsNull(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/view?year=2023&company=Acme")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"view": null}`, rec.Body.String())
}

func TestView_DefaultYear(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/view?company=Beta")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decode(t, rec)["view"].(map[string]any)
	assert.Equal(t, float64(2023), v["year"])
}

func TestView_BadInput(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		target string
		want   int
	}{
		{"/api/view?year=2022", http.StatusBadRequest},
		{"/api/view?year=abc&company=X", http.StatusBadRequest},
		{"/api/view?year=2020&company=X", http.StatusBadRequest},
		{"/api/view?year=2022&company=Nobody", http.StatusNotFound},
		{"/api/chart?year=2020&company=X", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, s, tt.target)
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}

func TestChart(t *testing.T) {
	s := newTestServer(t)

	body := decode(t, get(t, s, "/api/chart?year=2022&company=X"))
	chart := body["chart"].(map[string]any)
	data := chart["data"].([]any)
	require.Len(t, data, 2)
	male := data[0].(map[string]any)
	assert.Equal(t, "Male", male["name"])
	assert.Equal(t, []any{float64(40), "", "", ""}, male["x"])
	assert.Equal(t, "stack", chart["layout"].(map[string]any)["barmode"])

	rec := get(t, s, "/api/chart?year=2023&company=X")
	assert.JSONEq(t, `{"chart": null}`, rec.Body.String())
}

func TestDatasetJSON(t *testing.T) {
	body := decode(t, get(t, newTestServer(t), "/api/dataset"))
	rows := body["rows"].([]any)
	require.Len(t, rows, 3)
	cols := body["columns"].([]any)
	first := rows[0].([]any)
	require.Len(t, first, len(cols))
	for i, c := range cols {
		if c == "Mean Bonus Gap" {
			assert.Nil(t, first[i])
		}
	}
}

func TestDatasetFiles(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/dataset.csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "irish-pay-gap.csv")
	lines, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, 4)

	rec = get(t, s, "/api/dataset.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	f, err := xlsx.OpenBinary(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, f.Sheets[0].Rows, 4)

	assert.Equal(t, http.StatusNotFound, get(t, s, "/api/dataset.parquet").Code)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ireland Gender Pay Gap Analysis")
	assert.Contains(t, body, "About Gender Pay Gap")
	assert.Contains(t, body, `href="https://paygap.ie/"`)
	// Default selection is 2023 and the first company, which has no 2023 report.
	assert.Contains(t, body, "No report found")

	rec = get(t, s, "/?year=2022&company=X")
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, `<a href="https://example.ie/X">X</a>`)
	assert.Contains(t, body, "Plotly.newPlot")
	assert.Contains(t, body, "#19A0AA")
	assert.Contains(t, body, "<td>Hourly Pay Gap</td><td>12.5</td><td>10</td>")

	assert.Equal(t, http.StatusNotFound, get(t, s, "/?year=2022&company=Nobody").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, s, "/?year=1990&company=X").Code)
}

func TestCORS(t *testing.T) {
	s, err := New(dataset.New(nil, nil), Config{CORSOrigins: []string{"https://allowed.example"}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://allowed.example")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "https://allowed.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_GracefulShutdown(t *testing.T) {
	s, err := New(dataset.New(nil, nil), Config{Port: 0, ShutdownTimeout: time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestDisplayRows(t *testing.T) {
	got := displayRows([][]any{{"a", 2023, 12.5, nil}})
	assert.Equal(t, [][]string{{"a", "2023", "12.5", ""}}, got)
	assert.True(t, strings.HasPrefix(string(mustMarkdown(t, "**b**")), "<p><strong>b</strong>"))
}

func mustMarkdown(t *testing.T, md string) string {
	t.Helper()
	out, err := markdownHTML(md)
	require.NoError(t, err)
	return string(out)
}
