package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/paygap/internal/export"
	"github.com/sells-group/paygap/internal/model"
	"github.com/sells-group/paygap/internal/view"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.ds.Len(),
	})
}

func (s *Server) handleYears(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"years":   model.SupportedYears,
		"default": s.defaultYear(),
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies := view.Companies(s.ds)
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		companies = s.ds.CompaniesForYear(year)
	}
	if companies == nil {
		companies = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (s *Server) handleColumns(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"columns": s.ds.Columns(),
		"numeric": s.ds.NumericColumns(),
	})
}

// selection parses and validates year and company query parameters. On
// failure it writes the error response and returns false.
func (s *Server) selection(w http.ResponseWriter, r *http.Request) (model.Selection, bool) {
	q := r.URL.Query()
	sel := model.Selection{Year: s.defaultYear(), Company: q.Get("company")}
	if y := q.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be an integer")
			return sel, false
		}
		sel.Year = year
	}
	if sel.Company == "" {
		writeError(w, http.StatusBadRequest, "company is required")
		return sel, false
	}

	err := view.Validate(s.ds, sel)
	switch {
	case err == nil:
		return sel, true
	case errors.Is(err, model.ErrUnsupportedYear):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUnknownCompany):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
	return sel, false
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w, r)
	if !ok {
		return
	}
	v, found := view.Select(s.ds, sel.Year, sel.Company)
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{"view": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"view": v})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.selection(w, r)
	if !ok {
		return
	}
	v, found := view.Select(s.ds, sel.Year, sel.Company)
	if !found {
		writeJSON(w, http.StatusOK, map[string]any{"chart": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"chart": view.NewChart(v)})
}

func (s *Server) handleDataset(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, export.TableOf(s.ds))
}

func (s *Server) handleDatasetFile(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="irish-pay-gap`+format.Ext()+`"`)
	if err := export.Write(w, s.ds, format); err != nil {
		zap.L().Error("server: export dataset", zap.String("format", string(format)), zap.Error(err))
	}
}

func (s *Server) defaultYear() int {
	if s.cfg.DefaultYear != 0 {
		return s.cfg.DefaultYear
	}
	return model.DefaultYear
}
