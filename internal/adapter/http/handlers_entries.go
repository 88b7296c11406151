package adapthttp

import (
	"net/http"
	"strings"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.entries.All(ctx)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPut, http.MethodPost:
		var body struct {
			Date   string  `json:"date"`
			Weight float64 `json:"weight"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.entries.Upsert(ctx, body.Date, body.Weight)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		s.metrics.CounterEntriesUpserted.Inc()
		writeJSON(w, http.StatusOK, map[string]any{"entry": entry})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleEntryByDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	day := strings.TrimPrefix(r.URL.Path, "/entries/")
	entry, err := s.entries.Lookup(r.Context(), day)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": day, "entry": entry})
}
