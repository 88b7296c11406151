package adapthttp

import (
	"net/http"

	"weightlog/internal/domain"
)

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	rng, err := domain.ParsePeriod(stringQuery(r, "range", string(domain.PeriodMonth)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	now, err := s.nowQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	card, err := s.share.Card(r.Context(), rng, now)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}
