package adapthttp

import (
	"net/http"

	"weighttrack/internal/domain"
)

func (s *Server) handleChartsSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	series, err := s.charts.Series(r.Context(), domain.DateRange(q.Get("range")), q.Get("unit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	summary, err := s.progress.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
