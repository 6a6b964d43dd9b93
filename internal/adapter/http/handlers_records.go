package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"weighttrack/internal/domain"
)

func (s *Server) handleRecordsList(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 0)
	items, err := s.records.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleRecordsCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date              flexDate `json:"date"`
		Weight            float64  `json:"weight"`
		MuscleWeight      *float64 `json:"muscleWeight"`
		BodyFatPercentage *float64 `json:"bodyFatPercentage"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := s.records.Record(r.Context(), domain.RecordInput{
		Date:              body.Date.Time,
		Weight:            body.Weight,
		MuscleWeight:      body.MuscleWeight,
		BodyFatPercentage: body.BodyFatPercentage,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	latest, err := s.records.Latest(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	s.observeRecordOp("upsert", latest)
	writeJSON(w, http.StatusOK, map[string]any{"record": rec, "latest": latest})
}

func (s *Server) handleRecordsLatest(w http.ResponseWriter, r *http.Request) {
	latest, err := s.records.Latest(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": latest})
}

func (s *Server) handleRecordsDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	latest, err := s.records.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	s.observeRecordOp("delete", latest)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": id, "latest": latest})
}

func (s *Server) observeRecordOp(op string, latest *domain.WeightRecord) {
	if s.metrics == nil {
		return
	}
	s.metrics.CounterRecordOps.WithLabelValues(op).Inc()
	if latest != nil {
		s.metrics.GaugeLastWeight.Set(latest.Weight)
	} else {
		s.metrics.GaugeLastWeight.Set(0)
	}
}
