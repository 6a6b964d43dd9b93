package adapthttp

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weighttrack/internal/app"
	"weighttrack/internal/metrics"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records  *app.RecordsService
	settings *app.SettingsService
	progress *app.ProgressService
	charts   *app.ChartsService
	webDir   string

	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
}

// New creates a Server wired to the given application services.
func New(rs *app.RecordsService, ss *app.SettingsService, ps *app.ProgressService, cs *app.ChartsService, webDir string) *Server {
	return &Server{records: rs, settings: ss, progress: ps, charts: cs, webDir: webDir}
}

// WithMetrics records request and record metrics into m and serves the
// collectors of g on /metrics.
func (s *Server) WithMetrics(m *metrics.Manager, g prometheus.Gatherer) *Server {
	s.metrics = m
	s.gatherer = g
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/settings", s.handleSettingsGet).Methods(http.MethodGet)
	api.HandleFunc("/settings", s.handleSettingsSave).Methods(http.MethodPost)
	api.HandleFunc("/goals", s.handleGoalsGet).Methods(http.MethodGet)
	api.HandleFunc("/goals", s.handleGoalsUpdate).Methods(http.MethodPut)

	api.HandleFunc("/records", s.handleRecordsList).Methods(http.MethodGet)
	api.HandleFunc("/records", s.handleRecordsCreate).Methods(http.MethodPost)
	api.HandleFunc("/records/latest", s.handleRecordsLatest).Methods(http.MethodGet)
	api.HandleFunc("/records/{id}", s.handleRecordsDelete).Methods(http.MethodDelete)

	api.HandleFunc("/progress", s.handleProgress).Methods(http.MethodGet)
	api.HandleFunc("/charts/series", s.handleChartsSeries).Methods(http.MethodGet)

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	// Unknown /api paths must stay 404/405 instead of falling through to the SPA.
	r.MatcherFunc(func(req *http.Request, _ *mux.RouteMatch) bool {
		return !strings.HasPrefix(req.URL.Path, "/api/")
	}).Handler(spaFromDisk(s.webDir))

	r.Use(s.panicRecovery)
	r.Use(s.loggingMiddleware)
	r.Use(s.requestMetrics)

	return withNoCache(r)
}
