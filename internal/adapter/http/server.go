package adapthttp

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weightlog/internal/app"
	"weightlog/internal/metrics"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	entries  *app.EntryService
	charts   *app.ChartsService
	share    *app.ShareService
	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// New creates a Server wired to the given application services.
func New(es *app.EntryService, cs *app.ChartsService, ss *app.ShareService, m *metrics.Manager, g prometheus.Gatherer) *Server {
	return &Server{
		entries:  es,
		charts:   cs,
		share:    ss,
		metrics:  m,
		gatherer: g,
		now:      time.Now,
	}
}

// WithClock replaces the clock used when a request does not pin "now".
func (s *Server) WithClock(now func() time.Time) *Server {
	s.now = now
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/entries", s.handleEntries)
	api.HandleFunc("/entries/", s.handleEntryByDate)

	api.HandleFunc("/charts/period", s.handleChartsPeriod)
	api.HandleFunc("/charts/averages", s.handleChartsAverages)

	api.HandleFunc("/calendar", s.handleCalendar)
	api.HandleFunc("/calendar/picker", s.handleCalendarPicker)

	api.HandleFunc("/share", s.handleShare)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return withNoCache(s.requestMetrics(s.loggingMiddleware(root)))
}
