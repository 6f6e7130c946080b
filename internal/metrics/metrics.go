package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskdeck/taskdeck/internal/health"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taskdeck",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskdeck",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Auth metrics

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskdeck",
		Name:      "logins_total",
		Help:      "Login attempts, by outcome.",
	}, []string{"outcome"})

	RegistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taskdeck",
		Name:      "registrations_total",
		Help:      "Registration attempts, by outcome.",
	}, []string{"outcome"})

	// Reminder metrics

	RemindersSentTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "taskdeck",
		Name:      "reminders_sent_total",
		Help:      "Due-date reminder emails sent.",
	})

	ReminderCycleDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "taskdeck",
		Name:      "reminder_cycle_duration_seconds",
		Help:      "Time taken for one reminder scan cycle.",
		Buckets:   prometheus.DefBuckets,
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		LoginsTotal,
		RegistrationsTotal,
		RemindersSentTotal,
		ReminderCycleDuration,
	)
}

// NewServer serves /metrics plus the liveness/readiness probes on a
// port separate from the API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if !result.Up() {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
