package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "eventhub_requests_total", Help: "Total HTTP requests by method and status"},
		[]string{"method", "status"},
	)
	LoginsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "eventhub_logins_total", Help: "Total successful logins"},
	)
	UploadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "eventhub_uploads_total", Help: "Total media uploads stored"},
	)
	ReactionsToggledTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "eventhub_reactions_toggled_total", Help: "Total reaction toggles applied"},
	)
)

func Register() {
	prometheus.MustRegister(RequestsTotal, LoginsTotal, UploadsTotal, ReactionsToggledTotal)
}
