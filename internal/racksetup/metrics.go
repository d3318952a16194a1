package racksetup

import "github.com/prometheus/client_golang/prometheus"

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rackinit",
			Subsystem: "setup",
			Name:      "config_updates_total",
			Help:      "Total number of bulk config updates by result",
		},
		[]string{"result"},
	)

	certUploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rackinit",
			Subsystem: "setup",
			Name:      "certificate_uploads_total",
			Help:      "Total number of certificate/key half uploads by outcome",
		},
		[]string{"outcome"},
	)

	finalizeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rackinit",
			Subsystem: "setup",
			Name:      "finalize_attempts_total",
			Help:      "Total number of finalize attempts by result",
		},
		[]string{"result"},
	)
)

// RegisterMetrics registers the rack setup metrics with the given
// registry. Call once at process startup.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		updatesTotal,
		certUploadsTotal,
		finalizeTotal,
	)
}

const (
	resultSuccess = "success"
	resultError   = "error"
)
