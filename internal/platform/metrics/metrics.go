// Package metrics expone contadores Prometheus de las transiciones.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kitties_transitions_total",
		Help: "Transiciones por operación y resultado",
	}, []string{"operation", "result"})

	transitionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kitties_transition_duration_seconds",
		Help:    "Duración de cada transición en segundos",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	}, []string{"operation"})
)

// ObserveTransition registra una transición terminada. result es "ok" o el tipo de rechazo.
func ObserveTransition(operation, result string, elapsed time.Duration) {
	transitionsTotal.WithLabelValues(operation, result).Inc()
	transitionDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
