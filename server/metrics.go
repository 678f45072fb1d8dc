package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests   prometheus.Counter
	byLanguage *prometheus.CounterVec
	duration   prometheus.Gauge
	errors     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lint_requests_total",
			Help: "Total number of linting requests.",
		}),
		byLanguage: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lint_requests_by_language",
			Help: "Total number of linting requests by language.",
		}, []string{"language"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lint_duration_seconds",
			Help: "Duration of the last linting request in seconds.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lint_errors_total",
			Help: "Total number of linting problems found, plus failed requests.",
		}),
	}
	reg.MustRegister(m.requests, m.byLanguage, m.duration, m.errors)
	return m
}
