package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scopesOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "session_scopes_opened_total",
		Help: "Total number of request session scopes opened.",
	})
	scopesActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "session_scopes_active",
		Help: "Number of session scopes currently open.",
	})
	sessionsAcquired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "session_connections_acquired_total",
		Help: "Total number of database sessions lazily acquired by scopes.",
	})
)
