package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastebook_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// SignupsTotal counts signup attempts by outcome.
	SignupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastebook_signups_total",
		Help: "Total number of signup attempts by outcome",
	}, []string{"outcome"})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastebook_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// SessionLookups counts session store lookups by result (hit/miss/error).
	SessionLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tastebook_session_lookups_total",
		Help: "Total number of session store lookups by result",
	}, []string{"result"})
)

// InitMetrics creates the Prometheus middleware for HTTP request metrics.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
