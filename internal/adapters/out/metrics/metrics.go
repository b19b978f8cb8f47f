// Package metrics exposes the service's Prometheus collectors: transaction outcomes,
// consistency audit results and HTTP request statistics.
package metrics

import (
	"strconv"
	"time"

	"forwarding/internal/core/application/transaction"
	"forwarding/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "forwarding"

type Metrics struct {
	txConflicts prometheus.Counter
	txFinished  *prometheus.CounterVec
	txAttempts  prometheus.Histogram
	txDuration  *prometheus.HistogramVec

	auditViolations *prometheus.GaugeVec
	auditLastRun    prometheus.Gauge

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		txConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "conflicts_total",
			Help:      "Transient conflicts that caused a transaction to be retried.",
		}),
		txFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "finished_total",
			Help:      "Transactions by final outcome.",
		}, []string{"outcome"}),
		txAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "attempts",
			Help:      "Attempts needed per top-level transaction.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8},
		}),
		txDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "transaction",
			Name:      "duration_seconds",
			Help:      "Wall time of top-level transactions including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		auditViolations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "violations",
			Help:      "Back-reference violations found by the last consistency audit.",
		}, []string{"kind"}),
		auditLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last completed consistency audit.",
		}),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.txConflicts,
		m.txFinished,
		m.txAttempts,
		m.txDuration,
		m.auditViolations,
		m.auditLastRun,
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// ConflictRetried implements transaction.Observer.
func (m *Metrics) ConflictRetried() {
	m.txConflicts.Inc()
}

// Finished implements transaction.Observer. Joined runs are counted but carry no
// attempt or timing information of their own.
func (m *Metrics) Finished(outcome transaction.Outcome, attempts int, elapsed time.Duration) {
	m.txFinished.WithLabelValues(string(outcome)).Inc()
	if outcome == transaction.OutcomeJoined {
		return
	}
	m.txAttempts.Observe(float64(attempts))
	m.txDuration.WithLabelValues(string(outcome)).Observe(elapsed.Seconds())
}

var violationKinds = []services.ViolationKind{
	services.MissingCustomerRef,
	services.DanglingCustomerRef,
	services.MissingHostRef,
	services.DanglingHostRef,
}

// AuditCompleted publishes the per-kind violation counts of one audit run.
func (m *Metrics) AuditCompleted(violations []services.Violation, at time.Time) {
	counts := make(map[services.ViolationKind]int, len(violationKinds))
	for _, v := range violations {
		counts[v.Kind]++
	}
	for _, kind := range violationKinds {
		m.auditViolations.WithLabelValues(string(kind)).Set(float64(counts[kind]))
	}
	m.auditLastRun.Set(float64(at.Unix()))
}

// Middleware records request count, latency and in-flight requests per route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.httpInFlight.Inc()
			defer m.httpInFlight.Dec()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unknown"
			}

			labels := prometheus.Labels{
				"method": c.Request().Method,
				"route":  route,
				"status": strconv.Itoa(c.Response().Status),
			}
			m.httpRequests.With(labels).Inc()
			m.httpDuration.With(labels).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
