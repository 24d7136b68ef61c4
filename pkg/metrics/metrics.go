// Package metrics прометеевские метрики HTTP и доменных событий.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreatedTotal     prometheus.Counter
	BookingsCancelledTotal   prometheus.Counter
	BookingsRescheduledTotal prometheus.Counter
	BookingConflictsTotal    prometheus.Counter
	SideEffectFailuresTotal  *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreatedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}),

		BookingsCancelledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_cancelled_total",
			Help:        "Total number of cancelled bookings",
			ConstLabels: labels,
		}),

		BookingsRescheduledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_rescheduled_total",
			Help:        "Total number of rescheduled bookings",
			ConstLabels: labels,
		}),

		BookingConflictsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of booking attempts rejected due to slot conflicts",
			ConstLabels: labels,
		}),

		SideEffectFailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "side_effect_failures_total",
			Help:        "Total number of failed best-effort side effects (email, calendar)",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
}
