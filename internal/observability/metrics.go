package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Email relay outcomes recorded by RecordEmail.
const (
	EmailSent    = "sent"
	EmailFailed  = "failed"
	EmailSkipped = "skipped"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	tickets  *prometheus.CounterVec
	emails   *prometheus.CounterVec
}

// NewMetrics registers all collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "support_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "support_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "support_http_errors_total",
			Help: "HTTP requests that ended in a domain error.",
		}, []string{"route", "method", "code"}),
		tickets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "support_tickets_created_total",
			Help: "Tickets accepted by the intake endpoint.",
		}, []string{"tier"}),
		emails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "support_ticket_emails_total",
			Help: "Ticket email relay attempts by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.requests, m.latency, m.errors, m.tickets, m.emails,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(route, method, code).Inc()
}

// RecordTicket counts a stored ticket.
func (m *Metrics) RecordTicket(tier string) {
	if m == nil {
		return
	}
	m.tickets.WithLabelValues(tier).Inc()
}

// RecordEmail counts a relay outcome.
func (m *Metrics) RecordEmail(result string) {
	if m == nil {
		return
	}
	m.emails.WithLabelValues(result).Inc()
}
