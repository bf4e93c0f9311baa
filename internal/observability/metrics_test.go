package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordTicket("priority")
	m.RecordTicket("priority")
	m.RecordEmail(EmailSkipped)
	m.RecordRequest("/api/tickets", "POST", 200, 15*time.Millisecond)
	m.RecordError("/api/tickets", "POST", "VALIDATION_FAILED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.tickets.WithLabelValues("priority")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emails.WithLabelValues(EmailSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/tickets", "POST", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/api/tickets", "POST", "VALIDATION_FAILED")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordTicket("standard")
		m.RecordEmail(EmailSent)
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
	})
	assert.Nil(t, m.Registry())
}
