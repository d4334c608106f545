package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, Config{ServiceName: "test", Environment: "ci"})

	m.ObserveHTTP("GET", "/v1/estimates", 200, 15*time.Millisecond)
	m.ObserveHTTP("GET", "/v1/estimates", 200, 5*time.Millisecond)
	m.ObserveHTTP("GET", "", 404, time.Millisecond)
	m.EstimateSaved("create")
	m.EstimateStatusChanged("converted")
	m.EstimatesExported(3)
	m.EstimatesExported(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/estimates", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.estimatesSaved.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.estimateStatus.WithLabelValues("converted")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.estimatesExported))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", 200, time.Millisecond)
	m.EstimateSaved("create")
	m.EstimateStatusChanged("pending")
	m.EstimatesExported(1)
}
