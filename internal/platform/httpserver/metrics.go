package httpserver

import (
	"strconv"

	"apikit/internal/shared/response"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	envelopes *prometheus.CounterVec
}

func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		envelopes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apikit",
				Subsystem: "http",
				Name:      "envelopes_total",
				Help:      "Total number of response envelopes written, by status and code",
			},
			[]string{"status", "code"},
		),
	}
}

func (m *Metrics) Observe(resp response.Response) {
	if m == nil {
		return
	}
	m.envelopes.WithLabelValues(response.StatusFor(resp.Code), strconv.Itoa(resp.Code)).Inc()
}
