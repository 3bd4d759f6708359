package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusSink counts page views per route on a private registry.
type PrometheusSink struct {
	registry  *prometheus.Registry
	pageViews *prometheus.CounterVec
}

// NewPrometheusSink creates a sink with its own registry, so repeated construction
// in tests never collides with the default registerer.
func NewPrometheusSink() *PrometheusSink {
	reg := prometheus.NewRegistry()
	return &PrometheusSink{
		registry: reg,
		pageViews: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "dataidea_page_views_total",
			Help: "Page views per route.",
		}, []string{"route"}),
	}
}

func (p *PrometheusSink) PageView(route string) {
	p.pageViews.WithLabelValues(route).Inc()
}

// Gatherer exposes the registry, e.g. for tests or an HTTP handler.
func (p *PrometheusSink) Gatherer() prometheus.Gatherer { return p.registry }

// WriteTextfile writes the collected metrics to path in the text exposition format.
func (p *PrometheusSink) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}
