package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	pagesRendered prom.Counter
	pagesSkipped  prom.Counter
	brokenLinks   prom.Counter
}

// NewPrometheusRecorder constructs and registers the sitegen metrics on the
// given registry. Register a recorder at most once per registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitegen",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across all builds",
		}),
		pagesSkipped: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "pages_skipped_total",
			Help:      "Pages skipped as unchanged across all builds",
		}),
		brokenLinks: prom.NewCounter(prom.CounterOpts{
			Namespace: "sitegen",
			Name:      "broken_links_total",
			Help:      "Broken internal links found by link checks",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.pagesRendered, pr.pagesSkipped, pr.brokenLinks)
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome Outcome) {
	pr.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (pr *PrometheusRecorder) AddPagesRendered(n int) {
	pr.pagesRendered.Add(float64(n))
}

func (pr *PrometheusRecorder) AddPagesSkipped(n int) {
	pr.pagesSkipped.Add(float64(n))
}

func (pr *PrometheusRecorder) IncBrokenLinks(n int) {
	pr.brokenLinks.Add(float64(n))
}
