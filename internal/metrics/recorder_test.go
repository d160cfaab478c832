package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.AddPagesRendered(8)
	r.AddPagesSkipped(0)
	r.IncBrokenLinks(1)
}

func TestPrometheusRecorderRegistersOnGivenRegistry(t *testing.T) {
	// Each registry takes its own recorder; a second registry must not
	// collide with the first.
	for i := 0; i < 2; i++ {
		reg := prom.NewRegistry()
		pr := NewPrometheusRecorder(reg)
		pr.AddPagesRendered(1)

		families, err := reg.Gather()
		if err != nil {
			t.Fatalf("gather: %v", err)
		}
		found := false
		for _, f := range families {
			if f.GetName() == "sitegen_pages_rendered_total" {
				found = true
			}
		}
		if !found {
			t.Error("expected sitegen_pages_rendered_total to be registered")
		}
	}
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.AddPagesRendered(8)
	pr.AddPagesRendered(3)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeFailed)
	pr.ObserveBuildDuration(250 * time.Millisecond)

	if got := testutil.ToFloat64(pr.pagesRendered); got != 11 {
		t.Errorf("expected 11 pages rendered, got %v", got)
	}
	if got := testutil.ToFloat64(pr.buildOutcome.WithLabelValues("success")); got != 2 {
		t.Errorf("expected 2 success outcomes, got %v", got)
	}
	if got := testutil.ToFloat64(pr.buildOutcome.WithLabelValues("failed")); got != 1 {
		t.Errorf("expected 1 failed outcome, got %v", got)
	}
}
