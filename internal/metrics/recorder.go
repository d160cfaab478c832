package metrics

import "time"

// Outcome enumerates build outcome categories for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for site builds. Implementations may
// forward to Prometheus or elsewhere; NoopRecorder allows optional injection.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome Outcome)
	AddPagesRendered(n int)
	AddPagesSkipped(n int)
	IncBrokenLinks(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(Outcome)            {}
func (NoopRecorder) AddPagesRendered(int)               {}
func (NoopRecorder) AddPagesSkipped(int)                {}
func (NoopRecorder) IncBrokenLinks(int)                 {}
