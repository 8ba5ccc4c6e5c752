// Package metrics records assertion outcomes for a Recorder.
package metrics

// Status labels used by Counters.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// AssertionMetrics defines the interface for recording assertion
// outcomes.
type AssertionMetrics interface {
	// RecordAssertion records one assertion evaluated by the
	// named operation ("test" or "throws").
	RecordAssertion(operation string, passed bool)
}

// NoopMetrics is a no-op implementation of AssertionMetrics.
type NoopMetrics struct{}

func (NoopMetrics) RecordAssertion(_ string, _ bool) {}
