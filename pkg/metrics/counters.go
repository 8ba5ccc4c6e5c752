package metrics

// Counters implements AssertionMetrics with in-memory counters
// keyed by operation and status. It is not safe for concurrent
// use, matching the Recorder it observes.
type Counters struct {
	assertions map[string]int
	total      int
}

// NewCounters creates an empty Counters instance.
func NewCounters() *Counters {
	return &Counters{
		assertions: make(map[string]int),
	}
}

func (c *Counters) RecordAssertion(operation string, passed bool) {
	status := StatusFailed
	if passed {
		status = StatusPassed
	}
	c.assertions[operation+":"+status]++
	c.total++
}

// Count returns the count for an operation+status combination.
func (c *Counters) Count(operation, status string) int {
	return c.assertions[operation+":"+status]
}

// Total returns the number of recorded assertions.
func (c *Counters) Total() int {
	return c.total
}
