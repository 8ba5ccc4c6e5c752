// Package tester provides a very small assertion recorder. A
// Recorder evaluates named assertions, keeps the descriptions of
// passed and failed ones in submission order, and renders a
// preformatted plain-text summary.
package tester

import (
	"reflect"

	"digital.vasic.tester/pkg/env"
	"digital.vasic.tester/pkg/logging"
	"digital.vasic.tester/pkg/metrics"
)

const (
	operationTest   = "test"
	operationThrows = "throws"
)

// Recorder accumulates assertion outcomes. It is not safe for
// concurrent use; assertions are expected to be submitted from a
// single goroutine.
type Recorder struct {
	passed []string
	failed []string

	plainText bool
	logger    logging.Logger
	metrics   metrics.AssertionMetrics
}

// New creates an empty Recorder. Without options the recorder
// logs nothing, records no metrics and detects plain-text mode
// from the host environment.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		plainText: env.DetectPlainText(),
		logger:    logging.NullLogger{},
		metrics:   metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Test records an assertion. The result may be a precomputed
// value or a niladic function whose first return value is used.
// The value is classified with Truthy. Test returns whether the
// assertion passed.
func (r *Recorder) Test(description string, result any) bool {
	if fn, ok := thunk(result); ok {
		result = fn()
	}
	return r.record(operationTest, description, Truthy(result))
}

// Throws records an assertion that callback returns an error
// matching kind. A nil kind matches any error. A callback that
// returns nil fails the assertion. Panics raised by the callback
// are not recovered.
func (r *Recorder) Throws(
	description string,
	callback func() error,
	kind Kind,
) bool {
	err := callback()
	passed := err != nil && (kind == nil || kind.Match(err))
	return r.record(operationThrows, description, passed)
}

// CountPassed returns the number of passed assertions.
func (r *Recorder) CountPassed() int {
	return len(r.passed)
}

// CountFailed returns the number of failed assertions.
func (r *Recorder) CountFailed() int {
	return len(r.failed)
}

// CountTotal returns the number of recorded assertions.
func (r *Recorder) CountTotal() int {
	return r.CountPassed() + r.CountFailed()
}

// Passed returns a copy of the passed descriptions in the order
// they were recorded.
func (r *Recorder) Passed() []string {
	return append([]string(nil), r.passed...)
}

// Failed returns a copy of the failed descriptions in the order
// they were recorded.
func (r *Recorder) Failed() []string {
	return append([]string(nil), r.failed...)
}

// PlainText reports whether Summary omits the <PRE> wrapper.
func (r *Recorder) PlainText() bool {
	return r.plainText
}

func (r *Recorder) record(
	operation, description string,
	passed bool,
) bool {
	if passed {
		r.passed = append(r.passed, description)
	} else {
		r.failed = append(r.failed, description)
	}

	r.metrics.RecordAssertion(operation, passed)
	r.logger.Debug("assertion recorded",
		logging.StringField("operation", operation),
		logging.StringField("description", description),
		logging.BoolField("passed", passed),
	)

	return passed
}

// thunk reports whether v can be invoked with no arguments and
// returns a function yielding its first result.
func thunk(v any) (func() any, bool) {
	if v == nil {
		return nil, false
	}
	fv := reflect.ValueOf(v)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, false
	}
	ft := fv.Type()
	if ft.NumIn() != 0 || ft.NumOut() == 0 {
		return nil, false
	}
	return func() any {
		return fv.Call(nil)[0].Interface()
	}, true
}
