package tester

import (
	"digital.vasic.tester/pkg/logging"
	"digital.vasic.tester/pkg/metrics"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithPlainText sets whether Summary omits the <PRE> wrapper.
// It overrides host environment detection.
func WithPlainText(plain bool) Option {
	return func(r *Recorder) {
		r.plainText = plain
	}
}

// WithLogger sets the logger that receives one debug entry per
// recorded assertion. A nil logger is ignored.
func WithLogger(logger logging.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink for recorded assertions. A
// nil sink is ignored.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(r *Recorder) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithConfig applies the plain-text setting of cfg when it is
// set. Logger construction from cfg is left to the caller.
func WithConfig(cfg *Config) Option {
	return func(r *Recorder) {
		if cfg != nil && cfg.PlainText != nil {
			r.plainText = *cfg.PlainText
		}
	}
}
