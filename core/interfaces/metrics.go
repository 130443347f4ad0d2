package interfaces

import "time"

// Metrics records fetch-cycle telemetry.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// ObserveBranch records the outcome of one query for a page.
	// outcome is "ok" or "error"; articles is the number decoded.
	ObserveBranch(branch, outcome string, articles int)

	// ObserveCycle records a completed fetch cycle with its page status.
	ObserveCycle(status string, duration time.Duration)

	// CycleSuperseded records a cycle whose result was discarded because
	// a newer page change started another one.
	CycleSuperseded()
}

// NopMetrics discards all observations
type NopMetrics struct{}

// ObserveBranch implements Metrics
func (NopMetrics) ObserveBranch(string, string, int) {}

// ObserveCycle implements Metrics
func (NopMetrics) ObserveCycle(string, time.Duration) {}

// CycleSuperseded implements Metrics
func (NopMetrics) CycleSuperseded() {}
