package latency

import (
	"context"
	"time"
)

// Operation names a server action that carries simulated latency.
type Operation string

const (
	OpSearch       Operation = "search"
	OpAddToCart    Operation = "add_to_cart"
	OpPlaceOrder   Operation = "place_order"
	OpUpdateRating Operation = "update_rating"
)

// Defaults mirror the round-trip times the storefront demo was tuned with.
var Defaults = map[Operation]time.Duration{
	OpSearch:       300 * time.Millisecond,
	OpAddToCart:    200 * time.Millisecond,
	OpPlaceOrder:   400 * time.Millisecond,
	OpUpdateRating: 300 * time.Millisecond,
}

// Simulator delays server actions to model network and database latency.
//
// The delay has no semantic effect. A disabled simulator, or an operation
// without a configured duration, returns immediately.
type Simulator struct {
	enabled   bool
	durations map[Operation]time.Duration
}

// NewSimulator copies durations; nil means Defaults.
func NewSimulator(enabled bool, durations map[Operation]time.Duration) *Simulator {
	if durations == nil {
		durations = Defaults
	}
	cp := make(map[Operation]time.Duration, len(durations))
	for op, d := range durations {
		cp[op] = d
	}
	return &Simulator{enabled: enabled, durations: cp}
}

// Disabled returns a simulator that never waits.
func Disabled() *Simulator {
	return &Simulator{}
}

// Duration returns the delay applied to op.
func (s *Simulator) Duration(op Operation) time.Duration {
	if s == nil || !s.enabled {
		return 0
	}
	return s.durations[op]
}

// Wait blocks for the configured delay of op or until ctx is done.
func (s *Simulator) Wait(ctx context.Context, op Operation) error {
	d := s.Duration(op)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
