package validation

import (
	"context"
	"sync/atomic"

	"github.com/attendly/timesheet-rules-go/internal/domain/conflict"
)

// Gate orders debounced re-validation runs. Begin issues a new generation and
// makes every earlier one stale; Current reports whether a generation is
// still the latest. Stale runs are not cancelled, their results are simply
// dropped - last write wins.
type Gate struct {
	gen atomic.Uint64
}

func (g *Gate) Begin() uint64 {
	return g.gen.Add(1)
}

func (g *Gate) Current(gen uint64) bool {
	return g.gen.Load() == gen
}

// LiveValidator runs advisory checks for rapidly changing form input. Each
// Submit supersedes the one before it; a check that finishes after being
// superseded is discarded instead of delivered, so callers never observe an
// older result overwriting a newer one.
type LiveValidator struct {
	gate    Gate
	deliver func(conflict.CheckResult)
}

// NewLiveValidator wires the callback that receives winning check results.
func NewLiveValidator(deliver func(conflict.CheckResult)) *LiveValidator {
	return &LiveValidator{deliver: deliver}
}

// Submit starts check on its own goroutine. In-flight checks from earlier
// Submit calls keep running to completion; only the result of the latest
// generation reaches the callback.
func (v *LiveValidator) Submit(ctx context.Context, check func(context.Context) conflict.CheckResult) {
	gen := v.gate.Begin()
	go func() {
		result := check(ctx)
		if v.gate.Current(gen) {
			v.deliver(result)
		}
	}()
}
