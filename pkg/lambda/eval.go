package lambda

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrStepLimit is returned by Evaluator.Run when MaxSteps reductions did not
// reach a normal form.
var ErrStepLimit = errors.New("lambda: step limit reached")

// Evaluate reduces t to beta-normal form in normal order.
//
// Before every step the whole term is renamed so that all binders are fresh,
// which makes plain substitution safe. Evaluate does not return when t has
// no normal form; use an Evaluator to bound the work.
func Evaluate(t Term) Term {
	current := t
	for {
		current = Uniquify(current)
		next, ok := Step(current)
		if !ok {
			return current
		}
		current = next
	}
}

// Evaluator runs the same loop as Evaluate with optional bounds, a step hook
// and a trace of the last steps taken.
type Evaluator struct {
	// MaxSteps caps the number of reductions; zero means no cap.
	MaxSteps int
	// OnStep is called once per iteration with the renamed term, before it
	// is reduced.
	OnStep func(TraceEvent)
	// Logger receives a debug record per step when set.
	Logger *slog.Logger

	stats    Stats
	traceOn  bool
	traceBuf []TraceEvent
	traceIdx uint64
}

// NewEvaluator returns an evaluator that stops after maxSteps reductions
// (zero for no limit).
func NewEvaluator(maxSteps int) *Evaluator {
	return &Evaluator{MaxSteps: maxSteps}
}

// Run reduces t to normal form. It stops early with ErrStepLimit or the
// context's error, returning the last term reached alongside the error.
func (e *Evaluator) Run(ctx context.Context, t Term) (Term, error) {
	current := t
	var steps uint64
	for {
		if err := ctx.Err(); err != nil {
			return current, fmt.Errorf("after %d steps: %w", steps, err)
		}

		renamed, n := uniquify(current)
		current = renamed
		e.stats.Renamed += uint64(n)
		e.stats.Iterations++

		next, redex, ok := step(current, 0)
		ev := TraceEvent{Step: steps, Term: current, Redex: redex, Normal: !ok}
		e.recordTrace(ev)
		if e.OnStep != nil {
			e.OnStep(ev)
		}
		if e.Logger != nil {
			e.Logger.Debug("eval", "step", steps, "term", current, "binder", redex.Binder.Original, "depth", redex.Depth, "normal", !ok)
		}
		if !ok {
			return current, nil
		}

		if e.MaxSteps > 0 && steps >= uint64(e.MaxSteps) {
			return current, fmt.Errorf("%w: %d steps", ErrStepLimit, steps)
		}
		current = next
		steps++
		e.stats.Reductions++
	}
}
