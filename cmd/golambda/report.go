package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/vic/golambda/pkg/lambda"
	"github.com/vic/golambda/pkg/tracestore"
)

func printStats(w io.Writer, stats lambda.Stats, elapsed time.Duration) {
	seconds := elapsed.Seconds()

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Time: %v\n", elapsed)
	rows := []lo.Tuple2[string, uint64]{
		lo.T2("Beta Reductions:", stats.Reductions),
		lo.T2("Renaming Passes:", stats.Iterations),
		lo.T2("Binders Renamed:", stats.Renamed),
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %-17s %8d", row.A, row.B)
		if seconds > 0 {
			fmt.Fprintf(w, " (%.2f ops/sec)", float64(row.B)/seconds)
		}
		fmt.Fprintf(w, "\n")
	}
}

// recorder mirrors a run into the trace store. The zero value records
// nothing.
type recorder struct {
	store  *tracestore.Store
	runID  int64
	logger *slog.Logger
	err    error
}

func openRecorder(ctx context.Context, path, input string, logger *slog.Logger) (*recorder, error) {
	if path == "" {
		return &recorder{}, nil
	}
	store, err := tracestore.Open(path)
	if err != nil {
		return nil, err
	}
	id, err := store.BeginRun(ctx, input)
	if err != nil {
		store.Close()
		return nil, err
	}
	logger.Debug("recording run", "db", path, "run", id)
	return &recorder{store: store, runID: id, logger: logger}, nil
}

// step writes with its own context: a run stopped by -timeout still gets
// its last steps recorded.
func (r *recorder) step(e lambda.TraceEvent, p lambda.Printer) {
	if r.store == nil || r.err != nil {
		return
	}
	st := tracestore.Step{
		Step:   e.Step,
		Depth:  e.Redex.Depth,
		Binder: e.Redex.Binder.Original,
		Term:   p.Render(e.Term),
	}
	if err := r.store.RecordStep(context.Background(), r.runID, st); err != nil {
		// Keep evaluating; the error surfaces in finish.
		r.logger.Warn("dropping trace", "run", r.runID, "err", err)
		r.err = err
	}
}

func (r *recorder) finish(result, status string, steps uint64) error {
	if r.store == nil {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return r.store.FinishRun(context.Background(), r.runID, result, status, steps)
}

func (r *recorder) close() {
	if r.store != nil {
		r.store.Close()
	}
}
