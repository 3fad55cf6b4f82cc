package lambda

// TraceEvent records one iteration of the evaluation loop: the term after
// the uniqueness pass and the redex contracted from it. The final event of a
// run that reaches normal form has Normal set and a zero Redex.
type TraceEvent struct {
	Step   uint64
	Term   Term
	Redex  Redex
	Normal bool
}

// Stats counts the work done by an Evaluator.
type Stats struct {
	Reductions uint64
	Renamed    uint64
	Iterations uint64
}

// EnableTrace keeps the last capacity events of every following run.
func (e *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	e.traceBuf = make([]TraceEvent, capacity)
	e.traceIdx = 0
	e.traceOn = true
}

func (e *Evaluator) DisableTrace() {
	e.traceOn = false
}

// TraceSnapshot returns the recorded events, oldest first.
func (e *Evaluator) TraceSnapshot() []TraceEvent {
	if !e.traceOn {
		return nil
	}
	capacity := uint64(len(e.traceBuf))
	if e.traceIdx <= capacity {
		res := make([]TraceEvent, e.traceIdx)
		copy(res, e.traceBuf[:e.traceIdx])
		return res
	}
	res := make([]TraceEvent, 0, capacity)
	start := e.traceIdx % capacity
	res = append(res, e.traceBuf[start:]...)
	res = append(res, e.traceBuf[:start]...)
	return res
}

func (e *Evaluator) recordTrace(ev TraceEvent) {
	if !e.traceOn || len(e.traceBuf) == 0 {
		return
	}
	e.traceBuf[e.traceIdx%uint64(len(e.traceBuf))] = ev
	e.traceIdx++
}

// Stats returns the counters accumulated since the Evaluator was created.
func (e *Evaluator) Stats() Stats {
	return e.stats
}
