package temporal

// Window is a right opened by the event at index Open of a trace and ended
// by the first later point where Closes holds. Open may be -1 for rights
// held from the start of the trace.
type Window[T any] struct {
	Open   int
	Closes Predicate[T]
}

// span is the part of the trace after the opening event up to and
// including ply.
func (w Window[T]) span(trace []T, ply int) ([]T, bool) {
	if ply < w.Open || w.Open < -1 || ply >= len(trace) {
		return nil, false
	}
	return trace[w.Open+1 : ply+1], true
}

// HoldsAt reports whether the right is still held once trace[ply] has
// happened. It is G(not Closes) over the span, written as the release
// False R (not Closes): nothing ever lifts the obligation to stay open.
func (w Window[T]) HoldsAt(trace []T, ply int) bool {
	seg, ok := w.span(trace, ply)
	if !ok {
		return false
	}
	return Release(seg, False[T], Not(w.Closes))
}

// ClosedAt returns the index of the point that ended the window, if any.
func (w Window[T]) ClosedAt(trace []T) (int, bool) {
	seg, ok := w.span(trace, len(trace)-1)
	if !ok {
		return -1, false
	}
	i, ok := Witness(seg, True[T], w.Closes)
	if !ok {
		return -1, false
	}
	return w.Open + 1 + i, true
}
