// Package temporal provides linear-temporal-logic operators over finite
// traces. A trace is any slice; position 0 is the present and later
// indices lie in the future.
package temporal

// Predicate is a state formula evaluated at one point of a trace.
type Predicate[T any] func(T) bool

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// And holds when both p and q hold.
func And[T any](p, q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or holds when either p or q holds.
func Or[T any](p, q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// True holds everywhere.
func True[T any](T) bool { return true }

// False holds nowhere.
func False[T any](T) bool { return false }

// Always (G p) holds when p holds at every point. It is vacuously true on an
// empty trace.
func Always[T any](trace []T, p Predicate[T]) bool {
	for _, v := range trace {
		if !p(v) {
			return false
		}
	}
	return true
}

// Eventually (F p) holds when p holds at some point.
func Eventually[T any](trace []T, p Predicate[T]) bool {
	for _, v := range trace {
		if p(v) {
			return true
		}
	}
	return false
}

// Next (X p) holds at i when p holds at i+1. There is no next point past the
// end of the trace, so Next is false there.
func Next[T any](trace []T, i int, p Predicate[T]) bool {
	if i < -1 || i+1 >= len(trace) {
		return false
	}
	return p(trace[i+1])
}

// Until (p U q) is the strong until: q holds at some point and p holds at
// every point before it.
func Until[T any](trace []T, p, q Predicate[T]) bool {
	_, ok := firstUntil(trace, p, q)
	return ok
}

// WeakUntil (p W q) is Until, or p holding over the whole trace.
func WeakUntil[T any](trace []T, p, q Predicate[T]) bool {
	return Until(trace, p, q) || Always(trace, p)
}

// Release (p R q) is not(not p U not q): q must hold up to and including the
// first point where p holds, or over the whole trace if p never holds.
func Release[T any](trace []T, p, q Predicate[T]) bool {
	return !Until(trace, Not(p), Not(q))
}

// Witness returns the index where q first discharges p U q.
func Witness[T any](trace []T, p, q Predicate[T]) (int, bool) {
	return firstUntil(trace, p, q)
}

func firstUntil[T any](trace []T, p, q Predicate[T]) (int, bool) {
	for i, v := range trace {
		if q(v) {
			return i, true
		}
		if !p(v) {
			return -1, false
		}
	}
	return -1, false
}
