package events

import (
	"sync"

	"chess-arbiter/taxonomy"
)

// Recorder keeps every event it receives in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of what has been recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// CountByUniversal tallies recorded events per universal relation type.
func (r *Recorder) CountByUniversal() map[taxonomy.UniversalRType]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[taxonomy.UniversalRType]int)
	for _, e := range r.events {
		out[e.Universal]++
	}
	return out
}
