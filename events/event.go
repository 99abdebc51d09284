// Package events carries the stream of rule decisions the engine makes, in
// the shape a cross-game analyzer consumes: which rule type fired, where it
// lands in the universal taxonomy, and who held which agent state.
package events

import (
	"time"

	"github.com/google/uuid"

	"chess-arbiter/board"
	"chess-arbiter/taxonomy"
)

// Kind is the engine entry point that produced an event.
type Kind string

const (
	KindMove        Kind = "move"
	KindTermination Kind = "termination"
	KindClaim       Kind = "claim"
	KindFlagFall    Kind = "flag-fall"
)

// Event is one decision.
type Event struct {
	ID        uuid.UUID               `json:"id"`
	At        time.Time               `json:"at"`
	Ply       int                     `json:"ply"`
	Color     board.Color             `json:"color"`
	Kind      Kind                    `json:"kind"`
	RType     taxonomy.RType          `json:"rtype"`
	Universal taxonomy.UniversalRType `json:"universal"`
	Mover     taxonomy.AgentState     `json:"mover"`
	Opponent  taxonomy.AgentState     `json:"opponent"`
	Valid     bool                    `json:"valid"`
}

// New stamps a fresh event for rule type r at the current ply of s.
func New(kind Kind, r taxonomy.RType, c board.Color, s *board.GameState, valid bool) Event {
	img := taxonomy.Map(r)
	return Event{
		ID:        uuid.New(),
		At:        time.Now().UTC(),
		Ply:       s.Ply(),
		Color:     c,
		Kind:      kind,
		RType:     r,
		Universal: img.Universal,
		Mover:     img.Mover,
		Opponent:  img.Opponent,
		Valid:     valid,
	}
}

// Sink receives events. Implementations must be safe for concurrent use.
type Sink interface {
	Emit(Event)
}

// Discard drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }
