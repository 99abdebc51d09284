// Package engine is the arbiter: it validates moves, evaluates game
// termination and answers draw claims, and for every decision returns the
// deontic operators that fired, a symbolic formula, the rule type and a
// bilingual explanation with a citation from the Laws of Chess.
//
// An Engine holds no per-game state. One Engine may serve any number of
// games from any number of goroutines, provided no GameState is shared by
// concurrent callers.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"chess-arbiter/board"
	"chess-arbiter/events"
	"chess-arbiter/locale"
	"chess-arbiter/taxonomy"
)

var (
	ErrEmptySource   = errors.New("engine: no piece on the source square")
	ErrPieceMismatch = errors.New("engine: move piece does not match the board")
)

// Fault is the panic value for precondition violations: a state with the
// wrong number of kings, a move off the board, a move from an empty square.
// These are caller bugs and are never reported as rule violations.
type Fault struct {
	Op  string
	Err error
}

func (f *Fault) Error() string { return "engine: " + f.Op + ": " + f.Err.Error() }

func (f *Fault) Unwrap() error { return f.Err }

func fault(op string, err error) {
	panic(&Fault{Op: op, Err: err})
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger decisions are written to at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithSink sets where decision events go.
func WithSink(s events.Sink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

type Engine struct {
	log  zerolog.Logger
	sink events.Sink
}

// New returns an Engine that logs nowhere and discards events unless
// configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{log: zerolog.Nop(), sink: events.Discard}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Citation points at the article of the Laws of Chess a decision rests on,
// in both languages.
type Citation struct {
	SectionNo string `json:"sectionNo"`
	SectionEn string `json:"sectionEn"`
	TextNo    string `json:"textNo"`
	TextEn    string `json:"textEn"`
}

// IsZero reports an empty citation.
func (c Citation) IsZero() bool { return c.SectionEn == "" && c.SectionNo == "" }

// Section returns the section label in l.
func (c Citation) Section(l locale.Locale) string {
	if l == locale.NO {
		return c.SectionNo
	}
	return c.SectionEn
}

// Text returns the quoted rule in l.
func (c Citation) Text(l locale.Locale) string {
	if l == locale.NO {
		return c.TextNo
	}
	return c.TextEn
}

// checkState faults on a structurally invalid position.
func checkState(op string, s *board.GameState) {
	if s == nil {
		fault(op, fmt.Errorf("%w: nil state", board.ErrInvalidPosition))
	}
	if err := board.Validate(s); err != nil {
		fault(op, err)
	}
}

func (e *Engine) emit(kind events.Kind, r taxonomy.RType, c board.Color, s *board.GameState, valid bool) {
	e.sink.Emit(events.New(kind, r, c, s, valid))
}
