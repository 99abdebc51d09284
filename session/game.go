// Package session applies validated moves to running games. The engine only
// judges positions; a Game owns one position, asks the engine about each move
// and advances with board.Apply when the move is legal.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chess-arbiter/board"
	"chess-arbiter/engine"
	"chess-arbiter/locale"
)

var (
	ErrGameOver    = errors.New("session: game is over")
	ErrIllegalMove = errors.New("session: illegal move")
	ErrNotFound    = errors.New("session: game not found")
)

// Turn is what Play reports: the verdict on the move and, when the move was
// played, the status of the game afterwards.
type Turn struct {
	Move   engine.Result            `json:"move"`
	Status engine.TerminationResult `json:"status"`
	Played bool                     `json:"played"`
}

// Game is one running game. All methods are safe for concurrent use.
type Game struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	state     *board.GameState
	updatedAt time.Time
	locale    locale.Locale
	over      *engine.TerminationResult
	engine    *engine.Engine
	log       zerolog.Logger
}

func newGame(s *board.GameState, e *engine.Engine, l locale.Locale, log zerolog.Logger) *Game {
	now := time.Now()
	id := uuid.New()
	return &Game{
		ID:        id,
		CreatedAt: now,
		state:     s,
		updatedAt: now,
		locale:    l,
		engine:    e,
		log:       log.With().Str("game", id.String()).Logger(),
	}
}

// NewGame starts a standalone game from s, which is copied.
func NewGame(s *board.GameState, e *engine.Engine, l locale.Locale) (*Game, error) {
	if err := board.Validate(s); err != nil {
		return nil, err
	}
	return newGame(s.Clone(), e, l, zerolog.Nop()), nil
}

// State returns a copy of the current position.
func (g *Game) State() *board.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// UpdatedAt is the time of the last played move or adjudication.
func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// Locale is the language natural-language moves are read in.
func (g *Game) Locale() locale.Locale { return g.locale }

// Over returns the final verdict once the game has ended.
func (g *Game) Over() (engine.TerminationResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over == nil {
		return engine.TerminationResult{}, false
	}
	return *g.over, true
}

// Validate judges text against the current position without playing it.
func (g *Game) Validate(text string) (engine.Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.engine.ValidateText(text, g.state, g.locale)
}

// Play parses text in SAN, UCI, LAN or the game's natural language, validates
// it and plays it when legal. An illegal move returns ErrIllegalMove together
// with the verdict explaining why; the position is unchanged.
func (g *Game) Play(text string) (Turn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over != nil {
		return Turn{Status: *g.over}, ErrGameOver
	}
	res, err := g.engine.ValidateText(text, g.state, g.locale)
	if err != nil {
		return Turn{}, err
	}
	if !res.Valid {
		g.log.Info().Str("move", text).Stringer("failure", res.Failure).Msg("move rejected")
		return Turn{Move: res}, fmt.Errorf("%w: %s", ErrIllegalMove, res.Explanation.In(g.locale))
	}

	g.state = board.Apply(g.state, res.Move)
	g.updatedAt = time.Now()
	status := g.engine.EvaluateTermination(g.state)
	if status.Terminated {
		g.over = &status
		g.log.Info().Stringer("result", status.Result).Stringer("winner", status.Winner).Msg("game over")
	}
	g.log.Debug().Str("move", res.Notation.SAN).Int("ply", g.state.Ply()).Msg("move played")
	return Turn{Move: res, Status: status, Played: true}, nil
}

// Status evaluates the automatic ending rules for the current position.
func (g *Game) Status() engine.TerminationResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over != nil {
		return *g.over
	}
	return g.engine.EvaluateTermination(g.state)
}

// ClaimThreefold asks whether the side to move may claim a repetition draw.
// A successful claim ends the game.
func (g *Game) ClaimThreefold() (engine.ClaimResult, error) {
	return g.claim((*engine.Engine).CanClaimThreefold)
}

// ClaimFiftyMove asks whether the side to move may claim a fifty-move draw.
// A successful claim ends the game.
func (g *Game) ClaimFiftyMove() (engine.ClaimResult, error) {
	return g.claim((*engine.Engine).CanClaimFiftyMove)
}

func (g *Game) claim(ask func(*engine.Engine, *board.GameState) engine.ClaimResult) (engine.ClaimResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over != nil {
		return engine.ClaimResult{}, ErrGameOver
	}
	c := ask(g.engine, g.state)
	if c.CanClaim {
		verdict := c.Adjudicate()
		g.over = &verdict
		g.updatedAt = time.Now()
		g.log.Info().Stringer("rule", c.Rule).Msg("draw claimed")
	}
	return c, nil
}

// FlagFall records that flagged ran out of time and ends the game.
func (g *Game) FlagFall(flagged board.Color) (engine.TerminationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.over != nil {
		return *g.over, ErrGameOver
	}
	res := g.engine.FlagFall(flagged, g.state)
	g.over = &res
	g.updatedAt = time.Now()
	g.log.Info().Stringer("flagged", flagged).Stringer("result", res.Result).Msg("flag fell")
	return res, nil
}
