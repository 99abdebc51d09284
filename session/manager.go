package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-arbiter/board"
	"chess-arbiter/engine"
	"chess-arbiter/locale"
)

// Manager keeps the running games of one process. The engine is shared by
// every game it creates.
type Manager struct {
	mu     sync.RWMutex
	games  map[uuid.UUID]*Game
	engine *engine.Engine
	log    zerolog.Logger
}

func NewManager(e *engine.Engine, log zerolog.Logger) *Manager {
	return &Manager{games: make(map[uuid.UUID]*Game), engine: e, log: log}
}

// NewGame starts a game from the standard position.
func (m *Manager) NewGame(l locale.Locale) *Game {
	g, err := m.NewGameFrom(board.NewGame(), l)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameFrom starts a game from s, which is copied. A position that fails
// board.Validate is refused.
func (m *Manager) NewGameFrom(s *board.GameState, l locale.Locale) (*Game, error) {
	if err := board.Validate(s); err != nil {
		return nil, err
	}
	g := newGame(s.Clone(), m.engine, l, m.log)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	m.log.Debug().Str("game", g.ID.String()).Str("fen", s.FEN()).Msg("game created")
	return g, nil
}

func (m *Manager) Get(id uuid.UUID) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g, nil
}

// Play looks up the game and plays text in it.
func (m *Manager) Play(id uuid.UUID, text string) (Turn, error) {
	g, err := m.Get(id)
	if err != nil {
		return Turn{}, err
	}
	return g.Play(text)
}

func (m *Manager) Remove(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// IDs lists the running games, oldest first.
func (m *Manager) IDs() []uuid.UUID {
	m.mu.RLock()
	games := maps.Values(m.games)
	m.mu.RUnlock()
	slices.SortFunc(games, func(a, b *Game) bool {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID.String() < b.ID.String()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	ids := make([]uuid.UUID, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
