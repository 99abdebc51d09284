package session

import (
	"errors"
	"strings"
	"sync"
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chess-arbiter/board"
	"chess-arbiter/engine"
	"chess-arbiter/events"
	"chess-arbiter/locale"
	"chess-arbiter/rules"
	"chess-arbiter/taxonomy"
)

func newManager() (*Manager, *events.Recorder) {
	rec := events.NewRecorder()
	return NewManager(engine.New(engine.WithSink(rec)), zerolog.Nop()), rec
}

func playAll(t *testing.T, g *Game, moves ...string) Turn {
	t.Helper()
	var last Turn
	for _, mv := range moves {
		turn, err := g.Play(mv)
		if err != nil {
			t.Fatalf("Play(%q): %v", mv, err)
		}
		last = turn
	}
	return last
}

func TestPlayMixedNotations(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	turn := playAll(t, g, "e4", "e7e5", "Ng1-f3", "knight from b8 to c6")
	if !turn.Played || turn.Status.Terminated {
		t.Fatalf("unexpected turn %+v", turn)
	}
	s := g.State()
	if s.Ply() != 4 || s.SideToMove != board.White {
		t.Fatalf("ply %d, side %s", s.Ply(), s.SideToMove)
	}
	if p, ok := s.Board.At(board.MustSquare("c6")); !ok || p.Type != board.Knight {
		t.Fatalf("no knight on c6: %v", p)
	}
}

func TestPlayNorwegian(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.NO)
	turn := playAll(t, g, "springer fra g1 til f3")
	if turn.Move.RType == nil || *turn.Move.RType != taxonomy.DiscreteJump {
		t.Fatalf("rtype = %v", turn.Move.RType)
	}
}

func TestIllegalMoveLeavesState(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	before := g.State().FEN()
	turn, err := g.Play("e2e5")
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want ErrIllegalMove", err)
	}
	if turn.Played || turn.Move.Valid || turn.Move.Failure != engine.IllegalPattern {
		t.Fatalf("turn = %+v", turn)
	}
	if got := g.State().FEN(); got != before {
		t.Fatalf("state changed to %s", got)
	}
}

func TestCastleAfterKingMoved(t *testing.T) {
	m, _ := newManager()
	g, err := m.NewGameFrom(board.MustParseFEN("r3k2r/8/8/8/8/8/8/R4K1R w kq - 0 1"), locale.EN)
	if err != nil {
		t.Fatal(err)
	}
	before := g.State().FEN()
	for _, text := range []string{"O-O", "O-O-O", "castle kingside"} {
		turn, err := g.Play(text)
		if !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("%q: err = %v, want ErrIllegalMove", text, err)
		}
		if turn.Played || turn.Move.Failure != engine.CastlingDenied {
			t.Fatalf("%q: turn = %+v", text, turn)
		}
	}
	if got := g.State().FEN(); got != before {
		t.Fatalf("state changed to %s", got)
	}
	// Black still has both rights.
	if _, err := g.Play("Kg1"); err != nil {
		t.Fatal(err)
	}
	if turn := playAll(t, g, "O-O"); !turn.Played || turn.Move.Failure != engine.NoFailure {
		t.Fatalf("black O-O: %+v", turn)
	}
}

func TestUnparseableMove(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	if _, err := g.Play("banana"); err == nil || errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, want a parse error", err)
	}
}

func TestCheckmateEndsGame(t *testing.T) {
	m, rec := newManager()
	g := m.NewGame(locale.EN)
	turn := playAll(t, g, "f3", "e5", "g4", "Qh4#")
	if !turn.Status.Terminated || turn.Status.Result != rules.Checkmate || turn.Status.Winner != rules.BlackWins {
		t.Fatalf("status = %+v", turn.Status)
	}
	if _, err := g.Play("e4"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want ErrGameOver", err)
	}
	if over, ok := g.Over(); !ok || over.Result != rules.Checkmate {
		t.Fatalf("Over() = %+v, %v", over, ok)
	}
	// Four moves, each validated and followed by a termination check.
	if rec.Len() != 8 {
		t.Fatalf("recorded %d events, want 8", rec.Len())
	}
}

func TestThreefoldClaimEndsGame(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	c, err := g.ClaimThreefold()
	if err != nil || c.CanClaim {
		t.Fatalf("fresh game claim = %+v, %v", c, err)
	}
	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8"}
	playAll(t, g, append(shuffle, shuffle...)...)
	c, err = g.ClaimThreefold()
	if err != nil || !c.CanClaim || c.Count != 3 {
		t.Fatalf("claim = %+v, %v", c, err)
	}
	over, ok := g.Over()
	if !ok || over.Result != rules.ThreefoldClaim || over.Winner != rules.Draw {
		t.Fatalf("Over() = %+v, %v", over, ok)
	}
	if over.Universal.Universal != taxonomy.URepetitionConstraint {
		t.Errorf("universal = %s", over.Universal.Universal)
	}
	if _, err := g.ClaimFiftyMove(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want ErrGameOver", err)
	}
}

func TestFiftyMoveClaim(t *testing.T) {
	m, _ := newManager()
	g, err := m.NewGameFrom(board.MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 100 80"), locale.EN)
	if err != nil {
		t.Fatal(err)
	}
	c, err := g.ClaimFiftyMove()
	if err != nil || !c.CanClaim {
		t.Fatalf("claim = %+v, %v", c, err)
	}
	if over, _ := g.Over(); over.Result != rules.FiftyMoveClaim {
		t.Fatalf("result = %s", over.Result)
	}
}

// fiftyMoveGame is 16 pawn moves followed by 100 plies without a pawn move
// or capture.
const fiftyMoveGame = "d2d4 d7d5 f2f4 f7f5 e2e3 e7e6 g2g3 g7g6 h2h4 h7h5 c2c3 c7c6 b2b4 b7b5 a2a3 a7a6 b1d2 g8e7 f1g2 c8b7 e1f2 e8f7 d1e2 f8g7 h1h3 a8a7 c1b2 b8d7 a1c1 b7c8 c1b1 d7f8 g1f3 f8h7 d2f1 e7g8 f1d2 g8e7 d2f1 e7g8 f1h2 g8h6 f3g5 f7f8 e2c2 f8e7 b1d1 c8b7 f2e2 g7f8 g2f3 h7f6 c2c1 d8c8 c1a1 c8a8 d1g1 b7c8 h2f1 h8h7 h3h2 h7h8 f1d2 f8g7 d2f1 c8d7 a1c1 a8b7 b2a1 a7a8 f1d2 h8c8 g1g2 c8f8 h2h1 f8g8 g2g1 g8h8 g5h3 h6g8 d2f1 g8h6 f1h2 f6g4 h2f1 g4f6 f1d2 g7f8 g1e1 b7c7 h1g1 f8g7 f3h1 h8b8 e1f1 d7e8 d2b3 e8d7 b3c5 f6e4 h3g5 h6g4 c5b3 e4f6 g5h3 g4h6 h1f3 f6g8 g1h1 g7f6 f1f2 e7d8 e2f1 d8c8 f1g2 c8b7"

func TestFiftyMoveScenario(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	playAll(t, g, strings.Fields(fiftyMoveGame)...)

	s := g.State()
	gb, err := goosemg.ParseFEN(s.FEN())
	if err != nil {
		t.Fatalf("goosemg.ParseFEN: %v", err)
	}
	if !gb.IsDrawBy50() {
		t.Fatalf("goosemg disagrees: no fifty-move draw at %s", s.FEN())
	}
	if s.HalfMoveClock != 100 {
		t.Fatalf("half-move clock = %d, want 100", s.HalfMoveClock)
	}
	if st := g.Status(); st.Terminated {
		t.Fatalf("fifty moves must not end the game by themselves: %s", st.Result)
	}
	c, err := g.ClaimFiftyMove()
	if err != nil || !c.CanClaim || c.MovesCount != 50 {
		t.Fatalf("claim = %+v, %v", c, err)
	}
}

func TestFlagFall(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	res, err := g.FlagFall(board.White)
	if err != nil || res.Result != rules.Timeout || res.Winner != rules.BlackWins {
		t.Fatalf("flag fall = %+v, %v", res, err)
	}
	if _, err := g.FlagFall(board.Black); !errors.Is(err, ErrGameOver) {
		t.Fatalf("err = %v, want ErrGameOver", err)
	}
	if st := g.Status(); st.Result != rules.Timeout {
		t.Fatalf("status after flag = %s", st.Result)
	}
}

func TestValidateDoesNotPlay(t *testing.T) {
	m, _ := newManager()
	g := m.NewGame(locale.EN)
	res, err := g.Validate("e4")
	if err != nil || !res.Valid {
		t.Fatalf("Validate = %+v, %v", res, err)
	}
	if g.State().Ply() != 0 {
		t.Fatal("Validate advanced the game")
	}
}

func TestManagerLookup(t *testing.T) {
	m, _ := newManager()
	a := m.NewGame(locale.EN)
	b := m.NewGame(locale.EN)
	if got, err := m.Get(a.ID); err != nil || got != a {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := m.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	ids := m.IDs()
	if len(ids) != 2 || ids[0] == ids[1] {
		t.Fatalf("IDs = %v", ids)
	}
	if _, err := m.Play(b.ID, "d4"); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(a.ID); err != nil {
		t.Fatal(err)
	}
	if err := m.Remove(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove = %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d", m.Len())
	}
}

func TestNewGameFromRejectsInvalid(t *testing.T) {
	m, _ := newManager()
	if _, err := m.NewGameFrom(board.MustParseFEN("3KK3/8/8/8/8/8/8/4k3 w - - 0 1"), locale.EN); !errors.Is(err, board.ErrInvalidPosition) {
		t.Fatalf("err = %v, want ErrInvalidPosition", err)
	}
	if m.Len() != 0 {
		t.Fatal("invalid game was registered")
	}
}

func TestConcurrentGames(t *testing.T) {
	m, rec := newManager()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := m.NewGame(locale.EN)
			for _, mv := range []string{"e4", "e5", "Nf3", "Nc6"} {
				if _, err := g.Play(mv); err != nil {
					t.Errorf("Play(%q): %v", mv, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if m.Len() != 8 || rec.Len() != 8*8 {
		t.Fatalf("games %d, events %d", m.Len(), rec.Len())
	}
}
