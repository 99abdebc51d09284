package temporal

import (
	"math/rand"
	"testing"

	"chess-arbiter/board"
	"chess-arbiter/rules"
)

func even(n int) bool { return n%2 == 0 }
func big(n int) bool  { return n > 10 }

func TestOperators(t *testing.T) {
	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"always even", Always([]int{2, 4, 6}, even), true},
		{"always vacuous", Always([]int{}, even), true},
		{"always broken", Always([]int{2, 3}, even), false},
		{"eventually", Eventually([]int{1, 3, 12}, big), true},
		{"eventually empty", Eventually([]int{}, big), false},
		{"next", Next([]int{1, 2}, 0, even), true},
		{"next past end", Next([]int{1, 2}, 1, even), false},
		{"until holds", Until([]int{2, 4, 11}, even, big), true},
		{"until needs q", Until([]int{2, 4, 6}, even, big), false},
		{"until broken", Until([]int{2, 3, 12}, even, big), false},
		{"until immediate", Until([]int{11}, even, big), true},
		{"weak until without q", WeakUntil([]int{2, 4, 6}, even, big), true},
		{"release forever", Release([]int{2, 4}, big, even), true},
		{"release discharged", Release([]int{2, 12, 3}, big, even), true},
		{"release broken", Release([]int{2, 3, 12}, big, even), false},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
}

func TestReleaseIsDualOfUntil(t *testing.T) {
	traces := [][]int{{}, {1}, {2, 12}, {1, 2, 3}, {12, 1}, {2, 4, 6, 13, 1}}
	for _, tr := range traces {
		if Release(tr, big, even) != !Until(tr, Not[int](big), Not[int](even)) {
			t.Fatalf("duality broken on %v", tr)
		}
	}
}

func TestWindow(t *testing.T) {
	w := Window[int]{Open: 1, Closes: big}
	trace := []int{0, 1, 2, 3, 20, 4}
	if !w.HoldsAt(trace, 1) || !w.HoldsAt(trace, 3) {
		t.Fatalf("window should hold until a big value")
	}
	if w.HoldsAt(trace, 4) || w.HoldsAt(trace, 5) {
		t.Fatalf("window should stay closed after 20")
	}
	if w.HoldsAt(trace, 0) {
		t.Fatalf("window cannot hold before it opens")
	}
	if i, ok := w.ClosedAt(trace); !ok || i != 4 {
		t.Fatalf("ClosedAt = %d, %v", i, ok)
	}
}

func TestEnPassantWindowReleasedByNextPly(t *testing.T) {
	s := board.MustParseFEN("4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	s = board.Apply(s, board.NewMove(s, board.D7, board.D5, board.NoPieceType))
	if sq, ok := EnPassantTarget(s.MoveHistory); !ok || sq != board.D6 {
		t.Fatalf("EnPassantTarget = %s, %v", sq, ok)
	}
	s = board.Apply(s, board.NewMove(s, board.E1, board.D1, board.NoPieceType))
	if _, ok := EnPassantTarget(s.MoveHistory); ok {
		t.Fatalf("en passant right should be released by the next ply")
	}
	w := EnPassantWindow(0)
	if !w.HoldsAt(s.MoveHistory, 0) || w.HoldsAt(s.MoveHistory, 1) {
		t.Fatalf("window bounds wrong")
	}
}

func TestCastlingPower(t *testing.T) {
	s := board.NewGame()
	play := func(from, to board.Square) {
		s = board.Apply(s, board.NewMove(s, from, to, board.NoPieceType))
	}
	play(board.G1, board.F3)
	play(board.G8, board.F6)
	if !CastlingPower(s.MoveHistory, board.White, board.Kingside) {
		t.Fatalf("knight moves do not touch castling power")
	}
	play(board.H1, board.G1)
	if CastlingPower(s.MoveHistory, board.White, board.Kingside) {
		t.Fatalf("rook move should end kingside power")
	}
	if !CastlingPower(s.MoveHistory, board.White, board.Queenside) {
		t.Fatalf("queenside power unaffected by the h-rook")
	}
	play(board.E8, board.F8)
	if CastlingPower(s.MoveHistory, board.Black, board.Queenside) {
		t.Fatalf("king move ends both black powers")
	}
}

// TestHistoryAgreesWithState plays random legal games and checks that the
// history-derived rights match the bookkeeping in GameState.
func TestHistoryAgreesWithState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		s := board.NewGame()
		for ply := 0; ply < 80; ply++ {
			moves := rules.LegalMoves(s.SideToMove, s)
			if len(moves) == 0 {
				break
			}
			s = board.Apply(s, moves[rng.Intn(len(moves))])

			sq, ok := EnPassantTarget(s.MoveHistory)
			if !ok {
				sq = board.NoSquare
			}
			if sq != s.EnPassant {
				t.Fatalf("game %d ply %d: history target %s, state %s", game, ply, sq, s.EnPassant)
			}
			for _, c := range []board.Color{board.White, board.Black} {
				for _, side := range []board.CastleSide{board.Kingside, board.Queenside} {
					if CastlingPower(s.MoveHistory, c, side) != s.Castling.Has(c, side) {
						t.Fatalf("game %d ply %d: castling power %s %s disagrees", game, ply, c, side)
					}
				}
			}
		}
	}
}
