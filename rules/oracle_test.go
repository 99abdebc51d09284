package rules_test

import (
	"sort"
	"testing"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"

	"chess-arbiter/board"
	"chess-arbiter/rules"
)

var oraclePositions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
}

func ourMoves(s *board.GameState) []string {
	var out []string
	for _, m := range rules.LegalMoves(s.SideToMove, s) {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func dragonMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	var out []string
	for _, m := range b.GenerateLegalMoves() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func sameMoves(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestLegalMovesMatchDragontooth compares move sets at the root and at every
// child of the root.
func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oraclePositions {
		root := board.MustParseFEN(fen)
		if got, want := ourMoves(root), dragonMoves(fen); !sameMoves(got, want) {
			t.Fatalf("%s\n got %v\nwant %v", fen, got, want)
		}
		for _, m := range rules.LegalMoves(root.SideToMove, root) {
			child := board.Apply(root, m)
			childFEN := child.FEN()
			if got, want := ourMoves(child), dragonMoves(childFEN); !sameMoves(got, want) {
				t.Fatalf("after %s in %s\n got %v\nwant %v", m, fen, got, want)
			}
		}
	}
}

func perft(s *board.GameState, depth int) int {
	moves := rules.LegalMoves(s.SideToMove, s)
	if depth == 1 {
		return len(moves)
	}
	n := 0
	for _, m := range moves {
		n += perft(board.Apply(s, m), depth-1)
	}
	return n
}

func TestPerftKnownCounts(t *testing.T) {
	cases := []struct {
		fen   string
		depth int
		nodes int
	}{
		{board.StartFEN, 3, 8902},
		{oraclePositions[1], 2, 2039},
		{oraclePositions[2], 3, 2812},
		{oraclePositions[3], 2, 264},
		{oraclePositions[4], 2, 1486},
	}
	for _, c := range cases {
		if got := perft(board.MustParseFEN(c.fen), c.depth); got != c.nodes {
			t.Errorf("perft(%q, %d) = %d, want %d", c.fen, c.depth, got, c.nodes)
		}
	}
}

func TestStatusMatchesGoose(t *testing.T) {
	fens := []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1",
		"7k/6Q1/6K1/8/8/8/8/8 b - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w - - 100 80",
		board.StartFEN,
	}
	for _, fen := range fens {
		gb, err := goosemg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("goosemg.ParseFEN(%q): %v", fen, err)
		}
		s := board.MustParseFEN(fen)
		out := rules.Termination(s)
		if gb.InCheckmate() != (out.Result == rules.Checkmate) {
			t.Errorf("%s: checkmate disagreement, ours %s", fen, out.Result)
		}
		if gb.InStalemate() != (out.Result == rules.Stalemate) {
			t.Errorf("%s: stalemate disagreement, ours %s", fen, out.Result)
		}
		if gb.InCheck(goosemg.Color(s.SideToMove)) != rules.InCheck(s.SideToMove, s) {
			t.Errorf("%s: in-check disagreement", fen)
		}
		if gb.IsDrawBy50() != rules.CanClaimFiftyMove(s).CanClaim {
			t.Errorf("%s: fifty-move disagreement", fen)
		}
		if len(gb.GenerateMoves()) != len(rules.LegalMoves(s.SideToMove, s)) {
			t.Errorf("%s: legal move count disagreement", fen)
		}
	}
}
