package rules

import (
	"testing"

	"chess-arbiter/board"
)

func pieceAt(t *testing.T, s *board.GameState, sq board.Square) board.Piece {
	t.Helper()
	p, ok := s.Board.At(sq)
	if !ok {
		t.Fatalf("no piece on %s", sq)
	}
	return p
}

func hasMove(moves []board.Move, from, to board.Square, promo board.PieceType) bool {
	for _, m := range moves {
		if m.From == from && m.To == to && m.Promotion == promo {
			return true
		}
	}
	return false
}

func TestPatternDependsOnlyOnDisplacement(t *testing.T) {
	empty := board.MustParseFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	for _, pt := range board.PieceTypes {
		for _, c := range []board.Color{board.White, board.Black} {
			for df := -7; df <= 7; df++ {
				for dr := -7; dr <= 7; dr++ {
					d := board.Delta{File: df, Rank: dr}
					want := Pattern(pt, c, d)
					// Every placement of the same displacement must agree.
					for from := board.A1; from <= board.H8; from++ {
						to := from.Offset(df, dr)
						if !to.Valid() {
							continue
						}
						p := board.NewPiece(pt, c, from)
						empty.Board.Place(p, from)
						got := CanReach(p, from, to, empty).PatternValid
						empty.Board.Remove(from)
						if got != want {
							t.Fatalf("%s %s %s->%s: PatternValid=%v, Pattern=%v", c, pt, from, to, got, want)
						}
					}
				}
			}
		}
	}
}

func TestCanReachPieces(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/3p4/8/2N5/P3P3/R2QK2R w KQ - 0 1")
	cases := []struct {
		name     string
		from, to board.Square
		want     Reach
	}{
		{"rook blocked by queen", board.A1, board.F1, Reach{Permitted: false, PatternValid: true, PathClear: false}},
		{"rook along file", board.H1, board.H7, Reach{Permitted: true, PatternValid: true, PathClear: true}},
		{"rook diagonal", board.H1, board.G2, Reach{PatternValid: false, PathClear: true}},
		{"knight jumps", board.C3, board.D5, Reach{Permitted: true, PatternValid: true, PathClear: true}},
		{"knight onto own pawn", board.C3, board.E2, Reach{PatternValid: true, PathClear: true}},
		{"queen diagonal", board.D1, board.A4, Reach{Permitted: true, PatternValid: true, PathClear: true}},
		{"king one step", board.E1, board.F2, Reach{Permitted: true, PatternValid: true, PathClear: true}},
		{"king two steps", board.E1, board.G1, Reach{PatternValid: false, PathClear: true}},
		{"pawn double push", board.A2, board.A4, Reach{Permitted: true, PatternValid: true, PathClear: true}},
		{"pawn diagonal without capture", board.E2, board.F3, Reach{Permitted: false, PatternValid: true, PathClear: true}},
		{"pawn backwards", board.E2, board.E1, Reach{PatternValid: false, PathClear: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := pieceAt(t, s, c.from)
			if got := CanReach(p, c.from, c.to, s); got != c.want {
				t.Fatalf("CanReach = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestPawnDoublePushNeedsEmptyPath(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1")
	r := CanReach(pieceAt(t, s, board.E2), board.E2, board.E4, s)
	if r.Permitted || r.PathClear {
		t.Fatalf("double push through a piece: %+v", r)
	}
	moved := board.MustParseFEN("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	if CanReach(pieceAt(t, moved, board.E3), board.E3, board.E5, moved).Permitted {
		t.Fatalf("double push from rank 3 permitted")
	}
}

func TestAttacksPawnDiagonals(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/8/8/8/4P3/4K2R w - - 0 1")
	pawn := pieceAt(t, s, board.E2)
	if !Attacks(pawn, board.D3, s) || !Attacks(pawn, board.F3, s) {
		t.Fatalf("pawn should attack both forward diagonals on empty squares")
	}
	if Attacks(pawn, board.E3, s) {
		t.Fatalf("pawn does not attack straight ahead")
	}
	rook := pieceAt(t, s, board.H1)
	if !Attacks(rook, board.E1, s) || Attacks(rook, board.D1, s) {
		t.Fatalf("rook attack should stop at the first piece, own pieces included")
	}
}

func TestIsDeveloped(t *testing.T) {
	cases := []struct {
		p    board.Piece
		want Development
	}{
		{board.NewPiece(board.Knight, board.White, board.G1), Development{false, 0}},
		{board.NewPiece(board.Knight, board.White, board.F3), Development{true, 2}},
		{board.NewPiece(board.Pawn, board.Black, board.E5), Development{true, 4}},
		{board.NewPiece(board.Pawn, board.Black, board.E7), Development{false, 0}},
		{board.NewPiece(board.Bishop, board.White, board.B5), Development{true, 1}},
	}
	for _, c := range cases {
		if got := IsDeveloped(c.p); got != c.want {
			t.Errorf("IsDeveloped(%v) = %+v, want %+v", c.p, got, c.want)
		}
	}
}

func TestCheckStatusQueenOnFile(t *testing.T) {
	s := board.MustParseFEN("4q3/8/8/8/8/8/8/4K3 w - - 0 1")
	cs := CheckStatus(board.White, s)
	if !cs.InCheck {
		t.Fatalf("white king should be in check")
	}
	if len(cs.Attackers) != 1 || !cs.Attackers[0].Is(board.Black, board.Queen) {
		t.Fatalf("attackers = %v, want [black queen]", cs.Attackers)
	}
}

func TestWouldExposeCheckPinnedPiece(t *testing.T) {
	s := board.MustParseFEN("4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	m := board.NewMove(s, board.E2, board.D3, board.NoPieceType)
	if !WouldExposeCheck(m, s) {
		t.Fatalf("moving the pinned bishop should expose the king")
	}
	if _, ok := s.Board.At(board.E2); !ok {
		t.Fatalf("simulation mutated the original board")
	}
	m = board.NewMove(s, board.E1, board.D1, board.NoPieceType)
	if WouldExposeCheck(m, s) {
		t.Fatalf("king step to d1 is safe")
	}
}

func TestWouldExposeCheckEnPassantDiscovery(t *testing.T) {
	// Removing both pawns from the fifth rank opens the rook onto the king.
	s := board.MustParseFEN("4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1")
	m := board.NewMove(s, board.E5, board.D6, board.NoPieceType)
	if !m.EnPassant {
		t.Fatalf("expected an en passant move")
	}
	if !WouldExposeCheck(m, s) {
		t.Fatalf("en passant should expose the king along the rank")
	}
	if hasMove(LegalMoves(board.White, s), board.E5, board.D6, board.NoPieceType) {
		t.Fatalf("illegal en passant generated")
	}
}

func TestCanCastleReportsEachCondition(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		side   board.CastleSide
		failed []Condition
	}{
		{"clear kingside", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", board.Kingside, nil},
		{"blocked", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", board.Kingside, []Condition{PathBlocked}},
		{"transit attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", board.Kingside, []Condition{PathAttacked}},
		{"right revoked", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", board.Kingside, []Condition{RookMoved, RightRevoked}},
		{"queenside b1 attacked is fine", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", board.Queenside, nil},
		{"king attacked", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", board.Kingside, []Condition{KingInCheck, PathAttacked}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := board.MustParseFEN(c.fen)
			res := CanCastle(c.side, board.White, s)
			got := res.Failed()
			if len(got) != len(c.failed) {
				t.Fatalf("failed = %v, want %v", got, c.failed)
			}
			for i := range got {
				if got[i] != c.failed[i] {
					t.Fatalf("failed = %v, want %v", got, c.failed)
				}
			}
			if res.Allowed != (len(c.failed) == 0) {
				t.Fatalf("Allowed = %v with failures %v", res.Allowed, got)
			}
			if len(res.Conditions) != len(Conditions) {
				t.Fatalf("every condition must be reported, got %d", len(res.Conditions))
			}
		})
	}
}

func TestCastlingBlockedReportsSquares(t *testing.T) {
	s := board.MustParseFEN("r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	res := CanCastle(board.Queenside, board.White, s)
	blocked := res.Check(PathBlocked)
	if blocked.Passed || len(blocked.Squares) != 1 || blocked.Squares[0] != board.B1 {
		t.Fatalf("PathBlocked = %+v", blocked)
	}
}

func TestMovegenFiltersUnsafeCastling(t *testing.T) {
	s := board.MustParseFEN("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	if hasMove(LegalMoves(board.White, s), board.E1, board.G1, board.NoPieceType) {
		t.Fatalf("castling through an attacked square was generated")
	}
	if !hasMove(LegalMoves(board.White, s), board.E1, board.C1, board.NoPieceType) {
		t.Fatalf("queenside castling should be available")
	}
}

func TestEnPassantWindow(t *testing.T) {
	s := board.MustParseFEN("4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	s = board.Apply(s, board.NewMove(s, board.D7, board.D5, board.NoPieceType))
	pawn := pieceAt(t, s, board.E5)
	if got := EnPassant(board.D6, pawn, s); !got.Valid {
		t.Fatalf("EnPassant(d6) = %+v, want valid", got)
	}
	if !hasMove(LegalMoves(board.White, s), board.E5, board.D6, board.NoPieceType) {
		t.Fatalf("en passant capture missing from legal moves")
	}

	s = board.Apply(s, board.NewMove(s, board.E1, board.E2, board.NoPieceType))
	s = board.Apply(s, board.NewMove(s, board.E8, board.E7, board.NoPieceType))
	if s.EnPassant != board.NoSquare {
		t.Fatalf("en passant square survived: %s", s.EnPassant)
	}
	if got := EnPassant(board.D6, pieceAt(t, s, board.E5), s); got.Valid || got.Reason != NoTarget {
		t.Fatalf("EnPassant after the window = %+v", got)
	}
}

func TestEnPassantReasons(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/3pP1P1/8/8/8/4K3 w - d6 0 1")
	cases := []struct {
		target board.Square
		pawn   board.Square
		want   EnPassantReason
	}{
		{board.D6, board.E5, EnPassantOK},
		{board.C6, board.E5, TargetMismatch},
		{board.D6, board.G5, NotAdjacentFile},
		{board.D6, board.E1, NotAPawn},
	}
	for _, c := range cases {
		got := EnPassant(c.target, pieceAt(t, s, c.pawn), s)
		if got.Reason != c.want || got.Valid != (c.want == EnPassantOK) {
			t.Errorf("EnPassant(%s, %s) = %+v, want %s", c.target, c.pawn, got, c.want)
		}
	}
}

func TestPromotionExpansion(t *testing.T) {
	s := board.MustParseFEN("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	moves := LegalMoves(board.White, s)
	for _, to := range []board.Square{board.A8, board.B8} {
		for _, pt := range board.PromotionTypes {
			if !hasMove(moves, board.A7, to, pt) {
				t.Errorf("missing a7%s=%s", to, pt.Letter())
			}
		}
		if hasMove(moves, board.A7, to, board.NoPieceType) {
			t.Errorf("unpromoted move to %s generated", to)
		}
	}
	if !PromotionRequired(pieceAt(t, s, board.A7), board.A8).Required {
		t.Fatalf("promotion should be required on the last rank")
	}
	if PromotionPiece(board.King) || PromotionPiece(board.Pawn) || !PromotionPiece(board.Knight) {
		t.Fatalf("PromotionPiece choices wrong")
	}
}

func TestTermination(t *testing.T) {
	cases := []struct {
		name   string
		fen    string
		result Result
		winner Winner
	}{
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1", Checkmate, WhiteWins},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate, Draw},
		{"seventy-five moves", "4k3/8/8/8/8/8/4P3/4K2R w - - 150 120", SeventyFiveMoveRule, Draw},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", InsufficientMaterial, Draw},
		{"king and knight", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", InsufficientMaterial, Draw},
		{"same colour bishops", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", InsufficientMaterial, Draw},
		{"opposite bishops", "4k1b1/8/8/8/8/8/8/2B1K3 w - - 0 1", Ongoing, NoWinner},
		{"start", board.StartFEN, Ongoing, NoWinner},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Termination(board.MustParseFEN(c.fen))
			if got.Result != c.result || got.Winner != c.winner || got.Terminated != (c.result != Ongoing) {
				t.Fatalf("Termination = %+v, want %s/%s", got, c.result, c.winner)
			}
		})
	}
}

func TestCheckmateBeatsSeventyFiveMoves(t *testing.T) {
	got := Termination(board.MustParseFEN("R5k1/5ppp/8/8/8/8/8/4K3 b - - 160 130"))
	if got.Result != Checkmate {
		t.Fatalf("Termination = %+v, want checkmate", got)
	}
}

func knightShuffle(s *board.GameState, cycles int) *board.GameState {
	shuffle := [][2]board.Square{{board.G1, board.F3}, {board.G8, board.F6}, {board.F3, board.G1}, {board.F6, board.G8}}
	for i := 0; i < cycles; i++ {
		for _, mv := range shuffle {
			s = board.Apply(s, board.NewMove(s, mv[0], mv[1], board.NoPieceType))
		}
	}
	return s
}

func TestRepetitionClaimsAndFivefold(t *testing.T) {
	s := knightShuffle(board.NewGame(), 2)
	if c := CanClaimThreefold(s); !c.CanClaim || c.Count != 3 {
		t.Fatalf("threefold = %+v, want claimable with count 3", c)
	}
	if Termination(s).Terminated {
		t.Fatalf("threefold must not end the game automatically")
	}
	s = knightShuffle(s, 2)
	if got := Termination(s); got.Result != FivefoldRepetition || got.Winner != Draw {
		t.Fatalf("Termination = %+v, want fivefold", got)
	}
}

func TestFiftyMoveClaim(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/8/8/8/8/4K2R w - - 100 80")
	if c := CanClaimFiftyMove(s); !c.CanClaim || c.Count != 50 {
		t.Fatalf("clock 100: %+v", c)
	}
	s = board.MustParseFEN("4k3/8/8/8/8/8/8/4K2R w - - 99 80")
	if c := CanClaimFiftyMove(s); c.CanClaim {
		t.Fatalf("clock 99: %+v", c)
	}
}

func TestFlagFall(t *testing.T) {
	s := board.MustParseFEN("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if got := FlagFall(board.Black, s); got.Result != Timeout || got.Winner != WhiteWins {
		t.Fatalf("black flag fall = %+v", got)
	}
	if got := FlagFall(board.White, s); got.Result != TimeoutVsInsufficientMaterial || got.Winner != Draw {
		t.Fatalf("white flag fall against lone king = %+v", got)
	}
}

func TestEnumStringsAreTotal(t *testing.T) {
	for _, r := range Results {
		if r.String() == "" {
			t.Fatalf("empty name for result %d", r)
		}
	}
	for _, c := range Conditions {
		if c.String() == "" {
			t.Fatalf("empty name for condition %d", c)
		}
	}
}
