package rules

import "chess-arbiter/board"

// EnPassantReason names why an en-passant capture is or is not available.
type EnPassantReason uint8

const (
	EnPassantOK EnPassantReason = iota
	NoTarget
	TargetMismatch
	NotAPawn
	WrongRank
	NotAdjacentFile
	NoVictim
)

func (r EnPassantReason) String() string {
	switch r {
	case EnPassantOK:
		return "ok"
	case NoTarget:
		return "no-target"
	case TargetMismatch:
		return "target-mismatch"
	case NotAPawn:
		return "not-a-pawn"
	case WrongRank:
		return "wrong-rank"
	case NotAdjacentFile:
		return "not-adjacent-file"
	case NoVictim:
		return "no-victim"
	default:
		panic("rules.EnPassantReason: unknown reason")
	}
}

func (r EnPassantReason) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// EnPassantCheck is the result of EnPassant.
type EnPassantCheck struct {
	Valid  bool            `json:"valid"`
	Reason EnPassantReason `json:"reason"`
}

// EnPassant decides whether pawn may capture en passant onto target. The
// target only exists for the one ply after a two-square advance, so this is
// only ever true right after one.
func EnPassant(target board.Square, pawn board.Piece, s *board.GameState) EnPassantCheck {
	fail := func(r EnPassantReason) EnPassantCheck { return EnPassantCheck{Reason: r} }
	switch {
	case !s.EnPassant.Valid():
		return fail(NoTarget)
	case target != s.EnPassant:
		return fail(TargetMismatch)
	case pawn.Type != board.Pawn:
		return fail(NotAPawn)
	case pawn.Square.Rank()+pawn.Color.Forward() != target.Rank():
		return fail(WrongRank)
	case abs(pawn.Square.File()-target.File()) != 1:
		return fail(NotAdjacentFile)
	}
	victim, ok := s.Board.At(board.NewSquare(target.File(), pawn.Square.Rank()))
	if !ok || !victim.Is(pawn.Color.Opposite(), board.Pawn) {
		return fail(NoVictim)
	}
	return EnPassantCheck{Valid: true}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
