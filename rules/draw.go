package rules

import "chess-arbiter/board"

// Claim is the result of a draw-claim predicate. Count is the repetition
// count for threefold and the number of full moves for the fifty-move rule.
type Claim struct {
	CanClaim bool
	Count    int
}

// RepetitionCount is how often the current position has occurred.
func RepetitionCount(s *board.GameState) int {
	return board.RepetitionCount(s)
}

// CanClaimThreefold reports whether the current position has occurred at
// least three times.
func CanClaimThreefold(s *board.GameState) Claim {
	n := RepetitionCount(s)
	return Claim{CanClaim: n >= 3, Count: n}
}

// CanClaimFiftyMove reports whether fifty moves by each side have passed
// without a pawn move or capture.
func CanClaimFiftyMove(s *board.GameState) Claim {
	return Claim{CanClaim: s.HalfMoveClock >= 100, Count: s.HalfMoveClock / 2}
}
