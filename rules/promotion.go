package rules

import "chess-arbiter/board"

// Promotion is the result of PromotionRequired.
type Promotion struct {
	Required bool
}

// PromotionRequired reports whether a pawn arriving on destination must
// promote. A missing choice is an illegal move, never a default queen.
func PromotionRequired(pawn board.Piece, destination board.Square) Promotion {
	return Promotion{Required: pawn.Type == board.Pawn && destination.Rank() == pawn.Color.PromotionRank()}
}

// PromotionPiece reports whether t is a legal promotion choice.
func PromotionPiece(t board.PieceType) bool {
	for _, p := range board.PromotionTypes {
		if p == t {
			return true
		}
	}
	return false
}
