package taxonomy

import (
	"chess-arbiter/board"
	"chess-arbiter/rules"
)

// Classify assigns m one R-type. The first matching category wins:
// castling, en passant, promotion, double push, pawn capture, pawn advance,
// knight, king, slider, and conditional for anything else.
//
// When m carries no piece, the piece on m.From in s is used.
func Classify(m board.Move, s *board.GameState) RType {
	p := m.Piece
	if p.IsZero() {
		if at, ok := s.Board.At(m.From); ok {
			p = at
		}
	}
	switch {
	case m.Castle != board.NoCastle:
		return CompoundMove
	case m.EnPassant:
		return TemporalWindow
	}
	switch p.Type {
	case board.Pawn:
		d := m.From.DeltaTo(m.To)
		switch {
		case m.Promotion != board.NoPieceType || rules.PromotionRequired(p, m.To).Required:
			return Transformation
		case d.File == 0 && (d.Rank == 2 || d.Rank == -2):
			return InitialPrivilege
		case d.File != 0:
			return CaptureOnly
		default:
			return AdvanceOnly
		}
	case board.Knight:
		return DiscreteJump
	case board.King:
		return SafetyConstrained
	case board.Queen, board.Rook, board.Bishop:
		return RayMovement
	default:
		return Conditional
	}
}
