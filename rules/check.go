package rules

import "chess-arbiter/board"

// Check is the result of CheckStatus.
type Check struct {
	InCheck   bool
	Attackers []board.Piece
}

// CheckStatus reports whether colour c's king is attacked and by which
// opposing pieces, in square order. A side without a king is never in check.
func CheckStatus(c board.Color, s *board.GameState) Check {
	king, ok := s.Board.King(c)
	if !ok {
		return Check{}
	}
	att := attackers(&s.Board, king.Square, c.Opposite())
	return Check{InCheck: len(att) > 0, Attackers: att}
}

// InCheck is the boolean form of CheckStatus.
func InCheck(c board.Color, s *board.GameState) bool {
	return inCheck(&s.Board, c)
}

func inCheck(b *board.Board, c board.Color) bool {
	king, ok := b.King(c)
	if !ok {
		return false
	}
	return attacked(b, king.Square, c.Opposite())
}

// WouldExposeCheck plays m on a copy of the board and reports whether the
// mover's own king is then attacked. s is not touched.
func WouldExposeCheck(m board.Move, s *board.GameState) bool {
	mover, ok := s.Board.At(m.From)
	if !ok {
		return false
	}
	b := Simulate(&s.Board, m)
	return inCheck(&b, mover.Color)
}

// Simulate returns a copy of b with m played on it: the mover relocated, the
// captured piece removed (behind the target for en passant), the rook moved
// for castling and the promotion applied. Only the board changes; counters
// and rights belong to board.Apply.
func Simulate(b *board.Board, m board.Move) board.Board {
	sim := *b
	mover, ok := sim.Remove(m.From)
	if !ok {
		return sim
	}
	if m.EnPassant {
		sim.Remove(board.NewSquare(m.To.File(), m.From.Rank()))
	}
	sim.Remove(m.To)
	if m.Promotion != board.NoPieceType {
		mover.Type = m.Promotion
	}
	mover.HasMoved = true
	sim.Place(mover, m.To)
	if m.Castle != board.NoCastle {
		_, _, rookFrom, rookTo := board.CastleSquares(mover.Color, m.Castle)
		if rook, ok := sim.Remove(rookFrom); ok {
			rook.HasMoved = true
			sim.Place(rook, rookTo)
		}
	}
	return sim
}
