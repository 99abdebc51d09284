package temporal

import "chess-arbiter/board"

// EnPassantWindow is the right opened by the double push at history[pushPly].
// It is released by the very next ply, whatever that ply is.
func EnPassantWindow(pushPly int) Window[board.Move] {
	return Window[board.Move]{Open: pushPly, Closes: True[board.Move]}
}

// EnPassantTarget derives the en-passant square from move history alone.
func EnPassantTarget(history []board.Move) (board.Square, bool) {
	last := len(history) - 1
	for i := last; i >= 0; i-- {
		m := history[i]
		if !m.IsDoublePush() {
			continue
		}
		if !EnPassantWindow(i).HoldsAt(history, last) {
			return board.NoSquare, false
		}
		return board.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2), true
	}
	return board.NoSquare, false
}

// CastlingWindow is the castling power of colour c towards side, held from
// the start of the trace until the king or that rook first moves or the rook
// is captured on its home square.
func CastlingWindow(c board.Color, side board.CastleSide) Window[board.Move] {
	kingHome, _, rookHome, _ := board.CastleSquares(c, side)
	return Window[board.Move]{
		Open: -1,
		Closes: func(m board.Move) bool {
			if m.Piece.Color == c && m.From == kingHome {
				return true
			}
			return m.From == rookHome || m.To == rookHome
		},
	}
}

// CastlingPower reports whether colour c still has castling power towards
// side after history, assuming it had it at setup. The half-move clock plays
// no part.
func CastlingPower(history []board.Move, c board.Color, side board.CastleSide) bool {
	w := CastlingWindow(c, side)
	if len(history) == 0 {
		return true
	}
	return w.HoldsAt(history, len(history)-1)
}
