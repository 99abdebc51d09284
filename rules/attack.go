package rules

import "chess-arbiter/board"

// Attacks reports whether piece p attacks target. It follows CanReach except
// that pawns attack both forward diagonals whatever stands there, and a
// square held by p's own side still counts as attacked.
func Attacks(p board.Piece, target board.Square, s *board.GameState) bool {
	return attacks(&s.Board, p, target)
}

func attacks(b *board.Board, p board.Piece, target board.Square) bool {
	if p.IsZero() || !target.Valid() || p.Square == target {
		return false
	}
	d := p.Square.DeltaTo(target)
	if p.Type == board.Pawn {
		return d.Rank == p.Color.Forward() && (d.File == 1 || d.File == -1)
	}
	if !Pattern(p.Type, p.Color, d) {
		return false
	}
	if p.Type.Slider() {
		return lineClear(b, p.Square, target)
	}
	return true
}

// Attackers lists the pieces of colour by that attack sq, in square order.
func Attackers(sq board.Square, by board.Color, s *board.GameState) []board.Piece {
	return attackers(&s.Board, sq, by)
}

func attackers(b *board.Board, sq board.Square, by board.Color) []board.Piece {
	var out []board.Piece
	for _, p := range b.Pieces(by) {
		if attacks(b, p, sq) {
			out = append(out, p)
		}
	}
	return out
}

// SquareAttacked reports whether any piece of colour by attacks sq.
func SquareAttacked(sq board.Square, by board.Color, s *board.GameState) bool {
	return attacked(&s.Board, sq, by)
}

func attacked(b *board.Board, sq board.Square, by board.Color) bool {
	for _, p := range b.Pieces(by) {
		if attacks(b, p, sq) {
			return true
		}
	}
	return false
}
