// Package rules implements the chess predicates: per-piece movement,
// attack and development, the special moves, and whole-position queries
// such as check, legal-move enumeration and game termination.
//
// Every function is a pure function of its arguments. States passed in are
// never mutated; what-if simulation works on copies.
package rules

import "chess-arbiter/board"

// Reach is the outcome of CanReach. PatternValid is purely geometric,
// PathClear covers the squares strictly between from and to, and Permitted
// folds in occupancy of the destination and the pawn special cases.
type Reach struct {
	Permitted    bool
	PatternValid bool
	PathClear    bool
}

// Pattern reports whether a piece of type t and colour c may ever move by
// displacement d on an empty board. It depends on nothing else.
func Pattern(t board.PieceType, c board.Color, d board.Delta) bool {
	a := d.Abs()
	switch t {
	case board.King:
		return d.Chebyshev() == 1
	case board.Queen:
		return d.Diagonal() || d.Orthogonal()
	case board.Rook:
		return d.Orthogonal()
	case board.Bishop:
		return d.Diagonal()
	case board.Knight:
		return (a.File == 1 && a.Rank == 2) || (a.File == 2 && a.Rank == 1)
	case board.Pawn:
		fwd := c.Forward()
		if d.File == 0 {
			return d.Rank == fwd || d.Rank == 2*fwd
		}
		return a.File == 1 && d.Rank == fwd
	case board.NoPieceType:
		return false
	default:
		panic("rules.Pattern: unknown piece type")
	}
}

// CanReach decides whether piece p standing on from may move to to in s,
// ignoring king safety.
func CanReach(p board.Piece, from, to board.Square, s *board.GameState) Reach {
	if p.IsZero() || !from.Valid() || !to.Valid() {
		return Reach{}
	}
	d := from.DeltaTo(to)
	r := Reach{PatternValid: Pattern(p.Type, p.Color, d), PathClear: true}
	if !r.PatternValid {
		return r
	}
	target, occupied := s.Board.At(to)
	if occupied && target.Color == p.Color {
		return r
	}

	if p.Type == board.Pawn {
		r.Permitted, r.PathClear = pawnReach(p, from, to, d, occupied, s)
		return r
	}
	if p.Type.Slider() {
		r.PathClear = lineClear(&s.Board, from, to)
	}
	r.Permitted = r.PathClear
	return r
}

func pawnReach(p board.Piece, from, to board.Square, d board.Delta, occupied bool, s *board.GameState) (permitted, pathClear bool) {
	fwd := p.Color.Forward()
	switch {
	case d.File == 0 && d.Rank == fwd:
		return !occupied, true
	case d.File == 0 && d.Rank == 2*fwd:
		mid := from.Offset(0, fwd)
		pathClear = !s.Board.Occupied(mid)
		onStart := from.Rank() == p.Color.PawnRank() && !p.HasMoved
		return onStart && pathClear && !occupied, pathClear
	default:
		// Diagonal: only as a capture, en passant included.
		return occupied || (to == s.EnPassant && s.EnPassant.Valid()), true
	}
}

// lineClear reports whether every square strictly between from and to is empty.
func lineClear(b *board.Board, from, to board.Square) bool {
	for _, sq := range board.Between(from, to) {
		if b.Occupied(sq) {
			return false
		}
	}
	return true
}
