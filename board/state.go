package board

import (
	"fmt"
	"strings"
)

// CastlingRights holds the four independent castling flags. Rights can only
// be revoked; ParseFEN is the only place that sets them.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Has reports whether colour c still holds the right for side.
func (r CastlingRights) Has(c Color, side CastleSide) bool {
	switch {
	case c == White && side == Kingside:
		return r.WhiteKingside
	case c == White && side == Queenside:
		return r.WhiteQueenside
	case c == Black && side == Kingside:
		return r.BlackKingside
	case c == Black && side == Queenside:
		return r.BlackQueenside
	}
	return false
}

// Revoke clears one right.
func (r *CastlingRights) Revoke(c Color, side CastleSide) {
	switch {
	case c == White && side == Kingside:
		r.WhiteKingside = false
	case c == White && side == Queenside:
		r.WhiteQueenside = false
	case c == Black && side == Kingside:
		r.BlackKingside = false
	case c == Black && side == Queenside:
		r.BlackQueenside = false
	}
}

// RevokeColor clears both rights of colour c.
func (r *CastlingRights) RevokeColor(c Color) {
	r.Revoke(c, Kingside)
	r.Revoke(c, Queenside)
}

// String renders the FEN castling field.
func (r CastlingRights) String() string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// GameState is one position plus the history that led to it.
// MoveHistory and PositionHistory are append-only; PositionHistory starts with
// the key of the setup position and gains one key per ply.
type GameState struct {
	Board           Board
	SideToMove      Color
	Castling        CastlingRights
	EnPassant       Square
	HalfMoveClock   int
	FullMoveNumber  int
	MoveHistory     []Move
	PositionHistory []string
}

// Clone returns a deep copy that shares nothing with s.
func (s *GameState) Clone() *GameState {
	c := *s
	c.MoveHistory = append([]Move(nil), s.MoveHistory...)
	c.PositionHistory = append([]string(nil), s.PositionHistory...)
	return &c
}

// Ply is the number of half-moves played since setup.
func (s *GameState) Ply() int { return len(s.MoveHistory) }

// LastMove returns the most recent move, if any.
func (s *GameState) LastMove() (Move, bool) {
	if len(s.MoveHistory) == 0 {
		return Move{}, false
	}
	return s.MoveHistory[len(s.MoveHistory)-1], true
}

// NewGame returns the standard starting position.
func NewGame() *GameState {
	return MustParseFEN(StartFEN)
}

// Validate is the position-validity predicate. The engine never builds an
// invalid position; callers use this to reject foreign input.
func Validate(s *GameState) error {
	if s == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidPosition)
	}
	for _, c := range [...]Color{White, Black} {
		if n := s.Board.Count(c, King); n != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInvalidPosition, c, n)
		}
	}
	for i, p := range s.Board.squares {
		if p.IsZero() {
			continue
		}
		if p.Square != Square(i) {
			return fmt.Errorf("%w: %s stored at %s", ErrInvalidPosition, p, Square(i))
		}
		if p.Type == Pawn && (p.Square.Rank() == 1 || p.Square.Rank() == 8) {
			return fmt.Errorf("%w: pawn on back rank %s", ErrInvalidPosition, p.Square)
		}
	}
	if s.EnPassant != NoSquare {
		if !s.EnPassant.Valid() {
			return fmt.Errorf("%w: en passant square off board", ErrInvalidPosition)
		}
		want := 6
		if s.SideToMove == Black {
			want = 3
		}
		if s.EnPassant.Rank() != want {
			return fmt.Errorf("%w: en passant square %s on wrong rank", ErrInvalidPosition, s.EnPassant)
		}
	}
	return nil
}
