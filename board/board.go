package board

import "errors"

var (
	ErrInvalidSquare   = errors.New("invalid square")
	ErrInvalidFEN      = errors.New("invalid FEN")
	ErrInvalidPosition = errors.New("invalid position")
)

// Board maps each of the 64 squares to an optional piece. Pieces are stored
// by value, so copying a Board yields an independent board.
type Board struct {
	squares [64]Piece
}

// At returns the piece on sq, if any.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq]
	return p, !p.IsZero()
}

// Occupied reports whether a piece stands on sq.
func (b *Board) Occupied(sq Square) bool {
	_, ok := b.At(sq)
	return ok
}

// Place puts p on sq, overwriting whatever stood there, and keeps p.Square in
// sync with its location. It panics on an off-board square.
func (b *Board) Place(p Piece, sq Square) {
	if !sq.Valid() {
		panic("board.Place: square off board")
	}
	p.Square = sq
	b.squares[sq] = p
}

// Remove clears sq and returns what was there.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.At(sq)
	if ok {
		b.squares[sq] = Piece{}
	}
	return p, ok
}

// Relocate moves the piece on from to to, marks it as moved and returns any
// piece that stood on to. It panics when from is empty.
func (b *Board) Relocate(from, to Square) (Piece, bool) {
	p, ok := b.Remove(from)
	if !ok {
		panic("board.Relocate: empty source square " + from.String())
	}
	captured, hit := b.Remove(to)
	p.HasMoved = true
	b.Place(p, to)
	return captured, hit
}

// Pieces returns the pieces of one colour in square order.
func (b *Board) Pieces(c Color) []Piece {
	out := make([]Piece, 0, 16)
	for _, p := range b.squares {
		if !p.IsZero() && p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// All returns every piece in square order.
func (b *Board) All() []Piece {
	out := make([]Piece, 0, 32)
	for _, p := range b.squares {
		if !p.IsZero() {
			out = append(out, p)
		}
	}
	return out
}

// King returns the first king of colour c.
func (b *Board) King(c Color) (Piece, bool) {
	for _, p := range b.squares {
		if p.Is(c, King) {
			return p, true
		}
	}
	return Piece{}, false
}

// Count returns how many pieces of the given colour and type stand on the board.
func (b *Board) Count(c Color, t PieceType) int {
	n := 0
	for _, p := range b.squares {
		if p.Is(c, t) {
			n++
		}
	}
	return n
}
