// Package board holds the position model: squares, pieces, the 8x8 board,
// moves and the game state that owns them.
package board

import "fmt"

// Color is the side that owns a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseColor accepts "white", "black", "w" and "b".
func ParseColor(text string) (Color, error) {
	switch text {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("board: unknown colour %q", text)
}

// Forward is the rank direction pawns of this colour advance in.
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank is the rank the king and rooks start on.
func (c Color) HomeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PawnRank is the rank pawns start on.
func (c Color) PawnRank() int {
	if c == White {
		return 2
	}
	return 7
}

// PromotionRank is the farthest rank for a pawn of this colour.
func (c Color) PromotionRank() int {
	if c == White {
		return 8
	}
	return 1
}

// PieceType is a colourless piece kind.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type in SAN order of value.
var PieceTypes = [...]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// PromotionTypes lists the pieces a pawn may become, most common first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the English name of the piece type.
func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

func (t PieceType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Letter returns the SAN letter of the piece type; pawns have none.
func (t PieceType) Letter() string {
	switch t {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Slider reports whether the piece moves along open lines.
func (t PieceType) Slider() bool {
	return t == Bishop || t == Rook || t == Queen
}

// PieceTypeFromLetter maps a SAN/FEN letter (either case) to a piece type.
func PieceTypeFromLetter(ch rune) (PieceType, bool) {
	switch ch {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return NoPieceType, false
	}
}

// Piece is plain value data. The zero value is "no piece".
// Square and HasMoved only change through Board.Place and Apply.
type Piece struct {
	Type     PieceType
	Color    Color
	Square   Square
	HasMoved bool
}

// NewPiece returns an unmoved piece of the given kind standing on sq.
func NewPiece(t PieceType, c Color, sq Square) Piece {
	return Piece{Type: t, Color: c, Square: sq}
}

// IsZero reports whether p is the empty value.
func (p Piece) IsZero() bool { return p.Type == NoPieceType }

// Is reports whether p has the given colour and type.
func (p Piece) Is(c Color, t PieceType) bool { return p.Type == t && p.Color == c }

// String produces e.g. "white knight on g1".
func (p Piece) String() string {
	if p.IsZero() {
		return "empty"
	}
	return fmt.Sprintf("%s %s on %s", p.Color, p.Type, p.Square)
}

// FENChar returns the FEN letter for the piece (upper case for white).
func (p Piece) FENChar() rune {
	var ch rune
	switch p.Type {
	case Pawn:
		ch = 'p'
	case Knight:
		ch = 'n'
	case Bishop:
		ch = 'b'
	case Rook:
		ch = 'r'
	case Queen:
		ch = 'q'
	case King:
		ch = 'k'
	default:
		return '?'
	}
	if p.Color == White {
		ch -= 'a' - 'A'
	}
	return ch
}

// pieceFromFEN converts a FEN letter into type and colour.
func pieceFromFEN(ch rune) (PieceType, Color, bool) {
	t, ok := PieceTypeFromLetter(ch)
	if !ok {
		return NoPieceType, White, false
	}
	if ch >= 'a' && ch <= 'z' {
		return t, Black, true
	}
	return t, White, true
}
