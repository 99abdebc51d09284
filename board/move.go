package board

// CastleSide names the wing a king castles towards.
type CastleSide uint8

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns "O-O", "O-O-O" or "".
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

func (s CastleSide) MarshalText() ([]byte, error) {
	if s == NoCastle {
		return []byte("none"), nil
	}
	return []byte(s.String()), nil
}

// CastleSquares returns king and rook squares before and after castling.
func CastleSquares(c Color, side CastleSide) (kingFrom, kingTo, rookFrom, rookTo Square) {
	r := c.HomeRank()
	kingFrom = NewSquare(5, r)
	if side == Queenside {
		return kingFrom, NewSquare(3, r), NewSquare(1, r), NewSquare(4, r)
	}
	return kingFrom, NewSquare(7, r), NewSquare(8, r), NewSquare(6, r)
}

// Notation carries rendered encodings of a move; empty until rendered.
type Notation struct {
	SAN string `json:"san"`
	LAN string `json:"lan"`
	UCI string `json:"uci"`
}

// Move is a proposal to move Piece from From to To. It never mutates a
// GameState by itself; see Apply.
type Move struct {
	Piece     Piece
	From      Square
	To        Square
	Captured  PieceType
	Promotion PieceType
	Castle    CastleSide
	EnPassant bool
	Notation  Notation
}

// IsCapture reports whether the move removes an opposing piece.
func (m Move) IsCapture() bool { return m.Captured != NoPieceType || m.EnPassant }

// IsDoublePush reports a two-square pawn advance.
func (m Move) IsDoublePush() bool {
	return m.Piece.Type == Pawn && m.From.File() == m.To.File() && abs(m.To.Rank()-m.From.Rank()) == 2
}

// Same compares the from/to/promotion identity of two moves.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// String is a compact coordinate form ("e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(Piece{Type: m.Promotion, Color: Black}.FENChar())
	}
	return s
}

// NewMove fills a proposal from the pieces on s: the mover, any capture and
// the castling / en-passant flags. An empty from square yields a move with a
// zero Piece, which the engine treats as a caller bug.
func NewMove(s *GameState, from, to Square, promotion PieceType) Move {
	m := Move{From: from, To: to, Promotion: promotion}
	p, ok := s.Board.At(from)
	if !ok {
		return m
	}
	m.Piece = p
	if target, hit := s.Board.At(to); hit && target.Color != p.Color {
		m.Captured = target.Type
	}
	switch p.Type {
	case King:
		if d := from.DeltaTo(to); d.Rank == 0 && abs(d.File) == 2 {
			if d.File > 0 {
				m.Castle = Kingside
			} else {
				m.Castle = Queenside
			}
		}
	case Pawn:
		d := from.DeltaTo(to)
		if abs(d.File) == 1 && to == s.EnPassant && !s.Board.Occupied(to) {
			m.EnPassant = true
			m.Captured = Pawn
		}
	}
	return m
}

// NewCastle builds the king move for castling on side. When c's king is not
// on its home square the move still names that king, marked as moved, so the
// castling checks can say why it fails.
func NewCastle(s *GameState, c Color, side CastleSide) Move {
	kf, kt, _, _ := CastleSquares(c, side)
	m := NewMove(s, kf, kt, NoPieceType)
	if !m.Piece.Is(c, King) {
		m = Move{From: kf, To: kt, Piece: Piece{Type: King, Color: c, Square: kf, HasMoved: true}}
		if target, hit := s.Board.At(kt); hit && target.Color != c {
			m.Captured = target.Type
		}
	}
	m.Castle = side
	return m
}
