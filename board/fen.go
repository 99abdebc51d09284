package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a fresh GameState with empty move history
// and the setup position as the first history key. The half-move and
// full-move fields are optional and default to 0 and 1.
func ParseFEN(fen string) (*GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}
	s := &GameState{EnPassant: NoSquare, FullMoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rankStr := range ranks {
		rank := 8 - i
		file := 1
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			t, c, ok := pieceFromFEN(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if file > 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank)
			}
			sq := NewSquare(file, rank)
			s.Board.Place(NewPiece(t, c, sq), sq)
			file++
		}
		if file != 9 {
			return nil, fmt.Errorf("%w: rank %d does not have 8 columns", ErrInvalidFEN, rank)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		s.SideToMove = White
	case "b":
		s.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				s.Castling.WhiteKingside = true
			case 'Q':
				s.Castling.WhiteQueenside = true
			case 'k':
				s.Castling.BlackKingside = true
			case 'q':
				s.Castling.BlackQueenside = true
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square: %v", ErrInvalidFEN, err)
		}
		s.EnPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: halfmove clock is not a number", ErrInvalidFEN)
		}
		s.HalfMoveClock = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: fullmove number is not a number", ErrInvalidFEN)
		}
		s.FullMoveNumber = n
	}

	markMoved(s)
	s.PositionHistory = []string{Key(s)}
	return s, nil
}

// MustParseFEN is ParseFEN for constants; it panics on error.
func MustParseFEN(fen string) *GameState {
	s, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return s
}

// markMoved derives HasMoved, which FEN does not carry. Kings and rooks count
// as unmoved only when a castling right still needs them.
func markMoved(s *GameState) {
	for i := range s.Board.squares {
		p := &s.Board.squares[i]
		if p.IsZero() {
			continue
		}
		sq := p.Square
		switch p.Type {
		case Pawn:
			p.HasMoved = sq.Rank() != p.Color.PawnRank()
		case King:
			kingHome, _, _, _ := CastleSquares(p.Color, Kingside)
			p.HasMoved = sq != kingHome || !(s.Castling.Has(p.Color, Kingside) || s.Castling.Has(p.Color, Queenside))
		case Rook:
			p.HasMoved = true
			for _, side := range [...]CastleSide{Kingside, Queenside} {
				if _, _, home, _ := CastleSquares(p.Color, side); sq == home && s.Castling.Has(p.Color, side) {
					p.HasMoved = false
				}
			}
		default:
			p.HasMoved = !onSetupSquare(*p)
		}
	}
}

func onSetupSquare(p Piece) bool {
	if p.Square.Rank() != p.Color.HomeRank() {
		return false
	}
	switch p.Type {
	case Knight:
		return p.Square.File() == 2 || p.Square.File() == 7
	case Bishop:
		return p.Square.File() == 3 || p.Square.File() == 6
	case Queen:
		return p.Square.File() == 4
	}
	return false
}

// placement renders the FEN piece-placement field.
func (b *Board) placement() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			p, ok := b.At(NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN renders the full six-field FEN string.
func (s *GameState) FEN() string {
	side := "w"
	if s.SideToMove == Black {
		side = "b"
	}
	return strings.Join([]string{
		s.Board.placement(),
		side,
		s.Castling.String(),
		s.EnPassant.String(),
		strconv.Itoa(s.HalfMoveClock),
		strconv.Itoa(s.FullMoveNumber),
	}, " ")
}
