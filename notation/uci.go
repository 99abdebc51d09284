// Package notation renders and re-reads moves as SAN, long algebraic, UCI
// and a constrained natural-language form in English and Norwegian.
//
// Parsers resolve text to a move; they do not decide legality. A well-formed
// but illegal move still parses when its piece can be identified, so the
// engine can explain why it is rejected.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"chess-arbiter/board"
)

var (
	ErrSyntax    = errors.New("notation: syntax error")
	ErrNoMatch   = errors.New("notation: no matching move")
	ErrAmbiguous = errors.New("notation: ambiguous move")
)

// UCI renders m as "e2e4" or "e7e8q". Castling is the king's move.
func UCI(m board.Move) string { return m.String() }

// ParseUCI reads a UCI move string against s.
func ParseUCI(text string, s *board.GameState) (board.Move, error) {
	text = strings.TrimSpace(text)
	if !ValidUCI(text) {
		return board.Move{}, fmt.Errorf("%w: uci %q", ErrSyntax, text)
	}
	from := board.MustSquare(text[0:2])
	to := board.MustSquare(text[2:4])
	promo := board.NoPieceType
	if len(text) == 5 {
		promo, _ = board.PieceTypeFromLetter(rune(text[4]))
	}
	if !s.Board.Occupied(from) {
		return board.Move{}, fmt.Errorf("%w: no piece on %s", ErrNoMatch, from)
	}
	return board.NewMove(s, from, to, promo), nil
}
