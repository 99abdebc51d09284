package notation

import (
	"fmt"
	"strings"

	"chess-arbiter/board"
)

// LAN renders m in long algebraic notation: "e2-e4", "Bf1xe5", "e7-e8=Q".
func LAN(m board.Move, s *board.GameState) string {
	if m.Castle != board.NoCastle {
		return m.Castle.String() + checkSuffix(m, s)
	}
	var sb strings.Builder
	sb.WriteString(m.Piece.Type.Letter())
	sb.WriteString(m.From.String())
	if m.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != board.NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	sb.WriteString(checkSuffix(m, s))
	return sb.String()
}

// ParseLAN reads long algebraic text against s. The piece letter, when
// present, must name the piece that stands on the from square.
func ParseLAN(text string, s *board.GameState) (board.Move, error) {
	body := stripSuffix(text)
	switch body {
	case "O-O":
		return board.NewCastle(s, s.SideToMove, board.Kingside), nil
	case "O-O-O":
		return board.NewCastle(s, s.SideToMove, board.Queenside), nil
	}
	g := lanRe.FindStringSubmatch(body)
	if g == nil {
		return board.Move{}, fmt.Errorf("%w: lan %q", ErrSyntax, text)
	}
	from, to := board.MustSquare(g[2]), board.MustSquare(g[4])
	p, ok := s.Board.At(from)
	if !ok {
		return board.Move{}, fmt.Errorf("%w: no piece on %s", ErrNoMatch, from)
	}
	want := board.Pawn
	if g[1] != "" {
		want, _ = board.PieceTypeFromLetter(rune(g[1][0]))
	}
	if p.Type != want {
		return board.Move{}, fmt.Errorf("%w: %s is not a %s", ErrNoMatch, p, want)
	}
	promo := board.NoPieceType
	if g[5] != "" {
		promo, _ = board.PieceTypeFromLetter(rune(g[5][0]))
	}
	return board.NewMove(s, from, to, promo), nil
}

// Render fills all three machine encodings of m.
func Render(m board.Move, s *board.GameState) board.Notation {
	return board.Notation{SAN: SAN(m, s), LAN: LAN(m, s), UCI: UCI(m)}
}

// Parse accepts SAN, LAN or UCI, trying UCI first since it is the least
// ambiguous.
func Parse(text string, s *board.GameState) (board.Move, error) {
	trimmed := strings.TrimSpace(text)
	switch {
	case ValidUCI(trimmed):
		return ParseUCI(trimmed, s)
	case ValidLAN(trimmed) && !isCastle(stripSuffix(trimmed)):
		return ParseLAN(trimmed, s)
	case ValidSAN(trimmed):
		return ParseSAN(trimmed, s)
	}
	return board.Move{}, fmt.Errorf("%w: %q", ErrSyntax, text)
}
