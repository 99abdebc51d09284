package notation

import (
	"fmt"
	"strings"

	"chess-arbiter/board"
	"chess-arbiter/rules"
)

// SAN renders m in standard algebraic notation for position s, with the
// minimal disambiguation and a "+" or "#" suffix.
func SAN(m board.Move, s *board.GameState) string {
	return sanBody(m, s) + checkSuffix(m, s)
}

func sanBody(m board.Move, s *board.GameState) string {
	if m.Castle != board.NoCastle {
		return m.Castle.String()
	}
	var sb strings.Builder
	if m.Piece.Type == board.Pawn {
		if m.IsCapture() {
			sb.WriteByte(m.From.FileLetter())
		}
	} else {
		sb.WriteString(m.Piece.Type.Letter())
		sb.WriteString(disambiguation(m, s))
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != board.NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}

// disambiguation returns "", the file, the rank or both, whichever is the
// least that separates m from other legal moves of the same piece type to
// the same square.
func disambiguation(m board.Move, s *board.GameState) string {
	var rivals []board.Square
	for _, o := range rules.LegalMoves(m.Piece.Color, s) {
		if o.To == m.To && o.From != m.From && o.Piece.Type == m.Piece.Type {
			rivals = append(rivals, o.From)
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.File() == m.From.File() {
			sameFile = true
		}
		if r.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(m.From.FileLetter())
	case !sameRank:
		return string(byte('0' + m.From.Rank()))
	default:
		return m.From.String()
	}
}

// checkSuffix plays m and reports "+", "#" or "".
func checkSuffix(m board.Move, s *board.GameState) string {
	if !s.Board.Occupied(m.From) {
		return ""
	}
	next := board.Apply(s, m)
	them := next.SideToMove
	if !rules.InCheck(them, next) {
		return ""
	}
	if rules.HasLegalMove(them, next) {
		return "+"
	}
	return "#"
}

// ParseSAN resolves SAN text against s. It tolerates "0-0", trailing
// "+#!?" and a promotion written without "=".
func ParseSAN(text string, s *board.GameState) (board.Move, error) {
	body := stripSuffix(text)
	side := s.SideToMove
	switch body {
	case "O-O":
		return board.NewCastle(s, side, board.Kingside), nil
	case "O-O-O":
		return board.NewCastle(s, side, board.Queenside), nil
	}
	g := sanRe.FindStringSubmatch(body)
	if g == nil {
		return board.Move{}, fmt.Errorf("%w: san %q", ErrSyntax, text)
	}
	q := query{
		piece: board.Pawn,
		to:    board.MustSquare(g[5]),
		file:  -1,
		rank:  -1,
	}
	if g[1] != "" {
		q.piece, _ = board.PieceTypeFromLetter(rune(g[1][0]))
	}
	if g[2] != "" {
		q.file = int(g[2][0]-'a') + 1
	}
	if g[3] != "" {
		q.rank = int(g[3][0] - '0')
	}
	q.capture = g[4] != ""
	if g[6] != "" {
		q.promo, _ = board.PieceTypeFromLetter(rune(g[6][0]))
	}
	if q.piece == board.Pawn && q.capture && q.file < 0 {
		return board.Move{}, fmt.Errorf("%w: pawn capture without file %q", ErrSyntax, text)
	}
	return q.resolve(s, text)
}

// query is a partially specified move: what SAN and natural text leave
// after parsing.
type query struct {
	piece   board.PieceType
	to      board.Square
	file    int
	rank    int
	capture bool
	promo   board.PieceType
}

func (q query) matches(p board.Piece) bool {
	if p.Type != q.piece {
		return false
	}
	if q.file > 0 && p.Square.File() != q.file {
		return false
	}
	if q.rank > 0 && p.Square.Rank() != q.rank {
		return false
	}
	return true
}

// resolve prefers legal moves. When none match it falls back to pieces whose
// movement pattern fits, so illegal but unambiguous text still yields a move.
func (q query) resolve(s *board.GameState, text string) (board.Move, error) {
	var legal []board.Move
	for _, m := range rules.LegalMoves(s.SideToMove, s) {
		if m.To != q.to || m.Castle != board.NoCastle || !q.matches(m.Piece) {
			continue
		}
		if q.capture && !m.IsCapture() {
			continue
		}
		if m.Promotion != q.promo && !(q.promo == board.NoPieceType && m.Promotion == board.Queen) {
			continue
		}
		legal = append(legal, m)
	}
	switch len(legal) {
	case 1:
		m := legal[0]
		// A missing promotion piece stays missing; it never becomes a queen.
		m.Promotion = q.promo
		return m, nil
	case 0:
	default:
		return board.Move{}, fmt.Errorf("%w: %q", ErrAmbiguous, text)
	}

	var found []board.Piece
	for _, p := range s.Board.Pieces(s.SideToMove) {
		if !q.matches(p) {
			continue
		}
		if rules.Pattern(p.Type, p.Color, p.Square.DeltaTo(q.to)) {
			found = append(found, p)
		}
	}
	switch len(found) {
	case 0:
		return board.Move{}, fmt.Errorf("%w: %q", ErrNoMatch, text)
	case 1:
		return board.NewMove(s, found[0].Square, q.to, q.promo), nil
	default:
		return board.Move{}, fmt.Errorf("%w: %q", ErrAmbiguous, text)
	}
}
