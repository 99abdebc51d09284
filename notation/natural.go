package notation

import (
	"fmt"
	"strings"
	"unicode"

	"chess-arbiter/board"
	"chess-arbiter/locale"
)

var pieceWords = map[locale.Locale]map[board.PieceType]string{
	locale.EN: {
		board.King: "king", board.Queen: "queen", board.Rook: "rook",
		board.Bishop: "bishop", board.Knight: "knight", board.Pawn: "pawn",
	},
	locale.NO: {
		board.King: "konge", board.Queen: "dronning", board.Rook: "tårn",
		board.Bishop: "løper", board.Knight: "springer", board.Pawn: "bonde",
	},
}

// Extra spellings accepted when parsing. Definite forms cover Norwegian
// speech ("springeren til f3").
var pieceAliases = map[locale.Locale]map[string]board.PieceType{
	locale.EN: {
		"kings": board.King, "queens": board.Queen, "rooks": board.Rook,
		"bishops": board.Bishop, "knights": board.Knight, "horse": board.Knight, "pawns": board.Pawn,
	},
	locale.NO: {
		"kongen": board.King, "dronningen": board.Queen, "tårnet": board.Rook, "taarn": board.Rook,
		"løperen": board.Bishop, "springeren": board.Knight, "hest": board.Knight, "bonden": board.Pawn,
	},
}

var colorWords = map[locale.Locale][2]string{
	locale.EN: {"white", "black"},
	locale.NO: {"hvit", "svart"},
}

var captureWords = map[string]bool{
	"takes": true, "captures": true, "capture": true, "take": true, "x": true,
	"slår": true, "tar": true, "slaar": true,
}

var promoteWords = map[string]bool{
	"promote": true, "promotes": true, "promoting": true, "promotion": true,
	"forvandler": true, "forvandles": true, "forvandling": true, "promoterer": true,
}

var (
	kingsideWords  = map[string]bool{"kingside": true, "short": true, "kort": true, "kort-rokade": true, "o-o": true, "0-0": true}
	queensideWords = map[string]bool{"queenside": true, "long": true, "lang": true, "langt": true, "o-o-o": true, "0-0-0": true}
	castleWords    = map[string]bool{"castle": true, "castles": true, "castling": true, "rokade": true, "rokerer": true, "rokér": true, "roker": true}
)

// PieceName returns the lower-case name of t in l.
func PieceName(t board.PieceType, l locale.Locale) string {
	if name, ok := pieceWords[l][t]; ok {
		return name
	}
	return t.String()
}

// ColorName returns the lower-case name of c in l.
func ColorName(c board.Color, l locale.Locale) string { return colorWords[l][c] }

// Describe renders m as a sentence in l, for example
// "white knight from g1 to f3" or "hvit springer fra g1 til f3".
func Describe(m board.Move, s *board.GameState, l locale.Locale) string {
	t := DescribeText(m, s)
	return t.In(l)
}

// DescribeText renders m in both languages.
func DescribeText(m board.Move, s *board.GameState) locale.Text {
	c := m.Piece.Color
	if m.Castle != board.NoCastle {
		t := locale.T(ColorName(c, locale.EN)+" castles kingside", ColorName(c, locale.NO)+" rokerer kort")
		if m.Castle == board.Queenside {
			t = locale.T(ColorName(c, locale.EN)+" castles queenside", ColorName(c, locale.NO)+" rokerer langt")
		}
		return locale.Join("", t, checkText(m, s))
	}
	parts := []locale.Text{locale.T(
		fmt.Sprintf("%s %s from %s to %s", ColorName(c, locale.EN), PieceName(m.Piece.Type, locale.EN), m.From, m.To),
		fmt.Sprintf("%s %s fra %s til %s", ColorName(c, locale.NO), PieceName(m.Piece.Type, locale.NO), m.From, m.To),
	)}
	if m.IsCapture() {
		parts = append(parts, locale.T(
			" capturing the "+PieceName(m.Captured, locale.EN),
			" og slår "+PieceName(m.Captured, locale.NO),
		))
	}
	if m.EnPassant {
		parts = append(parts, locale.T(" en passant", " en passant"))
	}
	if m.Promotion != board.NoPieceType {
		parts = append(parts, locale.T(
			", promoting to "+PieceName(m.Promotion, locale.EN),
			", forvandles til "+PieceName(m.Promotion, locale.NO),
		))
	}
	parts = append(parts, checkText(m, s))
	return locale.Join("", parts...)
}

func checkText(m board.Move, s *board.GameState) locale.Text {
	switch checkSuffix(m, s) {
	case "+":
		return locale.T(", check", ", sjakk")
	case "#":
		return locale.T(", checkmate", ", sjakkmatt")
	}
	return locale.Text{}
}

// ParseNatural resolves a spoken or typed move in l against s. It understands
// "knight to f3", "e2 to e4", "bishop takes e5", "castle kingside",
// "kort rokade", "springer til f3" and "e7 e8 forvandler til dronning".
func ParseNatural(text string, s *board.GameState, l locale.Locale) (board.Move, error) {
	words := tokenize(text)
	if len(words) == 0 {
		return board.Move{}, fmt.Errorf("%w: empty text", ErrSyntax)
	}

	castle, side := false, board.NoCastle
	var squares []board.Square
	piece, promo := board.NoPieceType, board.NoPieceType
	capture, promoting := false, false

	for _, w := range words {
		switch {
		case castleWords[w]:
			castle = true
		case kingsideWords[w]:
			side = board.Kingside
		case queensideWords[w]:
			side = board.Queenside
		case captureWords[w]:
			capture = true
		case promoteWords[w]:
			promoting = true
		case ValidSquare(w):
			squares = append(squares, board.MustSquare(w))
		default:
			t, ok := lookupPiece(w, l)
			if !ok {
				continue
			}
			if promoting {
				promo = t
			} else if piece == board.NoPieceType {
				piece = t
			}
		}
	}
	if side != board.NoCastle && len(squares) == 0 {
		castle = true
	}

	if castle && len(squares) == 0 {
		if side == board.NoCastle {
			return board.Move{}, fmt.Errorf("%w: castling side missing in %q", ErrSyntax, text)
		}
		return board.NewCastle(s, s.SideToMove, side), nil
	}

	switch len(squares) {
	case 2:
		p, ok := s.Board.At(squares[0])
		if !ok {
			return board.Move{}, fmt.Errorf("%w: no piece on %s", ErrNoMatch, squares[0])
		}
		if piece != board.NoPieceType && p.Type != piece {
			return board.Move{}, fmt.Errorf("%w: %s is not a %s", ErrNoMatch, p, PieceName(piece, l))
		}
		return board.NewMove(s, squares[0], squares[1], promo), nil
	case 1:
		q := query{piece: piece, to: squares[0], file: -1, rank: -1, capture: capture, promo: promo}
		if piece == board.NoPieceType {
			q.piece = board.Pawn
		}
		return q.resolve(s, text)
	}
	return board.Move{}, fmt.Errorf("%w: %q", ErrSyntax, text)
}

func lookupPiece(w string, l locale.Locale) (board.PieceType, bool) {
	for t, name := range pieceWords[l] {
		if name == w {
			return t, true
		}
	}
	if t, ok := pieceAliases[l][w]; ok {
		return t, true
	}
	return board.NoPieceType, false
}

// tokenize lower-cases text and splits it on anything that is not a letter,
// digit or hyphen. Hyphens survive only inside castling tokens, so "e2-e4"
// becomes two squares.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if kingsideWords[f] || queensideWords[f] {
			out = append(out, f)
			continue
		}
		for _, part := range strings.Split(f, "-") {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
