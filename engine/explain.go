package engine

import (
	"fmt"
	"strconv"
	"strings"

	"chess-arbiter/board"
	"chess-arbiter/locale"
	"chess-arbiter/notation"
	"chess-arbiter/rules"
	"chess-arbiter/taxonomy"
	"chess-arbiter/temporal"
)

// Norwegian definite forms, used where a sentence names a known piece.
var definiteNO = map[board.PieceType]string{
	board.King: "kongen", board.Queen: "dronningen", board.Rook: "tårnet",
	board.Bishop: "løperen", board.Knight: "springeren", board.Pawn: "bonden",
}

func pieceName(t board.PieceType) locale.Text {
	return locale.T(notation.PieceName(t, locale.EN), notation.PieceName(t, locale.NO))
}

// indefinite is "a knight" / "en springer".
func indefinite(t board.PieceType) locale.Text {
	article := "en "
	if t == board.Rook {
		article = "et "
	}
	return locale.T("a "+notation.PieceName(t, locale.EN), article+notation.PieceName(t, locale.NO))
}

// definite is "the knight" / "springeren".
func definite(t board.PieceType) locale.Text {
	return locale.T("the "+notation.PieceName(t, locale.EN), definiteNO[t])
}

func colorName(c board.Color) locale.Text {
	return locale.T(notation.ColorName(c, locale.EN), notation.ColorName(c, locale.NO))
}

// capitalize upper-cases the first letter in both languages.
func capitalize(t locale.Text) locale.Text {
	up := func(s string) string {
		if s == "" {
			return s
		}
		r := []rune(s)
		return strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return locale.T(up(t.EN), up(t.NO))
}

// fill substitutes each placeholder with the text in the matching language.
func fill(tmpl locale.Text, args ...locale.Text) locale.Text {
	en := make([]any, len(args))
	no := make([]any, len(args))
	for i, a := range args {
		en[i], no[i] = a.EN, a.NO
	}
	return locale.T(fmt.Sprintf(tmpl.EN, en...), fmt.Sprintf(tmpl.NO, no...))
}

func plain(s string) locale.Text { return locale.T(s, s) }

func explainValid(m board.Move, s *board.GameState, rt taxonomy.RType) locale.Text {
	parts := []locale.Text{
		fill(locale.T("Legal: %s.", "Lovlig: %s."), notation.DescribeText(m, s)),
		fill(locale.T("Rule type: %s.", "Regeltype: %s."), rt.Label()),
	}
	before := rules.IsDeveloped(m.Piece)
	after := m.Piece
	after.Square = m.To
	if m.Piece.Type == board.Knight || m.Piece.Type == board.Bishop {
		if dev := rules.IsDeveloped(after); dev.Developed && !before.Developed {
			parts = append(parts, capitalize(fill(locale.T("%s is developed.", "%s er utviklet."), definite(m.Piece.Type))))
		}
	}
	return locale.Join(" ", parts...)
}

func explainWrongTurn(p board.Piece, toMove board.Color) locale.Text {
	return fill(locale.T("It is %s's turn to move, not %s's.", "Det er %s sitt trekk, ikke %s sitt."),
		colorName(toMove), colorName(p.Color))
}

func explainExposes(m board.Move, s *board.GameState) locale.Text {
	king, _ := s.Board.King(m.Piece.Color)
	c := colorName(m.Piece.Color)
	return locale.T(
		"The move would leave the "+c.EN+" king on "+king.Square.String()+" in check.",
		"Trekket ville latt den "+c.NO+"e kongen på "+king.Square.String()+" stå i sjakk.")
}

func explainPromotionMissing(m board.Move) locale.Text {
	sq := plain(m.To.String())
	return fill(locale.T(
		"A pawn reaching %s must promote. Choose a queen, rook, bishop or knight.",
		"En bonde som når %s må forvandles. Velg dronning, tårn, løper eller springer."), sq)
}

func explainPromotionInvalid(m board.Move) locale.Text {
	return fill(locale.T("A pawn cannot promote to %s.", "En bonde kan ikke forvandles til %s."), pieceName(m.Promotion))
}

func explainPromotionNotAllowed(m board.Move) locale.Text {
	return fill(locale.T(
		"Only a pawn reaching the last rank may promote; %s is not one.",
		"Bare en bonde som når siste rad kan forvandles; %s er ikke det."), plain(m.From.String()+"-"+m.To.String()))
}

func explainPattern(m board.Move) locale.Text {
	return capitalize(fill(locale.T("%s cannot move from %s to %s.", "%s kan ikke flytte fra %s til %s."),
		indefinite(m.Piece.Type), plain(m.From.String()), plain(m.To.String())))
}

func explainOwnPiece(m board.Move, target board.Piece) locale.Text {
	return fill(locale.T("%s is occupied by your own %s.", "%s er besatt av egen %s."),
		plain(m.To.String()), pieceName(target.Type))
}

func explainBlocked(m board.Move, blockers []board.Square) locale.Text {
	return capitalize(fill(locale.T(
		"%s cannot get from %s to %s: %s is in the way.",
		"%s kommer ikke fra %s til %s: %s står i veien."),
		definite(m.Piece.Type), plain(m.From.String()), plain(m.To.String()), plain(squares(blockers))))
}

func explainPawnNeedsCapture(m board.Move) locale.Text {
	return fill(locale.T(
		"A pawn moves diagonally only to capture, and %s is empty.",
		"En bonde flytter bare diagonalt når den slår, og %s er tomt."), plain(m.To.String()))
}

func explainDoublePushGone(m board.Move) locale.Text {
	return fill(locale.T(
		"The two-square advance is only available from the starting square; the pawn on %s has already moved.",
		"Dobbeltrinnet er bare tillatt fra startfeltet; bonden på %s har allerede flyttet."), plain(m.From.String()))
}

func conditionText(cc rules.ConditionCheck) locale.Text {
	switch cc.Condition {
	case rules.KingMoved:
		return locale.T("the king has already moved", "kongen har allerede flyttet")
	case rules.RookMoved:
		return locale.T("the rook has already moved", "tårnet har allerede flyttet")
	case rules.RightRevoked:
		return locale.T("the castling right has been lost", "rokaderetten er tapt")
	case rules.KingInCheck:
		return locale.T("the king is in check", "kongen står i sjakk")
	case rules.PathBlocked:
		return fill(locale.T("%s must be empty", "%s må være tomme"), plain(squares(cc.Squares)))
	case rules.PathAttacked:
		return fill(locale.T("the king would cross or land on attacked squares %s", "kongen må passere eller lande på angrepne felt %s"),
			plain(squares(cc.Squares)))
	default:
		panic("engine: unknown castling condition")
	}
}

func explainCastlingDenied(ca rules.Castling, s *board.GameState) locale.Text {
	var reasons []locale.Text
	for _, cc := range ca.Conditions {
		if !cc.Passed {
			reasons = append(reasons, conditionText(cc))
		}
	}
	out := fill(locale.T("Castling %s is not allowed: %s.", "Rokade %s er ikke tillatt: %s."),
		plain(ca.Side.String()), locale.Join("; ", reasons...))
	if ply, ok := temporal.CastlingWindow(ca.Color, ca.Side).ClosedAt(s.MoveHistory); ok {
		out = locale.Join(" ", out, fill(locale.T("The right was lost on ply %s.", "Retten gikk tapt i halvtrekk %s."), plain(strconv.Itoa(ply+1))))
	}
	return out
}

func explainEnPassantDenied(m board.Move, ep rules.EnPassantCheck, s *board.GameState) locale.Text {
	switch ep.Reason {
	case rules.NoTarget, rules.TargetMismatch:
		out := locale.T(
			"The en passant right has expired. It exists only on the ply right after the two-square advance.",
			"Retten til en passant er utløpt. Den gjelder bare i trekket rett etter dobbeltrinnet.")
		if open, closed, ok := enPassantWindow(m.To, s.MoveHistory); ok {
			out = locale.Join(" ", out, fill(locale.T(
				"It opened on ply %s and closed on ply %s.",
				"Den åpnet i halvtrekk %s og lukket i halvtrekk %s."), plain(strconv.Itoa(open+1)), plain(strconv.Itoa(closed+1))))
		}
		return out
	case rules.WrongRank:
		return locale.T("The capturing pawn must stand beside the pawn that just advanced.",
			"Bonden som slår må stå ved siden av bonden som nettopp gikk to felt.")
	case rules.NotAdjacentFile:
		return locale.T("En passant is only possible from an adjacent file.",
			"En passant er bare mulig fra en nabolinje.")
	case rules.NoVictim:
		return locale.T("There is no pawn to capture en passant.", "Det finnes ingen bonde å slå en passant.")
	case rules.NotAPawn:
		return locale.T("Only a pawn can capture en passant.", "Bare en bonde kan slå en passant.")
	default:
		return locale.T("En passant is not available.", "En passant er ikke tilgjengelig.")
	}
}

// enPassantWindow finds the double push that passed over target and the ply
// that closed its window.
func enPassantWindow(target board.Square, history []board.Move) (open, closed int, ok bool) {
	for i := len(history) - 1; i >= 0; i-- {
		m := history[i]
		if !m.IsDoublePush() || board.NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2) != target {
			continue
		}
		closed, ok = temporal.EnPassantWindow(i).ClosedAt(history)
		return i, closed, ok
	}
	return 0, 0, false
}
