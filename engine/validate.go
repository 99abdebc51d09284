package engine

import (
	"errors"
	"fmt"

	"chess-arbiter/board"
	"chess-arbiter/events"
	"chess-arbiter/locale"
	"chess-arbiter/notation"
	"chess-arbiter/rules"
	"chess-arbiter/taxonomy"
)

// Failure names the first rule a rejected move broke.
type Failure uint8

const (
	NoFailure Failure = iota
	WrongTurn
	IllegalPattern
	OwnPieceOnTarget
	PathBlocked
	PawnNeedsCapture
	DoublePushUnavailable
	ExposesKing
	PromotionMissing
	PromotionInvalid
	PromotionNotAllowed
	CastlingDenied
	EnPassantDenied
)

func (f Failure) String() string {
	switch f {
	case NoFailure:
		return "none"
	case WrongTurn:
		return "wrong-turn"
	case IllegalPattern:
		return "illegal-pattern"
	case OwnPieceOnTarget:
		return "own-piece-on-target"
	case PathBlocked:
		return "path-blocked"
	case PawnNeedsCapture:
		return "pawn-needs-capture"
	case DoublePushUnavailable:
		return "double-push-unavailable"
	case ExposesKing:
		return "exposes-king"
	case PromotionMissing:
		return "promotion-missing"
	case PromotionInvalid:
		return "promotion-invalid"
	case PromotionNotAllowed:
		return "promotion-not-allowed"
	case CastlingDenied:
		return "castling-denied"
	case EnPassantDenied:
		return "en-passant-denied"
	default:
		panic(fmt.Sprintf("engine: unknown failure %d", uint8(f)))
	}
}

func (f Failure) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// Result is the verdict on one move. RType and Universal are set only for
// valid moves; a rejected move never reaches classification.
type Result struct {
	Valid       bool                  `json:"valid"`
	Operators   []taxonomy.Operator   `json:"operators"`
	Formula     string                `json:"formula"`
	RType       *taxonomy.RType       `json:"rtype"`
	Universal   *taxonomy.Image       `json:"universal,omitempty"`
	Rule        taxonomy.RuleID       `json:"rule"`
	Failure     Failure               `json:"failure"`
	Castling    *rules.Castling       `json:"castling,omitempty"`
	EnPassant   *rules.EnPassantCheck `json:"enPassant,omitempty"`
	Blockers    []board.Square        `json:"blockers,omitempty"`
	Explanation locale.Text           `json:"explanation"`
	Citation    Citation              `json:"citation"`
	Notation    board.Notation        `json:"notation"`
	Move        board.Move            `json:"-"`
}

// Validate decides whether m is legal in s. Rule violations come back as a
// Result with Valid false. A state with a wrong king count, a square off the
// board or a move from an empty square panics with a *Fault. A castle whose
// king has left home is not a fault; it is denied with KingMoved.
//
// The checks run in order and stop at the first failure: turn, the castling
// or en-passant sub-validator when the move is one, reachability, king
// safety and the promotion obligation.
func (e *Engine) Validate(m board.Move, s *board.GameState) Result {
	checkState("validate", s)
	m = normalize(m, s)

	res := validate(m, s)
	res.Move = m
	if res.Valid {
		res.Notation = notation.Render(m, s)
	} else {
		res.Notation = board.Notation{UCI: notation.UCI(m)}
	}

	attempted := taxonomy.Classify(m, s)
	e.log.Debug().
		Str("move", m.String()).
		Bool("valid", res.Valid).
		Stringer("rtype", attempted).
		Stringer("failure", res.Failure).
		Str("formula", res.Formula).
		Msg("validate")
	e.emit(events.KindMove, attempted, m.Piece.Color, s, res.Valid)
	return res
}

// ValidateText parses text in any supported notation and validates it. Text
// that reads as SAN, LAN or UCI but names no single move keeps that parser's
// error; only text none of them accept is tried as natural language.
func (e *Engine) ValidateText(text string, s *board.GameState, l locale.Locale) (Result, error) {
	checkState("validate", s)
	m, err := notation.Parse(text, s)
	if errors.Is(err, notation.ErrSyntax) {
		m, err = notation.ParseNatural(text, s, l)
	}
	if err != nil {
		return Result{}, err
	}
	return e.Validate(m, s), nil
}

// normalize faults on structural problems and rebuilds the capture, castle
// and en-passant flags from the board so callers cannot mislabel a move.
func normalize(m board.Move, s *board.GameState) board.Move {
	if !m.From.Valid() || !m.To.Valid() {
		fault("validate", fmt.Errorf("%w: %s-%s", board.ErrInvalidSquare, m.From, m.To))
	}
	if m.Castle != board.NoCastle && m.Piece.Type == board.King {
		kingFrom, kingTo, _, _ := board.CastleSquares(m.Piece.Color, m.Castle)
		if at, ok := s.Board.At(m.From); m.From == kingFrom && m.To == kingTo && !(ok && at.Is(m.Piece.Color, board.King)) {
			// The king has left home; keep the castle so validateCastle reports it.
			return board.NewCastle(s, m.Piece.Color, m.Castle)
		}
	}
	at, ok := s.Board.At(m.From)
	if !ok {
		fault("validate", fmt.Errorf("%w: %s", ErrEmptySource, m.From))
	}
	if !m.Piece.IsZero() && (m.Piece.Type != at.Type || m.Piece.Color != at.Color) {
		fault("validate", fmt.Errorf("%w: %s claimed, %s on %s", ErrPieceMismatch, m.Piece.Type, at, m.From))
	}
	n := board.NewMove(s, m.From, m.To, m.Promotion)
	if n.Castle != board.NoCastle {
		kingFrom, kingTo, _, _ := board.CastleSquares(at.Color, n.Castle)
		if m.From != kingFrom || m.To != kingTo {
			n.Castle = board.NoCastle
		}
	}
	return n
}

func validate(m board.Move, s *board.GameState) Result {
	p := m.Piece
	a := act(m)

	if p.Color != s.SideToMove {
		return reject(WrongTurn, taxonomy.RuleTurnOrder,
			judge(op(taxonomy.F, a), pred("turn="+s.SideToMove.String())),
			explainWrongTurn(p, s.SideToMove))
	}

	if m.Castle != board.NoCastle {
		return validateCastle(m, s)
	}
	if m.EnPassant || looksLikeEnPassant(m, s) {
		return validateEnPassant(m, s)
	}

	rule := moveRule(m, s)
	reach := rules.CanReach(p, m.From, m.To, s)
	if !reach.Permitted {
		return rejectReach(m, s, reach, rule)
	}

	if rules.WouldExposeCheck(m, s) {
		king, _ := s.Board.King(p.Color)
		r := reject(ExposesKing, rule,
			judge(op(taxonomy.F, a), op(taxonomy.I, "K@"+king.Square.String())),
			explainExposes(m, s))
		r.Citation = exposeCitation
		return r
	}

	promo := rules.PromotionRequired(p, m.To)
	switch {
	case promo.Required && m.Promotion == board.NoPieceType:
		return reject(PromotionMissing, taxonomy.RulePromotion,
			judge(op(taxonomy.F, a), op(taxonomy.O, "promote@"+m.To.String())),
			explainPromotionMissing(m))
	case promo.Required && !rules.PromotionPiece(m.Promotion):
		return reject(PromotionInvalid, taxonomy.RulePromotion,
			judge(op(taxonomy.F, a), op(taxonomy.O, "promote@"+m.To.String()), not(op(taxonomy.L, m.Promotion.Letter()))),
			explainPromotionInvalid(m))
	case !promo.Required && m.Promotion != board.NoPieceType:
		return reject(PromotionNotAllowed, rule,
			judge(op(taxonomy.F, a), not(pred("promote@"+m.To.String()))),
			explainPromotionNotAllowed(m))
	case promo.Required:
		return accept(m, s, taxonomy.RulePromotion,
			judge(op(taxonomy.P, a), op(taxonomy.O, "promote@"+m.To.String()), op(taxonomy.L, m.Promotion.Letter())))
	}
	return accept(m, s, rule, judge(op(taxonomy.P, a)))
}

// rejectReach explains why CanReach said no.
func rejectReach(m board.Move, s *board.GameState, reach rules.Reach, rule taxonomy.RuleID) Result {
	p := m.Piece
	a := act(m)
	target, occupied := s.Board.At(m.To)
	switch {
	case !reach.PatternValid:
		return reject(IllegalPattern, patternRule(p.Type),
			judge(op(taxonomy.F, a), not(pred("pattern("+m.From.DeltaTo(m.To).String()+")"))),
			explainPattern(m))
	case occupied && target.Color == p.Color:
		r := reject(OwnPieceOnTarget, rule,
			judge(op(taxonomy.F, a), pred("own@"+m.To.String())),
			explainOwnPiece(m, target))
		r.Citation = ownPieceCitation
		return r
	}

	if p.Type != board.Pawn {
		blockers := blockersBetween(m.From, m.To, s)
		r := reject(PathBlocked, rule,
			judge(op(taxonomy.F, a), op(taxonomy.B, squares(blockers))),
			explainBlocked(m, blockers))
		r.Blockers = blockers
		r.Citation = flyOverCitation
		return r
	}

	d := m.From.DeltaTo(m.To)
	switch {
	case d.File != 0:
		return reject(PawnNeedsCapture, taxonomy.RulePawnCapture,
			judge(op(taxonomy.F, a), not(pred("capture@"+m.To.String()))),
			explainPawnNeedsCapture(m))
	case !reach.PathClear || occupied:
		blockers := blockersBetween(m.From, m.To, s)
		if occupied {
			blockers = append(blockers, m.To)
		}
		r := reject(PathBlocked, rule,
			judge(op(taxonomy.F, a), op(taxonomy.B, squares(blockers))),
			explainBlocked(m, blockers))
		r.Blockers = blockers
		return r
	default:
		// A double push from anywhere but the start rank: the privilege is gone.
		return reject(DoublePushUnavailable, taxonomy.RulePawnDoublePush,
			judge(op(taxonomy.F, a), op(taxonomy.D, "double-push")),
			explainDoublePushGone(m))
	}
}

func blockersBetween(from, to board.Square, s *board.GameState) []board.Square {
	var out []board.Square
	for _, sq := range board.Between(from, to) {
		if s.Board.Occupied(sq) {
			out = append(out, sq)
		}
	}
	return out
}

func validateCastle(m board.Move, s *board.GameState) Result {
	c := m.Piece.Color
	ca := rules.CanCastle(m.Castle, c, s)
	a := act(m)
	claim := op(taxonomy.C, a)
	if ca.Allowed {
		r := accept(m, s, taxonomy.RuleCastling, judge(op(taxonomy.P, a), claim))
		r.Castling = &ca
		return r
	}

	premises := []clause{claim}
	add := func(o taxonomy.Operator, arg string) {
		for i := range premises {
			if !premises[i].plain && premises[i].op == o {
				premises[i].arg += "," + arg
				return
			}
		}
		premises = append(premises, op(o, arg))
	}
	for _, cc := range ca.Conditions {
		if cc.Passed {
			continue
		}
		switch cc.Condition {
		case rules.KingMoved, rules.RookMoved, rules.RightRevoked:
			add(taxonomy.D, cc.Condition.String())
		case rules.KingInCheck:
			add(taxonomy.I, "check")
		case rules.PathBlocked:
			add(taxonomy.B, squares(cc.Squares))
		case rules.PathAttacked:
			add(taxonomy.I, squares(cc.Squares))
		default:
			panic(fmt.Sprintf("engine: unknown castling condition %d", uint8(cc.Condition)))
		}
	}
	r := reject(CastlingDenied, taxonomy.RuleCastling,
		judge(op(taxonomy.F, a), premises...),
		explainCastlingDenied(ca, s))
	r.Castling = &ca
	return r
}

// looksLikeEnPassant catches a diagonal pawn step onto an empty square
// beside an enemy pawn: an en-passant attempt, whether or not the window is
// still open.
func looksLikeEnPassant(m board.Move, s *board.GameState) bool {
	p := m.Piece
	if p.Type != board.Pawn || s.Board.Occupied(m.To) {
		return false
	}
	d := m.From.DeltaTo(m.To)
	if (d.File != 1 && d.File != -1) || d.Rank != p.Color.Forward() {
		return false
	}
	victim, ok := s.Board.At(board.NewSquare(m.To.File(), m.From.Rank()))
	return ok && victim.Is(p.Color.Opposite(), board.Pawn)
}

func validateEnPassant(m board.Move, s *board.GameState) Result {
	ep := rules.EnPassant(m.To, m.Piece, s)
	a := act(m)
	window := op(taxonomy.W, m.To.String())
	if !ep.Valid {
		j := judge(op(taxonomy.F, a), window)
		if ep.Reason == rules.NoTarget || ep.Reason == rules.TargetMismatch {
			j = judge(op(taxonomy.F, a), window, op(taxonomy.D, "expired"))
		}
		r := reject(EnPassantDenied, taxonomy.RuleEnPassant, j, explainEnPassantDenied(m, ep, s))
		r.EnPassant = &ep
		return r
	}
	m.EnPassant = true
	m.Captured = board.Pawn
	if rules.WouldExposeCheck(m, s) {
		king, _ := s.Board.King(m.Piece.Color)
		r := reject(ExposesKing, taxonomy.RuleEnPassant,
			judge(op(taxonomy.F, a), window, op(taxonomy.I, "K@"+king.Square.String())),
			explainExposes(m, s))
		r.EnPassant = &ep
		r.Citation = exposeCitation
		return r
	}
	r := accept(m, s, taxonomy.RuleEnPassant, judge(op(taxonomy.P, a), window))
	r.EnPassant = &ep
	return r
}

func reject(f Failure, rule taxonomy.RuleID, j judgement, why locale.Text) Result {
	return Result{
		Operators:   j.operators(),
		Formula:     j.formula(),
		Rule:        rule,
		Failure:     f,
		Explanation: why,
		Citation:    cite(rule),
	}
}

func accept(m board.Move, s *board.GameState, rule taxonomy.RuleID, j judgement) Result {
	rt := taxonomy.Classify(m, s)
	img := taxonomy.Map(rt)
	return Result{
		Valid:       true,
		Operators:   j.operators(),
		Formula:     j.formula(),
		RType:       &rt,
		Universal:   &img,
		Rule:        rule,
		Explanation: explainValid(m, s, rt),
		Citation:    cite(rule),
	}
}

// moveRule names the movement rule a move falls under, matching Classify.
func moveRule(m board.Move, s *board.GameState) taxonomy.RuleID {
	switch taxonomy.Classify(m, s) {
	case taxonomy.CompoundMove:
		return taxonomy.RuleCastling
	case taxonomy.TemporalWindow:
		return taxonomy.RuleEnPassant
	case taxonomy.Transformation:
		return taxonomy.RulePromotion
	case taxonomy.InitialPrivilege:
		return taxonomy.RulePawnDoublePush
	case taxonomy.CaptureOnly:
		return taxonomy.RulePawnCapture
	case taxonomy.AdvanceOnly:
		return taxonomy.RulePawnAdvance
	default:
		return patternRule(m.Piece.Type)
	}
}

func patternRule(t board.PieceType) taxonomy.RuleID {
	switch t {
	case board.King:
		return taxonomy.RuleKingMove
	case board.Queen:
		return taxonomy.RuleQueenMove
	case board.Rook:
		return taxonomy.RuleRookMove
	case board.Bishop:
		return taxonomy.RuleBishopMove
	case board.Knight:
		return taxonomy.RuleKnightMove
	case board.Pawn:
		return taxonomy.RulePawnAdvance
	default:
		return taxonomy.RuleTurnOrder
	}
}
