package engine

import (
	"strconv"

	"chess-arbiter/board"
	"chess-arbiter/events"
	"chess-arbiter/locale"
	"chess-arbiter/rules"
	"chess-arbiter/taxonomy"
)

// ClaimResult answers a draw claim. Count is the repetition count for the
// threefold rule; MovesCount is the number of moves by each side for the
// fifty-move rule.
type ClaimResult struct {
	CanClaim    bool                `json:"canClaim"`
	Count       int                 `json:"count,omitempty"`
	MovesCount  int                 `json:"movesCount,omitempty"`
	Operators   []taxonomy.Operator `json:"operators"`
	Formula     string              `json:"formula"`
	RType       taxonomy.RType      `json:"rtype"`
	Rule        taxonomy.RuleID     `json:"rule"`
	Explanation locale.Text         `json:"explanation"`
	Citation    Citation            `json:"citation"`
}

// CanClaimThreefold reports whether the player to move may claim a draw by
// repetition. It never ends the game; see EvaluateTermination for the
// automatic fivefold rule.
func (e *Engine) CanClaimThreefold(s *board.GameState) ClaimResult {
	checkState("claim", s)
	c := rules.CanClaimThreefold(s)
	n := strconv.Itoa(c.Count)
	var why locale.Text
	if c.CanClaim {
		why = locale.Sprintf(locale.T("The position has occurred %s times; a draw may be claimed.",
			"Stillingen har oppstått %s ganger; det kan kreves remis."), n)
	} else {
		why = locale.Sprintf(locale.T("The position has occurred %s time(s); three are needed to claim a draw.",
			"Stillingen har oppstått %s gang(er); det kreves tre for å kreve remis."), n)
	}
	res := claim(c.CanClaim, taxonomy.RuleThreefold, pred("rep="+n), why)
	res.Count = c.Count
	e.log.Debug().Bool("can_claim", res.CanClaim).Int("count", res.Count).Msg("threefold claim")
	e.emit(events.KindClaim, res.RType, s.SideToMove, s, res.CanClaim)
	return res
}

// CanClaimFiftyMove reports whether fifty moves by each side have passed
// without a pawn move or capture.
func (e *Engine) CanClaimFiftyMove(s *board.GameState) ClaimResult {
	checkState("claim", s)
	c := rules.CanClaimFiftyMove(s)
	n := strconv.Itoa(c.Count)
	var why locale.Text
	if c.CanClaim {
		why = locale.Sprintf(locale.T("%s moves by each side without a pawn move or capture; a draw may be claimed.",
			"%s trekk av hver spiller uten bondetrekk eller slag; det kan kreves remis."), n)
	} else {
		why = locale.Sprintf(locale.T("Only %s moves by each side without a pawn move or capture; fifty are needed.",
			"Bare %s trekk av hver spiller uten bondetrekk eller slag; det kreves femti."), n)
	}
	res := claim(c.CanClaim, taxonomy.RuleFiftyMove, pred("clock="+strconv.Itoa(s.HalfMoveClock)), why)
	res.MovesCount = c.Count
	e.log.Debug().Bool("can_claim", res.CanClaim).Int("moves", res.MovesCount).Msg("fifty-move claim")
	e.emit(events.KindClaim, res.RType, s.SideToMove, s, res.CanClaim)
	return res
}

func claim(ok bool, rule taxonomy.RuleID, fact clause, why locale.Text) ClaimResult {
	verdict := op(taxonomy.D, "claim")
	if ok {
		verdict = op(taxonomy.L, "claim")
	}
	j := judge(verdict, op(taxonomy.C, "draw"), fact)
	return ClaimResult{
		CanClaim:    ok,
		Operators:   j.operators(),
		Formula:     j.formula(),
		RType:       taxonomy.ClassifyRule(rule),
		Rule:        rule,
		Explanation: why,
		Citation:    cite(rule),
	}
}

// Adjudicate is the verdict that ends the game once a claim is made good.
// It panics when the claim cannot be made.
func (c ClaimResult) Adjudicate() TerminationResult {
	if !c.CanClaim {
		panic("engine: adjudicating a claim that cannot be made")
	}
	r := rules.ThreefoldClaim
	if c.Rule == taxonomy.RuleFiftyMove {
		r = rules.FiftyMoveClaim
	}
	out := rules.Claimed(r)
	return TerminationResult{
		Terminated:  out.Terminated,
		Result:      out.Result,
		Winner:      out.Winner,
		Operators:   c.Operators,
		Formula:     c.Formula,
		RType:       c.RType,
		Universal:   taxonomy.Map(c.RType),
		Rule:        c.Rule,
		Explanation: c.Explanation,
		Citation:    c.Citation,
	}
}
