package engine

import (
	"strconv"

	"chess-arbiter/board"
	"chess-arbiter/events"
	"chess-arbiter/locale"
	"chess-arbiter/rules"
	"chess-arbiter/taxonomy"
)

// TerminationResult is the verdict of EvaluateTermination and FlagFall.
// An ongoing game still carries a formula, explanation and citation.
type TerminationResult struct {
	Terminated  bool                `json:"terminated"`
	Result      rules.Result        `json:"result"`
	Winner      rules.Winner        `json:"winner"`
	Operators   []taxonomy.Operator `json:"operators"`
	Formula     string              `json:"formula"`
	RType       taxonomy.RType      `json:"rtype"`
	Universal   taxonomy.Image      `json:"universal"`
	Rule        taxonomy.RuleID     `json:"rule"`
	Explanation locale.Text         `json:"explanation"`
	Citation    Citation            `json:"citation"`
}

// EvaluateTermination applies the automatic ending rules to s: checkmate,
// stalemate, fivefold repetition, the seventy-five-move rule and dead
// positions, in that order.
func (e *Engine) EvaluateTermination(s *board.GameState) TerminationResult {
	checkState("termination", s)
	out := rules.Termination(s)
	res := terminationResult(out, s)
	e.log.Debug().
		Bool("terminated", res.Terminated).
		Stringer("result", res.Result).
		Stringer("winner", res.Winner).
		Msg("termination")
	e.emit(events.KindTermination, res.RType, s.SideToMove, s, res.Terminated)
	return res
}

// FlagFall is the verdict when flagged runs out of time in s.
func (e *Engine) FlagFall(flagged board.Color, s *board.GameState) TerminationResult {
	checkState("flag-fall", s)
	out := rules.FlagFall(flagged, s)
	play := op(taxonomy.F, "play")
	flag := pred("flag=" + flagged.String())
	var j judgement
	var why locale.Text
	if out.Result == rules.TimeoutVsInsufficientMaterial {
		j = judge(play, flag, op(taxonomy.D, "mate"))
		why = fill(locale.T(
			"%s ran out of time, but the opponent has only a king and cannot mate. The game is drawn.",
			"%s gikk tom for tid, men motstanderen har bare kongen og kan ikke sette matt. Partiet er remis."),
			capitalize(colorName(flagged)))
	} else {
		j = judge(play, flag)
		why = fill(locale.T("%s ran out of time. %s wins.", "%s gikk tom for tid. %s vinner."),
			capitalize(colorName(flagged)), capitalize(colorName(flagged.Opposite())))
	}
	res := finish(out, taxonomy.RuleFlagFall, j, why)
	e.log.Debug().Stringer("flagged", flagged).Stringer("result", res.Result).Msg("flag fall")
	e.emit(events.KindFlagFall, res.RType, flagged, s, true)
	return res
}

func terminationResult(out rules.Outcome, s *board.GameState) TerminationResult {
	play := op(taxonomy.F, "play")
	noMove := op(taxonomy.D, "move")
	switch out.Result {
	case rules.Ongoing:
		return finish(out, taxonomy.RuleTurnOrder, judge(op(taxonomy.P, "play")),
			fill(locale.T("The game continues. %s is to move.", "Partiet fortsetter. %s er i trekket."),
				capitalize(colorName(s.SideToMove))))
	case rules.Checkmate:
		return finish(out, taxonomy.RuleCheckmate,
			judge(play, op(taxonomy.O, "escape-check"), noMove),
			fill(locale.T("Checkmate. %s is in check with no legal move; %s wins.",
				"Sjakkmatt. %s står i sjakk uten lovlige trekk; %s vinner."),
				capitalize(colorName(s.SideToMove)), capitalize(colorName(s.SideToMove.Opposite()))))
	case rules.Stalemate:
		return finish(out, taxonomy.RuleStalemate,
			judge(play, not(pred("check")), noMove),
			fill(locale.T("Stalemate. %s has no legal move but is not in check. The game is drawn.",
				"Patt. %s har ingen lovlige trekk, men står ikke i sjakk. Partiet er remis."),
				capitalize(colorName(s.SideToMove))))
	case rules.FivefoldRepetition:
		n := strconv.Itoa(rules.RepetitionCount(s))
		return finish(out, taxonomy.RuleFivefold,
			judge(play, pred("rep="+n)),
			locale.Sprintf(locale.T("The same position has occurred %s times. The game is drawn automatically.",
				"Samme stilling har oppstått %s ganger. Partiet er automatisk remis."), n))
	case rules.SeventyFiveMoveRule:
		n := strconv.Itoa(s.HalfMoveClock / 2)
		return finish(out, taxonomy.RuleSeventyFiveMove,
			judge(play, pred("clock="+strconv.Itoa(s.HalfMoveClock))),
			locale.Sprintf(locale.T("%s moves by each side without a pawn move or capture. The game is drawn automatically.",
				"%s trekk av hver spiller uten bondetrekk eller slag. Partiet er automatisk remis."), n))
	case rules.InsufficientMaterial:
		return finish(out, taxonomy.RuleDeadPosition,
			judge(play, op(taxonomy.D, "mate")),
			locale.T("Neither side has enough material to checkmate. The game is drawn.",
				"Ingen av spillerne har nok materiell til å sette matt. Partiet er remis."))
	default:
		panic("engine: unexpected termination result " + out.Result.String())
	}
}

func finish(out rules.Outcome, rule taxonomy.RuleID, j judgement, why locale.Text) TerminationResult {
	rt := taxonomy.ClassifyRule(rule)
	return TerminationResult{
		Terminated:  out.Terminated,
		Result:      out.Result,
		Winner:      out.Winner,
		Operators:   j.operators(),
		Formula:     j.formula(),
		RType:       rt,
		Universal:   taxonomy.Map(rt),
		Rule:        rule,
		Explanation: why,
		Citation:    cite(rule),
	}
}
