package engine

import (
	"strings"

	"chess-arbiter/board"
	"chess-arbiter/taxonomy"
)

// clause is one term of a formula. A clause without an operator is a plain
// predicate such as "rep=5"; it shows in the formula but not in the
// operator sequence.
type clause struct {
	op     taxonomy.Operator
	arg    string
	plain  bool
	negate bool
}

func op(o taxonomy.Operator, arg string) clause { return clause{op: o, arg: arg} }

func pred(text string) clause { return clause{arg: text, plain: true} }

func not(c clause) clause {
	c.negate = true
	return c
}

func (c clause) String() string {
	var sb strings.Builder
	if c.negate {
		sb.WriteString("¬")
	}
	if c.plain {
		sb.WriteString(c.arg)
		return sb.String()
	}
	sb.WriteString(c.op.Symbol())
	sb.WriteByte('(')
	sb.WriteString(c.arg)
	sb.WriteByte(')')
	return sb.String()
}

// judgement is premises entailing a verdict. Operators and the formula text
// both derive from it, so they cannot disagree.
type judgement struct {
	premises []clause
	verdict  clause
}

func judge(verdict clause, premises ...clause) judgement {
	return judgement{premises: premises, verdict: verdict}
}

func (j judgement) operators() []taxonomy.Operator {
	out := make([]taxonomy.Operator, 0, len(j.premises)+1)
	for _, c := range j.premises {
		if !c.plain {
			out = append(out, c.op)
		}
	}
	return append(out, j.verdict.op)
}

// formula renders "C(O-O) ∧ B(f1) ⊢ F(O-O)", or just the verdict when
// nothing led up to it.
func (j judgement) formula() string {
	if len(j.premises) == 0 {
		return j.verdict.String()
	}
	parts := make([]string, len(j.premises))
	for i, c := range j.premises {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ∧ ") + " ⊢ " + j.verdict.String()
}

// act names a move inside a formula: "O-O", "e2e4", "Ng1f3".
func act(m board.Move) string {
	if m.Castle != board.NoCastle {
		return m.Castle.String()
	}
	return m.Piece.Type.Letter() + m.String()
}

func squares(sqs []board.Square) string {
	parts := make([]string, len(sqs))
	for i, sq := range sqs {
		parts[i] = sq.String()
	}
	return strings.Join(parts, ",")
}
