// Package taxonomy holds the closed vocabularies the engine reasons with:
// the nine deontic operators, the fifteen chess rule types, the universal
// relation types they map onto and the agent states that describe each
// side's position under a rule.
//
// Every vocabulary is a closed enum. Switches over them end in a panic so a
// value added later without a case fails loudly instead of falling through.
package taxonomy

import (
	"fmt"

	"chess-arbiter/locale"
)

// Operator is one of the nine deontic operators recorded while a move or
// claim is evaluated.
type Operator uint8

const (
	// P: the act is permitted.
	P Operator = iota
	// O: the act is obligatory (a promotion choice, a check response).
	O
	// F: the act is forbidden.
	F
	// C: a claim to a special right is raised (castling, a draw).
	C
	// L: liberty, the holder may choose among options.
	L
	// W: a time window governs the right (en passant).
	W
	// B: the act is blocked by another piece.
	B
	// I: immunity, the own king must stay unexposed.
	I
	// D: disability, the power to act has been lost.
	D
)

// Operators lists every operator in canonical order.
var Operators = [...]Operator{P, O, F, C, L, W, B, I, D}

// Symbol is the one-letter form used in formulas.
func (o Operator) Symbol() string {
	switch o {
	case P:
		return "P"
	case O:
		return "O"
	case F:
		return "F"
	case C:
		return "C"
	case L:
		return "L"
	case W:
		return "W"
	case B:
		return "B"
	case I:
		return "I"
	case D:
		return "D"
	default:
		panic(fmt.Sprintf("taxonomy: unknown operator %d", uint8(o)))
	}
}

// Name is the operator's name in both languages.
func (o Operator) Name() locale.Text {
	switch o {
	case P:
		return locale.T("permission", "tillatelse")
	case O:
		return locale.T("obligation", "plikt")
	case F:
		return locale.T("prohibition", "forbud")
	case C:
		return locale.T("claim", "krav")
	case L:
		return locale.T("liberty", "frihet")
	case W:
		return locale.T("window", "vindu")
	case B:
		return locale.T("blocked", "blokkert")
	case I:
		return locale.T("immunity", "immunitet")
	case D:
		return locale.T("disability", "kompetansemangel")
	default:
		panic(fmt.Sprintf("taxonomy: unknown operator %d", uint8(o)))
	}
}

func (o Operator) String() string { return o.Symbol() }

// MarshalText encodes the symbol.
func (o Operator) MarshalText() ([]byte, error) { return []byte(o.Symbol()), nil }

// ParseOperator reads a one-letter symbol.
func ParseOperator(symbol string) (Operator, error) {
	for _, o := range Operators {
		if o.Symbol() == symbol {
			return o, nil
		}
	}
	return 0, fmt.Errorf("taxonomy: unknown operator %q", symbol)
}
