package taxonomy

import (
	"fmt"

	"chess-arbiter/locale"
)

// AgentState labels one side's degree of discretion under a rule.
type AgentState uint8

const (
	FullDiscretion AgentState = iota
	BoundedDiscretion
	ConditionalDiscretion
	MandatoryAction
	MandatoryPassivity
	ExposedVulnerability
	NoAgency
)

// AgentStates lists every agent state.
var AgentStates = [...]AgentState{
	FullDiscretion, BoundedDiscretion, ConditionalDiscretion, MandatoryAction,
	MandatoryPassivity, ExposedVulnerability, NoAgency,
}

func (a AgentState) Key() string {
	switch a {
	case FullDiscretion:
		return "full-discretion"
	case BoundedDiscretion:
		return "bounded-discretion"
	case ConditionalDiscretion:
		return "conditional-discretion"
	case MandatoryAction:
		return "mandatory-action"
	case MandatoryPassivity:
		return "mandatory-passivity"
	case ExposedVulnerability:
		return "exposed-vulnerability"
	case NoAgency:
		return "no-agency"
	default:
		panic(fmt.Sprintf("taxonomy: unknown agent state %d", uint8(a)))
	}
}

func (a AgentState) Label() locale.Text {
	switch a {
	case FullDiscretion:
		return locale.T("full discretion", "fullt skjønn")
	case BoundedDiscretion:
		return locale.T("bounded discretion", "begrenset skjønn")
	case ConditionalDiscretion:
		return locale.T("conditional discretion", "betinget skjønn")
	case MandatoryAction:
		return locale.T("mandatory action", "pliktig handling")
	case MandatoryPassivity:
		return locale.T("mandatory passivity", "pliktig passivitet")
	case ExposedVulnerability:
		return locale.T("exposed vulnerability", "utsatt sårbarhet")
	case NoAgency:
		return locale.T("no agency", "ingen handlingsrom")
	default:
		panic(fmt.Sprintf("taxonomy: unknown agent state %d", uint8(a)))
	}
}

func (a AgentState) String() string { return a.Key() }

func (a AgentState) MarshalText() ([]byte, error) { return []byte(a.Key()), nil }
