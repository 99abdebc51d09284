package taxonomy

import (
	"fmt"

	"chess-arbiter/locale"
)

// RType is the relational category of a chess rule.
type RType uint8

const (
	CompoundMove RType = iota
	TemporalWindow
	Transformation
	InitialPrivilege
	CaptureOnly
	AdvanceOnly
	DiscreteJump
	SafetyConstrained
	RayMovement
	Conditional
	ThreatResponse
	TerminalCondition
	HistoryDependent
	CounterThreshold
	MaterialCondition
)

// RTypes lists every chess R-type.
var RTypes = [...]RType{
	CompoundMove, TemporalWindow, Transformation, InitialPrivilege, CaptureOnly,
	AdvanceOnly, DiscreteJump, SafetyConstrained, RayMovement, Conditional,
	ThreatResponse, TerminalCondition, HistoryDependent, CounterThreshold, MaterialCondition,
}

// Key is the stable identifier of r.
func (r RType) Key() string {
	switch r {
	case CompoundMove:
		return "compound-move"
	case TemporalWindow:
		return "temporal-window"
	case Transformation:
		return "transformation"
	case InitialPrivilege:
		return "initial-privilege"
	case CaptureOnly:
		return "capture-only"
	case AdvanceOnly:
		return "advance-only"
	case DiscreteJump:
		return "discrete-jump"
	case SafetyConstrained:
		return "safety-constrained"
	case RayMovement:
		return "ray-movement"
	case Conditional:
		return "conditional"
	case ThreatResponse:
		return "threat-response"
	case TerminalCondition:
		return "terminal-condition"
	case HistoryDependent:
		return "history-dependent"
	case CounterThreshold:
		return "counter-threshold"
	case MaterialCondition:
		return "material-condition"
	default:
		panic(fmt.Sprintf("taxonomy: unknown rtype %d", uint8(r)))
	}
}

// Label is the human name of r.
func (r RType) Label() locale.Text {
	switch r {
	case CompoundMove:
		return locale.T("compound move", "sammensatt trekk")
	case TemporalWindow:
		return locale.T("temporal window", "tidsvindu")
	case Transformation:
		return locale.T("transformation", "forvandling")
	case InitialPrivilege:
		return locale.T("initial privilege", "startprivilegium")
	case CaptureOnly:
		return locale.T("capture only", "kun slag")
	case AdvanceOnly:
		return locale.T("advance only", "kun fremrykk")
	case DiscreteJump:
		return locale.T("discrete jump", "diskret hopp")
	case SafetyConstrained:
		return locale.T("safety constrained", "sikkerhetsbegrenset")
	case RayMovement:
		return locale.T("ray movement", "linjebevegelse")
	case Conditional:
		return locale.T("conditional", "betinget")
	case ThreatResponse:
		return locale.T("threat response", "trusselrespons")
	case TerminalCondition:
		return locale.T("terminal condition", "sluttilstand")
	case HistoryDependent:
		return locale.T("history dependent", "historieavhengig")
	case CounterThreshold:
		return locale.T("counter threshold", "tellergrense")
	case MaterialCondition:
		return locale.T("material condition", "materiellbetingelse")
	default:
		panic(fmt.Sprintf("taxonomy: unknown rtype %d", uint8(r)))
	}
}

func (r RType) String() string { return r.Key() }

// MarshalText encodes the key.
func (r RType) MarshalText() ([]byte, error) { return []byte(r.Key()), nil }

// ParseRType reads a key produced by Key.
func ParseRType(key string) (RType, error) {
	for _, r := range RTypes {
		if r.Key() == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("taxonomy: unknown rtype %q", key)
}
