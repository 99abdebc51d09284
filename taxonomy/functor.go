package taxonomy

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ToRType maps a chess R-type onto the universal taxonomy. The mapping is
// total and many-to-one.
func ToRType(r RType) UniversalRType {
	switch r {
	case CompoundMove:
		return UCompoundAction
	case TemporalWindow:
		return UTimedOpportunity
	case Transformation:
		return UStateTransformation
	case InitialPrivilege, AdvanceOnly:
		return UAdvance
	case CaptureOnly:
		return UCapture
	case DiscreteJump:
		return UJump
	case SafetyConstrained:
		return USafetyConstraint
	case RayMovement:
		return ULineMovement
	case Conditional:
		return UConditionalAction
	case ThreatResponse:
		return UThreatResponse
	case TerminalCondition, MaterialCondition:
		return UTerminalState
	case HistoryDependent:
		return URepetitionConstraint
	case CounterThreshold:
		return UCounterLimit
	default:
		panic(fmt.Sprintf("taxonomy: unknown rtype %d", uint8(r)))
	}
}

// preimage is ToRType inverted once at package initialisation and never
// written again.
var preimage = invert()

func invert() map[UniversalRType][]RType {
	m := make(map[UniversalRType][]RType)
	for _, r := range RTypes {
		u := ToRType(r)
		m[u] = append(m[u], r)
	}
	return m
}

// FromRType returns every chess R-type that maps to u, in declaration
// order. It is empty for universal types chess never reaches.
func FromRType(u UniversalRType) []RType {
	return slices.Clone(preimage[u])
}

// Reachable lists the universal types that have at least one chess R-type
// mapped onto them.
func Reachable() []UniversalRType {
	keys := maps.Keys(preimage)
	slices.Sort(keys)
	return keys
}

// IsReachable reports whether chess maps anything onto u.
func IsReachable(u UniversalRType) bool {
	return slices.Contains(Reachable(), u)
}

// TTypePair returns the agent states of the mover and of the opponent under
// a rule of type r.
func TTypePair(r RType) (mover, opponent AgentState) {
	switch r {
	case CompoundMove:
		return ConditionalDiscretion, MandatoryPassivity
	case TemporalWindow:
		return ConditionalDiscretion, ExposedVulnerability
	case Transformation:
		return MandatoryAction, MandatoryPassivity
	case InitialPrivilege:
		return BoundedDiscretion, MandatoryPassivity
	case CaptureOnly:
		return ConditionalDiscretion, ExposedVulnerability
	case AdvanceOnly:
		return BoundedDiscretion, MandatoryPassivity
	case DiscreteJump:
		return FullDiscretion, MandatoryPassivity
	case SafetyConstrained:
		return BoundedDiscretion, MandatoryPassivity
	case RayMovement:
		return FullDiscretion, MandatoryPassivity
	case Conditional:
		return ConditionalDiscretion, MandatoryPassivity
	case ThreatResponse:
		return MandatoryAction, MandatoryPassivity
	case TerminalCondition, MaterialCondition:
		return NoAgency, NoAgency
	case HistoryDependent:
		return ConditionalDiscretion, MandatoryPassivity
	case CounterThreshold:
		return ConditionalDiscretion, MandatoryPassivity
	default:
		panic(fmt.Sprintf("taxonomy: unknown rtype %d", uint8(r)))
	}
}

// Image is everything the functor says about one chess R-type.
type Image struct {
	RType     RType          `json:"rtype"`
	Universal UniversalRType `json:"universal"`
	Mover     AgentState     `json:"mover"`
	Opponent  AgentState     `json:"opponent"`
}

// Map applies the functor to r.
func Map(r RType) Image {
	mover, opponent := TTypePair(r)
	return Image{RType: r, Universal: ToRType(r), Mover: mover, Opponent: opponent}
}
