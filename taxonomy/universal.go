package taxonomy

import "fmt"

// UniversalRType is a game-independent relation type. Chess reaches only
// some of them; the rest exist so rule structure from other turn-based games
// lands in the same vocabulary.
type UniversalRType uint8

const (
	UCompoundAction UniversalRType = iota
	UTimedOpportunity
	UStateTransformation
	UAdvance
	UCapture
	UJump
	USafetyConstraint
	ULineMovement
	UConditionalAction
	UThreatResponse
	UTerminalState
	URepetitionConstraint
	UCounterLimit
	UPlacement
	UEnclosureCapture
	UMandatoryCapture
	UMultiJump
	UDrop
	UFlip
	UPass
	UScoring
	UChance
	UHiddenInformation
	UBidding
	UTrickTaking
	UTerritory
	URepetitionBan
	UBearingOff
	UBlocking
	UAgreement
	UResourceSpend
	USowing
	UStacking
	UTurnOrder
	UCooperation
)

// UniversalRTypes lists all 35 universal relation types.
var UniversalRTypes = [...]UniversalRType{
	UCompoundAction, UTimedOpportunity, UStateTransformation, UAdvance, UCapture,
	UJump, USafetyConstraint, ULineMovement, UConditionalAction, UThreatResponse,
	UTerminalState, URepetitionConstraint, UCounterLimit, UPlacement, UEnclosureCapture,
	UMandatoryCapture, UMultiJump, UDrop, UFlip, UPass,
	UScoring, UChance, UHiddenInformation, UBidding, UTrickTaking,
	UTerritory, URepetitionBan, UBearingOff, UBlocking, UAgreement,
	UResourceSpend, USowing, UStacking, UTurnOrder, UCooperation,
}

func (u UniversalRType) Key() string {
	switch u {
	case UCompoundAction:
		return "compound-action"
	case UTimedOpportunity:
		return "timed-opportunity"
	case UStateTransformation:
		return "state-transformation"
	case UAdvance:
		return "advance"
	case UCapture:
		return "capture"
	case UJump:
		return "jump"
	case USafetyConstraint:
		return "safety-constraint"
	case ULineMovement:
		return "line-movement"
	case UConditionalAction:
		return "conditional-action"
	case UThreatResponse:
		return "threat-response"
	case UTerminalState:
		return "terminal-state"
	case URepetitionConstraint:
		return "repetition-constraint"
	case UCounterLimit:
		return "counter-limit"
	case UPlacement:
		return "placement"
	case UEnclosureCapture:
		return "enclosure-capture"
	case UMandatoryCapture:
		return "mandatory-capture"
	case UMultiJump:
		return "multi-jump"
	case UDrop:
		return "drop"
	case UFlip:
		return "flip"
	case UPass:
		return "pass"
	case UScoring:
		return "scoring"
	case UChance:
		return "chance"
	case UHiddenInformation:
		return "hidden-information"
	case UBidding:
		return "bidding"
	case UTrickTaking:
		return "trick-taking"
	case UTerritory:
		return "territory"
	case URepetitionBan:
		return "repetition-ban"
	case UBearingOff:
		return "bearing-off"
	case UBlocking:
		return "blocking"
	case UAgreement:
		return "agreement"
	case UResourceSpend:
		return "resource-spend"
	case USowing:
		return "sowing"
	case UStacking:
		return "stacking"
	case UTurnOrder:
		return "turn-order"
	case UCooperation:
		return "cooperation"
	default:
		panic(fmt.Sprintf("taxonomy: unknown universal rtype %d", uint8(u)))
	}
}

func (u UniversalRType) String() string { return u.Key() }

func (u UniversalRType) MarshalText() ([]byte, error) { return []byte(u.Key()), nil }

// ParseUniversal reads a key produced by Key.
func ParseUniversal(key string) (UniversalRType, error) {
	for _, u := range UniversalRTypes {
		if u.Key() == key {
			return u, nil
		}
	}
	return 0, fmt.Errorf("taxonomy: unknown universal rtype %q", key)
}
