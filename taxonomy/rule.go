package taxonomy

import "fmt"

// RuleID names a rule independently of any move, for contexts such as
// termination and draw claims where there is nothing to classify.
type RuleID uint8

const (
	RuleCastling RuleID = iota
	RuleEnPassant
	RulePromotion
	RulePawnDoublePush
	RulePawnCapture
	RulePawnAdvance
	RuleKnightMove
	RuleKingMove
	RuleBishopMove
	RuleRookMove
	RuleQueenMove
	RuleTurnOrder
	RuleCheck
	RuleCheckmate
	RuleStalemate
	RuleDeadPosition
	RuleThreefold
	RuleFivefold
	RuleFiftyMove
	RuleSeventyFiveMove
	RuleFlagFall
)

var RuleIDs = [...]RuleID{
	RuleCastling, RuleEnPassant, RulePromotion, RulePawnDoublePush, RulePawnCapture,
	RulePawnAdvance, RuleKnightMove, RuleKingMove, RuleBishopMove, RuleRookMove,
	RuleQueenMove, RuleTurnOrder, RuleCheck, RuleCheckmate, RuleStalemate,
	RuleDeadPosition, RuleThreefold, RuleFivefold, RuleFiftyMove, RuleSeventyFiveMove,
	RuleFlagFall,
}

func (id RuleID) Key() string {
	switch id {
	case RuleCastling:
		return "castling"
	case RuleEnPassant:
		return "en-passant"
	case RulePromotion:
		return "promotion"
	case RulePawnDoublePush:
		return "pawn-double-push"
	case RulePawnCapture:
		return "pawn-capture"
	case RulePawnAdvance:
		return "pawn-advance"
	case RuleKnightMove:
		return "knight-move"
	case RuleKingMove:
		return "king-move"
	case RuleBishopMove:
		return "bishop-move"
	case RuleRookMove:
		return "rook-move"
	case RuleQueenMove:
		return "queen-move"
	case RuleTurnOrder:
		return "turn-order"
	case RuleCheck:
		return "check"
	case RuleCheckmate:
		return "checkmate"
	case RuleStalemate:
		return "stalemate"
	case RuleDeadPosition:
		return "dead-position"
	case RuleThreefold:
		return "threefold-repetition"
	case RuleFivefold:
		return "fivefold-repetition"
	case RuleFiftyMove:
		return "fifty-move"
	case RuleSeventyFiveMove:
		return "seventy-five-move"
	case RuleFlagFall:
		return "flag-fall"
	default:
		panic(fmt.Sprintf("taxonomy: unknown rule %d", uint8(id)))
	}
}

func (id RuleID) String() string { return id.Key() }

func (id RuleID) MarshalText() ([]byte, error) { return []byte(id.Key()), nil }

// ClassifyRule gives the R-type of a rule named by id.
func ClassifyRule(id RuleID) RType {
	switch id {
	case RuleCastling:
		return CompoundMove
	case RuleEnPassant:
		return TemporalWindow
	case RulePromotion:
		return Transformation
	case RulePawnDoublePush:
		return InitialPrivilege
	case RulePawnCapture:
		return CaptureOnly
	case RulePawnAdvance:
		return AdvanceOnly
	case RuleKnightMove:
		return DiscreteJump
	case RuleKingMove:
		return SafetyConstrained
	case RuleBishopMove, RuleRookMove, RuleQueenMove:
		return RayMovement
	case RuleTurnOrder:
		return Conditional
	case RuleCheck:
		return ThreatResponse
	case RuleCheckmate, RuleStalemate:
		return TerminalCondition
	case RuleDeadPosition:
		return MaterialCondition
	case RuleThreefold, RuleFivefold:
		return HistoryDependent
	case RuleFiftyMove, RuleSeventyFiveMove, RuleFlagFall:
		return CounterThreshold
	default:
		panic(fmt.Sprintf("taxonomy: unknown rule %d", uint8(id)))
	}
}
