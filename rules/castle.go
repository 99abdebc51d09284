package rules

import "chess-arbiter/board"

// Condition is one requirement for castling.
type Condition uint8

const (
	// KingMoved fails when the king has left, or never stood on, its home square.
	KingMoved Condition = iota
	// RookMoved fails when the rook for that wing is missing or has moved.
	RookMoved
	// RightRevoked fails when the castling flag is cleared although both pieces are home.
	RightRevoked
	// KingInCheck fails when the king is attacked right now.
	KingInCheck
	// PathBlocked fails when a square between king and rook is occupied.
	PathBlocked
	// PathAttacked fails when a square the king passes through is attacked.
	PathAttacked
)

// Conditions lists every castling condition in evaluation order.
var Conditions = [...]Condition{KingMoved, RookMoved, RightRevoked, KingInCheck, PathBlocked, PathAttacked}

func (c Condition) String() string {
	switch c {
	case KingMoved:
		return "king-moved"
	case RookMoved:
		return "rook-moved"
	case RightRevoked:
		return "right-revoked"
	case KingInCheck:
		return "king-in-check"
	case PathBlocked:
		return "path-blocked"
	case PathAttacked:
		return "path-attacked"
	default:
		panic("rules.Condition: unknown condition")
	}
}

func (c Condition) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ConditionCheck is the verdict on one condition. Squares names the
// offending squares for PathBlocked and PathAttacked.
type ConditionCheck struct {
	Condition Condition      `json:"condition"`
	Passed    bool           `json:"passed"`
	Squares   []board.Square `json:"squares,omitempty"`
}

// Castling is the result of CanCastle. Every condition is evaluated and
// reported, whether or not an earlier one failed.
type Castling struct {
	Side       board.CastleSide `json:"side"`
	Color      board.Color      `json:"color"`
	Allowed    bool             `json:"allowed"`
	Conditions []ConditionCheck `json:"conditions"`
}

// Failed lists the failing conditions in declaration order.
func (c Castling) Failed() []Condition {
	var out []Condition
	for _, cc := range c.Conditions {
		if !cc.Passed {
			out = append(out, cc.Condition)
		}
	}
	return out
}

// Check returns the verdict for one condition.
func (c Castling) Check(cond Condition) ConditionCheck {
	for _, cc := range c.Conditions {
		if cc.Condition == cond {
			return cc
		}
	}
	return ConditionCheck{Condition: cond}
}

// CanCastle evaluates castling towards side for colour c in s.
func CanCastle(side board.CastleSide, c board.Color, s *board.GameState) Castling {
	kingFrom, kingTo, rookFrom, _ := board.CastleSquares(c, side)
	them := c.Opposite()
	res := Castling{Side: side, Color: c}

	king, ok := s.Board.At(kingFrom)
	kingHome := ok && king.Is(c, board.King) && !king.HasMoved
	rook, ok := s.Board.At(rookFrom)
	rookHome := ok && rook.Is(c, board.Rook) && !rook.HasMoved

	var blocked []board.Square
	for _, sq := range board.Between(kingFrom, rookFrom) {
		if s.Board.Occupied(sq) {
			blocked = append(blocked, sq)
		}
	}

	var unsafe []board.Square
	transit := append([]board.Square{kingFrom}, board.Between(kingFrom, kingTo)...)
	transit = append(transit, kingTo)
	for _, sq := range transit {
		if attacked(&s.Board, sq, them) {
			unsafe = append(unsafe, sq)
		}
	}

	res.Conditions = []ConditionCheck{
		{Condition: KingMoved, Passed: kingHome},
		{Condition: RookMoved, Passed: rookHome},
		{Condition: RightRevoked, Passed: s.Castling.Has(c, side)},
		{Condition: KingInCheck, Passed: !attacked(&s.Board, kingFrom, them)},
		{Condition: PathBlocked, Passed: len(blocked) == 0, Squares: blocked},
		{Condition: PathAttacked, Passed: len(unsafe) == 0, Squares: unsafe},
	}
	res.Allowed = len(res.Failed()) == 0
	return res
}
