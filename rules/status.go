package rules

import "chess-arbiter/board"

// Result names how a game ended, or that it has not.
type Result uint8

const (
	Ongoing Result = iota
	Checkmate
	Stalemate
	FivefoldRepetition
	SeventyFiveMoveRule
	InsufficientMaterial
	Timeout
	// TimeoutVsInsufficientMaterial is a flag fall against a lone king: a draw.
	TimeoutVsInsufficientMaterial
	// ThreefoldClaim and FiftyMoveClaim end a game only when a player claims.
	ThreefoldClaim
	FiftyMoveClaim
)

// Results lists every Result.
var Results = [...]Result{Ongoing, Checkmate, Stalemate, FivefoldRepetition, SeventyFiveMoveRule,
	InsufficientMaterial, Timeout, TimeoutVsInsufficientMaterial, ThreefoldClaim, FiftyMoveClaim}

func (r Result) String() string {
	switch r {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FivefoldRepetition:
		return "fivefold-repetition"
	case SeventyFiveMoveRule:
		return "seventy-five-move-rule"
	case InsufficientMaterial:
		return "insufficient-material"
	case Timeout:
		return "timeout"
	case TimeoutVsInsufficientMaterial:
		return "timeout-vs-insufficient-material"
	case ThreefoldClaim:
		return "threefold-claim"
	case FiftyMoveClaim:
		return "fifty-move-claim"
	default:
		panic("rules.Result: unknown result")
	}
}

func (r Result) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Winner is the side a finished game was won by, or Draw.
type Winner uint8

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
	Draw
)

func (w Winner) String() string {
	switch w {
	case NoWinner:
		return "none"
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	default:
		panic("rules.Winner: unknown winner")
	}
}

func (w Winner) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// WinnerOf maps a colour to its Winner value.
func WinnerOf(c board.Color) Winner {
	if c == board.White {
		return WhiteWins
	}
	return BlackWins
}

// Outcome is the verdict of Termination or FlagFall.
type Outcome struct {
	Terminated bool
	Result     Result
	Winner     Winner
}

func drawn(r Result) Outcome { return Outcome{Terminated: true, Result: r, Winner: Draw} }

// Claimed is the outcome of an accepted draw claim under r.
func Claimed(r Result) Outcome { return drawn(r) }

// Termination applies the automatic ending rules in fixed order: checkmate,
// stalemate, fivefold repetition, the seventy-five-move rule, insufficient
// material. Claimable draws are not part of it; see CanClaimThreefold and
// CanClaimFiftyMove.
func Termination(s *board.GameState) Outcome {
	side := s.SideToMove
	if !HasLegalMove(side, s) {
		if InCheck(side, s) {
			return Outcome{Terminated: true, Result: Checkmate, Winner: WinnerOf(side.Opposite())}
		}
		return drawn(Stalemate)
	}
	if RepetitionCount(s) >= 5 {
		return drawn(FivefoldRepetition)
	}
	if s.HalfMoveClock >= 150 {
		return drawn(SeventyFiveMoveRule)
	}
	if IsInsufficientMaterial(s) {
		return drawn(InsufficientMaterial)
	}
	return Outcome{}
}

// IsInsufficientMaterial covers the dead positions recognised here: bare
// kings, king and one minor piece against a bare king, and any number of
// bishops that all stand on squares of one colour.
func IsInsufficientMaterial(s *board.GameState) bool {
	var rest []board.Piece
	for _, p := range s.Board.All() {
		if p.Type != board.King {
			rest = append(rest, p)
		}
	}
	switch len(rest) {
	case 0:
		return true
	case 1:
		return rest[0].Type == board.Knight || rest[0].Type == board.Bishop
	}
	light := rest[0].Square.Light()
	for _, p := range rest {
		if p.Type != board.Bishop || p.Square.Light() != light {
			return false
		}
	}
	return true
}
