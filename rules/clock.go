package rules

import "chess-arbiter/board"

// FlagFall is the outcome when flagged runs out of time: a loss, unless
// the opponent has only a king left and so cannot mate.
func FlagFall(flagged board.Color, s *board.GameState) Outcome {
	opp := flagged.Opposite()
	if len(s.Board.Pieces(opp)) == 1 {
		return drawn(TimeoutVsInsufficientMaterial)
	}
	return Outcome{Terminated: true, Result: Timeout, Winner: WinnerOf(opp)}
}
