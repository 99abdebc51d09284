package board

import "strings"

// Key is the repetition key of s. Two states with equal keys are the same
// position: placement, side to move, castling rights and the en-passant file.
// Move counters are not part of it.
func Key(s *GameState) string {
	var sb strings.Builder
	sb.WriteString(s.Board.placement())
	if s.SideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(s.Castling.String())
	sb.WriteByte(' ')
	if s.EnPassant.Valid() {
		sb.WriteByte(s.EnPassant.FileLetter())
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// RepetitionCount is how many times the current position has been reached,
// counting the current occurrence.
func RepetitionCount(s *GameState) int {
	key := Key(s)
	hist := s.PositionHistory
	if n := len(hist); n > 0 && hist[n-1] == key {
		hist = hist[:n-1]
	}
	count := 1
	for _, k := range hist {
		if k == key {
			count++
		}
	}
	return count
}
