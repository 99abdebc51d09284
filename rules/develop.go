package rules

import "chess-arbiter/board"

// Development describes how far a piece has left its starting rank.
// It feeds explanations only and never legality.
type Development struct {
	Developed bool
	Score     int
}

// IsDeveloped reports whether p has left its type's starting rank and scores
// its square: 4 for the four centre squares, 2 for the ring around them,
// 1 for any other developed square, 0 otherwise.
func IsDeveloped(p board.Piece) Development {
	if p.IsZero() {
		return Development{}
	}
	start := p.Color.HomeRank()
	if p.Type == board.Pawn {
		start = p.Color.PawnRank()
	}
	dev := Development{Developed: p.Square.Rank() != start}
	f, r := p.Square.File(), p.Square.Rank()
	switch {
	case f >= 4 && f <= 5 && r >= 4 && r <= 5:
		dev.Score = 4
	case f >= 3 && f <= 6 && r >= 3 && r <= 6:
		dev.Score = 2
	case dev.Developed:
		dev.Score = 1
	}
	return dev
}
