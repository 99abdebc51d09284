package rules

import "chess-arbiter/board"

// LegalMoves enumerates every legal move for colour c in s. Moves come in
// square order of the moving piece, then target square, then promotion
// order; castling moves come last. Castling candidates pass the full
// CanCastle predicate before they are included.
func LegalMoves(c board.Color, s *board.GameState) []board.Move {
	out := make([]board.Move, 0, 48)
	forEachLegal(c, s, func(m board.Move) bool {
		out = append(out, m)
		return true
	})
	return out
}

// HasLegalMove stops at the first legal move found.
func HasLegalMove(c board.Color, s *board.GameState) bool {
	found := false
	forEachLegal(c, s, func(board.Move) bool {
		found = true
		return false
	})
	return found
}

// LegalMovesFrom restricts LegalMoves to the piece on from.
func LegalMovesFrom(from board.Square, s *board.GameState) []board.Move {
	p, ok := s.Board.At(from)
	if !ok {
		return nil
	}
	var out []board.Move
	forEachLegal(p.Color, s, func(m board.Move) bool {
		if m.From == from {
			out = append(out, m)
		}
		return true
	})
	return out
}

// forEachLegal yields legal moves until yield returns false.
func forEachLegal(c board.Color, s *board.GameState, yield func(board.Move) bool) {
	for _, p := range s.Board.Pieces(c) {
		for to := board.A1; to <= board.H8; to++ {
			if !CanReach(p, p.Square, to, s).Permitted {
				continue
			}
			m := board.NewMove(s, p.Square, to, board.NoPieceType)
			if m.EnPassant && !EnPassant(to, p, s).Valid {
				continue
			}
			if WouldExposeCheck(m, s) {
				continue
			}
			if !PromotionRequired(p, to).Required {
				if !yield(m) {
					return
				}
				continue
			}
			for _, t := range board.PromotionTypes {
				promo := m
				promo.Promotion = t
				if !yield(promo) {
					return
				}
			}
		}
	}
	for _, side := range [...]board.CastleSide{board.Kingside, board.Queenside} {
		if CanCastle(side, c, s).Allowed {
			if !yield(board.NewCastle(s, c, side)) {
				return
			}
		}
	}
}
