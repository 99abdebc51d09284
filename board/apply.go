package board

// Apply plays m on a copy of s and returns the new state; s is untouched.
// Apply does not check legality. It panics when m.From is empty, since that
// can only be a caller bug.
func Apply(s *GameState, m Move) *GameState {
	next := s.Clone()
	mover, ok := next.Board.At(m.From)
	if !ok {
		panic("board.Apply: no piece on " + m.From.String())
	}
	m.Piece = mover

	// Remove the captured piece first so Relocate sees an empty target.
	switch {
	case m.EnPassant:
		victim := NewSquare(m.To.File(), m.From.Rank())
		next.Board.Remove(victim)
		m.Captured = Pawn
	default:
		if target, hit := next.Board.At(m.To); hit && target.Color != mover.Color {
			m.Captured = target.Type
		}
	}
	next.Board.Relocate(m.From, m.To)

	if m.Castle != NoCastle {
		_, _, rookFrom, rookTo := CastleSquares(mover.Color, m.Castle)
		if next.Board.Occupied(rookFrom) {
			next.Board.Relocate(rookFrom, rookTo)
		}
	}
	if m.Promotion != NoPieceType {
		promoted := NewPiece(m.Promotion, mover.Color, m.To)
		promoted.HasMoved = true
		next.Board.Place(promoted, m.To)
	}

	revokeTouched(&next.Castling, m.From)
	revokeTouched(&next.Castling, m.To)

	next.EnPassant = NoSquare
	if m.IsDoublePush() {
		next.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
	}

	if mover.Type == Pawn || m.IsCapture() {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if mover.Color == Black {
		next.FullMoveNumber++
	}
	next.SideToMove = mover.Color.Opposite()

	next.MoveHistory = append(next.MoveHistory, m)
	next.PositionHistory = append(next.PositionHistory, Key(next))
	return next
}

// revokeTouched clears every right whose king or rook home square is sq.
// Moving from a home square and capturing on one both count.
func revokeTouched(r *CastlingRights, sq Square) {
	for _, c := range [...]Color{White, Black} {
		kingHome, _, _, _ := CastleSquares(c, Kingside)
		if sq == kingHome {
			r.RevokeColor(c)
			continue
		}
		for _, side := range [...]CastleSide{Kingside, Queenside} {
			if _, _, rookHome, _ := CastleSquares(c, side); sq == rookHome {
				r.Revoke(c, side)
			}
		}
	}
}
