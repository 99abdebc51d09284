package board

import "fmt"

// Square is a board index 0..63 (a1=0, h1=7, a8=56). File and rank are
// exposed 1-based.
type Square int8

// NoSquare marks an absent square, e.g. no en-passant target.
const NoSquare Square = -1

// Named squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from 1-based file and rank. Out-of-range
// coordinates yield NoSquare.
func NewSquare(file, rank int) Square {
	if file < 1 || file > 8 || rank < 1 || rank > 8 {
		return NoSquare
	}
	return Square((rank-1)*8 + file - 1)
}

// File returns 1 (a) through 8 (h).
func (s Square) File() int { return int(s)%8 + 1 }

// Rank returns 1 through 8.
func (s Square) Rank() int { return int(s)/8 + 1 }

// Valid reports whether s is on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

// Light reports whether s is a light square (h1 is light).
func (s Square) Light() bool { return (s.File()+s.Rank())%2 == 1 }

// Offset returns the square df files and dr ranks away, or NoSquare.
func (s Square) Offset(df, dr int) Square {
	if !s.Valid() {
		return NoSquare
	}
	return NewSquare(s.File()+df, s.Rank()+dr)
}

// FileLetter returns 'a'..'h'.
func (s Square) FileLetter() byte { return byte('a' + s.File() - 1) }

// String returns algebraic coordinates such as "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), byte('0' + s.Rank())})
}

func (s Square) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Delta is a displacement between two squares.
type Delta struct {
	File int
	Rank int
}

// DeltaTo returns the displacement from s to to.
func (s Square) DeltaTo(to Square) Delta {
	return Delta{File: to.File() - s.File(), Rank: to.Rank() - s.Rank()}
}

// String formats the displacement as "(+1,+2)".
func (d Delta) String() string { return fmt.Sprintf("(%+d,%+d)", d.File, d.Rank) }

// Abs returns the component-wise absolute displacement.
func (d Delta) Abs() Delta {
	return Delta{File: abs(d.File), Rank: abs(d.Rank)}
}

// Chebyshev is the king-step distance.
func (d Delta) Chebyshev() int {
	a := d.Abs()
	if a.File > a.Rank {
		return a.File
	}
	return a.Rank
}

// Diagonal reports a non-zero move along a diagonal.
func (d Delta) Diagonal() bool {
	a := d.Abs()
	return a.File != 0 && a.File == a.Rank
}

// Orthogonal reports a non-zero move along a file or rank.
func (d Delta) Orthogonal() bool {
	return (d.File == 0) != (d.Rank == 0)
}

// Between returns the squares strictly between from and to when they share
// a line; otherwise nil.
func Between(from, to Square) []Square {
	d := from.DeltaTo(to)
	if !d.Diagonal() && !d.Orthogonal() {
		return nil
	}
	df, dr := sign(d.File), sign(d.Rank)
	var out []Square
	for sq := from.Offset(df, dr); sq != to && sq.Valid(); sq = sq.Offset(df, dr) {
		out = append(out, sq)
	}
	return out
}

// ParseSquare reads algebraic coordinates ("e4").
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return NewSquare(int(file-'a')+1, int(rank-'0')), nil
}

// MustSquare is ParseSquare for literals; it panics on bad input.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
