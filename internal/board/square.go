// Package board implements an 8x8 board representation using bitboards,
// with per-color armies, attack-set and candidate-move computation.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed textual coordinates and pieces.
// Geometric impossibility (stepping off the board) is never an error;
// it is reported as NoSquare.
var (
	ErrInvalidFile   = errors.New("invalid file")
	ErrInvalidRank   = errors.New("invalid rank")
	ErrInvalidSquare = errors.New("invalid square")
)

// File represents a board column, FileA (queenside) through FileH.
type File uint8

// File constants.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the file letter ("a".."h").
func (f File) String() string {
	if f > FileH {
		return "?"
	}
	return string('a' + byte(f))
}

// ParseFile parses a file letter ('a'..'h') into a File.
func ParseFile(c byte) (File, error) {
	if c < 'a' || c > 'h' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFile, c)
	}
	return File(c - 'a'), nil
}

// Rank represents a board row, Rank1 (White's back rank) through Rank8.
type Rank uint8

// Rank constants.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the rank digit ("1".."8").
func (r Rank) String() string {
	if r > Rank8 {
		return "?"
	}
	return string('1' + byte(r))
}

// ParseRank parses a rank digit ('1'..'8') into a Rank.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, c)
	}
	return Rank(c - '1'), nil
}

// Diagonal identifies one of the 15 a1-h8 oriented diagonals.
// Index = file - rank + 7, so diagonal 0 is the lone A8 cell,
// 7 is the a1-h8 main diagonal and 14 is the lone H1 cell.
type Diagonal uint8

// AntiDiagonal identifies one of the 15 a8-h1 oriented diagonals.
// Index = file + rank, so anti-diagonal 0 is the lone A1 cell,
// 7 is the a8-h1 main anti-diagonal and 14 is the lone H8 cell.
type AntiDiagonal uint8

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
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
	NoSquare Square = 64
)

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// Diagonal returns the a1-h8 oriented diagonal the square lies on.
func (sq Square) Diagonal() Diagonal {
	return Diagonal(uint8(sq.File()) - uint8(sq.Rank()) + 7)
}

// AntiDiagonal returns the a8-h1 oriented diagonal the square lies on.
func (sq Square) AntiDiagonal() AntiDiagonal {
	return AntiDiagonal(uint8(sq.File()) + uint8(sq.Rank()))
}

// String returns the algebraic notation for the square (e.g., "e4"),
// or "-" for NoSquare.
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// NewSquare creates a square from file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	f, err := ParseFile(s[0])
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	r, err := ParseRank(s[1])
	if err != nil {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(f, r), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Directional neighbors. Each returns the adjacent square in that
// direction, or NoSquare when the step would leave the board. The
// file/rank bounds are checked explicitly so a step can never wrap
// to the opposite edge.

// North returns the square one rank up, or NoSquare from rank 8.
func (sq Square) North() Square {
	if sq.Rank() == Rank8 {
		return NoSquare
	}
	return sq + 8
}

// South returns the square one rank down, or NoSquare from rank 1.
func (sq Square) South() Square {
	if sq.Rank() == Rank1 {
		return NoSquare
	}
	return sq - 8
}

// East returns the square one file right, or NoSquare from file h.
func (sq Square) East() Square {
	if sq.File() == FileH {
		return NoSquare
	}
	return sq + 1
}

// West returns the square one file left, or NoSquare from file a.
func (sq Square) West() Square {
	if sq.File() == FileA {
		return NoSquare
	}
	return sq - 1
}

// NorthEast returns the square diagonally up-right, or NoSquare.
func (sq Square) NorthEast() Square {
	if sq.Rank() == Rank8 || sq.File() == FileH {
		return NoSquare
	}
	return sq + 9
}

// NorthWest returns the square diagonally up-left, or NoSquare.
func (sq Square) NorthWest() Square {
	if sq.Rank() == Rank8 || sq.File() == FileA {
		return NoSquare
	}
	return sq + 7
}

// SouthEast returns the square diagonally down-right, or NoSquare.
func (sq Square) SouthEast() Square {
	if sq.Rank() == Rank1 || sq.File() == FileH {
		return NoSquare
	}
	return sq - 7
}

// SouthWest returns the square diagonally down-left, or NoSquare.
func (sq Square) SouthWest() Square {
	if sq.Rank() == Rank1 || sq.File() == FileA {
		return NoSquare
	}
	return sq - 9
}

// Step returns the square offset by the given signed rank and file
// steps, or NoSquare when either coordinate leaves the board. Knight
// jumps use this with the (±2,±1)/(±1,±2) pairs.
func (sq Square) Step(deltaRank, deltaFile int) Square {
	r := int(sq.Rank()) + deltaRank
	f := int(sq.File()) + deltaFile
	if r < 0 || r > 7 || f < 0 || f > 7 {
		return NoSquare
	}
	return NewSquare(File(f), Rank(r))
}
