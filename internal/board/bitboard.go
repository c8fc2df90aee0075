package board

import (
	"fmt"
	"math/bits"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// Wrap guards for single-step shifts
	NotFileA  Bitboard = 0xFEFEFEFEFEFEFEFE
	NotFileH  Bitboard = 0x7F7F7F7F7F7F7F7F
	NotFileAB Bitboard = 0xFCFCFCFCFCFCFCFC
	NotFileGH Bitboard = 0x3F3F3F3F3F3F3F3F
)

// Coordinate mask tables, filled once at startup and immutable after.
var (
	fileBB         [8]Bitboard
	rankBB         [8]Bitboard
	diagonalBB     [15]Bitboard
	antiDiagonalBB [15]Bitboard
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		fileBB[sq.File()] |= bb
		rankBB[sq.Rank()] |= bb
		diagonalBB[sq.Diagonal()] |= bb
		antiDiagonalBB[sq.AntiDiagonal()] |= bb
	}
}

// FileBB returns the mask of all squares on the given file.
func FileBB(f File) Bitboard {
	return fileBB[f]
}

// RankBB returns the mask of all squares on the given rank.
func RankBB(r Rank) Bitboard {
	return rankBB[r]
}

// DiagonalBB returns the mask of all squares on the given diagonal.
func DiagonalBB(d Diagonal) Bitboard {
	return diagonalBB[d]
}

// AntiDiagonalBB returns the mask of all squares on the given anti-diagonal.
func AntiDiagonalBB(d AntiDiagonal) Bitboard {
	return antiDiagonalBB[d]
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// NewBitboard returns a bitboard with the given squares set.
func NewBitboard(squares ...Square) Bitboard {
	return Empty.SetSquares(squares...)
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ (1 << sq)
}

// SetSquares sets the bits of all given squares.
func (b Bitboard) SetSquares(squares ...Square) Bitboard {
	for _, sq := range squares {
		b |= 1 << sq
	}
	return b
}

// ClearSquares clears the bits of all given squares.
func (b Bitboard) ClearSquares(squares ...Square) Bitboard {
	for _, sq := range squares {
		b &^= 1 << sq
	}
	return b
}

// SetFile sets all bits of the given file.
func (b Bitboard) SetFile(f File) Bitboard {
	return b | fileBB[f]
}

// ClearFile clears all bits of the given file.
func (b Bitboard) ClearFile(f File) Bitboard {
	return b &^ fileBB[f]
}

// SetRank sets all bits of the given rank.
func (b Bitboard) SetRank(r Rank) Bitboard {
	return b | rankBB[r]
}

// ClearRank clears all bits of the given rank.
func (b Bitboard) ClearRank(r Rank) Bitboard {
	return b &^ rankBB[r]
}

// SetDiagonal sets all bits of the given diagonal.
func (b Bitboard) SetDiagonal(d Diagonal) Bitboard {
	return b | diagonalBB[d]
}

// ClearDiagonal clears all bits of the given diagonal.
func (b Bitboard) ClearDiagonal(d Diagonal) Bitboard {
	return b &^ diagonalBB[d]
}

// SetAntiDiagonal sets all bits of the given anti-diagonal.
func (b Bitboard) SetAntiDiagonal(d AntiDiagonal) Bitboard {
	return b | antiDiagonalBB[d]
}

// ClearAntiDiagonal clears all bits of the given anti-diagonal.
func (b Bitboard) ClearAntiDiagonal(d AntiDiagonal) Bitboard {
	return b &^ antiDiagonalBB[d]
}

// Reset clears all bits in place.
func (b *Bitboard) Reset() {
	*b = Empty
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// ActiveSquare returns the square of the single set bit. It returns
// (NoSquare, false) unless exactly one bit is set.
func (b Bitboard) ActiveSquare() (Square, bool) {
	if b == 0 || b&(b-1) != 0 {
		return NoSquare, false
	}
	return b.LSB(), true
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the most significant bit (highest square index).
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1 // Clear the LSB
	return sq
}

// More returns true if there are any bits set.
func (b Bitboard) More() bool {
	return b != 0
}

// Empty returns true if no bits are set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// Shift operations

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

// NorthEast shifts the bitboard one square toward the h8 corner.
func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

// NorthWest shifts the bitboard one square toward the a8 corner.
func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

// SouthEast shifts the bitboard one square toward the h1 corner.
func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

// SouthWest shifts the bitboard one square toward the a1 corner.
func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// Fill operations

// NorthFill fills all squares north of the set bits.
func (b Bitboard) NorthFill() Bitboard {
	b |= b << 8
	b |= b << 16
	b |= b << 32
	return b
}

// SouthFill fills all squares south of the set bits.
func (b Bitboard) SouthFill() Bitboard {
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return b
}

// FileFill fills the entire file(s) containing any set bit.
func (b Bitboard) FileFill() Bitboard {
	return b.NorthFill() | b.SouthFill()
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	s := ""
	for r := 7; r >= 0; r-- {
		s += fmt.Sprintf("%d ", r+1)
		for f := 0; f < 8; f++ {
			if b.IsSet(NewSquare(File(f), Rank(r))) {
				s += "1 "
			} else {
				s += ". "
			}
		}
		s += "\n"
	}
	s += "  a b c d e f g h\n"
	return s
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
