package board

// Pre-computed attack tables for leaper pieces, plus empty-board rays
// for the classical sliding-attack computation.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]

	rays [8][64]Bitboard // [direction][Square], origin excluded
)

type direction uint8

const (
	north direction = iota
	northEast
	east
	southEast
	south
	southWest
	west
	northWest
)

var rayStep = [8]func(Square) Square{
	Square.North, Square.NorthEast, Square.East, Square.SouthEast,
	Square.South, Square.SouthWest, Square.West, Square.NorthWest,
}

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		knightAttacks[sq] = (bb << 17 & NotFileA) |
			(bb << 15 & NotFileH) |
			(bb << 10 & NotFileAB) |
			(bb << 6 & NotFileGH) |
			(bb >> 6 & NotFileAB) |
			(bb >> 10 & NotFileGH) |
			(bb >> 15 & NotFileA) |
			(bb >> 17 & NotFileH)

		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()

		for d := north; d <= northWest; d++ {
			step := rayStep[d]
			for s := step(sq); s != NoSquare; s = step(s) {
				rays[d][sq] = rays[d][sq].Set(s)
			}
		}
	}
}

// KnightAttacks returns the attack set of a knight on the given square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the attack set of a king on the given square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the capture squares of a pawn of the given color.
func PawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// RookAttacks returns rook attacks from the square given the occupancy.
// The first occupied square on each ray is included.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, [4]direction{north, east, south, west})
}

// BishopAttacks returns bishop attacks from the square given the occupancy.
// The first occupied square on each ray is included.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slidingAttacks(sq, occupied, [4]direction{northEast, southEast, southWest, northWest})
}

// QueenAttacks returns queen attacks from the square given the occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// slidingAttacks casts a ray in each direction and truncates it past
// the first occupied square, which stays in the attack set.
func slidingAttacks(sq Square, occupied Bitboard, dirs [4]direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		ray := rays[d][sq]
		if blockers := ray & occupied; blockers != 0 {
			// South-side rays meet their nearest blocker at the MSB.
			first := blockers.LSB()
			if d >= southEast && d <= west {
				first = blockers.MSB()
			}
			ray &^= rays[d][first]
		}
		attacks |= ray
	}
	return attacks
}
