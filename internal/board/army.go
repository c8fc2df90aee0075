package board

import (
	"fmt"
	"strings"
)

// Army is one side's half of a chess position: a color tag plus one
// bitboard per piece type. Invariants (at most one king, disjoint piece
// sets) are assumed rather than enforced; queries on a malformed army
// degrade to empty results instead of panicking.
type Army struct {
	Color  Color
	pieces [6]Bitboard
}

// NewArmy returns an empty army of the given color.
func NewArmy(c Color) Army {
	return Army{Color: c}
}

// InitialArmy returns an army in the standard starting deployment.
func InitialArmy(c Color) Army {
	a := NewArmy(c)
	if c == White {
		a.pieces[King] = NewBitboard(E1)
		a.pieces[Queen] = NewBitboard(D1)
		a.pieces[Bishop] = NewBitboard(C1, F1)
		a.pieces[Knight] = NewBitboard(B1, G1)
		a.pieces[Rook] = NewBitboard(A1, H1)
		a.pieces[Pawn] = RankBB(Rank2)
	} else {
		a.pieces[King] = NewBitboard(E8)
		a.pieces[Queen] = NewBitboard(D8)
		a.pieces[Bishop] = NewBitboard(C8, F8)
		a.pieces[Knight] = NewBitboard(B8, G8)
		a.pieces[Rook] = NewBitboard(A8, H8)
		a.pieces[Pawn] = RankBB(Rank7)
	}
	return a
}

// PlacePieces sets pieces of the given type on the given squares.
// No legality checks are applied; callers own the board invariants.
func (a *Army) PlacePieces(pt PieceType, squares ...Square) {
	if pt >= NoPieceType {
		return
	}
	a.pieces[pt] = a.pieces[pt].SetSquares(squares...)
}

// RemovePieces clears pieces of the given type from the given squares.
func (a *Army) RemovePieces(pt PieceType, squares ...Square) {
	if pt >= NoPieceType {
		return
	}
	a.pieces[pt] = a.pieces[pt].ClearSquares(squares...)
}

// Pieces returns the bitboard of pieces of the given type.
func (a Army) Pieces(pt PieceType) Bitboard {
	if pt >= NoPieceType {
		return Empty
	}
	return a.pieces[pt]
}

// Occupied returns the union of all piece bitboards.
func (a Army) Occupied() Bitboard {
	occ := Empty
	for _, bb := range a.pieces {
		occ |= bb
	}
	return occ
}

// PieceAt returns the piece type on the given square, scanning in type
// order so the lookup is deterministic even on overlapping sets.
func (a Army) PieceAt(sq Square) (PieceType, bool) {
	for pt := King; pt <= Pawn; pt++ {
		if a.pieces[pt].IsSet(sq) {
			return pt, true
		}
	}
	return NoPieceType, false
}

// Count returns the number of pieces in the army.
func (a Army) Count() int {
	count := 0
	for _, bb := range a.pieces {
		count += bb.PopCount()
	}
	return count
}

// Controlled returns every square the army attacks. The interference
// board is the opposing occupancy: together with the army's own pieces
// it blocks sliding rays, and the first blocker on a ray is itself
// controlled.
func (a Army) Controlled(interference Bitboard) Bitboard {
	return a.kingControlled() |
		a.queensControlled(interference) |
		a.bishopsControlled(interference) |
		a.knightsControlled() |
		a.rooksControlled(interference) |
		a.pawnsControlled()
}

// ControlledBy returns the squares attacked by pieces of one type.
func (a Army) ControlledBy(pt PieceType, interference Bitboard) Bitboard {
	switch pt {
	case King:
		return a.kingControlled()
	case Queen:
		return a.queensControlled(interference)
	case Bishop:
		return a.bishopsControlled(interference)
	case Knight:
		return a.knightsControlled()
	case Rook:
		return a.rooksControlled(interference)
	case Pawn:
		return a.pawnsControlled()
	default:
		return Empty
	}
}

func (a Army) kingControlled() Bitboard {
	sq, ok := a.pieces[King].ActiveSquare()
	if !ok {
		return Empty
	}
	return kingAttacks[sq]
}

func (a Army) pawnsControlled() Bitboard {
	controlled := Empty
	for bb := a.pieces[Pawn]; bb != 0; {
		controlled |= pawnAttacks[a.Color][bb.PopLSB()]
	}
	return controlled
}

func (a Army) knightsControlled() Bitboard {
	controlled := Empty
	for bb := a.pieces[Knight]; bb != 0; {
		controlled |= knightAttacks[bb.PopLSB()]
	}
	return controlled
}

func (a Army) bishopsControlled(interference Bitboard) Bitboard {
	occupied := a.Occupied() | interference
	controlled := Empty
	for bb := a.pieces[Bishop]; bb != 0; {
		controlled |= BishopAttacks(bb.PopLSB(), occupied)
	}
	return controlled
}

func (a Army) rooksControlled(interference Bitboard) Bitboard {
	occupied := a.Occupied() | interference
	controlled := Empty
	for bb := a.pieces[Rook]; bb != 0; {
		controlled |= RookAttacks(bb.PopLSB(), occupied)
	}
	return controlled
}

// queensControlled computes queen control as a bishop pass plus a rook
// pass over a relabeled copy of the army. Folding bishops and rooks
// into the pawn slot keeps the occupancy identical, so every ray sees
// the same blockers while only the queens change type.
func (a Army) queensControlled(interference Bitboard) Bitboard {
	fake := a
	fake.pieces[Pawn] = a.pieces[Pawn] | a.pieces[Bishop] | a.pieces[Rook]
	fake.pieces[Bishop] = a.pieces[Queen]
	fake.pieces[Rook] = Empty
	controlled := fake.bishopsControlled(interference)

	fake.pieces[Bishop] = Empty
	fake.pieces[Rook] = a.pieces[Queen]
	controlled |= fake.rooksControlled(interference)
	return controlled
}

// PossibleMoves returns the candidate landing squares for a piece of
// the given type on the given square: attacked squares not occupied by
// the army itself, with pawn pushes handled separately. If the army
// has no piece of that type there, the result is empty. Castling, en
// passant and check legality are resolved above the army level.
func (a Army) PossibleMoves(pt PieceType, sq Square, interference Bitboard) Bitboard {
	if at, ok := a.PieceAt(sq); !ok || at != pt {
		return Empty
	}
	switch pt {
	case King:
		return a.kingControlled() &^ a.Occupied()
	case Pawn:
		return a.pawnMoves(sq, interference)
	default:
		return a.regularPieceMoves(pt, sq, interference)
	}
}

// regularPieceMoves isolates the piece by folding its same-type peers
// into the pawn slot of a copy, so they still block rays but no longer
// contribute attacks, then masks off the army's own squares.
func (a Army) regularPieceMoves(pt PieceType, sq Square, interference Bitboard) Bitboard {
	fake := a
	fake.pieces[Pawn] |= a.pieces[pt].Clear(sq)
	fake.pieces[pt] = SquareBB(sq)

	controlled := Empty
	switch pt {
	case Queen:
		controlled = fake.queensControlled(interference)
	case Bishop:
		controlled = fake.bishopsControlled(interference)
	case Knight:
		controlled = fake.knightsControlled()
	case Rook:
		controlled = fake.rooksControlled(interference)
	}
	return controlled &^ a.Occupied()
}

// pawnMoves: a push lands only on an empty square, the double push only
// from the pawn's starting rank with both squares empty, and diagonal
// steps only onto interference squares (captures).
func (a Army) pawnMoves(sq Square, interference Bitboard) Bitboard {
	occupied := a.Occupied() | interference
	forward := Square.North
	startRank := Rank2
	if a.Color == Black {
		forward = Square.South
		startRank = Rank7
	}

	moves := Empty
	if push := forward(sq); push != NoSquare && !occupied.IsSet(push) {
		moves = moves.Set(push)
		if sq.Rank() == startRank {
			if double := forward(push); double != NoSquare && !occupied.IsSet(double) {
				moves = moves.Set(double)
			}
		}
	}
	return moves | pawnAttacks[a.Color][sq]&interference
}

// String returns a figurine diagram of the army's pieces.
func (a Army) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			if pt, ok := a.PieceAt(sq); ok {
				sb.WriteRune(NewPiece(pt, a.Color).Symbol())
				sb.WriteByte(' ')
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
