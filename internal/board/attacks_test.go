package board

import "testing"

func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{A1, NewBitboard(B3, C2)},
		{H1, NewBitboard(G3, F2)},
		{A8, NewBitboard(B6, C7)},
		{H8, NewBitboard(G6, F7)},
		{E4, NewBitboard(D6, F6, C5, G5, C3, G3, D2, F2)},
		{B1, NewBitboard(A3, C3, D2)},
		{G2, NewBitboard(E1, E3, F4, H4)},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := KnightAttacks(tc.sq); got != tc.want {
				t.Errorf("KnightAttacks(%v) = %v, want %v", tc.sq, got.Squares(), tc.want.Squares())
			}
		})
	}
}

func TestKingAttacks(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{E6, NewBitboard(D5, E5, F5, D6, F6, D7, E7, F7)},
		{A1, NewBitboard(A2, B1, B2)},
		{H8, NewBitboard(G8, H7, G7)},
		{A5, NewBitboard(A4, A6, B4, B5, B6)},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := KingAttacks(tc.sq); got != tc.want {
				t.Errorf("KingAttacks(%v) = %v, want %v", tc.sq, got.Squares(), tc.want.Squares())
			}
		})
	}
}

func TestPawnAttacks(t *testing.T) {
	tests := []struct {
		color Color
		sq    Square
		want  Bitboard
	}{
		{White, E2, NewBitboard(D3, F3)},
		{White, A2, NewBitboard(B3)},
		{White, H5, NewBitboard(G6)},
		{White, E8, Empty},
		{Black, E7, NewBitboard(D6, F6)},
		{Black, A7, NewBitboard(B6)},
		{Black, H4, NewBitboard(G3)},
		{Black, D1, Empty},
	}

	for _, tc := range tests {
		if got := PawnAttacks(tc.color, tc.sq); got != tc.want {
			t.Errorf("PawnAttacks(%v, %v) = %v, want %v",
				tc.color, tc.sq, got.Squares(), tc.want.Squares())
		}
	}
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	for _, sq := range []Square{B2, E4, A1, H8} {
		want := (FileBB(sq.File()) | RankBB(sq.Rank())) &^ SquareBB(sq)
		if got := RookAttacks(sq, Empty); got != want {
			t.Errorf("RookAttacks(%v) = %v, want %v", sq, got.Squares(), want.Squares())
		}
	}
}

func TestBishopAttacksEmptyBoard(t *testing.T) {
	for _, sq := range []Square{C1, E4, A8, F6} {
		want := (DiagonalBB(sq.Diagonal()) | AntiDiagonalBB(sq.AntiDiagonal())) &^ SquareBB(sq)
		if got := BishopAttacks(sq, Empty); got != want {
			t.Errorf("BishopAttacks(%v) = %v, want %v", sq, got.Squares(), want.Squares())
		}
	}
}

func TestSliderBlockers(t *testing.T) {
	// Rook on d4, blockers on d6 (north) and f4 (east). The blocker
	// square itself stays attacked, everything beyond it does not.
	occ := NewBitboard(D6, F4)
	got := RookAttacks(D4, occ)
	for _, sq := range []Square{D5, D6, E4, F4, D3, D2, D1, C4, B4, A4} {
		if !got.IsSet(sq) {
			t.Errorf("rook should attack %v", sq)
		}
	}
	for _, sq := range []Square{D7, D8, G4, H4} {
		if got.IsSet(sq) {
			t.Errorf("rook should not attack %v past a blocker", sq)
		}
	}

	// Bishop on c1, blocker on e3.
	got = BishopAttacks(C1, NewBitboard(E3))
	for _, sq := range []Square{B2, A3, D2, E3} {
		if !got.IsSet(sq) {
			t.Errorf("bishop should attack %v", sq)
		}
	}
	for _, sq := range []Square{F4, G5, H6} {
		if got.IsSet(sq) {
			t.Errorf("bishop should not attack %v past a blocker", sq)
		}
	}
}

func TestQueenAttacksIsRookPlusBishop(t *testing.T) {
	occupancies := []Bitboard{
		Empty,
		NewBitboard(D6, F4, B2),
		RankBB(Rank2) | RankBB(Rank7),
		NewBitboard(C3, C5, E3, E5, D3, D5, C4, E4),
	}
	for _, occ := range occupancies {
		for _, sq := range []Square{D4, A1, H3} {
			want := RookAttacks(sq, occ) | BishopAttacks(sq, occ)
			if got := QueenAttacks(sq, occ); got != want {
				t.Errorf("QueenAttacks(%v, %#x) = %#x, want %#x",
					sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}
