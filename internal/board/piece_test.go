package board

import (
	"errors"
	"testing"
)

func TestColorOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() should swap the colors")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("color names = %q, %q", White.String(), Black.String())
	}
}

func TestPieceTypeOrder(t *testing.T) {
	// The numeric order drives PieceAt scans and the move codec.
	want := []PieceType{King, Queen, Bishop, Knight, Rook, Pawn}
	for i, pt := range want {
		if PieceType(i) != pt {
			t.Errorf("PieceType(%d) = %v, want %v", i, PieceType(i), pt)
		}
	}
	if NoPieceType != 6 {
		t.Errorf("NoPieceType = %d, want 6", NoPieceType)
	}
	if King.Char() != 'k' || Pawn.Char() != 'p' {
		t.Errorf("Char() = %q, %q, want 'k', 'p'", King.Char(), Pawn.Char())
	}
}

func TestParsePieceType(t *testing.T) {
	cases := map[byte]PieceType{
		'K': King, 'k': King, 'Q': Queen, 'q': Queen,
		'B': Bishop, 'b': Bishop, 'N': Knight, 'n': Knight,
		'R': Rook, 'r': Rook, 'P': Pawn, 'p': Pawn,
	}
	for c, want := range cases {
		pt, err := ParsePieceType(c)
		if err != nil || pt != want {
			t.Errorf("ParsePieceType(%q) = %v, %v, want %v", c, pt, err, want)
		}
	}

	if _, err := ParsePieceType('x'); !errors.Is(err, ErrInvalidPiece) {
		t.Errorf("ParsePieceType('x') error = %v, want ErrInvalidPiece", err)
	}
}

func TestPieceRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := King; pt <= Pawn; pt++ {
			p := NewPiece(pt, c)
			if p.Type() != pt || p.Color() != c {
				t.Errorf("NewPiece(%v, %v) decomposes to %v, %v", pt, c, p.Type(), p.Color())
			}
		}
	}
	if NewPiece(NoPieceType, White) != NoPiece {
		t.Error("NewPiece(NoPieceType, White) should be NoPiece")
	}
	if NewPiece(King, NoColor) != NoPiece {
		t.Error("NewPiece(King, NoColor) should be NoPiece")
	}
	if NoPiece.Type() != NoPieceType || NoPiece.Color() != NoColor {
		t.Error("NoPiece should decompose to NoPieceType, NoColor")
	}
}

func TestPieceChars(t *testing.T) {
	if got := WhiteKing.String() + BlackQueen.String() + WhitePawn.String(); got != "KqP" {
		t.Errorf("piece letters = %q, want \"KqP\"", got)
	}
	for _, c := range []byte("KQBNRPkqbnrp") {
		p := PieceFromChar(c)
		if p == NoPiece {
			t.Errorf("PieceFromChar(%q) = NoPiece", c)
			continue
		}
		if p.String() != string(c) {
			t.Errorf("round trip %q -> %v -> %q", c, p, p.String())
		}
	}
	if PieceFromChar('x') != NoPiece {
		t.Error("PieceFromChar('x') should be NoPiece")
	}
}

func TestPieceSymbols(t *testing.T) {
	if WhiteKing.Symbol() != '♔' || BlackKing.Symbol() != '♚' {
		t.Error("king figurines wrong")
	}
	if WhitePawn.Symbol() != '♙' || BlackPawn.Symbol() != '♟' {
		t.Error("pawn figurines wrong")
	}
	if NoPiece.Symbol() != ' ' {
		t.Error("NoPiece should have a blank figurine")
	}
}
