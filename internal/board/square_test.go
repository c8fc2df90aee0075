package board

import (
	"errors"
	"testing"
)

func TestSquareCoordinates(t *testing.T) {
	tests := []struct {
		sq   Square
		file File
		rank Rank
		diag Diagonal
		anti AntiDiagonal
	}{
		{A1, FileA, Rank1, 7, 0},
		{H1, FileH, Rank1, 14, 7},
		{A8, FileA, Rank8, 0, 7},
		{H8, FileH, Rank8, 7, 14},
		{E4, FileE, Rank4, 8, 7},
		{B7, FileB, Rank7, 2, 7},
		{D3, FileD, Rank3, 8, 5},
		{G6, FileG, Rank6, 8, 11},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := tc.sq.File(); got != tc.file {
				t.Errorf("File() = %v, want %v", got, tc.file)
			}
			if got := tc.sq.Rank(); got != tc.rank {
				t.Errorf("Rank() = %v, want %v", got, tc.rank)
			}
			if got := tc.sq.Diagonal(); got != tc.diag {
				t.Errorf("Diagonal() = %d, want %d", got, tc.diag)
			}
			if got := tc.sq.AntiDiagonal(); got != tc.anti {
				t.Errorf("AntiDiagonal() = %d, want %d", got, tc.anti)
			}
			if got := NewSquare(tc.file, tc.rank); got != tc.sq {
				t.Errorf("NewSquare(%v, %v) = %v, want %v", tc.file, tc.rank, got, tc.sq)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	if got := A1.String(); got != "a1" {
		t.Errorf("A1.String() = %q, want %q", got, "a1")
	}
	if got := H8.String(); got != "h8" {
		t.Errorf("H8.String() = %q, want %q", got, "h8")
	}
	if got := E4.String(); got != "e4" {
		t.Errorf("E4.String() = %q, want %q", got, "e4")
	}
	if got := NoSquare.String(); got != "-" {
		t.Errorf("NoSquare.String() = %q, want %q", got, "-")
	}
}

func TestParseSquare(t *testing.T) {
	valid := []struct {
		s    string
		want Square
	}{
		{"a1", A1},
		{"h1", H1},
		{"a8", A8},
		{"h8", H8},
		{"e4", E4},
		{"c6", C6},
	}
	for _, tc := range valid {
		got, err := ParseSquare(tc.s)
		if err != nil {
			t.Errorf("ParseSquare(%q) error: %v", tc.s, err)
		}
		if got != tc.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}

	invalid := []string{"", "e", "e44", "i4", "a0", "a9", "4e", "E4"}
	for _, s := range invalid {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", s, err)
		}
	}
}

func TestParseFileAndRank(t *testing.T) {
	if f, err := ParseFile('c'); err != nil || f != FileC {
		t.Errorf("ParseFile('c') = %v, %v", f, err)
	}
	if _, err := ParseFile('C'); !errors.Is(err, ErrInvalidFile) {
		t.Errorf("ParseFile('C') error = %v, want ErrInvalidFile", err)
	}
	if _, err := ParseFile('i'); !errors.Is(err, ErrInvalidFile) {
		t.Errorf("ParseFile('i') error = %v, want ErrInvalidFile", err)
	}

	if r, err := ParseRank('5'); err != nil || r != Rank5 {
		t.Errorf("ParseRank('5') = %v, %v", r, err)
	}
	if _, err := ParseRank('0'); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("ParseRank('0') error = %v, want ErrInvalidRank", err)
	}
	if _, err := ParseRank('9'); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("ParseRank('9') error = %v, want ErrInvalidRank", err)
	}
}

func TestSquareNeighbors(t *testing.T) {
	type neighbors struct {
		n, s, e, w, ne, nw, se, sw Square
	}
	tests := []struct {
		sq   Square
		want neighbors
	}{
		{E4, neighbors{E5, E3, F4, D4, F5, D5, F3, D3}},
		{A1, neighbors{A2, NoSquare, B1, NoSquare, B2, NoSquare, NoSquare, NoSquare}},
		{H1, neighbors{H2, NoSquare, NoSquare, G1, NoSquare, G2, NoSquare, NoSquare}},
		{A8, neighbors{NoSquare, A7, B8, NoSquare, NoSquare, NoSquare, B7, NoSquare}},
		{H8, neighbors{NoSquare, H7, NoSquare, G8, NoSquare, NoSquare, NoSquare, G7}},
		{A4, neighbors{A5, A3, B4, NoSquare, B5, NoSquare, B3, NoSquare}},
		{D8, neighbors{NoSquare, D7, E8, C8, NoSquare, NoSquare, E7, C7}},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			got := neighbors{
				tc.sq.North(), tc.sq.South(), tc.sq.East(), tc.sq.West(),
				tc.sq.NorthEast(), tc.sq.NorthWest(), tc.sq.SouthEast(), tc.sq.SouthWest(),
			}
			if got != tc.want {
				t.Errorf("neighbors = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSquareStep(t *testing.T) {
	tests := []struct {
		sq     Square
		dr, df int
		want   Square
	}{
		{A1, 2, 1, B3},
		{A1, 1, 2, C2},
		{A1, 2, -1, NoSquare},
		{A1, -1, 2, NoSquare},
		{E4, 2, 1, F6},
		{E4, -2, -1, D2},
		{E4, 0, 0, E4},
		{H8, 1, 0, NoSquare},
		{H8, 0, 1, NoSquare},
		{G7, 2, 2, NoSquare},
	}

	for _, tc := range tests {
		if got := tc.sq.Step(tc.dr, tc.df); got != tc.want {
			t.Errorf("%v.Step(%d, %d) = %v, want %v", tc.sq, tc.dr, tc.df, got, tc.want)
		}
	}
}

func TestSquareIsValid(t *testing.T) {
	if !A1.IsValid() || !H8.IsValid() {
		t.Error("corner squares should be valid")
	}
	if NoSquare.IsValid() {
		t.Error("NoSquare should not be valid")
	}
}
