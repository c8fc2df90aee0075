package board

import (
	"errors"
	"fmt"
)

// ErrInvalidPiece is returned when a character does not name a piece.
var ErrInvalidPiece = errors.New("invalid piece")

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the type of a chess piece. The order doubles as
// capture priority: when two piece sets overlap on a square, the lower
// value wins the lookup.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	chars := []byte{'k', 'q', 'b', 'n', 'r', 'p', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// ParsePieceType converts a letter (either case) to a PieceType.
func ParsePieceType(c byte) (PieceType, error) {
	switch c {
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'B', 'b':
		return Bishop, nil
	case 'N', 'n':
		return Knight, nil
	case 'R', 'r':
		return Rook, nil
	case 'P', 'p':
		return Pawn, nil
	default:
		return NoPieceType, fmt.Errorf("%w: %q", ErrInvalidPiece, c)
	}
}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*6
type Piece uint8

const (
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	NoPiece     Piece = 12
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p >= NoPiece {
		return " "
	}
	chars := "KQBNRPkqbnrp"
	return string(chars[p])
}

// Symbol returns the figurine codepoint for the piece.
func (p Piece) Symbol() rune {
	switch p {
	case WhiteKing:
		return '♔'
	case WhiteQueen:
		return '♕'
	case WhiteBishop:
		return '♗'
	case WhiteKnight:
		return '♘'
	case WhiteRook:
		return '♖'
	case WhitePawn:
		return '♙'
	case BlackKing:
		return '♚'
	case BlackQueen:
		return '♛'
	case BlackBishop:
		return '♝'
	case BlackKnight:
		return '♞'
	case BlackRook:
		return '♜'
	case BlackPawn:
		return '♟'
	default:
		return ' '
	}
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'B':
		return WhiteBishop
	case 'N':
		return WhiteKnight
	case 'R':
		return WhiteRook
	case 'P':
		return WhitePawn
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	case 'b':
		return BlackBishop
	case 'n':
		return BlackKnight
	case 'r':
		return BlackRook
	case 'p':
		return BlackPawn
	default:
		return NoPiece
	}
}
