package board

// Move encodes a chess move in 32 bits:
// bits 0-2:   moved piece type
// bits 3-5:   taken piece type (6 = none)
// bits 6-8:   promotion piece type (6 = none)
// bits 9-11:  unused, always zero
// bits 12-17: start square (0-63)
// bits 18-23: destination square (0-63)
// bits 24-30: en passant target square (64 = none)
// bit 31:     invalid flag
type Move uint32

const (
	moveTakenShift = 3
	movePromoShift = 6
	moveFromShift  = 12
	moveToShift    = 18
	moveEPShift    = 24

	movePieceMask  = 0x7
	moveSquareMask = 0x3F
	moveEPMask     = 0x7F

	moveInvalidBit Move = 1 << 31
)

// NullMove is the invalid-move sentinel.
const NullMove Move = moveInvalidBit

// NewMove builds a move of the given piece from start to destination.
// taken and promotion are NoPieceType when absent. The en passant
// target is derived automatically for double pawn pushes.
func NewMove(pt PieceType, from, to Square, taken, promotion PieceType) Move {
	m := Move(pt)&movePieceMask |
		(Move(taken)&movePieceMask)<<moveTakenShift |
		(Move(promotion)&movePieceMask)<<movePromoShift |
		(Move(from)&moveSquareMask)<<moveFromShift |
		(Move(to)&moveSquareMask)<<moveToShift

	ep := NoSquare
	if pt == Pawn {
		switch {
		case from.Rank() == Rank2 && to == from+16:
			ep = from + 8
		case from.Rank() == Rank7 && to == from-16:
			ep = from - 8
		}
	}
	return m | (Move(ep)&moveEPMask)<<moveEPShift
}

// Piece returns the moved piece type.
func (m Move) Piece() PieceType {
	return PieceType(m & movePieceMask)
}

// Taken returns the captured piece type, NoPieceType for quiet moves.
func (m Move) Taken() PieceType {
	return PieceType(m >> moveTakenShift & movePieceMask)
}

// Promotion returns the promotion piece type, NoPieceType when none.
func (m Move) Promotion() PieceType {
	return PieceType(m >> movePromoShift & movePieceMask)
}

// From returns the start square.
func (m Move) From() Square {
	return Square(m >> moveFromShift & moveSquareMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m >> moveToShift & moveSquareMask)
}

// EnPassant returns the en passant target square opened by the move,
// NoSquare when the move is not a double pawn push.
func (m Move) EnPassant() Square {
	return Square(m >> moveEPShift & moveEPMask)
}

// IsCapture returns true if the move takes a piece.
func (m Move) IsCapture() bool {
	return m.Taken() != NoPieceType
}

// IsPromotion returns true if the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType
}

// IsValid returns true if the invalid flag is clear.
func (m Move) IsValid() bool {
	return m&moveInvalidBit == 0
}

// String returns the move in coordinate notation, e.g. "e2e4" or
// "e7e8q", and "0000" for the null move.
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoPieceType {
		s += string(p.Char())
	}
	return s
}
