package board

import (
	"fmt"
	"strings"
)

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN representation of the castling rights.
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var sb strings.Builder
	if c&WhiteKingSideCastle != 0 {
		sb.WriteByte('K')
	}
	if c&WhiteQueenSideCastle != 0 {
		sb.WriteByte('Q')
	}
	if c&BlackKingSideCastle != 0 {
		sb.WriteByte('k')
	}
	if c&BlackQueenSideCastle != 0 {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Position is a complete board state: the two armies plus the game
// bookkeeping carried by FEN. Castling rights and the en passant
// target are tracked and round-tripped but not used in candidate-move
// computation.
type Position struct {
	Armies         [2]Army
	SideToMove     Color
	Castling       CastlingRights
	EnPassant      Square
	HalfMoveClock  int
	FullMoveNumber int
}

// NewPosition returns the standard starting position.
func NewPosition() Position {
	return Position{
		Armies:         [2]Army{InitialArmy(White), InitialArmy(Black)},
		SideToMove:     White,
		Castling:       AllCastling,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// EmptyPosition returns a position with no pieces on the board.
func EmptyPosition() Position {
	return Position{
		Armies:         [2]Army{NewArmy(White), NewArmy(Black)},
		SideToMove:     White,
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// Occupied returns the squares occupied by either army.
func (p *Position) Occupied() Bitboard {
	return p.Armies[White].Occupied() | p.Armies[Black].Occupied()
}

// Interference returns the occupancy the given color's sliders see
// from the opposing army.
func (p *Position) Interference(c Color) Bitboard {
	return p.Armies[c.Other()].Occupied()
}

// PieceAt returns the piece on the given square, NoPiece when empty.
func (p *Position) PieceAt(sq Square) Piece {
	if pt, ok := p.Armies[White].PieceAt(sq); ok {
		return NewPiece(pt, White)
	}
	if pt, ok := p.Armies[Black].PieceAt(sq); ok {
		return NewPiece(pt, Black)
	}
	return NoPiece
}

// Controlled returns all squares attacked by the given color.
func (p *Position) Controlled(c Color) Bitboard {
	return p.Armies[c].Controlled(p.Interference(c))
}

// PossibleMoves returns the candidate landing squares for the piece on
// the given square, empty when the square is.
func (p *Position) PossibleMoves(sq Square) Bitboard {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return Empty
	}
	c := piece.Color()
	return p.Armies[c].PossibleMoves(piece.Type(), sq, p.Interference(c))
}

// Moves expands the candidate landing squares of the piece on the
// given square into encoded moves, capturing whatever stands on the
// destination and fanning out the four promotions on the last rank.
func (p *Position) Moves(from Square) []Move {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return nil
	}
	c := piece.Color()
	targets := p.Armies[c].PossibleMoves(piece.Type(), from, p.Interference(c))

	lastRank := Rank8
	if c == Black {
		lastRank = Rank1
	}

	var moves []Move
	targets.ForEach(func(to Square) {
		taken := NoPieceType
		if pt, ok := p.Armies[c.Other()].PieceAt(to); ok {
			taken = pt
		}
		if piece.Type() == Pawn && to.Rank() == lastRank {
			for _, promo := range []PieceType{Queen, Rook, Bishop, Knight} {
				moves = append(moves, NewMove(Pawn, from, to, taken, promo))
			}
			return
		}
		moves = append(moves, NewMove(piece.Type(), from, to, taken, NoPieceType))
	})
	return moves
}

// MakeMove applies a move to the position: piece placement, castling
// rights, en passant target, clocks and side to move. Moves that do
// not match the board are ignored. Castling and en passant captures
// are never produced by Moves, so no rook hop or ep removal happens
// here.
func (p *Position) MakeMove(m Move) {
	if !m.IsValid() {
		return
	}
	from, to := m.From(), m.To()
	piece := p.PieceAt(from)
	if piece == NoPiece || piece.Type() != m.Piece() {
		return
	}
	c := piece.Color()
	own, enemy := &p.Armies[c], &p.Armies[c.Other()]

	if taken := m.Taken(); taken != NoPieceType {
		enemy.RemovePieces(taken, to)
	}
	own.RemovePieces(m.Piece(), from)
	placed := m.Piece()
	if promo := m.Promotion(); promo != NoPieceType {
		placed = promo
	}
	own.PlacePieces(placed, to)

	p.updateCastling(from, to)
	p.EnPassant = m.EnPassant()
	if m.Piece() == Pawn || m.IsCapture() {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if c == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = c.Other()
}

// updateCastling strips rights when a move leaves or enters one of the
// king or rook home squares.
func (p *Position) updateCastling(from, to Square) {
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case E1:
			p.Castling &^= WhiteKingSideCastle | WhiteQueenSideCastle
		case A1:
			p.Castling &^= WhiteQueenSideCastle
		case H1:
			p.Castling &^= WhiteKingSideCastle
		case E8:
			p.Castling &^= BlackKingSideCastle | BlackQueenSideCastle
		case A8:
			p.Castling &^= BlackQueenSideCastle
		case H8:
			p.Castling &^= BlackKingSideCastle
		}
	}
}

// Validate reports structural defects a FEN load or manual setup can
// introduce. A missing king is allowed; armies are usable without one.
func (p *Position) Validate() error {
	white, black := p.Armies[White].Occupied(), p.Armies[Black].Occupied()
	if overlap := white & black; overlap != 0 {
		return fmt.Errorf("armies overlap on %v", overlap.Squares())
	}
	if n := p.Armies[White].Pieces(King).PopCount(); n > 1 {
		return fmt.Errorf("white has %d kings", n)
	}
	if n := p.Armies[Black].Pieces(King).PopCount(); n > 1 {
		return fmt.Errorf("black has %d kings", n)
	}
	backRanks := RankBB(Rank1) | RankBB(Rank8)
	if pawns := (p.Armies[White].Pieces(Pawn) | p.Armies[Black].Pieces(Pawn)) & backRanks; pawns != 0 {
		return fmt.Errorf("pawns on back rank: %v", pawns.Squares())
	}
	if p.EnPassant != NoSquare {
		if r := p.EnPassant.Rank(); r != Rank3 && r != Rank6 {
			return fmt.Errorf("en passant square %s not on rank 3 or 6", p.EnPassant)
		}
	}
	return nil
}

// String returns a figurine diagram of the position with the side to
// move and FEN bookkeeping below it.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			sq := NewSquare(File(f), Rank(r))
			if piece := p.PieceAt(sq); piece != NoPiece {
				sb.WriteRune(piece.Symbol())
				sb.WriteByte(' ')
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	fmt.Fprintf(&sb, "%s to move  castling %s  ep %s\n", p.SideToMove, p.Castling, p.EnPassant)
	return sb.String()
}
