package chess

// Move is one decoded move as delivered to a visitor. It carries only what
// the text of the move says; nothing here is checked against a board.
type Move struct {
	// The move text (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Disambiguating source file and rank, zero when absent.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	PieceToMove Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Whether the move text marks a capture.
	Capture bool
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		PromotedPiece: Empty,
	}
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return m.Capture || m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion && m.PromotedPiece != Empty
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsNull returns true if this is a null move.
func (m *Move) IsNull() bool {
	return m.Class == NullMove
}

// Destination returns the destination square of the move.
func (m *Move) Destination() Square {
	return NewSquare(m.ToCol, m.ToRank)
}
