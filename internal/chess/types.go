// Package chess provides the core chess types shared by the reader, the
// translator and the board describer.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type, or a coloured piece when built
// with MakeColouredPiece.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceOrder is the order in which piece kinds are listed in a description.
var PieceOrder = []Piece{Pawn, Knight, Bishop, Rook, Queen, King}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// ColouredLetter returns the FEN letter of a coloured piece: uppercase for
// White, lowercase for Black.
func ColouredLetter(colouredPiece Piece) byte {
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
	NullMove
	UnknownMove
)

// Rank represents a chess rank (row) - '1' to '8'. Zero means "not given".
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'. Zero means "not given".
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Index returns the 0-based rank index, or -1 if the rank is not on the board.
func (r Rank) Index() int {
	if r >= FirstRank && r <= LastRank {
		return int(r - RankBase)
	}
	return -1
}

// Index returns the 0-based file index, or -1 if the file is not on the board.
func (c Col) Index() int {
	if c >= FirstCol && c <= LastCol {
		return int(c - ColBase)
	}
	return -1
}

// Square is a board square addressed by 0-based file and rank indices.
type Square struct {
	File int
	Rank int
}

// NewSquare builds a square from its file and rank characters.
func NewSquare(col Col, rank Rank) Square {
	return Square{File: col.Index(), Rank: rank.Index()}
}

// NullMoveString is the PGN representation of a null move.
const NullMoveString = "--"
