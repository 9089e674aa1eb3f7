// Package board describes a starting position piece by piece.
package board

import (
	"strings"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/names"
)

// Placement is one occupied square.
type Placement struct {
	Square chess.Square
	Piece  chess.Piece // coloured, see chess.MakeColouredPiece
}

// Snapshot is a decoded position: whose turn it is and every occupied
// square, in the order the decoder enumerated them.
type Snapshot struct {
	ToMove     chess.Colour
	Placements []Placement
}

// Describe renders the position as a "White/Black pieces" block, the side
// to move first. Pieces of each colour are listed pawns first and king
// last; squares of the same piece keep the snapshot's order.
func Describe(s *Snapshot) string {
	bySymbol := make(map[byte][]chess.Square)
	for _, p := range s.Placements {
		letter := chess.ColouredLetter(p.Piece)
		bySymbol[letter] = append(bySymbol[letter], p.Square)
	}

	var sb strings.Builder
	sb.WriteString(s.ToMove.String())
	sb.WriteString(" to move:\n")

	for _, colour := range []chess.Colour{s.ToMove, s.ToMove.Opposite()} {
		sb.WriteString(colour.String())
		sb.WriteString(":\n")
		describePieces(&sb, colour, bySymbol)
	}
	return sb.String()
}

// describePieces writes one line per piece of the given colour.
func describePieces(sb *strings.Builder, colour chess.Colour, bySymbol map[byte][]chess.Square) {
	for _, piece := range chess.PieceOrder {
		letter := chess.ColouredLetter(chess.MakeColouredPiece(colour, piece))
		squares, ok := bySymbol[letter]
		if !ok {
			continue
		}
		name := names.Piece(letter)
		for _, sq := range squares {
			sb.WriteString(name)
			sb.WriteByte(' ')
			sb.WriteString(names.Square(sq.File, sq.Rank))
			sb.WriteByte('\n')
		}
	}
}
