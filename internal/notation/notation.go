// Package notation turns decoded moves into spoken phrases.
package notation

import (
	"strings"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/names"
)

// Phrases for moves that have no square to speak.
const (
	ShortCastling = "Short Castling"
	LongCastling  = "Long Castling"
	Placeholder   = "--"
)

// Translate returns the phrase for a single move, e.g. "Knight Bela David7"
// for Nbd7 or "Eva takes David5" for exd5.
func Translate(m *chess.Move) string {
	if m == nil {
		return Placeholder
	}

	switch m.Class {
	case chess.KingsideCastle:
		return ShortCastling
	case chess.QueensideCastle:
		return LongCastling
	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove, chess.PieceMove:
		return translateNormal(m)
	default:
		return Placeholder
	}
}

// translateNormal renders a pawn or piece move.
func translateNormal(m *chess.Move) string {
	dest := m.Destination()
	if dest.File < 0 || dest.Rank < 0 {
		return Placeholder
	}

	words := make([]string, 0, 6)
	if m.PieceToMove != chess.Pawn {
		words = append(words, names.Piece(m.PieceToMove.Letter()))
	}
	if m.FromCol != 0 {
		words = append(words, names.File(m.FromCol.Index()))
	}
	if m.FromRank != 0 {
		words = append(words, names.Rank(m.FromRank.Index()))
	}
	if m.IsCapture() {
		words = append(words, "takes")
	}
	words = append(words, names.Square(dest.File, dest.Rank))

	phrase := strings.Join(words, " ")
	if m.IsPromotion() {
		phrase += " promotes to " + names.Piece(m.PromotedPiece.Letter())
	}
	return phrase
}
