// Package names holds the fixed word tables used to speak squares and pieces
// without coordinates.
package names

import "strconv"

// Sentinels returned for inputs outside the tables.
const (
	UnknownFile  = "unknown"
	UnknownRank  = "unknown"
	UnknownPiece = "None"
)

const boardSize = 8

var fileNames = [boardSize]string{"Ana", "Bela", "Caesar", "David", "Eva", "Felix", "Gustav", "Hector"}

// File returns the phonetic word for a 0-based file index.
func File(index int) string {
	if index < 0 || index >= len(fileNames) {
		return UnknownFile
	}
	return fileNames[index]
}

// Rank renders a 0-based rank index as its 1-based digit.
func Rank(index int) string {
	if index < 0 || index >= boardSize {
		return UnknownRank
	}
	return strconv.Itoa(index + 1)
}

// Piece returns the piece name for a role letter. Case is ignored, so a
// white and a black queen are both "Queen".
func Piece(letter byte) string {
	switch letter {
	case 'p', 'P':
		return "Pawn"
	case 'n', 'N':
		return "Knight"
	case 'b', 'B':
		return "Bishop"
	case 'r', 'R':
		return "Rook"
	case 'q', 'Q':
		return "Queen"
	case 'k', 'K':
		return "King"
	default:
		return UnknownPiece
	}
}

// Square returns the spoken form of a square, e.g. "Gustav1".
func Square(file, rank int) string {
	return File(file) + Rank(rank)
}
