package parser

import (
	"strings"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
)

// Russian piece letters in the KOI8-R encoding.
const (
	RussianKnightOrKing     = 0xcb // King and Knight
	RussianKingSecondLetter = 0xf0 // King (second character)
	RussianQueen            = 0xc6 // Queen
	RussianRook             = 0xcc // Rook
	RussianBishop           = 0xd3 // Bishop
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.FirstCol && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.FirstRank && c <= chess.LastRank
}

// isPiece returns the piece type represented by the character(s) at the start of move.
func isPiece(move string) chess.Piece {
	if len(move) == 0 {
		return chess.Empty
	}

	switch move[0] {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q', 'D': // D = Dutch/German Queen
		return chess.Queen
	case 'R', 'r', 'T': // T = Dutch/German Rook
		return chess.Rook
	case 'N', 'n', 'P', 'S': // P = Dutch Knight, S = German Knight
		return chess.Knight
	case 'B', 'L': // lowercase 'b' is a file
		return chess.Bishop
	case RussianQueen:
		return chess.Queen
	case RussianRook:
		return chess.Rook
	case RussianBishop:
		return chess.Bishop
	case RussianKnightOrKing:
		if len(move) > 1 && move[1] == RussianKingSecondLetter {
			return chess.King
		}
		return chess.Knight
	}
	return chess.Empty
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// moveScanner walks the text of a single move.
type moveScanner struct {
	text    string
	pos     int
	capture bool
}

func (s *moveScanner) cur() byte {
	if s.pos >= len(s.text) {
		return 0
	}
	return s.text[s.pos]
}

func (s *moveScanner) next() {
	if s.pos < len(s.text) {
		s.pos++
	}
}

func (s *moveScanner) rest() string {
	if s.pos >= len(s.text) {
		return ""
	}
	return s.text[s.pos:]
}

// col consumes a file character, if there is one.
func (s *moveScanner) col() (chess.Col, bool) {
	if c := s.cur(); isCol(c) {
		s.next()
		return chess.Col(c), true
	}
	return 0, false
}

// rank consumes a rank character, if there is one.
func (s *moveScanner) rank() (chess.Rank, bool) {
	if c := s.cur(); isRank(c) {
		s.next()
		return chess.Rank(c), true
	}
	return 0, false
}

// separator consumes a capture mark or a '-' between squares. Only the
// capture marks flag the move as a capture.
func (s *moveScanner) separator() {
	switch s.cur() {
	case 'x', 'X', ':':
		s.capture = true
		s.next()
	case '-':
		s.next()
	}
}

// adjacent reports whether two files are next to each other.
func adjacent(a, b chess.Col) bool {
	return a == b+1 || a+1 == b
}

// DecodeMove decodes the text of a move into its parts. It looks only at the
// text: a shape it cannot make sense of is returned with class UnknownMove.
func DecodeMove(moveString string) *chess.Move {
	move := chess.NewMove()
	move.Text = moveString

	s := &moveScanner{text: moveString}
	ok := true

	switch {
	case isCol(s.cur()):
		ok = decodePawnMove(s, move)
	case isPiece(s.rest()) != chess.Empty:
		ok = decodePieceMove(s, move)
	case isCastlingChar(s.cur()):
		ok = decodeCastle(s, move)
	case moveString == chess.NullMoveString:
		move.Class = chess.NullMove
	default:
		ok = false
	}

	if ok && move.Class != chess.NullMove {
		for isCheck(s.cur()) {
			s.next()
		}

		switch rest := s.rest(); {
		case rest == "":
		case move.Class == chess.PawnMove && (strings.HasSuffix(rest, "ep") || strings.HasSuffix(rest, "e.p.")):
			move.Class = chess.EnPassantPawnMove
			move.Capture = true
		default:
			ok = false
		}
	}

	if !ok {
		move.Class = chess.UnknownMove
	}
	move.Capture = move.Capture || s.capture
	return move
}

// decodePawnMove handles e4, e2e4, exd5, ed5, bxa1=N, e8Q and friends.
func decodePawnMove(s *moveScanner, move *chess.Move) bool {
	move.Class = chess.PawnMove
	move.PieceToMove = chess.Pawn

	col, _ := s.col()
	if rank, found := s.rank(); found {
		s.separator()
		if to, found := s.col(); found {
			// e2e4
			move.FromCol, move.FromRank = col, rank
			move.ToCol = to
			move.ToRank, _ = s.rank()
		} else {
			move.ToCol, move.ToRank = col, rank
		}
	} else {
		s.separator()
		to, found := s.col()
		if !found {
			return false
		}
		move.FromCol, move.ToCol = col, to
		if toRank, found := s.rank(); found {
			move.ToRank = toRank
			// 'b' may be a bishop rather than a file
			if col != 'b' && !adjacent(col, to) {
				return false
			}
		} else if !adjacent(col, to) {
			return false
		}
	}

	// A pawn that changes file is capturing.
	if move.FromCol != 0 && move.FromCol != move.ToCol {
		move.Capture = true
	}

	if s.cur() == '=' {
		s.next()
	}
	if piece := isPiece(s.rest()); piece != chess.Empty {
		move.Class = chess.PawnMoveWithPromotion
		move.PromotedPiece = piece
		s.next()
	} else if s.cur() == 'b' {
		move.Class = chess.PawnMoveWithPromotion
		move.PromotedPiece = chess.Bishop
		s.next()
	}
	return true
}

// decodePieceMove handles Nf3, Nbd7, R1e1, Qh4e1, Rxe1 and Nfxe5.
func decodePieceMove(s *moveScanner, move *chess.Move) bool {
	move.Class = chess.PieceMove
	move.PieceToMove = isPiece(s.rest())

	if s.cur() == RussianKnightOrKing && move.PieceToMove == chess.King {
		s.next()
	}
	s.next()

	if rank, found := s.rank(); found {
		// R1e1, R1xe3
		move.FromRank = rank
		s.separator()
		to, found := s.col()
		if !found {
			return false
		}
		move.ToCol = to
		move.ToRank, _ = s.rank()
		return true
	}

	if c := s.cur(); c == 'x' || c == 'X' || c == ':' {
		// Rxe1
		s.separator()
		return decodeDestination(s, move)
	}

	col, found := s.col()
	if !found {
		return false
	}
	s.separator()

	if rank, found := s.rank(); found {
		s.separator()
		if isCol(s.cur()) {
			// Qh4e1
			move.FromCol, move.FromRank = col, rank
			return decodeDestination(s, move)
		}
		// Re1
		move.ToCol, move.ToRank = col, rank
		return true
	}

	// Rae1, Nfxe5
	move.FromCol = col
	return decodeDestination(s, move)
}

// decodeDestination reads a full destination square.
func decodeDestination(s *moveScanner, move *chess.Move) bool {
	col, found := s.col()
	if !found {
		return false
	}
	rank, found := s.rank()
	if !found {
		return false
	}
	move.ToCol, move.ToRank = col, rank
	return true
}

// decodeCastle handles O-O, O-O-O and their 0 and o spellings.
func decodeCastle(s *moveScanner, move *chess.Move) bool {
	s.next()
	if s.cur() == '-' {
		s.next()
	}
	if !isCastlingChar(s.cur()) {
		return false
	}
	s.next()
	if s.cur() == '-' {
		s.next()
	}

	move.Class = chess.KingsideCastle
	if isCastlingChar(s.cur()) {
		move.Class = chess.QueensideCastle
		s.next()
	}
	move.PieceToMove = chess.King
	return true
}
