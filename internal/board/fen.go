package board

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/errors"
)

// FENDecoder decodes FEN strings with the corentings chess library.
type FENDecoder struct{}

// NewFENDecoder returns a decoder for FEN starting positions.
func NewFENDecoder() *FENDecoder {
	return &FENDecoder{}
}

// Decode parses fen and enumerates its pieces square by square, rank 1 to
// rank 8 and file a to file h within each rank.
func (d *FENDecoder) Decode(fen string) (*Snapshot, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	position := nchess.NewGame(opt).Position()
	if position == nil || position.Board() == nil {
		return nil, fmt.Errorf("%q: no position: %w", fen, errors.ErrInvalidFEN)
	}

	snapshot := &Snapshot{ToMove: chess.White}
	if position.Turn() == nchess.Black {
		snapshot.ToMove = chess.Black
	}

	b := position.Board()
	for rank := nchess.Rank1; rank <= nchess.Rank8; rank++ {
		for file := nchess.FileA; file <= nchess.FileH; file++ {
			piece := b.Piece(nchess.NewSquare(file, rank))
			if piece == nchess.NoPiece {
				continue
			}
			kind, ok := pieceKinds[piece.Type()]
			if !ok {
				continue
			}
			colour := chess.White
			if piece.Color() == nchess.Black {
				colour = chess.Black
			}
			snapshot.Placements = append(snapshot.Placements, Placement{
				Square: chess.Square{File: int(file), Rank: int(rank)},
				Piece:  chess.MakeColouredPiece(colour, kind),
			})
		}
	}
	return snapshot, nil
}

var pieceKinds = map[nchess.PieceType]chess.Piece{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}
