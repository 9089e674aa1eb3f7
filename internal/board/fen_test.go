package board

import (
	"errors"
	"testing"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	pgnerrors "github.com/lgbarn/blindfold-chess-go/internal/errors"
	"github.com/lgbarn/blindfold-chess-go/internal/testutil"
)

func TestFENDecoder_Decode(t *testing.T) {
	snapshot, err := NewFENDecoder().Decode("6qk/8/8/8/8/8/8/7K b - - 0 1")
	testutil.AssertNoError(t, err)
	if snapshot == nil {
		t.Fatal("Decode returned nil snapshot")
	}

	want := &Snapshot{
		ToMove: chess.Black,
		Placements: []Placement{
			{Square: chess.Square{File: 7, Rank: 0}, Piece: chess.W(chess.King)},
			{Square: chess.Square{File: 6, Rank: 7}, Piece: chess.B(chess.Queen)},
			{Square: chess.Square{File: 7, Rank: 7}, Piece: chess.B(chess.King)},
		},
	}
	testutil.AssertEqual(t, snapshot, want)
}

func TestFENDecoder_DescribeOpening(t *testing.T) {
	snapshot, err := NewFENDecoder().Decode("rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")
	testutil.AssertNoError(t, err)

	want := `White to move:
White:
Pawn Ana2
Pawn Bela2
Pawn Caesar2
Pawn David2
Pawn Felix2
Pawn Gustav2
Pawn Hector2
Pawn Eva4
Knight Bela1
Knight Gustav1
Bishop Caesar1
Bishop Felix1
Rook Ana1
Rook Hector1
Queen David1
King Eva1
Black:
Pawn Caesar5
Pawn Ana7
Pawn Bela7
Pawn David7
Pawn Eva7
Pawn Felix7
Pawn Gustav7
Pawn Hector7
Knight Bela8
Knight Gustav8
Bishop Caesar8
Bishop Felix8
Rook Ana8
Rook Hector8
Queen David8
King Eva8
`
	testutil.AssertEqual(t, Describe(snapshot), want)
}

func TestFENDecoder_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "not a fen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFENDecoder().Decode(tt.fen)
			if !errors.Is(err, pgnerrors.ErrInvalidFEN) {
				t.Errorf("Decode(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}
