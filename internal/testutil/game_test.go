package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/parser"
)

// moveLister returns the text of each game's moves, one per line.
type moveLister struct {
	moves []string
	fail  bool
}

func (m *moveLister) BeginGame()                  { m.moves = nil }
func (m *moveLister) Header(key, value []byte)    {}
func (m *moveLister) EndHeaders() parser.Skip     { return false }
func (m *moveLister) Move(mv *chess.Move)         { m.moves = append(m.moves, mv.Text) }
func (m *moveLister) Comment(text []byte)         {}
func (m *moveLister) NAG(nag string)              {}
func (m *moveLister) BeginVariation() parser.Skip { return true }
func (m *moveLister) EndVariation()               {}
func (m *moveLister) Outcome(result string)       {}

func (m *moveLister) EndGame() (string, error) {
	if m.fail {
		return "", errors.New("visitor failed")
	}
	if len(m.moves) == 0 {
		return "", nil
	}
	return strings.Join(m.moves, "\n") + "\n", nil
}

func TestReadGames(t *testing.T) {
	tests := []struct {
		name string
		pgn  string
		want []string
	}{
		{
			name: "empty PGN",
			pgn:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			pgn:  "   \n\t  ",
			want: nil,
		},
		{
			name: "single game",
			pgn: `[Event "Test"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0`,
			want: []string{"e4\ne5\nNf3\n"},
		},
		{
			name: "side lines skipped",
			pgn:  "1. e4 e5 (1... c5 2. Nf3) 2. Nf3 *",
			want: []string{"e4\ne5\nNf3\n"},
		},
		{
			name: "two games",
			pgn: `[Event "Test1"]

1. e4 *

[Event "Test2"]

1. d4 *`,
			want: []string{"e4\n", "d4\n"},
		},
		{
			name: "headers only",
			pgn:  `[Event "Nothing"]`,
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertEqual(t, ReadGames(t, tt.pgn, &moveLister{}), tt.want)
		})
	}
}

func TestJoined(t *testing.T) {
	pgn := "1. e4 *\n\n1. d4 d5 *\n"
	AssertEqual(t, Joined(t, pgn, &moveLister{}), "e4\nd4\nd5\n")
}

func TestTryReadGamesStopsAtError(t *testing.T) {
	texts, err := TryReadGames("1. e4 *\n", &moveLister{fail: true})
	AssertError(t, err)
	AssertEqual(t, len(texts), 0)
}
