package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/blindfold-chess-go/internal/config"
	"github.com/lgbarn/blindfold-chess-go/internal/parser"
)

// ReadGames runs every game in pgn through v and returns the text v produced
// for each one. It calls t.Fatal on the first error.
func ReadGames(t *testing.T, pgn string, v parser.Visitor) []string {
	t.Helper()
	texts, err := TryReadGames(pgn, v)
	if err != nil {
		t.Fatalf("reading games: %v\n%s", err, pgn)
	}
	return texts
}

// TryReadGames is ReadGames for tests that expect an error. It stops at the
// first error and returns the texts produced before it.
func TryReadGames(pgn string, v parser.Visitor) ([]string, error) {
	r := parser.NewReader(strings.NewReader(pgn), config.NewConfig())
	var texts []string
	for {
		text, ok, err := r.ReadGame(v)
		if err != nil {
			return texts, err
		}
		if !ok {
			return texts, nil
		}
		texts = append(texts, text)
	}
}

// Joined runs every game in pgn through v and concatenates the results, the
// way a run writes them out.
func Joined(t *testing.T, pgn string, v parser.Visitor) string {
	t.Helper()
	return strings.Join(ReadGames(t, pgn, v), "")
}
