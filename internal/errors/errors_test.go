package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrInvalidHeader", ErrInvalidHeader},
		{"ErrUnbalancedVariation", ErrUnbalancedVariation},
		{"ErrParseFailure", ErrParseFailure},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("converting game: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:     ErrInvalidHeader,
				GameNum: 5,
				Header:  "White",
				File:    "puzzles.pgn",
				Line:    42,
			},
			contains: []string{"game 5", "White", "puzzles.pgn:42", "invalid header encoding"},
		},
		{
			name: "line without file",
			err: &GameError{
				Err:     ErrInvalidFEN,
				GameNum: 2,
				Line:    7,
			},
			contains: []string{"line 7", "game 2", "invalid FEN"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:     ErrParseFailure,
				GameNum: 1,
			},
			contains: []string{"game 1", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:     ErrInvalidFEN,
		GameNum: 1,
		File:    "test.pgn",
	}

	unwrapped := errors.Unwrap(gameErr)
	if !errors.Is(unwrapped, ErrInvalidFEN) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrInvalidFEN)
	}

	if !errors.Is(gameErr, ErrInvalidFEN) {
		t.Error("errors.Is(gameErr, ErrInvalidFEN) = false, want true")
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:     ErrInvalidHeader,
		GameNum: 3,
		Header:  "Event",
	}

	wrapped := fmt.Errorf("conversion failed: %w", gameErr)

	var extractedErr *GameError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract GameError")
	}

	if extractedErr.GameNum != 3 {
		t.Errorf("extractedErr.GameNum = %d, want 3", extractedErr.GameNum)
	}
	if extractedErr.Header != "Event" {
		t.Errorf("extractedErr.Header = %q, want %q", extractedErr.Header, "Event")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "decoding starting position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "decoding starting position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnbalancedVariation, "depth %d in game %d", 3, 9)

	if !errors.Is(wrapped, ErrUnbalancedVariation) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "depth 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestAsGameError(t *testing.T) {
	inner := &GameError{Err: ErrInvalidHeader, Header: "Event"}
	wrapped := fmt.Errorf("converting: %w", inner)

	got, ok := AsGameError(wrapped)
	if !ok || got != inner {
		t.Errorf("AsGameError(wrapped) = %v, %v; want the inner GameError", got, ok)
	}
	if _, ok := AsGameError(ErrInvalidFEN); ok {
		t.Error("AsGameError(sentinel) = true, want false")
	}
}
