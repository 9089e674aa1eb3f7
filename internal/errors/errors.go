// Package errors provides sentinel errors and error types for the blindfold
// converter. Sentinels are checked with errors.Is(); GameError carries the
// game context and supports errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string in a starting position.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidHeader indicates a header key or value that is not valid UTF-8.
	ErrInvalidHeader = errors.New("invalid header encoding")

	// ErrUnbalancedVariation indicates a side line closed without being opened,
	// or nested beyond the supported depth.
	ErrUnbalancedVariation = errors.New("unbalanced variation")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context: the game number within the
// input, the line the game starts on, and the header involved, if any.
type GameError struct {
	Err     error  // The underlying error
	GameNum int    // 1-based game number in the input
	Header  string // Header key involved (if applicable)
	File    string // Source file name (if known)
	Line    int    // Line the game starts on (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.Header != "" {
		parts = append(parts, fmt.Sprintf("header %q", e.Header))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// AsGameError returns the GameError in err's chain, if there is one.
func AsGameError(err error) (*GameError, bool) {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr, true
	}
	return nil, false
}
