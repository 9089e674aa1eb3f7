// Package variation tracks ply counts across nested side lines.
package variation

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/blindfold-chess-go/internal/errors"
)

// MaxDepth bounds the nesting of side lines.
const MaxDepth = 256

// Stack holds one ply count per open line. The bottom entry is the main
// line and is never popped.
type Stack struct {
	counts []int
}

// NewStack returns a stack holding only the main line at ply zero.
func NewStack() *Stack {
	s := &Stack{counts: make([]int, 1, 8)}
	return s
}

// Reset drops all side lines and rewinds the main line to ply zero.
func (s *Stack) Reset() {
	s.counts = s.counts[:1]
	s.counts[0] = 0
}

// Depth returns the number of open side lines.
func (s *Stack) Depth() int {
	return len(s.counts) - 1
}

// Ply returns the ply count of the current line.
func (s *Stack) Ply() int {
	return s.counts[len(s.counts)-1]
}

// Advance counts one more ply on the current line and returns the new count.
func (s *Stack) Advance() int {
	s.counts[len(s.counts)-1]++
	return s.Ply()
}

// Push opens a side line. The side line replaces the last ply of the line
// it branches from, so it starts one ply earlier (never below zero).
func (s *Stack) Push() (int, error) {
	if s.Depth() >= MaxDepth {
		return s.Ply(), fmt.Errorf("%w: more than %d nested side lines", errors.ErrUnbalancedVariation, MaxDepth)
	}
	count := s.Ply() - 1
	if count < 0 {
		count = 0
	}
	s.counts = append(s.counts, count)
	return count, nil
}

// Pop closes the current side line.
func (s *Stack) Pop() error {
	if s.Depth() == 0 {
		return fmt.Errorf("%w: no side line to close", errors.ErrUnbalancedVariation)
	}
	s.counts = s.counts[:len(s.counts)-1]
	return nil
}

// MoveNumber returns the full-move number shown before the ply that brings
// the line to count.
func MoveNumber(count int) int {
	return count/2 + 1
}

// Opening is the text that opens a side line.
const Opening = "("

// Number returns the move number written before the ply that brings a line
// to count: "<n>. " before White's ply. Black's ply is numbered "<n>... "
// only when it starts a run of moves, as the first move of a side line does.
func Number(count int, starts bool) string {
	switch {
	case count%2 == 1:
		return strconv.Itoa(MoveNumber(count)) + ". "
	case starts:
		return strconv.Itoa(MoveNumber(count-1)) + "... "
	default:
		return ""
	}
}

// Closing is the text that closes a side line.
const Closing = ")"
