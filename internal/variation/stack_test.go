package variation

import (
	"errors"
	"testing"

	pgnerrors "github.com/lgbarn/blindfold-chess-go/internal/errors"
)

func TestStack_AdvanceAndNesting(t *testing.T) {
	s := NewStack()
	if got := s.Ply(); got != 0 {
		t.Fatalf("Ply() = %d, want 0", got)
	}

	s.Advance()
	s.Advance()

	count, err := s.Push()
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Push() = %d, want 1", count)
	}
	if got := s.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1", got)
	}

	s.Advance()
	s.Advance()
	if got := s.Ply(); got != 3 {
		t.Errorf("Ply() in side line = %d, want 3", got)
	}

	if err := s.Pop(); err != nil {
		t.Fatalf("Pop() error = %v", err)
	}
	if got := s.Ply(); got != 2 {
		t.Errorf("Ply() after Pop = %d, want 2", got)
	}
}

func TestStack_PushAtStartClampsToZero(t *testing.T) {
	s := NewStack()
	count, err := s.Push()
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Push() = %d, want 0", count)
	}
}

func TestStack_PopMainLine(t *testing.T) {
	s := NewStack()
	err := s.Pop()
	if !errors.Is(err, pgnerrors.ErrUnbalancedVariation) {
		t.Fatalf("Pop() error = %v, want ErrUnbalancedVariation", err)
	}
	if got := s.Depth(); got != 0 {
		t.Errorf("Depth() = %d, want 0", got)
	}
}

func TestStack_MaxDepth(t *testing.T) {
	s := NewStack()
	for i := 0; i < MaxDepth; i++ {
		if _, err := s.Push(); err != nil {
			t.Fatalf("Push() #%d error = %v", i, err)
		}
	}
	if _, err := s.Push(); !errors.Is(err, pgnerrors.ErrUnbalancedVariation) {
		t.Errorf("Push() beyond MaxDepth error = %v, want ErrUnbalancedVariation", err)
	}
}

func TestStack_Reset(t *testing.T) {
	s := NewStack()
	s.Advance()
	s.Advance()
	s.Push()
	s.Push()
	s.Reset()

	if got := s.Depth(); got != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", got)
	}
	if got := s.Ply(); got != 0 {
		t.Errorf("Ply() after Reset = %d, want 0", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		count  int
		starts bool
		want   string
	}{
		{1, false, "1. "},
		{1, true, "1. "},
		{2, false, ""},
		{2, true, "1... "},
		{3, false, "2. "},
		{10, true, "5... "},
	}

	for _, tt := range tests {
		if got := Number(tt.count, tt.starts); got != tt.want {
			t.Errorf("Number(%d, %v) = %q, want %q", tt.count, tt.starts, got, tt.want)
		}
	}
}

func TestMoveNumber(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{1, 1}, {2, 2}, {3, 2}, {4, 3}, {5, 3},
	}
	for _, tt := range tests {
		if got := MoveNumber(tt.count); got != tt.want {
			t.Errorf("MoveNumber(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
