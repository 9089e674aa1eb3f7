// Package convert turns the events of a PGN game into a spoken-style
// description for blindfold practice.
//
// A game that starts from a FEN position becomes a numbered exercise: the
// position is described piece by piece and the moves follow as the solution.
// A game without a starting position is rendered as its move transcript.
package convert

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/lgbarn/blindfold-chess-go/internal/board"
	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/config"
	"github.com/lgbarn/blindfold-chess-go/internal/errors"
	"github.com/lgbarn/blindfold-chess-go/internal/notation"
	"github.com/lgbarn/blindfold-chess-go/internal/parser"
	"github.com/lgbarn/blindfold-chess-go/internal/variation"
)

// fenHeader is the header that carries a game's starting position.
const fenHeader = "FEN"

// PositionDecoder turns a FEN string into a piece placement.
type PositionDecoder interface {
	Decode(fen string) (*board.Snapshot, error)
}

// Options selects what goes into a description.
type Options struct {
	IncludeSideLines bool
	IncludeComments  bool
}

// OptionsFromConfig reads the conversion switches from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		IncludeSideLines: cfg.IncludeSideLines,
		IncludeComments:  cfg.IncludeComments,
	}
}

// separator is whitespace owed after the last thing written. It is only
// written once something follows it.
type separator int

const (
	sepNone separator = iota
	sepSpace
	sepNewline
	// sepBracket follows a side line's opening: a move goes straight after
	// it, a comment starts a new line.
	sepBracket
)

// Converter describes games one at a time. It keeps the exercise count
// across games, so one Converter serves one run. It is not safe for
// concurrent use.
type Converter struct {
	opts    Options
	decoder PositionDecoder
	logger  *zap.Logger

	fen     string
	fenSet  bool
	moves   strings.Builder
	pending separator
	starts  bool
	stack   *variation.Stack
	err     error

	exercises int
}

var _ parser.Visitor = (*Converter)(nil)

// New creates a Converter. A nil decoder selects board.FENDecoder and a nil
// logger discards log output.
func New(opts Options, decoder PositionDecoder, logger *zap.Logger) *Converter {
	if decoder == nil {
		decoder = board.NewFENDecoder()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		opts:    opts,
		decoder: decoder,
		logger:  logger,
		stack:   variation.NewStack(),
	}
}

// Exercises returns the number of exercises described so far.
func (c *Converter) Exercises() int {
	return c.exercises
}

// BeginGame implements parser.Visitor.
func (c *Converter) BeginGame() {}

// Header keeps the first FEN header of the game. Keys and values must be
// valid UTF-8; anything else fails the game.
func (c *Converter) Header(key, value []byte) {
	if c.err != nil {
		return
	}
	if !utf8.Valid(key) || !utf8.Valid(value) {
		c.err = &errors.GameError{
			Err:    fmt.Errorf("%w: %q is not valid UTF-8", errors.ErrInvalidHeader, value),
			Header: string(key),
		}
		return
	}
	if c.fenSet || !bytes.Equal(key, []byte(fenHeader)) {
		return
	}
	c.fen = string(value)
	c.fenSet = true
}

// EndHeaders implements parser.Visitor. The movetext is always read.
func (c *Converter) EndHeaders() parser.Skip {
	return false
}

// Move writes one ply of the current line, numbered when White plays it.
func (c *Converter) Move(m *chess.Move) {
	if c.err != nil {
		return
	}
	count := c.stack.Advance()
	c.flush()
	c.moves.WriteString(variation.Number(count, c.starts))
	c.starts = false
	c.moves.WriteString(notation.Translate(m))

	if count%2 == 0 {
		c.pending = sepNewline
	} else {
		c.pending = sepSpace
	}
}

// Comment writes a comment, exactly as written, on a line of its own when
// comments are enabled. An empty comment writes nothing.
func (c *Converter) Comment(text []byte) {
	if c.err != nil || !c.opts.IncludeComments || len(text) == 0 {
		return
	}
	c.breakLine()
	c.moves.Write(text)
	c.pending = sepNewline
}

// NAG implements parser.Visitor. Annotations are not described.
func (c *Converter) NAG(nag string) {
	c.logger.Debug("ignoring NAG", zap.String("nag", nag))
}

// BeginVariation opens a side line on a new line, or asks for it to be
// skipped when side lines are disabled.
func (c *Converter) BeginVariation() parser.Skip {
	if !c.opts.IncludeSideLines {
		return true
	}
	if c.err != nil {
		// Keep reading so that the matching EndVariation arrives.
		return false
	}
	if _, err := c.stack.Push(); err != nil {
		c.err = err
		return false
	}
	c.breakLine()
	c.moves.WriteString(variation.Opening)
	c.pending = sepBracket
	c.starts = true
	return false
}

// EndVariation closes the current side line. Whatever separator was owed
// is dropped so nothing comes between the last move and the bracket.
func (c *Converter) EndVariation() {
	if c.err != nil {
		return
	}
	if err := c.stack.Pop(); err != nil {
		c.err = err
		return
	}
	c.moves.WriteString(variation.Closing)
	c.pending = sepNewline
	c.starts = false
}

// Outcome implements parser.Visitor. The result is not described.
func (c *Converter) Outcome(result string) {
	c.logger.Debug("ignoring outcome", zap.String("result", result))
}

// EndGame returns the description of the finished game and clears the
// per-game state, whether or not the game could be described.
func (c *Converter) EndGame() (string, error) {
	defer c.reset()

	if c.err != nil {
		return "", c.err
	}
	c.breakLine()

	if !c.fenSet {
		return c.moves.String(), nil
	}

	snapshot, err := c.decoder.Decode(c.fen)
	if err != nil {
		return "", &errors.GameError{Err: err, Header: fenHeader}
	}
	c.exercises++

	var sb strings.Builder
	fmt.Fprintf(&sb, "Exercise %d:\n", c.exercises)
	sb.WriteString(board.Describe(snapshot))
	if c.moves.Len() > 0 {
		sb.WriteString("Solution:\n")
		sb.WriteString(c.moves.String())
	}

	c.logger.Debug("described exercise",
		zap.Int("exercise", c.exercises), zap.Int("bytes", sb.Len()))
	return sb.String(), nil
}

// flush writes the separator owed before the next move.
func (c *Converter) flush() {
	switch c.pending {
	case sepSpace:
		c.moves.WriteByte(' ')
	case sepNewline:
		c.moves.WriteByte('\n')
	}
	c.pending = sepNone
}

// breakLine ends the current line unless nothing has been written on it.
func (c *Converter) breakLine() {
	if c.pending != sepNone {
		c.moves.WriteByte('\n')
	}
	c.pending = sepNone
}

func (c *Converter) reset() {
	c.fen = ""
	c.fenSet = false
	c.moves.Reset()
	c.pending = sepNone
	c.starts = false
	c.stack.Reset()
	c.err = nil
}
