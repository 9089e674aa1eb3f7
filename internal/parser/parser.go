// Package parser reads PGN text and streams each game to a Visitor.
package parser

import (
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/config"
	"github.com/lgbarn/blindfold-chess-go/internal/errors"
)

// Skip tells the reader whether to skip the part of the game that follows.
type Skip bool

// Visitor receives the events of one game, in this order:
//
//	BeginGame, Header*, EndHeaders,
//	{Move | Comment | NAG | BeginVariation ... EndVariation}*,
//	Outcome, EndGame
//
// Variations nest. When BeginVariation returns Skip(true) the whole side line
// is consumed without events and no matching EndVariation is delivered.
type Visitor interface {
	BeginGame()
	Header(key, value []byte)
	EndHeaders() Skip
	Move(m *chess.Move)
	Comment(text []byte)
	NAG(nag string)
	BeginVariation() Skip
	EndVariation()
	Outcome(result string)
	EndGame() (string, error)
}

// Reader streams PGN games from an input to a Visitor.
type Reader struct {
	lexer        *Lexer
	currentToken Token
	cfg          *config.Config
	source       string
	games        int
}

// NewReader creates a reader over r.
// If cfg is nil, a default config is created.
func NewReader(r io.Reader, cfg *config.Config) *Reader {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Reader{
		lexer: NewLexer(r, cfg),
		cfg:   cfg,
	}
}

// SetSource names the input in errors returned by ReadGame.
func (p *Reader) SetSource(name string) {
	p.source = name
}

// Games returns the number of games read so far.
func (p *Reader) Games() int {
	return p.games
}

// nextToken gets the next token from the lexer.
func (p *Reader) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ReadGame reads the next game, delivering its events to v, and returns the
// text produced by v.EndGame. The boolean is false once the input holds no
// further game, in which case v receives no events.
func (p *Reader) ReadGame(v Visitor) (string, bool, error) {
	if p.currentToken.Type == NoToken {
		p.nextToken()
	}

	p.skipToNextGame()
	if p.currentToken.Type == EOFToken {
		return "", false, nil
	}

	p.lexer.StartGame()
	p.games++
	startLine := p.currentToken.Line

	v.BeginGame()
	p.readTags(v)

	if skip := v.EndHeaders(); skip {
		p.skipGameBody()
	} else {
		p.readAnnotations(v)
		p.readMoveList(v)
		p.readAnnotations(v)
	}

	v.Outcome(p.readResult())

	text, err := v.EndGame()
	if err != nil {
		gameErr, ok := errors.AsGameError(err)
		if !ok {
			gameErr = &errors.GameError{Err: err}
		}
		gameErr.GameNum = p.games
		gameErr.File = p.source
		gameErr.Line = int(startLine)
		return "", true, gameErr
	}
	return text, true, nil
}

// skipToNextGame skips tokens until the start of a game is found. Comments
// between games belong to no game and are dropped. A side line here has no
// move to replace, so it is dropped too rather than read as the main line.
func (p *Reader) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber, TerminatingResult:
			return
		case RAVStart:
			p.cfg.L().Warn("side line before the first move",
				zap.Uint("line", p.currentToken.Line))
			p.nextToken()
			p.skipVariation()
		default:
			p.nextToken()
		}
	}
}

// readTags delivers each well-formed tag pair in source order.
func (p *Reader) readTags(v Visitor) {
	for p.currentToken.Type == TagToken {
		name := p.currentToken.Text
		p.nextToken()

		if p.currentToken.Type != StringToken {
			p.cfg.L().Warn("missing tag string",
				zap.String("tag", name), zap.Uint("line", p.currentToken.Line))
			continue
		}
		v.Header([]byte(name), []byte(p.currentToken.Text))
		p.nextToken()
	}
}

// readMoveList delivers moves until something other than a move turns up.
func (p *Reader) readMoveList(v Visitor) {
	for p.readMove(v) {
	}
}

// readMove delivers one move along with the comments, NAGs and side lines
// that follow it.
func (p *Reader) readMove(v Visitor) bool {
	for p.currentToken.Type == MoveNumber {
		p.nextToken()
	}
	if p.currentToken.Type != MoveToken {
		return false
	}

	move := p.currentToken.Move
	p.nextToken()
	for p.currentToken.Type == CheckSymbol {
		p.nextToken()
	}

	v.Move(move)

	for {
		p.readAnnotations(v)
		if p.currentToken.Type != RAVStart {
			return true
		}
		p.readVariation(v)
	}
}

// readAnnotations delivers any run of comments and NAGs.
func (p *Reader) readAnnotations(v Visitor) {
	for {
		switch p.currentToken.Type {
		case CommentToken:
			v.Comment([]byte(p.currentToken.Text))
		case NAGToken:
			v.NAG(p.currentToken.Text)
		default:
			return
		}
		p.nextToken()
	}
}

// readVariation handles a side line starting at the current '(' token.
func (p *Reader) readVariation(v Visitor) {
	line := p.currentToken.Line
	p.nextToken()

	if skip := v.BeginVariation(); skip {
		p.skipVariation()
		return
	}

	p.readAnnotations(v)
	p.readMoveList(v)
	p.readAnnotations(v)

	// A result inside a side line is legal PGN but ends nothing.
	if p.currentToken.Type == TerminatingResult {
		p.nextToken()
		p.readAnnotations(v)
	}

	if p.currentToken.Type == RAVEnd {
		p.nextToken()
	} else {
		p.cfg.L().Warn("missing ')' for variation", zap.Uint("line", line))
	}
	v.EndVariation()
}

// skipVariation consumes a side line, nested side lines included, without
// delivering anything. The opening '(' has already been consumed.
func (p *Reader) skipVariation() {
	skipping := p.cfg.SkippingCurrentGame
	p.cfg.SkippingCurrentGame = true
	defer func() { p.cfg.SkippingCurrentGame = skipping }()

	depth := 1
	for depth > 0 {
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
		case EOFToken, TagToken:
			return
		}
		p.nextToken()
	}
}

// skipGameBody consumes the movetext of a game that the visitor declined.
func (p *Reader) skipGameBody() {
	skipping := p.cfg.SkippingCurrentGame
	p.cfg.SkippingCurrentGame = true
	defer func() { p.cfg.SkippingCurrentGame = skipping }()

	depth := 0
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken:
			return
		case TerminatingResult:
			if depth == 0 {
				return
			}
		case RAVStart:
			depth++
		case RAVEnd:
			if depth > 0 {
				depth--
			}
		}
		p.nextToken()
	}
}

// readResult consumes the game termination marker, if present.
func (p *Reader) readResult() string {
	if p.currentToken.Type != TerminatingResult {
		return ""
	}
	result := p.currentToken.Text
	// Defer reading past the result so that a following game's first line
	// is not consumed until it is asked for.
	p.currentToken = Token{}
	return result
}
