package parser

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/blindfold-chess-go/internal/chess"
	"github.com/lgbarn/blindfold-chess-go/internal/config"
)

// Lexer splits PGN text into tokens. Input is read one line at a time and
// only comments run across lines.
type Lexer struct {
	src     *bufio.Reader
	cfg     *config.Config
	line    string
	pos     int
	lineNum uint
	done    bool

	// open counts '(' not yet matched by ')' in the current game.
	open uint
}

// moveChars holds every byte that may appear inside move text.
var moveChars [256]bool

func init() {
	for _, set := range []string{"abcdefgh", "12345678", "KQRNBkqrnb", "DTSPL", "xX:-=Oo0p"} {
		for i := 0; i < len(set); i++ {
			moveChars[set[i]] = true
		}
	}
	for _, c := range []byte{RussianKnightOrKing, RussianKingSecondLetter, RussianQueen, RussianRook, RussianBishop} {
		moveChars[c] = true
	}
}

// tokenStarts lists the punctuation that begins a token.
const tokenStarts = `[]"{};$!?+#.()*-%Z`

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isGlyph(c byte) bool { return c == '!' || c == '?' }

func isDot(c byte) bool { return c == '.' }

func isMoveChar(c byte) bool { return moveChars[c] }

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || isDigit(c) || c == '_'
}

func isJunk(c byte) bool {
	return !isSpace(c) && !moveChars[c] && strings.IndexByte(tokenStarts, c) < 0
}

// NewLexer creates a lexer over r.
// If cfg is nil, a default config is created.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{src: bufio.NewReader(r), cfg: cfg}
}

// StartGame forgets side lines left open by the previous game.
func (l *Lexer) StartGame() {
	l.open = 0
}

// NextToken returns the next token, or an EOFToken once input runs out.
func (l *Lexer) NextToken() Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return Token{Type: EOFToken, Line: l.lineNum}
			}
			continue
		}
		line := l.lineNum
		if tok, ok := l.scan(); ok {
			tok.Line = line
			return tok
		}
	}
}

// readLine loads the next input line without its line terminator.
func (l *Lexer) readLine() bool {
	if l.done {
		return false
	}
	line, err := l.src.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.warn("read failed", zap.Error(err))
		}
		if line == "" {
			return false
		}
	}
	l.line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) peek() byte {
	if l.pos < len(l.line) {
		return l.line[l.pos]
	}
	return 0
}

func (l *Lexer) skip(match func(byte) bool) {
	for l.pos < len(l.line) && match(l.line[l.pos]) {
		l.pos++
	}
}

// warn logs a lexical problem unless the current game is being skipped.
func (l *Lexer) warn(msg string, fields ...zap.Field) {
	if l.cfg.SkippingCurrentGame {
		return
	}
	l.cfg.L().Warn(msg, append(fields, zap.Uint("line", l.lineNum))...)
}

// scan reads whatever starts at the current position. The boolean is false
// when the input read produces no token.
func (l *Lexer) scan() (Token, bool) {
	start := l.pos
	c := l.line[start]
	l.pos++

	switch {
	case isSpace(c), c == ']':
		l.skip(isSpace)
	case c == '[':
		return l.scanTagName()
	case c == '"':
		return Token{Type: StringToken, Text: l.scanString()}, true
	case c == '{':
		return Token{Type: CommentToken, Text: l.scanComment()}, true
	case c == ';':
		text := l.line[l.pos:]
		l.pos = len(l.line)
		return Token{Type: CommentToken, Text: text}, true
	case c == '}':
		l.warn("unmatched comment end")
	case c == '$':
		l.skip(isDigit)
		return Token{Type: NAGToken, Text: l.line[start:l.pos]}, true
	case isGlyph(c):
		l.skip(isGlyph)
		glyph := l.line[start:l.pos]
		nag, ok := glyphNAGs[glyph]
		if !ok {
			l.warn("unknown glyph", zap.String("glyph", glyph))
			nag = "$0"
		}
		return Token{Type: NAGToken, Text: nag}, true
	case isCheck(c):
		l.skip(isCheck)
		return Token{Type: CheckSymbol}, true
	case isDot(c):
		l.skip(isDot)
	case c == '(':
		l.open++
		return Token{Type: RAVStart}, true
	case c == ')':
		if l.open == 0 {
			l.warn("too many ')' found")
			break
		}
		l.open--
		return Token{Type: RAVEnd}, true
	case c == '%' && start == 0:
		l.pos = len(l.line)
	case c == '*':
		return Token{Type: TerminatingResult, Text: "*"}, true
	case c == '-':
		if l.peek() == '-' {
			l.pos++
			return nullMoveToken(), true
		}
		l.warn("single '-' not allowed")
	case c == 'Z' && l.peek() == '0':
		l.pos++
		return nullMoveToken(), true
	case isDigit(c):
		return l.scanNumber(start), true
	case moveChars[c]:
		return l.scanMove(start)
	default:
		l.skip(isJunk)
		l.warn("unknown character", zap.String("text", l.line[start:l.pos]))
	}
	return Token{}, false
}

// scanTagName reads the tag name after '['.
func (l *Lexer) scanTagName() (Token, bool) {
	l.skip(isSpace)
	start := l.pos
	l.skip(isTagChar)
	if l.pos == start {
		l.warn("missing tag name")
		return Token{}, false
	}
	return Token{Type: TagToken, Text: l.line[start:l.pos]}, true
}

// scanString reads a quoted tag value up to its closing quote.
func (l *Lexer) scanString() string {
	var sb strings.Builder
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		l.pos++
		switch {
		case c == '\\' && l.pos < len(l.line):
			sb.WriteByte(l.line[l.pos])
			l.pos++
		case c == '"':
			return sb.String()
		default:
			sb.WriteByte(c)
		}
	}
	l.warn("missing closing quote")
	return sb.String()
}

// scanComment reads a brace comment and returns its text as written. Braces
// nest only when the config allows it.
func (l *Lexer) scanComment() string {
	var sb strings.Builder
	depth := 1
	for {
		for l.pos < len(l.line) {
			c := l.line[l.pos]
			l.pos++
			switch {
			case c == '{' && l.cfg.AllowNestedComments:
				depth++
			case c == '}':
				depth--
				if depth == 0 {
					return sb.String()
				}
			}
			sb.WriteByte(c)
		}
		if !l.readLine() {
			l.warn("missing end of comment")
			return sb.String()
		}
		sb.WriteByte('\n')
	}
}

// scanNumber reads a result, a castle written with zeros, or a move number
// with its dots.
func (l *Lexer) scanNumber(start int) Token {
	rest := l.line[start:]
	switch {
	case strings.HasPrefix(rest, "1/2"):
		l.pos = start + len("1/2")
		if strings.HasPrefix(l.line[l.pos:], "-1/2") {
			l.pos += len("-1/2")
		}
		return Token{Type: TerminatingResult, Text: "1/2-1/2"}
	case strings.HasPrefix(rest, "1-0"), strings.HasPrefix(rest, "0-1"):
		l.pos = start + 3
		return Token{Type: TerminatingResult, Text: rest[:3]}
	case strings.HasPrefix(rest, "0-0-0"):
		l.pos = start + 5
		return castleToken("O-O-O", chess.QueensideCastle)
	case strings.HasPrefix(rest, "0-0"):
		l.pos = start + 3
		return castleToken("O-O", chess.KingsideCastle)
	}

	l.skip(isDigit)
	text := l.line[start:l.pos]
	l.skip(isDot)
	return Token{Type: MoveNumber, Text: text}
}

// scanMove reads a run of move characters and decodes it.
func (l *Lexer) scanMove(start int) (Token, bool) {
	l.skip(isMoveChar)
	text := l.line[start:l.pos]
	if looksLikeMove(text) {
		return moveToken(DecodeMove(text)), true
	}
	l.warn("unknown move text", zap.String("text", text))
	return Token{}, false
}

// looksLikeMove accepts castling or anything naming both a file and a rank.
func looksLikeMove(text string) bool {
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o":
		return true
	}
	return strings.ContainsAny(text, "abcdefgh") && strings.ContainsAny(text, "12345678")
}
