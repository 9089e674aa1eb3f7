package parser

import "github.com/lgbarn/blindfold-chess-go/internal/chess"

// TokenType identifies what a Token holds.
type TokenType int

const (
	// NoToken is the zero Token: nothing has been read yet.
	NoToken TokenType = iota
	EOFToken
	TagToken          // Text is the tag name
	StringToken       // Text is the unescaped string
	CommentToken      // Text is the comment as written
	NAGToken          // Text is "$n"; glyphs are converted
	CheckSymbol       // + or #
	MoveNumber        // Text is the digits
	RAVStart          // (
	RAVEnd            // )
	MoveToken         // Move is set
	TerminatingResult // Text is 1-0, 0-1, 1/2-1/2 or *
)

var tokenTypeNames = [...]string{
	NoToken:           "NO_TOKEN",
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	CheckSymbol:       "CHECK_SYMBOL",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one unit of PGN text.
type Token struct {
	Type TokenType
	Text string
	Move *chess.Move

	// Line is the input line the token starts on.
	Line uint
}

func moveToken(m *chess.Move) Token {
	return Token{Type: MoveToken, Move: m}
}

func castleToken(text string, class chess.MoveClass) Token {
	return moveToken(&chess.Move{Text: text, Class: class, PieceToMove: chess.King})
}

func nullMoveToken() Token {
	return moveToken(&chess.Move{Text: chess.NullMoveString, Class: chess.NullMove})
}

// glyphNAGs maps move-suffix glyphs to their numeric annotation.
var glyphNAGs = map[string]string{
	"!":  "$1",
	"?":  "$2",
	"!!": "$3",
	"??": "$4",
	"!?": "$5",
	"?!": "$6",
}
