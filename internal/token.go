package internal

import "fmt"

// tokenType identifies the kind of a token
type tokenType int

const (
	tkEOF tokenType = iota

	// Literals.
	// integer, *variable*
	tkInteger
	tkIdentifier

	// Single-character tokens.
	// +, -, *, /, (, ), =, ;
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkLeftParen
	tkRightParen
	tkEqual
	tkSemicolon
)

var tokenNames = [...]string{
	tkEOF:        "end of input",
	tkInteger:    "integer",
	tkIdentifier: "identifier",
	tkPlus:       "'+'",
	tkMinus:      "'-'",
	tkStar:       "'*'",
	tkSlash:      "'/'",
	tkLeftParen:  "'('",
	tkRightParen: "')'",
	tkEqual:      "'='",
	tkSemicolon:  "';'",
}

func (t tokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

var punctuation = map[byte]tokenType{
	'+': tkPlus,
	'-': tkMinus,
	'*': tkStar,
	'/': tkSlash,
	'(': tkLeftParen,
	')': tkRightParen,
	'=': tkEqual,
	';': tkSemicolon,
}

// token is produced by the lexer and never modified afterwards.
// literal is set only for tkInteger (int64) and tkIdentifier (string).
type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
	col     int
}

func (t token) String() string {
	switch t.token {
	case tkInteger, tkIdentifier:
		return fmt.Sprintf("%s %q", t.token, t.lexeme)
	}
	return t.token.String()
}
