package internal

import (
	"strconv"
	"unicode/utf8"
)

// lexer hands out one token per call to nextToken. It keeps no memory of
// tokens already produced.
type lexer struct {
	state *interpreterState

	source  string
	start   int
	current int

	line int
	col  int

	startLine int
	startCol  int
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		state:  state,
		source: state.source,
		line:   1,
		col:    1,
	}
}

func (l *lexer) nextToken() token {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startCol = l.col

	if l.isAtEnd() {
		return l.emit(tkEOF, nil)
	}

	c := l.peek()
	if isDigit(c) {
		return l.number()
	}
	if isAlpha(c) {
		return l.identifier()
	}
	if tk, ok := punctuation[c]; ok {
		l.advance()
		return l.emit(tk, nil)
	}

	// Take the whole rune so the diagnostic shows a readable character
	_, size := utf8.DecodeRuneInString(l.source[l.current:])
	for i := 0; i < size; i++ {
		l.advance()
	}
	l.fail(errIllegalChar)
	return token{}
}

func (l *lexer) number() token {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	lexeme := l.source[l.start:l.current]
	if len(lexeme) > 1 && lexeme[0] == '0' {
		l.fail(errInvalidNumber)
	}

	literal, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		l.fail(errNumberRange)
	}

	return l.emit(tkInteger, literal)
}

func (l *lexer) identifier() token {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}
	return l.emit(tkIdentifier, l.source[l.start:l.current])
}

func (l *lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.advance()
		default:
			return
		}
	}
}

func (l *lexer) advance() {
	if l.source[l.current] == '\n' {
		l.line++
		l.col = 0
	}
	l.current++
	l.col++
}

func (l *lexer) peek() byte {
	return l.source[l.current]
}

func (l *lexer) emit(tk tokenType, literal interface{}) token {
	return token{
		token:   tk,
		lexeme:  l.source[l.start:l.current],
		literal: literal,
		line:    l.startLine,
		col:     l.startCol,
	}
}

func (l *lexer) fail(err error) {
	l.state.fatalError(&LexError{
		Err:    err,
		Lexeme: l.source[l.start:l.current],
		Line:   l.startLine,
		Col:    l.startCol,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha also accepts '_', which may start an identifier
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
