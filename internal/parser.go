package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// parser evaluates the program while it parses it. It pulls tokens from
// the lexer one at a time and keeps only the current one.
type parser struct {
	lexer   *lexer
	current token

	env   *env
	state *interpreterState
}

func newParser(state *interpreterState) *parser {
	return &parser{
		lexer: newLexer(state),
		env:   newEnv(),
		state: state,
	}
}

func (p *parser) parse() []Binding {
	p.advance()
	for !p.check(tkEOF) {
		p.assignment()
	}
	return p.env.bindings()
}

func (p *parser) assignment() {
	if !p.check(tkIdentifier) {
		p.syntaxError(errExpectedIdentifier, fmt.Sprintf("expected %s, found %s", tkIdentifier, p.current))
	}
	name := p.eat(tkIdentifier)
	p.eat(tkEqual)

	value := p.expression()
	p.env.assign(name.lexeme, value)
	p.state.logger.WithFields(logrus.Fields{
		"name":  name.lexeme,
		"value": value.String(),
		"line":  name.line,
	}).Debug("assign")

	p.eat(tkSemicolon)
}

func (p *parser) expression() number {
	value := p.term()
	for p.check(tkPlus, tkMinus) {
		operator := p.eat(p.current.token)
		right := p.term()
		value = p.arithmetic(operator, value, right)
	}
	return value
}

func (p *parser) term() number {
	value := p.factor()
	for p.check(tkStar, tkSlash) {
		operator := p.eat(p.current.token)
		right := p.factor()
		value = p.arithmetic(operator, value, right)
	}
	return value
}

func (p *parser) factor() number {
	start := p.current
	negative := false
	for p.check(tkMinus, tkPlus) {
		if p.eat(p.current.token).token == tkMinus {
			negative = !negative
		}
	}

	value := p.primary()
	if !negative {
		return value
	}
	value, err := value.negate()
	if err != nil {
		p.state.fatalError(&ArithmeticError{Err: err, Line: start.line, Col: start.col})
	}
	return value
}

func (p *parser) primary() number {
	switch p.current.token {
	case tkInteger:
		return intNumber(p.eat(tkInteger).literal.(int64))
	case tkIdentifier:
		return p.variable(p.eat(tkIdentifier))
	case tkLeftParen:
		p.eat(tkLeftParen)
		value := p.expression()
		p.eat(tkRightParen)
		return value
	}

	p.syntaxError(errUnexpectedToken, fmt.Sprintf("expected expression, found %s", p.current))
	return number{}
}

func (p *parser) variable(name token) number {
	if value, ok := p.env.get(name.lexeme); ok {
		return value
	}
	if p.state.strict {
		p.state.fatalError(&UninitializedVariableError{
			Name: name.lexeme,
			Line: name.line,
			Col:  name.col,
		})
	}
	p.state.logger.WithFields(logrus.Fields{
		"name": name.lexeme,
		"line": name.line,
	}).Debug("uninitialized variable read as 0")
	return intNumber(0)
}

func (p *parser) arithmetic(operator token, left, right number) number {
	value, err := left.apply(binaryOperators[operator.token], right)
	if err != nil {
		p.state.fatalError(&ArithmeticError{Err: err, Line: operator.line, Col: operator.col})
	}
	return value
}

// eat consumes the current token if it has the expected type
func (p *parser) eat(tk tokenType) token {
	if p.current.token != tk {
		p.syntaxError(errUnexpectedToken, fmt.Sprintf("expected %s, found %s", tk, p.current))
	}
	previous := p.current
	p.advance()
	return previous
}

func (p *parser) advance() {
	p.current = p.lexer.nextToken()
}

func (p *parser) check(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.current.token == tk {
			return true
		}
	}
	return false
}

func (p *parser) syntaxError(err error, msg string) {
	p.state.fatalError(&SyntaxError{
		Err:  err,
		Msg:  msg,
		Line: p.current.line,
		Col:  p.current.col,
	})
}
