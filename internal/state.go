package internal

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// Lexer errors
var errIllegalChar = errors.New("illegal character")
var errInvalidNumber = errors.New("invalid numeric literal")
var errNumberRange = errors.New("numeric literal out of range")

// Parser errors
var errUnexpectedToken = errors.New("unexpected token")
var errExpectedIdentifier = errors.New("expected variable name")

// Runtime errors
var errDivisionByZero = errors.New("division by zero")
var errOverflow = errors.New("integer overflow")
var errUninitialized = errors.New("uninitialized variable")

// LexError is returned when the source contains a character sequence
// that does not form a token.
type LexError struct {
	Err    error
	Lexeme string
	Line   int
	Col    int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error on line %d:%d: %s %q", e.Line, e.Col, e.Err, e.Lexeme)
}

func (e *LexError) Unwrap() error { return e.Err }

// SyntaxError is returned when the token sequence violates the grammar.
type SyntaxError struct {
	Err  error
	Msg  string
	Line int
	Col  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// ArithmeticError is returned for division by zero and integer overflow.
type ArithmeticError struct {
	Err  error
	Line int
	Col  int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error on line %d:%d: %s", e.Line, e.Col, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }

// UninitializedVariableError is returned in strict mode when a variable
// is read before any assignment to it.
type UninitializedVariableError struct {
	Name string
	Line int
	Col  int
}

func (e *UninitializedVariableError) Error() string {
	return fmt.Sprintf("runtime error on line %d:%d: %s %q", e.Line, e.Col, errUninitialized, e.Name)
}

func (e *UninitializedVariableError) Unwrap() error { return errUninitialized }

// Options tune a single run
type Options struct {
	// Strict makes reads of unassigned variables fail instead of yielding 0
	Strict bool
	Logger logrus.FieldLogger
	// Diagnostics receives a description of the failure, if set
	Diagnostics io.Writer
}

// interpreterState stores the state shared by the lexer and parser of one run
type interpreterState struct {
	source string
	strict bool
	logger logrus.FieldLogger
	err    error
}

func newInterpreterState(source string, opts Options) *interpreterState {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	return &interpreterState{
		source: source,
		strict: opts.Strict,
		logger: logger,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	l.SetLevel(logrus.WarnLevel)
	return l
}

type abort struct{}

// fatalError records err and unwinds to the run boundary
func (s *interpreterState) fatalError(err error) {
	s.err = err
	s.logger.WithFields(logrus.Fields{
		"kind":  errorKind(err),
		"error": err.Error(),
	}).Debug("run aborted")
	panic(abort{})
}

// recoverError turns an abort raised by fatalError back into s.err.
// It must be deferred directly.
func (s *interpreterState) recoverError(err *error) {
	if r := recover(); r != nil {
		if _, ok := r.(abort); !ok {
			panic(r)
		}
		*err = s.err
	}
}

func errorKind(err error) string {
	var lexErr *LexError
	var syntaxErr *SyntaxError
	var arithErr *ArithmeticError
	var uninitErr *UninitializedVariableError
	switch {
	case errors.As(err, &lexErr):
		return "lex"
	case errors.As(err, &syntaxErr):
		return "syntax"
	case errors.As(err, &arithErr):
		return "arithmetic"
	case errors.As(err, &uninitErr):
		return "uninitialized"
	}
	return "unknown"
}

// formatError renders a colored one-line diagnostic for err
func formatError(err error) string {
	return color.Red(errorKind(err)+":") + " " + err.Error()
}

// DisableColor turns off colored diagnostics
func DisableColor() {
	color.Disable()
}
