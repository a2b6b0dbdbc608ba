package internal

import (
	"errors"
	"testing"
)

func scanAll(source string) (tokens []token, err error) {
	state := newInterpreterState(source, Options{})
	lexer := newLexer(state)

	defer state.recoverError(&err)

	for {
		tk := lexer.nextToken()
		tokens = append(tokens, tk)
		if tk.token == tkEOF {
			return tokens, nil
		}
	}
}

func TestLexerTokens(t *testing.T) {
	tokens, err := scanAll("abc_1 = (12 + -x) * 3 / _y;")
	if err != nil {
		t.Fatal(err)
	}

	expected := []struct {
		token  tokenType
		lexeme string
	}{
		{tkIdentifier, "abc_1"},
		{tkEqual, "="},
		{tkLeftParen, "("},
		{tkInteger, "12"},
		{tkPlus, "+"},
		{tkMinus, "-"},
		{tkIdentifier, "x"},
		{tkRightParen, ")"},
		{tkStar, "*"},
		{tkInteger, "3"},
		{tkSlash, "/"},
		{tkIdentifier, "_y"},
		{tkSemicolon, ";"},
		{tkEOF, ""},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i].token != exp.token || tokens[i].lexeme != exp.lexeme {
			t.Errorf("token %d: expected %s %q, got %s %q", i, exp.token, exp.lexeme, tokens[i].token, tokens[i].lexeme)
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	tokens, err := scanAll("0 42 name")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := tokens[0].literal.(int64); !ok || v != 0 {
		t.Errorf("expected literal 0, got %#v", tokens[0].literal)
	}
	if v, ok := tokens[1].literal.(int64); !ok || v != 42 {
		t.Errorf("expected literal 42, got %#v", tokens[1].literal)
	}
	if v, ok := tokens[2].literal.(string); !ok || v != "name" {
		t.Errorf("expected literal name, got %#v", tokens[2].literal)
	}
	if tokens[3].literal != nil {
		t.Errorf("%s should carry no literal, got %#v", tokens[3], tokens[3].literal)
	}
}

func TestLexerDoubleMinus(t *testing.T) {
	tokens, err := scanAll("--")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[0].token != tkMinus || tokens[1].token != tkMinus {
		t.Errorf("expected two minus tokens, got %v", tokens)
	}
}

func TestLexerEOFRepeats(t *testing.T) {
	state := newInterpreterState("x", Options{})
	lexer := newLexer(state)
	lexer.nextToken()
	for i := 0; i < 3; i++ {
		if tk := lexer.nextToken(); tk.token != tkEOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tk)
		}
	}
}

func TestLexerPositions(t *testing.T) {
	tokens, err := scanAll("a = 1;\n  bb = 22;")
	if err != nil {
		t.Fatal(err)
	}
	bb := tokens[4]
	if bb.lexeme != "bb" || bb.line != 2 || bb.col != 3 {
		t.Errorf("unexpected position for %s: %d:%d", bb, bb.line, bb.col)
	}
	n := tokens[6]
	if n.lexeme != "22" || n.line != 2 || n.col != 8 {
		t.Errorf("unexpected position for %s: %d:%d", n, n.line, n.col)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		source string
		err    error
		lexeme string
	}{
		{"01", errInvalidNumber, "01"},
		{"x = 00", errInvalidNumber, "00"},
		{"9223372036854775808", errNumberRange, "9223372036854775808"},
		{"x = 1.5", errIllegalChar, "."},
		{"a & b", errIllegalChar, "&"},
		{"π", errIllegalChar, "π"},
	}

	for _, test := range tests {
		_, err := scanAll(test.source)
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("%q: expected *LexError, got %v", test.source, err)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("%q: expected %v, got %v", test.source, test.err, lexErr.Err)
		}
		if lexErr.Lexeme != test.lexeme {
			t.Errorf("%q: expected lexeme %q, got %q", test.source, test.lexeme, lexErr.Lexeme)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if tkEOF.String() != "end of input" {
		t.Errorf("unexpected name %q", tkEOF.String())
	}
	if tokenType(99).String() != "tokenType(99)" {
		t.Errorf("unexpected name %q", tokenType(99).String())
	}
}
