package lexer

import (
	"testing"

	"github.com/arabicc/arabicc/internal/token"
)

func TestTokenizeFunctionSkeleton(t *testing.T) {
	src := `دالة رئيسية() { ارجع 42; }`
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	want := []token.Kind{
		token.FUNCTION, token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE,
		token.RETURN, token.NUMBER, token.SEMICOLON, token.RBRACE, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestTokenizeEndsWithExactlyOneEOF(t *testing.T) {
	tokens, err := Tokenize(`متغير x = 1؛`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	eofCount := 0
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			eofCount++
			if i != len(tokens)-1 {
				t.Errorf("EOF token found before end of stream at index %d", i)
			}
		}
	}
	if eofCount != 1 {
		t.Errorf("got %d EOF tokens, want exactly 1", eofCount)
	}
}

func TestArabicSemicolonAndCommaAreAliases(t *testing.T) {
	tokens, err := Tokenize(`جمع(a، b)؛`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	// IDENT ( IDENT , IDENT ) ; EOF
	want := []token.Kind{
		token.IDENT, token.LPAREN, token.IDENT, token.COMMA, token.IDENT,
		token.RPAREN, token.SEMICOLON, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestColumnCountsRunesNotBytes(t *testing.T) {
	// "س" is a two-byte UTF-8 rune; it must still advance the column by 1,
	// so "x" after "س " starts at column 3 (it would be 4 counting bytes).
	tokens, err := Tokenize("س x")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(tokens) < 2 {
		t.Fatal("expected at least two tokens")
	}
	if tokens[1].Pos.Column != 3 {
		t.Errorf("second token column = %d, want 3", tokens[1].Pos.Column)
	}
}

func TestStrayBangIsLexError(t *testing.T) {
	_, err := Tokenize("! ")
	if err == nil {
		t.Fatal("expected an error for stray '!'")
	}
	var lexErr *Error
	if _, ok := err.(*Error); !ok {
		t.Fatalf("got %T, want *lexer.Error", err)
	}
	lexErr = err.(*Error)
	if lexErr.Pos.Column != 1 {
		t.Errorf("error column = %d, want 1", lexErr.Pos.Column)
	}
}

func TestUnexpectedCharacterIsLexError(t *testing.T) {
	_, err := Tokenize("@")
	if err == nil {
		t.Fatal("expected an error for '@'")
	}
}

func TestLineCommentIsSkipped(t *testing.T) {
	tokens, err := Tokenize("// a comment\nارجع")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if tokens[0].Kind != token.RETURN {
		t.Errorf("got %s, want RETURN", tokens[0].Kind)
	}
	if tokens[0].Pos.Line != 2 {
		t.Errorf("got line %d, want 2", tokens[0].Pos.Line)
	}
}

func TestArabicIndicDigitIsIdentifierChar(t *testing.T) {
	// U+0661 (Arabic-Indic digit one) is in the Arabic range and not one
	// of the three excluded punctuation marks, so it must be accepted
	// as part of an identifier even though unicode.IsLetter is false
	// for it.
	tokens, err := Tokenize("متغير١")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if tokens[0].Kind != token.IDENT {
		t.Fatalf("got %s, want IDENT (متغير١ should lex as one identifier, not keyword + stray char)", tokens[0].Kind)
	}
	if tokens[0].Literal != "متغير١" {
		t.Errorf("got literal %q, want %q", tokens[0].Literal, "متغير١")
	}
}

func TestComparisonOperators(t *testing.T) {
	tokens, err := Tokenize("== != >= <= > <")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	want := []token.Kind{token.EQ, token.NE, token.GE, token.LE, token.GT, token.LT, token.EOF}
	for i, k := range want {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}
