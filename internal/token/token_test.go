package token

import "testing"

func TestLookupIdentKeyword(t *testing.T) {
	cases := map[string]Kind{
		"متغير": VAR,
		"اذا":   IF,
		"والا":  ELSE,
		"بينما": WHILE,
		"لكل":   FOR,
		"دالة":  FUNCTION,
		"ارجع":  RETURN,
		"اطبع":  PRINT,
	}
	for lexeme, want := range cases {
		if got := LookupIdent(lexeme); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", lexeme, got, want)
		}
	}
}

func TestLookupIdentPlainIdentifier(t *testing.T) {
	if got := LookupIdent("مجموع"); got != IDENT {
		t.Errorf("LookupIdent(مجموع) = %s, want IDENT", got)
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Line: 3, Column: 7}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got := k.String(); got != "UNKNOWN" {
		t.Errorf("Kind(9999).String() = %q, want UNKNOWN", got)
	}
}
