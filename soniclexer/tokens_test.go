package soniclexer

import "testing"

func TestBuiltinOperatorTable(t *testing.T) {
	spellings := []string{
		"+", "-", "*", "/", "%", "+=", "-=", "*=", "/=",
		"==", "!=", ">", "<", ">=", "<=", "??", "...", "..<",
		"!", "&&", "||", "~", "&", "|", "^", "<<", ">>",
		"&+", "&-", "&*", "===", "!==",
	}
	if len(builtinOperators) != len(spellings) {
		t.Errorf("expected %d builtin operators, table has %d", len(spellings), len(builtinOperators))
	}
	for _, sp := range spellings {
		op, ok := LookupOperator(sp)
		if !ok {
			t.Errorf("missing builtin operator %q", sp)
			continue
		}
		if string(op) != sp {
			t.Errorf("operator %q maps to %q", sp, op)
		}
	}
}

// The three punctuation-and-operator spellings bind as punctuation when
// they stand alone, and the bare '&'/'!' never surface as operator or
// punctuation tokens.
func TestOperatorPunctuationOverlap(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"->", PunctuationToken},
		{"=", PunctuationToken},
		{"?", PunctuationToken},
		{"&", AmpersandToken},
		{"!", ExclamationToken},
	}
	for _, tt := range tests {
		tokens, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("lexing %q: %v", tt.input, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("lexing %q: expected 1 token, got %d", tt.input, len(tokens))
		}
		if tokens[0].Type != tt.expected {
			t.Errorf("lexing %q: expected %v, got %v", tt.input, tt.expected, tokens[0].Type)
		}
	}
}

func TestTokenDescribe(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"let", "Keyword(let)"},
		{"+=", "BuiltinOperator(+=)"},
		{"->", "Punctuation(->)"},
		{"foo", "Identifier"},
		{"&", "Ampersand"},
		{"!", "Exclamation"},
		{"$0", "ImplicitParameterName"},
		{`"s"`, "StaticStringLiteral"},
	}
	for _, tt := range tests {
		tokens, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("lexing %q: %v", tt.input, err)
		}
		if got := tokens[0].Describe(); got != tt.expected {
			t.Errorf("Describe of %q: expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestReservedWordCount(t *testing.T) {
	// The table is the fixed 82-entry reserved-word list.
	if len(reservedWords) != 82 {
		t.Errorf("expected 82 reserved words, table has %d", len(reservedWords))
	}
	if _, ok := LookupKeyword("select"); ok {
		t.Error("\"select\" must not be a Sonic keyword")
	}
	if _, ok := LookupKeyword("LET"); ok {
		t.Error("keyword lookup must be case-sensitive")
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := []ErrorKind{
		UnterminatedString,
		UnterminatedComment,
		UnexpectedStringEscape,
		EscapedUnicodeInStringMissingOpeningBrace,
		EscapedUnicodeInStringMissingHexValue,
		EscapedUnicodeInStringMissingHexValueOrBrace,
		ExpectedIdentifierInStringInterpolation,
		ExpectedIdentifierOrClosingBraceInStringInterpolation,
		NewlineWithinString,
		UnexpectedCharacterAfterDollarSign,
		FailedParsingNumeric,
		UnrecognisedCharacter,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		name := k.String()
		if name == "" || seen[name] {
			t.Errorf("bad or duplicate name for kind %d: %q", int(k), name)
		}
		seen[name] = true
		if k.Message() == "" {
			t.Errorf("kind %s has no message", name)
		}
	}
	e := &Error{Kind: UnterminatedString, Pos: 5}
	if e.Error() != "unterminated string literal at position 5" {
		t.Errorf("unexpected error text: %q", e.Error())
	}
}
