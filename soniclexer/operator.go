package soniclexer

import "strings"

// scanOperator extends a maximal run of operator characters from the
// consumed head and classifies the text. The bare '&' and '!' are
// position-ambiguous and get their own token types; the spellings in the
// punctuation-and-operator overlap set ("->", "=", "?") bind as
// punctuation when the whole run equals one of them.
func (s *Scanner) scanOperator(start mark) Token {
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isOperatorChar(c) {
			s.reset(m)
			break
		}
	}
	text := s.input[start.off:s.off]

	switch text {
	case "&":
		return s.token(AmpersandToken, start)
	case "!":
		return s.token(ExclamationToken, start)
	}
	if p, ok := operatorPunctuation[text]; ok {
		tok := s.token(PunctuationToken, start)
		tok.Punct = p
		return tok
	}
	if op, ok := builtinOperators[text]; ok {
		tok := s.token(BuiltinOperatorToken, start)
		tok.Operator = op
		return tok
	}
	return s.token(CustomOperatorToken, start)
}

// scanDot is entered with a '.' consumed. '.' is not an operator
// character, but the two range operators are spelled with it, so the
// dispatcher matches those by lookahead before falling back to the dot
// punctuation mark.
func (s *Scanner) scanDot(start mark) Token {
	rest := s.input[s.off:]
	switch {
	case strings.HasPrefix(rest, ".."):
		s.next()
		s.next()
		tok := s.token(BuiltinOperatorToken, start)
		tok.Operator = OpClosedRange
		return tok
	case strings.HasPrefix(rest, ".<"):
		s.next()
		s.next()
		tok := s.token(BuiltinOperatorToken, start)
		tok.Operator = OpHalfOpenRange
		return tok
	}
	tok := s.token(PunctuationToken, start)
	tok.Punct = PunctDot
	return tok
}
