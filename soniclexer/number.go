package soniclexer

// Numeric literal sub-scanners. Each is tried at the current cursor with
// start anchoring the token content, so a leading '-' consumed by the
// dispatcher becomes part of the literal's content rather than a separate
// operator token. Attempts restore the cursor on rejection.

// scanNumericLiteral tries binary, hexadecimal and decimal-or-float in
// that order.
func (s *Scanner) scanNumericLiteral(start mark) (Token, bool) {
	if tok, ok := s.scanPrefixedLiteral(start, 'b', isBinaryDigit, isBinaryLiteralChar, BinaryLiteralToken); ok {
		return tok, true
	}
	if tok, ok := s.scanPrefixedLiteral(start, 'x', isHexDigit, isHexLiteralChar, HexadecimalLiteralToken); ok {
		return tok, true
	}
	return s.scanDecimalOrFloat(start)
}

// scanPrefixedLiteral scans "0<marker><digit><literal-char>*", shared by
// the binary (0b) and hexadecimal (0x) forms. At least one digit of the
// respective class must follow the prefix.
func (s *Scanner) scanPrefixedLiteral(start mark, marker rune, digit, body func(rune) bool, t TokenType) (Token, bool) {
	m := s.mark()
	if !s.accept('0') || !s.accept(marker) {
		s.reset(m)
		return Token{}, false
	}
	c, ok := s.next()
	if !ok || !digit(c) {
		s.reset(m)
		return Token{}, false
	}
	for {
		mm := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !body(c) {
			s.reset(mm)
			break
		}
	}
	return s.token(t, start), true
}

// scanDecimalOrFloat scans a decimal digit run and, when a '.' follows,
// hands over to the float machine.
func (s *Scanner) scanDecimalOrFloat(start mark) (Token, bool) {
	m := s.mark()
	c, ok := s.next()
	if !ok || !isDecimalDigit(c) {
		s.reset(m)
		return Token{}, false
	}
	for {
		mm := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isDecimalLiteralChar(c) {
			s.reset(mm)
			break
		}
	}
	dot := s.mark()
	if c, ok := s.next(); ok && c == '.' {
		return s.scanFloat(start), true
	}
	s.reset(dot)
	return s.token(DecimalLiteralToken, start), true
}

// scanFloat is entered immediately after the '.' of a float literal. It
// is infallible: on any unexpected character it restores that character
// and emits whatever has been consumed so far, so degenerate forms like
// "0." and "1.2e" are valid FloatLiterals.
func (s *Scanner) scanFloat(start mark) Token {
	// Fraction head: a '.' not followed by a digit ends the literal.
	m := s.mark()
	c, ok := s.next()
	if !ok {
		return s.token(FloatLiteralToken, start)
	}
	if !isDecimalDigit(c) {
		s.reset(m)
		return s.token(FloatLiteralToken, start)
	}

	// Fraction body, until an exponent marker.
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			return s.token(FloatLiteralToken, start)
		}
		if isDecimalLiteralChar(c) {
			continue
		}
		if c == 'e' || c == 'E' {
			break
		}
		s.reset(m)
		return s.token(FloatLiteralToken, start)
	}

	// After the exponent marker: optional sign, then digits.
	m = s.mark()
	c, ok = s.next()
	if !ok {
		return s.token(FloatLiteralToken, start)
	}
	switch {
	case c == '+' || c == '-':
		m = s.mark()
		c, ok = s.next()
		if !ok {
			return s.token(FloatLiteralToken, start)
		}
		if !isDecimalDigit(c) {
			s.reset(m)
			return s.token(FloatLiteralToken, start)
		}
	case isDecimalDigit(c):
	default:
		s.reset(m)
		return s.token(FloatLiteralToken, start)
	}

	// Exponent body.
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			return s.token(FloatLiteralToken, start)
		}
		if !isDecimalLiteralChar(c) {
			s.reset(m)
			return s.token(FloatLiteralToken, start)
		}
	}
}
