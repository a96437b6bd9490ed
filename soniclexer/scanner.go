package soniclexer

import "unicode/utf8"

// Scanner is a lexical scanner for Sonic source code.
//
// It is a single-pass cursor into an immutable input string. Each token's
// Content is a substring of the input, so a full scan reproduces the
// source byte-for-byte when token contents are concatenated.
//
// Sub-scanners follow a consume-decide-restore discipline: a sub-scanner
// that looks ahead and decides the characters do not belong to its token
// resets the cursor to a saved mark, so the next dispatch observes the
// earliest unconsumed character again.
type Scanner struct {
	input string

	off int // byte offset into input
	pos int // characters consumed

	tok  Token
	err  *Error
	done bool
}

// NewScanner creates a Scanner positioned before the first token.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// mark is a saved cursor state. Resetting to a mark is the restore half
// of the consume-decide-restore contract.
type mark struct {
	off int
	pos int
}

func (s *Scanner) mark() mark {
	return mark{off: s.off, pos: s.pos}
}

func (s *Scanner) reset(m mark) {
	s.off, s.pos = m.off, m.pos
}

// next decodes and consumes one character. The second return value is
// false at end of input.
func (s *Scanner) next() (rune, bool) {
	if s.off >= len(s.input) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s.input[s.off:])
	s.off += w
	s.pos++
	return r, true
}

// accept consumes the next character iff it equals want.
func (s *Scanner) accept(want rune) bool {
	m := s.mark()
	c, ok := s.next()
	if ok && c == want {
		return true
	}
	s.reset(m)
	return false
}

// Pos returns the number of characters consumed so far.
func (s *Scanner) Pos() int {
	return s.pos
}

// Next advances to the next token. It returns false at end of input or on
// a lexical error; check Err to distinguish.
func (s *Scanner) Next() bool {
	if s.done || s.err != nil {
		return false
	}
	tok, err := s.scanToken()
	if err != nil {
		s.err = err
		return false
	}
	if tok.Type == EOFToken {
		s.done = true
		return false
	}
	s.tok = tok
	return true
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Err returns the lexical error that stopped the scan, or nil.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return nil
}

// Lex scans source into its full token sequence. On failure it returns
// the tokens emitted before the failure together with the error; no
// returned token straddles the failure position.
func Lex(source string) ([]Token, *Error) {
	s := NewScanner(source)
	var tokens []Token
	for s.Next() {
		tokens = append(tokens, s.Token())
	}
	return tokens, s.err
}

// token materialises the current token with its verbatim content.
func (s *Scanner) token(t TokenType, start mark) Token {
	return Token{Type: t, Content: s.input[start.off:s.off], Start: start.pos}
}

// errAtPrev reports an error at the position of the character that was
// just consumed.
func (s *Scanner) errAtPrev(k ErrorKind) *Error {
	return &Error{Kind: k, Pos: s.pos - 1}
}

// errHere reports an error at the current position: the next unconsumed
// character, or end of input.
func (s *Scanner) errHere(k ErrorKind) *Error {
	return &Error{Kind: k, Pos: s.pos}
}

// scanToken dispatches on the first character of the next token.
func (s *Scanner) scanToken() (Token, *Error) {
	start := s.mark()
	c, ok := s.next()
	if !ok {
		return Token{Type: EOFToken, Start: start.pos}, nil
	}

	switch {
	case isWhitespace(c):
		return s.scanWhitespace(start), nil

	case c == '/':
		tok, isComment, err := s.scanComment(start)
		if err != nil {
			return Token{}, err
		}
		if isComment {
			return tok, nil
		}
		// Not a comment; the '/' stays consumed as the operator head.
		return s.scanOperator(start), nil

	case isIdentifierHead(c):
		return s.scanIdentifierOrKeyword(start), nil

	case c == '$':
		return s.scanDollar(start)

	case c == '-':
		if tok, ok := s.scanNumericLiteral(start); ok {
			return tok, nil
		}
		return s.scanOperator(start), nil

	case isDecimalDigit(c):
		s.reset(start)
		if tok, ok := s.scanNumericLiteral(start); ok {
			return tok, nil
		}
		return Token{}, &Error{Kind: FailedParsingNumeric, Pos: start.pos}

	case c == '"':
		return s.scanString(start)

	case c == '.':
		return s.scanDot(start), nil

	case isOperatorChar(c):
		return s.scanOperator(start), nil
	}

	if p, ok := singleCharPunctuation[c]; ok {
		tok := s.token(PunctuationToken, start)
		tok.Punct = p
		return tok, nil
	}
	return Token{}, &Error{Kind: UnrecognisedCharacter, Pos: start.pos}
}

// scanWhitespace extends a whitespace run. The head character is already
// consumed. Always succeeds.
func (s *Scanner) scanWhitespace(start mark) Token {
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isWhitespace(c) {
			s.reset(m)
			break
		}
	}
	return s.token(WhitespaceToken, start)
}

// scanComment is entered with the initial '/' consumed. It peeks one
// character: '/' starts a line comment running through the next newline
// (inclusive) or end of input, '*' starts a block comment, and anything
// else is restored and reported as not-a-comment.
func (s *Scanner) scanComment(start mark) (Token, bool, *Error) {
	m := s.mark()
	c, ok := s.next()
	if !ok {
		s.reset(m)
		return Token{}, false, nil
	}
	switch c {
	case '/':
		for {
			c, ok := s.next()
			if !ok || isNewline(c) {
				break
			}
		}
		return s.token(CommentToken, start), true, nil
	case '*':
		// The flag starts out true so that "/*/" closes the comment:
		// the opening '*' counts as a seen asterisk.
		prevWasStar := true
		for {
			c, ok := s.next()
			if !ok {
				return Token{}, false, s.errHere(UnterminatedComment)
			}
			if prevWasStar && c == '/' {
				return s.token(CommentToken, start), true, nil
			}
			prevWasStar = c == '*'
		}
	default:
		s.reset(m)
		return Token{}, false, nil
	}
}

// scanIdentifierOrKeyword extends an identifier run from its consumed
// head and classifies the text against the reserved-word table.
func (s *Scanner) scanIdentifierOrKeyword(start mark) Token {
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isIdentifierBody(c) {
			s.reset(m)
			break
		}
	}
	tok := s.token(IdentifierToken, start)
	if kw, ok := LookupKeyword(tok.Content); ok {
		tok.Type = KeywordToken
		tok.Keyword = kw
	}
	return tok
}

// scanDollar is entered with the '$' consumed. It first tries an implicit
// parameter name ($ followed by decimal digits), then a property wrapper
// projection ($ followed by identifier characters). Both attempts restore
// the cursor on rejection.
func (s *Scanner) scanDollar(start mark) (Token, *Error) {
	afterDollar := s.mark()

	digits := 0
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isDecimalDigit(c) {
			s.reset(m)
			break
		}
		digits++
	}
	if digits > 0 {
		return s.token(ImplicitParameterNameToken, start), nil
	}
	s.reset(afterDollar)

	chars := 0
	for {
		m := s.mark()
		c, ok := s.next()
		if !ok {
			break
		}
		if !isIdentifierBody(c) {
			s.reset(m)
			break
		}
		chars++
	}
	if chars > 0 {
		return s.token(PropertyWrapperProjectionToken, start), nil
	}
	return Token{}, s.errHere(UnexpectedCharacterAfterDollarSign)
}
