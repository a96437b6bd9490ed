package soniclexer

import "strings"

// Character classification. All classes are restricted to explicit ASCII
// ranges; a non-ASCII character is not whitespace and not an identifier
// character, so outside of string and comment bodies it falls through the
// root dispatch and raises UnrecognisedCharacter.

const (
	operatorChars    = "/=-+!*%<>&|^~?"
	punctuationChars = "(){}[].,:;@#`=!&"
)

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isNewline(c rune) bool {
	return c == '\r' || c == '\n'
}

func isDecimalDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c rune) bool {
	return c == '0' || c == '1'
}

func isIdentifierHead(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierBody(c rune) bool {
	return isIdentifierHead(c) || isDecimalDigit(c)
}

func isOperatorChar(c rune) bool {
	return c < 128 && strings.ContainsRune(operatorChars, c)
}

func isPunctuationChar(c rune) bool {
	return c < 128 && strings.ContainsRune(punctuationChars, c)
}

// Literal-body classes: the respective digit class plus '_' separators.

func isDecimalLiteralChar(c rune) bool {
	return isDecimalDigit(c) || c == '_'
}

func isHexLiteralChar(c rune) bool {
	return isHexDigit(c) || c == '_'
}

func isBinaryLiteralChar(c rune) bool {
	return isBinaryDigit(c) || c == '_'
}
