package soniclexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearContext(t *testing.T) {
	source := "let a = 1\nlet b = \"oops\nlet c = 3"
	// Position of the unterminated string's opening quote.
	assert.Equal(t, "\"oops", NearContext(source, 18))
	// At a newline the context is empty.
	assert.Equal(t, "", NearContext(source, 9))
	// Last line runs to end of input.
	assert.Equal(t, "= 3", NearContext(source, 30))
	// At or past the end.
	assert.Equal(t, "", NearContext(source, len(source)))
	assert.Equal(t, "", NearContext(source, 1000))
}

func TestNearContext_MultiByte(t *testing.T) {
	// Positions are character counts, not byte offsets.
	source := "\"héllo\" x\n y"
	assert.Equal(t, "x", NearContext(source, 8))
}

func TestPositionOf(t *testing.T) {
	source := "ab\ncde\nf"
	assert.Equal(t, Pos{Line: 1, Col: 1}, PositionOf(source, 0))
	assert.Equal(t, Pos{Line: 1, Col: 3}, PositionOf(source, 2))
	assert.Equal(t, Pos{Line: 2, Col: 1}, PositionOf(source, 3))
	assert.Equal(t, Pos{Line: 2, Col: 4}, PositionOf(source, 6))
	assert.Equal(t, Pos{Line: 3, Col: 1}, PositionOf(source, 7))
	// Past the end: position of the EOF.
	assert.Equal(t, Pos{Line: 3, Col: 2}, PositionOf(source, 8))
}
