package sonic

import (
	"fmt"
	"strings"

	"github.com/soniclang/sonic/soniclexer"
)

// DocumentError is a lexical error located in a named source file.
type DocumentError struct {
	File   string
	Source string
	Err    *soniclexer.Error
}

// Diagnostic renders the error as "file:line:col: message" followed by
// the source context from the failure position to the end of that line.
func (e DocumentError) Diagnostic() string {
	p := soniclexer.PositionOf(e.Source, e.Err.Pos)
	msg := fmt.Sprintf("%s:%d:%d: %s", e.File, p.Line, p.Col, e.Err.Kind.Message())
	if near := soniclexer.NearContext(e.Source, e.Err.Pos); near != "" {
		msg += fmt.Sprintf("\n  near: %s", near)
	}
	return msg
}

// LexErrors aggregates lexical errors across a set of documents.
type LexErrors struct {
	Errors []DocumentError
}

func (e LexErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("sonic lexical error:\n\n")
	for _, de := range e.Errors {
		p := soniclexer.PositionOf(de.Source, de.Err.Pos)
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", de.File, p.Line, p.Col, de.Err.Kind.Message()))
	}
	return msg.String()
}
