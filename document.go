package sonic

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/soniclang/sonic/soniclexer"
)

// Document is a lexed Sonic source file: the raw source, the token
// sequence produced from it, and the error that stopped the scan, if
// any. On error, Tokens holds the tokens emitted before the failure.
type Document struct {
	File   string
	Source string
	Tokens []soniclexer.Token
	Err    *soniclexer.Error
}

// HasError reports whether the scan of this document failed.
func (d *Document) HasError() bool {
	return d.Err != nil
}

// DocumentError returns the document's error located in its file, or nil.
func (d *Document) DocumentError() *DocumentError {
	if d.Err == nil {
		return nil
	}
	return &DocumentError{File: d.File, Source: d.Source, Err: d.Err}
}

// LexString lexes input, recording file as the document's name for
// diagnostics.
func LexString(file, input string) *Document {
	tokens, err := soniclexer.Lex(input)
	return &Document{File: file, Source: input, Tokens: tokens, Err: err}
}

// LexFile reads and lexes a single file. The returned error covers I/O
// only; lexical failure is recorded on the Document.
func LexFile(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return LexString(path, string(b)), nil
}

// LexAll reads and lexes every path, logging per-file outcomes. All
// documents are returned even when some fail to lex; lexical failures are
// also aggregated into a LexErrors return. A read error stops the batch
// and is returned with the documents lexed before it.
func LexAll(paths []string, logger logrus.FieldLogger) ([]*Document, error) {
	var docs []*Document
	var failed LexErrors
	for _, p := range paths {
		d, err := LexFile(p)
		if err != nil {
			return docs, err
		}
		docs = append(docs, d)
		if d.HasError() {
			logger.WithField("file", p).WithField("position", d.Err.Pos).Error(d.Err.Kind.Message())
			failed.Errors = append(failed.Errors, *d.DocumentError())
		} else {
			logger.WithField("file", p).WithField("tokens", len(d.Tokens)).Debug("lexed")
		}
	}
	if len(failed.Errors) > 0 {
		return docs, failed
	}
	return docs, nil
}
