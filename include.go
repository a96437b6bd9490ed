package sonic

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
)

// Include reads and lexes every *.sonic file in fsys, walking the whole
// tree. All documents are returned even when some fail to lex; lexical
// failures are aggregated into a LexErrors return.
func Include(fsys fs.FS) ([]*Document, error) {
	var docs []*Document
	var failed LexErrors
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".sonic") {
			return nil
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Wrapf(err, "reading %s", p)
		}
		doc := LexString(p, string(b))
		docs = append(docs, doc)
		if doc.HasError() {
			failed.Errors = append(failed.Errors, *doc.DocumentError())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(failed.Errors) > 0 {
		return docs, failed
	}
	return docs, nil
}

// MustInclude is Include panicking on any failure, for use with embedded
// source trees initialised at package level.
func MustInclude(fsys fs.FS) []*Document {
	docs, err := Include(fsys)
	if err != nil {
		panic(err)
	}
	return docs
}
