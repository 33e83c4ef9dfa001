package report

import (
	"encoding/json"
	"io"

	"github.com/ctxgrep/ctxgrep"
)

type JsonReporter struct {
}

var _ ctxgrep.Reporter = (*JsonReporter)(nil)

func (t *JsonReporter) Write(w io.WriteCloser, snippets []ctxgrep.Snippet) error {
	if snippets == nil {
		snippets = []ctxgrep.Snippet{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(snippets)
}
