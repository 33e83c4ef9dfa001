package ctxgrep

import "io"

// Reporter renders snippets into w.
type Reporter interface {
	Write(w io.WriteCloser, snippets []Snippet) error
}
