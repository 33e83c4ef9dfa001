package report

import (
	"io"
	"strings"

	"github.com/ctxgrep/ctxgrep"
)

// TextReporter writes one labeled block per snippet:
//
//	--- Match for '<term>' ---
//	<snippet text>
//
// Blocks are separated by a blank line. No snippets produce an empty report.
type TextReporter struct {
}

var _ ctxgrep.Reporter = (*TextReporter)(nil)

func (r *TextReporter) Write(w io.WriteCloser, snippets []ctxgrep.Snippet) error {
	blocks := make([]string, 0, len(snippets))
	for _, s := range snippets {
		blocks = append(blocks, "--- Match for '"+s.Term+"' ---\n"+s.Text+"\n")
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n"))
	return err
}
