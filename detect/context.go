package detect

import (
	"unicode/utf8"

	"github.com/ctxgrep/ctxgrep"
)

// ExtractContext returns the text around a match: up to before characters
// preceding the match start and up to after characters from the match start
// onward, clamped to the document. The window is counted in characters, not
// bytes, and always ends on a character boundary.
func ExtractContext(doc *ctxgrep.Document, m ctxgrep.Match, before, after int) ctxgrep.Snippet {
	raw := doc.Raw
	s := ctxgrep.Snippet{Term: m.Term, Index: m.Index}

	start, back := m.ByteIndex, 0
	for back < before && start > 0 {
		_, size := utf8.DecodeLastRuneInString(raw[:start])
		start -= size
		back++
	}

	end, fwd := m.ByteIndex, 0
	for fwd < after && end < len(raw) {
		_, size := utf8.DecodeRuneInString(raw[end:])
		end += size
		fwd++
	}

	s.Start = m.Index - back
	s.End = m.Index + fwd
	s.Text = raw[start:end]
	return s
}
