package ctxgrep

import "unicode/utf8"

// Document is the decoded content of a single source file. It is never
// mutated after the loader returns it.
type Document struct {
	// Raw is the decoded text content
	Raw  string
	Path string

	// Encoding is the name the content was decoded with
	Encoding string

	// Kind is the sniffed file type ("text" when nothing was recognised)
	Kind string

	// Size is the number of bytes read from disk
	Size int
}

// Len returns the length of the document in characters.
func (d *Document) Len() int {
	return utf8.RuneCountInString(d.Raw)
}
