package ctxgrep

// Match is the first occurrence of a term in a document.
type Match struct {
	Term string

	// Index is the zero-based character offset of the first occurrence.
	// Only meaningful when Found is true.
	Index int

	// ByteIndex is the byte offset into Document.Raw matching Index
	ByteIndex int

	Found bool
}
