package ctxgrep

// Source loads the document to be scanned.
type Source interface {
	Load() (*Document, error)
}
