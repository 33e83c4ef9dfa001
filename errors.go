package ctxgrep

import "fmt"

// FileAccessError is returned when the source cannot be read or the report
// destination cannot be written.
type FileAccessError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DecodeError is returned when the source bytes are not valid under the
// configured encoding.
type DecodeError struct {
	Path     string
	Encoding string

	// Offset is the byte offset of the first invalid sequence, or -1 when
	// the decoder did not report one
	Offset int

	// Kind is the sniffed file type, empty when unknown
	Kind string

	Err error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode %s as %s", e.Path, e.Encoding)
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at byte %d", e.Offset)
	}
	if e.Kind != "" {
		msg += fmt.Sprintf(" (looks like %s)", e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }
