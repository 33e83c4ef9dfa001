package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"

	"github.com/ctxgrep/ctxgrep"
	"github.com/ctxgrep/ctxgrep/logging"
	"github.com/ctxgrep/ctxgrep/sources"
)

// ErrTooLarge is wrapped in a FileAccessError when a source exceeds MaxFileSize.
var ErrTooLarge = errors.New("file too large")

// File loads a single source file into memory.
type File struct {
	Path string

	// Encoding label, see ctxgrep.LookupEncoding. Empty means UTF-8.
	Encoding string

	// MaxFileSize in bytes, 0 disables the limit
	MaxFileSize int
}

// Load reads the file at path and decodes it with the given encoding label.
func Load(path, label string) (*ctxgrep.Document, error) {
	f := &File{Path: path, Encoding: label}
	return f.Load()
}

// Load reads the whole file and decodes it. Nothing is returned on partial
// reads: the document is either complete or an error is returned. Line
// endings are normalized to "\n" after decoding.
func (f *File) Load() (*ctxgrep.Document, error) {
	enc, encName, err := ctxgrep.LookupEncoding(f.Encoding)
	if err != nil {
		return nil, err
	}

	data, err := f.read()
	if err != nil {
		return nil, err
	}

	kind := sources.DetectKind(data)
	logger := logging.With().Str("path", f.Path).Str("kind", kind).Str("encoding", encName).Logger()
	logger.Debug().Int("bytes", len(data)).Msg("read source")

	doc := &ctxgrep.Document{
		Path:     f.Path,
		Encoding: encName,
		Kind:     kind,
		Size:     len(data),
	}

	if ctxgrep.IsUTF8(encName) {
		if off := invalidUTF8Offset(data); off >= 0 {
			return nil, f.decodeError(encName, kind, off, errors.New("invalid utf-8 sequence"))
		}
		doc.Raw = normalizeNewlines(string(data))
		return doc, nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, f.decodeError(encName, kind, -1, err)
	}
	// x/text decoders substitute U+FFFD for invalid input instead of failing.
	// Only replacement characters that were literally encoded in the source
	// are accepted.
	if n := strings.Count(string(decoded), string(utf8.RuneError)); n > literalReplacements(enc, data) {
		return nil, f.decodeError(encName, kind, -1, fmt.Errorf("invalid %s sequence", encName))
	}
	doc.Raw = normalizeNewlines(string(decoded))
	return doc, nil
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalizeNewlines turns "\r\n" and lone "\r" into "\n", so offsets match a
// text-mode read of the file.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return newlineReplacer.Replace(s)
}

// literalReplacements counts the encoded U+FFFD sequences in data. Encodings
// that cannot represent U+FFFD (euc-kr, windows-1252, ...) return 0.
func literalReplacements(enc encoding.Encoding, data []byte) int {
	rep, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil || len(rep) == 0 {
		return 0
	}
	return bytes.Count(data, rep)
}

func (f *File) read() ([]byte, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, &ctxgrep.FileAccessError{Op: "read", Path: f.Path, Err: err}
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return nil, &ctxgrep.FileAccessError{Op: "read", Path: f.Path, Err: err}
	}
	if info.IsDir() {
		return nil, &ctxgrep.FileAccessError{Op: "read", Path: f.Path, Err: errors.New("is a directory")}
	}
	if f.MaxFileSize > 0 && info.Size() > int64(f.MaxFileSize) {
		return nil, &ctxgrep.FileAccessError{
			Op:   "read",
			Path: f.Path,
			Err:  fmt.Errorf("%w: max_size=%d bytes, size=%d bytes", ErrTooLarge, f.MaxFileSize, info.Size()),
		}
	}

	data, err := io.ReadAll(fh)
	if err != nil {
		return nil, &ctxgrep.FileAccessError{Op: "read", Path: f.Path, Err: err}
	}
	return data, nil
}

func (f *File) decodeError(encName, kind string, offset int, err error) error {
	de := &ctxgrep.DecodeError{
		Path:     f.Path,
		Encoding: encName,
		Offset:   offset,
		Err:      err,
	}
	if sources.IsBinaryKind(kind) {
		de.Kind = kind
	}
	return de
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in data, or -1 if data is valid.
func invalidUTF8Offset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
