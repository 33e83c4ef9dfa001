package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ctxgrep/ctxgrep"
	"github.com/ctxgrep/ctxgrep/logging"
)

// StdoutPath as a report path writes the report to stdout.
const StdoutPath = "-"

// DefaultPath is where the report goes when no path is configured.
const DefaultPath = "search_results.txt"

// New returns the reporter for a format name. templatePath is only used by
// the "template" format.
func New(format, templatePath string) (ctxgrep.Reporter, error) {
	if templatePath != "" && format == "" {
		format = "template"
	}
	switch strings.ToLower(format) {
	case "", "text", "txt":
		return &TextReporter{}, nil
	case "json":
		return &JsonReporter{}, nil
	case "csv":
		return &CsvReporter{}, nil
	case "template":
		return NewTemplateReporter(templatePath)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

type bufferCloser struct {
	*bytes.Buffer
}

func (bufferCloser) Close() error { return nil }

// WriteFile renders snippets with r, encodes the result with the named
// encoding and writes it to path in a single write, replacing any existing
// content. The parent directory must already exist.
func WriteFile(path, encoding string, r ctxgrep.Reporter, snippets []ctxgrep.Snippet) error {
	if path == "" {
		path = DefaultPath
	}

	var buf bytes.Buffer
	if err := r.Write(bufferCloser{&buf}, snippets); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	out, err := encode(buf.Bytes(), encoding)
	if err != nil {
		return err
	}

	if path == StdoutPath {
		return writeTo(os.Stdout, path, out)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &ctxgrep.FileAccessError{Op: "write", Path: path, Err: err}
	}
	defer f.Close()

	if err := writeTo(f, path, out); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return &ctxgrep.FileAccessError{Op: "write", Path: path, Err: err}
	}
	logging.Debug().Str("path", path).Int("bytes", len(out)).Int("snippets", len(snippets)).Msg("wrote report")
	return nil
}

func encode(text []byte, encoding string) ([]byte, error) {
	enc, name, err := ctxgrep.LookupEncoding(encoding)
	if err != nil {
		return nil, err
	}
	if ctxgrep.IsUTF8(name) {
		return text, nil
	}
	out, err := enc.NewEncoder().Bytes(text)
	if err != nil {
		return nil, fmt.Errorf("encode report as %s: %w", name, err)
	}
	return out, nil
}

func writeTo(w io.Writer, path string, out []byte) error {
	if _, err := w.Write(out); err != nil {
		return &ctxgrep.FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}
