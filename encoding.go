package ctxgrep

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used for both reading the source and writing the report.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves an encoding label ("utf-8", "euc-kr",
// "windows-1252", ...) to its x/text implementation and canonical name.
func LookupEncoding(label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return enc, name, nil
}

// IsUTF8 reports whether the canonical encoding name is UTF-8.
func IsUTF8(name string) bool {
	return name == "utf-8"
}
