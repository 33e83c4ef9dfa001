package sources

import (
	"github.com/h2non/filetype"
)

// KindText is reported for content that matches no known binary signature.
const KindText = "text"

// DetectKind does a light signature check on the head of a file and returns
// the extension of the recognised type ("zip", "png", "pdf", ...), or
// KindText when nothing matched.
func DetectKind(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return KindText
	}
	return kind.Extension
}

// IsBinaryKind reports whether kind names a recognised binary format.
func IsBinaryKind(kind string) bool {
	return kind != "" && kind != KindText
}
