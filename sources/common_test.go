package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"empty", nil, KindText},
		{"plain text", []byte("export const knowledge = `소비기한`"), KindText},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "png"},
		{"zip", []byte("PK\x03\x04\x14\x00\x00\x00"), "zip"},
		{"pdf", []byte("%PDF-1.7\n"), "pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectKind(tt.head)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want != KindText, IsBinaryKind(got))
		})
	}
}
