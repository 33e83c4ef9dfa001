package file

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/ctxgrep/ctxgrep"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadUTF8(t *testing.T) {
	content := "export const knowledge = `유통(소비)기한 및 제조일자 기준`;\n"
	path := writeFile(t, "knowledge.ts", []byte(content))

	doc, err := Load(path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, content, doc.Raw)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "utf-8", doc.Encoding)
	assert.Equal(t, "text", doc.Kind)
	assert.Equal(t, len(content), doc.Size)
}

func TestLoadKeepsBOM(t *testing.T) {
	path := writeFile(t, "bom.txt", []byte("\ufeff잔여"))

	doc, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "\ufeff잔여", doc.Raw)
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	doc, err := Load(path, "utf-8")
	require.NoError(t, err)
	assert.Empty(t, doc.Raw)
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.ts")

	doc, err := Load(path, "utf-8")
	assert.Nil(t, doc)
	var fae *ctxgrep.FileAccessError
	require.ErrorAs(t, err, &fae)
	assert.Equal(t, "read", fae.Op)
	assert.Equal(t, path, fae.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir(), "utf-8")
	var fae *ctxgrep.FileAccessError
	require.ErrorAs(t, err, &fae)
}

func TestLoadInvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.txt", []byte("abc\xffdef"))

	_, err := Load(path, "utf-8")
	var de *ctxgrep.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 3, de.Offset)
	assert.Equal(t, "utf-8", de.Encoding)
	assert.Empty(t, de.Kind)
}

func TestLoadBinaryKindInError(t *testing.T) {
	path := writeFile(t, "image.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	_, err := Load(path, "utf-8")
	var de *ctxgrep.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "png", de.Kind)
	assert.Equal(t, 0, de.Offset)
	assert.Contains(t, err.Error(), "looks like png")
}

func TestLoadEUCKR(t *testing.T) {
	want := "소비기한 50%"
	encoded, err := korean.EUCKR.NewEncoder().String(want)
	require.NoError(t, err)
	path := writeFile(t, "euckr.txt", []byte(encoded))

	doc, err := Load(path, "euc-kr")
	require.NoError(t, err)
	assert.Equal(t, want, doc.Raw)
	assert.Equal(t, "euc-kr", doc.Encoding)

	// the same bytes are not valid utf-8
	_, err = Load(path, "utf-8")
	var de *ctxgrep.DecodeError
	require.ErrorAs(t, err, &de)
}

func TestLoadInvalidEUCKR(t *testing.T) {
	path := writeFile(t, "bad-euckr.txt", []byte{'a', 0xff, 0xff, 'b'})

	_, err := Load(path, "euc-kr")
	var de *ctxgrep.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "euc-kr", de.Encoding)
}

func TestLoadUnknownEncoding(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("a"))

	_, err := Load(path, "klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown encoding")
}

func TestLoadMaxFileSize(t *testing.T) {
	path := writeFile(t, "big.txt", []byte(strings.Repeat("x", 64)))

	f := &File{Path: path, MaxFileSize: 32}
	_, err := f.Load()
	var fae *ctxgrep.FileAccessError
	require.ErrorAs(t, err, &fae)
	assert.ErrorIs(t, err, ErrTooLarge)

	f.MaxFileSize = 64
	doc, err := f.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Raw, 64)
}

func TestLoadNormalizesLineEndings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"crlf", "line1\r\n50%\r\n", "line1\n50%\n"},
		{"lone cr", "line1\r50%\r", "line1\n50%\n"},
		{"mixed", "a\r\r\nb\nc\r", "a\n\nb\nc\n"},
		{"lf untouched", "line1\n50%\n", "line1\n50%\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "crlf.txt", []byte(tt.raw))

			doc, err := Load(path, "utf-8")
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Raw)
			assert.Equal(t, len(tt.raw), doc.Size)
		})
	}
}

func TestLoadNormalizesLineEndingsEUCKR(t *testing.T) {
	encoded, err := korean.EUCKR.NewEncoder().String("잔여\r\n소비기한\r\n")
	require.NoError(t, err)
	path := writeFile(t, "crlf-euckr.txt", []byte(encoded))

	doc, err := Load(path, "euc-kr")
	require.NoError(t, err)
	assert.Equal(t, "잔여\n소비기한\n", doc.Raw)
}

func TestLoadGB18030ReplacementCharacter(t *testing.T) {
	want := "a\ufffdb"
	encoded, err := simplifiedchinese.GB18030.NewEncoder().String(want)
	require.NoError(t, err)
	require.Contains(t, encoded, "\x84\x31\xa4\x37")
	path := writeFile(t, "gb18030.txt", []byte(encoded))

	doc, err := Load(path, "gb18030")
	require.NoError(t, err)
	assert.Equal(t, want, doc.Raw)
}

func TestLoadInvalidGB18030(t *testing.T) {
	path := writeFile(t, "bad-gb18030.txt", []byte{'a', 0x81, 0x20, 'b'})

	_, err := Load(path, "gb18030")
	var de *ctxgrep.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "gb18030", de.Encoding)
}
