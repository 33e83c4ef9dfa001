package scan

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ctxgrep/ctxgrep"
)

var (
	termStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5d445"))
	offsetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bf9478"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52c41a"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f05c07"))
)

// PrintSnippet writes a one line description of a snippet to w.
func PrintSnippet(w io.Writer, s ctxgrep.Snippet, noColor bool) {
	term := fmt.Sprintf("%q", s.Term)
	offsets := fmt.Sprintf("index=%d window=[%d:%d] chars=%d", s.Index, s.Start, s.End, s.Len())
	if !noColor {
		term = termStyle.Render(term)
		offsets = offsetStyle.Render(offsets)
	}
	fmt.Fprintf(w, "%-12s %s %s\n", "Match:", term, offsets)
}

// PrintSummary writes the outcome of a run to w.
func PrintSummary(w io.Writer, s Summary, noColor bool) {
	line := fmt.Sprintf("%d of %d terms found", s.Found, s.Terms)
	if !noColor {
		if s.Found > 0 {
			line = okStyle.Render(line)
		} else {
			line = missingStyle.Render(line)
		}
	}
	fmt.Fprintf(w, "%s, scanned %s, report written to %s\n", line, bytesConvert(uint64(s.Bytes)), s.ReportPath)
}

const (
	BYTE     = 1.0
	KILOBYTE = BYTE * 1000
	MEGABYTE = KILOBYTE * 1000
	GIGABYTE = MEGABYTE * 1000
)

func bytesConvert(bytes uint64) string {
	unit := ""
	value := float32(bytes)

	switch {
	case bytes >= GIGABYTE:
		unit = "GB"
		value = value / GIGABYTE
	case bytes >= MEGABYTE:
		unit = "MB"
		value = value / MEGABYTE
	case bytes >= KILOBYTE:
		unit = "KB"
		value = value / KILOBYTE
	case bytes >= BYTE:
		unit = "bytes"
	case bytes == 0:
		return "0 bytes"
	}

	return fmt.Sprintf("%s %s", strings.TrimSuffix(fmt.Sprintf("%.2f", value), ".00"), unit)
}

