package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ctxgrep/ctxgrep"
)

type CsvReporter struct {
}

var _ ctxgrep.Reporter = (*CsvReporter)(nil)

func (r *CsvReporter) Write(w io.WriteCloser, snippets []ctxgrep.Snippet) error {
	if len(snippets) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Term", "Index", "Start", "End", "Text"}); err != nil {
		return err
	}
	for _, s := range snippets {
		row := []string{
			s.Term,
			strconv.Itoa(s.Index),
			strconv.Itoa(s.Start),
			strconv.Itoa(s.End),
			s.Text,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
