package scan

import (
	"context"

	"github.com/ctxgrep/ctxgrep"
	"github.com/ctxgrep/ctxgrep/config"
	"github.com/ctxgrep/ctxgrep/detect"
	"github.com/ctxgrep/ctxgrep/logging"
	"github.com/ctxgrep/ctxgrep/report"
)

// Pipeline runs load -> scan -> extract -> report once.
type Pipeline struct {
	Config config.Config

	// document producer
	Source ctxgrep.Source

	// document consumer, match producer
	Scanner *Scanner

	// snippet consumer, final output
	Reporter   ctxgrep.Reporter
	ReportPath string
}

// Summary describes a finished run.
type Summary struct {
	Terms      int
	Found      int
	Bytes      int
	ReportPath string
	Snippets   []ctxgrep.Snippet
}

func NewPipeline(cfg config.Config, src ctxgrep.Source, reporter ctxgrep.Reporter, reportPath string) *Pipeline {
	return &Pipeline{
		Config:     cfg,
		Source:     src,
		Scanner:    NewScanner(cfg.Terms),
		Reporter:   reporter,
		ReportPath: reportPath,
	}
}

// Snippets loads the source and extracts one snippet per term that occurs in
// it, in term order.
func (p *Pipeline) Snippets(ctx context.Context) (*ctxgrep.Document, []ctxgrep.Snippet, error) {
	doc, err := p.Source.Load()
	if err != nil {
		return nil, nil, err
	}

	var snippets []ctxgrep.Snippet
	for m := range p.Scanner.Scan(doc) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if !m.Found {
			logging.Debug().Str("term", m.Term).Msg("no match")
			continue
		}
		s := detect.ExtractContext(doc, m, p.Config.Before, p.Config.After)
		logging.Debug().
			Str("term", m.Term).
			Int("index", m.Index).
			Int("start", s.Start).
			Int("end", s.End).
			Msg("match")
		snippets = append(snippets, s)
	}
	return doc, snippets, nil
}

// Run executes the whole pipeline. The report is only written after the
// source was loaded and scanned successfully.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	doc, snippets, err := p.Snippets(ctx)
	if err != nil {
		return Summary{}, err
	}

	if err := report.WriteFile(p.ReportPath, p.Config.Encoding, p.Reporter, snippets); err != nil {
		return Summary{}, err
	}

	return Summary{
		Terms:      len(p.Config.Terms),
		Found:      len(snippets),
		Bytes:      doc.Size,
		ReportPath: p.ReportPath,
		Snippets:   snippets,
	}, nil
}
