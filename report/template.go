package report

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/group/all"

	"github.com/ctxgrep/ctxgrep"
)

// TemplateReporter renders snippets through a user supplied text/template.
// The template receives the []ctxgrep.Snippet slice as its data and can use
// the sprout function library.
type TemplateReporter struct {
	template *template.Template
}

var _ ctxgrep.Reporter = (*TemplateReporter)(nil)

func NewTemplateReporter(templatePath string) (*TemplateReporter, error) {
	if templatePath == "" {
		return nil, fmt.Errorf("template path cannot be empty")
	}

	file, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return ParseTemplate(templatePath, string(file))
}

// ParseTemplate builds a TemplateReporter from template text.
func ParseTemplate(name, text string) (*TemplateReporter, error) {
	handler := sprout.New()
	if err := handler.AddGroups(all.RegistryGroup()); err != nil {
		return nil, fmt.Errorf("error loading template functions: %w", err)
	}

	tmpl, err := template.New(name).Funcs(handler.Build()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}
	return &TemplateReporter{template: tmpl}, nil
}

func (t *TemplateReporter) Write(w io.WriteCloser, snippets []ctxgrep.Snippet) error {
	return t.template.Execute(w, snippets)
}
