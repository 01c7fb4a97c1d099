package generator

import (
	"embed"
	"os"
	"sync"
	"text/template"

	"gitlab.com/tozd/go/errors"
)

const (
	tmplHeader = "mock_header"
	tmplSource = "mock_source"
)

const templatePattern = "templates/*.gtpl"

//go:embed templates/*.gtpl
var templatesFS embed.FS

var (
	embeddedTmpl *template.Template
	tmplInitOnce sync.Once
	tmplInitErr  error
)

// validateTemplates ensures both file halves are defined
func validateTemplates(t *template.Template) error {
	for _, name := range []string{tmplHeader, tmplSource} {
		if t.Lookup(name) == nil {
			return errors.Errorf("required template %q not found", name)
		}
	}
	return nil
}

// ensureTemplates parses and validates the embedded templates exactly once.
func ensureTemplates() error {
	tmplInitOnce.Do(func() {
		var t *template.Template
		t, tmplInitErr = template.New(tmplHeader).ParseFS(templatesFS, templatePattern)
		if tmplInitErr != nil {
			return
		}
		embeddedTmpl = t
		tmplInitErr = validateTemplates(t)
	})
	return tmplInitErr
}

// loadTemplates returns the template set for a run, overlaying custom
// template files from cfg onto the embedded defaults.
func loadTemplates(cfg TemplateConfig) (*template.Template, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	if cfg.Header == "" && cfg.Source == "" {
		return embeddedTmpl, nil
	}
	t, err := embeddedTmpl.Clone()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	overrides := []struct{ name, path string }{
		{tmplHeader, cfg.Header},
		{tmplSource, cfg.Source},
	}
	for _, o := range overrides {
		if o.path == "" {
			continue
		}
		raw, err := os.ReadFile(o.path)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if _, err := t.New(o.name).Parse(string(raw)); err != nil {
			return nil, errors.Errorf("template %s: %w", o.path, err)
		}
	}
	if err := validateTemplates(t); err != nil {
		return nil, err
	}
	return t, nil
}
