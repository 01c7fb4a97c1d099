package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"text/template"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"
)

// renderClass executes both template halves for one model and writes the
// header and source files under cfg.OutDir, creating the directory on
// demand. Formatting afterwards is best effort.
func renderClass(ctx context.Context, tmpl *template.Template, m mockModel, cfg Config) error {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return errors.WithStack(err)
	}
	data := m.renderData(cfg)
	halves := []struct{ tmpl, file string }{
		{tmplHeader, m.HeaderFile},
		{tmplSource, m.SourceFile},
	}
	for _, h := range halves {
		var out bytes.Buffer
		if err := tmpl.ExecuteTemplate(&out, h.tmpl, data); err != nil {
			return errors.Errorf("render %s: %w", h.file, err)
		}
		outPath := filepath.Join(cfg.OutDir, h.file)
		if err := os.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
			return errors.WithStack(err)
		}
		if !cfg.NoFormat {
			formatFile(ctx, outPath)
		}
		slogctx.Debug(ctx, "wrote mock file", "path", outPath)
	}
	return nil
}
