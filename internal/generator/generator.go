package generator

import (
	"context"
	"os"
	"text/template"

	"github.com/hashicorp/go-multierror"
	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/calumari/gmockgen/internal/cppast"
)

// Run executes a full generation pass. Input files are processed strictly
// in sequence; a failure in one file is recorded and the remaining files
// are still attempted, with all failures collected into the returned
// error.
func Run(ctx context.Context, cfg Config) error {
	if len(cfg.Files) == 0 {
		return errors.New("no input files provided")
	}
	if cfg.Command == "" {
		cfg.Command = "gmockgen"
	}
	if cfg.Version == "" {
		cfg.Version = "devel"
	}
	provider, err := cppast.NewProvider(cfg.ParserLib)
	if err != nil {
		return err
	}
	tmpl, err := loadTemplates(cfg.Templates)
	if err != nil {
		return err
	}

	var runErr *multierror.Error
	for _, file := range cfg.Files {
		if err := processFile(ctx, provider, tmpl, file, cfg); err != nil {
			slogctx.Error(ctx, "file failed", "file", file, "reason", err.Error())
			runErr = multierror.Append(runErr, err)
		}
	}
	return runErr.ErrorOrNil()
}

func processFile(ctx context.Context, provider *cppast.Provider, tmpl *template.Template, file string, cfg Config) error {
	doc, err := extractFile(ctx, provider, file, cfg)
	if err != nil {
		return err
	}
	return renderFile(ctx, tmpl, doc, cfg)
}

// extractFile parses one header and extracts its mockable classes in
// declaration order. Class level failures are logged where they occur and
// never abort siblings; only parse failures surface as file-level errors.
func extractFile(ctx context.Context, provider *cppast.Provider, file string, cfg Config) (interfaceFile, error) {
	doc := interfaceFile{Path: file}
	src, err := os.ReadFile(file)
	if err != nil {
		return doc, errors.Errorf("%w: %s", ErrParse, err)
	}
	root, err := provider.ParseFile(ctx, file, src)
	if err != nil {
		return doc, errors.Errorf("%w: %s", ErrParse, err)
	}

	sites := discoverClasses(root)
	siblings := siblingIndex(sites)
	for _, site := range filterSites(sites, cfg.Expr) {
		decl, err := extractClass(ctx, site, siblings, cfg)
		if err != nil {
			slogctx.Warn(ctx, "skipping class", "class", site.qualifiedPath(), "reason", err.Error())
			continue
		}
		if len(decl.Methods) == 0 {
			slogctx.Debug(ctx, "class declares no pure virtual methods", "class", site.qualifiedPath())
			continue
		}
		doc.Classes = append(doc.Classes, decl)
	}
	return doc, nil
}

// renderFile writes one mock pair per extracted class. Render failures
// are collected per class so sibling classes still get written.
func renderFile(ctx context.Context, tmpl *template.Template, doc interfaceFile, cfg Config) error {
	if len(doc.Classes) == 0 {
		slogctx.Warn(ctx, "no mockable interface classes", "file", doc.Path, "filter", cfg.Expr)
		return nil
	}
	var fileErr *multierror.Error
	for _, decl := range doc.Classes {
		model := buildMockModel(ctx, decl, cfg)
		if err := renderClass(ctx, tmpl, model, cfg); err != nil {
			fileErr = multierror.Append(fileErr, errors.Errorf("%s: %w", model.Interface, err))
			continue
		}
		slogctx.Info(ctx, "generated mock",
			"class", model.Interface,
			"header", model.HeaderFile,
			"source", model.SourceFile,
		)
	}
	return fileErr.ErrorOrNil()
}
