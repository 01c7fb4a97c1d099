package generator

import (
	"bytes"
	"io"
	"os"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every knob of a generation run. Zero values mean "use the
// default"; DefaultConfig fills them in and LoadConfigFile overlays a YAML
// file on top. Files, OutDir, Expr and ParserLib describe one invocation
// rather than a project, so they come from the command line only and a
// config file naming them is rejected.
type Config struct {
	Files     []string `yaml:"-"`         // input interface headers
	OutDir    string   `yaml:"-"`         // output directory, created on demand
	Expr      string   `yaml:"-"`         // qualified-path prefix filter ("" = all classes)
	ParserLib string   `yaml:"-"`         // optional tree-sitter C++ grammar shared library
	NoFormat  bool     `yaml:"no_format"` // skip the clang-format pass

	Naming    NamingConfig   `yaml:"naming"`
	Macros    MacroConfig    `yaml:"macros"`
	Templates TemplateConfig `yaml:"templates"`

	Command string `yaml:"-"` // canonical invocation line for the banner
	Version string `yaml:"-"` // build version for the banner
}

// NamingConfig enumerates the identifier and file-name transforms applied
// by the model builder.
type NamingConfig struct {
	MockSuffix  string   `yaml:"mock_suffix"`  // appended to the pascal-cased interface words
	FileSuffix  string   `yaml:"file_suffix"`  // appended to the kebab-cased file stem
	HeaderExt   string   `yaml:"header_ext"`   // generated header extension
	SourceExt   string   `yaml:"source_ext"`   // generated source extension
	GuardSuffix string   `yaml:"guard_suffix"` // appended to the upper-snake guard stem
	ArgPrefix   string   `yaml:"arg_prefix"`   // prefix for synthesized parameter names
	StripWords  []string `yaml:"strip_words"`  // words removed from interface names
}

// MacroConfig enumerates the pieces the macro selector concatenates.
type MacroConfig struct {
	Prefix         string `yaml:"prefix"`
	ConstInfix     string `yaml:"const_infix"`
	Stem           string `yaml:"stem"`
	TemplateSuffix string `yaml:"template_suffix"`
	MaxArity       int    `yaml:"max_arity"`
}

// TemplateConfig points at replacement template files. Empty fields keep
// the embedded templates.
type TemplateConfig struct {
	Header string `yaml:"header"`
	Source string `yaml:"source"`
}

// DefaultConfig returns the settings matching stock Google Mock output.
func DefaultConfig() Config {
	return Config{
		OutDir: ".",
		Naming: NamingConfig{
			MockSuffix:  "Mock",
			FileSuffix:  "-gmock",
			HeaderExt:   ".h",
			SourceExt:   ".cpp",
			GuardSuffix: "_H_",
			ArgPrefix:   "arg",
			StripWords:  []string{"intf"},
		},
		Macros: MacroConfig{
			Prefix:         "MOCK_",
			ConstInfix:     "CONST_",
			Stem:           "METHOD",
			TemplateSuffix: "_T",
			MaxArity:       10,
		},
	}
}

// LoadConfigFile overlays the YAML file at path onto cfg. Only keys
// present in the file change; unknown keys are rejected so typos surface
// instead of silently keeping defaults.
func LoadConfigFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Errorf("config %s: %w", path, err)
	}
	return nil
}
