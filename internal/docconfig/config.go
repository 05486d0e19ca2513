// Package docconfig defines the configuration types and defaults for the
// asciidoc toolchain's CLI.
package docconfig

// Config is the top-level configuration loaded from an asciidoc.yml /
// .asciidocrc.yml file.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Convert ConvertConfig `yaml:"convert"`
}

// ParserConfig mirrors the subset of asciidoc.ParserOptions a user may
// override from a config file: default doctype, safe mode, attribute
// overlay, and missing-attribute behavior.
type ParserConfig struct {
	Doctype          string            `yaml:"doctype"`
	SafeMode         string            `yaml:"safe_mode"`
	AttributeMissing string            `yaml:"attribute_missing"`
	Attributes       map[string]string `yaml:"attributes"`
	Strict           bool              `yaml:"strict"`
}

// ConvertConfig holds backend-selection and output settings for `asciidoc
// convert`.
type ConvertConfig struct {
	Backend   string `yaml:"backend"`
	OutputDir string `yaml:"output_dir"`
}

// DefaultConfig returns a Config with every documented default value.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Doctype:          "article",
			SafeMode:         "safe",
			AttributeMissing: "skip",
			Attributes:       map[string]string{},
			Strict:           false,
		},
		Convert: ConvertConfig{
			Backend:   "html",
			OutputDir: ".",
		},
	}
}
