package docconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/connerohnesorge/asciidoc/internal/docerrs"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"asciidoc.yml",
	"asciidoc.yaml",
	".asciidocrc.yml",
	".asciidocrc.yaml",
}

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if no
// config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Load reads and parses a toolchain config file. If configPath is
// non-empty, that file is loaded directly. Otherwise Load searches the
// current working directory using Discover. If no config file is found,
// DefaultConfig is returned.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values, since unmarshaling overlays onto a
// pre-populated Config rather than a zero value.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, &docerrs.ConfigParseError{Path: "", Err: err}
		}
		configPath = Discover(wd)
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &docerrs.ConfigParseError{Path: configPath, Err: err}
		}

		return nil, &docerrs.ConfigParseError{Path: configPath, Err: err}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &docerrs.ConfigParseError{Path: configPath, Err: err}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validDoctypes = map[string]bool{"article": true, "book": true, "manpage": true, "inline": true}
var validSafeModes = map[string]bool{"unsafe": true, "safe": true, "server": true, "secure": true}
var validAttributeMissing = map[string]bool{"skip": true, "drop": true, "drop-line": true}
var validBackends = map[string]bool{"html": true, "man": true, "term": true}

// validate checks that every enum-like field names one of the values the
// core parser/backends actually recognize.
func (c *Config) validate() error {
	if !validDoctypes[c.Parser.Doctype] {
		return &docerrs.ConfigValidationError{Field: "parser.doctype", Value: c.Parser.Doctype, Reason: "must be one of article, book, manpage, inline"}
	}
	if !validSafeModes[c.Parser.SafeMode] {
		return &docerrs.ConfigValidationError{Field: "parser.safe_mode", Value: c.Parser.SafeMode, Reason: "must be one of unsafe, safe, server, secure"}
	}
	if !validAttributeMissing[c.Parser.AttributeMissing] {
		return &docerrs.ConfigValidationError{Field: "parser.attribute_missing", Value: c.Parser.AttributeMissing, Reason: "must be one of skip, drop, drop-line"}
	}
	if !validBackends[c.Convert.Backend] {
		return &docerrs.ConfigValidationError{Field: "convert.backend", Value: c.Convert.Backend, Reason: "must be one of html, man, term"}
	}

	return nil
}
