package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend/htmlout"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend/manout"
	"github.com/connerohnesorge/asciidoc/internal/asciidoc/backend/termout"
	"github.com/connerohnesorge/asciidoc/internal/docconfig"
	"github.com/connerohnesorge/asciidoc/internal/docerrs"
)

// ConvertCmd renders a single AsciiDoc document through one of the
// Converter Framework's backends.
type ConvertCmd struct {
	File    string `arg:""                                help:"Path to the .adoc source file"`
	Backend string `enum:"html,man,term" help:"Backend to render with; overrides the config file" name:"backend" optional:""`
	Config  string `help:"Path to an explicit config file" name:"config"                           optional:""`
	Output  string `help:"Write to this file instead of stdout" name:"output"                      optional:"" short:"o"`
}

func (c *ConvertCmd) Run() error {
	cfg, err := docconfig.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Backend != "" {
		cfg.Convert.Backend = c.Backend
	}

	source, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	opts := cfg.ParserOptions()
	opts.RootDir = filepath.Dir(c.File)
	opts.Filesystem = afero.NewOsFs()

	doc, diags, perr := asciidoc.Parse(source, c.File, opts)
	if perr != nil {
		return &docerrs.FatalDocumentError{Path: c.File, Err: perr}
	}
	for _, d := range diags {
		slog.Warn(d.String(), "file", c.File)
	}

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.Output, err)
		}
		defer f.Close()
		out = f
	}

	r, err := renderer(cfg.Convert.Backend)
	if err != nil {
		return err
	}

	return backend.Convert(doc, out, r)
}

func renderer(name string) (backend.Renderer, error) {
	switch strings.ToLower(name) {
	case "html":
		return htmlout.Backend{}, nil
	case "man":
		return manout.Backend{}, nil
	case "term":
		return termout.Backend{}, nil
	default:
		return nil, &docerrs.ConfigValidationError{Field: "convert.backend", Value: name, Reason: "must be one of html, man, term"}
	}
}
