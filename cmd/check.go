package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/asciidoc/internal/asciidoc"
	"github.com/connerohnesorge/asciidoc/internal/docconfig"
	"github.com/connerohnesorge/asciidoc/internal/docerrs"
)

// CheckCmd parses a document and reports diagnostics without converting
// it, for CI / editor-integration use.
type CheckCmd struct {
	File   string `arg:""                                help:"Path to the .adoc source file"`
	Config string `help:"Path to an explicit config file" name:"config" optional:""`
	Strict bool   `help:"Promote malformed-table warnings to errors"      name:"strict" optional:""`
}

func (c *CheckCmd) Run() error {
	cfg, err := docconfig.Load(c.Config)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	opts := cfg.ParserOptions()
	opts.RootDir = filepath.Dir(c.File)
	opts.Filesystem = afero.NewOsFs()
	if c.Strict {
		opts.Strict = true
	}

	_, diags, perr := asciidoc.Parse(source, c.File, opts)
	if perr != nil {
		return &docerrs.FatalDocumentError{Path: c.File, Err: perr}
	}

	hasError := false
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
		if d.Severity == asciidoc.SeverityError {
			hasError = true
		}
	}

	if hasError {
		return fmt.Errorf("%s: failed with %d diagnostic(s)", c.File, len(diags))
	}

	return nil
}
