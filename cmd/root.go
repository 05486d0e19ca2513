// Package cmd provides the command-line interface for the asciidoc
// toolchain, wiring internal/docconfig, internal/asciidoc, and
// internal/asciidoc/backend together behind a thin Kong CLI. Per
// spec.md's Out of Scope section, this flag surface is an external
// collaborator, not part of the specification itself.
package cmd

import (
	"log/slog"
	"os"

	kongcompletion "github.com/jotaen/kong-completion"

	"github.com/connerohnesorge/asciidoc/internal/doclog"
)

// CLI is the root Kong command structure.
type CLI struct {
	LogLevel  string `default:"info" enum:"debug,info,warn,error" help:"Log verbosity" name:"log-level"`
	LogFormat string `default:"text" enum:"text,json"             help:"Log output format" name:"log-format"`

	Convert    ConvertCmd                `cmd:"" help:"Convert an AsciiDoc document to html, man, or term output"`
	Check      CheckCmd                  `cmd:"" help:"Parse a document and report diagnostics without converting"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate shell completion scripts"`
}

// AfterApply installs a slog.Logger configured from the --log-level /
// --log-format flags as the process default before any command runs.
func (c *CLI) AfterApply() error {
	handler := doclog.CreateHandler(os.Stderr, doclog.ParseLevel(c.LogLevel), doclog.ParseFormat(c.LogFormat))
	slog.SetDefault(slog.New(handler))

	return nil
}
