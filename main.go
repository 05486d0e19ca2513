package main

import (
	"github.com/alecthomas/kong"

	"github.com/connerohnesorge/asciidoc/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("asciidoc"),
		kong.Description("AsciiDoc parser and converter toolchain"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
