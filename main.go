package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
)

var version string = "unknown"

func main() {
	var input CLIInput

	ctx := kong.Parse(&input,
		kong.Name("nanoperiod"),
		kong.Description("Calendar-aware period arithmetic over instants and intervals."),
		kong.Vars{"version": version},
		kong.Bind(&input),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
		kong.BindTo(afero.NewOsFs(), (*afero.Fs)(nil)),
	)

	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
