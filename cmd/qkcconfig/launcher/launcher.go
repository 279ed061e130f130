// Package launcher implements the qkcconfig command line tool: it generates,
// loads, compares and inspects QuarkChain network configurations.
package launcher

import (
	"io"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-quarkchain-config/flags"
)

// Launch runs the tool with the given command line.
func Launch(args []string) error {
	return newApp(os.Stdout).Run(args)
}

func newApp(w io.Writer) *cli.App {
	app := flags.NewApp()
	app.Writer = w
	app.Flags = flags.CommonFlags()
	app.Before = setupLogging

	documentFlags := append(flags.DocumentFlags(), flags.TopologyFlags()...)
	app.Commands = []cli.Command{
		{
			Name:   "dump",
			Usage:  "Print a configuration document",
			Flags:  documentFlags,
			Action: dump,
			Description: `
Generates the configuration of a preset topology, or loads --config, and
writes it in --format.`,
		},
		{
			Name:      "compare",
			Usage:     "Compare two configuration documents",
			ArgsUsage: "<file> <file>",
			Action:    compare,
			Description: `
Loads both documents and reports the top level fields that differ. Exits
with an error if any does.`,
		},
		{
			Name:   "inspect",
			Usage:  "Print the derived values of a configuration",
			Flags:  documentFlags,
			Action: inspect,
		},
	}
	return app
}
