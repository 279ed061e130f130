package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// DocumentFlags point at configuration documents and choose how they are written.

func DocumentFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Configuration document to load (.json, .yaml or .yml)",
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "Output format of the configuration document (json|yaml)",
			Value: "json",
		},
	}
}
