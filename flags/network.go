package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// TopologyFlags select the shard layout of a generated configuration.

func TopologyFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "preset",
			Usage: "Named topology preset (default|single|devnet|large)",
			Value: "default",
		},
		cli.Uint64Flag{
			Name:  "shards",
			Usage: "Number of shards, overrides the preset",
		},
		cli.Uint64Flag{
			Name:  "root.blocktime",
			Usage: "Root chain target block time in seconds, overrides the preset",
		},
		cli.Uint64Flag{
			Name:  "minor.blocktime",
			Usage: "Shard chain target block time in seconds, overrides the preset",
		},
	}
}
