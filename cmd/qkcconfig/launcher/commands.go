package launcher

import (
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-quarkchain-config/qkc"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

var errConfigDrift = errors.New("configurations differ")

func dump(ctx *cli.Context) error {
	cfg, err := MakeConfig(ctx)
	if err != nil {
		return err
	}
	data, err := encodeConfig(cfg.Network, cfg.Format)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"source": cfg.Source,
		"shards": len(cfg.Network.ShardList),
		"format": cfg.Format,
	}).Debug("Dumping configuration")

	_, err = fmt.Fprintln(ctx.App.Writer, string(data))
	return err
}

func compare(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.Errorf("compare takes 2 documents, have %d", ctx.NArg())
	}
	a, err := loadConfigFile(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := loadConfigFile(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	if a.Equal(b) {
		fmt.Fprintln(ctx.App.Writer, "configurations are equal")
		return nil
	}
	drift := fields.Diff(a, b)
	for _, name := range drift {
		fmt.Fprintln(ctx.App.Writer, name)
	}
	logrus.WithField("fields", drift).Warn("Configuration drift")
	return errors.Wrapf(errConfigDrift, "%d fields", len(drift))
}

func inspect(ctx *cli.Context) error {
	cfg, err := MakeConfig(ctx)
	if err != nil {
		return err
	}
	network := cfg.Network

	rate, err := network.ReducedRewardTaxRate()
	if err != nil {
		return err
	}
	guardianKey, err := network.GuardianPublicKey()
	if err != nil {
		return err
	}
	guardianStatus := "public key only"
	if priv, err := network.GuardianPrivateKey(); err != nil {
		return err
	} else if priv != nil {
		guardianStatus = "private key verified"
	}

	w := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "source\t%s\n", cfg.Source)
	fmt.Fprintf(w, "network id\t%d\n", network.NetworkID)
	fmt.Fprintf(w, "shards\t%d\n", len(network.ShardList))
	fmt.Fprintf(w, "reward tax rate\t%s\n", rate.RatString())
	fmt.Fprintf(w, "genesis shards\t%v\n", network.GenesisShardIDs())
	fmt.Fprintf(w, "guardian\t%s (%s)\n", guardianKey, guardianStatus)
	fmt.Fprintf(w, "evm chain id\t%s\n", network.EvmChainConfig().ChainID)
	if network.Root != nil {
		fmt.Fprintf(w, "root consensus\t%s\n", network.Root.ConsensusType)
		fmt.Fprintf(w, "root blocks in memory\t%d\n", network.Root.MaxRootBlocksInMemory())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SHARD\tCONSENSUS\tGENESIS ROOT HEIGHT\tBLOCKS PER ROOT BLOCK\tSTALE HEIGHT DIFF\tBLOCKS IN MEMORY")
	for i, s := range network.ShardList {
		height := "-"
		if h, err := network.GenesisRootHeight(uint32(i)); err == nil {
			height = fmt.Sprint(h)
		}
		perRoot, stale, memory := "-", "-", "-"
		if hasBlockTimes(s) {
			perRoot = fmt.Sprint(s.MaxBlocksPerShardInOneRootBlock())
			stale = fmt.Sprint(s.MaxStaleMinorBlockHeightDiff())
			memory = fmt.Sprint(s.MaxMinorBlocksInMemory())
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i, s.ConsensusType, height, perRoot, stale, memory)
	}
	return w.Flush()
}

// hasBlockTimes reports whether the derived values of s can be computed.
func hasBlockTimes(s *qkc.ShardConfig) bool {
	root := s.RootConfig()
	return root != nil &&
		root.ConsensusConfig != nil && s.ConsensusConfig != nil &&
		s.ConsensusConfig.TargetBlockTime > 0
}
