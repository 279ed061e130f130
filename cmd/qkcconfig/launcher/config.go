package launcher

import (
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-quarkchain-config/integration"
	"github.com/rony4d/go-quarkchain-config/qkc"
)

// Config is what a command works on.
type Config struct {
	Network *qkc.QuarkChainConfig
	Source  string // document path or preset name
	Format  string
}

var topologyFlags = []string{"shards", "root.blocktime", "minor.blocktime"}

// MakeConfig loads --config if given, and otherwise builds the --preset
// topology with the command line overrides applied.
func MakeConfig(ctx *cli.Context) (Config, error) {
	cfg := Config{Format: ctx.String("format")}
	if cfg.Format == "" {
		cfg.Format = DefaultConfig().Format
	}

	if file := ctx.String("config"); file != "" {
		for _, name := range topologyFlags {
			if ctx.IsSet(name) {
				return Config{}, errors.Errorf("--%s cannot be combined with --config", name)
			}
		}
		network, err := loadConfigFile(file)
		if err != nil {
			return Config{}, err
		}
		cfg.Network, cfg.Source = network, file
		return cfg, nil
	}

	preset, err := makePreset(ctx)
	if err != nil {
		return Config{}, err
	}
	network, err := preset.Build()
	if err != nil {
		return Config{}, err
	}
	cfg.Network, cfg.Source = network, preset.Name
	return cfg, nil
}

func makePreset(ctx *cli.Context) (integration.PresetConfig, error) {
	name := ctx.String("preset")
	if name == "" {
		name = DefaultConfig().Preset
	}
	preset, err := integration.GetPresetByName(name)
	if err != nil {
		return integration.PresetConfig{}, err
	}

	var overrides integration.PresetConfig
	for _, flag := range topologyFlags {
		if ctx.IsSet(flag) && ctx.Uint64(flag) == 0 {
			return integration.PresetConfig{}, errors.Errorf("--%s must be positive", flag)
		}
	}
	if ctx.IsSet("shards") {
		n := ctx.Uint64("shards")
		if n > math.MaxUint32 {
			return integration.PresetConfig{}, errors.Errorf("--shards %d out of range", n)
		}
		overrides.ShardSize = uint32(n)
	}
	if ctx.IsSet("root.blocktime") {
		overrides.RootBlockTime = ctx.Uint64("root.blocktime")
	}
	if ctx.IsSet("minor.blocktime") {
		overrides.MinorBlockTime = ctx.Uint64("minor.blocktime")
	}
	integration.ApplyPreset(&preset, overrides)
	return preset, nil
}

// loadConfigFile decodes a configuration document. The extension selects
// YAML (.yaml, .yml) or JSON (anything else).
func loadConfigFile(path string) (*qkc.QuarkChainConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var network *qkc.QuarkChainConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		network, err = qkc.FromYAML(data)
	default:
		network, err = qkc.FromJSON(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return network, nil
}

func encodeConfig(network *qkc.QuarkChainConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return network.ToJSON()
	case "yaml", "yml":
		return network.ToYAML()
	default:
		return nil, errors.Errorf("unknown format %q (valid: json, yaml)", format)
	}
}
