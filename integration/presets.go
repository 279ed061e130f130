// Package integration provides named network topology presets. A preset
// bundles the shard count and the root and shard target block times into a
// named profile, so a full QuarkChainConfig can be assembled without writing
// a configuration document.
//
// Usage:
//
//	p, err := integration.GetPresetByName("devnet")
//	cfg, err := p.Build()
package integration

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/qkc"
)

// PresetConfig captures the topology parameters that vary across presets.
type PresetConfig struct {
	Name           string // identifier used by --preset
	ShardSize      uint32 // number of shards
	RootBlockTime  uint64 // root target block time, seconds
	MinorBlockTime uint64 // shard target block time, seconds
}

// DefaultPreset matches the topology of a freshly constructed config.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:           "default",
		ShardSize:      qkc.DefaultShardSize,
		RootBlockTime:  qkc.DefaultRootBlockTime,
		MinorBlockTime: qkc.DefaultMinorBlockTime,
	}
}

// SinglePreset runs one shard, for unit tests and local debugging.
func SinglePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "single"
	cfg.ShardSize = 1
	return cfg
}

// DevnetPreset is a small network with slower shards, so that a root block
// confirms only a handful of blocks per shard.
func DevnetPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "devnet"
	cfg.ShardSize = 4
	cfg.MinorBlockTime = 5
	return cfg
}

// LargePreset is a wide network for load testing.
//
// Trade-offs:
//   - a root block may confirm up to 9 blocks of each of the 64 shards
//   - the longer root block time widens the stale windows of every shard
func LargePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "large"
	cfg.ShardSize = 64
	cfg.RootBlockTime = 60
	cfg.MinorBlockTime = 10
	return cfg
}

// GetPresetByName looks up a preset by its identifier.
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "default":
		return DefaultPreset(), nil
	case "single":
		return SinglePreset(), nil
	case "devnet":
		return DevnetPreset(), nil
	case "large":
		return LargePreset(), nil
	default:
		return PresetConfig{}, errors.Errorf("unknown preset: %q (valid: default, single, devnet, large)", name)
	}
}

// ApplyPreset merges preset into target. Non-zero fields of preset override
// the corresponding values, so command line overrides can be layered on top of
// a named preset.
func ApplyPreset(target *PresetConfig, preset PresetConfig) {
	if preset.ShardSize > 0 {
		target.ShardSize = preset.ShardSize
	}
	if preset.RootBlockTime > 0 {
		target.RootBlockTime = preset.RootBlockTime
	}
	if preset.MinorBlockTime > 0 {
		target.MinorBlockTime = preset.MinorBlockTime
	}
	if preset.Name != "" {
		target.Name = preset.Name
	}
}

// Validate rejects topologies the derived shard values cannot be computed for.
func (p PresetConfig) Validate() error {
	if p.ShardSize == 0 {
		return errors.Errorf("preset %s: no shards", p.Name)
	}
	if p.RootBlockTime == 0 || p.MinorBlockTime == 0 {
		return errors.Errorf("preset %s: block times must be positive", p.Name)
	}
	return nil
}

// Build assembles the full configuration of the preset topology.
func (p PresetConfig) Build() (*qkc.QuarkChainConfig, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	cfg := qkc.NewQuarkChainConfig()
	cfg.Update(p.ShardSize, p.RootBlockTime, p.MinorBlockTime)
	return cfg, nil
}
