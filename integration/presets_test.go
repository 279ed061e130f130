package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-quarkchain-config/inter/account"
)

func TestGetPresetByName(t *testing.T) {
	for _, name := range []string{"default", "single", "devnet", "large"} {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			p, err := GetPresetByName(name)
			require.NoError(err)
			require.Equal(name, p.Name)
			require.NoError(p.Validate())
		})
	}

	_, err := GetPresetByName("archive")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		preset        PresetConfig
		blocksPerRoot uint64
		staleDiff     uint64
	}{
		{DefaultPreset(), 6, 200},
		{SinglePreset(), 6, 200},
		{DevnetPreset(), 5, 120},
		{LargePreset(), 9, 360},
	}
	for _, tt := range tests {
		t.Run(tt.preset.Name, func(t *testing.T) {
			require := require.New(t)

			cfg, err := tt.preset.Build()
			require.NoError(err)
			require.Len(cfg.ShardList, int(tt.preset.ShardSize))
			require.Equal(tt.preset.ShardSize, cfg.Root.Genesis.ShardSize)

			for i, s := range cfg.ShardList {
				require.Equal(account.CreateEmptyAccount(uint32(i)), s.CoinbaseAddress)
				require.Equal(tt.blocksPerRoot, s.MaxBlocksPerShardInOneRootBlock())
				require.Equal(tt.staleDiff, s.MaxStaleMinorBlockHeightDiff())
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	require := require.New(t)

	target := DevnetPreset()
	ApplyPreset(&target, PresetConfig{MinorBlockTime: 2})
	require.Equal("devnet", target.Name)
	require.Equal(uint32(4), target.ShardSize)
	require.Equal(uint64(10), target.RootBlockTime)
	require.Equal(uint64(2), target.MinorBlockTime)

	ApplyPreset(&target, PresetConfig{Name: "custom", ShardSize: 16, RootBlockTime: 30})
	require.Equal(PresetConfig{Name: "custom", ShardSize: 16, RootBlockTime: 30, MinorBlockTime: 2}, target)
}

func TestBuildRejectsInvalid(t *testing.T) {
	for _, p := range []PresetConfig{
		{Name: "empty"},
		{Name: "no shards", RootBlockTime: 10, MinorBlockTime: 3},
		{Name: "no minor time", ShardSize: 2, RootBlockTime: 10},
	} {
		_, err := p.Build()
		require.Error(t, err, p.Name)
	}
}
