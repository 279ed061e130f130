package qkc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

func TestRootSectionsFollowConsensusType(t *testing.T) {
	require := require.New(t)

	r := NewRootConfig()
	m := r.ToMap()
	require.Equal("NONE", m["CONSENSUS_TYPE"])
	require.NotContains(m, "CONSENSUS_CONFIG")
	require.NotContains(m, "GENESIS")
	require.NotNil(r.Genesis)

	m["CONSENSUS_CONFIG"] = fields.Map{"TARGET_BLOCK_TIME": 60}
	m["GENESIS"] = fields.Map{"SHARD_SIZE": 4}
	got, err := RootConfigFromMap(m)
	require.NoError(err)
	require.Nil(got.ConsensusConfig)
	require.Nil(got.Genesis)
	require.True(r.Equal(got))

	r = powRoot(10)
	m = r.ToMap()
	require.Equal("POW_SIMULATE", m["CONSENSUS_TYPE"])
	require.Equal(fields.Map{"TARGET_BLOCK_TIME": uint64(10), "REMOTE_MINE": false}, m["CONSENSUS_CONFIG"])
	require.Equal(fields.ToMap(r.Genesis), m["GENESIS"])

	r.Genesis = nil
	m = r.ToMap()
	require.Contains(m, "GENESIS")
	require.Nil(m["GENESIS"])
}

func TestRootConfigFromMap(t *testing.T) {
	t.Run("active with sections", func(t *testing.T) {
		require := require.New(t)

		r, err := RootConfigFromMap(fields.Map{
			"CONSENSUS_TYPE":                   "POW_ETHASH",
			"CONSENSUS_CONFIG":                 fields.Map{"TARGET_BLOCK_TIME": 60},
			"GENESIS":                          fields.Map{"SHARD_SIZE": 4},
			"MAX_STALE_ROOT_BLOCK_HEIGHT_DIFF": 30,
		})
		require.NoError(err)
		require.Equal(uint64(60), r.ConsensusConfig.TargetBlockTime)
		require.Equal(uint32(4), r.Genesis.ShardSize)
		require.Equal(uint64(60), r.MaxRootBlocksInMemory())
		require.Equal(uint64(1024), r.DifficultyAdjustmentFactor)
	})

	t.Run("active without sections", func(t *testing.T) {
		r, err := RootConfigFromMap(fields.Map{"CONSENSUS_TYPE": "POW_SIMULATE"})
		require.NoError(t, err)
		require.Nil(t, r.ConsensusConfig)
		require.Nil(t, r.Genesis)
	})

	t.Run("unknown consensus", func(t *testing.T) {
		_, err := RootConfigFromMap(fields.Map{"CONSENSUS_TYPE": "POW_FOO"})
		require.Error(t, err)
	})
}
