package qkc

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/inter/account"
	"github.com/rony4d/go-quarkchain-config/qkc/genesis"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

// ShardConfig holds the parameters of one shard chain.
type ShardConfig struct {
	fields.Extras

	ConsensusType ConsensusType
	// Only set when ConsensusType is proof-of-work. Genesis may stay unset
	// for a shard that is not created yet.
	ConsensusConfig *POWConfig
	Genesis         *genesis.ShardGenesis

	CoinbaseAddress account.Address // receives the block rewards
	CoinbaseAmount  *big.Int        // block reward in jiaozi

	// Gas limit tuning. The block gas limit follows an exponential moving
	// average of the gas used, scaled by the usage adjustment ratio and kept
	// within [GasLimitMinimum, GasLimitMaximum].
	GasLimitEmaDenominator             uint64 // smoothing window of the moving average
	GasLimitAdjustmentFactor           uint64 // max change per block is limit / factor
	GasLimitMinimum                    uint64
	GasLimitMaximum                    uint64
	GasLimitUsageAdjustmentNumerator   uint64
	GasLimitUsageAdjustmentDenominator uint64

	DifficultyAdjustmentCutoffTime uint64 // seconds, block times above it lower the difficulty
	DifficultyAdjustmentFactor     uint64 // max change per block is difficulty / factor

	// ExtraShardBlocksInRootBlock is the slack added to the number of shard
	// blocks a root block may confirm.
	ExtraShardBlocksInRootBlock uint64

	root *RootConfig
}

// NewShardConfig returns a shard config without consensus and with a
// default genesis.
func NewShardConfig() *ShardConfig {
	return &ShardConfig{
		ConsensusType:                      ConsensusNone,
		Genesis:                            genesis.NewShardGenesis(),
		CoinbaseAmount:                     qkc(5),
		GasLimitEmaDenominator:             1024,
		GasLimitAdjustmentFactor:           1024,
		GasLimitMinimum:                    5000,
		GasLimitMaximum:                    math.MaxInt64,
		GasLimitUsageAdjustmentNumerator:   3,
		GasLimitUsageAdjustmentDenominator: 2,
		DifficultyAdjustmentCutoffTime:     7,
		DifficultyAdjustmentFactor:         512,
		ExtraShardBlocksInRootBlock:        3,
	}
}

// ConfigFields implements fields.Node.
func (s *ShardConfig) ConfigFields() []fields.Field {
	return []fields.Field{
		consensusTypeField(&s.ConsensusType),
		consensusConfigField(&s.ConsensusType, &s.ConsensusConfig),
		sectionField("GENESIS", &s.ConsensusType,
			func() interface{} {
				if s.Genesis == nil {
					return nil
				}
				return fields.ToMap(s.Genesis)
			},
			func(m fields.Map) error {
				if m == nil {
					s.Genesis = nil
					return nil
				}
				g, err := genesis.ShardGenesisFromMap(m)
				if err != nil {
					return err
				}
				s.Genesis = g
				return nil
			}),
		coinbaseAddressField(&s.CoinbaseAddress),
		fields.Big("COINBASE_AMOUNT", &s.CoinbaseAmount),
		fields.Uint64("GAS_LIMIT_EMA_DENOMINATOR", &s.GasLimitEmaDenominator),
		fields.Uint64("GAS_LIMIT_ADJUSTMENT_FACTOR", &s.GasLimitAdjustmentFactor),
		fields.Uint64("GAS_LIMIT_MINIMUM", &s.GasLimitMinimum),
		fields.Uint64("GAS_LIMIT_MAXIMUM", &s.GasLimitMaximum),
		fields.Uint64("GAS_LIMIT_USAGE_ADJUSTMENT_NUMERATOR", &s.GasLimitUsageAdjustmentNumerator),
		fields.Uint64("GAS_LIMIT_USAGE_ADJUSTMENT_DENOMINATOR", &s.GasLimitUsageAdjustmentDenominator),
		fields.Uint64("DIFFICULTY_ADJUSTMENT_CUTOFF_TIME", &s.DifficultyAdjustmentCutoffTime),
		fields.Uint64("DIFFICULTY_ADJUSTMENT_FACTOR", &s.DifficultyAdjustmentFactor),
		fields.Uint64("EXTRA_SHARD_BLOCKS_IN_ROOT_BLOCK", &s.ExtraShardBlocksInRootBlock),
	}
}

// RootConfig returns the root config the shard is attached to.
func (s *ShardConfig) RootConfig() *RootConfig {
	return s.root
}

// SetRootConfig attaches the shard to the root config of its aggregate. The
// reference is not owned and never encoded.
func (s *ShardConfig) SetRootConfig(root *RootConfig) {
	s.root = root
}

func (s *ShardConfig) attachedRoot() *RootConfig {
	if s.root == nil {
		panic("qkc: shard config is not attached to a root config")
	}
	return s.root
}

// MaxBlocksPerShardInOneRootBlock bounds the number of blocks of this shard
// a single root block may confirm: the ratio of the target block times,
// truncated, plus ExtraShardBlocksInRootBlock.
//
// Both the shard and its root must have a consensus config.
func (s *ShardConfig) MaxBlocksPerShardInOneRootBlock() uint64 {
	root := s.attachedRoot()
	return root.ConsensusConfig.TargetBlockTime/s.ConsensusConfig.TargetBlockTime + s.ExtraShardBlocksInRootBlock
}

// MaxStaleMinorBlockHeightDiff is the root staleness window converted to
// shard heights.
func (s *ShardConfig) MaxStaleMinorBlockHeightDiff() uint64 {
	root := s.attachedRoot()
	return root.MaxStaleRootBlockHeightDiff * root.ConsensusConfig.TargetBlockTime / s.ConsensusConfig.TargetBlockTime
}

// MaxMinorBlocksInMemory is the number of shard blocks kept in memory.
func (s *ShardConfig) MaxMinorBlocksInMemory() uint64 {
	return s.MaxStaleMinorBlockHeightDiff() * 2
}

// ToMap encodes the shard config. The root reference is not part of it.
func (s *ShardConfig) ToMap() fields.Map {
	return fields.ToMap(s)
}

// Equal reports whether both configs declare the same values.
func (s *ShardConfig) Equal(other *ShardConfig) bool {
	return fields.Equal(s, other)
}

// ShardConfigFromMap decodes a shard config. The result is not attached to
// any root config.
func ShardConfigFromMap(m fields.Map) (*ShardConfig, error) {
	s := NewShardConfig()
	s.ConsensusConfig, s.Genesis = nil, nil
	if err := fields.Decode(s, m); err != nil {
		return nil, errors.Wrap(err, "shard config")
	}
	return s, nil
}
