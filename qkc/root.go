package qkc

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/inter/account"
	"github.com/rony4d/go-quarkchain-config/qkc/genesis"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

// RootConfig holds the parameters of the root chain.
type RootConfig struct {
	fields.Extras

	// MaxStaleRootBlockHeightDiff bounds how far behind the tip a root block
	// from a peer may be before it is ignored. A partition longer than this
	// forks the network permanently.
	MaxStaleRootBlockHeightDiff uint64

	ConsensusType ConsensusType
	// Only set when ConsensusType is proof-of-work.
	ConsensusConfig *POWConfig
	Genesis         *genesis.RootGenesis

	CoinbaseAddress account.Address // receives the root block rewards
	CoinbaseAmount  *big.Int        // root block reward in jiaozi

	DifficultyAdjustmentCutoffTime uint64 // seconds, block times above it lower the difficulty
	DifficultyAdjustmentFactor     uint64 // max change per block is difficulty / factor
}

// NewRootConfig returns a root config without consensus.
func NewRootConfig() *RootConfig {
	return &RootConfig{
		MaxStaleRootBlockHeightDiff:    60,
		ConsensusType:                  ConsensusNone,
		Genesis:                        genesis.NewRootGenesis(),
		CoinbaseAmount:                 qkc(120),
		DifficultyAdjustmentCutoffTime: 40,
		DifficultyAdjustmentFactor:     1024,
	}
}

// ConfigFields implements fields.Node.
func (r *RootConfig) ConfigFields() []fields.Field {
	return []fields.Field{
		fields.Uint64("MAX_STALE_ROOT_BLOCK_HEIGHT_DIFF", &r.MaxStaleRootBlockHeightDiff),
		consensusTypeField(&r.ConsensusType),
		consensusConfigField(&r.ConsensusType, &r.ConsensusConfig),
		sectionField("GENESIS", &r.ConsensusType,
			func() interface{} {
				if r.Genesis == nil {
					return nil
				}
				return fields.ToMap(r.Genesis)
			},
			func(m fields.Map) error {
				if m == nil {
					r.Genesis = nil
					return nil
				}
				g, err := genesis.RootGenesisFromMap(m)
				if err != nil {
					return err
				}
				r.Genesis = g
				return nil
			}),
		coinbaseAddressField(&r.CoinbaseAddress),
		fields.Big("COINBASE_AMOUNT", &r.CoinbaseAmount),
		fields.Uint64("DIFFICULTY_ADJUSTMENT_CUTOFF_TIME", &r.DifficultyAdjustmentCutoffTime),
		fields.Uint64("DIFFICULTY_ADJUSTMENT_FACTOR", &r.DifficultyAdjustmentFactor),
	}
}

// MaxRootBlocksInMemory is the number of root blocks kept in memory.
func (r *RootConfig) MaxRootBlocksInMemory() uint64 {
	return r.MaxStaleRootBlockHeightDiff * 2
}

// ToMap encodes the root config.
func (r *RootConfig) ToMap() fields.Map {
	return fields.ToMap(r)
}

// Equal reports whether both configs declare the same values.
func (r *RootConfig) Equal(other *RootConfig) bool {
	return fields.Equal(r, other)
}

// RootConfigFromMap decodes a root config. The consensus sections are set
// only if the mapping carries them under a proof-of-work consensus type.
func RootConfigFromMap(m fields.Map) (*RootConfig, error) {
	r := NewRootConfig()
	r.ConsensusConfig, r.Genesis = nil, nil
	if err := fields.Decode(r, m); err != nil {
		return nil, errors.Wrap(err, "root config")
	}
	return r, nil
}

func coinbaseAddressField(a *account.Address) fields.Field {
	return fields.Var("COINBASE_ADDRESS",
		func() interface{} { return a.Hex() },
		func(v interface{}) error {
			s, err := fields.AsString(v)
			if err != nil {
				return err
			}
			parsed, err := account.FromHex(s)
			if err != nil {
				return err
			}
			*a = parsed
			return nil
		})
}
