package qkc

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/inter/account"
	"github.com/rony4d/go-quarkchain-config/inter/guardian"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

const (
	// DefaultShardSize is the number of shards of a default config.
	DefaultShardSize uint32 = 8
	// DefaultRootBlockTime is the root target block time of a default config, in seconds.
	DefaultRootBlockTime uint64 = 10
	// DefaultMinorBlockTime is the shard target block time of a default config, in seconds.
	DefaultMinorBlockTime uint64 = 3

	// DefaultGuardianPublicKey is the guardian public key of the public networks.
	DefaultGuardianPublicKey = "ab856abd0983a82972021e454fcf66ed5940ed595b0898bcd75cbe2d0a51a00f5358b566df22395a2a8bf6c022c1d51a2c3defe654e91a8d244947783029694d"
)

var (
	// ErrShardNotFound is returned for a shard id outside the shard list.
	ErrShardNotFound = errors.New("shard not found")
	// ErrNoGenesis is returned for a shard without genesis.
	ErrNoGenesis = errors.New("shard has no genesis")
)

// QuarkChainConfig is the configuration of a whole QuarkChain network. It
// owns the root config and the shard list, and keeps every shard attached to
// the root.
//
// A config is meant to be loaded once and then only read. It performs no
// locking: to change a config that is being read concurrently, build a new
// one and swap the reference.
type QuarkChainConfig struct {
	fields.Extras

	// ShardSize is the number of shards. It matches len(ShardList) and the
	// shard count of the root genesis.
	ShardSize uint32

	MaxNeighbors uint32 // peer cap of the p2p layer

	NetworkID                         NetworkID
	TransactionQueueSizeLimitPerShard uint64 // pending transactions kept per shard
	BlockExtraDataSizeLimit           uint64 // bytes

	// ProofOfProgressBlocks is the number of blocks a shard must have
	// produced before a root block may confirm it.
	ProofOfProgressBlocks uint64
	// GuardianPublicKeyHex is the 64-byte guardian key, hex without 0x.
	GuardianPublicKeyHex string
	// GuardianPrivateKeyHex is only configured on certified nodes.
	GuardianPrivateKeyHex string

	P2PProtocolVersion  uint32
	P2PCommandSizeLimit uint64 // max size of a p2p message, bytes

	// Testing switches.
	SkipRootDifficultyCheck  bool
	SkipMinorDifficultyCheck bool

	Root      *RootConfig
	ShardList []*ShardConfig

	// RewardTaxRate is the share of mining rewards that goes to root block mining.
	RewardTaxRate float64

	// LoadtestAccounts are the accounts used by transaction generators. They
	// are not part of the configuration document.
	LoadtestAccounts []account.Address

	guardianKey *ecdsa.PrivateKey
}

// NewQuarkChainConfig returns the default configuration: DefaultShardSize
// shards and a root chain, all on simulated proof-of-work.
func NewQuarkChainConfig() *QuarkChainConfig {
	c := &QuarkChainConfig{
		ShardSize:                         DefaultShardSize,
		MaxNeighbors:                      32,
		NetworkID:                         TestnetPorscheNetworkID,
		TransactionQueueSizeLimitPerShard: 10000,
		BlockExtraDataSizeLimit:           1024,
		ProofOfProgressBlocks:             1,
		GuardianPublicKeyHex:              DefaultGuardianPublicKey,
		P2PProtocolVersion:                0,
		P2PCommandSizeLimit:               1<<32 - 1,
		RewardTaxRate:                     0.5,
	}
	c.buildTopology(DefaultRootBlockTime, DefaultMinorBlockTime, false)
	return c
}

// ConfigFields implements fields.Node.
func (c *QuarkChainConfig) ConfigFields() []fields.Field {
	return []fields.Field{
		fields.Uint32("SHARD_SIZE", &c.ShardSize),
		fields.Uint32("MAX_NEIGHBORS", &c.MaxNeighbors),
		fields.Uint32("NETWORK_ID", (*uint32)(&c.NetworkID)),
		fields.Uint64("TRANSACTION_QUEUE_SIZE_LIMIT_PER_SHARD", &c.TransactionQueueSizeLimitPerShard),
		fields.Uint64("BLOCK_EXTRA_DATA_SIZE_LIMIT", &c.BlockExtraDataSizeLimit),
		fields.Uint64("PROOF_OF_PROGRESS_BLOCKS", &c.ProofOfProgressBlocks),
		fields.String("GUARDIAN_PUBLIC_KEY", &c.GuardianPublicKeyHex),
		fields.String("GUARDIAN_PRIVATE_KEY", &c.GuardianPrivateKeyHex),
		fields.Uint32("P2P_PROTOCOL_VERSION", &c.P2PProtocolVersion),
		fields.Uint64("P2P_COMMAND_SIZE_LIMIT", &c.P2PCommandSizeLimit),
		fields.Bool("SKIP_ROOT_DIFFICULTY_CHECK", &c.SkipRootDifficultyCheck),
		fields.Bool("SKIP_MINOR_DIFFICULTY_CHECK", &c.SkipMinorDifficultyCheck),
		fields.Var("ROOT", c.encodeRoot, c.decodeRoot),
		fields.Var("SHARD_LIST", c.encodeShards, c.decodeShards),
		fields.Float64("REWARD_TAX_RATE", &c.RewardTaxRate),
	}
}

func (c *QuarkChainConfig) encodeRoot() interface{} {
	if c.Root == nil {
		return nil
	}
	return c.Root.ToMap()
}

func (c *QuarkChainConfig) decodeRoot(v interface{}) error {
	m, err := fields.AsMap(v)
	if err != nil {
		return err
	}
	root, err := RootConfigFromMap(m)
	if err != nil {
		return err
	}
	c.Root = root
	return nil
}

func (c *QuarkChainConfig) encodeShards() interface{} {
	list := make([]interface{}, len(c.ShardList))
	for i, s := range c.ShardList {
		list[i] = s.ToMap()
	}
	return list
}

func (c *QuarkChainConfig) decodeShards(v interface{}) error {
	list, err := fields.AsList(v)
	if err != nil {
		return err
	}
	shards := make([]*ShardConfig, len(list))
	for i, item := range list {
		m, err := fields.AsMap(item)
		if err != nil {
			return errors.Wrapf(err, "shard %d", i)
		}
		if shards[i], err = ShardConfigFromMap(m); err != nil {
			return errors.Wrapf(err, "shard %d", i)
		}
	}
	c.ShardList = shards
	return nil
}

// buildTopology replaces the root and the shard list with ShardSize shards on
// simulated proof-of-work, attached to the new root.
func (c *QuarkChainConfig) buildTopology(rootBlockTime, minorBlockTime uint64, assignCoinbase bool) {
	root := NewRootConfig()
	root.ConsensusType = ConsensusPowSimulate
	root.ConsensusConfig = NewPOWConfig()
	root.ConsensusConfig.TargetBlockTime = rootBlockTime
	root.Genesis.ShardSize = c.ShardSize
	c.Root = root

	c.ShardList = make([]*ShardConfig, 0, c.ShardSize)
	for i := uint32(0); i < c.ShardSize; i++ {
		s := NewShardConfig()
		s.SetRootConfig(root)
		s.ConsensusType = ConsensusPowSimulate
		s.ConsensusConfig = NewPOWConfig()
		s.ConsensusConfig.TargetBlockTime = minorBlockTime
		if assignCoinbase {
			s.CoinbaseAddress = account.CreateEmptyAccount(i)
		}
		c.ShardList = append(c.ShardList, s)
	}
}

// Update discards the root and the shard list and rebuilds them for
// shardSize shards with the given target block times. Every shard gets the
// empty account of its index as coinbase.
func (c *QuarkChainConfig) Update(shardSize uint32, rootBlockTime, minorBlockTime uint64) {
	c.ShardSize = shardSize
	c.buildTopology(rootBlockTime, minorBlockTime, true)
	log.Info("Rebuilt shard topology", "shards", shardSize, "root_block_time", rootBlockTime, "minor_block_time", minorBlockTime)
}

// attachShards points every shard at the current root.
func (c *QuarkChainConfig) attachShards() {
	for _, s := range c.ShardList {
		s.SetRootConfig(c.Root)
	}
}

// GenesisRootHeight returns the root height at which the shard is created.
func (c *QuarkChainConfig) GenesisRootHeight(shardID uint32) (idx.Block, error) {
	if int(shardID) >= len(c.ShardList) {
		return 0, errors.Wrapf(ErrShardNotFound, "shard %d of %d", shardID, len(c.ShardList))
	}
	g := c.ShardList[shardID].Genesis
	if g == nil {
		return 0, errors.Wrapf(ErrNoGenesis, "shard %d", shardID)
	}
	return g.RootHeight, nil
}

// GenesisShardIDs returns the ids of the shards that have a genesis.
func (c *QuarkChainConfig) GenesisShardIDs() []uint32 {
	ids := []uint32{}
	for i, s := range c.ShardList {
		if s.Genesis != nil {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}

// InitializedShardIDsBeforeRootHeight returns the ids of the shards whose
// genesis root height is below rootHeight.
func (c *QuarkChainConfig) InitializedShardIDsBeforeRootHeight(rootHeight idx.Block) []uint32 {
	ids := []uint32{}
	for i, s := range c.ShardList {
		if s.Genesis != nil && s.Genesis.RootHeight < rootHeight {
			ids = append(ids, uint32(i))
		}
	}
	return ids
}

// GuardianPublicKey parses the configured guardian public key.
func (c *QuarkChainConfig) GuardianPublicKey() (guardian.PubKey, error) {
	return guardian.FromString(c.GuardianPublicKeyHex)
}

// GuardianPrivateKey returns the configured guardian private key, or nil if
// none is configured. The key must derive the guardian public key. Once
// validated it is cached for the life of the config.
func (c *QuarkChainConfig) GuardianPrivateKey() (*ecdsa.PrivateKey, error) {
	if c.guardianKey != nil {
		return c.guardianKey, nil
	}
	if c.GuardianPrivateKeyHex == "" {
		return nil, nil
	}
	priv, err := guardian.ParsePrivateKey(c.GuardianPrivateKeyHex)
	if err != nil {
		return nil, err
	}
	pub, err := c.GuardianPublicKey()
	if err != nil {
		return nil, errors.Wrap(err, "guardian public key")
	}
	if err := guardian.Verify(priv, pub); err != nil {
		return nil, err
	}
	c.guardianKey = priv
	return priv, nil
}

// ToMap encodes the config, nesting the root under ROOT and the shards under
// SHARD_LIST.
func (c *QuarkChainConfig) ToMap() fields.Map {
	return fields.ToMap(c)
}

// ToJSON encodes the config as indented JSON.
func (c *QuarkChainConfig) ToJSON() ([]byte, error) {
	return fields.ToJSON(c)
}

// ToYAML encodes the config as YAML.
func (c *QuarkChainConfig) ToYAML() ([]byte, error) {
	return fields.ToYAML(c)
}

// Equal reports whether both configs declare the same values, recursively.
func (c *QuarkChainConfig) Equal(other *QuarkChainConfig) bool {
	return fields.Equal(c, other)
}

// String implements fmt.Stringer.
func (c *QuarkChainConfig) String() string {
	return fmt.Sprintf("QuarkChainConfig{network: %d, shards: %d}", c.NetworkID, len(c.ShardList))
}

// FromMap decodes a config on top of the defaults and attaches every decoded
// shard to the decoded root.
func FromMap(m fields.Map) (*QuarkChainConfig, error) {
	c := NewQuarkChainConfig()
	if err := fields.Decode(c, m); err != nil {
		return nil, err
	}
	c.attachShards()
	return c, nil
}

// FromJSON decodes a JSON config document.
func FromJSON(data []byte) (*QuarkChainConfig, error) {
	m, err := fields.ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

// FromYAML decodes a YAML config document.
func FromYAML(data []byte) (*QuarkChainConfig, error) {
	m, err := fields.ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}
