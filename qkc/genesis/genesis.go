// Package genesis defines the genesis parameters of the root chain and of
// each shard chain.
//
// Both types are plain field bags: every declared field has a default set by
// the constructor and is encoded under its upper-case name. The shard genesis
// also carries the root height at which the shard is created and its initial
// allocation, which is never written back out.
package genesis

import (
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/inter/account"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

const (
	// DefaultTimestamp is the genesis timestamp of both chains (2018-02-20 17:24:49 UTC).
	DefaultTimestamp uint64 = 1519147489

	// DefaultShardGasLimit leaves room for 400 cross-shard transactions.
	DefaultShardGasLimit uint64 = 30000 * 400
)

// DefaultShardExtraData is the extra data of every shard genesis block.
var DefaultShardExtraData = []byte("It was the best of times, it was the worst of times, ... - Charles Dickens")

// RootGenesis describes the first block of the root chain.
type RootGenesis struct {
	fields.Extras

	Version        uint32      // block header version
	Height         idx.Block   // height of the genesis block, normally 0
	ShardSize      uint32      // number of shards the root chain starts with
	HashPrevBlock  common.Hash // parent hash, zero for a genesis block
	HashMerkleRoot common.Hash // root of the confirmed shard headers
	Timestamp      uint64      // unix seconds
	Difficulty     uint64      // initial root mining difficulty
	Nonce          uint64
}

// NewRootGenesis returns the default root genesis.
func NewRootGenesis() *RootGenesis {
	return &RootGenesis{
		ShardSize:  32,
		Timestamp:  DefaultTimestamp,
		Difficulty: 1000000,
	}
}

// ConfigFields implements fields.Node.
func (g *RootGenesis) ConfigFields() []fields.Field {
	return []fields.Field{
		fields.Uint32("VERSION", &g.Version),
		fields.Uint64("HEIGHT", (*uint64)(&g.Height)),
		fields.Uint32("SHARD_SIZE", &g.ShardSize),
		fields.Hash("HASH_PREV_BLOCK", &g.HashPrevBlock),
		fields.Hash("HASH_MERKLE_ROOT", &g.HashMerkleRoot),
		fields.Uint64("TIMESTAMP", &g.Timestamp),
		fields.Uint64("DIFFICULTY", &g.Difficulty),
		fields.Uint64("NONCE", &g.Nonce),
	}
}

// RootGenesisFromMap decodes a root genesis on top of the defaults.
func RootGenesisFromMap(m fields.Map) (*RootGenesis, error) {
	g := NewRootGenesis()
	if err := fields.Decode(g, m); err != nil {
		return nil, errors.Wrap(err, "root genesis")
	}
	return g, nil
}

// Equal reports whether both geneses declare the same values.
func (g *RootGenesis) Equal(other *RootGenesis) bool {
	return fields.Equal(g, other)
}

// ShardGenesis describes the first block of a shard chain.
type ShardGenesis struct {
	fields.Extras

	// RootHeight is the height of the root block the shard genesis points to
	// as its previous root block.
	RootHeight         idx.Block
	Version            uint32      // block header version
	Height             idx.Block   // height of the genesis block, normally 0
	HashPrevMinorBlock common.Hash // parent hash, zero for a genesis block
	HashMerkleRoot     common.Hash // root of the genesis transactions
	ExtraData          []byte      // free-form header data, hex in documents
	Timestamp          uint64      // unix seconds
	Difficulty         uint64      // initial shard mining difficulty
	GasLimit           uint64      // gas limit of the genesis block
	Nonce              uint64

	// Alloc maps accounts to their initial balance. It is read from decoded
	// documents but always encoded as an empty mapping.
	Alloc map[account.Address]*big.Int
}

// NewShardGenesis returns the default shard genesis.
func NewShardGenesis() *ShardGenesis {
	return &ShardGenesis{
		ExtraData:  common.CopyBytes(DefaultShardExtraData),
		Timestamp:  DefaultTimestamp,
		Difficulty: 10000,
		GasLimit:   DefaultShardGasLimit,
		Alloc:      make(map[account.Address]*big.Int),
	}
}

// ConfigFields implements fields.Node.
func (g *ShardGenesis) ConfigFields() []fields.Field {
	return []fields.Field{
		fields.Uint64("ROOT_HEIGHT", (*uint64)(&g.RootHeight)),
		fields.Uint32("VERSION", &g.Version),
		fields.Uint64("HEIGHT", (*uint64)(&g.Height)),
		fields.Hash("HASH_PREV_MINOR_BLOCK", &g.HashPrevMinorBlock),
		fields.Hash("HASH_MERKLE_ROOT", &g.HashMerkleRoot),
		fields.Bytes("EXTRA_DATA", &g.ExtraData),
		fields.Uint64("TIMESTAMP", &g.Timestamp),
		fields.Uint64("DIFFICULTY", &g.Difficulty),
		fields.Uint64("GAS_LIMIT", &g.GasLimit),
		fields.Uint64("NONCE", &g.Nonce),
		fields.Var("ALLOC",
			func() interface{} { return fields.Map{} },
			g.setAlloc),
	}
}

func (g *ShardGenesis) setAlloc(v interface{}) error {
	alloc := make(map[account.Address]*big.Int)
	if v != nil {
		m, err := fields.AsMap(v)
		if err != nil {
			return err
		}
		for k, amount := range m {
			addr, err := account.FromHex(k)
			if err != nil {
				return err
			}
			balance, err := fields.AsBigInt(amount)
			if err != nil {
				return errors.Wrapf(err, "balance of %s", k)
			}
			alloc[addr] = balance
		}
	}
	g.Alloc = alloc
	return nil
}

// ShardGenesisFromMap decodes a shard genesis on top of the defaults.
func ShardGenesisFromMap(m fields.Map) (*ShardGenesis, error) {
	g := NewShardGenesis()
	if err := fields.Decode(g, m); err != nil {
		return nil, errors.Wrap(err, "shard genesis")
	}
	return g, nil
}

// Equal reports whether both geneses declare the same values. The allocation
// takes no part since it is never encoded.
func (g *ShardGenesis) Equal(other *ShardGenesis) bool {
	return fields.Equal(g, other)
}
