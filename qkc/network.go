// Package qkc defines the configuration tree of a QuarkChain network: the
// aggregate QuarkChainConfig, the root chain and shard chain configs it owns,
// and the proof-of-work parameters shared by both chains.
//
// Every config type is a fields.Node. Its declared fields carry the defaults
// set by its constructor and are encoded under their upper-case names; see
// package fields for the generic encode, decode and equality rules.
//
// A ShardConfig keeps a non-owning reference to the RootConfig of its
// aggregate. The reference is never encoded: QuarkChainConfig re-attaches
// every shard to its root after construction, Update and decoding, and the
// derived shard values read it.
package qkc

import "math/big"

// NetworkID identifies a QuarkChain network.
type NetworkID uint32

const (
	// MainnetNetworkID is the id of the main network.
	MainnetNetworkID NetworkID = 1
	// TestnetPorscheNetworkID is the id of the Porsche test network.
	TestnetPorscheNetworkID NetworkID = 3
)

// QuarkshToJiaozi is the number of jiaozi, the smallest unit, in one QKC.
var QuarkshToJiaozi = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// qkc returns n QKC in jiaozi.
func qkc(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), QuarkshToJiaozi)
}
