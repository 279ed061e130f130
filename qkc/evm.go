package qkc

import (
	"math/big"

	ethparams "github.com/ethereum/go-ethereum/params"
)

// EvmChainConfig returns the EVM rules shard chains execute with: every fork
// up to and including Byzantium (metropolis) from genesis, nothing later,
// signed under the network id as chain id.
func (c *QuarkChainConfig) EvmChainConfig() *ethparams.ChainConfig {
	cfg := *ethparams.AllEthashProtocolChanges

	cfg.ChainID = new(big.Int).SetUint64(uint64(c.NetworkID))

	cfg.ConstantinopleBlock = nil
	cfg.PetersburgBlock = nil
	cfg.IstanbulBlock = nil
	cfg.MuirGlacierBlock = nil
	cfg.BerlinBlock = nil
	cfg.LondonBlock = nil

	return &cfg
}
