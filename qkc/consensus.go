package qkc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConsensusType selects the consensus of a chain. ConsensusNone marks a chain
// without consensus, whose consensus and genesis sections are absent.
type ConsensusType uint8

const (
	ConsensusNone ConsensusType = iota
	ConsensusPowEthash
	ConsensusPowSha3Sha3
	ConsensusPowSimulate
	ConsensusPowQkchash
)

// ErrUnknownConsensusType is returned when decoding an unrecognized consensus name.
var ErrUnknownConsensusType = errors.New("unknown consensus type")

var consensusNames = [...]string{
	ConsensusNone:        "NONE",
	ConsensusPowEthash:   "POW_ETHASH",
	ConsensusPowSha3Sha3: "POW_SHA3SHA3",
	ConsensusPowSimulate: "POW_SIMULATE",
	ConsensusPowQkchash:  "POW_QKCHASH",
}

// PowTypes returns the proof-of-work consensus types.
func PowTypes() []ConsensusType {
	return []ConsensusType{ConsensusPowEthash, ConsensusPowSha3Sha3, ConsensusPowSimulate, ConsensusPowQkchash}
}

// IsPow reports whether t is a proof-of-work consensus.
func (t ConsensusType) IsPow() bool {
	for _, p := range PowTypes() {
		if t == p {
			return true
		}
	}
	return false
}

// String implements the stringer interface.
func (t ConsensusType) String() string {
	if int(t) < len(consensusNames) {
		return consensusNames[t]
	}
	return fmt.Sprintf("ConsensusType(%d)", uint8(t))
}

// ParseConsensusType resolves a consensus name.
func ParseConsensusType(name string) (ConsensusType, error) {
	for t, n := range consensusNames {
		if n == name {
			return ConsensusType(t), nil
		}
	}
	return ConsensusNone, errors.Wrapf(ErrUnknownConsensusType, "%q", name)
}

func (t ConsensusType) MarshalText() ([]byte, error) {
	if int(t) >= len(consensusNames) {
		return nil, errors.Wrapf(ErrUnknownConsensusType, "%d", uint8(t))
	}
	return []byte(consensusNames[t]), nil
}

func (t *ConsensusType) UnmarshalText(text []byte) error {
	parsed, err := ParseConsensusType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
