// Package account provides the QuarkChain account address: a 20-byte
// recipient followed by the 4-byte full shard id the account lives in.
package account

import (
	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// RecipientLength is the size of the recipient part of an address.
	RecipientLength = common.AddressLength
	// AddressLength is the size of a serialized address.
	AddressLength = RecipientLength + 4
)

// ErrAddressLength is returned when decoding an address of the wrong size.
var ErrAddressLength = errors.New("invalid address length")

// Address identifies an account on a given shard.
type Address struct {
	Recipient   common.Address
	FullShardID uint32
}

// CreateEmptyAccount returns the address with an all-zero recipient on the
// given shard.
func CreateEmptyAccount(fullShardID uint32) Address {
	return Address{FullShardID: fullShardID}
}

// Bytes serializes the address as recipient followed by the big-endian shard id.
func (a Address) Bytes() []byte {
	b := make([]byte, 0, AddressLength)
	b = append(b, a.Recipient.Bytes()...)
	return append(b, bigendian.Uint32ToBytes(a.FullShardID)...)
}

// Hex returns the lowercase hex form of the address without 0x prefix.
func (a Address) Hex() string {
	return common.Bytes2Hex(a.Bytes())
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

// FromBytes decodes a serialized address.
func FromBytes(b []byte) (Address, error) {
	if len(b) != AddressLength {
		return Address{}, errors.Wrapf(ErrAddressLength, "have %d bytes, want %d", len(b), AddressLength)
	}
	return Address{
		Recipient:   common.BytesToAddress(b[:RecipientLength]),
		FullShardID: bigendian.BytesToUint32(b[RecipientLength:]),
	}, nil
}

// FromHex decodes a hex address with or without 0x prefix.
func FromHex(s string) (Address, error) {
	if !isHex(s) {
		return Address{}, errors.Errorf("invalid hex address %q", s)
	}
	return FromBytes(common.FromHex(s))
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(input []byte) error {
	res, err := FromHex(string(input))
	if err != nil {
		return err
	}
	*a = res
	return nil
}

func isHex(s string) bool {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		return false
	}
	for _, c := range []byte(s) {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
