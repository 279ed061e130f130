// Package guardian handles the guardian key material of a QuarkChain network.
// The guardian public key is carried as the 64-byte uncompressed secp256k1
// point without the 0x04 prefix; the private key is a 32-byte scalar. Both are
// written as hex in configuration documents.
package guardian

import (
	"bytes"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// PubKeyLength is the size of a raw guardian public key.
const PubKeyLength = 64

var (
	// ErrPubKeyLength is returned when a public key is not 64 bytes long.
	ErrPubKeyLength = errors.New("invalid guardian public key length")
	// ErrKeyMismatch is returned when a private key does not derive the
	// configured guardian public key.
	ErrKeyMismatch = errors.New("guardian private key does not match public key")
)

// PubKey is a raw secp256k1 public key.
type PubKey struct {
	Raw []byte
}

// String returns the lowercase hex form without 0x prefix, the form used in
// configuration documents.
func (pk PubKey) String() string {
	return common.Bytes2Hex(pk.Raw)
}

// Equal reports whether both keys hold the same point.
func (pk PubKey) Equal(other PubKey) bool {
	return bytes.Equal(pk.Raw, other.Raw)
}

// FromBytes wraps a raw 64-byte public key.
func FromBytes(b []byte) (PubKey, error) {
	if len(b) != PubKeyLength {
		return PubKey{}, errors.Wrapf(ErrPubKeyLength, "have %d bytes", len(b))
	}
	return PubKey{Raw: common.CopyBytes(b)}, nil
}

// FromString parses a hex public key with or without 0x prefix.
func FromString(str string) (PubKey, error) {
	return FromBytes(common.FromHex(str))
}

// FromECDSA returns the raw form of an ecdsa public key.
func FromECDSA(pub *ecdsa.PublicKey) PubKey {
	return PubKey{Raw: crypto.FromECDSAPub(pub)[1:]}
}

// MarshalText implements encoding.TextMarshaler.
func (pk *PubKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (pk *PubKey) UnmarshalText(input []byte) error {
	res, err := FromString(string(input))
	if err != nil {
		return err
	}
	*pk = res
	return nil
}

// ParsePrivateKey validates a hex private key, with or without 0x prefix.
func ParsePrivateKey(str string) (*ecdsa.PrivateKey, error) {
	priv, err := crypto.ToECDSA(common.FromHex(str))
	if err != nil {
		return nil, errors.Wrap(err, "invalid guardian private key")
	}
	return priv, nil
}

// Verify checks that priv derives pub.
func Verify(priv *ecdsa.PrivateKey, pub PubKey) error {
	if !FromECDSA(&priv.PublicKey).Equal(pub) {
		return ErrKeyMismatch
	}
	return nil
}
