package guardian

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	require := require.New(t)

	priv, err := crypto.GenerateKey()
	require.NoError(err)
	exp := FromECDSA(&priv.PublicKey)
	require.Len(exp.Raw, PubKeyLength)

	got, err := FromString(exp.String())
	require.NoError(err)
	require.True(exp.Equal(got))

	got, err = FromString("0x" + exp.String())
	require.NoError(err)
	require.True(exp.Equal(got))

	_, err = FromString("")
	require.True(errors.Is(err, ErrPubKeyLength))

	_, err = FromString("0x0102")
	require.True(errors.Is(err, ErrPubKeyLength))
}

func TestMarshalUnmarshal(t *testing.T) {
	require := require.New(t)

	priv, err := crypto.GenerateKey()
	require.NoError(err)
	original := FromECDSA(&priv.PublicKey)

	data, err := json.Marshal(&original)
	require.NoError(err)
	require.Equal(`"`+original.String()+`"`, string(data))

	var decoded PubKey
	require.NoError(json.Unmarshal(data, &decoded))
	require.True(original.Equal(decoded))
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	priv, err := crypto.GenerateKey()
	require.NoError(err)
	other, err := crypto.GenerateKey()
	require.NoError(err)

	parsed, err := ParsePrivateKey(common.Bytes2Hex(crypto.FromECDSA(priv)))
	require.NoError(err)
	require.NoError(Verify(parsed, FromECDSA(&priv.PublicKey)))
	require.True(errors.Is(Verify(parsed, FromECDSA(&other.PublicKey)), ErrKeyMismatch))

	_, err = ParsePrivateKey("0x00")
	require.Error(err)
}
