package genesis

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-quarkchain-config/inter/account"
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

func TestRootGenesisDefaults(t *testing.T) {
	require := require.New(t)

	m := fields.ToMap(NewRootGenesis())
	require.Equal(uint32(32), m["SHARD_SIZE"])
	require.Equal(DefaultTimestamp, m["TIMESTAMP"])
	require.Equal(uint64(1000000), m["DIFFICULTY"])
	require.Equal(strings.Repeat("00", 32), m["HASH_PREV_BLOCK"])
	require.Len(m, 8)
}

func TestShardGenesisDefaults(t *testing.T) {
	require := require.New(t)

	m := fields.ToMap(NewShardGenesis())
	require.Equal(uint64(12000000), m["GAS_LIMIT"])
	require.Equal(uint64(10000), m["DIFFICULTY"])
	require.Equal(uint64(0), m["ROOT_HEIGHT"])
	require.True(strings.HasPrefix(m["EXTRA_DATA"].(string), "497420776173"))
	require.Equal(fields.Map{}, m["ALLOC"])
	require.Equal([]string{
		"ROOT_HEIGHT", "VERSION", "HEIGHT", "HASH_PREV_MINOR_BLOCK", "HASH_MERKLE_ROOT",
		"EXTRA_DATA", "TIMESTAMP", "DIFFICULTY", "GAS_LIMIT", "NONCE", "ALLOC",
	}, fields.Names(NewShardGenesis()))
}

func TestShardGenesisAllocNeverEncoded(t *testing.T) {
	require := require.New(t)

	addr := account.CreateEmptyAccount(5)
	doc := []byte(`{"ROOT_HEIGHT": 4, "ALLOC": {"` + addr.Hex() + `": 1000000000000000000000000}}`)
	m, err := fields.ParseJSON(doc)
	require.NoError(err)

	g, err := ShardGenesisFromMap(m)
	require.NoError(err)
	require.Equal(uint64(4), uint64(g.RootHeight))
	require.Len(g.Alloc, 1)
	want, _ := new(big.Int).SetString("1000000000000000000000000", 10)
	require.Equal(0, want.Cmp(g.Alloc[addr]))

	out, err := fields.ToJSON(g)
	require.NoError(err)
	var back map[string]json.RawMessage
	require.NoError(json.Unmarshal(out, &back))
	require.JSONEq(`{}`, string(back["ALLOC"]))

	// the allocation takes no part in equality
	plain := NewShardGenesis()
	plain.RootHeight = 4
	require.True(g.Equal(plain))
}

func TestShardGenesisRejectsBadAlloc(t *testing.T) {
	_, err := ShardGenesisFromMap(fields.Map{"ALLOC": fields.Map{"not-an-address": 1}})
	require.Error(t, err)

	g, err := ShardGenesisFromMap(fields.Map{"ALLOC": nil})
	require.NoError(t, err)
	require.Empty(t, g.Alloc)
}

func TestGenesisRoundTrip(t *testing.T) {
	require := require.New(t)

	root := NewRootGenesis()
	root.Height = 10
	root.Nonce = 3
	decodedRoot, err := RootGenesisFromMap(fields.ToMap(root))
	require.NoError(err)
	require.True(root.Equal(decodedRoot))

	shard := NewShardGenesis()
	shard.RootHeight = 2
	shard.ExtraData = []byte{0xde, 0xad}
	decodedShard, err := ShardGenesisFromMap(fields.ToMap(shard))
	require.NoError(err)
	require.True(shard.Equal(decodedShard))
	require.Equal([]byte{0xde, 0xad}, decodedShard.ExtraData)

	decodedShard.Difficulty++
	require.False(shard.Equal(decodedShard))
}
