package launcher

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-quarkchain-config/integration"
	"github.com/rony4d/go-quarkchain-config/qkc"
)

// run executes the tool with args against a synthetic app and returns what it
// wrote.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp(&out)
	app.HideHelp = true
	app.HideVersion = true
	err := app.Run(append([]string{"qkcconfig"}, args...))
	return out.String(), err
}

func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := ioutil.TempDir("", "qkcconfig")
	require.NoError(t, err)
	return dir
}

func writeConfig(t *testing.T, dir, name string, cfg *qkc.QuarkChainConfig) string {
	t.Helper()

	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(name, ".json") {
		data, err = cfg.ToJSON()
	} else {
		data, err = cfg.ToYAML()
	}
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, data, 0o644))
	return path
}

func TestDump(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		decode func([]byte) (*qkc.QuarkChainConfig, error)
		want   func(t *testing.T, cfg *qkc.QuarkChainConfig)
	}{
		{
			name:   "default preset",
			args:   []string{"dump"},
			decode: qkc.FromJSON,
			want: func(t *testing.T, cfg *qkc.QuarkChainConfig) {
				exp, err := integration.DefaultPreset().Build()
				require.NoError(t, err)
				require.True(t, exp.Equal(cfg))
			},
		},
		{
			name:   "preset with overrides",
			args:   []string{"dump", "--preset", "devnet", "--minor.blocktime", "2"},
			decode: qkc.FromJSON,
			want: func(t *testing.T, cfg *qkc.QuarkChainConfig) {
				require.Len(t, cfg.ShardList, 4)
				require.Equal(t, uint64(2), cfg.ShardList[0].ConsensusConfig.TargetBlockTime)
				require.Equal(t, uint64(8), cfg.ShardList[0].MaxBlocksPerShardInOneRootBlock())
			},
		},
		{
			name:   "yaml",
			args:   []string{"dump", "--shards", "2", "--format", "yaml"},
			decode: qkc.FromYAML,
			want: func(t *testing.T, cfg *qkc.QuarkChainConfig) {
				require.Len(t, cfg.ShardList, 2)
				require.Equal(t, uint32(2), cfg.Root.Genesis.ShardSize)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)

			cfg, err := tt.decode([]byte(out))
			require.NoError(t, err, out)
			tt.want(t, cfg)
		})
	}
}

func TestDumpConfigFile(t *testing.T) {
	require := require.New(t)

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	exp := qkc.NewQuarkChainConfig()
	exp.Update(3, 20, 4)
	exp.NetworkID = qkc.MainnetNetworkID

	for _, name := range []string{"network.json", "network.yaml", "network.yml"} {
		path := writeConfig(t, dir, name, exp)

		out, err := run(t, "dump", "--config", path)
		require.NoError(err)
		got, err := qkc.FromJSON([]byte(out))
		require.NoError(err)
		require.True(exp.Equal(got), name)
	}
}

func TestDumpErrors(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)
	path := writeConfig(t, dir, "network.json", qkc.NewQuarkChainConfig())

	tests := []struct {
		name string
		args []string
	}{
		{"config with topology", []string{"dump", "--config", path, "--shards", "2"}},
		{"missing file", []string{"dump", "--config", filepath.Join(dir, "missing.json")}},
		{"unknown preset", []string{"dump", "--preset", "archive"}},
		{"zero shards", []string{"dump", "--shards", "0"}},
		{"unknown format", []string{"dump", "--format", "toml"}},
		{"bad log format", []string{"--log.format", "xml", "dump"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestCompare(t *testing.T) {
	require := require.New(t)

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	a := qkc.NewQuarkChainConfig()
	pathA := writeConfig(t, dir, "a.json", a)
	pathB := writeConfig(t, dir, "b.yaml", a)

	out, err := run(t, "compare", pathA, pathB)
	require.NoError(err)
	require.Contains(out, "configurations are equal")

	c := qkc.NewQuarkChainConfig()
	c.NetworkID = qkc.MainnetNetworkID
	c.ShardList[0].GasLimitMinimum = 1
	pathC := writeConfig(t, dir, "c.json", c)

	out, err = run(t, "compare", pathA, pathC)
	require.True(errors.Is(err, errConfigDrift))
	require.Equal("NETWORK_ID\nSHARD_LIST\n", out)

	_, err = run(t, "compare", pathA)
	require.Error(err)
}

func TestInspect(t *testing.T) {
	require := require.New(t)

	out, err := run(t, "inspect", "--preset", "devnet")
	require.NoError(err)
	require.Contains(out, "1/2")
	require.Contains(out, "public key only")
	require.Contains(out, "[0 1 2 3]")
	require.Contains(out, "BLOCKS PER ROOT BLOCK")

	dir := tempDir(t)
	defer os.RemoveAll(dir)

	cfg := qkc.NewQuarkChainConfig()
	cfg.ShardList[1].ConsensusType = qkc.ConsensusNone
	path := writeConfig(t, dir, "inactive.json", cfg)
	out, err = run(t, "inspect", "--config", path)
	require.NoError(err)
	require.Contains(out, "NONE")

	cfg = qkc.NewQuarkChainConfig()
	cfg.RewardTaxRate = 0.123456
	path = writeConfig(t, dir, "tax.json", cfg)
	_, err = run(t, "inspect", "--config", path)
	require.True(errors.Is(err, qkc.ErrTaxRateDenominator))
}

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggingDefaults
		ok   bool
	}{
		{"defaults", DefaultConfig().Logging, true},
		{"json trace", LoggingDefaults{Format: "json", Verbosity: 5}, true},
		{"unknown format", LoggingDefaults{Format: "xml", Verbosity: 3}, false},
		{"verbosity too high", LoggingDefaults{Format: "text", Verbosity: 6}, false},
		{"negative verbosity", LoggingDefaults{Format: "text", Verbosity: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := logrus.New()
			err := configureLogger(logger, tt.cfg, "")
			if !tt.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, logrus.Level(tt.cfg.Verbosity+1), logger.GetLevel())
		})
	}
}

func TestLogrusHandler(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)

	l := log.New()
	l.SetHandler(logrusHandler(logger))
	l.Info("Rebuilt shard topology", "shards", 4)
	l.Trace("dropped")

	out := buf.String()
	require.Contains(out, `"msg":"Rebuilt shard topology"`)
	require.Contains(out, `"shards":4`)
	require.Contains(out, `"level":"info"`)
	require.NotContains(out, "dropped")

	require.Equal(logrus.ErrorLevel, logrusLevel(log.LvlCrit))
	require.Equal(logrus.TraceLevel, logrusLevel(log.LvlTrace))
}
