package qkc

import (
	"github.com/pkg/errors"

	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

// POWConfig holds the proof-of-work parameters of a chain.
type POWConfig struct {
	fields.Extras

	// TargetBlockTime is the target interval between blocks, in seconds.
	TargetBlockTime uint64
	RemoteMine      bool
}

// NewPOWConfig returns the default proof-of-work parameters.
func NewPOWConfig() *POWConfig {
	return &POWConfig{TargetBlockTime: 10}
}

// ConfigFields implements fields.Node.
func (p *POWConfig) ConfigFields() []fields.Field {
	return []fields.Field{
		fields.Uint64("TARGET_BLOCK_TIME", &p.TargetBlockTime),
		fields.Bool("REMOTE_MINE", &p.RemoteMine),
	}
}

// POWConfigFromMap decodes proof-of-work parameters on top of the defaults.
func POWConfigFromMap(m fields.Map) (*POWConfig, error) {
	p := NewPOWConfig()
	if err := fields.Decode(p, m); err != nil {
		return nil, errors.Wrap(err, "pow config")
	}
	return p, nil
}
