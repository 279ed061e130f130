package qkc

import (
	"github.com/rony4d/go-quarkchain-config/utils/fields"
)

// The consensus section of root and shard configs is discriminated by
// CONSENSUS_TYPE: CONSENSUS_CONFIG and GENESIS are encoded only while the type
// is proof-of-work, and decoded only when the already decoded type is.
// Decoding relies on CONSENSUS_TYPE being declared first.

func consensusTypeField(t *ConsensusType) fields.Field {
	return fields.Var("CONSENSUS_TYPE",
		func() interface{} { return t.String() },
		func(v interface{}) error {
			name, err := fields.AsString(v)
			if err != nil {
				return err
			}
			parsed, err := ParseConsensusType(name)
			if err != nil {
				return err
			}
			*t = parsed
			return nil
		})
}

func consensusConfigField(t *ConsensusType, cfg **POWConfig) fields.Field {
	return sectionField("CONSENSUS_CONFIG", t,
		func() interface{} {
			if *cfg == nil {
				return nil
			}
			return fields.ToMap(*cfg)
		},
		func(m fields.Map) error {
			if m == nil {
				*cfg = nil
				return nil
			}
			p, err := POWConfigFromMap(m)
			if err != nil {
				return err
			}
			*cfg = p
			return nil
		})
}

// sectionField declares a nested mapping that only exists while t is
// proof-of-work. A null value decodes to an unset section.
func sectionField(name string, t *ConsensusType, get func() interface{}, set func(m fields.Map) error) fields.Field {
	return fields.Var(name, get,
		func(v interface{}) error {
			if !t.IsPow() {
				return nil
			}
			if v == nil {
				return set(nil)
			}
			m, err := fields.AsMap(v)
			if err != nil {
				return err
			}
			return set(m)
		}).OmitWhen(func() bool { return !t.IsPow() })
}
