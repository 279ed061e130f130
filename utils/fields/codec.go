package fields

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

// ToMap encodes the declared fields of n. Omitted fields are left out.
func ToMap(n Node) Map {
	m := make(Map)
	for _, f := range n.ConfigFields() {
		if f.Omitted() {
			continue
		}
		m[f.Name] = f.Value()
	}
	return m
}

// Decode assigns every entry of m onto n by name. Declared fields are set in
// declaration order, so a field may depend on one declared before it. Keys n
// does not declare are handed to SetExtra.
func Decode(n Node, m Map) error {
	declared := make(map[string]struct{})
	for _, f := range n.ConfigFields() {
		declared[f.Name] = struct{}{}
		v, ok := m[f.Name]
		if !ok {
			continue
		}
		if err := f.set(v); err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
	}
	for k, v := range m {
		if _, ok := declared[k]; ok {
			continue
		}
		log.Debug("Keeping undeclared config field", "name", k)
		n.SetExtra(k, v)
	}
	return nil
}

// Equal reports whether a and b carry the same declared field values.
// Undeclared keys and non-field state are ignored.
func Equal(a, b Node) bool {
	ea, err := json.Marshal(ToMap(a))
	if err != nil {
		return false
	}
	eb, err := json.Marshal(ToMap(b))
	if err != nil {
		return false
	}
	return bytes.Equal(ea, eb)
}

// ToJSON encodes n as indented JSON.
func ToJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(ToMap(n), "", "    ")
}

// ParseJSON decodes a JSON object into a Map. Numbers are kept as json.Number
// so that amounts beyond 2^53 survive.
func ParseJSON(data []byte) (Map, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m Map
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "parse json")
	}
	if m == nil {
		return nil, errors.New("parse json: not an object")
	}
	return m, nil
}

// Diff returns, sorted, the declared names whose encoded values differ
// between a and b, including names encoded on one side only.
func Diff(a, b Node) []string {
	ma, mb := ToMap(a), ToMap(b)
	union := make(Map, len(ma))
	for k := range ma {
		union[k] = nil
	}
	for k := range mb {
		union[k] = nil
	}
	var names []string
	for _, k := range sortedKeys(union) {
		va, inA := ma[k]
		vb, inB := mb[k]
		if inA != inB {
			names = append(names, k)
			continue
		}
		ea, errA := json.Marshal(va)
		eb, errB := json.Marshal(vb)
		if errA != nil || errB != nil || !bytes.Equal(ea, eb) {
			names = append(names, k)
		}
	}
	return names
}
