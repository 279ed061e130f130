package fields

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ToYAML encodes n as YAML. Integers that do not fit int64 are written as
// decimal strings, which the integer codecs accept back.
func ToYAML(n Node) ([]byte, error) {
	return yaml.Marshal(yamlValue(ToMap(n)))
}

// ParseYAML decodes a YAML mapping into a Map with string keys throughout.
func ParseYAML(data []byte) (Map, error) {
	var raw map[interface{}]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	if raw == nil {
		return nil, errors.New("parse yaml: not a mapping")
	}
	return plainValue(raw).(Map), nil
}

func yamlValue(v interface{}) interface{} {
	switch v := v.(type) {
	case Map:
		out := make(yaml.MapSlice, 0, len(v))
		for _, k := range sortedKeys(v) {
			out = append(out, yaml.MapItem{Key: k, Value: yamlValue(v[k])})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = yamlValue(v[i])
		}
		return out
	case *big.Int:
		if v == nil {
			return nil
		}
		if v.IsInt64() {
			return v.Int64()
		}
		return v.String()
	default:
		return v
	}
}

// plainValue turns the map[interface{}]interface{} nodes produced by yaml.v2
// into Maps.
func plainValue(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		out := make(Map, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			out[key] = plainValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = plainValue(v[i])
		}
		return out
	default:
		return v
	}
}
