package fields

import (
	"encoding/json"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ErrType is returned when a decoded value cannot be stored in a declared field.
var ErrType = errors.New("unexpected value type")

// Uint64 declares an unsigned integer field.
func Uint64(name string, p *uint64) Field {
	return Var(name,
		func() interface{} { return *p },
		func(v interface{}) error {
			x, err := AsUint64(v)
			if err != nil {
				return err
			}
			*p = x
			return nil
		})
}

// Uint32 declares a 32-bit unsigned integer field.
func Uint32(name string, p *uint32) Field {
	return Var(name,
		func() interface{} { return *p },
		func(v interface{}) error {
			x, err := AsUint64(v)
			if err != nil {
				return err
			}
			if x > math.MaxUint32 {
				return errors.Wrapf(ErrType, "%d overflows uint32", x)
			}
			*p = uint32(x)
			return nil
		})
}

// Bool declares a boolean field.
func Bool(name string, p *bool) Field {
	return Var(name,
		func() interface{} { return *p },
		func(v interface{}) error {
			b, ok := v.(bool)
			if !ok {
				return errors.Wrapf(ErrType, "want bool, have %T", v)
			}
			*p = b
			return nil
		})
}

// Float64 declares a floating point field.
func Float64(name string, p *float64) Field {
	return Var(name,
		func() interface{} { return *p },
		func(v interface{}) error {
			x, err := AsFloat64(v)
			if err != nil {
				return err
			}
			*p = x
			return nil
		})
}

// String declares a string field. The empty string is encoded as null and
// null decodes to the empty string.
func String(name string, p *string) Field {
	return Var(name,
		func() interface{} {
			if *p == "" {
				return nil
			}
			return *p
		},
		func(v interface{}) error {
			s, err := AsString(v)
			if err != nil {
				return err
			}
			*p = s
			return nil
		})
}

// Big declares an arbitrary precision integer field.
func Big(name string, p **big.Int) Field {
	return Var(name,
		func() interface{} { return *p },
		func(v interface{}) error {
			x, err := AsBigInt(v)
			if err != nil {
				return err
			}
			*p = x
			return nil
		})
}

// Hash declares a 32-byte field encoded as lowercase hex.
func Hash(name string, p *common.Hash) Field {
	return Var(name,
		func() interface{} { return common.Bytes2Hex(p[:]) },
		func(v interface{}) error {
			b, err := AsBytes(v)
			if err != nil {
				return err
			}
			if len(b) != common.HashLength {
				return errors.Wrapf(ErrType, "want %d bytes, have %d", common.HashLength, len(b))
			}
			*p = common.BytesToHash(b)
			return nil
		})
}

// Bytes declares a byte sequence field encoded as lowercase hex.
func Bytes(name string, p *[]byte) Field {
	return Var(name,
		func() interface{} { return common.Bytes2Hex(*p) },
		func(v interface{}) error {
			b, err := AsBytes(v)
			if err != nil {
				return err
			}
			*p = b
			return nil
		})
}

// AsUint64 converts a decoded number to uint64. Floats are accepted only when
// they hold an exact non-negative integer.
func AsUint64(v interface{}) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case uint32:
		return uint64(x), nil
	case uint:
		return uint64(x), nil
	case int:
		if x >= 0 {
			return uint64(x), nil
		}
	case int64:
		if x >= 0 {
			return uint64(x), nil
		}
	case int32:
		if x >= 0 {
			return uint64(x), nil
		}
	case float64:
		if x >= 0 && x < math.MaxUint64 && x == math.Trunc(x) {
			return uint64(x), nil
		}
	case json.Number, *big.Int:
		b, err := AsBigInt(x)
		if err != nil {
			return 0, err
		}
		if b.Sign() >= 0 && b.IsUint64() {
			return b.Uint64(), nil
		}
	default:
		return 0, errors.Wrapf(ErrType, "want unsigned integer, have %T", v)
	}
	return 0, errors.Wrapf(ErrType, "%v is not an unsigned integer", v)
}

// AsBigInt converts a decoded number, or a decimal or 0x-prefixed string, to
// a big integer.
func AsBigInt(v interface{}) (*big.Int, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *big.Int:
		return new(big.Int).Set(x), nil
	case int:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case float64:
		return floatToInt(big.NewFloat(x))
	case json.Number:
		return parseBig(string(x))
	case string:
		return parseBig(x)
	}
	return nil, errors.Wrapf(ErrType, "want integer, have %T", v)
}

func parseBig(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if b, ok := new(big.Int).SetString(s, 0); ok {
		return b, nil
	}
	f, ok := new(big.Float).SetPrec(256).SetString(s)
	if !ok {
		return nil, errors.Wrapf(ErrType, "%q is not a number", s)
	}
	return floatToInt(f)
}

func floatToInt(f *big.Float) (*big.Int, error) {
	if f.IsInf() {
		return nil, errors.Wrap(ErrType, "infinite number")
	}
	b, acc := f.Int(nil)
	if acc != big.Exact {
		return nil, errors.Wrapf(ErrType, "%s is not an integer", f.Text('g', 20))
	}
	return b, nil
}

// AsFloat64 converts a decoded number to float64.
func AsFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, errors.Wrapf(ErrType, "%q is not a number", string(x))
		}
		return f, nil
	}
	return 0, errors.Wrapf(ErrType, "want number, have %T", v)
}

// AsString converts a decoded string. Null decodes to the empty string.
func AsString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	return "", errors.Wrapf(ErrType, "want string, have %T", v)
}

// AsBytes decodes a hex string, with or without 0x prefix.
func AsBytes(v interface{}) ([]byte, error) {
	s, err := AsString(v)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	if s == "0x" {
		return []byte{}, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrType, err.Error())
	}
	return b, nil
}

// AsMap converts a decoded nested mapping.
func AsMap(v interface{}) (Map, error) {
	switch x := v.(type) {
	case Map:
		return x, nil
	case map[interface{}]interface{}:
		return plainValue(x).(Map), nil
	}
	return nil, errors.Wrapf(ErrType, "want mapping, have %T", v)
}

// AsList converts a decoded sequence.
func AsList(v interface{}) ([]interface{}, error) {
	switch x := v.(type) {
	case []interface{}:
		return x, nil
	case []Map:
		out := make([]interface{}, len(x))
		for i := range x {
			out[i] = x[i]
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrType, "want sequence, have %T", v)
}

func sortedKeys(m Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
