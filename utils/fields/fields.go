// Package fields implements the declared-field registry every configuration
// node is built on.
//
// A node lists its declared fields explicitly through ConfigFields: each Field
// binds an upper-case name to a member of the node, together with the codec
// used to move that member in and out of the plain key-value form (Map).
// On top of that registry the package provides the generic node operations:
//   - ToMap / Decode: encode to and decode from a Map
//   - ToJSON / ParseJSON and ToYAML / ParseYAML: text wrappers around Map
//   - Equal: equality over declared fields only
//
// Nesting is not handled here. A composite node declares its nested sections as
// Var fields whose getters and setters call ToMap / Decode on the child.
package fields

import (
	"fmt"
	"strings"
	"unicode"
)

// Map is the plain key-value form of a configuration node.
type Map = map[string]interface{}

// Node is a configuration object with an explicit list of declared fields.
//
// Embedding Extras provides SetExtra.
type Node interface {
	// ConfigFields returns the declared fields in declaration order, bound to
	// the receiver.
	ConfigFields() []Field
	// SetExtra keeps a decoded key the node does not declare.
	SetExtra(name string, value interface{})
}

// Field is one declared field of a node.
type Field struct {
	Name string

	get  func() interface{}
	set  func(v interface{}) error
	omit func() bool
}

// IsConfigField reports whether name follows the declared-field naming rule:
// upper case and not starting with an underscore.
func IsConfigField(name string) bool {
	if name == "" || strings.HasPrefix(name, "_") {
		return false
	}
	hasLetter := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// Var declares a field with custom accessors. The getter must return a value
// that encoding/json can marshal.
func Var(name string, get func() interface{}, set func(v interface{}) error) Field {
	if !IsConfigField(name) {
		panic(fmt.Sprintf("fields: %q is not a valid config field name", name))
	}
	return Field{Name: name, get: get, set: set}
}

// OmitWhen returns a copy of f that is left out of the encoded form while
// cond reports true.
func (f Field) OmitWhen(cond func() bool) Field {
	f.omit = cond
	return f
}

// Value returns the current value of the field in its encoded form.
func (f Field) Value() interface{} {
	return f.get()
}

// Omitted reports whether the field is currently left out of the encoded form.
func (f Field) Omitted() bool {
	return f.omit != nil && f.omit()
}

// Names returns the declared field names of n in declaration order.
func Names(n Node) []string {
	ff := n.ConfigFields()
	names := make([]string, len(ff))
	for i, f := range ff {
		names[i] = f.Name
	}
	return names
}

// Defaults returns the encoded declared fields of a freshly constructed node,
// i.e. the defaults of its type.
func Defaults(newNode func() Node) Map {
	return ToMap(newNode())
}

// Extras keeps the keys of a decoded mapping that the node does not declare.
// They are retained for inspection but take no part in encoding or equality.
type Extras struct {
	extra Map
}

// SetExtra stores an undeclared key.
func (e *Extras) SetExtra(name string, value interface{}) {
	if e.extra == nil {
		e.extra = make(Map)
	}
	e.extra[name] = value
}

// Extra returns an undeclared key kept from decoding.
func (e *Extras) Extra(name string) (interface{}, bool) {
	v, ok := e.extra[name]
	return v, ok
}

// ExtraNames returns the undeclared keys kept from decoding.
func (e *Extras) ExtraNames() []string {
	names := make([]string, 0, len(e.extra))
	for name := range e.extra {
		names = append(names, name)
	}
	return names
}
