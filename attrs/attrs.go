// Implements the ordered attribute store backing
// the attributes and metadata of svg elements.
// Values are kept in insertion order, so that rendering
// is deterministic.
package attrs

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"cogentcore.org/core/base/ordmap"
)

// ErrKeyNotFound is returned when reading a key which was never set.
var ErrKeyNotFound = errors.New("key not found")

// KeyValue is one entry of a Map.
type KeyValue struct {
	Key   string
	Value any
}

// KV is a shortcut to build a KeyValue.
func KV(key string, value any) KeyValue { return KeyValue{Key: key, Value: value} }

// Map is an ordered mapping from attribute name to value.
// Writing an existing key replaces its value but keeps its position.
// The zero value is ready to use.
type Map struct {
	om ordmap.Map[string, any]
}

// New returns a map holding `pairs`, in order.
func New(pairs ...KeyValue) *Map {
	m := new(Map)
	for _, kv := range pairs {
		m.Set(kv.Key, kv.Value)
	}
	return m
}

// FromMap converts a Go map. Since Go maps are not ordered,
// the keys are sorted.
func FromMap(values map[string]any) *Map {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m := new(Map)
	for _, k := range keys {
		m.Set(k, values[k])
	}
	return m
}

// normalize wraps mappings into *Map, recursively.
func normalize(value any) any {
	switch value := value.(type) {
	case *Map:
		if value == nil {
			return New()
		}
		return value.Clone()
	case map[string]any:
		return FromMap(value)
	case map[string]string:
		tmp := make(map[string]any, len(value))
		for k, v := range value {
			tmp[k] = v
		}
		return FromMap(tmp)
	case []KeyValue:
		return New(value...)
	default:
		return value
	}
}

// Set stores `value` under `key`.
func (m *Map) Set(key string, value any) {
	m.om.Add(key, normalize(value))
}

// SetDefault stores `value` only if `key` is not already present.
func (m *Map) SetDefault(key string, value any) {
	if m.Has(key) {
		return
	}
	m.Set(key, value)
}

// Get returns the value stored for `key`, or an error
// wrapping ErrKeyNotFound.
func (m *Map) Get(key string) (any, error) {
	if m == nil {
		return nil, fmt.Errorf("attrs: %w: %q", ErrKeyNotFound, key)
	}
	v, ok := m.om.ValueByKeyTry(key)
	if !ok {
		return nil, fmt.Errorf("attrs: %w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Has returns true if `key` is present.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.om.ValueByKeyTry(key)
	return ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.om.Order)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.om.Order))
	for i, kv := range m.om.Order {
		out[i] = kv.Key
	}
	return out
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, kv := range m.om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Merge writes every entry of `other` into `m`, so that
// `other` wins on key collision.
func (m *Map) Merge(other *Map) {
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	out := new(Map)
	for k, v := range m.All() {
		out.Set(k, v) // nested maps are cloned by normalize
	}
	return out
}

// String returns the map as a CSS declaration list,
// which is also how a nested map is rendered.
func (m *Map) String() string { return Format(m) }
