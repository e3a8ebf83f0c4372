package value

import "sort"

// entry is one key/value pair stored in an OrderedMap.
type entry struct {
	Key   *Value
	Value *Value
}

// OrderedMap is the internal container backing the Map variant. It keeps
// its entries sorted under the key-order relation (spec.md §3.2) rather
// than in insertion order; Map iteration therefore always follows the key
// relation. Lookup is by deep-equal-on-primitives-or-identity, mirroring
// the C++ original's std::map keyed by Value_Ptr with a custom comparator.
type OrderedMap struct {
	entries []entry
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap { return &OrderedMap{} }

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.entries) }

// Entries returns the entries in key-order relation order. The returned
// slice must be treated as read-only.
func (m *OrderedMap) Entries() []entry { return m.entries }

// find returns the index where key is (or would be) inserted, and whether
// it was found exactly.
func (m *OrderedMap) find(key *Value) (int, bool) {
	idx := sort.Search(len(m.entries), func(i int) bool {
		return !keyLess(m.entries[i].Key, key)
	})
	if idx < len(m.entries) && valuesKeyEqual(m.entries[idx].Key, key) {
		return idx, true
	}
	return idx, false
}

// Get looks up a key, returning its value and whether it was present.
func (m *OrderedMap) Get(key *Value) (*Value, bool) {
	idx, found := m.find(key)
	if !found {
		return nil, false
	}
	return m.entries[idx].Value, true
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key *Value) bool {
	_, found := m.find(key)
	return found
}

// Set inserts or overwrites the value bound to key, keeping entries sorted.
func (m *OrderedMap) Set(key, val *Value) {
	idx, found := m.find(key)
	if found {
		m.entries[idx].Value = val
		return
	}
	m.entries = append(m.entries, entry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = entry{Key: key, Value: val}
}

// Keys returns the keys in key-order relation order.
func (m *OrderedMap) Keys() []*Value {
	out := make([]*Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Values returns the values in key-order relation order.
func (m *OrderedMap) Values() []*Value {
	out := make([]*Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Value
	}
	return out
}

// keyLess implements the map key ordering relation of spec.md §3.2:
//  1. order by variant tag
//  2. same primitive variant: natural order
//  3. otherwise (structured/Function with same tag): pointer identity order
func keyLess(a, b *Value) bool {
	if a.tag != b.tag {
		return a.tag < b.tag
	}
	if a.IsPrimitive() {
		switch a.tag {
		case TagNull:
			return false // Null < Null is false
		case TagInt:
			return a.i < b.i
		case TagFloat:
			return a.f < b.f
		case TagBool:
			return !a.b && b.b
		case TagString:
			return a.s < b.s
		}
	}
	return uintptr(ptrOf(a)) < uintptr(ptrOf(b))
}

// valuesKeyEqual reports whether a and b are equal under the key-order
// relation (neither a<b nor b<a).
func valuesKeyEqual(a, b *Value) bool {
	return !keyLess(a, b) && !keyLess(b, a)
}
