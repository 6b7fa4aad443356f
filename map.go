package msgpack

import (
	"math"
	"sort"
)

// Map is an unordered key→value mapping. Keys are restricted to the
// scalar Object variants (Nil, Bool, Int, UInt, Float32, Float64,
// String); Binary, Array, Map, and Extension are not permitted as keys.
// Internally, Map is bucketed one Go map per key Type. This sidesteps
// needing a hash function over the full Object variant and pins the
// "no compound keys" invariant at the type level.
type Map struct {
	hasNil bool
	nilVal Object

	boolBucket map[bool]Object
	intBucket  map[int64]Object
	uintBucket map[uint64]Object
	f32Bucket  map[float32]Object
	f64Bucket  map[float64]Object
	strBucket  map[string]Object
}

// NewEmptyMap constructs an empty Map.
func NewEmptyMap() *Map {
	return &Map{}
}

// Set inserts or replaces the value for key. Returns an error of Kind
// KindInvalidFormatType if key's Type is not a permitted key type
// (Binary, Array, Map, Extension); returns nil on success for any
// supported key kind.
func (m *Map) Set(key, value Object) error {
	switch key.Type() {
	case TypeNil:
		m.hasNil = true
		m.nilVal = value
	case TypeBool:
		if m.boolBucket == nil {
			m.boolBucket = make(map[bool]Object, 2)
		}
		m.boolBucket[key.b] = value
	case TypeInt:
		if m.intBucket == nil {
			m.intBucket = make(map[int64]Object)
		}
		m.intBucket[key.i] = value
	case TypeUInt:
		if m.uintBucket == nil {
			m.uintBucket = make(map[uint64]Object)
		}
		m.uintBucket[key.u] = value
	case TypeFloat32:
		if m.f32Bucket == nil {
			m.f32Bucket = make(map[float32]Object)
		}
		m.f32Bucket[key.f32] = value
	case TypeFloat64:
		if m.f64Bucket == nil {
			m.f64Bucket = make(map[float64]Object)
		}
		m.f64Bucket[key.f64] = value
	case TypeString:
		if m.strBucket == nil {
			m.strBucket = make(map[string]Object)
		}
		m.strBucket[key.str] = value
	default:
		return newError(KindInvalidFormatType, -1)
	}
	return nil
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key Object) (Object, bool) {
	switch key.Type() {
	case TypeNil:
		if m.hasNil {
			return m.nilVal, true
		}
	case TypeBool:
		v, ok := m.boolBucket[key.b]
		return v, ok
	case TypeInt:
		v, ok := m.intBucket[key.i]
		return v, ok
	case TypeUInt:
		v, ok := m.uintBucket[key.u]
		return v, ok
	case TypeFloat32:
		v, ok := m.f32Bucket[key.f32]
		return v, ok
	case TypeFloat64:
		v, ok := m.f64Bucket[key.f64]
		return v, ok
	case TypeString:
		v, ok := m.strBucket[key.str]
		return v, ok
	}
	return Object{}, false
}

// Contains reports whether key is present.
func (m *Map) Contains(key Object) bool {
	_, ok := m.Get(key)
	return ok
}

// Erase removes key, if present, and reports whether it was present.
func (m *Map) Erase(key Object) bool {
	switch key.Type() {
	case TypeNil:
		had := m.hasNil
		m.hasNil = false
		m.nilVal = Object{}
		return had
	case TypeBool:
		if _, ok := m.boolBucket[key.b]; ok {
			delete(m.boolBucket, key.b)
			return true
		}
	case TypeInt:
		if _, ok := m.intBucket[key.i]; ok {
			delete(m.intBucket, key.i)
			return true
		}
	case TypeUInt:
		if _, ok := m.uintBucket[key.u]; ok {
			delete(m.uintBucket, key.u)
			return true
		}
	case TypeFloat32:
		if _, ok := m.f32Bucket[key.f32]; ok {
			delete(m.f32Bucket, key.f32)
			return true
		}
	case TypeFloat64:
		if _, ok := m.f64Bucket[key.f64]; ok {
			delete(m.f64Bucket, key.f64)
			return true
		}
	case TypeString:
		if _, ok := m.strBucket[key.str]; ok {
			delete(m.strBucket, key.str)
			return true
		}
	}
	return false
}

// Clear removes every entry from every bucket.
func (m *Map) Clear() {
	m.hasNil = false
	m.nilVal = Object{}
	m.boolBucket = nil
	m.intBucket = nil
	m.uintBucket = nil
	m.f32Bucket = nil
	m.f64Bucket = nil
	m.strBucket = nil
}

// Len returns the total entry count, summed across all buckets.
func (m *Map) Len() int {
	n := len(m.boolBucket) + len(m.intBucket) + len(m.uintBucket) +
		len(m.f32Bucket) + len(m.f64Bucket) + len(m.strBucket)
	if m.hasNil {
		n++
	}
	return n
}

// MapEntry is one key/value pair as returned by Map.OrderedEntries.
type MapEntry struct {
	Key   Object
	Value Object
}

// OrderedEntries returns every entry in the deterministic bucket order the
// Serializer uses: the Nil-key entry (if any) first, then Bool, Int,
// UInt, Float32, Float64, String buckets in that order, each bucket's
// entries sorted ascending (lexicographic for String). This ordering is
// for reproducible output only: the MessagePack spec does not mandate
// map key order, and decoders must not assume any particular order.
func (m *Map) OrderedEntries() []MapEntry {
	out := make([]MapEntry, 0, m.Len())

	if m.hasNil {
		out = append(out, MapEntry{Key: Nil, Value: m.nilVal})
	}

	if len(m.boolBucket) > 0 {
		// false sorts before true.
		if v, ok := m.boolBucket[false]; ok {
			out = append(out, MapEntry{Key: NewBool(false), Value: v})
		}
		if v, ok := m.boolBucket[true]; ok {
			out = append(out, MapEntry{Key: NewBool(true), Value: v})
		}
	}

	if len(m.intBucket) > 0 {
		keys := make([]int64, 0, len(m.intBucket))
		for k := range m.intBucket {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			out = append(out, MapEntry{Key: NewInt(k), Value: m.intBucket[k]})
		}
	}

	if len(m.uintBucket) > 0 {
		keys := make([]uint64, 0, len(m.uintBucket))
		for k := range m.uintBucket {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			out = append(out, MapEntry{Key: NewUInt(k), Value: m.uintBucket[k]})
		}
	}

	if len(m.f32Bucket) > 0 {
		keys := make([]float32, 0, len(m.f32Bucket))
		for k := range m.f32Bucket {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			out = append(out, MapEntry{Key: NewFloat32(k), Value: m.f32Bucket[k]})
		}
	}

	if len(m.f64Bucket) > 0 {
		keys := make([]float64, 0, len(m.f64Bucket))
		for k := range m.f64Bucket {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			out = append(out, MapEntry{Key: NewFloat64(k), Value: m.f64Bucket[k]})
		}
	}

	if len(m.strBucket) > 0 {
		keys := make([]string, 0, len(m.strBucket))
		for k := range m.strBucket {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, MapEntry{Key: NewString(k), Value: m.strBucket[k]})
		}
	}

	return out
}

func (m *Map) equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}
	if m.hasNil != other.hasNil {
		return false
	}
	if m.hasNil && !m.nilVal.Equal(other.nilVal) {
		return false
	}
	if !boolBucketEqual(m.boolBucket, other.boolBucket) {
		return false
	}
	if !mapBucketEqual(m.intBucket, other.intBucket) {
		return false
	}
	if !mapBucketEqual(m.uintBucket, other.uintBucket) {
		return false
	}
	if !float32BucketEqual(m.f32Bucket, other.f32Bucket) {
		return false
	}
	if !float64BucketEqual(m.f64Bucket, other.f64Bucket) {
		return false
	}
	if !mapBucketEqual(m.strBucket, other.strBucket) {
		return false
	}
	return true
}

func mapBucketEqual[K comparable](a, b map[K]Object) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !av.Equal(bv) {
			return false
		}
	}
	return true
}

func boolBucketEqual(a, b map[bool]Object) bool { return mapBucketEqual(a, b) }

// float32/float64 keys need bit-exact comparison (NaN != NaN under ==),
// so they cannot reuse the generic comparable-key helper for the key
// comparison itself, only for len/value comparison via bits-as-key maps.
func float32BucketEqual(a, b map[float32]Object) bool {
	if len(a) != len(b) {
		return false
	}
	ab := rekeyFloat32(a)
	bb := rekeyFloat32(b)
	return mapBucketEqual(ab, bb)
}

func float64BucketEqual(a, b map[float64]Object) bool {
	if len(a) != len(b) {
		return false
	}
	ab := rekeyFloat64(a)
	bb := rekeyFloat64(b)
	return mapBucketEqual(ab, bb)
}

func rekeyFloat32(m map[float32]Object) map[uint32]Object {
	out := make(map[uint32]Object, len(m))
	for k, v := range m {
		out[math.Float32bits(k)] = v
	}
	return out
}

func rekeyFloat64(m map[float64]Object) map[uint64]Object {
	out := make(map[uint64]Object, len(m))
	for k, v := range m {
		out[math.Float64bits(k)] = v
	}
	return out
}
