package msgpack

import "math"

// Type identifies which variant of the tagged-union Object a value holds.
type Type int

const (
	TypeNil Type = iota
	TypeBool
	TypeInt
	TypeUInt
	TypeFloat32
	TypeFloat64
	TypeString
	TypeBinary
	TypeArray
	TypeMap
	TypeExtension
)

func (t Type) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeUInt:
		return "uint"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeString:
		return "string"
	case TypeBinary:
		return "binary"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Object is a tagged-union value over exactly the variants MessagePack can
// represent. The zero value is Nil. Construct a non-Nil Object with one of
// the New* functions; inspect its Type before calling the matching
// accessor: calling an accessor for the wrong Type panics, the same
// contract Go's own type assertions and map-index-comma-ok forms use.
//
// Objects are plain values; copying an Object copies the tag and scalar
// payload, but Array/Map/Binary/Extension payloads are held by reference
// (a pointer or slice header), matching Go's usual slice/pointer aliasing
// rules. Use Array.Clone for an independent Array backing slice; Map has
// no Clone method.
type Object struct {
	typ Type

	b   bool
	i   int64
	u   uint64
	f32 float32
	f64 float64
	str string
	bin []byte
	arr *Array
	m   *Map
	ext Extension
}

// Nil is the Nil Object. It is also the zero value of Object.
var Nil = Object{typ: TypeNil}

// NewBool constructs a Bool Object.
func NewBool(v bool) Object { return Object{typ: TypeBool, b: v} }

// NewInt constructs an Int (signed 64-bit) Object.
func NewInt(v int64) Object { return Object{typ: TypeInt, i: v} }

// NewUInt constructs a UInt (unsigned 64-bit) Object.
func NewUInt(v uint64) Object { return Object{typ: TypeUInt, u: v} }

// NewFloat32 constructs a Float32 Object.
func NewFloat32(v float32) Object { return Object{typ: TypeFloat32, f32: v} }

// NewFloat64 constructs a Float64 Object.
func NewFloat64(v float64) Object { return Object{typ: TypeFloat64, f64: v} }

// NewString constructs a String Object. The codec does not validate UTF-8.
func NewString(v string) Object { return Object{typ: TypeString, str: v} }

// NewBinary constructs a Binary Object. The byte slice is held by
// reference; callers must not mutate it after construction if the Object
// is shared.
func NewBinary(v []byte) Object { return Object{typ: TypeBinary, bin: v} }

// NewArray constructs an Array Object wrapping arr. A nil arr is treated
// as an empty Array.
func NewArray(arr *Array) Object {
	if arr == nil {
		arr = NewEmptyArray()
	}
	return Object{typ: TypeArray, arr: arr}
}

// NewMap constructs a Map Object wrapping m. A nil m is treated as an
// empty Map.
func NewMap(m *Map) Object {
	if m == nil {
		m = NewEmptyMap()
	}
	return Object{typ: TypeMap, m: m}
}

// NewExtension constructs an Extension Object.
func NewExtension(ext Extension) Object { return Object{typ: TypeExtension, ext: ext} }

// Type reports which variant this Object holds.
func (o Object) Type() Type { return o.typ }

// IsNil reports whether o is the Nil variant.
func (o Object) IsNil() bool { return o.typ == TypeNil }

// Bool returns the Bool payload. Panics if Type() != TypeBool.
func (o Object) Bool() bool { o.mustBe(TypeBool); return o.b }

// Int returns the Int payload. Panics if Type() != TypeInt.
func (o Object) Int() int64 { o.mustBe(TypeInt); return o.i }

// UInt returns the UInt payload. Panics if Type() != TypeUInt.
func (o Object) UInt() uint64 { o.mustBe(TypeUInt); return o.u }

// Float32 returns the Float32 payload. Panics if Type() != TypeFloat32.
func (o Object) Float32() float32 { o.mustBe(TypeFloat32); return o.f32 }

// Float64 returns the Float64 payload. Panics if Type() != TypeFloat64.
func (o Object) Float64() float64 { o.mustBe(TypeFloat64); return o.f64 }

// Str returns the String payload. Panics if Type() != TypeString.
//
// Named Str rather than String so that Object does not accidentally
// satisfy fmt.Stringer: fmt would call String() on every Object it
// prints (including non-String ones), and this accessor panics on a
// Type mismatch. Use Format(Object) for a printable representation.
func (o Object) Str() string { o.mustBe(TypeString); return o.str }

// Binary returns the Binary payload. Panics if Type() != TypeBinary.
func (o Object) Binary() []byte { o.mustBe(TypeBinary); return o.bin }

// Array returns the Array payload. Panics if Type() != TypeArray.
func (o Object) Array() *Array { o.mustBe(TypeArray); return o.arr }

// Map returns the Map payload. Panics if Type() != TypeMap.
func (o Object) Map() *Map { o.mustBe(TypeMap); return o.m }

// Extension returns the Extension payload. Panics if Type() != TypeExtension.
func (o Object) Extension() Extension { o.mustBe(TypeExtension); return o.ext }

func (o Object) mustBe(t Type) {
	if o.typ != t {
		panic("msgpack: Object accessor " + t.String() + "() called on a " + o.typ.String() + " value")
	}
}

// Equal reports whether o and other are equal: same Type, and equal
// payload. Float comparisons are bit-exact (via math.Float32bits /
// Float64bits), so +0/-0 and every NaN bit pattern compare equal only
// to themselves bit-for-bit. Array equality is element-wise and
// order-sensitive; Map equality is bucket-wise with matching key/value
// pairs regardless of insertion order.
func (o Object) Equal(other Object) bool {
	if o.typ != other.typ {
		return false
	}
	switch o.typ {
	case TypeNil:
		return true
	case TypeBool:
		return o.b == other.b
	case TypeInt:
		return o.i == other.i
	case TypeUInt:
		return o.u == other.u
	case TypeFloat32:
		return math.Float32bits(o.f32) == math.Float32bits(other.f32)
	case TypeFloat64:
		return math.Float64bits(o.f64) == math.Float64bits(other.f64)
	case TypeString:
		return o.str == other.str
	case TypeBinary:
		return bytesEqual(o.bin, other.bin)
	case TypeArray:
		return o.arr.equal(other.arr)
	case TypeMap:
		return o.m.equal(other.m)
	case TypeExtension:
		return o.ext.Equal(other.ext)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
