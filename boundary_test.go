package msgpack

import "testing"

func roundTrip(t *testing.T, o Object) Object {
	t.Helper()
	buf := mustSerialize(t, o)
	got, next, err := Deserialize(buf, 0)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if next != len(buf) {
		t.Fatalf("cursor = %d, want %d", next, len(buf))
	}
	return got
}

func TestBoundaryInts(t *testing.T) {
	values := []int64{
		-33, -32, 127, 128,
		-128, -129,
		-32768, -32769, 32767, 32768,
		-2147483648, -2147483649, 2147483647, 2147483648,
		-9223372036854775808, 9223372036854775807,
	}
	for _, v := range values {
		got := roundTrip(t, NewInt(v))
		if got.Type() != TypeInt || got.Int() != v {
			t.Fatalf("int %d: round trip got %v", v, got)
		}
	}
}

func TestBoundaryUints(t *testing.T) {
	values := []uint64{
		0, 255, 256, 65535, 65536,
		4294967295, 4294967296, 18446744073709551615,
	}
	for _, v := range values {
		got := roundTrip(t, NewUInt(v))
		if got.Type() != TypeUInt || got.UInt() != v {
			t.Fatalf("uint %d: round trip got %v", v, got)
		}
	}
}

func TestBoundaryStringLengths(t *testing.T) {
	lengths := []int{0, 15, 16, 31, 32, 255, 256, 65535, 65536}
	for _, l := range lengths {
		s := make([]byte, l)
		for i := range s {
			s[i] = byte('a' + i%26)
		}
		got := roundTrip(t, NewString(string(s)))
		if got.Str() != string(s) {
			t.Fatalf("string length %d: round trip mismatch", l)
		}
	}
}

func TestBoundaryBinaryLengths(t *testing.T) {
	lengths := []int{0, 255, 256, 65535, 65536}
	for _, l := range lengths {
		b := make([]byte, l)
		for i := range b {
			b[i] = byte(i)
		}
		got := roundTrip(t, NewBinary(b))
		if !bytesEqual(got.Binary(), b) {
			t.Fatalf("binary length %d: round trip mismatch", l)
		}
	}
}

func TestBoundaryArrayLengths(t *testing.T) {
	lengths := []int{0, 15, 16, 31, 32, 65535, 65536}
	for _, l := range lengths {
		elems := make([]Object, l)
		for i := range elems {
			elems[i] = NewInt(int64(i))
		}
		arr := NewArray(NewArrayFrom(elems))
		got := roundTrip(t, arr)
		if got.Array().Len() != l {
			t.Fatalf("array length %d: got %d", l, got.Array().Len())
		}
	}
}

func TestBoundaryMapLengths(t *testing.T) {
	lengths := []int{0, 15, 16, 31, 32, 65535, 65536}
	for _, l := range lengths {
		m := NewEmptyMap()
		for i := 0; i < l; i++ {
			m.Set(NewInt(int64(i)), NewInt(int64(i)))
		}
		got := roundTrip(t, NewMap(m))
		if got.Map().Len() != l {
			t.Fatalf("map length %d: got %d", l, got.Map().Len())
		}
	}
}

func TestBoundaryExtensionLengths(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 4, 5, 8, 16, 17, 255, 256, 65535, 65536}
	for _, l := range lengths {
		data := make([]byte, l)
		for i := range data {
			data[i] = byte(i)
		}
		ext := NewExtension(Extension{Type: 7, Data: data})
		got := roundTrip(t, ext)
		if got.Extension().Type != 7 || !bytesEqual(got.Extension().Data, data) {
			t.Fatalf("extension length %d: round trip mismatch", l)
		}
	}
}
