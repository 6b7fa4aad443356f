package msgpack

import "testing"

func TestMapSetGetContainsErase(t *testing.T) {
	m := NewEmptyMap()
	if err := m.Set(NewString("a"), NewInt(1)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok := m.Get(NewString("a"))
	if !ok || v.Int() != 1 {
		t.Fatalf("Get: got (%v, %v)", v, ok)
	}
	if !m.Contains(NewString("a")) {
		t.Fatalf("Contains: want true")
	}
	if !m.Erase(NewString("a")) {
		t.Fatalf("Erase: want true")
	}
	if m.Contains(NewString("a")) {
		t.Fatalf("Contains after Erase: want false")
	}
}

func TestMapSetRejectsCompoundKeys(t *testing.T) {
	cases := []struct {
		name string
		key  Object
	}{
		{"binary", NewBinary([]byte{1})},
		{"array", NewArray(NewEmptyArray())},
		{"map", NewMap(NewEmptyMap())},
		{"extension", NewExtension(Extension{Type: 1, Data: []byte{1}})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewEmptyMap()
			err := m.Set(c.key, NewInt(1))
			if err == nil {
				t.Fatalf("Set with %s key: want error, got nil", c.name)
			}
			if KindOf(err) != KindInvalidFormatType {
				t.Fatalf("Set with %s key: want KindInvalidFormatType, got %v", c.name, KindOf(err))
			}
		})
	}
}

func TestMapSetReturnsNilOnSuccessForEverySupportedKeyType(t *testing.T) {
	m := NewEmptyMap()
	keys := []Object{Nil, NewBool(true), NewInt(-1), NewUInt(1), NewFloat32(1), NewFloat64(1), NewString("s")}
	for _, k := range keys {
		if err := m.Set(k, NewInt(0)); err != nil {
			t.Fatalf("Set(%v): want nil error, got %v", k, err)
		}
	}
	if m.Len() != len(keys) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(keys))
	}
}

func TestMapClear(t *testing.T) {
	m := NewEmptyMap()
	m.Set(NewString("a"), NewInt(1))
	m.Set(NewInt(1), NewInt(2))
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", m.Len())
	}
}

func TestMapOrderedEntriesBucketOrder(t *testing.T) {
	m := NewEmptyMap()
	m.Set(NewString("zebra"), NewInt(1))
	m.Set(NewString("apple"), NewInt(2))
	m.Set(NewInt(5), NewInt(3))
	m.Set(NewInt(-5), NewInt(4))
	m.Set(NewBool(true), NewInt(5))
	m.Set(NewBool(false), NewInt(6))
	m.Set(Nil, NewInt(7))

	entries := m.OrderedEntries()
	if len(entries) != 7 {
		t.Fatalf("OrderedEntries len = %d, want 7", len(entries))
	}

	// Nil first.
	if !entries[0].Key.IsNil() {
		t.Fatalf("entry 0: want Nil key, got %v", entries[0].Key)
	}
	// false before true.
	if entries[1].Key.Type() != TypeBool || entries[1].Key.Bool() {
		t.Fatalf("entry 1: want Bool(false), got %v", entries[1].Key)
	}
	if entries[2].Key.Type() != TypeBool || !entries[2].Key.Bool() {
		t.Fatalf("entry 2: want Bool(true), got %v", entries[2].Key)
	}
	// Int ascending.
	if entries[3].Key.Int() != -5 || entries[4].Key.Int() != 5 {
		t.Fatalf("int keys not ascending: %v %v", entries[3].Key, entries[4].Key)
	}
	// String keys lexicographic.
	if entries[5].Key.Str() != "apple" || entries[6].Key.Str() != "zebra" {
		t.Fatalf("string keys not lexicographic: %v %v", entries[5].Key, entries[6].Key)
	}
}

func TestMapEqualIsOrderIndependent(t *testing.T) {
	a := NewEmptyMap()
	a.Set(NewString("x"), NewInt(1))
	a.Set(NewString("y"), NewInt(2))

	b := NewEmptyMap()
	b.Set(NewString("y"), NewInt(2))
	b.Set(NewString("x"), NewInt(1))

	if !a.equal(b) {
		t.Fatalf("maps with the same entries in different insertion order should be equal")
	}
}
