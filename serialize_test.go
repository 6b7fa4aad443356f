package msgpack

import "testing"

func mustSerialize(t *testing.T, o Object) []byte {
	t.Helper()
	buf, err := Serialize(o, nil)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return buf
}

func TestSerializeChoosesNarrowestIntFormat(t *testing.T) {
	cases := []struct {
		name        string
		v           int64
		wantFirst   byte
		wantEncoded int // total encoded length
	}{
		{"posfixint_max", 127, 0x7f, 1},
		{"negfixint_min", -32, 0xe0, 1},
		{"int8_just_below_fixint", -33, 0xd0, 2},
		{"int16_just_above_fixint", 128, 0xd1, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := mustSerialize(t, NewInt(c.v))
			if buf[0] != c.wantFirst {
				t.Fatalf("first byte = %#x, want %#x", buf[0], c.wantFirst)
			}
			if len(buf) != c.wantEncoded {
				t.Fatalf("encoded length = %d, want %d", len(buf), c.wantEncoded)
			}
		})
	}
}

func TestSerializeNilBoolFixintRoundTrip(t *testing.T) {
	cases := []Object{Nil, NewBool(true), NewBool(false), NewInt(0), NewInt(127), NewInt(-32)}
	for _, o := range cases {
		buf := mustSerialize(t, o)
		got, next, err := Deserialize(buf, 0)
		if err != nil {
			t.Fatalf("Deserialize(%v): %v", o, err)
		}
		if next != len(buf) {
			t.Fatalf("Deserialize(%v): cursor %d, want %d", o, next, len(buf))
		}
		if !got.Equal(o) {
			t.Fatalf("round trip mismatch: got %v, want %v", got, o)
		}
	}
}

func TestSerializeRejectsDepthExceeded(t *testing.T) {
	inner := Nil
	for i := 0; i < 10; i++ {
		inner = NewArray(NewArrayFrom([]Object{inner}))
	}
	_, err := SerializeOptions(inner, nil, EncodeOptions{MaxDepth: 3})
	if err == nil {
		t.Fatalf("expected KindDepthExceeded, got nil error")
	}
	if KindOf(err) != KindDepthExceeded {
		t.Fatalf("KindOf(err) = %v, want KindDepthExceeded", KindOf(err))
	}
}

func TestSerializeAppendsToExistingBuffer(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}
	buf, err := Serialize(NewInt(1), prefix)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(buf) < 3 || buf[0] != 0xAA || buf[1] != 0xBB {
		t.Fatalf("Serialize did not preserve the caller's prefix: %x", buf)
	}
}

func TestSerializeDiagnosticsOnDepthExceeded(t *testing.T) {
	rec := &recordingDiagnostics{}
	inner := Nil
	for i := 0; i < 5; i++ {
		inner = NewArray(NewArrayFrom([]Object{inner}))
	}
	_, err := SerializeOptions(inner, nil, EncodeOptions{MaxDepth: 1, Diagnostics: rec})
	if err == nil {
		t.Fatalf("expected error")
	}
	if rec.depthExceeded == 0 {
		t.Fatalf("OnDepthExceeded was not called")
	}
}

type recordingDiagnostics struct {
	decodeErrors   int
	encodeRejected int
	depthExceeded  int
}

func (r *recordingDiagnostics) OnDecodeError(Kind, int)       { r.decodeErrors++ }
func (r *recordingDiagnostics) OnEncodeRejected(Kind, uint64) { r.encodeRejected++ }
func (r *recordingDiagnostics) OnDepthExceeded(int)           { r.depthExceeded++ }
