package codec

import "github.com/unkn0wn-root/msgpack"

// Func adapts a caller-supplied (V <-> msgpack.Object) mapping into a
// Codec[V], so application types can ride the wire codec without any
// reflection or schema inference: the caller writes the exact mapping
// it wants, and Func just plugs it into Serialize/Deserialize.
type Func[V any] struct {
	// To converts a V into its msgpack.Object representation.
	To func(V) (msgpack.Object, error)
	// From converts a decoded msgpack.Object back into a V.
	From func(msgpack.Object) (V, error)
}

func (f Func[V]) Encode(v V) ([]byte, error) {
	o, err := f.To(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Serialize(o, nil)
}

func (f Func[V]) Decode(b []byte) (V, error) {
	var zero V
	o, _, err := msgpack.Deserialize(b, 0)
	if err != nil {
		return zero, err
	}
	return f.From(o)
}
