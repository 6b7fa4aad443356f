package codec

import "github.com/unkn0wn-root/msgpack"

// Object is the identity Codec over msgpack.Object: Encode calls
// msgpack.Serialize and Decode calls msgpack.Deserialize, discarding the
// returned cursor (the codec.Codec contract is single-message, whole-
// buffer semantics; use msgpack.DecodeAll directly for multi-message
// buffers).
type Object struct{}

func (Object) Encode(o msgpack.Object) ([]byte, error) {
	return msgpack.Serialize(o, nil)
}

func (Object) Decode(b []byte) (msgpack.Object, error) {
	o, _, err := msgpack.Deserialize(b, 0)
	return o, err
}
