// Package msgpack implements the MessagePack binary serialization format:
// https://github.com/msgpack/msgpack/blob/master/spec.md
//
// The package operates on an in-memory, language-neutral value model
// (Object) rather than on Go structs via reflection: there is no schema,
// no struct-tag field mapping, and no code generation. Callers build an
// Object tree, Serialize it to a byte buffer, and Deserialize bytes back
// into an Object tree. Decoding always produces owned values; there are no
// borrowed/zero-copy views over the input buffer.
//
// Components:
//   - Object: the tagged-union value type (Nil, Bool, Int, UInt, Float32,
//     Float64, String, Binary, Array, Map, Extension).
//   - Serialize / Deserialize: the codec core. Serialize always chooses the
//     narrowest wire format for a given value; Deserialize accepts any
//     legal encoding of that value.
//   - Timestamp: bidirectional conversion between (seconds, nanoseconds)
//     and the reserved type -1 Extension.
//
// Multi-message buffers:
//
//	cursor := 0
//	for cursor < len(buf) {
//	    obj, n, err := msgpack.Deserialize(buf, cursor)
//	    if err != nil { break }
//	    cursor = n
//	}
//
// The package is purely synchronous and holds no global mutable state;
// Serialize and Deserialize are safe to call concurrently over distinct
// buffers and distinct Object trees. A single Object tree must not be
// mutated concurrently with a Serialize call over that same tree.
package msgpack
