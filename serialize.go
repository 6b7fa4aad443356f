package msgpack

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/unkn0wn-root/msgpack/internal/bytesx"
	"github.com/unkn0wn-root/msgpack/internal/wire"
)

const maxLen32 = uint64(math.MaxUint32)

// Serialize appends the MessagePack encoding of o to buf and returns the
// extended slice. It never truncates or clears buf: callers that need a
// fresh buffer should pass nil or buf[:0].
//
// Serialize always chooses the narrowest legal wire format for a given
// value. On error, buf may already have partial output appended; the
// caller is responsible for truncating or discarding it.
func Serialize(o Object, buf []byte) ([]byte, error) {
	return SerializeOptions(o, buf, EncodeOptions{})
}

// SerializeOptions is Serialize with explicit tuning (recursion-depth cap,
// diagnostics observer).
func SerializeOptions(o Object, buf []byte, opts EncodeOptions) ([]byte, error) {
	e := &encoder{diag: opts.diagnostics(), maxDepth: opts.MaxDepth}
	return e.encode(buf, o, 0)
}

type encoder struct {
	diag     Diagnostics
	maxDepth int // 0 = unbounded
}

func (e *encoder) depthExceeded(depth int) bool {
	return e.maxDepth > 0 && depth > e.maxDepth
}

func (e *encoder) encode(buf []byte, o Object, depth int) ([]byte, error) {
	if e.depthExceeded(depth) {
		e.diag.OnDepthExceeded(depth)
		return buf, newError(KindDepthExceeded, -1)
	}

	switch o.Type() {
	case TypeNil:
		return append(buf, byte(wire.Nil)), nil

	case TypeBool:
		if o.Bool() {
			return append(buf, byte(wire.True)), nil
		}
		return append(buf, byte(wire.False)), nil

	case TypeInt:
		return e.encodeInt(buf, o.Int()), nil

	case TypeUInt:
		return e.encodeUInt(buf, o.UInt()), nil

	case TypeFloat32:
		buf = append(buf, byte(wire.Float32))
		return bytesx.AppendFloat32(buf, o.Float32()), nil

	case TypeFloat64:
		buf = append(buf, byte(wire.Float64))
		return bytesx.AppendFloat64(buf, o.Float64()), nil

	case TypeString:
		return e.encodeString(buf, o.Str())

	case TypeBinary:
		return e.encodeBinary(buf, o.Binary())

	case TypeArray:
		return e.encodeArray(buf, o.Array(), depth)

	case TypeMap:
		return e.encodeMap(buf, o.Map(), depth)

	case TypeExtension:
		return e.encodeExtension(buf, o.Extension())

	default:
		return buf, newError(KindInvalidFormatType, -1)
	}
}

func (e *encoder) encodeInt(buf []byte, v int64) []byte {
	switch {
	case v >= -32 && v <= 127:
		return append(buf, wire.FixintByte(v))
	case v >= math.MinInt8 && v <= math.MaxInt8:
		buf = append(buf, byte(wire.Int8))
		return bytesx.AppendUint8(buf, uint8(int8(v)))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		buf = append(buf, byte(wire.Int16))
		return bytesx.AppendUint16(buf, uint16(int16(v)))
	case v >= math.MinInt32 && v <= math.MaxInt32:
		buf = append(buf, byte(wire.Int32))
		return bytesx.AppendUint32(buf, uint32(int32(v)))
	default:
		buf = append(buf, byte(wire.Int64))
		return bytesx.AppendUint64(buf, uint64(v))
	}
}

func (e *encoder) encodeUInt(buf []byte, v uint64) []byte {
	switch {
	case v <= math.MaxUint8:
		buf = append(buf, byte(wire.Uint8))
		return bytesx.AppendUint8(buf, uint8(v))
	case v <= math.MaxUint16:
		buf = append(buf, byte(wire.Uint16))
		return bytesx.AppendUint16(buf, uint16(v))
	case v <= math.MaxUint32:
		buf = append(buf, byte(wire.Uint32))
		return bytesx.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, byte(wire.Uint64))
		return bytesx.AppendUint64(buf, v)
	}
}

func (e *encoder) encodeString(buf []byte, s string) ([]byte, error) {
	l := uint64(len(s))
	switch {
	case l <= 31:
		buf = append(buf, byte(wire.FixstrMin)|byte(l))
	case l <= math.MaxUint8:
		buf = append(buf, byte(wire.Str8))
		buf = bytesx.AppendUint8(buf, uint8(l))
	case l <= math.MaxUint16:
		buf = append(buf, byte(wire.Str16))
		buf = bytesx.AppendUint16(buf, uint16(l))
	case l <= maxLen32:
		buf = append(buf, byte(wire.Str32))
		buf = bytesx.AppendUint32(buf, uint32(l))
	default:
		e.diag.OnEncodeRejected(KindStringTooBig, l)
		return buf, wrapError(KindStringTooBig, -1, errors.Errorf("string length %s exceeds 2^32-1", humanize.Bytes(l)), "serialize string")
	}
	return append(buf, s...), nil
}

func (e *encoder) encodeBinary(buf []byte, b []byte) ([]byte, error) {
	l := uint64(len(b))
	switch {
	case l <= math.MaxUint8:
		buf = append(buf, byte(wire.Bin8))
		buf = bytesx.AppendUint8(buf, uint8(l))
	case l <= math.MaxUint16:
		buf = append(buf, byte(wire.Bin16))
		buf = bytesx.AppendUint16(buf, uint16(l))
	case l <= maxLen32:
		buf = append(buf, byte(wire.Bin32))
		buf = bytesx.AppendUint32(buf, uint32(l))
	default:
		e.diag.OnEncodeRejected(KindBinaryTooBig, l)
		return buf, wrapError(KindBinaryTooBig, -1, errors.Errorf("binary length %s exceeds 2^32-1", humanize.Bytes(l)), "serialize binary")
	}
	return append(buf, b...), nil
}

func (e *encoder) encodeArray(buf []byte, a *Array, depth int) ([]byte, error) {
	n := uint64(a.Len())
	switch {
	case n < 16:
		buf = append(buf, byte(wire.FixarrayMin)|byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, byte(wire.Array16))
		buf = bytesx.AppendUint16(buf, uint16(n))
	case n <= maxLen32:
		buf = append(buf, byte(wire.Array32))
		buf = bytesx.AppendUint32(buf, uint32(n))
	default:
		e.diag.OnEncodeRejected(KindArrayTooBig, n)
		return buf, wrapError(KindArrayTooBig, -1, errors.Errorf("array length %d exceeds 2^32-1", n), "serialize array")
	}

	var err error
	for i := 0; i < a.Len(); i++ {
		buf, err = e.encode(buf, a.Get(i), depth+1)
		if err != nil {
			return buf, err
		}
	}
	return buf, nil
}

func (e *encoder) encodeMap(buf []byte, m *Map, depth int) ([]byte, error) {
	n := uint64(m.Len())
	switch {
	case n < 16:
		buf = append(buf, byte(wire.FixmapMin)|byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, byte(wire.Map16))
		buf = bytesx.AppendUint16(buf, uint16(n))
	case n <= maxLen32:
		buf = append(buf, byte(wire.Map32))
		buf = bytesx.AppendUint32(buf, uint32(n))
	default:
		e.diag.OnEncodeRejected(KindMapTooBig, n)
		return buf, wrapError(KindMapTooBig, -1, errors.Errorf("map length %d exceeds 2^32-1", n), "serialize map")
	}

	var err error
	for _, entry := range m.OrderedEntries() {
		buf, err = e.encode(buf, entry.Key, depth+1)
		if err != nil {
			return buf, err
		}
		buf, err = e.encode(buf, entry.Value, depth+1)
		if err != nil {
			return buf, err
		}
	}
	return buf, nil
}

func (e *encoder) encodeExtension(buf []byte, ext Extension) ([]byte, error) {
	l := uint64(len(ext.Data))
	switch {
	case l == 1:
		buf = append(buf, byte(wire.Fixext1))
	case l == 2:
		buf = append(buf, byte(wire.Fixext2))
	case l == 4:
		buf = append(buf, byte(wire.Fixext4))
	case l == 8:
		buf = append(buf, byte(wire.Fixext8))
	case l == 16:
		buf = append(buf, byte(wire.Fixext16))
	case l == 0 || (l >= 3 && l <= math.MaxUint8):
		buf = append(buf, byte(wire.Ext8))
		buf = bytesx.AppendUint8(buf, uint8(l))
	case l <= math.MaxUint16:
		buf = append(buf, byte(wire.Ext16))
		buf = bytesx.AppendUint16(buf, uint16(l))
	case l <= maxLen32:
		buf = append(buf, byte(wire.Ext32))
		buf = bytesx.AppendUint32(buf, uint32(l))
	default:
		e.diag.OnEncodeRejected(KindExtTooBig, l)
		return buf, wrapError(KindExtTooBig, -1, errors.Errorf("extension payload length %s exceeds 2^32-1", humanize.Bytes(l)), "serialize extension")
	}
	buf = bytesx.AppendUint8(buf, uint8(ext.Type))
	return append(buf, ext.Data...), nil
}
