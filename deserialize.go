package msgpack

import (
	"github.com/unkn0wn-root/msgpack/internal/bytesx"
	"github.com/unkn0wn-root/msgpack/internal/wire"
)

// Deserialize reads one MessagePack-encoded value from buf starting at
// cursor, and returns the decoded Object together with the cursor
// advanced past the bytes consumed. On error, the returned Object is Nil
// and the returned cursor is left at the position where the error was
// detected: useful for diagnostics, not for resuming decode.
func Deserialize(buf []byte, cursor int) (Object, int, error) {
	return DeserializeOptions(buf, cursor, DecodeOptions{})
}

// DeserializeOptions is Deserialize with explicit tuning (recursion-depth
// cap, diagnostics observer).
func DeserializeOptions(buf []byte, cursor int, opts DecodeOptions) (Object, int, error) {
	diag := opts.diagnostics()

	if len(buf) == 0 {
		diag.OnDecodeError(KindNoData, 0)
		return Nil, cursor, newError(KindNoData, 0)
	}
	if cursor < 0 || cursor >= len(buf) {
		diag.OnDecodeError(KindInvalidIndex, cursor)
		return Nil, cursor, newError(KindInvalidIndex, cursor)
	}

	d := &decoder{buf: buf, diag: diag, maxDepth: opts.maxDepth()}
	return d.decode(cursor, 0)
}

// DecodeAll repeatedly calls Deserialize from cursor 0, collecting Objects
// until the buffer is exhausted. It is fail-fast: the first decode error
// stops the loop and is returned alongside the Objects decoded so far and
// the cursor at the start of the message that failed to decode (not the
// offset inside it where the error was detected; that offset is in the
// returned *Error). This is a convenience helper for
// reading a buffer that holds several consecutive encoded values.
func DecodeAll(buf []byte) ([]Object, int, error) {
	return DecodeAllOptions(buf, DecodeOptions{})
}

// DecodeAllOptions is DecodeAll with explicit tuning.
func DecodeAllOptions(buf []byte, opts DecodeOptions) ([]Object, int, error) {
	var objs []Object
	cursor := 0
	for cursor < len(buf) {
		obj, next, err := DeserializeOptions(buf, cursor, opts)
		if err != nil {
			return objs, cursor, err
		}
		objs = append(objs, obj)
		cursor = next
	}
	return objs, cursor, nil
}

type decoder struct {
	buf      []byte
	diag     Diagnostics
	maxDepth int // -1 = unbounded
}

func (d *decoder) need(pos, n int) bool {
	if n < 0 || pos < 0 {
		return false
	}
	return n <= len(d.buf)-pos
}

func (d *decoder) fail(kind Kind, offset int) (Object, int, error) {
	d.diag.OnDecodeError(kind, offset)
	return Nil, offset, newError(kind, offset)
}

func (d *decoder) decode(cursor int, depth int) (Object, int, error) {
	if d.maxDepth >= 0 && depth > d.maxDepth {
		d.diag.OnDepthExceeded(depth)
		return Nil, cursor, newError(KindDepthExceeded, cursor)
	}
	if cursor >= len(d.buf) {
		return d.fail(KindIncomplete, cursor)
	}

	b := d.buf[cursor]
	pos := cursor + 1

	switch wire.Format(b) {
	case wire.Nil:
		return Nil, pos, nil
	case wire.False:
		return NewBool(false), pos, nil
	case wire.True:
		return NewBool(true), pos, nil
	case wire.NeverUsed:
		return d.fail(KindInvalidFormatType, cursor)

	case wire.Uint8:
		return d.decodeUint(cursor, pos, 1)
	case wire.Uint16:
		return d.decodeUint(cursor, pos, 2)
	case wire.Uint32:
		return d.decodeUint(cursor, pos, 4)
	case wire.Uint64:
		return d.decodeUint(cursor, pos, 8)

	case wire.Int8:
		return d.decodeInt(cursor, pos, 1)
	case wire.Int16:
		return d.decodeInt(cursor, pos, 2)
	case wire.Int32:
		return d.decodeInt(cursor, pos, 4)
	case wire.Int64:
		return d.decodeInt(cursor, pos, 8)

	case wire.Float32:
		if !d.need(pos, 4) {
			return d.fail(KindIncomplete, cursor)
		}
		return NewFloat32(bytesx.Float32(d.buf[pos : pos+4])), pos + 4, nil
	case wire.Float64:
		if !d.need(pos, 8) {
			return d.fail(KindIncomplete, cursor)
		}
		return NewFloat64(bytesx.Float64(d.buf[pos : pos+8])), pos + 8, nil

	case wire.Str8:
		return d.decodeStrLenPrefixed(cursor, pos, 1)
	case wire.Str16:
		return d.decodeStrLenPrefixed(cursor, pos, 2)
	case wire.Str32:
		return d.decodeStrLenPrefixed(cursor, pos, 4)

	case wire.Bin8:
		return d.decodeBinLenPrefixed(cursor, pos, 1)
	case wire.Bin16:
		return d.decodeBinLenPrefixed(cursor, pos, 2)
	case wire.Bin32:
		return d.decodeBinLenPrefixed(cursor, pos, 4)

	case wire.Array16:
		return d.decodeArrayLenPrefixed(cursor, pos, 2, depth)
	case wire.Array32:
		return d.decodeArrayLenPrefixed(cursor, pos, 4, depth)

	case wire.Map16:
		return d.decodeMapLenPrefixed(cursor, pos, 2, depth)
	case wire.Map32:
		return d.decodeMapLenPrefixed(cursor, pos, 4, depth)

	case wire.Fixext1:
		return d.decodeExtFixed(cursor, pos, 1)
	case wire.Fixext2:
		return d.decodeExtFixed(cursor, pos, 2)
	case wire.Fixext4:
		return d.decodeExtFixed(cursor, pos, 4)
	case wire.Fixext8:
		return d.decodeExtFixed(cursor, pos, 8)
	case wire.Fixext16:
		return d.decodeExtFixed(cursor, pos, 16)

	case wire.Ext8:
		return d.decodeExtLenPrefixed(cursor, pos, 1)
	case wire.Ext16:
		return d.decodeExtLenPrefixed(cursor, pos, 2)
	case wire.Ext32:
		return d.decodeExtLenPrefixed(cursor, pos, 4)
	}

	switch {
	case wire.IsPosFixint(b):
		return NewInt(int64(b)), pos, nil
	case wire.IsNegFixint(b):
		return NewInt(wire.NegFixintValue(b)), pos, nil
	case wire.IsFixstr(b):
		return d.decodeStrFixed(cursor, pos, wire.FixstrLen(b))
	case wire.IsFixarray(b):
		return d.decodeArrayFixed(cursor, pos, wire.FixarrayLen(b), depth)
	case wire.IsFixmap(b):
		return d.decodeMapFixed(cursor, pos, wire.FixmapLen(b), depth)
	}

	return d.fail(KindInvalidFormatType, cursor)
}

func (d *decoder) decodeUint(cursor, pos, width int) (Object, int, error) {
	if !d.need(pos, width) {
		return d.fail(KindIncomplete, cursor)
	}
	data := d.buf[pos : pos+width]
	var v uint64
	switch width {
	case 1:
		v = uint64(bytesx.Uint8(data))
	case 2:
		v = uint64(bytesx.Uint16(data))
	case 4:
		v = uint64(bytesx.Uint32(data))
	case 8:
		v = bytesx.Uint64(data)
	}
	return NewUInt(v), pos + width, nil
}

func (d *decoder) decodeInt(cursor, pos, width int) (Object, int, error) {
	if !d.need(pos, width) {
		return d.fail(KindIncomplete, cursor)
	}
	data := d.buf[pos : pos+width]
	var v int64
	switch width {
	case 1:
		v = bytesx.Int8(data)
	case 2:
		v = bytesx.Int16(data)
	case 4:
		v = bytesx.Int32(data)
	case 8:
		v = bytesx.Int64(data)
	}
	return NewInt(v), pos + width, nil
}

func (d *decoder) readLen(cursor, pos, lenWidth int) (uint64, int, error) {
	if !d.need(pos, lenWidth) {
		_, off, err := d.fail(KindIncomplete, cursor)
		return 0, off, err
	}
	data := d.buf[pos : pos+lenWidth]
	switch lenWidth {
	case 1:
		return uint64(bytesx.Uint8(data)), pos + lenWidth, nil
	case 2:
		return uint64(bytesx.Uint16(data)), pos + lenWidth, nil
	default:
		return uint64(bytesx.Uint32(data)), pos + lenWidth, nil
	}
}

func (d *decoder) decodeStrFixed(cursor, pos, length int) (Object, int, error) {
	if !d.need(pos, length) {
		return d.fail(KindIncomplete, cursor)
	}
	return NewString(string(d.buf[pos : pos+length])), pos + length, nil
}

func (d *decoder) decodeStrLenPrefixed(cursor, pos, lenWidth int) (Object, int, error) {
	l, payloadStart, err := d.readLen(cursor, pos, lenWidth)
	if err != nil {
		return Nil, payloadStart, err
	}
	return d.decodeStrFixed(cursor, payloadStart, int(l))
}

func (d *decoder) decodeBinFixed(cursor, pos, length int) (Object, int, error) {
	if !d.need(pos, length) {
		return d.fail(KindIncomplete, cursor)
	}
	cp := make([]byte, length)
	copy(cp, d.buf[pos:pos+length])
	return NewBinary(cp), pos + length, nil
}

func (d *decoder) decodeBinLenPrefixed(cursor, pos, lenWidth int) (Object, int, error) {
	l, payloadStart, err := d.readLen(cursor, pos, lenWidth)
	if err != nil {
		return Nil, payloadStart, err
	}
	return d.decodeBinFixed(cursor, payloadStart, int(l))
}

func (d *decoder) decodeArrayFixed(cursor, pos, count int, depth int) (Object, int, error) {
	arr := NewEmptyArray()
	cur := pos
	for i := 0; i < count; i++ {
		obj, next, err := d.decode(cur, depth+1)
		if err != nil {
			return Nil, next, err
		}
		arr.Append(obj)
		cur = next
	}
	return NewArray(arr), cur, nil
}

func (d *decoder) decodeArrayLenPrefixed(cursor, pos, lenWidth int, depth int) (Object, int, error) {
	n, payloadStart, err := d.readLen(cursor, pos, lenWidth)
	if err != nil {
		return Nil, payloadStart, err
	}
	return d.decodeArrayFixed(cursor, payloadStart, int(n), depth)
}

func (d *decoder) decodeMapFixed(cursor, pos, count int, depth int) (Object, int, error) {
	m := NewEmptyMap()
	cur := pos
	for i := 0; i < count; i++ {
		key, next, err := d.decode(cur, depth+1)
		if err != nil {
			return Nil, next, err
		}
		cur = next

		val, next2, err := d.decode(cur, depth+1)
		if err != nil {
			return Nil, next2, err
		}
		cur = next2

		if setErr := m.Set(key, val); setErr != nil {
			return d.fail(KindInvalidFormatType, cur)
		}
	}
	return NewMap(m), cur, nil
}

func (d *decoder) decodeMapLenPrefixed(cursor, pos, lenWidth int, depth int) (Object, int, error) {
	n, payloadStart, err := d.readLen(cursor, pos, lenWidth)
	if err != nil {
		return Nil, payloadStart, err
	}
	return d.decodeMapFixed(cursor, payloadStart, int(n), depth)
}

func (d *decoder) decodeExtFixed(cursor, pos, length int) (Object, int, error) {
	if !d.need(pos, 1+length) {
		return d.fail(KindIncomplete, cursor)
	}
	typ := int8(d.buf[pos])
	cp := make([]byte, length)
	copy(cp, d.buf[pos+1:pos+1+length])
	return NewExtension(Extension{Type: typ, Data: cp}), pos + 1 + length, nil
}

func (d *decoder) decodeExtLenPrefixed(cursor, pos, lenWidth int) (Object, int, error) {
	l, afterLen, err := d.readLen(cursor, pos, lenWidth)
	if err != nil {
		return Nil, afterLen, err
	}
	return d.decodeExtFixed(cursor, afterLen, int(l))
}
