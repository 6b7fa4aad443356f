package msgpack

import "github.com/unkn0wn-root/msgpack/internal/bytesx"

// timestampExtType is the reserved extension type tag (-1) for Timestamp.
const timestampExtType int8 = -1

// nsecMask34 masks the low 34 bits used to carry seconds in the 8-byte
// timestamp form (64 bits total = 30 bits nanoseconds + 34 bits seconds).
const nsecMask34 = (uint64(1) << 34) - 1

// IsTimestamp reports whether o is a Timestamp extension: type -1 with a
// payload length of 4, 8, or 12 bytes.
func IsTimestamp(o Object) bool {
	if o.Type() != TypeExtension {
		return false
	}
	return o.Extension().IsTimestamp()
}

// ToTimestamp decodes o into (seconds, nanoseconds). Returns an error of
// Kind KindInvalidFormatType if o is not a valid Timestamp extension.
func ToTimestamp(o Object) (sec int64, nsec uint32, err error) {
	if o.Type() != TypeExtension {
		return 0, 0, newError(KindInvalidFormatType, -1)
	}
	ext := o.Extension()
	if ext.Type != timestampExtType {
		return 0, 0, newError(KindInvalidFormatType, -1)
	}
	switch len(ext.Data) {
	case 4:
		sec = int64(bytesx.Uint32(ext.Data))
		return sec, 0, nil
	case 8:
		combined := bytesx.Uint64(ext.Data)
		nsec = uint32(combined >> 34)
		sec = int64(combined & nsecMask34)
		return sec, nsec, nil
	case 12:
		nsec = bytesx.Uint32(ext.Data[0:4])
		sec = bytesx.Int64(ext.Data[4:12])
		return sec, nsec, nil
	default:
		return 0, 0, newError(KindInvalidFormatType, -1)
	}
}

// FromTimestamp encodes (sec, nsec) as the narrowest valid Timestamp
// extension form:
//
//   - 4 bytes, if nsec == 0 and sec fits in an unsigned 32-bit value.
//   - 8 bytes, if sec fits in 34 unsigned bits and nsec fits in 30 bits
//     (true for any normalized nanosecond count 0..999999999).
//   - 12 bytes, otherwise: full int64 seconds plus uint32 nanoseconds.
//
// This follows the public MessagePack specification's bit packing for
// the 8-byte form exactly: combined = (nsec << 34) | sec on encode,
// nsec = combined >> 34 and sec = combined & 0x3_FFFF_FFFF on decode.
func FromTimestamp(sec int64, nsec uint32) Object {
	const max32 = (uint64(1) << 32) - 1
	const max34 = (uint64(1) << 34) - 1
	const max30 = (uint32(1) << 30) - 1

	data := make([]byte, 0, 12)

	switch {
	case nsec == 0 && sec >= 0 && uint64(sec) <= max32:
		data = bytesx.AppendUint32(data, uint32(sec))
	case sec >= 0 && uint64(sec) <= max34 && nsec <= max30:
		combined := (uint64(nsec) << 34) | uint64(sec)
		data = bytesx.AppendUint64(data, combined)
	default:
		data = bytesx.AppendUint32(data, nsec)
		data = bytesx.AppendUint64(data, uint64(sec))
	}

	return NewExtension(Extension{Type: timestampExtType, Data: data})
}
