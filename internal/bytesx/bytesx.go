// Package bytesx provides stateless, endian-aware reads and writes of
// fixed-width integers and IEEE-754 floats into/out of a byte slice at a
// given offset. Every multi-byte wire field in MessagePack is big-endian;
// this package performs the conversion as pure functions regardless of
// host byte order, so no part of the codec may assume or depend on host
// endianness.
package bytesx

import "math"

// AppendUint8 appends a single byte.
func AppendUint8(buf []byte, v uint8) []byte {
	return append(buf, v)
}

// AppendUint16 appends v as big-endian.
func AppendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

// AppendUint32 appends v as big-endian.
func AppendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// AppendUint64 appends v as big-endian.
func AppendUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v),
	)
}

// AppendFloat32 appends the IEEE-754 binary32 bit pattern of v, big-endian.
func AppendFloat32(buf []byte, v float32) []byte {
	return AppendUint32(buf, math.Float32bits(v))
}

// AppendFloat64 appends the IEEE-754 binary64 bit pattern of v, big-endian.
func AppendFloat64(buf []byte, v float64) []byte {
	return AppendUint64(buf, math.Float64bits(v))
}

// Uint8 reads a single byte at offset 0 of b. Caller must ensure len(b) >= 1.
func Uint8(b []byte) uint8 { return b[0] }

// Uint16 reads a big-endian uint16 from the first 2 bytes of b.
// Caller must ensure len(b) >= 2.
func Uint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

// Uint32 reads a big-endian uint32 from the first 4 bytes of b.
// Caller must ensure len(b) >= 4.
func Uint32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Uint64 reads a big-endian uint64 from the first 8 bytes of b.
// Caller must ensure len(b) >= 8.
func Uint64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// Float32 reads an IEEE-754 binary32 from the first 4 bytes of b, big-endian.
func Float32(b []byte) float32 {
	return math.Float32frombits(Uint32(b))
}

// Float64 reads an IEEE-754 binary64 from the first 8 bytes of b, big-endian.
func Float64(b []byte) float64 {
	return math.Float64frombits(Uint64(b))
}

// Int8 sign-extends a raw byte into int64.
func Int8(b []byte) int64 { return int64(int8(b[0])) }

// Int16 sign-extends a big-endian int16 into int64.
func Int16(b []byte) int64 { return int64(int16(Uint16(b))) }

// Int32 sign-extends a big-endian int32 into int64.
func Int32(b []byte) int64 { return int64(int32(Uint32(b))) }

// Int64 reads a big-endian int64.
func Int64(b []byte) int64 { return int64(Uint64(b)) }
