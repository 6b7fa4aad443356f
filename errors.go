package msgpack

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies the class of failure returned by Serialize or Deserialize.
// It carries no payload beyond its own value, per spec.
type Kind int

const (
	// KindNone is the zero value; never appears on a returned error.
	KindNone Kind = iota

	// KindNoData is returned by Deserialize when the input buffer is empty.
	KindNoData
	// KindInvalidIndex is returned when the starting cursor is at or past
	// the end of the buffer.
	KindInvalidIndex
	// KindIncomplete is returned when a format header or its payload
	// extends past the end of the buffer.
	KindIncomplete
	// KindInvalidFormatType is returned when the reserved 0xC1 byte is
	// encountered on decode, or when Serialize is given an Object in an
	// impossible state.
	KindInvalidFormatType
	// KindArrayTooBig is returned when an Array's length exceeds 2^32-1.
	KindArrayTooBig
	// KindMapTooBig is returned when a Map's total length exceeds 2^32-1.
	KindMapTooBig
	// KindExtTooBig is returned when an Extension's payload exceeds
	// 2^32-1 bytes.
	KindExtTooBig
	// KindStringTooBig is returned when a String's byte length exceeds
	// 2^32-1.
	KindStringTooBig
	// KindBinaryTooBig is returned when a Binary's byte length exceeds
	// 2^32-1.
	KindBinaryTooBig
	// KindDepthExceeded is returned when Array/Map nesting exceeds the
	// recursion-depth cap: during decode the configured or default cap,
	// during encode the cap set by EncodeOptions.MaxDepth.
	KindDepthExceeded
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNoData:
		return "no_data"
	case KindInvalidIndex:
		return "invalid_index"
	case KindIncomplete:
		return "incomplete"
	case KindInvalidFormatType:
		return "invalid_format_type"
	case KindArrayTooBig:
		return "array_too_big"
	case KindMapTooBig:
		return "map_too_big"
	case KindExtTooBig:
		return "ext_too_big"
	case KindStringTooBig:
		return "string_too_big"
	case KindBinaryTooBig:
		return "binary_too_big"
	case KindDepthExceeded:
		return "depth_exceeded"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by Serialize and Deserialize.
// Offset is the byte position at which the error was detected, or -1 when
// not applicable (e.g. a pure Object-shape error on encode).
type Error struct {
	Kind   Kind
	Offset int
	cause  error
}

func newError(kind Kind, offset int) *Error {
	return &Error{Kind: kind, Offset: offset}
}

func wrapError(kind Kind, offset int, cause error, context string) *Error {
	return &Error{Kind: kind, Offset: offset, cause: errors.WithMessage(cause, context)}
}

func (e *Error) Error() string {
	if e.cause != nil {
		if e.Offset >= 0 {
			return fmt.Sprintf("msgpack: %s at offset %d: %v", e.Kind, e.Offset, e.cause)
		}
		return fmt.Sprintf("msgpack: %s: %v", e.Kind, e.cause)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("msgpack: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("msgpack: %s", e.Kind)
}

// Unwrap exposes the underlying cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the Kind carried by err if err is (or wraps) an *Error,
// and KindNone otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}
