package msgpack

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders o as a JSON-like string for logging and debugging. It is
// not a wire format and carries no round-trip guarantee: Binary is shown
// as a length marker, Extension as its type tag and byte length, and Map
// entries are emitted in the same deterministic bucket order as
// Map.OrderedEntries.
func Format(o Object) string {
	var sb strings.Builder
	format(&sb, o)
	return sb.String()
}

func format(sb *strings.Builder, o Object) {
	switch o.Type() {
	case TypeNil:
		sb.WriteString("nil")
	case TypeBool:
		sb.WriteString(strconv.FormatBool(o.Bool()))
	case TypeInt:
		sb.WriteString(strconv.FormatInt(o.Int(), 10))
	case TypeUInt:
		sb.WriteString(strconv.FormatUint(o.UInt(), 10))
	case TypeFloat32:
		sb.WriteString(strconv.FormatFloat(float64(o.Float32()), 'g', -1, 32))
	case TypeFloat64:
		sb.WriteString(strconv.FormatFloat(o.Float64(), 'g', -1, 64))
	case TypeString:
		sb.WriteString(strconv.Quote(o.Str()))
	case TypeBinary:
		fmt.Fprintf(sb, "binary(%d bytes)", len(o.Binary()))
	case TypeArray:
		formatArray(sb, o.Array())
	case TypeMap:
		formatMap(sb, o.Map())
	case TypeExtension:
		ext := o.Extension()
		fmt.Fprintf(sb, "extension(type=%d, %d bytes)", ext.Type, len(ext.Data))
	default:
		sb.WriteString("?")
	}
}

func formatArray(sb *strings.Builder, a *Array) {
	sb.WriteByte('[')
	for i := 0; i < a.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		format(sb, a.Get(i))
	}
	sb.WriteByte(']')
}

func formatMap(sb *strings.Builder, m *Map) {
	sb.WriteByte('{')
	for i, entry := range m.OrderedEntries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		format(sb, entry.Key)
		sb.WriteString(": ")
		format(sb, entry.Value)
	}
	sb.WriteByte('}')
}
