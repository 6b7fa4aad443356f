package msgpack

// Extension is a MessagePack value carrying a signed 8-bit type tag and
// an arbitrary byte payload. Tags 0..127 are for application use; tags
// -1..-128 are reserved, with -1 defined as Timestamp (see timestamp.go).
type Extension struct {
	Type int8
	Data []byte
}

// Equal reports whether e and other have the same Type and byte-exact Data.
func (e Extension) Equal(other Extension) bool {
	return e.Type == other.Type && bytesEqual(e.Data, other.Data)
}

// IsTimestamp reports whether e carries the reserved Timestamp type tag
// and a payload length the Timestamp wire formats recognize (4, 8, or 12
// bytes). A -1-tagged Extension with any other payload length is a valid
// general Extension but not a Timestamp.
func (e Extension) IsTimestamp() bool {
	if e.Type != timestampExtType {
		return false
	}
	switch len(e.Data) {
	case 4, 8, 12:
		return true
	default:
		return false
	}
}
