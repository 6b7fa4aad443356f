package msgpack

// Diagnostics are lightweight callbacks for high-signal encode/decode
// events. Implementations MUST be cheap and non-blocking; do not perform
// I/O. If work may block, buffer it and drop on backpressure (see the
// diagnostics/async subpackage). Diagnostics are purely additive telemetry
// and never affect the result of Serialize/Deserialize.
type Diagnostics interface {
	// OnDecodeError fires when Deserialize fails, with the detected Kind
	// and the byte offset at which the failure was detected. A failure
	// caused by the recursion-depth cap fires OnDepthExceeded instead.
	OnDecodeError(kind Kind, offset int)
	// OnEncodeRejected fires when Serialize rejects a value for being
	// too large to represent (KindArrayTooBig, KindMapTooBig,
	// KindExtTooBig, KindStringTooBig, KindBinaryTooBig).
	OnEncodeRejected(kind Kind, size uint64)
	// OnDepthExceeded fires when Serialize or Deserialize aborts due to
	// the recursion-depth cap (KindDepthExceeded), with the depth at which
	// it was hit.
	OnDepthExceeded(depth int)
}

// NopDiagnostics is a default no-op.
type NopDiagnostics struct{}

func (NopDiagnostics) OnDecodeError(Kind, int)      {}
func (NopDiagnostics) OnEncodeRejected(Kind, uint64) {}
func (NopDiagnostics) OnDepthExceeded(int)          {}

// Multi returns Diagnostics that fan out to all provided implementations,
// in order. Nil entries are ignored. A panic from one observer propagates
// to the caller.
func Multi(ds ...Diagnostics) Diagnostics {
	nn := make([]Diagnostics, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			nn = append(nn, d)
		}
	}
	return multiDiagnostics(nn)
}

type multiDiagnostics []Diagnostics

func (m multiDiagnostics) OnDecodeError(kind Kind, offset int) {
	for _, d := range m {
		d.OnDecodeError(kind, offset)
	}
}

func (m multiDiagnostics) OnEncodeRejected(kind Kind, size uint64) {
	for _, d := range m {
		d.OnEncodeRejected(kind, size)
	}
}

func (m multiDiagnostics) OnDepthExceeded(depth int) {
	for _, d := range m {
		d.OnDepthExceeded(depth)
	}
}

// LoggingDiagnostics bridges Diagnostics events onto a Logger, for callers
// who already have a Logger adapter and don't want a dedicated zap/logrus/
// slog Diagnostics implementation.
type LoggingDiagnostics struct {
	Log Logger
}

func (l LoggingDiagnostics) log() Logger {
	if l.Log == nil {
		return NopLogger{}
	}
	return l.Log
}

func (l LoggingDiagnostics) OnDecodeError(kind Kind, offset int) {
	l.log().Debug("msgpack.decode_error", Fields{"kind": kind.String(), "offset": offset})
}

func (l LoggingDiagnostics) OnEncodeRejected(kind Kind, size uint64) {
	l.log().Warn("msgpack.encode_rejected", Fields{"kind": kind.String(), "size": size})
}

func (l LoggingDiagnostics) OnDepthExceeded(depth int) {
	l.log().Warn("msgpack.depth_exceeded", Fields{"depth": depth})
}
