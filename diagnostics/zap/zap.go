// Package zap adapts msgpack.Diagnostics onto a *zap.Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/msgpack"
)

// Diagnostics bridges msgpack's Diagnostics events onto a *zap.Logger.
type Diagnostics struct{ L *zap.Logger }

var _ msgpack.Diagnostics = Diagnostics{}

func (d Diagnostics) OnDecodeError(kind msgpack.Kind, offset int) {
	d.L.Debug("msgpack.decode_error", zap.String("kind", kind.String()), zap.Int("offset", offset))
}

func (d Diagnostics) OnEncodeRejected(kind msgpack.Kind, size uint64) {
	d.L.Warn("msgpack.encode_rejected", zap.String("kind", kind.String()), zap.Uint64("size", size))
}

func (d Diagnostics) OnDepthExceeded(depth int) {
	d.L.Warn("msgpack.depth_exceeded", zap.Int("depth", depth))
}
