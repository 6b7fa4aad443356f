//go:build go1.21

// Package slog adapts msgpack.Diagnostics onto a *slog.Logger.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/msgpack"
)

// Diagnostics bridges msgpack's Diagnostics events onto a *slog.Logger.
type Diagnostics struct{ L *stdslog.Logger }

var _ msgpack.Diagnostics = Diagnostics{}

func (d Diagnostics) OnDecodeError(kind msgpack.Kind, offset int) {
	d.L.LogAttrs(context.Background(), stdslog.LevelDebug, "msgpack.decode_error",
		stdslog.String("kind", kind.String()), stdslog.Int("offset", offset))
}

func (d Diagnostics) OnEncodeRejected(kind msgpack.Kind, size uint64) {
	d.L.LogAttrs(context.Background(), stdslog.LevelWarn, "msgpack.encode_rejected",
		stdslog.String("kind", kind.String()), stdslog.Uint64("size", size))
}

func (d Diagnostics) OnDepthExceeded(depth int) {
	d.L.LogAttrs(context.Background(), stdslog.LevelWarn, "msgpack.depth_exceeded",
		stdslog.Int("depth", depth))
}
