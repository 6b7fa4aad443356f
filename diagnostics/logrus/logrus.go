// Package logrus adapts msgpack.Diagnostics onto a *logrus.Entry.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/msgpack"
)

// Diagnostics bridges msgpack's Diagnostics events onto a *logrus.Entry.
type Diagnostics struct{ E *logrus.Entry }

var _ msgpack.Diagnostics = Diagnostics{}

func (d Diagnostics) OnDecodeError(kind msgpack.Kind, offset int) {
	d.E.WithFields(logrus.Fields{"kind": kind.String(), "offset": offset}).Debug("msgpack.decode_error")
}

func (d Diagnostics) OnEncodeRejected(kind msgpack.Kind, size uint64) {
	d.E.WithFields(logrus.Fields{"kind": kind.String(), "size": size}).Warn("msgpack.encode_rejected")
}

func (d Diagnostics) OnDepthExceeded(depth int) {
	d.E.WithFields(logrus.Fields{"depth": depth}).Warn("msgpack.depth_exceeded")
}
