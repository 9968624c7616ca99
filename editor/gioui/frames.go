package gioui

import (
	"gioui.org/op"
)

// FrameClock is the display refresh of the surface for the editor's
// animator: RequestFrame marks that another frame is wanted, and the
// surface turns the mark into an invalidation at the end of each frame.
type FrameClock struct {
	pending bool
}

func (f *FrameClock) RequestFrame() { f.pending = true }

// Flush asks gio for another frame if one was requested since the last
// flush.
func (f *FrameClock) Flush(gtx C) {
	if !f.pending {
		return
	}
	f.pending = false
	gtx.Execute(op.InvalidateCmd{})
}
