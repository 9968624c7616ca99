package gioui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"github.com/vsariola/surface/editor"
)

// GlobalPointer is the editor.PointerSource of a surface. It covers the whole
// gio window with a pass-through input area, so it sees the moves and the
// release of every press, wherever the pointer goes after it, while the
// widgets underneath still get their own events.
type GlobalPointer struct {
	bus  editor.Bus[editor.PointerEvent]
	size image.Point
	last f32.Point
}

func (p *GlobalPointer) Subscribe(fn func(editor.PointerEvent)) (unsubscribe func()) {
	return p.bus.Subscribe(fn)
}

// Listeners returns the number of active subscribers, i.e. drag sessions in
// progress.
func (p *GlobalPointer) Listeners() int { return p.bus.Len() }

// Layout must be called last in a frame, after every drag handle has handled
// its press, so that it is on top of all other input areas. It forwards the
// drags, releases and cancels of the frame to the subscribers, in surface
// coordinates (dp).
func (p *GlobalPointer) Layout(gtx C) {
	p.size = gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: p.size}).Push(gtx.Ops).Pop()
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, p)
	dispatched := false
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		var kind editor.PointerKind
		switch e.Kind {
		case pointer.Drag:
			kind = editor.PointerDrag
		case pointer.Release:
			kind = editor.PointerRelease
			if !p.inside(e.Position) {
				kind = editor.PointerReleaseOutside
			}
		case pointer.Cancel:
			kind = editor.PointerCancel
		default:
			continue // presses are handled by the handles
		}
		if kind != editor.PointerCancel {
			p.last = ToDp(gtx, e.Position)
		}
		p.bus.Publish(editor.PointerEvent{Kind: kind, Position: p.last})
		dispatched = true
	}
	if dispatched {
		gtx.Execute(op.InvalidateCmd{})
	}
}

// Cancel ends every session in progress at the last known pointer position,
// e.g. when the user presses Escape.
func (p *GlobalPointer) Cancel() {
	p.bus.Publish(editor.PointerEvent{Kind: editor.PointerCancel, Position: p.last})
}

// Press records the position of a press that starts a session, so that a
// cancel before the first move does not jump.
func (p *GlobalPointer) Press(pos f32.Point) editor.PointerEvent {
	p.last = pos
	return editor.PointerEvent{Kind: editor.PointerPress, Position: pos}
}

func (p *GlobalPointer) inside(pos f32.Point) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < float32(p.size.X) && pos.Y < float32(p.size.Y)
}

// ToDp converts a point in pixels to the dp units of the editor.
func ToDp(gtx C, p f32.Point) f32.Point {
	return p.Div(gtx.Metric.PxPerDp)
}

// ToPx converts a point in the dp units of the editor to whole pixels.
func ToPx(gtx C, p f32.Point) image.Point {
	return p.Mul(gtx.Metric.PxPerDp).Round()
}
