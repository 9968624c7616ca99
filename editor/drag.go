package editor

import (
	"gioui.org/f32"
)

type (
	// PointerKind is the kind of a raw pointer event delivered by the host.
	PointerKind int

	// PointerEvent is a raw pointer event in global (surface) coordinates.
	PointerEvent struct {
		Kind     PointerKind
		Position f32.Point
	}

	// PointerSource delivers every pointer event of the whole surface, no
	// matter which element is under the pointer. Drag sessions listen here
	// instead of on their handle, because a fast drag easily outruns the
	// handle's hit area.
	PointerSource interface {
		Subscribe(fn func(PointerEvent)) (unsubscribe func())
	}

	// Drag turns the raw pointer events of one handle into a drag session:
	// a DragStarted message, a DragMoved message per pointer move and a
	// DragEnded message, all published on the broker's drag bus. A Drag has
	// at most one session at a time.
	Drag struct {
		target DragTarget
		source PointerSource
		bus    *Bus[DragMsg]

		active       bool
		origin       f32.Point
		entityOrigin f32.Point
		latest       f32.Point
		unsubscribe  func()
	}
)

const (
	PointerPress PointerKind = iota
	PointerDrag
	PointerRelease
	// PointerReleaseOutside is a release that happened outside the surface.
	// It ends a session exactly like PointerRelease.
	PointerReleaseOutside
	PointerCancel
)

func NewDrag(target DragTarget, source PointerSource, bus *Bus[DragMsg]) *Drag {
	return &Drag{target: target, source: source, bus: bus}
}

func (d *Drag) Target() DragTarget { return d.target }

func (d *Drag) Active() bool { return d.active }

// Delta returns the pointer displacement of the current session.
func (d *Drag) Delta() f32.Point {
	if !d.active {
		return f32.Point{}
	}
	return d.latest.Sub(d.origin)
}

// Start begins a session from the press ev. entityOrigin is the value of the
// dragged property (position or size) at the start; it is carried in every
// message so the owner can compute the new value as entityOrigin + delta.
// Start returns false and does nothing if a session is already active.
func (d *Drag) Start(ev PointerEvent, entityOrigin f32.Point) bool {
	if d.active {
		return false
	}
	d.active = true
	d.origin = ev.Position
	d.latest = ev.Position
	d.entityOrigin = entityOrigin
	d.unsubscribe = d.source.Subscribe(d.handle)
	d.bus.Publish(DragStarted{Source: d, Target: d.target, Origin: d.origin, EntityOrigin: entityOrigin})
	return true
}

// Move updates the session with a new pointer position.
func (d *Drag) Move(ev PointerEvent) {
	if !d.active {
		return
	}
	d.latest = ev.Position
	d.bus.Publish(DragMoved{Source: d, Target: d.target, Pointer: d.latest, Delta: d.latest.Sub(d.origin), EntityOrigin: d.entityOrigin})
}

// End finishes the session at ev and releases the global listener.
func (d *Drag) End(ev PointerEvent) {
	if !d.active {
		return
	}
	d.latest = ev.Position
	d.finish(ev.Kind == PointerCancel)
}

// Cancel ends an active session at the last known pointer position, with
// the Canceled flag set.
func (d *Drag) Cancel() {
	if !d.active {
		return
	}
	d.finish(true)
}

func (d *Drag) finish(canceled bool) {
	d.active = false
	if d.unsubscribe != nil {
		unsubscribe := d.unsubscribe
		d.unsubscribe = nil
		unsubscribe()
	}
	d.bus.Publish(DragEnded{
		Source:       d,
		Target:       d.target,
		Pointer:      d.latest,
		Delta:        d.latest.Sub(d.origin),
		EntityOrigin: d.entityOrigin,
		Canceled:     canceled,
	})
}

func (d *Drag) handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDrag:
		d.Move(ev)
	case PointerRelease, PointerReleaseOutside, PointerCancel:
		d.End(ev)
	}
}
