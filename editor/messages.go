package editor

import (
	"gioui.org/f32"
	"github.com/vsariola/surface"
)

type (
	// Part identifies which handle of an entity a drag session belongs to.
	Part int

	// DragTarget is the identity of a drag handle: the id of the entity
	// owning it and which part of the entity it is.
	DragTarget struct {
		Owner string
		Part  Part
	}

	// DragMsg is published by a Drag controller on the drag bus. The variants
	// are DragStarted, DragMoved and DragEnded. Source is the controller that
	// published the message. Target owners are unique only within one engine,
	// so an engine matches the Source against its own controllers.
	DragMsg interface {
		dragTarget() DragTarget
		dragSource() *Drag
	}

	DragStarted struct {
		Source *Drag
		Target DragTarget
		// Origin is the global pointer position of the press, EntityOrigin
		// the entity value (position or size) at that moment.
		Origin       f32.Point
		EntityOrigin f32.Point
	}

	DragMoved struct {
		Source       *Drag
		Target       DragTarget
		Pointer      f32.Point
		Delta        f32.Point
		EntityOrigin f32.Point
	}

	DragEnded struct {
		Source       *Drag
		Target       DragTarget
		Pointer      f32.Point
		Delta        f32.Point
		EntityOrigin f32.Point
		// Canceled is true if the host canceled the gesture instead of the
		// pointer being released.
		Canceled bool
	}

	// WindowMsg is published by a WindowManager. The variants are
	// WindowAdded, WindowFocused, WindowMoved, WindowResized,
	// WindowMinimized and WindowClosed.
	WindowMsg interface {
		windowID() string
	}

	WindowAdded struct{ ID string }

	WindowFocused struct{ ID string }

	// WindowMoved is published when a move is committed, i.e. on release.
	WindowMoved struct {
		ID       string
		Position f32.Point
	}

	// WindowResized is published when a resize is committed.
	WindowResized struct {
		ID   string
		Size surface.Size
	}

	WindowMinimized struct {
		ID        string
		Minimized bool
	}

	WindowClosed struct{ ID string }

	// TrackMsg is published by a TrackList. The variants are TrackAdded,
	// TrackRemoved, TrackPreviewed and TrackReordered.
	TrackMsg interface {
		trackID() string
	}

	TrackAdded struct {
		ID    string
		Index int
	}

	TrackRemoved struct{ ID string }

	// TrackPreviewed is published on every crossover of a drag, i.e. when
	// the slot the dragged track would land in changes.
	TrackPreviewed struct {
		ID          string
		TargetIndex int
	}

	// TrackReordered is published when a reorder is committed.
	TrackReordered struct {
		TrackID  string
		NewIndex int
	}
)

const (
	PartTitleBar Part = iota
	PartResizeHandle
	PartTrackHandle
)

func (m DragStarted) dragTarget() DragTarget { return m.Target }
func (m DragMoved) dragTarget() DragTarget   { return m.Target }
func (m DragEnded) dragTarget() DragTarget   { return m.Target }

func (m DragStarted) dragSource() *Drag { return m.Source }
func (m DragMoved) dragSource() *Drag   { return m.Source }
func (m DragEnded) dragSource() *Drag   { return m.Source }

func (m WindowAdded) windowID() string     { return m.ID }
func (m WindowFocused) windowID() string   { return m.ID }
func (m WindowMoved) windowID() string     { return m.ID }
func (m WindowResized) windowID() string   { return m.ID }
func (m WindowMinimized) windowID() string { return m.ID }
func (m WindowClosed) windowID() string    { return m.ID }

func (m TrackAdded) trackID() string     { return m.ID }
func (m TrackRemoved) trackID() string   { return m.ID }
func (m TrackPreviewed) trackID() string { return m.ID }
func (m TrackReordered) trackID() string { return m.TrackID }

// TargetOf returns the drag handle a drag message is about.
func TargetOf(m DragMsg) DragTarget { return m.dragTarget() }

// SourceOf returns the controller that published a drag message.
func SourceOf(m DragMsg) *Drag { return m.dragSource() }

func (p Part) String() string {
	switch p {
	case PartTitleBar:
		return "title bar"
	case PartResizeHandle:
		return "resize handle"
	case PartTrackHandle:
		return "track handle"
	}
	return "unknown part"
}
