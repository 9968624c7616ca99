package editor

import (
	"gioui.org/f32"
	"github.com/vsariola/surface"
)

type (
	// Window is a floating panel owned by a WindowManager. Its position and
	// size change only through its own drag handles or through the explicit
	// methods below; all methods are no-ops once the window is closed.
	Window struct {
		id      string
		title   string
		manager *WindowManager
		chrome  Chrome

		position       f32.Point
		size           surface.Size
		minSize        surface.Size
		titleBarHeight float32
		restoreHeight  float32
		minimized      bool
		state          WindowState
		closed         bool

		move   *Drag
		resize *Drag
	}

	// WindowState is the transient interaction state of a window. Being
	// minimized is independent of it.
	WindowState int

	// WindowConfig describes a window to be added to a WindowManager.
	WindowConfig struct {
		ID             string
		Title          string
		Position       f32.Point
		Size           surface.Size
		MinSize        surface.Size
		TitleBarHeight float32
		// Chrome is the visual subtree of the window; nil for a headless
		// window.
		Chrome Chrome
	}

	// Chrome is the visual part of a window that the host builds: background,
	// title bar, buttons and content mask. Redraw rebuilds it from v. The
	// view carries no position: the chrome is laid out relative to the window
	// and cannot move it. Destroy is called exactly once, when the window is
	// closed or its manager destroyed.
	Chrome interface {
		Redraw(v WindowView)
		Destroy()
	}

	// WindowView is what the chrome needs to know to draw a window.
	WindowView struct {
		ID             string
		Title          string
		Size           surface.Size
		TitleBarHeight float32
		Minimized      bool
		Focused        bool
		State          WindowState
	}
)

const (
	WindowNormal WindowState = iota
	WindowDragging
	WindowResizing
)

const (
	defaultTitleBarHeight = 24
	// ResizeHandleSize is the edge length of the square resize handle at the
	// bottom-right corner.
	ResizeHandleSize = 14
)

func (w *Window) ID() string              { return w.id }
func (w *Window) Title() string           { return w.title }
func (w *Window) Position() f32.Point     { return w.position }
func (w *Window) Size() surface.Size      { return w.size }
func (w *Window) MinSize() surface.Size   { return w.minSize }
func (w *Window) TitleBarHeight() float32 { return w.titleBarHeight }
func (w *Window) Minimized() bool         { return w.minimized }
func (w *Window) State() WindowState      { return w.state }
func (w *Window) Closed() bool            { return w.closed }
func (w *Window) RestoreHeight() float32  { return w.restoreHeight }
func (w *Window) MoveDrag() *Drag         { return w.move }
func (w *Window) ResizeDrag() *Drag       { return w.resize }
func (w *Window) Focused() bool           { return !w.closed && w.manager.top() == w }
func (w *Window) ZOrder() int             { return w.manager.zOrder(w) }
func (w *Window) Bounds() surface.Rect    { return rectAt(w.position, w.size) }
func (w *Window) TitleBar() surface.Rect  { return rectAt(w.position, surface.Sz(w.size.Width, w.titleBarHeight)) }
func (w *Window) View() WindowView        { return w.view() }
func (w *Window) Chrome() Chrome          { return w.chrome }

// ResizeHandle returns the bounds of the bottom-right resize handle.
func (w *Window) ResizeHandle() surface.Rect {
	corner := w.position.Add(w.size.Point())
	return surface.Rect{Min: corner.Sub(f32.Pt(ResizeHandleSize, ResizeHandleSize)), Max: corner}
}

// Content returns the box available for the window's content, below the
// title bar. It is empty while the window is minimized or closed.
func (w *Window) Content() surface.Rect {
	if w.closed || w.minimized {
		return surface.Rect{Min: w.position, Max: w.position}
	}
	return surface.Rect{
		Min: w.position.Add(f32.Pt(0, w.titleBarHeight)),
		Max: w.position.Add(w.size.Point()),
	}
}

// PointerDown must be called by the host for every press anywhere inside the
// window; it raises the window to the top of the stack.
func (w *Window) PointerDown() {
	w.BringToFront()
}

// BringToFront moves the window to the top of its manager's stack.
func (w *Window) BringToFront() {
	if w.closed {
		return
	}
	w.manager.BringToFront(w.id)
}

// StartMove starts dragging the window by its title bar. It is ignored if
// the window is already being dragged or resized.
func (w *Window) StartMove(ev PointerEvent) bool {
	if w.closed || w.state != WindowNormal {
		return false
	}
	w.BringToFront()
	return w.move.Start(ev, w.position)
}

// StartResize starts resizing the window by its bottom-right handle. It is
// ignored if the window is already being dragged or resized.
func (w *Window) StartResize(ev PointerEvent) bool {
	if w.closed || w.state != WindowNormal {
		return false
	}
	w.BringToFront()
	return w.resize.Start(ev, w.size.Point())
}

// MoveTo places the window at p and commits the move.
func (w *Window) MoveTo(p f32.Point) {
	if w.closed {
		return
	}
	w.position = p
	w.manager.commitMove(w)
}

// ResizeTo sets the size of the window, clamped to its minimum size, and
// commits it. While minimized only the width changes; the height is
// remembered for restoring.
func (w *Window) ResizeTo(s surface.Size) {
	if w.closed {
		return
	}
	s = s.Max(w.minSize)
	if w.minimized {
		w.restoreHeight = s.Height
	}
	w.setSize(s)
	w.manager.commitResize(w)
}

func (w *Window) Minimize() { w.SetMinimized(true) }
func (w *Window) Restore()  { w.SetMinimized(false) }

func (w *Window) ToggleMinimized() { w.SetMinimized(!w.minimized) }

// SetMinimized collapses the window to its title bar or restores the height
// it had before. The width and position are not affected.
func (w *Window) SetMinimized(minimized bool) {
	if w.closed || w.minimized == minimized {
		return
	}
	if minimized {
		w.restoreHeight = w.size.Height
		w.minimized = true
		w.size.Height = w.titleBarHeight
	} else {
		w.minimized = false
		w.size.Height = max(w.restoreHeight, w.minSize.Height)
	}
	w.Redraw()
	w.manager.broker.Window.Publish(WindowMinimized{ID: w.id, Minimized: minimized})
}

// Redraw rebuilds the chrome of the window. It never touches the position or
// size, so it is safe to call at any time, any number of times.
func (w *Window) Redraw() {
	if w.closed || w.chrome == nil {
		return
	}
	w.chrome.Redraw(w.view())
}

// Close destroys the window's chrome and releases its id in the manager.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.manager.Remove(w.id)
}

func (w *Window) view() WindowView {
	return WindowView{
		ID:             w.id,
		Title:          w.title,
		Size:           w.size,
		TitleBarHeight: w.titleBarHeight,
		Minimized:      w.minimized,
		Focused:        w.Focused(),
		State:          w.state,
	}
}

// setSize applies s, keeping the invariants: width at least the minimum
// width, height at least the minimum height unless minimized, in which case
// it equals the title bar height.
func (w *Window) setSize(s surface.Size) {
	s.Width = max(s.Width, w.minSize.Width)
	if w.minimized {
		s.Height = w.titleBarHeight
	} else {
		s.Height = max(s.Height, w.minSize.Height)
	}
	w.size = s
}

func (w *Window) handleDrag(msg DragMsg) {
	part := TargetOf(msg).Part
	switch msg := msg.(type) {
	case DragStarted:
		if part == PartTitleBar {
			w.state = WindowDragging
		} else {
			w.state = WindowResizing
		}
		w.Redraw()
	case DragMoved:
		if part == PartTitleBar {
			w.position = msg.EntityOrigin.Add(msg.Delta)
			return
		}
		w.setSize(surface.Sz(msg.EntityOrigin.X, msg.EntityOrigin.Y).Add(msg.Delta))
		w.Redraw()
	case DragEnded:
		w.state = WindowNormal
		if part == PartTitleBar {
			w.position = msg.EntityOrigin.Add(msg.Delta)
			w.manager.commitMove(w)
		} else {
			w.setSize(surface.Sz(msg.EntityOrigin.X, msg.EntityOrigin.Y).Add(msg.Delta))
			w.manager.commitResize(w)
		}
		w.Redraw()
	}
}

func (s WindowState) String() string {
	switch s {
	case WindowNormal:
		return "normal"
	case WindowDragging:
		return "dragging"
	case WindowResizing:
		return "resizing"
	}
	return "unknown"
}

func rectAt(p f32.Point, s surface.Size) surface.Rect {
	return surface.Rect{Min: p, Max: p.Add(s.Point())}
}
