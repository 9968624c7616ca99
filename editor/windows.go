package editor

import (
	"fmt"
	"iter"

	"gioui.org/f32"
	"github.com/vsariola/surface"
)

// WindowManager owns a set of floating windows: it enforces unique ids, keeps
// the stacking order (render order, bottom first) and applies the drag
// messages of the windows' title bars and resize handles.
type WindowManager struct {
	broker  *Broker
	pointer PointerSource

	windows map[string]*Window
	stack   []*Window

	grid      float32
	viewport  surface.Size
	destroyed bool

	unsubscribe func()
}

// reachableWidth is how much of a window's title bar is kept inside the
// viewport when the viewport shrinks or a window is dropped near its edge.
const reachableWidth = 48

func NewWindowManager(broker *Broker, pointer PointerSource) *WindowManager {
	m := &WindowManager{
		broker:  broker,
		pointer: pointer,
		windows: map[string]*Window{},
	}
	m.unsubscribe = broker.Drag.Subscribe(m.handleDrag)
	return m
}

// Add creates a window from cfg and puts it on top of the stack. Adding an id
// that is already registered fails with ErrDuplicateID and leaves the
// existing window untouched.
func (m *WindowManager) Add(cfg WindowConfig) (*Window, error) {
	if m.destroyed {
		return nil, fmt.Errorf("adding window %q: %w", cfg.ID, ErrDestroyed)
	}
	if cfg.ID == "" {
		return nil, fmt.Errorf("adding window: %w", ErrEmptyID)
	}
	if _, ok := m.windows[cfg.ID]; ok {
		return nil, fmt.Errorf("adding window %q: %w", cfg.ID, ErrDuplicateID)
	}
	titleBar := cfg.TitleBarHeight
	if titleBar <= 0 {
		titleBar = defaultTitleBarHeight
	}
	w := &Window{
		id:             cfg.ID,
		title:          cfg.Title,
		manager:        m,
		chrome:         cfg.Chrome,
		position:       cfg.Position,
		titleBarHeight: titleBar,
		minSize:        surface.Sz(max(cfg.MinSize.Width, 0), max(cfg.MinSize.Height, titleBar)),
	}
	w.setSize(cfg.Size)
	w.restoreHeight = w.size.Height
	w.move = NewDrag(DragTarget{Owner: w.id, Part: PartTitleBar}, m.pointer, &m.broker.Drag)
	w.resize = NewDrag(DragTarget{Owner: w.id, Part: PartResizeHandle}, m.pointer, &m.broker.Drag)
	m.windows[w.id] = w
	prevTop := m.top()
	m.stack = append(m.stack, w)
	if prevTop != nil {
		prevTop.Redraw()
	}
	w.Redraw()
	m.broker.Window.Publish(WindowAdded{ID: w.id})
	return w, nil
}

// Remove closes the window with the given id: its drag sessions end, its
// chrome is destroyed and the id becomes free again. Removing an unknown id
// fails with ErrUnknownID and changes nothing.
func (m *WindowManager) Remove(id string) error {
	w, ok := m.windows[id]
	if !ok {
		return fmt.Errorf("removing window %q: %w", id, ErrUnknownID)
	}
	wasTop := m.top() == w
	delete(m.windows, id)
	m.stack = deleteWindow(m.stack, w)
	m.dispose(w)
	m.broker.Window.Publish(WindowClosed{ID: id})
	if top := m.top(); wasTop && top != nil {
		top.Redraw()
	}
	return nil
}

// Window returns the window with the given id.
func (m *WindowManager) Window(id string) (*Window, bool) {
	w, ok := m.windows[id]
	return w, ok
}

// Len returns the number of registered windows.
func (m *WindowManager) Len() int { return len(m.windows) }

// Stack iterates the windows in render order, bottom first.
func (m *WindowManager) Stack() iter.Seq2[int, *Window] {
	return func(yield func(int, *Window) bool) {
		for i, w := range m.stack {
			if !yield(i, w) {
				return
			}
		}
	}
}

// IDs returns the window ids in render order, bottom first.
func (m *WindowManager) IDs() []string {
	ret := make([]string, len(m.stack))
	for i, w := range m.stack {
		ret[i] = w.id
	}
	return ret
}

// Top returns the window on top of the stack.
func (m *WindowManager) Top() (*Window, bool) {
	w := m.top()
	return w, w != nil
}

// WindowAt returns the topmost window containing the global point p.
func (m *WindowManager) WindowAt(p f32.Point) (*Window, bool) {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].Bounds().Contains(p) {
			return m.stack[i], true
		}
	}
	return nil, false
}

// BringToFront moves the window to the top of the stack. Unknown ids are
// ignored.
func (m *WindowManager) BringToFront(id string) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	prevTop := m.top()
	if prevTop == w {
		return
	}
	m.stack = append(deleteWindow(m.stack, w), w)
	prevTop.Redraw()
	w.Redraw()
	m.broker.Window.Publish(WindowFocused{ID: id})
}

// SetGrid sets the grid committed window positions are snapped to; 0
// disables snapping.
func (m *WindowManager) SetGrid(grid float32) { m.grid = grid }

// SetViewport tells the manager the size of the area the windows live in.
// Windows are moved so that their title bars stay reachable. A zero size
// disables the constraint.
func (m *WindowManager) SetViewport(s surface.Size) {
	if m.viewport == s {
		return
	}
	m.viewport = s
	for _, w := range m.stack {
		if w.state != WindowNormal {
			continue // the drag commits on release
		}
		if p := m.constrain(w, w.position); p != w.position {
			w.position = p
			m.broker.Window.Publish(WindowMoved{ID: w.id, Position: p})
		}
	}
}

// Destroy closes every window and detaches the manager from the broker.
// Afterwards the manager is empty and refuses new windows.
func (m *WindowManager) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	stack := m.stack
	m.stack = nil
	clear(m.windows)
	for _, w := range stack {
		m.dispose(w)
		m.broker.Window.Publish(WindowClosed{ID: w.id})
	}
	m.unsubscribe()
}

func (m *WindowManager) dispose(w *Window) {
	w.closed = true
	// the window is already unregistered, so the DragEnded messages of the
	// canceled sessions fall on the floor
	w.move.Cancel()
	w.resize.Cancel()
	w.state = WindowNormal
	if w.chrome != nil {
		w.chrome.Destroy()
		w.chrome = nil
	}
}

func (m *WindowManager) commitMove(w *Window) {
	w.position = m.constrain(w, SnapPoint(w.position, m.grid))
	m.broker.Window.Publish(WindowMoved{ID: w.id, Position: w.position})
}

func (m *WindowManager) commitResize(w *Window) {
	m.broker.Window.Publish(WindowResized{ID: w.id, Size: w.size})
}

func (m *WindowManager) constrain(w *Window, p f32.Point) f32.Point {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return p
	}
	keep := min(w.size.Width, reachableWidth)
	p.X = min(max(p.X, keep-w.size.Width), m.viewport.Width-keep)
	p.Y = min(max(p.Y, 0), max(m.viewport.Height-w.titleBarHeight, 0))
	return p
}

func (m *WindowManager) handleDrag(msg DragMsg) {
	t := TargetOf(msg)
	if t.Part != PartTitleBar && t.Part != PartResizeHandle {
		return
	}
	w, ok := m.windows[t.Owner]
	if !ok {
		return
	}
	if src := SourceOf(msg); src == w.move || src == w.resize {
		w.handleDrag(msg)
	}
}

func (m *WindowManager) top() *Window {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *WindowManager) zOrder(w *Window) int {
	for i, o := range m.stack {
		if o == w {
			return i
		}
	}
	return -1
}

func deleteWindow(s []*Window, w *Window) []*Window {
	ret := make([]*Window, 0, len(s))
	for _, o := range s {
		if o != w {
			ret = append(ret, o)
		}
	}
	return ret
}
