package editor_test

import (
	"errors"
	"reflect"
	"testing"

	"gioui.org/f32"
	"github.com/vsariola/surface"
	"github.com/vsariola/surface/editor"
)

func testWindowConfig(id string, chrome editor.Chrome) editor.WindowConfig {
	return editor.WindowConfig{
		ID:             id,
		Title:          id,
		Position:       f32.Pt(100, 100),
		Size:           surface.Sz(300, 200),
		MinSize:        surface.Sz(100, 80),
		TitleBarHeight: 24,
		Chrome:         chrome,
	}
}

func TestAddDuplicateWindow(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	w, err := m.Add(testWindowConfig("a", nil))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	cfg := testWindowConfig("a", nil)
	cfg.Position = f32.Pt(5, 5)
	if _, err := m.Add(cfg); !errors.Is(err, editor.ErrDuplicateID) {
		t.Errorf("duplicate Add returned %v, want ErrDuplicateID", err)
	}
	if m.Len() != 1 {
		t.Errorf("registry size %d after duplicate add, want 1", m.Len())
	}
	if got, _ := m.Window("a"); got != w || w.Position() != f32.Pt(100, 100) {
		t.Error("duplicate add touched the existing window")
	}
	if _, err := m.Add(testWindowConfig("", nil)); !errors.Is(err, editor.ErrEmptyID) {
		t.Errorf("Add with an empty id returned %v, want ErrEmptyID", err)
	}
}

func TestRemoveWindow(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	chrome := &fakeChrome{}
	w, _ := m.Add(testWindowConfig("a", chrome))
	if err := m.Remove("nope"); !errors.Is(err, editor.ErrUnknownID) {
		t.Errorf("Remove of unknown id returned %v, want ErrUnknownID", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Remove of unknown id changed the registry")
	}
	w.Close()
	if m.Len() != 0 || chrome.destroyed != 1 {
		t.Errorf("after Close: registry size %d, chrome destroyed %d times", m.Len(), chrome.destroyed)
	}
	// operations on a closed window are silent no-ops
	w.Close()
	w.MoveTo(f32.Pt(1, 1))
	w.Minimize()
	w.BringToFront()
	if w.StartMove(press(110, 110)) {
		t.Error("StartMove on a closed window returned true")
	}
	if chrome.destroyed != 1 {
		t.Errorf("chrome destroyed %d times, want 1", chrome.destroyed)
	}
	if _, err := m.Add(testWindowConfig("a", nil)); err != nil {
		t.Errorf("id was not released on close: %v", err)
	}
}

func TestDestroyWindowManager(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	chromes := []*fakeChrome{{}, {}, {}}
	for i, id := range []string{"a", "b", "c"} {
		m.Add(testWindowConfig(id, chromes[i]))
	}
	w, _ := m.Window("b")
	w.StartMove(press(110, 110))
	m.Destroy()
	if m.Len() != 0 {
		t.Errorf("registry size %d after Destroy, want 0", m.Len())
	}
	for i, c := range chromes {
		if c.destroyed != 1 {
			t.Errorf("chrome %d destroyed %d times, want 1", i, c.destroyed)
		}
	}
	if e.pointer.Listeners() != 0 {
		t.Errorf("%d global listeners left after Destroy", e.pointer.Listeners())
	}
	if e.broker.Drag.Len() != 0 {
		t.Errorf("manager still subscribed to the drag bus")
	}
	if _, err := m.Add(testWindowConfig("d", nil)); !errors.Is(err, editor.ErrDestroyed) {
		t.Errorf("Add after Destroy returned %v, want ErrDestroyed", err)
	}
}

func TestResizeClampsToMinSize(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	w, _ := m.Add(testWindowConfig("a", nil))
	// resize handle is at the bottom right corner, (400,300)
	w.StartResize(press(395, 295))
	if w.State() != editor.WindowResizing {
		t.Fatalf("state %v, want resizing", w.State())
	}
	e.pointer.Drag(200, 200)
	e.pointer.Drag(145, 145) // asks for (50,50)
	if got, want := w.Size(), surface.Sz(100, 80); got != want {
		t.Errorf("size during resize %v, want %v", got, want)
	}
	e.pointer.Release(145, 145)
	if got, want := w.Size(), surface.Sz(100, 80); got != want {
		t.Errorf("size %v, want %v", got, want)
	}
	if got, want := w.Position(), f32.Pt(100, 100); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
	if w.State() != editor.WindowNormal {
		t.Errorf("state %v after release, want normal", w.State())
	}
}

func TestMoveWindow(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	var moved []editor.WindowMoved
	e.broker.Window.Subscribe(func(msg editor.WindowMsg) {
		if mv, ok := msg.(editor.WindowMoved); ok {
			moved = append(moved, mv)
		}
	})
	w, _ := m.Add(testWindowConfig("a", nil))
	w.StartMove(press(110, 105))
	e.pointer.Drag(120, 115)
	if got, want := w.Position(), f32.Pt(110, 110); got != want {
		t.Errorf("position during drag %v, want %v", got, want)
	}
	if len(moved) != 0 {
		t.Errorf("move committed before release")
	}
	e.pointer.Release(160, 205)
	if got, want := w.Position(), f32.Pt(150, 200); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
	if want := []editor.WindowMoved{{ID: "a", Position: f32.Pt(150, 200)}}; !reflect.DeepEqual(moved, want) {
		t.Errorf("got %v, want %v", moved, want)
	}
}

func TestWindowManagersShareBroker(t *testing.T) {
	e := newTestEnv()
	m1 := e.newWindowManager()
	m2 := e.newWindowManager()
	w1, _ := m1.Add(testWindowConfig("a", nil))
	w2, _ := m2.Add(testWindowConfig("a", nil))
	w1.StartMove(press(110, 105))
	if w2.State() != editor.WindowNormal {
		t.Errorf("other window state %v, want normal", w2.State())
	}
	e.pointer.Drag(160, 205)
	e.pointer.Release(160, 205)
	if got, want := w1.Position(), f32.Pt(150, 200); got != want {
		t.Errorf("dragged window at %v, want %v", got, want)
	}
	if got, want := w2.Position(), f32.Pt(100, 100); got != want {
		t.Errorf("other window at %v, want %v", got, want)
	}
}

func TestResizeThenDragKeepsPosition(t *testing.T) {
	for _, resizeFirst := range []bool{true, false} {
		e := newTestEnv()
		m := e.newWindowManager()
		chrome := &fakeChrome{}
		w, _ := m.Add(testWindowConfig("a", chrome))
		resize := func() {
			c := w.ResizeHandle().Max
			w.StartResize(press(c.X-1, c.Y-1))
			e.pointer.Drag(c.X+49, c.Y+29)
			e.pointer.Release(c.X+49, c.Y+29)
		}
		move := func() {
			p := w.Position()
			w.StartMove(press(p.X+10, p.Y+10))
			e.pointer.Drag(p.X+30, p.Y+50)
			e.pointer.Release(p.X+30, p.Y+50)
		}
		if resizeFirst {
			resize()
			move()
		} else {
			move()
			resize()
		}
		if got, want := w.Position(), f32.Pt(120, 140); got != want {
			t.Errorf("resizeFirst=%v: position %v, want %v", resizeFirst, got, want)
		}
		if got, want := w.Size(), surface.Sz(350, 230); got != want {
			t.Errorf("resizeFirst=%v: size %v, want %v", resizeFirst, got, want)
		}
		w.Minimize()
		w.Restore()
		w.Redraw()
		if got, want := w.Position(), f32.Pt(120, 140); got != want {
			t.Errorf("resizeFirst=%v: position after minimize toggle %v, want %v", resizeFirst, got, want)
		}
		if chrome.redraws == 0 {
			t.Errorf("chrome never redrawn")
		}
	}
}

func TestMinimizeRestore(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	chrome := &fakeChrome{}
	w, _ := m.Add(testWindowConfig("a", chrome))
	w.Minimize()
	if !w.Minimized() || w.Size() != surface.Sz(300, 24) || w.RestoreHeight() != 200 {
		t.Errorf("minimized: %v size %v restore height %v", w.Minimized(), w.Size(), w.RestoreHeight())
	}
	if !chrome.last.Minimized || chrome.last.Size != surface.Sz(300, 24) {
		t.Errorf("chrome not redrawn as minimized: %+v", chrome.last)
	}
	if !w.Content().Empty() {
		t.Errorf("content of a minimized window is %v, want empty", w.Content())
	}
	// the title bar of a minimized window stays draggable
	w.StartMove(press(110, 110))
	e.pointer.Release(130, 110)
	if got, want := w.Position(), f32.Pt(120, 100); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
	w.ToggleMinimized()
	if w.Minimized() || w.Size() != surface.Sz(300, 200) {
		t.Errorf("restored: %v size %v", w.Minimized(), w.Size())
	}
}

func TestBringToFront(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	for _, id := range []string{"a", "b", "c"} {
		m.Add(testWindowConfig(id, nil))
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(m.IDs(), want) {
		t.Fatalf("stack %v, want %v", m.IDs(), want)
	}
	a, _ := m.Window("a")
	a.PointerDown()
	if want := []string{"b", "c", "a"}; !reflect.DeepEqual(m.IDs(), want) {
		t.Errorf("stack %v, want %v", m.IDs(), want)
	}
	if !a.Focused() || a.ZOrder() != 2 {
		t.Errorf("focused %v zorder %v", a.Focused(), a.ZOrder())
	}
	b, _ := m.Window("b")
	b.StartResize(press(395, 295))
	e.pointer.Release(395, 295)
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(m.IDs(), want) {
		t.Errorf("stack %v, want %v", m.IDs(), want)
	}
	if w, ok := m.WindowAt(f32.Pt(150, 150)); !ok || w != b {
		t.Errorf("WindowAt returned %v, want b", w)
	}
}

func TestMoveSnapsToGrid(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	m.SetGrid(8)
	w, _ := m.Add(testWindowConfig("a", nil))
	w.StartMove(press(110, 110))
	e.pointer.Drag(123, 115)
	if got, want := w.Position(), f32.Pt(113, 105); got != want {
		t.Errorf("position during drag %v, want unsnapped %v", got, want)
	}
	e.pointer.Release(123, 115)
	if got, want := w.Position(), f32.Pt(112, 104); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
}

func TestViewportKeepsTitleBarReachable(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	w, _ := m.Add(testWindowConfig("a", nil))
	m.SetViewport(surface.Sz(800, 600))
	w.StartMove(press(110, 110))
	e.pointer.Release(2000, -300)
	if got, want := w.Position(), f32.Pt(800-48, 0); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
	m.SetViewport(surface.Sz(400, 300))
	if got, want := w.Position(), f32.Pt(400-48, 0); got != want {
		t.Errorf("position after shrinking the viewport %v, want %v", got, want)
	}
}

func TestCanceledMoveCommits(t *testing.T) {
	e := newTestEnv()
	m := e.newWindowManager()
	w, _ := m.Add(testWindowConfig("a", nil))
	w.StartMove(press(110, 110))
	e.pointer.Drag(140, 130)
	e.pointer.Cancel(140, 130)
	if got, want := w.Position(), f32.Pt(130, 120); got != want {
		t.Errorf("position %v, want %v", got, want)
	}
	if w.State() != editor.WindowNormal {
		t.Errorf("state %v, want normal", w.State())
	}
}
