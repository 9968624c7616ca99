package gioui_test

import (
	"bytes"
	"strings"
	"testing"

	"gioui.org/f32"
	"github.com/vsariola/surface/editor"
	"github.com/vsariola/surface/editor/gioui"
)

type myWriteCloser struct {
	*bytes.Buffer
	closed bool
}

func (mwc *myWriteCloser) Close() error {
	mwc.closed = true
	return nil
}

func newTestSurface() *gioui.Surface {
	prefs := editor.DefaultPreferences()
	prefs.LayoutFile = ""
	pointer := &gioui.GlobalPointer{}
	frames := &gioui.FrameClock{}
	model := editor.NewModel(editor.NewBroker(), pointer, frames, prefs)
	return gioui.NewSurface(model, pointer, frames)
}

func TestSurfaceChrome(t *testing.T) {
	s := newTestSurface()
	s.AddWindow().Do()
	w, ok := s.Windows().Top()
	if !ok {
		t.Fatal("no window after AddWindow")
	}
	chrome, ok := w.Chrome().(*gioui.WindowChrome)
	if !ok {
		t.Fatalf("window chrome is %T, want *gioui.WindowChrome", w.Chrome())
	}
	if chrome.Redraws() == 0 {
		t.Error("chrome never redrawn")
	}
	s.CloseWindow().Do()
	if !chrome.Destroyed() {
		t.Error("chrome not destroyed after the window was closed")
	}
	if s.Windows().Len() != 0 {
		t.Errorf("%d windows after CloseWindow", s.Windows().Len())
	}
}

func TestPointerCancel(t *testing.T) {
	s := newTestSurface()
	s.AddWindow().Do()
	w, _ := s.Windows().Top()
	start := w.Position()
	if !w.StartMove(s.Pointer.Press(start.Add(f32.Pt(20, 10)))) {
		t.Fatal("StartMove refused")
	}
	if got := s.Pointer.Listeners(); got != 1 {
		t.Fatalf("%d listeners during the drag, want 1", got)
	}
	s.Pointer.Cancel()
	if got := s.Pointer.Listeners(); got != 0 {
		t.Errorf("%d listeners after cancel, want 0", got)
	}
	if w.State() != editor.WindowNormal || w.Position() != start {
		t.Errorf("state %v at %v after cancel, want normal at %v", w.State(), w.Position(), start)
	}
}

func TestPointerCancelTrackDrag(t *testing.T) {
	s := newTestSurface()
	for i := 0; i < 3; i++ {
		s.AddTrack().Do()
	}
	order := s.Tracks().Order()
	tr, _ := s.Tracks().Track(order[0])
	g := s.Tracks().Geometry()
	if !tr.StartDrag(s.Pointer.Press(f32.Pt(10, g.Y(0)+5))) {
		t.Fatal("StartDrag refused")
	}
	s.Pointer.Cancel()
	if _, dragging := s.Tracks().Dragged(); dragging {
		t.Error("track still dragged after cancel")
	}
	if got := s.Tracks().Order(); strings.Join(got, ",") != strings.Join(order, ",") {
		t.Errorf("order %v after canceled drag, want %v", got, order)
	}
}

func TestExportTo(t *testing.T) {
	s := newTestSurface()
	s.AddWindow().Do()
	s.AddTrack().Do()
	w := &myWriteCloser{Buffer: new(bytes.Buffer)}
	s.ExportTo(w, "demo")
	if !w.closed {
		t.Error("writer not closed")
	}
	doc := w.String()
	for _, want := range []string{"<title>Demo</title>", "<header>Panel-1</header>", "Track-2</li>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("exported document does not contain %q:\n%v", want, doc)
		}
	}
	found := false
	for _, a := range s.Alerts().Iterate {
		if a.Message == "Layout exported" {
			found = true
		}
	}
	if !found {
		t.Error("no alert after export")
	}
}

func TestQuit(t *testing.T) {
	s := newTestSurface()
	if s.Quitted() {
		t.Fatal("quitted before Quit")
	}
	s.Quit().Do()
	if !s.Quitted() {
		t.Error("not quitted after Quit")
	}
}
