package editor_test

import (
	"time"

	"gioui.org/f32"
	"github.com/vsariola/surface/editor"
)

// fakePointer is a PointerSource that the tests drive by hand. It counts the
// subscriptions, so that tests can check that drag sessions release their
// listeners.
type fakePointer struct {
	subs         []*pointerSub
	subscribed   int
	unsubscribed int
}

type pointerSub struct {
	fn   func(editor.PointerEvent)
	gone bool
}

func (p *fakePointer) Subscribe(fn func(editor.PointerEvent)) func() {
	s := &pointerSub{fn: fn}
	p.subs = append(p.subs, s)
	p.subscribed++
	return func() {
		if s.gone {
			return
		}
		s.gone = true
		p.unsubscribed++
	}
}

// Listeners returns the number of live subscriptions.
func (p *fakePointer) Listeners() int {
	return p.subscribed - p.unsubscribed
}

func (p *fakePointer) send(kind editor.PointerKind, x, y float32) {
	subs := append([]*pointerSub(nil), p.subs...)
	for _, s := range subs {
		if !s.gone {
			s.fn(editor.PointerEvent{Kind: kind, Position: f32.Pt(x, y)})
		}
	}
}

func (p *fakePointer) Drag(x, y float32)           { p.send(editor.PointerDrag, x, y) }
func (p *fakePointer) Release(x, y float32)        { p.send(editor.PointerRelease, x, y) }
func (p *fakePointer) ReleaseOutside(x, y float32) { p.send(editor.PointerReleaseOutside, x, y) }
func (p *fakePointer) Cancel(x, y float32)         { p.send(editor.PointerCancel, x, y) }

func press(x, y float32) editor.PointerEvent {
	return editor.PointerEvent{Kind: editor.PointerPress, Position: f32.Pt(x, y)}
}

type fakeFrames struct {
	requests int
}

func (f *fakeFrames) RequestFrame() { f.requests++ }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// fakeChrome records what the window manager asks of the chrome.
type fakeChrome struct {
	redraws   int
	destroyed int
	last      editor.WindowView
}

func (c *fakeChrome) Redraw(v editor.WindowView) {
	c.redraws++
	c.last = v
}

func (c *fakeChrome) Destroy() { c.destroyed++ }

type testEnv struct {
	broker   *editor.Broker
	pointer  *fakePointer
	frames   *fakeFrames
	clock    *fakeClock
	animator *editor.Animator
}

func newTestEnv() *testEnv {
	e := &testEnv{
		broker:  editor.NewBroker(),
		pointer: &fakePointer{},
		frames:  &fakeFrames{},
		clock:   &fakeClock{now: time.Unix(1000, 0)},
	}
	e.animator = editor.NewAnimator(e.frames)
	e.animator.Now = e.clock.Now
	return e
}

// settle runs frames until the animator is idle.
func (e *testEnv) settle() {
	for i := 0; i < 100 && e.animator.Len() > 0; i++ {
		e.animator.Tick(e.clock.Advance(16 * time.Millisecond))
	}
}

func (e *testEnv) newWindowManager() *editor.WindowManager {
	return editor.NewWindowManager(e.broker, e.pointer)
}

func (e *testEnv) newTrackList(height float32, ids ...string) *editor.TrackList {
	l := editor.NewTrackList(e.broker, e.pointer, e.animator, editor.TrackGeometry{Height: height})
	for _, id := range ids {
		if _, err := l.Add(id, id); err != nil {
			panic(err)
		}
	}
	return l
}
