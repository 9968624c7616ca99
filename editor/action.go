package editor

import (
	"slices"

	"gioui.org/f32"
)

type (
	// Action describes a user action that can be performed on the model, which
	// can be initiated by calling the Do() method. It is usually initiated by a
	// button press or a menu item. Action advertises whether it is enabled, so
	// UI can e.g. gray out buttons when the underlying action is not allowed.
	// The underlying Doer can optionally implement the Enabler interface to
	// decide if the action is enabled or not; if it does not implement the
	// Enabler interface, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if an Action is enabled or not.
	Enabler interface {
		Enabled() bool
	}

	// DoFunc adapts a plain function to a Doer.
	DoFunc func()
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (f DoFunc) Do() { f() }

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

// addTrack
type addTrack Model

func (m *Model) AddTrack() Action { return MakeAction((*addTrack)(m)) }
func (m *addTrack) Enabled() bool { return !m.closed }
func (m *addTrack) Do() {
	id := (*Model)(m).newID("track")
	if _, err := m.tracks.Add(id, id); err != nil {
		m.alerts.Add(err.Error(), Warning)
		return
	}
	m.selectedTrack = id
}

// removeTrack
type removeTrack Model

func (m *Model) RemoveTrack() Action { return MakeAction((*removeTrack)(m)) }
func (m *removeTrack) Enabled() bool {
	_, ok := m.tracks.Track(m.selectedTrack)
	return ok
}
func (m *removeTrack) Do() {
	i := slices.Index(m.tracks.order, m.selectedTrack)
	if err := m.tracks.Remove(m.selectedTrack); err != nil {
		m.alerts.Add(err.Error(), Warning)
		return
	}
	m.selectedTrack = ""
	if n := m.tracks.Len(); n > 0 {
		m.selectedTrack = m.tracks.order[min(i, n-1)]
	}
}

// moveTrack
type moveTrack struct {
	m     *Model
	delta int
}

func (m *Model) MoveTrackUp() Action   { return MakeAction(&moveTrack{m, -1}) }
func (m *Model) MoveTrackDown() Action { return MakeAction(&moveTrack{m, 1}) }
func (a *moveTrack) Enabled() bool {
	if _, dragging := a.m.tracks.Dragged(); dragging {
		return false
	}
	i := slices.Index(a.m.tracks.order, a.m.selectedTrack)
	return i >= 0 && i+a.delta >= 0 && i+a.delta < a.m.tracks.Len()
}
func (a *moveTrack) Do() { a.m.tracks.MoveTrack(a.m.selectedTrack, a.delta) }

// addWindow
type addWindow Model

func (m *Model) AddWindow() Action { return MakeAction((*addWindow)(m)) }
func (m *addWindow) Enabled() bool { return !m.closed }
func (m *addWindow) Do() {
	id := (*Model)(m).newID("panel")
	cfg := m.prefs.WindowConfig(id, id)
	// cascade new windows so they do not hide each other completely
	offset := float32(m.windows.Len()%8) * m.prefs.Panels.TitleBarHeight
	cfg.Position = cfg.Position.Add(f32.Pt(offset, offset))
	if m.NewChrome != nil {
		cfg.Chrome = m.NewChrome(id)
	}
	if _, err := m.windows.Add(cfg); err != nil {
		m.alerts.Add(err.Error(), Warning)
	}
}

// closeWindow
type closeWindow Model

func (m *Model) CloseWindow() Action { return MakeAction((*closeWindow)(m)) }
func (m *closeWindow) Enabled() bool { return m.windows.Len() > 0 }
func (m *closeWindow) Do() {
	if w, ok := m.windows.Top(); ok {
		w.Close()
	}
}

// toggleMinimized
type toggleMinimized Model

func (m *Model) ToggleMinimized() Action { return MakeAction((*toggleMinimized)(m)) }
func (m *toggleMinimized) Enabled() bool { return m.windows.Len() > 0 }
func (m *toggleMinimized) Do() {
	if w, ok := m.windows.Top(); ok {
		w.ToggleMinimized()
	}
}
