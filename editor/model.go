package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gioui.org/f32"
	"github.com/vsariola/surface"
)

// Model is the whole state of one editor surface: the floating windows, the
// track list, the animator they share, the alerts and the preferences. The
// GUI reads the state from the Model and manipulates it through Actions and
// the methods of the windows and tracks.
type Model struct {
	// NewChrome builds the visual part of a window created by the model,
	// e.g. by the AddWindow action or when a layout is applied. If nil, the
	// windows are headless.
	NewChrome func(id string) Chrome

	broker   *Broker
	animator *Animator
	windows  *WindowManager
	tracks   *TrackList
	alerts   Alerts
	prefs    Preferences

	selectedTrack string
	nextID        int

	filePath             string
	changedSinceSave     bool
	changedSinceAutosave bool
	closed               bool

	saving      sync.WaitGroup
	unsubscribe []func()
}

func NewModel(broker *Broker, pointer PointerSource, frames FrameRequester, prefs Preferences) *Model {
	m := &Model{
		broker:   broker,
		animator: NewAnimator(frames),
		prefs:    prefs,
	}
	m.windows = NewWindowManager(broker, pointer)
	m.windows.SetGrid(prefs.Grid)
	m.tracks = NewTrackList(broker, pointer, m.animator, prefs.TrackGeometry())
	m.tracks.AnimationDuration = prefs.AnimationDuration()
	m.unsubscribe = []func(){
		broker.Window.Subscribe(m.handleWindow),
		broker.Track.Subscribe(m.handleTrack),
	}
	if prefs.YmlError != nil {
		m.alerts.Add(fmt.Sprintf("Error in preferences.yml: %v", prefs.YmlError), Warning)
	}
	return m
}

func (m *Model) Broker() *Broker                { return m.broker }
func (m *Model) Animator() *Animator            { return m.animator }
func (m *Model) Windows() *WindowManager        { return m.windows }
func (m *Model) Tracks() *TrackList             { return m.tracks }
func (m *Model) Alerts() *Alerts                { return &m.alerts }
func (m *Model) Preferences() Preferences       { return m.prefs }
func (m *Model) SelectedTrack() string          { return m.selectedTrack }
func (m *Model) FilePath() string               { return m.filePath }
func (m *Model) SetFilePath(value string)       { m.filePath = value }
func (m *Model) ChangedSinceSave() bool         { return m.changedSinceSave }
func (m *Model) SetChangedSinceSave(value bool) { m.changedSinceSave = value }

// SelectTrack selects the track with the given id; unknown ids clear the
// selection.
func (m *Model) SelectTrack(id string) {
	if _, ok := m.tracks.Track(id); !ok {
		id = ""
	}
	m.selectedTrack = id
}

// ProcessMsg handles a message sent to the GUI goroutine.
func (m *Model) ProcessMsg(msg MsgToGUI) {
	if msg.Func != nil {
		msg.Func()
	}
	if msg.Alert != nil {
		m.alerts.AddAlert(*msg.Alert)
	}
}

// Snapshot captures the current layout: the windows in stacking order and
// the tracks in canonical order.
func (m *Model) Snapshot() surface.Layout {
	var l surface.Layout
	for _, w := range m.windows.Stack() {
		wl := surface.WindowLayout{
			ID:        w.ID(),
			Title:     w.Title(),
			X:         w.Position().X,
			Y:         w.Position().Y,
			Width:     w.Size().Width,
			Height:    w.Size().Height,
			Minimized: w.Minimized(),
		}
		if wl.Minimized {
			wl.RestoreHeight = w.RestoreHeight()
		}
		l.Windows = append(l.Windows, wl)
	}
	for _, t := range m.tracks.Tracks() {
		l.Tracks = append(l.Tracks, surface.TrackLayout{ID: t.ID(), Name: t.Name()})
	}
	return l
}

// Apply rearranges the surface to match l. Windows and tracks missing from
// l are closed, the ones only in l are created and the rest are moved into
// place.
func (m *Model) Apply(l surface.Layout) error {
	if m.closed {
		return fmt.Errorf("applying layout: %w", ErrDestroyed)
	}
	if err := l.Validate(); err != nil {
		return err
	}
	keep := map[string]bool{}
	for _, wl := range l.Windows {
		keep[wl.ID] = true
	}
	for _, id := range m.windows.IDs() {
		if !keep[id] {
			m.windows.Remove(id)
		}
	}
	for _, wl := range l.Windows {
		height := wl.Height
		if wl.Minimized && wl.RestoreHeight > 0 {
			height = wl.RestoreHeight
		}
		size := surface.Sz(wl.Width, height)
		w, ok := m.windows.Window(wl.ID)
		if !ok {
			cfg := m.prefs.WindowConfig(wl.ID, wl.Title)
			cfg.Position = f32.Pt(wl.X, wl.Y)
			cfg.Size = size
			if m.NewChrome != nil {
				cfg.Chrome = m.NewChrome(wl.ID)
			}
			var err error
			if w, err = m.windows.Add(cfg); err != nil {
				return err
			}
		} else {
			w.Restore()
			w.ResizeTo(size)
			w.MoveTo(f32.Pt(wl.X, wl.Y))
		}
		w.SetMinimized(wl.Minimized)
	}
	for _, wl := range l.Windows {
		m.windows.BringToFront(wl.ID)
	}
	clear(keep)
	ids := make([]string, 0, len(l.Tracks))
	for _, tl := range l.Tracks {
		keep[tl.ID] = true
		ids = append(ids, tl.ID)
	}
	for _, id := range m.tracks.Order() {
		if !keep[id] {
			m.tracks.Remove(id)
		}
	}
	for _, tl := range l.Tracks {
		if _, ok := m.tracks.Track(tl.ID); !ok {
			if _, err := m.tracks.Add(tl.ID, tl.Name); err != nil {
				return err
			}
		}
	}
	if err := m.tracks.SetOrder(ids); err != nil {
		return err
	}
	m.SelectTrack(m.selectedTrack)
	return nil
}

func (m *Model) ReadLayout(r io.ReadCloser) {
	l, err := surface.ReadLayout(r)
	if errClose := r.Close(); err == nil {
		err = errClose
	}
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Error reading a layout file: %v", err), Error)
		return
	}
	if err := m.Apply(l); err != nil {
		m.alerts.Add(fmt.Sprintf("Error applying a layout file: %v", err), Error)
		return
	}
	if f, ok := r.(*os.File); ok {
		m.filePath = f.Name()
		m.changedSinceSave = false
	}
}

func (m *Model) WriteLayout(w io.WriteCloser) {
	if err := m.Snapshot().Write(w); err != nil {
		m.alerts.Add(fmt.Sprintf("Error writing a layout file: %v", err), Error)
		w.Close()
		return
	}
	if err := w.Close(); err != nil {
		m.alerts.Add(fmt.Sprintf("Error closing a layout file: %v", err), Error)
		return
	}
	if f, ok := w.(*os.File); ok {
		m.filePath = f.Name()
		m.changedSinceSave = false
	}
}

// Autosave writes the layout to the autosave file in the background, if it
// has changed since the last autosave. Errors come back to the GUI goroutine
// as alerts through the broker.
func (m *Model) Autosave() {
	if !m.changedSinceAutosave || m.prefs.LayoutFile == "" {
		return
	}
	path, err := ConfigPath(m.prefs.LayoutFile)
	if err != nil {
		m.alerts.AddNamed("Autosave", fmt.Sprintf("Could not autosave the layout: %v", err), Error)
		return
	}
	var buf bytes.Buffer
	if err := m.Snapshot().Write(&buf); err != nil {
		m.alerts.AddNamed("Autosave", fmt.Sprintf("Could not autosave the layout: %v", err), Error)
		return
	}
	m.changedSinceAutosave = false
	m.saving.Add(1)
	go func() {
		defer m.saving.Done()
		if err := writeFile(path, buf.Bytes()); err != nil {
			TrySend(m.broker.ToGUI, MsgToGUI{Alert: &Alert{
				Name:     "Autosave",
				Priority: Error,
				Message:  fmt.Sprintf("Could not autosave the layout: %v", err),
				Duration: defaultAlertDuration,
			}})
		}
	}()
}

// LoadAutosave applies the autosaved layout, if there is one.
func (m *Model) LoadAutosave() {
	if m.prefs.LayoutFile == "" {
		return
	}
	path, err := ConfigPath(m.prefs.LayoutFile)
	if err != nil {
		return
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		m.alerts.Add(fmt.Sprintf("Could not open the autosaved layout: %v", err), Warning)
		return
	}
	m.ReadLayout(f)
	m.filePath = ""
	m.changedSinceAutosave = false
}

// Close waits for the autosaves in progress and destroys the windows and
// tracks. The model refuses to change afterwards.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.saving.Wait()
	m.windows.Destroy()
	m.tracks.Destroy()
	for _, u := range m.unsubscribe {
		u()
	}
	m.closed = true
}

func (m *Model) handleWindow(msg WindowMsg) {
	switch msg.(type) {
	case WindowAdded, WindowFocused, WindowMoved, WindowResized, WindowMinimized, WindowClosed:
		m.changed()
	}
}

func (m *Model) handleTrack(msg TrackMsg) {
	switch msg := msg.(type) {
	case TrackAdded, TrackReordered:
		m.changed()
	case TrackRemoved:
		if msg.ID == m.selectedTrack {
			m.selectedTrack = ""
		}
		m.changed()
	}
}

func (m *Model) changed() {
	m.changedSinceSave = true
	m.changedSinceAutosave = true
}

func (m *Model) newID(prefix string) string {
	for {
		m.nextID++
		id := fmt.Sprintf("%s-%d", prefix, m.nextID)
		_, w := m.windows.Window(id)
		_, t := m.tracks.Track(id)
		if !w && !t {
			return id
		}
	}
}

// writeFile replaces the file at path atomically, so that a reader never
// sees a half written layout.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	_, err = f.Write(data)
	if errClose := f.Close(); err == nil {
		err = errClose
	}
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("could not write file: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("could not replace file: %w", err)
	}
	return nil
}
