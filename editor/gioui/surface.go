package gioui

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/x/explorer"
	"github.com/vsariola/surface"
	"github.com/vsariola/surface/editor"
	"github.com/vsariola/surface/export"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	// Surface hosts an editor.Model in a gio window: it draws the toolbar,
	// the track list and the floating windows, feeds the pointer and the
	// frames to the engine and runs the file dialogs.
	Surface struct {
		Theme     *Theme
		Pointer   *GlobalPointer
		Frames    *FrameClock
		TrackList *TrackListView
		AlertList *AlertList
		Explorer  *explorer.Explorer
		Exploring bool
		Toolbar   []*ActionButton

		quitted bool

		*editor.Model
	}

	openLayout   Surface
	saveLayout   Surface
	saveLayoutAs Surface
	exportLayout Surface
	quit         Surface
)

func NewSurface(model *editor.Model, pointer *GlobalPointer, frames *FrameClock) *Surface {
	s := &Surface{
		Theme:     NewTheme(),
		Pointer:   pointer,
		Frames:    frames,
		AlertList: &AlertList{},
		Model:     model,
	}
	s.TrackList = NewTrackListView(model, pointer)
	model.NewChrome = func(id string) editor.Chrome {
		return NewWindowChrome(s.Theme, pointer)
	}
	s.Toolbar = []*ActionButton{
		NewActionButton(s.OpenLayout(), icons.FileFolderOpen, "Open layout (Ctrl+O)"),
		NewActionButton(s.SaveLayout(), icons.ContentSave, "Save layout (Ctrl+S)"),
		NewActionButton(s.ExportLayout(), icons.FileFileDownload, "Export layout as HTML (Ctrl+E)"),
		NewActionButton(model.AddTrack(), icons.ContentAdd, "Add track (Ctrl+T)"),
		NewActionButton(model.RemoveTrack(), icons.ActionDelete, "Delete track (Del)"),
		NewActionButton(model.MoveTrackUp(), icons.NavigationArrowUpward, "Move track up (Ctrl+Up)"),
		NewActionButton(model.MoveTrackDown(), icons.NavigationArrowDownward, "Move track down (Ctrl+Down)"),
		NewActionButton(model.AddWindow(), icons.ImageCropSquare, "Add window (Ctrl+N)"),
		NewActionButton(model.ToggleMinimized(), icons.NavigationExpandLess, "Minimize or restore top window (Ctrl+M)"),
		NewActionButton(model.CloseWindow(), icons.ContentClear, "Close top window (Ctrl+W)"),
		NewActionButton(s.Quit(), icons.ActionExitToApp, "Quit (Ctrl+Q)"),
	}
	return s
}

func (s *Surface) Main() {
	autosaveTicker := time.NewTicker(time.Second * 30)
	var ops op.Ops
	titlePath := ""
	w := s.newWindow()
	w.Option(app.Title(titleFromPath(titlePath)))
	s.Explorer = explorer.NewExplorer(w)
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
F:
	for {
		select {
		case msg := <-s.Broker().ToGUI:
			s.ProcessMsg(msg)
			w.Invalidate()
		case <-s.Broker().CloseGUI:
			s.quitted = true
			w.Perform(system.ActionClose)
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				if titlePath != s.FilePath() {
					titlePath = s.FilePath()
					w.Option(app.Title(titleFromPath(titlePath)))
				}
				gtx := app.NewContext(&ops, e)
				s.Layout(gtx)
				e.Frame(gtx.Ops)
				if s.quitted {
					w.Perform(system.ActionClose)
				}
			}
			acks <- struct{}{}
		case <-autosaveTicker.C:
			s.Autosave()
		}
	}
	autosaveTicker.Stop()
	s.Autosave()
	close(s.Broker().FinishedGUI)
}

func (s *Surface) newWindow() *app.Window {
	prefs := s.Preferences()
	w := new(app.Window)
	w.Option(app.Size(unit.Dp(prefs.Window.Width), unit.Dp(prefs.Window.Height)))
	if prefs.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func titleFromPath(path string) string {
	if path == "" {
		return "Surface"
	}
	return fmt.Sprintf("Surface - %s", path)
}

// Layout draws one frame. The workspace below the toolbar is the coordinate
// space of the engine: window positions and the track geometry are relative
// to its top left corner, in dp.
func (s *Surface) Layout(gtx C) {
	s.Animator().Tick(gtx.Now)
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Theme.Material.Bg)
	event.Op(gtx.Ops, s)
	s.handleKeys(gtx)

	toolbarHeight := gtx.Dp(s.Theme.Toolbar.Height)
	s.layoutToolbar(gtx, image.Pt(gtx.Constraints.Max.X, toolbarHeight))

	ws := gtx
	ws.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, max(gtx.Constraints.Max.Y-toolbarHeight, 0)))
	stack := op.Offset(image.Pt(0, toolbarHeight)).Push(ws.Ops)
	s.layoutWorkspace(ws)
	s.AlertList.Layout(ws, s.Theme, s.Alerts(), s.Frames)
	stack.Pop()

	s.Frames.Flush(gtx)
}

func (s *Surface) layoutWorkspace(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	viewport := ToDp(gtx, layout.FPt(gtx.Constraints.Max))
	s.Windows().SetViewport(surface.Sz(viewport.X, viewport.Y))
	s.Tracks().SetGeometry(s.Preferences().TrackGeometry())

	s.TrackList.Layout(gtx, s.Theme)
	for _, w := range s.Windows().Stack() {
		chrome, ok := w.Chrome().(*WindowChrome)
		if !ok {
			continue
		}
		stack := op.Offset(ToPx(gtx, w.Position())).Push(gtx.Ops)
		chrome.Layout(gtx, w)
		stack.Pop()
	}
	s.Pointer.Layout(gtx)
}

func (s *Surface) layoutToolbar(gtx C, size image.Point) {
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, s.Theme.Toolbar.Bg)
	gtx.Constraints = layout.Exact(size)
	children := make([]layout.FlexChild, 0, len(s.Toolbar)+1)
	for _, b := range s.Toolbar {
		children = append(children, layout.Rigid(func(gtx C) D {
			return b.Layout(gtx, s.Theme)
		}))
	}
	children = append(children, layout.Flexed(1, func(gtx C) D {
		label := fmt.Sprintf("%d windows, %d tracks", s.Windows().Len(), s.Tracks().Len())
		if s.ChangedSinceSave() {
			label += " (unsaved)"
		}
		return layout.Inset{Right: unit.Dp(12)}.Layout(gtx, func(gtx C) D {
			style := s.Theme.Label
			style.Alignment = layout.E
			style.Color = mediumEmphasisTextColor
			return Label(s.Theme, &style, label).Layout(gtx)
		})
	}))
	layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func (s *Surface) handleKeys(gtx C) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameDeleteForward},
			key.Filter{Name: key.NameUpArrow, Required: key.ModShortcut},
			key.Filter{Name: key.NameDownArrow, Required: key.ModShortcut},
			key.Filter{Name: "N", Required: key.ModShortcut},
			key.Filter{Name: "T", Required: key.ModShortcut},
			key.Filter{Name: "W", Required: key.ModShortcut},
			key.Filter{Name: "M", Required: key.ModShortcut},
			key.Filter{Name: "O", Required: key.ModShortcut},
			key.Filter{Name: "S", Required: key.ModShortcut, Optional: key.ModShift},
			key.Filter{Name: "E", Required: key.ModShortcut},
			key.Filter{Name: "Q", Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		switch e.Name {
		case key.NameEscape:
			// ends any drag in progress without committing it
			s.Pointer.Cancel()
		case key.NameDeleteForward:
			s.RemoveTrack().Do()
		case key.NameUpArrow:
			s.MoveTrackUp().Do()
		case key.NameDownArrow:
			s.MoveTrackDown().Do()
		case "N":
			s.AddWindow().Do()
		case "T":
			s.AddTrack().Do()
		case "W":
			s.CloseWindow().Do()
		case "M":
			s.ToggleMinimized().Do()
		case "O":
			s.OpenLayout().Do()
		case "S":
			if e.Modifiers.Contain(key.ModShift) {
				s.SaveLayoutAs().Do()
			} else {
				s.SaveLayout().Do()
			}
		case "E":
			s.ExportLayout().Do()
		case "Q":
			s.Quit().Do()
		}
	}
}

// Quitted reports if the user has asked to quit; the main loop closes the
// window after the frame.
func (s *Surface) Quitted() bool { return s.quitted }

func (s *Surface) explorerChooseFile(success func(io.ReadCloser), extensions ...string) {
	s.Exploring = true
	go func() {
		file, err := s.Explorer.ChooseFile(extensions...)
		s.Broker().ToGUI <- editor.MsgToGUI{Func: func() {
			s.Exploring = false
			if err == nil {
				success(file)
			} else if err != explorer.ErrUserDecline {
				s.Alerts().Add(err.Error(), editor.Error)
			}
		}}
	}()
}

func (s *Surface) explorerCreateFile(success func(io.WriteCloser), filename string) {
	s.Exploring = true
	go func() {
		file, err := s.Explorer.CreateFile(filename)
		s.Broker().ToGUI <- editor.MsgToGUI{Func: func() {
			s.Exploring = false
			if err == nil {
				success(file)
			} else if err != explorer.ErrUserDecline {
				s.Alerts().Add(err.Error(), editor.Error)
			}
		}}
	}()
}

// ExportTo writes the current layout as a standalone HTML page.
func (s *Surface) ExportTo(w io.WriteCloser, name string) {
	defer w.Close()
	e, err := export.New(name)
	if err != nil {
		s.Alerts().Add(fmt.Sprintf("Error creating exporter: %v", err), editor.Error)
		return
	}
	g := s.Preferences().TrackGeometry()
	e.TrackTop, e.TrackHeight = g.Top, g.Height
	doc, err := e.Document(s.Snapshot(), ".html")
	if err != nil {
		s.Alerts().Add(fmt.Sprintf("Error exporting layout: %v", err), editor.Error)
		return
	}
	if _, err := w.Write(doc); err != nil {
		s.Alerts().Add(fmt.Sprintf("Error writing exported layout: %v", err), editor.Error)
		return
	}
	s.Alerts().AddNamed("Export", "Layout exported", editor.Info)
}

func (s *Surface) layoutName() string {
	p := s.FilePath()
	if p == "" {
		return "layout"
	}
	return strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
}

// OpenLayout

func (s *Surface) OpenLayout() editor.Action { return editor.MakeAction((*openLayout)(s)) }
func (s *openLayout) Enabled() bool          { return !s.Exploring }
func (s *openLayout) Do() {
	(*Surface)(s).explorerChooseFile(s.ReadLayout, ".yml", ".yaml")
}

// SaveLayout

func (s *Surface) SaveLayout() editor.Action { return editor.MakeAction((*saveLayout)(s)) }
func (s *saveLayout) Enabled() bool          { return !s.Exploring }
func (s *saveLayout) Do() {
	if p := s.FilePath(); p != "" {
		f, err := os.Create(p)
		if err != nil {
			s.Alerts().Add(fmt.Sprintf("Error saving layout: %v", err), editor.Error)
			return
		}
		s.WriteLayout(f)
		return
	}
	(*Surface)(s).SaveLayoutAs().Do()
}

// SaveLayoutAs

func (s *Surface) SaveLayoutAs() editor.Action { return editor.MakeAction((*saveLayoutAs)(s)) }
func (s *saveLayoutAs) Enabled() bool          { return !s.Exploring }
func (s *saveLayoutAs) Do() {
	(*Surface)(s).explorerCreateFile(s.WriteLayout, (*Surface)(s).layoutName()+".yml")
}

// ExportLayout

func (s *Surface) ExportLayout() editor.Action { return editor.MakeAction((*exportLayout)(s)) }
func (s *exportLayout) Enabled() bool          { return !s.Exploring }
func (s *exportLayout) Do() {
	name := (*Surface)(s).layoutName()
	(*Surface)(s).explorerCreateFile(func(w io.WriteCloser) {
		(*Surface)(s).ExportTo(w, name)
	}, name+".html")
}

// Quit

func (s *Surface) Quit() editor.Action { return editor.MakeAction((*quit)(s)) }
func (s *quit) Do()                    { s.quitted = true }
