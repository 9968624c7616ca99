package gioui

import (
	"fmt"
	"image"
	"iter"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/x/component"
	"github.com/vsariola/surface/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// WindowChrome draws a floating window: background, title bar with the
	// minimize and close buttons, content and the resize handle. It keeps the
	// last view it was given and draws from it; the position comes from the
	// window at layout time.
	WindowChrome struct {
		theme   *Theme
		pointer *GlobalPointer
		caser   cases.Caser

		view      editor.WindowView
		title     string
		redraws   int
		destroyed bool

		body, titleBar, resizeHandle int // input tags

		minimizeBtn widget.Clickable
		closeBtn    widget.Clickable
		minimizeTip component.TipArea
		closeTip    component.TipArea
	}
)

func NewWindowChrome(th *Theme, p *GlobalPointer) *WindowChrome {
	return &WindowChrome{
		theme:   th,
		pointer: p,
		caser:   cases.Title(language.English),
	}
}

func (c *WindowChrome) Redraw(v editor.WindowView) {
	if c.destroyed {
		return
	}
	if v.Title != c.view.Title || c.title == "" {
		c.title = c.caser.String(v.Title)
	}
	c.view = v
	c.redraws++
}

func (c *WindowChrome) Destroy() { c.destroyed = true }

func (c *WindowChrome) Destroyed() bool { return c.destroyed }

// Redraws returns how many times the window has asked the chrome to redraw.
func (c *WindowChrome) Redraws() int { return c.redraws }

// Layout draws the window in the coordinate space of the window, i.e. the
// caller has already offset the ops to the window's position.
func (c *WindowChrome) Layout(gtx C, w *editor.Window) D {
	if c.destroyed || w.Closed() {
		return D{}
	}
	c.handleEvents(gtx, w)
	if c.destroyed {
		return D{}
	}
	v := &c.view
	size := ToPx(gtx, v.Size.Point())
	titleHeight := gtx.Dp(unit.Dp(v.TitleBarHeight))
	gtx.Constraints = layout.Exact(size)

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &c.body)
	paint.Fill(gtx.Ops, c.theme.Window.Bg)

	if !v.Minimized {
		content := image.Rect(0, titleHeight, size.X, size.Y)
		stack := op.Offset(content.Min).Push(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Exact(content.Size())
		area := clip.Rect(image.Rectangle{Max: content.Size()}).Push(gtx.Ops)
		c.layoutContent(cgtx, w)
		area.Pop()
		stack.Pop()
	}

	c.layoutTitleBar(gtx, image.Pt(size.X, titleHeight))

	if !v.Minimized {
		handle := gtx.Dp(editor.ResizeHandleSize)
		r := image.Rectangle{Min: size.Sub(image.Pt(handle, handle)), Max: size}
		area := clip.Rect(r).Push(gtx.Ops)
		event.Op(gtx.Ops, &c.resizeHandle)
		pointer.CursorNorthWestSouthEastResize.Add(gtx.Ops)
		path := clip.Path{}
		path.Begin(gtx.Ops)
		path.MoveTo(layout.FPt(r.Max))
		path.LineTo(f32.Pt(float32(r.Max.X), float32(r.Min.Y)))
		path.LineTo(f32.Pt(float32(r.Min.X), float32(r.Max.Y)))
		path.Close()
		paint.FillShape(gtx.Ops, c.theme.Window.ResizeHandle, clip.Outline{Path: path.End()}.Op())
		area.Pop()
	}

	border := clip.Stroke{Path: clip.Rect(image.Rectangle{Max: size}).Path(), Width: 1}.Op()
	paint.FillShape(gtx.Ops, c.theme.Window.Border, border)
	return D{Size: size}
}

func (c *WindowChrome) handleEvents(gtx C, w *editor.Window) {
	origin := w.Position()
	for range presses(gtx, &c.body) {
		w.PointerDown()
	}
	for pos := range presses(gtx, &c.titleBar) {
		w.StartMove(c.pointer.Press(origin.Add(pos)))
	}
	for pos := range presses(gtx, &c.resizeHandle) {
		w.StartResize(c.pointer.Press(origin.Add(pos)))
	}
	for c.minimizeBtn.Clicked(gtx) {
		w.ToggleMinimized()
	}
	for c.closeBtn.Clicked(gtx) {
		w.Close()
	}
}

// presses yields the positions, in dp relative to the input area of tag, of
// the primary button presses on it.
func presses(gtx C, tag event.Tag) iter.Seq[f32.Point] {
	return func(yield func(f32.Point) bool) {
		for {
			ev, ok := gtx.Event(pointer.Filter{Target: tag, Kinds: pointer.Press})
			if !ok {
				return
			}
			e, ok := ev.(pointer.Event)
			if !ok || e.Kind != pointer.Press || !e.Buttons.Contain(pointer.ButtonPrimary) {
				continue
			}
			if !yield(ToDp(gtx, e.Position)) {
				return
			}
		}
	}
}

func (c *WindowChrome) layoutTitleBar(gtx C, size image.Point) {
	v := &c.view
	bg := c.theme.Window.TitleBar
	switch {
	case v.State == editor.WindowDragging:
		bg = c.theme.Window.DraggingTitle
	case v.Focused:
		bg = c.theme.Window.FocusedTitle
	}
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, bg)
	gtx.Constraints = layout.Exact(size)

	minimizeIcon, minimizeTip := icons.NavigationExpandLess, "Minimize"
	if v.Minimized {
		minimizeIcon, minimizeTip = icons.NavigationExpandMore, "Restore"
	}
	layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			area := clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops)
			event.Op(gtx.Ops, &c.titleBar)
			if v.State == editor.WindowDragging {
				pointer.CursorGrabbing.Add(gtx.Ops)
			} else {
				pointer.CursorGrab.Add(gtx.Ops)
			}
			area.Pop()
			gtx.Constraints.Min = gtx.Constraints.Max
			layout.Inset{Left: unit.Dp(8)}.Layout(gtx, Label(c.theme, &c.theme.Window.Title, c.title).Layout)
			return D{Size: gtx.Constraints.Max}
		}),
		layout.Rigid(func(gtx C) D {
			btn := IconButton(c.theme, &c.minimizeBtn, minimizeIcon, minimizeTip, true)
			btn.Inset = layout.UniformInset(unit.Dp(2))
			btn.Size = unit.Dp(v.TitleBarHeight - 4)
			return c.minimizeTip.Layout(gtx, Tooltip(c.theme, minimizeTip), btn.Layout)
		}),
		layout.Rigid(func(gtx C) D {
			btn := IconButton(c.theme, &c.closeBtn, icons.ContentClear, "Close", true)
			btn.Inset = layout.UniformInset(unit.Dp(2))
			btn.Size = unit.Dp(v.TitleBarHeight - 4)
			return c.closeTip.Layout(gtx, Tooltip(c.theme, "Close"), btn.Layout)
		}),
	)
}

func (c *WindowChrome) layoutContent(gtx C, w *editor.Window) D {
	v := &c.view
	pos := w.Position()
	lines := []string{
		v.ID,
		fmt.Sprintf("%.0f × %.0f", v.Size.Width, v.Size.Height),
		fmt.Sprintf("at %.0f, %.0f", pos.X, pos.Y),
	}
	if v.State != editor.WindowNormal {
		lines = append(lines, v.State.String())
	}
	children := make([]layout.FlexChild, len(lines))
	for i, line := range lines {
		children[i] = layout.Rigid(Label(c.theme, &c.theme.Window.Content, line).Layout)
	}
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
}
