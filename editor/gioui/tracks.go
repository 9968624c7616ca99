package gioui

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/surface/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	// TrackListView draws the tracks of a model as a column of rows, each
	// at its display offset, and starts the drags of their handles.
	TrackListView struct {
		Width unit.Dp

		model   *editor.Model
		pointer *GlobalPointer
		caser   cases.Caser
		rows    map[string]*trackRow
	}

	trackRow struct {
		body, handle int // input tags
		name, title  string
	}
)

func NewTrackListView(model *editor.Model, pointer *GlobalPointer) *TrackListView {
	return &TrackListView{
		Width:   unit.Dp(240),
		model:   model,
		pointer: pointer,
		caser:   cases.Title(language.English),
		rows:    map[string]*trackRow{},
	}
}

// Layout draws the list. The ops are expected to be in surface coordinates:
// the rows are placed at the global y of the list's geometry.
func (v *TrackListView) Layout(gtx C, th *Theme) D {
	tracks := v.model.Tracks()
	g := tracks.Geometry()
	top := gtx.Dp(unit.Dp(g.Top))
	width := gtx.Dp(v.Width)
	height := gtx.Dp(unit.Dp(g.Height))

	column := image.Rect(0, top, width, max(gtx.Constraints.Max.Y, top))
	paint.FillShape(gtx.Ops, th.Material.Bg, clip.Rect(column).Op())

	for id := range v.rows {
		if _, ok := tracks.Track(id); !ok {
			delete(v.rows, id)
		}
	}
	var dragged *editor.Track
	for _, t := range tracks.Tracks() {
		if t.Dragging() {
			dragged = t
			continue
		}
		v.layoutRow(gtx, th, t, image.Pt(width, height))
	}
	if dragged != nil {
		v.layoutRow(gtx, th, dragged, image.Pt(width, height))
	}
	return D{Size: image.Pt(width, column.Max.Y)}
}

func (v *TrackListView) layoutRow(gtx C, th *Theme, t *editor.Track, size image.Point) {
	row := v.rows[t.ID()]
	if row == nil {
		row = &trackRow{}
		v.rows[t.ID()] = row
	}
	if row.name != t.Name() || row.title == "" {
		row.name = t.Name()
		row.title = v.caser.String(t.Name())
	}
	g := v.model.Tracks().Geometry()
	origin := f32.Pt(0, g.Top+t.DisplayY())

	// the handle sits inside the row inset
	handleOrigin := origin.Add(f32.Pt(float32(th.Track.Inset.Left), float32(th.Track.Inset.Top)))
	for pos := range presses(gtx, &row.handle) {
		t.StartDrag(v.pointer.Press(handleOrigin.Add(pos)))
	}
	for range presses(gtx, &row.body) {
		v.model.SelectTrack(t.ID())
	}

	defer op.Offset(ToPx(gtx, origin)).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &row.body)
	bg := th.Track.Bg
	switch {
	case t.Dragging():
		bg = th.Track.Dragging
	case t.PreviewTarget():
		bg = th.Track.Preview
	case t.ID() == v.model.SelectedTrack():
		bg = th.Track.Selected
	}
	paint.Fill(gtx.Ops, bg)
	gtx.Constraints = layout.Exact(size)
	th.Track.Inset.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				sz := gtx.Dp(unit.Dp(24))
				defer clip.Rect(image.Rect(0, 0, sz, gtx.Constraints.Max.Y)).Push(gtx.Ops).Pop()
				event.Op(gtx.Ops, &row.handle)
				if t.Dragging() {
					pointer.CursorGrabbing.Add(gtx.Ops)
				} else {
					pointer.CursorGrab.Add(gtx.Ops)
				}
				gtx.Constraints = layout.Exact(image.Pt(sz, gtx.Constraints.Max.Y))
				return layout.Center.Layout(gtx, func(gtx C) D {
					gtx.Constraints.Min = image.Point{}
					gtx.Constraints.Max.X = sz
					return widgetForIcon(icons.EditorDragHandle).Layout(gtx, th.Track.Handle)
				})
			}),
			layout.Flexed(1, func(gtx C) D {
				return layout.Inset{Left: unit.Dp(6)}.Layout(gtx, Label(th, &th.Track.Name, row.title).Layout)
			}),
		)
	})
	border := image.Rect(0, size.Y-1, size.X, size.Y)
	paint.FillShape(gtx.Ops, th.Window.Border, clip.Rect(border).Op())
}
