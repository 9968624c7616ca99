package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/vsariola/surface/editor"
)

type (
	// AlertList draws the alerts of a surface as a column of notes in the top
	// right corner of the workspace, newest on top. Notes fade in and out by
	// their FadeLevel and the ones below close the gap as a note fades out.
	// The notes take no input, so they never block the windows under them.
	AlertList struct {
		lastUpdate time.Time
	}

	AlertStyle struct {
		Stripe color.NRGBA
		Text   LabelStyle
	}

	AlertStyles struct {
		Info    AlertStyle
		Warning AlertStyle
		Error   AlertStyle
		Bg      color.NRGBA
		Width   unit.Dp
		Stripe  unit.Dp
		Spacing unit.Dp
		Inset   layout.Inset
	}
)

func (s *AlertStyles) For(p editor.AlertPriority) *AlertStyle {
	switch p {
	case editor.Warning:
		return &s.Warning
	case editor.Error:
		return &s.Error
	}
	return &s.Info
}

// Layout advances the alerts to gtx.Now and draws them. While any alert is
// visible, it asks frames for another frame.
func (a *AlertList) Layout(gtx C, th *Theme, alerts *editor.Alerts, frames editor.FrameRequester) D {
	var elapsed time.Duration
	if !a.lastUpdate.IsZero() {
		elapsed = gtx.Now.Sub(a.lastUpdate)
	}
	a.lastUpdate = gtx.Now
	if alerts.Update(elapsed) {
		frames.RequestFrame()
	}
	if alerts.Len() == 0 {
		return D{}
	}
	st := &th.Alert
	spacing := gtx.Dp(st.Spacing)
	width := min(gtx.Dp(st.Width), gtx.Constraints.Max.X-2*spacing)
	if width <= 0 {
		return D{}
	}
	newest := make([]editor.Alert, 0, alerts.Len())
	for _, alert := range alerts.Iterate {
		newest = append(newest, alert)
	}
	x, y := gtx.Constraints.Max.X-width-spacing, spacing
	for i := len(newest) - 1; i >= 0; i-- {
		alert := newest[i]
		stack := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
		opacity := paint.PushOpacity(gtx.Ops, float32(alert.FadeLevel))
		dims := layoutAlert(gtx, th, st.For(alert.Priority), alert.Message, width)
		opacity.Pop()
		stack.Pop()
		y += int(float64(dims.Size.Y+spacing) * alert.FadeLevel)
	}
	return D{Size: image.Pt(gtx.Constraints.Max.X, y)}
}

func layoutAlert(gtx C, th *Theme, style *AlertStyle, message string, width int) D {
	st := &th.Alert
	gtx.Constraints = layout.Constraints{
		Min: image.Pt(width, 0),
		Max: image.Pt(width, gtx.Constraints.Max.Y),
	}
	macro := op.Record(gtx.Ops)
	dims := layout.Inset{Left: st.Stripe}.Layout(gtx, func(gtx C) D {
		return st.Inset.Layout(gtx, Label(th, &style.Text, message).Layout)
	})
	call := macro.Stop()
	size := image.Pt(width, dims.Size.Y)
	paint.FillShape(gtx.Ops, st.Bg, clip.Rect{Max: size}.Op())
	paint.FillShape(gtx.Ops, style.Stripe, clip.Rect{Max: image.Pt(gtx.Dp(st.Stripe), size.Y)}.Op())
	call.Add(gtx.Ops)
	return D{Size: size}
}
