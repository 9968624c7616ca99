package gioui_test

import (
	"image"
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/vsariola/surface/editor"
	"github.com/vsariola/surface/editor/gioui"
)

type countingFrames struct {
	requests int
}

func (f *countingFrames) RequestFrame() { f.requests++ }

func TestAlertListFades(t *testing.T) {
	th := gioui.NewTheme()
	var alerts editor.Alerts
	var list gioui.AlertList
	frames := &countingFrames{}
	now := time.Unix(1000, 0)
	layoutAt := func() layout.Dimensions {
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Now:         now,
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
			Constraints: layout.Exact(image.Pt(800, 600)),
		}
		return list.Layout(gtx, th, &alerts, frames)
	}
	if d := layoutAt(); d.Size != (image.Point{}) || frames.requests != 0 {
		t.Fatalf("empty alert list took %v and requested %d frames", d.Size, frames.requests)
	}
	alerts.Add("Layout saved", editor.Info)
	hidden := layoutAt().Size.Y
	now = now.Add(time.Second)
	shown := layoutAt().Size.Y
	if shown <= hidden {
		t.Errorf("faded in alert takes %d px, hidden one %d px", shown, hidden)
	}
	if frames.requests != 2 {
		t.Errorf("%d frames requested while fading in, want 2", frames.requests)
	}
	now = now.Add(5 * time.Second)
	layoutAt()
	now = now.Add(time.Second)
	layoutAt()
	if alerts.Len() != 0 {
		t.Fatalf("%d alerts left after fading out", alerts.Len())
	}
	n := frames.requests
	now = now.Add(time.Second)
	layoutAt()
	if frames.requests != n {
		t.Error("idle alert list requested a frame")
	}
}
