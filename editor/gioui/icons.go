package gioui

import (
	"log"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"github.com/vsariola/surface/editor"
)

// iconWidgets caches the decoded icons by the address of their IconVG data,
// which the icons package keeps in package level variables.
var iconWidgets = map[*byte]*widget.Icon{}

func widgetForIcon(icon []byte) *widget.Icon {
	if w, ok := iconWidgets[&icon[0]]; ok {
		return w
	}
	w, err := widget.NewIcon(icon)
	if err != nil {
		log.Fatalf("could not decode icon: %v", err)
	}
	iconWidgets[&icon[0]] = w
	return w
}

type (
	// ActionButton is a clickable icon that performs an editor.Action, grayed
	// out when the action is disabled.
	ActionButton struct {
		Action    editor.Action
		Icon      []byte
		Tip       string
		Clickable widget.Clickable
		TipArea   component.TipArea
	}
)

func NewActionButton(action editor.Action, icon []byte, tip string) *ActionButton {
	return &ActionButton{Action: action, Icon: icon, Tip: tip}
}

func (b *ActionButton) Layout(gtx C, th *Theme) D {
	for b.Clickable.Clicked(gtx) {
		b.Action.Do()
	}
	enabled := b.Action.Enabled()
	btn := IconButton(th, &b.Clickable, b.Icon, b.Tip, enabled)
	if !enabled {
		gtx = gtx.Disabled()
	}
	return b.TipArea.Layout(gtx, Tooltip(th, b.Tip), btn.Layout)
}

func IconButton(th *Theme, w *widget.Clickable, icon []byte, description string, enabled bool) material.IconButtonStyle {
	ret := material.IconButton(&th.Material, w, widgetForIcon(icon), description)
	ret.Background = transparent
	ret.Inset = layout.UniformInset(unit.Dp(6))
	if enabled {
		ret.Color = th.Window.ButtonColor
	} else {
		ret.Color = th.Window.DisabledButton
	}
	return ret
}
