package gioui

import (
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

type (
	Theme struct {
		Material material.Theme
		Label    LabelStyle
		Alert    AlertStyles
		Window   WindowStyle
		Track    TrackStyle
		Toolbar  ToolbarStyle
		Tooltip  TooltipStyle
	}

	WindowStyle struct {
		Bg             color.NRGBA
		TitleBar       color.NRGBA
		FocusedTitle   color.NRGBA
		DraggingTitle  color.NRGBA
		Border         color.NRGBA
		ResizeHandle   color.NRGBA
		Title          LabelStyle
		Content        LabelStyle
		ButtonColor    color.NRGBA
		DisabledButton color.NRGBA
	}

	TrackStyle struct {
		Bg       color.NRGBA
		Selected color.NRGBA
		Dragging color.NRGBA
		Preview  color.NRGBA
		Handle   color.NRGBA
		Name     LabelStyle
		Inset    layout.Inset
	}

	ToolbarStyle struct {
		Bg     color.NRGBA
		Height unit.Dp
	}

	TooltipStyle struct {
		Bg    color.NRGBA
		Color color.NRGBA
	}
)

var fontCollection []font.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var surfaceColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}
var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}

var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}

func NewTheme() *Theme {
	th := &Theme{}
	th.Material = *material.NewTheme()
	th.Material.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	th.Material.Palette = material.Palette{
		Bg:         backgroundColor,
		Fg:         highEmphasisTextColor,
		ContrastBg: primaryColor,
		ContrastFg: black,
	}
	th.Material.TextSize = unit.Sp(14)
	defaultFont := fontCollection[0].Font
	boldFont := font.Font{Typeface: defaultFont.Typeface, Weight: font.Bold}
	th.Label = LabelStyle{Color: highEmphasisTextColor, ShadeColor: black, Font: defaultFont, FontSize: unit.Sp(14), Alignment: layout.W}
	th.Alert = AlertStyles{
		Info:    AlertStyle{Stripe: secondaryColor, Text: LabelStyle{Color: white, Font: defaultFont, FontSize: unit.Sp(14), Alignment: layout.W}},
		Warning: AlertStyle{Stripe: warningColor, Text: LabelStyle{Color: warningColor, Font: defaultFont, FontSize: unit.Sp(14), Alignment: layout.W}},
		Error:   AlertStyle{Stripe: errorColor, Text: LabelStyle{Color: errorColor, Font: boldFont, FontSize: unit.Sp(14), Alignment: layout.W}},
		Bg:      popupSurfaceColor,
		Width:   unit.Dp(320),
		Stripe:  unit.Dp(4),
		Spacing: unit.Dp(8),
		Inset:   layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(10), Right: unit.Dp(10)},
	}
	th.Window = WindowStyle{
		Bg:             surfaceColor,
		TitleBar:       color.NRGBA{R: 55, G: 55, B: 61, A: 255},
		FocusedTitle:   color.NRGBA{R: 74, G: 66, B: 96, A: 255},
		DraggingTitle:  color.NRGBA{R: 96, G: 82, B: 128, A: 255},
		Border:         color.NRGBA{R: 0, G: 0, B: 0, A: 160},
		ResizeHandle:   color.NRGBA{R: 255, G: 255, B: 255, A: 48},
		Title:          LabelStyle{Color: white, ShadeColor: black, Font: boldFont, FontSize: unit.Sp(13), Alignment: layout.W},
		Content:        LabelStyle{Color: mediumEmphasisTextColor, Font: defaultFont, FontSize: unit.Sp(12), Alignment: layout.NW},
		ButtonColor:    primaryColor,
		DisabledButton: disabledTextColor,
	}
	th.Track = TrackStyle{
		Bg:       color.NRGBA{R: 31, G: 37, B: 38, A: 255},
		Selected: color.NRGBA{R: 31, G: 51, B: 53, A: 255},
		Dragging: color.NRGBA{R: 55, G: 55, B: 61, A: 255},
		Preview:  color.NRGBA{R: 42, G: 45, B: 61, A: 255},
		Handle:   secondaryColor,
		Name:     LabelStyle{Color: highEmphasisTextColor, ShadeColor: black, Font: defaultFont, FontSize: unit.Sp(14), Alignment: layout.W},
		Inset:    layout.Inset{Left: unit.Dp(4), Right: unit.Dp(8)},
	}
	th.Toolbar = ToolbarStyle{Bg: surfaceColor, Height: unit.Dp(36)}
	th.Tooltip = TooltipStyle{Bg: popupSurfaceColor, Color: white}
	return th
}

func Tooltip(th *Theme, tip string) component.Tooltip {
	tooltip := component.PlatformTooltip(&th.Material, tip)
	tooltip.Bg = th.Tooltip.Bg
	tooltip.Text.Color = th.Tooltip.Color
	return tooltip
}
