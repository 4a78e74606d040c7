package widget

import (
	"image"
	"image/color"

	"honnef.co/go/flowlayout/layout"

	"gioui.org/font"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
)

// Chip is a single line of text on a bordered background. Chips are sized by their text and
// never wrap, which makes them typical children of a layout.Flow.
type Chip struct {
	Text       string
	Color      color.NRGBA
	Background color.NRGBA
	Border     color.NRGBA
	// Padding is the space between the border and the text.
	Padding unit.Dp
}

func (c Chip) Layout(gtx layout.Context, shaper *text.Shaper, fnt font.Font, size unit.Sp) layout.Dimensions {
	gtx.Constraints.Min = image.Point{}
	return Background{Color: c.Background}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return Bordered{Color: c.Border, Width: 1}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(c.Padding).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				l := giowidget.Label{MaxLines: 1}
				return l.Layout(gtx, shaper, fnt, size, c.Text, ColorTextMaterial(gtx, c.Color))
			})
		})
	})
}
