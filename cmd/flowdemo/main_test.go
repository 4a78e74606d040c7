package main

import (
	"fmt"
	"image"
	"testing"

	"honnef.co/go/flowlayout/layout"

	"gioui.org/font/gofont"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/shoenig/test/must"
)

func TestOptionsValidate(t *testing.T) {
	valid := options{n: 3, hgap: 1, vgap: 1, logLevel: "debug"}
	must.NoError(t, valid.validate())

	for name, opts := range map[string]options{
		"negative count": {n: -1, logLevel: "info"},
		"negative gap":   {hgap: -1, logLevel: "info"},
		"bad level":      {logLevel: "loud"},
	} {
		t.Run(name, func(t *testing.T) {
			must.Error(t, opts.validate())
		})
	}
}

func TestChips(t *testing.T) {
	cs := chips(len(words) + 2)
	must.Eq(t, "goroutine 0", cs[0].Text)
	must.Eq(t, fmt.Sprintf("goroutine %d", len(words)), cs[len(words)].Text)
}

func TestChipWidgetsWrap(t *testing.T) {
	shaper := text.NewShaper(text.WithCollection(gofont.Collection()))
	children := chipWidgets(chips(12), shaper)
	must.Len(t, 12, children)

	newContext := func(width int) layout.Context {
		return layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Constraints{Max: image.Pt(width, layout.Unbounded)},
			Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		}
	}
	fl := layout.Flow{HorizontalGap: 16, VerticalGap: 8}

	wide := fl.Layout(newContext(layout.Unbounded-1), children...)
	narrow := fl.Layout(newContext(wide.Size.X/3), children...)
	must.Greater(t, wide.Size.Y, narrow.Size.Y)
	must.LessEq(t, wide.Size.X/3, narrow.Size.X)
}
