// Command flowdemo shows a set of chips laid out by layout.Flow. Resize the window to see the
// rows rewrap.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"honnef.co/go/flowlayout/layout"
	"honnef.co/go/flowlayout/widget"

	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/hashicorp/go-hclog"
)

var words = strings.Fields(`
	goroutine channel select defer panic recover interface struct slice map
	closure method embedding generics constraint iota rune string byte error
	context mutex waitgroup atomic pointer array package module vendor build`)

type options struct {
	n        int
	hgap     float64
	vgap     float64
	padding  float64
	logLevel string
}

func main() {
	var opts options
	flag.IntVar(&opts.n, "n", 40, "Number of chips")
	flag.Float64Var(&opts.hgap, "hgap", 16, "Horizontal gap between chips, in dp")
	flag.Float64Var(&opts.vgap, "vgap", 8, "Vertical gap between rows, in dp")
	flag.Float64Var(&opts.padding, "padding", 12, "Padding around the chips, in dp")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "flowdemo",
		Level: hclog.LevelFromString(opts.logLevel),
	})
	if err := opts.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	go func() {
		w := app.NewWindow(app.Title("flowdemo"), app.Size(640, 480))
		if err := run(w, opts, logger); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func (opts options) validate() error {
	if opts.n < 0 {
		return fmt.Errorf("-n must not be negative, got %d", opts.n)
	}
	if opts.hgap < 0 || opts.vgap < 0 || opts.padding < 0 {
		return fmt.Errorf("gaps and padding must not be negative")
	}
	if hclog.LevelFromString(opts.logLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", opts.logLevel)
	}
	return nil
}

func chips(n int) []widget.Chip {
	out := make([]widget.Chip, n)
	for i := range out {
		out[i] = widget.Chip{
			Text:       fmt.Sprintf("%s %d", words[i%len(words)], i),
			Color:      color.NRGBA{A: 0xFF},
			Background: color.NRGBA{R: 0xEF, G: 0xFF, B: 0xFF, A: 0xFF},
			Border:     color.NRGBA{R: 0x9C, G: 0xEF, B: 0xEF, A: 0xFF},
			Padding:    4,
		}
	}
	return out
}

func chipWidgets(items []widget.Chip, shaper *text.Shaper) []layout.Widget {
	out := make([]layout.Widget, len(items))
	for i := range items {
		chip := items[i]
		out[i] = func(gtx layout.Context) layout.Dimensions {
			return chip.Layout(gtx, shaper, font.Font{}, 14)
		}
	}
	return out
}

func run(w *app.Window, opts options, logger hclog.Logger) error {
	children := chipWidgets(chips(opts.n), text.NewShaper(text.WithCollection(gofont.Collection())))

	fl := layout.Flow{
		HorizontalGap: unit.Dp(opts.hgap),
		VerticalGap:   unit.Dp(opts.vgap),
		Padding:       layout.UniformInset(unit.Dp(opts.padding)),
		Logger:        logger.Named("flow"),
	}
	logger.Info("starting", "chips", len(children), "hgap", opts.hgap, "vgap", opts.vgap)

	var ops op.Ops
	for {
		e := w.NextEvent()
		switch ev := e.(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
			paint.Fill(gtx.Ops, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xEA, A: 0xFF})

			// Only the width bounds the flow; the height follows the rows.
			gtx.Constraints.Min.Y = 0
			gtx.Constraints.Max.Y = layout.Unbounded
			dims := fl.Layout(gtx, children...)
			logger.Debug("frame", "width", ev.Size.X, "height", dims.Size.Y)

			ev.Frame(gtx.Ops)
		}
	}
}
