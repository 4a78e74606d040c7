package layout

import (
	"context"
	"fmt"
	"image"
	rtrace "runtime/trace"

	"honnef.co/go/flowlayout/flow"

	"gioui.org/op"
	"gioui.org/unit"
	"github.com/hashicorp/go-hclog"
)

// Unbounded is the smallest maximum constraint that is treated as not limiting the layout at
// all. It matches the value gio's List uses for its unbounded main axis.
const Unbounded = 1e6

// Flow lays out its children in rows, left to right, starting a new row when the next child
// doesn't fit into the remaining width. Every child is top-aligned within its row.
type Flow struct {
	HorizontalGap unit.Dp
	VerticalGap   unit.Dp
	Padding       Inset
	Logger        hclog.Logger
}

// DefaultFlow returns a Flow with the gaps used by flow.DefaultConfig.
func DefaultFlow() Flow {
	cfg := flow.DefaultConfig()
	return Flow{
		HorizontalGap: unit.Dp(cfg.HorizontalGap),
		VerticalGap:   unit.Dp(cfg.VerticalGap),
	}
}

// Engine returns the flow engine for the metric of gtx. It panics if the configuration is
// invalid.
func (f Flow) Engine(gtx Context) *flow.Engine {
	e, err := flow.New(flow.Config{
		Spacing: flow.Spacing{
			HorizontalGap: gtx.Dp(f.HorizontalGap),
			VerticalGap:   gtx.Dp(f.VerticalGap),
		},
		Padding: flow.Insets{
			Top:    gtx.Dp(f.Padding.Top),
			Right:  gtx.Dp(f.Padding.Right),
			Bottom: gtx.Dp(f.Padding.Bottom),
			Left:   gtx.Dp(f.Padding.Left),
		},
		Logger: f.Logger,
	})
	if err != nil {
		panic(fmt.Sprintf("layout.Flow: %s", err))
	}
	return e
}

func (f Flow) Layout(gtx Context, children ...Widget) Dimensions {
	defer rtrace.StartRegion(context.Background(), "layout.Flow.Layout").End()

	e := f.Engine(gtx)
	cs := FlowConstraints(gtx.Constraints)
	ccs := flow.ChildConstraints(cs, e.Padding())

	calls := make([]op.CallOp, len(children))
	sizes := make([]image.Point, len(children))
	for i, child := range children {
		cgtx := gtx
		cgtx.Constraints = Constraints{Max: image.Pt(maxConstraint(ccs.Width), maxConstraint(ccs.Height))}
		macro := op.Record(gtx.Ops)
		dims := child(cgtx)
		calls[i] = macro.Stop()
		sizes[i] = dims.Size
	}

	plan, rects, err := e.Layout(sizes, cs)
	if err != nil {
		// Children returned negative sizes.
		panic(fmt.Sprintf("layout.Flow: %s", err))
	}
	for i, call := range calls {
		stack := op.Offset(rects[i].Min).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}

	return Dimensions{Size: gtx.Constraints.Constrain(plan.Size())}
}

// FlowConstraints converts gio constraints to flow constraints. A minimum equal to the maximum
// fixes the size; a maximum of at least Unbounded imposes no limit.
func FlowConstraints(cs Constraints) flow.Constraints {
	axis := func(lo, hi int) flow.Constraint {
		switch {
		case hi >= Unbounded:
			return flow.UnspecifiedSize()
		case lo == hi:
			return flow.ExactSize(hi)
		default:
			return flow.AtMostSize(hi)
		}
	}
	return flow.Constraints{
		Width:  axis(cs.Min.X, cs.Max.X),
		Height: axis(cs.Min.Y, cs.Max.Y),
	}
}

func maxConstraint(c flow.Constraint) int {
	if !c.Bounded() {
		return Unbounded
	}
	return c.Limit
}
