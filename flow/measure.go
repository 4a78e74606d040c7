package flow

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-multierror"
)

// Measure partitions the children, given by their sizes in insertion order, into rows and
// computes the container's size under cs.
//
// Rows are filled greedily. A child joins the current row unless the row already has children
// and adding the gap and the child would exceed the available width. A child that is wider than
// the available width on its own still gets a row to itself.
//
// The content width is that of the widest row, where every row but the last also counts the gap
// that would have preceded the box that didn't fit.
func (e *Engine) Measure(sizes []image.Point, cs Constraints) (*Plan, error) {
	if err := validate(sizes, cs); err != nil {
		return nil, err
	}

	p := &Plan{
		boxes:    make([]Box, len(sizes)),
		spacing:  e.cfg.Spacing,
		padding:  e.cfg.Padding,
		measured: true,
	}
	for i, sz := range sizes {
		p.boxes[i] = Box{Index: i, Size: sz}
	}

	avail := cs.Width.available(p.padding.Horizontal())
	gap := p.spacing.HorizontalGap
	var row Row
	for i, b := range p.boxes {
		if row.Len() > 0 && row.Width+gap+b.Size.X > avail {
			p.closeRow(row, true)
			row = Row{Start: i, End: i}
		}
		if row.Len() > 0 {
			row.Width += gap
		}
		row.Width += b.Size.X
		row.Height = max(row.Height, b.Size.Y)
		row.End = i + 1
	}
	if row.Len() > 0 {
		p.closeRow(row, false)
	}

	p.size = image.Point{
		X: cs.Width.resolve(p.content.X + p.padding.Horizontal()),
		Y: cs.Height.resolve(p.content.Y + p.padding.Vertical()),
	}

	e.logger.Trace("measured", "boxes", len(p.boxes), "rows", len(p.rows), "constraints", cs, "plan", p)
	return p, nil
}

func validate(sizes []image.Point, cs Constraints) error {
	var mErr multierror.Error
	if err := cs.Width.validate("width"); err != nil {
		mErr.Errors = append(mErr.Errors, err)
	}
	if err := cs.Height.validate("height"); err != nil {
		mErr.Errors = append(mErr.Errors, err)
	}
	for i, sz := range sizes {
		if sz.X < 0 || sz.Y < 0 {
			mErr.Errors = append(mErr.Errors, &BoxError{
				Index: i,
				Err:   fmt.Errorf("%w: %dx%d", ErrNegativeSize, sz.X, sz.Y),
			})
		}
	}
	return mErr.ErrorOrNil()
}
