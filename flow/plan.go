package flow

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/exp/slices"
)

// Box is a child with its resolved size. Index is the child's position in insertion order.
type Box struct {
	Index int
	Size  image.Point
}

// Row is a run of boxes that share a line. Start and End delimit the row's boxes in the plan, in
// index order. Width includes the gaps between boxes but not around them; Height is the height of
// the tallest box.
type Row struct {
	Start, End int
	Width      int
	Height     int
}

func (r Row) Len() int { return r.End - r.Start }

// Boxes returns a copy of the row's boxes. The row must be one of p's rows; for a row that
// doesn't fit within p, Boxes returns nil.
func (r Row) Boxes(p *Plan) []Box {
	if r.Start < 0 || r.Start > r.End || r.End > len(p.boxes) {
		return nil
	}
	return slices.Clone(p.boxes[r.Start:r.End])
}

// Plan is the result of measuring. It owns all of its data; every call to Engine.Measure
// allocates a new Plan, and accessors return copies.
type Plan struct {
	boxes   []Box
	rows    []Row
	content image.Point
	size    image.Point
	spacing Spacing
	padding Insets

	measured bool
}

func (p *Plan) Boxes() []Box         { return slices.Clone(p.boxes) }
func (p *Plan) Rows() []Row          { return slices.Clone(p.rows) }
func (p *Plan) Len() int             { return len(p.rows) }
func (p *Plan) Spacing() Spacing     { return p.spacing }
func (p *Plan) Padding() Insets      { return p.padding }
func (p *Plan) Content() image.Point { return p.content }

// Size returns the container's resolved size, including padding.
func (p *Plan) Size() image.Point { return p.size }

func (p *Plan) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d [", p.size.X, p.size.Y)
	for i, row := range p.rows {
		if i > 0 {
			sb.WriteString(" | ")
		}
		fmt.Fprintf(&sb, "%d-%d %dx%d", row.Start, row.End-1, row.Width, row.Height)
	}
	sb.WriteString("]")
	return sb.String()
}

// closeRow appends the row and accounts for it in the content size. A row that was closed
// because the next box didn't fit reserves one more gap of width; the last row doesn't.
func (p *Plan) closeRow(r Row, wrapped bool) {
	if len(p.rows) > 0 {
		p.content.Y += p.spacing.VerticalGap
	}
	p.content.Y += r.Height
	w := r.Width
	if wrapped {
		w += p.spacing.HorizontalGap
	}
	p.content.X = max(p.content.X, w)
	p.rows = append(p.rows, r)
}
