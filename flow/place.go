package flow

import "image"

// Place computes the final rectangle of every box in the plan. The result is indexed by box
// index. Boxes are aligned to the top of their row. Place doesn't modify the plan.
//
// The plan must have been returned by Measure of an engine with the same spacing and padding.
func (e *Engine) Place(p *Plan) ([]image.Rectangle, error) {
	if p == nil || !p.measured {
		return nil, ErrNotMeasured
	}
	if p.spacing != e.cfg.Spacing || p.padding != e.cfg.Padding {
		return nil, ErrPlanMismatch
	}

	rects := make([]image.Rectangle, len(p.boxes))
	top := p.padding.Top
	for _, row := range p.rows {
		left := p.padding.Left
		for _, b := range p.boxes[row.Start:row.End] {
			pt := image.Pt(left, top)
			rects[b.Index] = image.Rectangle{Min: pt, Max: pt.Add(b.Size)}
			left = rects[b.Index].Max.X + p.spacing.HorizontalGap
		}
		top += row.Height + p.spacing.VerticalGap
	}

	e.logger.Trace("placed", "boxes", len(rects), "rows", len(p.rows))
	return rects, nil
}
