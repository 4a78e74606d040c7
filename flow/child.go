package flow

import (
	"image"

	"github.com/hashicorp/go-multierror"
)

// Child is anything that can compute its own size under constraints. It returns false if it
// cannot resolve a size.
type Child interface {
	Measure(cs Constraints) (image.Point, bool)
}

type ChildFunc func(cs Constraints) (image.Point, bool)

func (fn ChildFunc) Measure(cs Constraints) (image.Point, bool) { return fn(cs) }

// FixedChild is a child with a size that doesn't depend on its constraints.
type FixedChild image.Point

func (c FixedChild) Measure(Constraints) (image.Point, bool) { return image.Point(c), true }

// MeasureChildren asks every child for its size under the constraints derived by
// ChildConstraints, then measures the resulting sizes like Measure. Children that fail to resolve
// a size are reported together and nothing is packed.
func (e *Engine) MeasureChildren(children []Child, cs Constraints) (*Plan, error) {
	ccs := ChildConstraints(cs, e.cfg.Padding)
	sizes := make([]image.Point, len(children))
	var mErr multierror.Error
	for i, c := range children {
		sz, ok := c.Measure(ccs)
		if !ok {
			mErr.Errors = append(mErr.Errors, &BoxError{Index: i, Err: ErrUnresolved})
			continue
		}
		sizes[i] = sz
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return e.Measure(sizes, cs)
}
