package flow

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeGap     = errors.New("negative gap")
	ErrNegativePadding = errors.New("negative padding")
	ErrNegativeLimit   = errors.New("negative limit")
	ErrInvalidMode     = errors.New("invalid sizing mode")
	ErrNegativeSize    = errors.New("negative size")
	ErrUnresolved      = errors.New("size not resolved")

	// ErrNotMeasured is returned when placing a plan that wasn't produced by Engine.Measure.
	ErrNotMeasured = errors.New("plan has not been measured")
	// ErrPlanMismatch is returned when placing a plan that was measured with different spacing
	// or padding than the placing engine's.
	ErrPlanMismatch = errors.New("plan was measured with a different configuration")
)

// BoxError reports a problem with a single child.
type BoxError struct {
	Index int
	Err   error
}

func (err *BoxError) Error() string { return fmt.Sprintf("box %d: %s", err.Index, err.Err) }
func (err *BoxError) Unwrap() error { return err.Err }
