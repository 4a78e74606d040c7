package flow

import (
	"fmt"
	"math"
)

// Mode describes how a container's size is determined along one axis.
type Mode uint8

const (
	// Unspecified imposes no limit. The container is as large as its content.
	Unspecified Mode = iota
	// AtMost limits the available space, but the container is still sized by its content.
	AtMost
	// Exact fixes the container's size, regardless of its content.
	Exact
)

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case AtMost:
		return "at most"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Constraint is the sizing constraint along a single axis. Limit is ignored for Unspecified.
type Constraint struct {
	Mode  Mode
	Limit int
}

// ExactSize, AtMostSize and UnspecifiedSize construct constraints of the respective mode.
func ExactSize(n int) Constraint  { return Constraint{Mode: Exact, Limit: n} }
func AtMostSize(n int) Constraint { return Constraint{Mode: AtMost, Limit: n} }
func UnspecifiedSize() Constraint { return Constraint{Mode: Unspecified} }

// Bounded reports whether the constraint limits the available space.
func (c Constraint) Bounded() bool { return c.Mode != Unspecified }

func (c Constraint) String() string {
	if c.Mode == Unspecified {
		return c.Mode.String()
	}
	return fmt.Sprintf("%s %d", c.Mode, c.Limit)
}

// available returns the space left for content after subtracting padding. Unbounded
// constraints report math.MaxInt.
func (c Constraint) available(padding int) int {
	if !c.Bounded() {
		return math.MaxInt
	}
	return max(0, c.Limit-padding)
}

// resolve returns the container size for the given content size, which already includes
// padding.
func (c Constraint) resolve(content int) int {
	if c.Mode == Exact {
		return c.Limit
	}
	return content
}

func (c Constraint) validate(axis string) error {
	if c.Mode > Exact {
		return fmt.Errorf("%s constraint: %w: %s", axis, ErrInvalidMode, c.Mode)
	}
	if c.Bounded() && c.Limit < 0 {
		return fmt.Errorf("%s constraint: %w: %d", axis, ErrNegativeLimit, c.Limit)
	}
	return nil
}

// Constraints are the constraints imposed on a container by its host for one layout pass.
type Constraints struct {
	Width  Constraint
	Height Constraint
}

func (cs Constraints) String() string {
	return fmt.Sprintf("width %s, height %s", cs.Width, cs.Height)
}

// ChildConstraints derives the constraints a child is measured under from its container's
// constraints. Children are sized by their content: a bounded container limits them to the space
// inside its padding, an unbounded one leaves them unbounded.
func ChildConstraints(parent Constraints, padding Insets) Constraints {
	child := func(c Constraint, pad int) Constraint {
		if !c.Bounded() {
			return UnspecifiedSize()
		}
		return AtMostSize(c.available(pad))
	}
	return Constraints{
		Width:  child(parent.Width, padding.Horizontal()),
		Height: child(parent.Height, padding.Vertical()),
	}
}
