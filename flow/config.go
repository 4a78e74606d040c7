package flow

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// Spacing is the space between adjacent children in a row and between adjacent rows.
type Spacing struct {
	HorizontalGap int
	VerticalGap   int
}

// Insets is the padding between a container's edges and its content.
type Insets struct {
	Top, Right, Bottom, Left int
}

// UniformInsets returns insets of n on every side.
func UniformInsets(n int) Insets { return Insets{Top: n, Right: n, Bottom: n, Left: n} }

func (in Insets) Horizontal() int { return in.Left + in.Right }
func (in Insets) Vertical() int   { return in.Top + in.Bottom }

// Config configures an Engine. Gaps and padding are in the host's resolved units.
type Config struct {
	Spacing
	Padding Insets
	// Logger receives trace-level messages about each pass. It defaults to a null logger.
	Logger hclog.Logger
}

// DefaultConfig returns a configuration with a horizontal gap of 16 and a vertical gap of 8 and
// no padding.
func DefaultConfig() Config {
	return Config{
		Spacing: Spacing{HorizontalGap: 16, VerticalGap: 8},
	}
}

// Validate checks the configuration and returns all problems it finds.
func (cfg Config) Validate() error {
	var mErr multierror.Error
	if cfg.HorizontalGap < 0 {
		mErr.Errors = append(mErr.Errors, fmt.Errorf("horizontal gap: %w: %d", ErrNegativeGap, cfg.HorizontalGap))
	}
	if cfg.VerticalGap < 0 {
		mErr.Errors = append(mErr.Errors, fmt.Errorf("vertical gap: %w: %d", ErrNegativeGap, cfg.VerticalGap))
	}
	for _, side := range []struct {
		name string
		v    int
	}{
		{"top", cfg.Padding.Top},
		{"right", cfg.Padding.Right},
		{"bottom", cfg.Padding.Bottom},
		{"left", cfg.Padding.Left},
	} {
		if side.v < 0 {
			mErr.Errors = append(mErr.Errors, fmt.Errorf("%s padding: %w: %d", side.name, ErrNegativePadding, side.v))
		}
	}
	return mErr.ErrorOrNil()
}

// Engine lays out children in wrapping rows. It only holds its configuration, which never
// changes, so one Engine may be used for any number of concurrent passes.
type Engine struct {
	cfg    Config
	logger hclog.Logger
}

// New returns an engine for the configuration, or an error if the configuration is invalid.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flow configuration: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	cfg.Logger = nil
	return &Engine{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Spacing and Padding return the engine's configuration.
func (e *Engine) Spacing() Spacing { return e.cfg.Spacing }
func (e *Engine) Padding() Insets  { return e.cfg.Padding }

// Layout measures the children and places them, in that order.
func (e *Engine) Layout(sizes []image.Point, cs Constraints) (*Plan, []image.Rectangle, error) {
	plan, err := e.Measure(sizes, cs)
	if err != nil {
		return nil, nil, err
	}
	rects, err := e.Place(plan)
	if err != nil {
		return nil, nil, err
	}
	return plan, rects, nil
}
