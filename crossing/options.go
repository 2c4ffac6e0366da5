package crossing

import (
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/position"
	"math"
)

const (
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 64
)

// Options configures a crossing search.
type Options struct {
	// TileSize is the world-space edge length of one tile.
	TileSize float64
	// Epsilon is the bracket width in world units below which the search stops. It must not be below the epsilon of
	// Precision, otherwise the rounded ends could be further apart than the reported width.
	Epsilon float64
	// MaxIterations caps the number of bisection steps.
	MaxIterations int
	// Precision is used for every sampled position.
	Precision position.Precision
	// OnStep is called after every bisection step, may be nil.
	OnStep func(step Step)
}

func DefaultOptions(tileSize float64) Options {
	return Options{
		TileSize:      tileSize,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Precision:     position.ProductionPrecision,
	}
}

func (o Options) Validate() error {
	if !(o.TileSize > 0) || math.IsInf(o.TileSize, 1) {
		return errors.Errorf("Tile size must be positive and finite but was %v", o.TileSize)
	}
	if !(o.Epsilon > 0) {
		return errors.Errorf("Epsilon must be positive but was %v", o.Epsilon)
	}
	if o.Epsilon < o.Precision.Epsilon() {
		return errors.Errorf("Epsilon %v is below the smallest offset %v the %s precision can resolve", o.Epsilon, o.Precision.Epsilon(), o.Precision.String())
	}
	if o.MaxIterations <= 0 {
		return errors.Errorf("Maximum number of iterations must be positive but was %d", o.MaxIterations)
	}
	return nil
}
