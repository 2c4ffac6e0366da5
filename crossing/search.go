package crossing

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/position"
	"math"
)

// Crossing is the bracket around a validity transition: the last position known to be valid and the first one known
// to be invalid.
type Crossing struct {
	Valid   *position.TilePosition
	Invalid *position.TilePosition
}

type Result struct {
	Crossing
	// Width is the distance in world units between both ends of the bracket along the segment.
	Width      float64
	Iterations int
	// Bracketed is false when the input never contained a transition. Valid and Invalid then hold the first and the
	// last position of the input, which share the same validity.
	Bracketed bool
}

// Step describes the bracket after one bisection step.
type Step struct {
	Iteration int
	Valid     position.TilePosition
	Invalid   position.TilePosition
	Width     float64
}

// Predicate reports whether the position is valid. It has to be deterministic and side-effect free. Positions exactly
// on the boundary should count as valid.
type Predicate func(p position.TilePosition) bool

// Search bisects the straight world-space segment between from and to until the bracket around the validity
// transition is narrower than opts.Epsilon or opts.MaxIterations steps were made. One end has to be valid and the
// other invalid, in either order; otherwise the result is not bracketed and ErrNotBracketed is returned. Reaching the
// iteration cap returns the best-effort result together with a *NonConvergenceError.
//
// Both ends are normalized before the search, so they have to be on the grid and at most one tile width away from
// normal form.
func Search(from position.TilePosition, to position.TilePosition, valid Predicate, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if valid == nil {
		return Result{}, errors.New("Validity predicate must not be nil")
	}

	from, err := from.Normalized(opts.TileSize)
	if err != nil {
		return Result{}, errors.Wrapf(err, "Unable to normalize start of segment")
	}
	to, err = to.Normalized(opts.TileSize)
	if err != nil {
		return Result{}, errors.Wrapf(err, "Unable to normalize end of segment")
	}

	start := from.World(opts.TileSize)
	end := to.World(opts.TileSize)
	length := start.DistanceTo(end)

	fromValid := valid(from)
	toValid := valid(to)
	if fromValid == toValid {
		sigolo.Debugf("Segment %s -> %s is not bracketed, both ends valid=%t", from.String(), to.String(), fromValid)
		return notBracketed(from, to, length), ErrNotBracketed
	}

	validT, invalidT := 0.0, 1.0
	validPosition, invalidPosition := from, to
	if !fromValid {
		validT, invalidT = invalidT, validT
		validPosition, invalidPosition = invalidPosition, validPosition
	}

	width := length
	iterations := 0
	for width >= opts.Epsilon && iterations < opts.MaxIterations {
		t := (validT + invalidT) / 2
		sample, err := start.Lerp(end, t).ToTilePosition(opts.TileSize, opts.Precision)
		if err != nil {
			// Both ends are on the grid, so is every point between them.
			return Result{}, errors.Wrapf(err, "Sample at t=%v of segment %s -> %s left the grid", t, from.String(), to.String())
		}
		iterations++

		if valid(sample) {
			validT = t
			validPosition = sample
		} else {
			invalidT = t
			invalidPosition = sample
		}
		width = math.Abs(invalidT-validT) * length

		sigolo.Tracef("Crossing step %d: valid=%s (t=%v), invalid=%s (t=%v), width=%g", iterations, validPosition.String(), validT, invalidPosition.String(), invalidT, width)
		if opts.OnStep != nil {
			opts.OnStep(Step{
				Iteration: iterations,
				Valid:     validPosition,
				Invalid:   invalidPosition,
				Width:     width,
			})
		}
	}

	result := Result{
		Crossing: Crossing{
			Valid:   &validPosition,
			Invalid: &invalidPosition,
		},
		Width:      width,
		Iterations: iterations,
		Bracketed:  true,
	}

	if width >= opts.Epsilon {
		sigolo.Debugf("Crossing search stopped after %d iterations with width %g", iterations, width)
		return result, newNonConvergenceError(iterations, width, opts.Epsilon)
	}

	sigolo.Debugf("Found crossing between %s and %s after %d iterations", validPosition.String(), invalidPosition.String(), iterations)
	return result, nil
}

// SearchPath looks for the first pair of consecutive path positions with different validity and searches the crossing
// between them. A path without any transition is reported like an unbracketed segment from its first to its last
// position.
func SearchPath(path []position.TilePosition, valid Predicate, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if valid == nil {
		return Result{}, errors.New("Validity predicate must not be nil")
	}
	if len(path) < 2 {
		return Result{}, errors.Errorf("A path needs at least two positions but had %d", len(path))
	}

	normalizedPath := make([]position.TilePosition, len(path))
	for i, p := range path {
		normalized, err := p.Normalized(opts.TileSize)
		if err != nil {
			return Result{}, errors.Wrapf(err, "Unable to normalize path position %d", i)
		}
		normalizedPath[i] = normalized
	}

	previousValid := valid(normalizedPath[0])
	for i := 1; i < len(normalizedPath); i++ {
		currentValid := valid(normalizedPath[i])
		if currentValid != previousValid {
			sigolo.Debugf("Path changes validity between position %d and %d", i-1, i)
			return Search(normalizedPath[i-1], normalizedPath[i], valid, opts)
		}
	}

	first := normalizedPath[0]
	last := normalizedPath[len(normalizedPath)-1]
	length := 0.0
	for i := 1; i < len(normalizedPath); i++ {
		length += position.DistanceGlobal(normalizedPath[i-1], normalizedPath[i], opts.TileSize)
	}

	sigolo.Debugf("Path of %d positions is not bracketed, all positions valid=%t", len(path), previousValid)
	return notBracketed(first, last, length), ErrNotBracketed
}

func notBracketed(first position.TilePosition, last position.TilePosition, length float64) Result {
	return Result{
		Crossing: Crossing{
			Valid:   &first,
			Invalid: &last,
		},
		Width: length,
	}
}
