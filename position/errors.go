package position

import (
	"fmt"
	"github.com/thlorenz/raycast/util"
)

// OffGridError is returned when a signed position cannot be expressed as an on-grid TilePosition. Callers usually
// treat it as "outside the map".
type OffGridError struct {
	Position SignedTilePosition
	stack    util.CallStack
}

func newOffGridError(position SignedTilePosition) *OffGridError {
	return &OffGridError{
		Position: position,
		stack:    util.CurrentStack(1),
	}
}

func (e *OffGridError) Error() string {
	return fmt.Sprintf("Tile position %s is off grid, cannot convert", e.Position.String())
}

func (e *OffGridError) Format(s fmt.State, verb rune) {
	util.FormatError(s, verb, e.Error(), e.stack)
}

// PreconditionError reports an offset handed to Normalized which is more than one tile width out of range. This
// happens when a single arithmetic step advanced further than one tile and is a bug in the caller.
type PreconditionError struct {
	Axis     string
	Rel      float64
	TileSize float64
	stack    util.CallStack
}

func newPreconditionError(axis string, rel float64, tileSize float64) *PreconditionError {
	return &PreconditionError{
		Axis:     axis,
		Rel:      rel,
		TileSize: tileSize,
		stack:    util.CurrentStack(2),
	}
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("Relative %s offset %v is outside of (-%v, %v) and cannot be normalized for tile size %v", e.Axis, e.Rel, 2*e.TileSize, 2*e.TileSize, e.TileSize)
}

func (e *PreconditionError) Format(s fmt.State, verb rune) {
	util.FormatError(s, verb, e.Error(), e.stack)
}
