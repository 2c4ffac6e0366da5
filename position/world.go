package position

import (
	"fmt"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"strconv"
)

// WorldCoords is a point in continuous world units.
type WorldCoords struct {
	X float64
	Y float64
}

func NewWorldCoords(x float64, y float64) WorldCoords {
	return WorldCoords{X: x, Y: y}
}

func WorldCoordsFromPoint(point orb.Point) WorldCoords {
	return WorldCoords{X: point.X(), Y: point.Y()}
}

func (w WorldCoords) Point() orb.Point {
	return orb.Point{w.X, w.Y}
}

func (w WorldCoords) DistanceTo(other WorldCoords) float64 {
	return planar.Distance(w.Point(), other.Point())
}

// Lerp returns the point at parameter t on the segment from w (t=0) to other (t=1).
func (w WorldCoords) Lerp(other WorldCoords, t float64) WorldCoords {
	return WorldCoords{
		X: w.X + (other.X-w.X)*t,
		Y: w.Y + (other.Y-w.Y)*t,
	}
}

// ToSignedTilePosition converts into tile coordinates without any on-grid check. Negative coordinates map to negative
// tile indices with a non-negative offset.
func (w WorldCoords) ToSignedTilePosition(tileSize float64, precision Precision) SignedTilePosition {
	checkTileSize(tileSize)

	x, relX := split(0, w.X, tileSize, precision)
	y, relY := split(0, w.Y, tileSize, precision)

	return SignedTilePosition{X: x, Y: y, RelX: relX, RelY: relY, Precision: precision}
}

// ToTilePosition converts into tile coordinates and fails with an *OffGridError for negative world coordinates.
func (w WorldCoords) ToTilePosition(tileSize float64, precision Precision) (TilePosition, error) {
	return w.ToSignedTilePosition(tileSize, precision).ToTilePosition()
}

func (w WorldCoords) String() string {
	return fmt.Sprintf("(%s, %s)", strconv.FormatFloat(w.X, 'g', -1, 64), strconv.FormatFloat(w.Y, 'g', -1, 64))
}
