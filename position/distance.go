package position

import (
	"github.com/paulmach/orb/planar"
	"math"
)

// Position is implemented by TilePosition and SignedTilePosition.
type Position interface {
	Signed() SignedTilePosition
	World(tileSize float64) WorldCoords
}

// DistanceGlobal returns the Euclidean distance of both positions in world units, however far apart their tiles are.
func DistanceGlobal(a Position, b Position, tileSize float64) float64 {
	return planar.Distance(a.World(tileSize).Point(), b.World(tileSize).Point())
}

// DistanceRelative returns the distance of index+offset per axis without any tile size. Only meaningful when both
// positions belong to the same grid.
func DistanceRelative(a Position, b Position) float64 {
	signedA := a.Signed()
	signedB := b.Signed()

	dx := float64(subIndex(signedA.X, signedB.X)) + (signedA.RelX - signedB.RelX)
	dy := float64(subIndex(signedA.Y, signedB.Y)) + (signedA.RelY - signedB.RelY)

	return math.Hypot(dx, dy)
}

// IsSameTile compares the tile indices and ignores the offsets.
func IsSameTile(a Position, b Position) bool {
	signedA := a.Signed()
	signedB := b.Signed()
	return signedA.X == signedB.X && signedA.Y == signedB.Y
}
