package crossing

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/thlorenz/raycast/grid"
	"github.com/thlorenz/raycast/position"
)

// TileChecker knows which tiles of a map block movement.
type TileChecker interface {
	IsTileBlocking(tileX uint64, tileY uint64) bool
}

// InBound accepts positions whose world point lies inside the bound, its edges included.
func InBound(bound orb.Bound, tileSize float64) Predicate {
	return func(p position.TilePosition) bool {
		return bound.Contains(p.World(tileSize).Point())
	}
}

// InPolygon accepts positions whose world point lies inside the polygon or on its boundary.
func InPolygon(polygon orb.Polygon, tileSize float64) Predicate {
	return func(p position.TilePosition) bool {
		return planar.PolygonContains(polygon, p.World(tileSize).Point())
	}
}

// InExtent accepts positions on a tile of the extent.
func InExtent(extent grid.TileExtent) Predicate {
	return func(p position.TilePosition) bool {
		return extent.ContainsPosition(p)
	}
}

// Walkable accepts positions on tiles the checker does not consider blocking.
func Walkable(checker TileChecker) Predicate {
	return func(p position.TilePosition) bool {
		return !checker.IsTileBlocking(p.X, p.Y)
	}
}

// All accepts positions every given predicate accepts.
func All(predicates ...Predicate) Predicate {
	return func(p position.TilePosition) bool {
		for _, predicate := range predicates {
			if !predicate(p) {
				return false
			}
		}
		return true
	}
}
