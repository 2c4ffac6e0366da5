package grid

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/position"
	"strconv"
	"strings"
)

// TileIndex identifies one tile of the grid.
type TileIndex [2]uint64

func TileIndexOf(p position.TilePosition) TileIndex {
	return TileIndex{p.X, p.Y}
}

func (c TileIndex) X() uint64 { return c[0] }

func (c TileIndex) Y() uint64 { return c[1] }

func (c TileIndex) isBelowOrLeftOf(other TileIndex) bool {
	return c.X() < other.X() || c.Y() < other.Y()
}

func (c TileIndex) isAboveOrRightOf(other TileIndex) bool {
	return c.X() > other.X() || c.Y() > other.Y()
}

// ToWorld returns the lower left corner of the tile.
func (c TileIndex) ToWorld(tileSize float64) position.WorldCoords {
	return position.NewTilePosition(c.X(), c.Y(), 0, 0, position.ProductionPrecision).World(tileSize)
}

// TileExtent is a rectangle of tiles, both corners are inclusive.
type TileExtent [2]TileIndex

// NewTileExtent creates the extent spanned by both tiles in any order.
func NewTileExtent(a TileIndex, b TileIndex) TileExtent {
	return TileExtent{a, a}.Expand(b)
}

// ParseTileExtent reads "minX,minY,maxX,maxY".
func ParseTileExtent(s string) (TileExtent, error) {
	fields := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(fields) != 4 {
		return TileExtent{}, errors.Errorf("Expected tile extent of the form minX,minY,maxX,maxY but found '%s'", s)
	}

	var values [4]uint64
	for i, field := range fields {
		value, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return TileExtent{}, errors.Wrapf(err, "Unable to parse tile extent '%s'", s)
		}
		values[i] = value
	}

	return NewTileExtent(TileIndex{values[0], values[1]}, TileIndex{values[2], values[3]}), nil
}

func (c TileExtent) LowerLeftTile() TileIndex { return c[0] }

func (c TileExtent) UpperRightTile() TileIndex { return c[1] }

// Width is the number of tile columns.
func (c TileExtent) Width() uint64 { return c.UpperRightTile().X() - c.LowerLeftTile().X() + 1 }

// Height is the number of tile rows.
func (c TileExtent) Height() uint64 { return c.UpperRightTile().Y() - c.LowerLeftTile().Y() + 1 }

func (c TileExtent) Expand(tile TileIndex) TileExtent {
	if c.Contains(tile) {
		return c
	}

	minX := min(c.LowerLeftTile().X(), tile.X())
	minY := min(c.LowerLeftTile().Y(), tile.Y())
	maxX := max(c.UpperRightTile().X(), tile.X())
	maxY := max(c.UpperRightTile().Y(), tile.Y())

	return TileExtent{
		TileIndex{minX, minY},
		TileIndex{maxX, maxY},
	}
}

func (c TileExtent) Contains(tile TileIndex) bool {
	return !tile.isAboveOrRightOf(c.UpperRightTile()) && !tile.isBelowOrLeftOf(c.LowerLeftTile())
}

// ContainsPosition ignores the offsets, a position belongs to the extent when its tile does.
func (c TileExtent) ContainsPosition(p position.TilePosition) bool {
	return c.Contains(TileIndexOf(p))
}

// ToBound returns the world area covered by the extent. The upper right edge belongs to the next tile.
func (c TileExtent) ToBound(tileSize float64) orb.Bound {
	lowerLeft := c.LowerLeftTile().ToWorld(tileSize)
	upperRight := TileIndex{c.UpperRightTile().X() + 1, c.UpperRightTile().Y() + 1}.ToWorld(tileSize)
	return orb.Bound{Min: lowerLeft.Point(), Max: upperRight.Point()}
}

func (c TileExtent) ToPolygon(tileSize float64) orb.Polygon {
	bound := c.ToBound(tileSize)
	return orb.Polygon{
		orb.Ring{
			bound.Min,
			orb.Point{bound.Max.X(), bound.Min.Y()},
			bound.Max,
			orb.Point{bound.Min.X(), bound.Max.Y()},
			bound.Min,
		},
	}
}
