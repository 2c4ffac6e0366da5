package grid

import (
	"github.com/paulmach/orb"
	"github.com/thlorenz/raycast/util"
	"testing"
)

func TestTileIndex_isBelowOrLeftOf(t *testing.T) {
	tile := TileIndex{10, 10}
	/*
		[ 9,11]   [10,11]   [11,11]

		[ 9,10]   [10,10]   [11,10]

		[ 9, 9]   [10, 9]   [11, 9]
	*/

	// First column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{9, 11}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{9, 10}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{9, 9}))

	// Second column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{10, 11}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{10, 10}))
	util.AssertFalse(t, tile.isBelowOrLeftOf(TileIndex{10, 9}))

	// Third column
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 11}))
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 10}))
	util.AssertTrue(t, tile.isBelowOrLeftOf(TileIndex{11, 9}))
}

func TestTileExtent_expand(t *testing.T) {
	extent := TileExtent{TileIndex{10, 10}, TileIndex{20, 20}}

	util.AssertEqual(t, extent, extent.Expand(TileIndex{10, 10}))
	util.AssertEqual(t, extent, extent.Expand(TileIndex{15, 15}))
	util.AssertEqual(t, extent, extent.Expand(TileIndex{20, 20}))

	util.AssertEqual(t, TileExtent{TileIndex{9, 9}, TileIndex{20, 20}}, extent.Expand(TileIndex{9, 9}))
	util.AssertEqual(t, TileExtent{TileIndex{10, 10}, TileIndex{21, 21}}, extent.Expand(TileIndex{21, 21}))
	util.AssertEqual(t, TileExtent{TileIndex{9, 10}, TileIndex{20, 21}}, extent.Expand(TileIndex{9, 21}))
	util.AssertEqual(t, TileExtent{TileIndex{10, 9}, TileIndex{21, 20}}, extent.Expand(TileIndex{21, 9}))
}

func TestTileExtent_newInAnyOrder(t *testing.T) {
	util.AssertEqual(t, TileExtent{TileIndex{2, 3}, TileIndex{7, 9}}, NewTileExtent(TileIndex{7, 3}, TileIndex{2, 9}))
	util.AssertEqual(t, uint64(6), NewTileExtent(TileIndex{7, 3}, TileIndex{2, 9}).Width())
	util.AssertEqual(t, uint64(7), NewTileExtent(TileIndex{7, 3}, TileIndex{2, 9}).Height())
}

func TestTileExtent_contains(t *testing.T) {
	extent := TileExtent{TileIndex{10, 10}, TileIndex{20, 20}}

	// Lower-left corner
	util.AssertFalse(t, extent.Contains(TileIndex{9, 10}))
	util.AssertFalse(t, extent.Contains(TileIndex{10, 9}))
	util.AssertTrue(t, extent.Contains(TileIndex{10, 10}))
	util.AssertTrue(t, extent.Contains(TileIndex{11, 11}))

	// Upper-right corner
	util.AssertTrue(t, extent.Contains(TileIndex{20, 20}))
	util.AssertTrue(t, extent.Contains(TileIndex{19, 20}))
	util.AssertFalse(t, extent.Contains(TileIndex{21, 20}))
	util.AssertFalse(t, extent.Contains(TileIndex{20, 21}))
}

func TestTileExtent_toPolygon(t *testing.T) {
	extent := TileExtent{TileIndex{1, 2}, TileIndex{3, 4}}

	util.AssertEqual(t, orb.Bound{Min: orb.Point{2, 4}, Max: orb.Point{8, 10}}, extent.ToBound(2))
	util.AssertEqual(t, orb.Polygon{
		orb.Ring{
			orb.Point{2, 4},
			orb.Point{8, 4},
			orb.Point{8, 10},
			orb.Point{2, 10},
			orb.Point{2, 4},
		},
	}, extent.ToPolygon(2))
}

func TestParseTileExtent(t *testing.T) {
	extent, err := ParseTileExtent("0, 0, 9,9")
	util.AssertNil(t, err)
	util.AssertEqual(t, TileExtent{TileIndex{0, 0}, TileIndex{9, 9}}, extent)

	_, err = ParseTileExtent("0,0,9")
	util.AssertError(t, "Expected tile extent of the form minX,minY,maxX,maxY but found '0,0,9'", err)

	_, err = ParseTileExtent("0,0,9,-1")
	util.AssertNotNil(t, err)
}
