package position

import (
	"math"
	"math/big"
)

// SignedTilePosition is either a position which may lie off the grid or a delta between two tile positions. Its
// offsets are only guaranteed to be in [0, tileSize) after Normalized.
type SignedTilePosition struct {
	X         int64
	Y         int64
	RelX      float64
	RelY      float64
	Precision Precision
}

func NewSignedTilePosition(x int64, y int64, relX float64, relY float64, precision Precision) SignedTilePosition {
	return SignedTilePosition{
		X:         x,
		Y:         y,
		RelX:      precision.Round(relX),
		RelY:      precision.Round(relY),
		Precision: precision,
	}
}

func (p SignedTilePosition) Signed() SignedTilePosition {
	return p
}

func (p SignedTilePosition) World(tileSize float64) WorldCoords {
	checkTileSize(tileSize)
	return WorldCoords{
		X: float64(p.X)*tileSize + p.RelX,
		Y: float64(p.Y)*tileSize + p.RelY,
	}
}

func (p SignedTilePosition) Add(other SignedTilePosition) SignedTilePosition {
	return NewSignedTilePosition(
		addIndex(p.X, other.X),
		addIndex(p.Y, other.Y),
		p.RelX+other.RelX,
		p.RelY+other.RelY,
		coarser(p.Precision, other.Precision),
	)
}

func (p SignedTilePosition) Sub(other SignedTilePosition) SignedTilePosition {
	return NewSignedTilePosition(
		subIndex(p.X, other.X),
		subIndex(p.Y, other.Y),
		p.RelX-other.RelX,
		p.RelY-other.RelY,
		coarser(p.Precision, other.Precision),
	)
}

// Normalized folds the offsets into the tile indices so that they end up in [0, tileSize). At most one tile width of
// overflow is accepted: an offset outside (-2*tileSize, 2*tileSize) returns a *PreconditionError.
func (p SignedTilePosition) Normalized(tileSize float64) (SignedTilePosition, error) {
	checkTileSize(tileSize)

	if err := checkNormalizable("x", p.RelX, tileSize); err != nil {
		return SignedTilePosition{}, err
	}
	if err := checkNormalizable("y", p.RelY, tileSize); err != nil {
		return SignedTilePosition{}, err
	}

	x, relX := split(p.X, p.RelX, tileSize, p.Precision)
	y, relY := split(p.Y, p.RelY, tileSize, p.Precision)

	return SignedTilePosition{X: x, Y: y, RelX: relX, RelY: relY, Precision: p.Precision}, nil
}

func checkNormalizable(axis string, rel float64, tileSize float64) error {
	doubleTileSize := 2 * tileSize
	if -doubleTileSize < rel && rel < doubleTileSize {
		return nil
	}
	return newPreconditionError(axis, rel, tileSize)
}

// ToTilePosition narrows to an on-grid position. The effective coordinate index+rel decides: it fails with an
// *OffGridError when it is negative on either axis, e.g. for x=0 and relX=-0.1. An axis with a negative index but a
// non-negative effective coordinate is folded to index 0 with the effective coordinate as offset, so x=-1 and
// relX=1.5 become x=0 and relX=0.5.
func (p SignedTilePosition) ToTilePosition() (TilePosition, error) {
	if isNegative(p.X, p.RelX) || isNegative(p.Y, p.RelY) {
		return TilePosition{}, newOffGridError(p)
	}

	x, relX := foldToGrid(p.X, p.RelX, p.Precision)
	y, relY := foldToGrid(p.Y, p.RelY, p.Precision)

	return TilePosition{
		X:         x,
		Y:         y,
		RelX:      relX,
		RelY:      relY,
		Precision: p.Precision,
	}, nil
}

// foldToGrid expects a non-negative effective coordinate.
func foldToGrid(index int64, rel float64, precision Precision) (uint64, float64) {
	if index >= 0 {
		return uint64(index), rel
	}
	return 0, precision.Round(float64(index) + rel)
}

// isNegative evaluates index+rel exactly so no sign information near zero gets lost.
func isNegative(index int64, rel float64) bool {
	if math.IsNaN(rel) {
		return true
	}
	effective := new(big.Float).SetPrec(128).SetInt64(index)
	effective.Add(effective, new(big.Float).SetPrec(128).SetFloat64(rel))
	return effective.Sign() < 0
}

// Equal compares the tile indices exactly and the offsets at the coarser precision of both positions.
func (p SignedTilePosition) Equal(other SignedTilePosition) bool {
	precision := coarser(p.Precision, other.Precision)
	return p.X == other.X &&
		p.Y == other.Y &&
		precision.Equal(p.RelX, other.RelX) &&
		precision.Equal(p.RelY, other.RelY)
}
