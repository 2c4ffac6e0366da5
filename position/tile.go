package position

// TilePosition is an on-grid position: the index of a tile plus the offset from the lower left corner of that tile in
// world units. The offsets are rounded to the precision at construction.
type TilePosition struct {
	X         uint64
	Y         uint64
	RelX      float64
	RelY      float64
	Precision Precision
}

func NewTilePosition(x uint64, y uint64, relX float64, relY float64, precision Precision) TilePosition {
	return TilePosition{
		X:         x,
		Y:         y,
		RelX:      precision.Round(relX),
		RelY:      precision.Round(relY),
		Precision: precision,
	}
}

// Signed widens the tile indices. Indices beyond the int64 range panic.
func (p TilePosition) Signed() SignedTilePosition {
	return SignedTilePosition{
		X:         widen(p.X),
		Y:         widen(p.Y),
		RelX:      p.RelX,
		RelY:      p.RelY,
		Precision: p.Precision,
	}
}

func (p TilePosition) World(tileSize float64) WorldCoords {
	checkTileSize(tileSize)
	return WorldCoords{
		X: float64(p.X)*tileSize + p.RelX,
		Y: float64(p.Y)*tileSize + p.RelY,
	}
}

// Sub returns the delta from other to p. The result is not normalized, its offsets may be negative or exceed the tile
// size.
func (p TilePosition) Sub(other TilePosition) SignedTilePosition {
	return p.Signed().Sub(other.Signed())
}

// Add moves p by the given delta. The result is not normalized.
func (p TilePosition) Add(delta SignedTilePosition) SignedTilePosition {
	return p.Signed().Add(delta)
}

// Normalized folds offsets outside [0, tileSize) into the tile index. See SignedTilePosition.Normalized for the
// accepted offset range.
func (p TilePosition) Normalized(tileSize float64) (TilePosition, error) {
	normalized, err := p.Signed().Normalized(tileSize)
	if err != nil {
		return TilePosition{}, err
	}
	return normalized.ToTilePosition()
}

// Equal compares the tile indices exactly and the offsets at the coarser precision of both positions.
func (p TilePosition) Equal(other TilePosition) bool {
	precision := coarser(p.Precision, other.Precision)
	return p.X == other.X &&
		p.Y == other.Y &&
		precision.Equal(p.RelX, other.RelX) &&
		precision.Equal(p.RelY, other.RelY)
}
