package position

import (
	"fmt"
	"math"
)

// Tile index arithmetic never wraps around. Leaving the int64 range is a caller bug and panics.

func widen(index uint64) int64 {
	if index > math.MaxInt64 {
		panic(fmt.Sprintf("tile index %d exceeds the signed tile index range", index))
	}
	return int64(index)
}

func addIndex(a int64, b int64) int64 {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		panic(fmt.Sprintf("tile index overflow: %d + %d", a, b))
	}
	return sum
}

func subIndex(a int64, b int64) int64 {
	difference := a - b
	if (b < 0 && difference < a) || (b > 0 && difference > a) {
		panic(fmt.Sprintf("tile index overflow: %d - %d", a, b))
	}
	return difference
}

// floatToIndex converts an already floored value into a tile index.
func floatToIndex(value float64) int64 {
	// -2^63 is exactly representable, 2^63 is the first value out of range.
	if math.IsNaN(value) || value < math.MinInt64 || value >= math.MaxInt64 {
		panic(fmt.Sprintf("coordinate %v is outside the tile index range", value))
	}
	return int64(value)
}

func checkTileSize(tileSize float64) {
	if !(tileSize > 0) || math.IsInf(tileSize, 1) {
		panic(fmt.Sprintf("tile size must be positive and finite but was %v", tileSize))
	}
}

// split folds the offset into the tile index so that the returned offset lies in [0, tileSize) after rounding it to
// the given precision. Floor division keeps negative offsets on the correct side of the tile boundary.
func split(index int64, offset float64, tileSize float64, precision Precision) (int64, float64) {
	carry := math.Floor(offset / tileSize)
	rel := precision.Round(offset - carry*tileSize)

	// The rounding or the division itself may land exactly on a tile boundary.
	if rel >= tileSize {
		carry++
		rel = precision.Round(rel - tileSize)
	} else if rel < 0 {
		carry--
		rel = precision.Round(rel + tileSize)
	}

	return addIndex(index, floatToIndex(carry)), rel
}
