package position

import (
	"github.com/thlorenz/raycast/util"
	"testing"
)

func TestTilePosition_string(t *testing.T) {
	util.AssertEqual(t, "((1, 0.500), (3, 0.250))", NewTilePosition(1, 3, 0.5, 0.25, TestPrecision).String())
	util.AssertEqual(t, "((1, 0.50000000), (3, 0.25000000))", NewTilePosition(1, 3, 0.5, 0.25, ProductionPrecision).String())
	util.AssertEqual(t, "((-2, -0.125), (0, 0.000))", NewSignedTilePosition(-2, 0, -0.125, 0, TestPrecision).String())
}

func TestParseTilePosition_roundTrip(t *testing.T) {
	positions := []TilePosition{
		NewTilePosition(1, 3, 0.5, 0.25, TestPrecision),
		NewTilePosition(0, 0, 0, 0, TestPrecision),
		NewTilePosition(123456789, 42, 0.12345678, 0.87654321, ProductionPrecision),
	}

	for _, p := range positions {
		// Act
		parsed, err := ParseTilePosition(p.String(), p.Precision)

		// Assert
		util.AssertNil(t, err)
		util.AssertEqual(t, p, parsed)
	}
}

func TestParseSignedTilePosition_roundTrip(t *testing.T) {
	// Arrange
	p := NewSignedTilePosition(-7, 12, -0.5, 1.75, TestPrecision)

	// Act
	parsed, err := ParseSignedTilePosition(p.String(), TestPrecision)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, p, parsed)
}

func TestParseTilePosition_shortForm(t *testing.T) {
	// Act
	parsed, err := ParseTilePosition("9,0.5, 5,0.25", TestPrecision)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, NewTilePosition(9, 5, 0.5, 0.25, TestPrecision), parsed)
}

func TestParseTilePosition_invalid(t *testing.T) {
	_, err := ParseTilePosition("((1, 0.5), (3))", TestPrecision)
	util.AssertError(t, "Expected position of the form ((x, relX), (y, relY)) but found '((1, 0.5), (3))'", err)

	_, err = ParseTilePosition("((-1, 0.5), (3, 0.0))", TestPrecision)
	util.AssertNotNil(t, err)

	_, err = ParseTilePosition("((1, abc), (3, 0.0))", TestPrecision)
	util.AssertNotNil(t, err)
}

func TestParsePrecision(t *testing.T) {
	precision, err := ParsePrecision("Test")
	util.AssertNil(t, err)
	util.AssertEqual(t, TestPrecision, precision)
	util.AssertEqual(t, 3, precision.Digits())
	util.AssertEqual(t, 0.001, precision.Epsilon())

	precision, err = ParsePrecision("production")
	util.AssertNil(t, err)
	util.AssertEqual(t, ProductionPrecision, precision)
	util.AssertEqual(t, "production", precision.String())

	_, err = ParsePrecision("exact")
	util.AssertError(t, "Unknown precision 'exact', expected 'production' or 'test'", err)
}
