package position

import (
	"fmt"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// String renders ((x, relX), (y, relY)) with as many offset digits as the precision keeps. ParseTilePosition reads it
// back.
func (p TilePosition) String() string {
	digits := p.Precision.Digits()
	return fmt.Sprintf("((%d, %.*f), (%d, %.*f))", p.X, digits, p.RelX, p.Y, digits, p.RelY)
}

func (p SignedTilePosition) String() string {
	digits := p.Precision.Digits()
	return fmt.Sprintf("((%d, %.*f), (%d, %.*f))", p.X, digits, p.RelX, p.Y, digits, p.RelY)
}

// ParseTilePosition reads the String form of a tile position. Parentheses and whitespace are optional, so "1,0.5,3,0"
// is accepted as well.
func ParseTilePosition(s string, precision Precision) (TilePosition, error) {
	fields, err := splitPositionFields(s)
	if err != nil {
		return TilePosition{}, err
	}

	x, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return TilePosition{}, errors.Wrapf(err, "Unable to parse x tile index of '%s'", s)
	}
	y, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return TilePosition{}, errors.Wrapf(err, "Unable to parse y tile index of '%s'", s)
	}
	relX, relY, err := parseOffsets(s, fields)
	if err != nil {
		return TilePosition{}, err
	}

	return NewTilePosition(x, y, relX, relY, precision), nil
}

func ParseSignedTilePosition(s string, precision Precision) (SignedTilePosition, error) {
	fields, err := splitPositionFields(s)
	if err != nil {
		return SignedTilePosition{}, err
	}

	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return SignedTilePosition{}, errors.Wrapf(err, "Unable to parse x tile index of '%s'", s)
	}
	y, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return SignedTilePosition{}, errors.Wrapf(err, "Unable to parse y tile index of '%s'", s)
	}
	relX, relY, err := parseOffsets(s, fields)
	if err != nil {
		return SignedTilePosition{}, err
	}

	return NewSignedTilePosition(x, y, relX, relY, precision), nil
}

func splitPositionFields(s string) ([]string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', ' ', '\t':
			return -1
		}
		return r
	}, s)

	fields := strings.Split(cleaned, ",")
	if len(fields) != 4 {
		return nil, errors.Errorf("Expected position of the form ((x, relX), (y, relY)) but found '%s'", s)
	}
	return fields, nil
}

func parseOffsets(s string, fields []string) (float64, float64, error) {
	relX, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "Unable to parse relative x offset of '%s'", s)
	}
	relY, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "Unable to parse relative y offset of '%s'", s)
	}
	return relX, relY, nil
}
