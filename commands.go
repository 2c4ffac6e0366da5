package main

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/config"
	"github.com/thlorenz/raycast/crossing"
	"github.com/thlorenz/raycast/grid"
	ownIo "github.com/thlorenz/raycast/io"
	"github.com/thlorenz/raycast/position"
	"io"
)

// loadSettings reads the config file, if any, and applies the command line overrides on top of it.
func loadSettings(configFile string, tileSize float64, precision string, epsilon float64) (*config.Config, error) {
	settings := config.Default()
	if configFile != "" {
		var err error
		settings, err = config.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
	}

	if tileSize != 0 {
		settings.Grid.TileSize = tileSize
	}
	if precision != "" {
		settings.Grid.Precision = precision
	}
	if epsilon != 0 {
		settings.Crossing.Epsilon = epsilon
	}

	err := settings.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "Invalid settings")
	}
	return settings, nil
}

func runConvert(writer io.Writer, settings *config.Config, x float64, y float64) error {
	world := position.NewWorldCoords(x, y)
	signed := world.ToSignedTilePosition(settings.GetTileSize(), settings.GetPrecision())

	fmt.Fprintf(writer, "world:  %s\n", world.String())
	fmt.Fprintf(writer, "signed: %s\n", signed.String())

	tilePosition, err := signed.ToTilePosition()
	var offGridError *position.OffGridError
	if errors.As(err, &offGridError) {
		fmt.Fprintln(writer, "tile:   off grid")
		return nil
	} else if err != nil {
		return err
	}

	fmt.Fprintf(writer, "tile:   %s\n", tilePosition.String())
	return nil
}

func runDelta(writer io.Writer, settings *config.Config, a string, b string) error {
	positionA, positionB, err := parsePositionPair(settings, a, b)
	if err != nil {
		return err
	}

	delta := positionA.Sub(positionB)
	fmt.Fprintf(writer, "delta:      %s\n", delta.String())

	normalized, err := delta.Normalized(settings.GetTileSize())
	if err != nil {
		return errors.Wrapf(err, "Unable to normalize delta %s", delta.String())
	}
	fmt.Fprintf(writer, "normalized: %s\n", normalized.String())

	return nil
}

func runDistance(writer io.Writer, settings *config.Config, a string, b string) error {
	positionA, positionB, err := parsePositionPair(settings, a, b)
	if err != nil {
		return err
	}

	fmt.Fprintf(writer, "global:    %v\n", settings.GetPrecision().Round(position.DistanceGlobal(positionA, positionB, settings.GetTileSize())))
	fmt.Fprintf(writer, "relative:  %v\n", settings.GetPrecision().Round(position.DistanceRelative(positionA, positionB)))
	fmt.Fprintf(writer, "same tile: %t\n", position.IsSameTile(positionA, positionB))

	return nil
}

func runCrossing(writer io.Writer, settings *config.Config, from string, to string, region string, geojsonFile string) error {
	fromPosition, toPosition, err := parsePositionPair(settings, from, to)
	if err != nil {
		return err
	}

	extent, err := grid.ParseTileExtent(region)
	if err != nil {
		return err
	}

	result, err := crossing.Search(fromPosition, toPosition, crossing.InExtent(extent), settings.SearchOptions())
	var nonConvergenceError *crossing.NonConvergenceError
	if errors.Is(err, crossing.ErrNotBracketed) {
		sigolo.Infof("Segment does not cross the border of region %s", region)
	} else if errors.As(err, &nonConvergenceError) {
		sigolo.Errorf("%s", nonConvergenceError.Error())
	} else if err != nil {
		return err
	}

	fmt.Fprintf(writer, "region:     %dx%d tiles\n", extent.Width(), extent.Height())
	fmt.Fprintf(writer, "bracketed:  %t\n", result.Bracketed)
	fmt.Fprintf(writer, "valid:      %s\n", describe(result.Valid))
	fmt.Fprintf(writer, "invalid:    %s\n", describe(result.Invalid))
	fmt.Fprintf(writer, "width:      %g\n", result.Width)
	fmt.Fprintf(writer, "iterations: %d\n", result.Iterations)

	if geojsonFile != "" {
		err = ownIo.WriteCrossingAsGeoJsonFile(geojsonFile, result, fromPosition, toPosition, &extent, settings.GetTileSize())
		if err != nil {
			return err
		}
		sigolo.Infof("Wrote crossing to %s", geojsonFile)
	}

	return nil
}

func parsePositionPair(settings *config.Config, a string, b string) (position.TilePosition, position.TilePosition, error) {
	positionA, err := position.ParseTilePosition(a, settings.GetPrecision())
	if err != nil {
		return position.TilePosition{}, position.TilePosition{}, err
	}
	positionB, err := position.ParseTilePosition(b, settings.GetPrecision())
	if err != nil {
		return position.TilePosition{}, position.TilePosition{}, err
	}
	return positionA, positionB, nil
}

func describe(p *position.TilePosition) string {
	if p == nil {
		return "-"
	}
	return p.String()
}
