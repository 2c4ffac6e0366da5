package io

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/crossing"
	"github.com/thlorenz/raycast/grid"
	"github.com/thlorenz/raycast/position"
	"io"
	"os"
)

func WriteCrossingAsGeoJsonFile(filename string, result crossing.Result, from position.TilePosition, to position.TilePosition, region *grid.TileExtent, tileSize float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	err = WriteCrossingAsGeoJson(result, from, to, region, tileSize, file)
	closeErr := file.Close()
	if err != nil {
		return err
	}
	return errors.Wrapf(closeErr, "Unable to close file handle for GeoJSON file %s", filename)
}

// WriteCrossingAsGeoJson writes the searched segment, both ends of the crossing and, if given, the valid region as
// feature collection. Every feature has a "kind" property.
func WriteCrossingAsGeoJson(result crossing.Result, from position.TilePosition, to position.TilePosition, region *grid.TileExtent, tileSize float64, writer io.Writer) error {
	sigolo.Debug("Write crossing to GeoJSON")

	featureCollection := geojson.NewFeatureCollection()

	segment := geojson.NewFeature(orb.LineString{from.World(tileSize).Point(), to.World(tileSize).Point()})
	segment.Properties["kind"] = "segment"
	segment.Properties["from"] = from.String()
	segment.Properties["to"] = to.String()
	segment.Properties["bracketed"] = result.Bracketed
	segment.Properties["iterations"] = result.Iterations
	segment.Properties["width"] = result.Width
	featureCollection.Append(segment)

	if result.Valid != nil {
		featureCollection.Append(positionFeature("valid", *result.Valid, tileSize))
	}
	if result.Invalid != nil {
		featureCollection.Append(positionFeature("invalid", *result.Invalid, tileSize))
	}

	if region != nil {
		regionFeature := geojson.NewFeature(region.ToPolygon(tileSize))
		regionFeature.Properties["kind"] = "region"
		regionFeature.Properties["tiles_x"] = region.Width()
		regionFeature.Properties["tiles_y"] = region.Height()
		featureCollection.Append(regionFeature)
	}

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to marshal crossing as GeoJSON")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON")
	}

	return nil
}

func positionFeature(kind string, p position.TilePosition, tileSize float64) *geojson.Feature {
	feature := geojson.NewFeature(p.World(tileSize).Point())
	feature.Properties["kind"] = kind
	feature.Properties["position"] = p.String()
	return feature
}
