package io

import (
	"bytes"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/thlorenz/raycast/crossing"
	"github.com/thlorenz/raycast/grid"
	"github.com/thlorenz/raycast/position"
	"github.com/thlorenz/raycast/util"
	"os"
	"path"
	"testing"
)

func TestWriteCrossingAsGeoJson(t *testing.T) {
	// Arrange
	from := position.NewTilePosition(9, 5, 0.5, 0.5, position.TestPrecision)
	to := position.NewTilePosition(10, 5, 0.5, 0.5, position.TestPrecision)
	valid := position.NewTilePosition(9, 5, 0.999, 0.5, position.TestPrecision)
	invalid := position.NewTilePosition(10, 5, 0, 0.5, position.TestPrecision)
	result := crossing.Result{
		Crossing:   crossing.Crossing{Valid: &valid, Invalid: &invalid},
		Width:      0.0009765625,
		Iterations: 10,
		Bracketed:  true,
	}
	region := grid.TileExtent{grid.TileIndex{0, 0}, grid.TileIndex{9, 9}}
	buffer := &bytes.Buffer{}

	// Act
	err := WriteCrossingAsGeoJson(result, from, to, &region, 1.0, buffer)

	// Assert
	util.AssertNil(t, err)

	featureCollection, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	util.AssertNil(t, err)
	util.AssertEqual(t, 4, len(featureCollection.Features))

	util.AssertEqual(t, "segment", featureCollection.Features[0].Properties["kind"])
	util.AssertEqual(t, orb.LineString{{9.5, 5.5}, {10.5, 5.5}}, featureCollection.Features[0].Geometry)
	util.AssertEqual(t, true, featureCollection.Features[0].Properties["bracketed"])
	util.AssertEqual(t, 10.0, featureCollection.Features[0].Properties["iterations"])

	util.AssertEqual(t, "valid", featureCollection.Features[1].Properties["kind"])
	util.AssertEqual(t, "((9, 0.999), (5, 0.500))", featureCollection.Features[1].Properties["position"])
	util.AssertEqual(t, orb.Point{10, 5.5}, featureCollection.Features[2].Geometry)
	util.AssertEqual(t, "region", featureCollection.Features[3].Properties["kind"])
	util.AssertEqual(t, 10.0, featureCollection.Features[3].Properties["tiles_x"])
	util.AssertEqual(t, 10.0, featureCollection.Features[3].Properties["tiles_y"])
}

func TestWriteCrossingAsGeoJson_notBracketed(t *testing.T) {
	// Arrange
	from := position.NewTilePosition(1, 1, 0, 0, position.TestPrecision)
	to := position.NewTilePosition(2, 2, 0, 0, position.TestPrecision)
	result := crossing.Result{Crossing: crossing.Crossing{Valid: &from, Invalid: &to}}
	buffer := &bytes.Buffer{}

	// Act
	err := WriteCrossingAsGeoJson(result, from, to, nil, 1.0, buffer)

	// Assert
	util.AssertNil(t, err)

	featureCollection, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, len(featureCollection.Features))
	util.AssertEqual(t, false, featureCollection.Features[0].Properties["bracketed"])
	util.AssertEqual(t, "valid", featureCollection.Features[1].Properties["kind"])
	util.AssertEqual(t, orb.Point{1, 1}, featureCollection.Features[1].Geometry)
	util.AssertEqual(t, "invalid", featureCollection.Features[2].Properties["kind"])
	util.AssertEqual(t, orb.Point{2, 2}, featureCollection.Features[2].Geometry)
}

func TestWriteCrossingAsGeoJsonFile(t *testing.T) {
	// Arrange
	filename := path.Join(t.TempDir(), "crossing.geojson")
	p := position.NewTilePosition(1, 1, 0, 0, position.TestPrecision)

	// Act
	err := WriteCrossingAsGeoJsonFile(filename, crossing.Result{}, p, p, nil, 1.0)

	// Assert
	util.AssertNil(t, err)
	data, err := os.ReadFile(filename)
	util.AssertNil(t, err)
	util.AssertMatch(t, `"FeatureCollection"`, string(data))
}
