package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fossabot/TB-gen/internal/dataset"
)

const (
	// regions.csv carries more columns than we use; extras must be ignored.
	fixtureRegions = "name,alpha-2,region,sub-region\n" +
		"Peru,PE,Americas,Latin America and the Caribbean\n" +
		"India,IN,Asia,Southern Asia\n"
	fixtureCountries = "country,latitude,longitude,name\n" +
		"PE,-9.19,-75.0152,Peru\n" +
		"IN,20.593684,78.96288,India\n"
	fixtureShapes = `{"type":"FeatureCollection","features":[` +
		`{"type":"Feature","id":"PER","properties":{"name":"Peru"},"geometry":{"type":"Polygon","coordinates":[[[-75,-9],[-74,-9],[-74,-8],[-75,-9]]]}},` +
		`{"type":"Feature","id":"FRA","properties":{"name":"France"},"geometry":{"type":"Polygon","coordinates":[[[2,46],[3,46],[3,47],[2,46]]]}}]}`
)

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "regions.csv"), []byte(fixtureRegions), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "countries.csv"), []byte(fixtureCountries), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world_countries.json"), []byte(fixtureShapes), 0o644))
	return dir
}

func loadFixtureGazetteer(t *testing.T) *Gazetteer {
	t.Helper()
	dir := writeFixtures(t)
	g, err := LoadGazetteer(filepath.Join(dir, "regions.csv"), filepath.Join(dir, "countries.csv"))
	require.NoError(t, err)
	return g
}

func TestGazetteerLookups(t *testing.T) {
	g := loadFixtureGazetteer(t)

	assert.Equal(t, "Americas", g.Region("Peru"))
	assert.Equal(t, "", g.Region("Atlantis"))

	coord, ok := g.Coords("India")
	require.True(t, ok)
	assert.InDelta(t, 20.593684, coord.Lat, 1e-9)
	assert.InDelta(t, 78.96288, coord.Lon, 1e-9)

	_, ok = g.Coords("Atlantis")
	assert.False(t, ok)
}

func TestLoadGazetteerMissingFile(t *testing.T) {
	dir := writeFixtures(t)
	_, err := LoadGazetteer(filepath.Join(dir, "missing.csv"), filepath.Join(dir, "countries.csv"))
	assert.Error(t, err)
}

func TestChoropleth(t *testing.T) {
	dir := writeFixtures(t)
	shapes, err := LoadCountryShapes(filepath.Join(dir, "world_countries.json"))
	require.NoError(t, err)
	require.Len(t, shapes.Features, 2)

	counts := []dataset.CountryCount{
		{Country: "Peru", Samples: 3},
		{Country: "India", Samples: 1}, // no shape on the map
	}
	merged := Choropleth(shapes, counts)

	// France has no samples and India has no shape, so only Peru survives.
	require.Len(t, merged.Features, 1)
	f := merged.Features[0]
	assert.Equal(t, "Peru", f.Properties["name"])
	assert.Equal(t, 3, f.Properties["sampleCount"])
	assert.NotContains(t, f.Properties, "id")
	assert.Equal(t, shapes.Features[0].Geometry, f.Geometry)
}

func TestPoints(t *testing.T) {
	g := loadFixtureGazetteer(t)
	samples := []dataset.Sample{
		{Name: "ERR001", Country: "Peru", Level1: "lineage4", Level2: "lineage4.3"},
		{Name: "ERR002", Country: "India", Level1: "lineage1"},
		{Name: "ERR003", Country: ""},         // no isolation country
		{Name: "ERR004", Country: "Atlantis"}, // no coordinate entry
	}

	points := Points(samples, g)
	require.Len(t, points, 2)

	assert.Equal(t, "ERR001", points[0].Sample)
	assert.Equal(t, "Americas", points[0].Region)
	assert.InDelta(t, -9.19, points[0].Latitude, 1e-9)
	assert.InDelta(t, -75.0152, points[0].Longitude, 1e-9)
	assert.Equal(t, "lineage4.3", points[0].Level2)

	assert.Equal(t, "ERR002", points[1].Sample)
	assert.Equal(t, "Asia", points[1].Region)
}
