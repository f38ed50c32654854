package geo

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// LoadCountryShapes reads the world-countries GeoJSON file. Each feature is
// expected to carry a "name" property matching the country names used in
// the sample table and lookup files.
func LoadCountryShapes(path string) (*geojson.FeatureCollection, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read country shapes: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(b)
	if err != nil {
		return nil, fmt.Errorf("parse country shapes %s: %w", path, err)
	}
	return fc, nil
}
