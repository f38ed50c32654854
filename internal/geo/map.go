package geo

import (
	"github.com/paulmach/orb/geojson"

	"github.com/fossabot/TB-gen/internal/dataset"
)

// Point is one sample placed at its country's coordinates, with the fields
// shown in the map popup.
type Point struct {
	Sample    string  `json:"sample"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Level1    string  `json:"level1"`
	Level2    string  `json:"level2"`
	Level3    string  `json:"level3"`
	Level4    string  `json:"level4"`
	Level5    string  `json:"level5"`
}

// Choropleth merges per-country sample counts onto the country shapes.
// Features whose country has no samples are dropped, so the map only shades
// countries present in the dataset. The count is attached as a
// "sampleCount" property next to the feature's existing "name".
func Choropleth(shapes *geojson.FeatureCollection, counts []dataset.CountryCount) *geojson.FeatureCollection {
	byCountry := make(map[string]int, len(counts))
	for _, c := range counts {
		byCountry[c.Country] = c.Samples
	}

	out := geojson.NewFeatureCollection()
	for _, f := range shapes.Features {
		name, _ := f.Properties["name"].(string)
		n, ok := byCountry[name]
		if !ok {
			continue
		}
		merged := geojson.NewFeature(f.Geometry)
		merged.Properties = geojson.Properties{
			"name":        name,
			"sampleCount": n,
		}
		out.Append(merged)
	}
	return out
}

// Points builds one map point per sample, looked up through the gazetteer.
// Samples whose country has no coordinate entry are dropped, matching the
// dashboard's note that samples without isolation-country data are not
// shown on the map.
func Points(samples []dataset.Sample, g *Gazetteer) []Point {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		coord, ok := g.Coords(s.Country)
		if !ok {
			continue
		}
		points = append(points, Point{
			Sample:    s.Name,
			Country:   s.Country,
			Region:    g.Region(s.Country),
			Latitude:  coord.Lat,
			Longitude: coord.Lon,
			Level1:    s.Level1,
			Level2:    s.Level2,
			Level3:    s.Level3,
			Level4:    s.Level4,
			Level5:    s.Level5,
		})
	}
	return points
}
