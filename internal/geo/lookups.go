// Package geo resolves sample countries to regions, coordinates, and map
// shapes for the distribution map on the dataset page.
package geo

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

type regionRow struct {
	Name   string `csv:"name"`
	Region string `csv:"region"`
}

type countryRow struct {
	Country   string  `csv:"country"`
	Name      string  `csv:"name"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
}

// Coord is a WGS84 latitude/longitude pair.
type Coord struct {
	Lat float64
	Lon float64
}

// Gazetteer maps country names to their region and representative
// coordinates, loaded from the regions.csv and countries.csv lookup tables.
type Gazetteer struct {
	regions map[string]string
	coords  map[string]Coord
}

// LoadGazetteer reads both lookup tables. Extra columns are ignored.
func LoadGazetteer(regionsPath, countriesPath string) (*Gazetteer, error) {
	var regions []regionRow
	if err := unmarshalCSVFile(regionsPath, &regions); err != nil {
		return nil, fmt.Errorf("load regions lookup: %w", err)
	}
	var countries []countryRow
	if err := unmarshalCSVFile(countriesPath, &countries); err != nil {
		return nil, fmt.Errorf("load country coordinates: %w", err)
	}

	g := &Gazetteer{
		regions: make(map[string]string, len(regions)),
		coords:  make(map[string]Coord, len(countries)),
	}
	for _, r := range regions {
		g.regions[r.Name] = r.Region
	}
	for _, c := range countries {
		g.coords[c.Name] = Coord{Lat: c.Latitude, Lon: c.Longitude}
	}
	return g, nil
}

// Region returns the region a country belongs to, or "" when unknown.
func (g *Gazetteer) Region(country string) string {
	return g.regions[country]
}

// Coords returns a country's representative coordinates.
func (g *Gazetteer) Coords(country string) (Coord, bool) {
	c, ok := g.coords[country]
	return c, ok
}

func unmarshalCSVFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
