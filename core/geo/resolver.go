// Package geo provides city resolution and great-circle distance math.
package geo

import (
	"math"

	"tripcost/core/types"
	"tripcost/internal/errors"
)

const earthRadiusKm = 6371.0

// GenericDistanceKm is the documented last-resort distance used when a
// city cannot be resolved against the table. It is a heuristic business
// constant; callers that use it must mark the result as estimated.
const GenericDistanceKm = 2000.0

// CityIndex is an immutable exact-match name lookup over a city table
type CityIndex struct {
	byName map[string]types.CityLocation
	cities []types.CityLocation
}

// NewCityIndex builds an index over the given table. The slice is not
// copied; callers must not mutate it afterwards.
func NewCityIndex(cities []types.CityLocation) *CityIndex {
	byName := make(map[string]types.CityLocation, len(cities))
	for _, c := range cities {
		byName[c.Name] = c
	}
	return &CityIndex{byName: byName, cities: cities}
}

// NewDefaultIndex builds an index over the built-in table
func NewDefaultIndex() *CityIndex {
	return NewCityIndex(DefaultCities())
}

// Lookup resolves a city by exact name
func (i *CityIndex) Lookup(name string) (types.CityLocation, bool) {
	c, ok := i.byName[name]
	return c, ok
}

// Cities returns the indexed table
func (i *CityIndex) Cities() []types.CityLocation {
	return i.cities
}

// Len returns the number of indexed cities
func (i *CityIndex) Len() int {
	return len(i.byName)
}

// Distance returns the great-circle distance in kilometres between two
// named cities. An unresolved city yields a LOCATION_NOT_FOUND error,
// never a silent zero; the caller decides whether to fall back to
// GenericDistanceKm.
func (i *CityIndex) Distance(cityA, cityB string) (float64, error) {
	a, ok := i.byName[cityA]
	if !ok {
		return 0, errors.Location(cityA)
	}
	b, ok := i.byName[cityB]
	if !ok {
		return 0, errors.Location(cityB)
	}
	return HaversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude), nil
}

// HaversineKm returns the great-circle distance in kilometres between
// two points specified in decimal degrees.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
