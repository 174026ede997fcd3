// Package geo provides great-circle distance math and radius filtering
// over catalog places.
package geo

import (
	"math"

	"github.com/myhalal/directory/internal/model"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// coordinates. Invalid coordinates (NaN, Inf, out of range) yield +Inf so
// the pair sorts behind every real distance.
func Haversine(a, b model.Coordinate) float64 {
	if !a.Valid() || !b.Valid() {
		return math.Inf(1)
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Match is a place together with its distance from the query point.
type Match struct {
	Place    *model.Place
	Distance float64
}

// Nearby returns the places within radiusKm of origin, inclusive, in the
// order they appear in places. Places with invalid coordinates never match.
func Nearby(origin model.Coordinate, places []*model.Place, radiusKm float64) []Match {
	var out []Match
	for _, p := range places {
		d := Haversine(origin, model.Coordinate{Lat: p.Lat, Lng: p.Lng})
		if d <= radiusKm {
			out = append(out, Match{Place: p, Distance: d})
		}
	}
	return out
}
