package geo

import (
	"math"

	"roam/internal/domain"
)

const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance between two points in miles.
func Haversine(a, b domain.Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

// CumulativeMiles returns, for each point of the path, the distance traveled
// from the start of the path to that point. The result has the same length
// as the path; the first entry is 0.
func CumulativeMiles(path []domain.Coordinates) []float64 {
	if len(path) == 0 {
		return nil
	}

	out := make([]float64, len(path))
	for i := 1; i < len(path); i++ {
		out[i] = out[i-1] + Haversine(path[i-1], path[i])
	}
	return out
}

// NearestPointIndex returns the index of the path point nearest to p and the
// distance to it in miles. The index is -1 for an empty path.
func NearestPointIndex(p domain.Coordinates, path []domain.Coordinates) (int, float64) {
	best := -1
	bestDist := math.Inf(1)

	for i, q := range path {
		if d := Haversine(p, q); d < bestDist {
			best = i
			bestDist = d
		}
	}

	return best, bestDist
}
