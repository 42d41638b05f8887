package field

import (
	"cmp"
	"math"
	"slices"
)

const EarthRadiusKm = 6371.0

// DistanceKm is the great-circle distance between a and b by the spherical law of cosines.
func DistanceKm(a, b Coordinates) float64 {
	phi1 := radians(a.latitude)
	phi2 := radians(b.latitude)
	deltaLambda := radians(b.longitude) - radians(a.longitude)

	c := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLambda)
	// rounding can push identical points just past 1
	c = math.Max(-1, math.Min(1, c))
	return EarthRadiusKm * math.Acos(c)
}

// SortByProximity orders items ascending by distance from origin. Ties keep their input order.
func SortByProximity[T any](items []T, origin Coordinates, coordinatesOf func(T) Coordinates) {
	type ranked struct {
		item T
		km   float64
	}
	rs := make([]ranked, len(items))
	for i, it := range items {
		rs[i] = ranked{item: it, km: DistanceKm(origin, coordinatesOf(it))}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int { return cmp.Compare(a.km, b.km) })
	for i := range rs {
		items[i] = rs[i].item
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
