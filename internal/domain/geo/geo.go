// Package geo implements the distance and bounding-box math behind area searches.
//
// Radius searches run in two phases: a cheap axis-aligned bounding box that the
// store can answer with range predicates on indexed latitude/longitude columns,
// followed by an exact haversine check that drops the box corners.
package geo

import (
	"math"

	"directory/internal/errors"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used by HaversineDistance.
	EarthRadiusKm = 6371.0
	// KmPerDegree approximates the length of one degree of latitude.
	KmPerDegree = 111.0

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrInvalidCoordinate is returned for NaN, infinite or out of range coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// BoundingBox is an inclusive latitude/longitude rectangle.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Bound returns the box as an orb.Bound (X is longitude, Y is latitude).
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLon, b.MinLat},
		Max: orb.Point{b.MaxLon, b.MaxLat},
	}
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return b.Bound().Contains(orb.Point{lon, lat})
}

// IsValid reports whether the box has finite, ordered, in-range bounds.
func (b BoundingBox) IsValid() bool {
	if ValidateCoordinate(b.MinLat, b.MinLon) != nil || ValidateCoordinate(b.MaxLat, b.MaxLon) != nil {
		return false
	}

	return b.MinLat <= b.MaxLat && b.MinLon <= b.MaxLon
}

// ComputeBoundingBox returns the box enclosing the circle of radiusKm around (lat, lon).
//
// One degree of latitude is taken as 111 km; longitude degrees shrink with
// cos(lat). At the poles the cosine is zero and the longitude span diverges,
// so the box then covers every longitude. The same happens when the span
// would cross the antimeridian; the exact haversine pass keeps results correct.
func ComputeBoundingBox(lat, lon, radiusKm float64) BoundingBox {
	latDelta := radiusKm / KmPerDegree

	box := BoundingBox{
		MinLat: math.Max(lat-latDelta, MinLatitude),
		MaxLat: math.Min(lat+latDelta, MaxLatitude),
		MinLon: MinLongitude,
		MaxLon: MaxLongitude,
	}

	cosLat := math.Cos(toRadians(lat))
	if cosLat <= 0 {
		return box
	}

	lonDelta := radiusKm / (KmPerDegree * cosLat)
	if math.IsInf(lonDelta, 0) || math.IsNaN(lonDelta) {
		return box
	}

	minLon, maxLon := lon-lonDelta, lon+lonDelta
	if minLon < MinLongitude || maxLon > MaxLongitude {
		return box
	}

	box.MinLon = minLon
	box.MaxLon = maxLon

	return box
}

// HaversineDistance returns the great-circle distance in kilometers.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	deltaPhi := toRadians(lat2 - lat1)
	deltaLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Rounding can push a slightly above 1 for antipodal points.
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(math.Min(a, 1)))
}

// IsWithinRadius reports whether (lat, lon) is at most radiusKm from the center.
func IsWithinRadius(centerLat, centerLon, lat, lon, radiusKm float64) bool {
	return HaversineDistance(centerLat, centerLon, lat, lon) <= radiusKm
}

// ValidateCoordinate checks that lat and lon are finite and on the globe.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return errors.Wrap(ErrInvalidCoordinate, "coordinate must be finite")
	}

	if lat < MinLatitude || lat > MaxLatitude {
		return errors.Wrapf(ErrInvalidCoordinate, "latitude %v out of [-90, 90]", lat)
	}

	if lon < MinLongitude || lon > MaxLongitude {
		return errors.Wrapf(ErrInvalidCoordinate, "longitude %v out of [-180, 180]", lon)
	}

	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
