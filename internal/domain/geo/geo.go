// Package geo implements the two-stage spatial filter used for proximity
// matching: a cheap bounding-box predicate followed by exact great-circle
// distance. It is deliberately storage-agnostic.
package geo

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

const (
	earthRadiusKm = 6371.0
	kmPerDegLat   = 110.574
	kmPerDegLng   = 111.320
)

type Point struct {
	Lat float64
	Lng float64
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// BoundingBox is a flat-earth approximation of a radius around a center,
// used to discard obviously out-of-range points before the exact check.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(center Point, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegLat

	// Longitude degrees shrink with latitude; clamp near the poles where
	// the approximation degenerates.
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	dLng := radiusKm / (kmPerDegLng * cosLat)

	return BoundingBox{
		MinLat: center.Lat - dLat,
		MaxLat: center.Lat + dLat,
		MinLng: center.Lng - dLng,
		MaxLng: center.Lng + dLng,
	}
}

func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Candidate is a driver position entering the ranking pipeline.
type Candidate struct {
	DriverID        uuid.UUID
	Point           Point
	ServiceRadiusKm float64
}

// Ranked is a candidate that survived filtering, with its exact distance.
type Ranked struct {
	Candidate
	DistanceKm float64
}

// RankWithin runs the full pipeline: bounding-box pre-filter, exact
// haversine cut at min(radiusKm, candidate's own service radius), ascending
// sort by distance, truncation to limit. The candidate's own radius can only
// restrict the caller's, never widen it.
func RankWithin(origin Point, radiusKm float64, limit int, candidates []Candidate) []Ranked {
	box := NewBoundingBox(origin, radiusKm)

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		if !box.Contains(c.Point) {
			continue
		}
		dist := HaversineKm(origin, c.Point)
		effective := radiusKm
		if c.ServiceRadiusKm > 0 && c.ServiceRadiusKm < effective {
			effective = c.ServiceRadiusKm
		}
		if dist > effective {
			continue
		}
		ranked = append(ranked, Ranked{Candidate: c, DistanceKm: dist})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
