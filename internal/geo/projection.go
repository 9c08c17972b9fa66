// Package geo places gym coordinates on a 2D map panel. This is a fixed
// bounding-box affine transform, not a geographic projection: the region is
// small (the Netherlands), so a linear mapping is accurate enough for a
// marker panel.
package geo

// Bounds is a lat/lng bounding box.
type Bounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// NetherlandsBounds is the approximate bounding box of the Netherlands.
var NetherlandsBounds = Bounds{
	MinLat: 50.75,
	MaxLat: 53.55,
	MinLng: 3.35,
	MaxLng: 7.25,
}

// Position is a marker position in percent of the panel, origin top-left.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project maps (lat, lng) to a percentage position inside b. X grows with
// longitude, Y grows southward (north is up). Both axes are clamped to
// [2, 98] so markers never render flush against the panel edge.
func (b Bounds) Project(lat, lng float64) Position {
	x := (lng - b.MinLng) / (b.MaxLng - b.MinLng) * 100
	y := (b.MaxLat - lat) / (b.MaxLat - b.MinLat) * 100
	return Position{X: clamp(x), Y: clamp(y)}
}

func clamp(v float64) float64 {
	if v < 2 {
		return 2
	}
	if v > 98 {
		return 98
	}
	return v
}
