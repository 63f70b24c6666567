package quotepdf

import "math"

const (
	CanvasWidth  = 600.0
	CanvasHeight = 300.0

	// continental US box the diagram starts from
	baseMinLon, baseMaxLon = -125.0, -66.0
	baseMinLat, baseMaxLat = 24.0, 49.0

	boundsMarginDeg = 5.0
)

type Point struct {
	X float64
	Y float64
}

// Bounds is a lon/lat box mapped onto the canvas.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// RouteBounds widens the base box just enough to keep both ends on the canvas.
func RouteBounds(lon1, lat1, lon2, lat2 float64) Bounds {
	b := Bounds{MinLon: baseMinLon, MaxLon: baseMaxLon, MinLat: baseMinLat, MaxLat: baseMaxLat}

	for _, lon := range []float64{lon1, lon2} {
		b.MinLon = math.Min(b.MinLon, lon-boundsMarginDeg)
		b.MaxLon = math.Max(b.MaxLon, lon+boundsMarginDeg)
	}

	for _, lat := range []float64{lat1, lat2} {
		b.MinLat = math.Min(b.MinLat, lat-boundsMarginDeg)
		b.MaxLat = math.Max(b.MaxLat, lat+boundsMarginDeg)
	}

	return b
}

// Project maps lon/lat linearly onto the 600x300 canvas, y growing downwards.
func (b Bounds) Project(lon, lat float64) Point {
	return Point{
		X: (lon - b.MinLon) / (b.MaxLon - b.MinLon) * CanvasWidth,
		Y: CanvasHeight - (lat-b.MinLat)/(b.MaxLat-b.MinLat)*CanvasHeight,
	}
}
