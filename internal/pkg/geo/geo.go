package geo

import (
	"fmt"
	"math"
)

// Airport is immutable reference data for a single field.
type Airport struct {
	ICAO        string  `yaml:"icao" json:"icao"`
	Lat         float64 `yaml:"lat" json:"lat"`
	Lon         float64 `yaml:"lon" json:"lon"`
	RunwayFt    int     `yaml:"rwy" json:"rwy"`
	FeesUSD     float64 `yaml:"fees" json:"fees"`
	ElevationFt int     `yaml:"elev_ft" json:"elev_ft"`
}

// Registry is a read-only airport lookup table, safe for concurrent readers.
type Registry struct {
	airports map[string]Airport
	order    []string
}

func NewRegistry(airports []Airport) (*Registry, error) {
	r := &Registry{
		airports: make(map[string]Airport, len(airports)),
		order:    make([]string, 0, len(airports)),
	}

	for _, a := range airports {
		if a.ICAO == "" {
			return nil, fmt.Errorf("airport without icao code")
		}

		if _, ok := r.airports[a.ICAO]; ok {
			return nil, fmt.Errorf("duplicate airport %s", a.ICAO)
		}

		r.airports[a.ICAO] = a
		r.order = append(r.order, a.ICAO)
	}

	return r, nil
}

func (r *Registry) Lookup(icao string) (Airport, bool) {
	a, ok := r.airports[icao]
	return a, ok
}

// All returns the airports in registration order.
func (r *Registry) All() []Airport {
	results := make([]Airport, len(r.order))
	for i, icao := range r.order {
		results[i] = r.airports[icao]
	}

	return results
}

// Codes returns the ICAO codes in registration order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.order))
	copy(codes, r.order)

	return codes
}

// Distance returns the great-circle distance in nautical miles between two
// registered airports. ok is false when either code is unknown.
func (r *Registry) Distance(from, to string) (float64, bool) {
	a, ok := r.airports[from]
	if !ok {
		return 0, false
	}

	b, ok := r.airports[to]
	if !ok {
		return 0, false
	}

	if from == to {
		return 0, true
	}

	return GreatCircleNM(a.Lat, a.Lon, b.Lat, b.Lon), true
}

// GreatCircleNM uses the spherical law of cosines, 60 nm per degree of arc.
func GreatCircleNM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1, phi2 := toRad(lat1), toRad(lat2)
	dLon := toRad(lon2 - lon1)

	cosArc := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(dLon)
	// rounding can push the argument just outside acos' domain
	cosArc = math.Max(-1, math.Min(1, cosArc))

	return 60 * toDeg(math.Acos(cosArc))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
