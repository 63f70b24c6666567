// Package performance holds the simplified aircraft performance model used to
// gate quotes: wind effect on cruise speed and density-altitude runway derating.
package performance

import "math"

const (
	maxWindRatio = 0.25

	isaSeaLevelC       = 15.0
	isaLapseCPer1000Ft = 2.0
	ftPerDegreeC       = 120.0

	derateStepFt  = 2000.0
	deratePerStep = 0.10
)

// WindComponentRatio returns the fraction of cruise speed lost to wind
// (positive headwind) or gained (negative), clamped to [-0.25, 0.25].
func WindComponentRatio(windKts, cruiseKts float64) float64 {
	ratio := windKts / math.Max(1, cruiseKts)

	return math.Max(-maxWindRatio, math.Min(maxWindRatio, ratio))
}

// DensityAltitudeFt approximates density altitude as field elevation plus
// 120 ft per degree Celsius above the ISA temperature at that elevation.
func DensityAltitudeFt(elevationFt int, oatC float64) int {
	isaAtField := isaSeaLevelC - isaLapseCPer1000Ft*(float64(elevationFt)/1000)
	delta := oatC - isaAtField

	return int(float64(elevationFt) + ftPerDegreeC*delta)
}

// RunwayCorrectionFactor adds 10% runway per 2000 ft of density altitude
// above sea level. Never below 1.
func RunwayCorrectionFactor(densityAltitudeFt int) float64 {
	return 1 + math.Max(0, float64(densityAltitudeFt)/derateStepFt)*deratePerStep
}
