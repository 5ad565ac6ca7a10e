// Package units provides shared constants and conversions for angle
// and velocity units used in reports and plots.
package units

import "math"

// Unit constants
const (
	Degrees        = "deg"
	Radians        = "rad"
	UnitsPerFrame  = "upf" // normalized displacement per frame
	UnitsPerSecond = "ups" // normalized displacement per second
)

// ValidAngleUnits contains all valid angle unit values
var ValidAngleUnits = []string{Degrees, Radians}

// IsValidAngleUnit checks if the given unit is in the list of valid angle units
func IsValidAngleUnit(unit string) bool {
	for _, validUnit := range ValidAngleUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ConvertAngle converts an angle from degrees to the target units.
// The angle engine reports angles in degrees.
func ConvertAngle(angleDeg float64, targetUnits string) float64 {
	switch targetUnits {
	case Radians:
		return angleDeg * math.Pi / 180
	case Degrees:
		return angleDeg
	default:
		return angleDeg
	}
}

// PerFrameToPerSecond converts a per-frame velocity sample to a
// per-second rate given the recording sample rate. Non-positive sample
// rates pass the value through unchanged.
func PerFrameToPerSecond(perFrame, sampleRateHz float64) float64 {
	if sampleRateHz <= 0 {
		return perFrame
	}
	return perFrame * sampleRateHz
}
