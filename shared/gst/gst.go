// Package gst maps pre-tax amounts to the tiered Goods and Services Tax
// rates applied to room stays and food charges.
package gst

import "math"

const (
	tierLowCeiling = 5499
	tierMidFloor   = 5500
	tierMidCeiling = 7499
	tierHighFloor  = 7500

	RateZero = 0.0
	RateLow  = 0.12
	RateMid  = 0.18
	RateHigh = 0.28
)

// RateFor returns the GST rate fraction for a base amount. Amounts at or
// below zero carry no tax; fractional amounts falling between tier bounds
// take the low rate as an explicit fallback, never an error.
func RateFor(base float64) float64 {
	switch {
	case base <= 0:
		return RateZero
	case base <= tierLowCeiling:
		return RateLow
	case base >= tierMidFloor && base <= tierMidCeiling:
		return RateMid
	case base >= tierHighFloor:
		return RateHigh
	default:
		return RateLow
	}
}

// Round2 rounds a monetary value to two decimals, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
