// Package pricing derives the monetary fields of a booking from the room's
// nightly rate and the stay interval. Amounts are computed once at creation
// and stored; they are never recomputed on read.
package pricing

import (
	"math"
	"time"

	"frontdesk/shared/gst"
)

const hoursPerDay = 24

// Nights counts the billable nights in [checkIn, checkOut), never less than 1
// for a valid pair.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerDay))
	if nights < 1 {
		nights = 1
	}

	return nights
}

type Quote struct {
	Nights      int
	BaseAmount  float64
	GstRate     float64
	GstAmount   float64
	TotalAmount float64
}

// Calculate prices a stay. A non-nil overridePercent replaces the tiered rate;
// it arrives as a percentage and is stored as a fraction.
func Calculate(nightlyRate float64, checkIn, checkOut time.Time, overridePercent *float64) Quote {
	nights := Nights(checkIn, checkOut)
	base := float64(nights) * nightlyRate

	rate := gst.RateFor(base)
	if overridePercent != nil {
		rate = *overridePercent / 100
	}

	gstAmount := gst.Round2(base * rate)

	return Quote{
		Nights:      nights,
		BaseAmount:  base,
		GstRate:     rate,
		GstAmount:   gstAmount,
		TotalAmount: gst.Round2(base + gstAmount),
	}
}
