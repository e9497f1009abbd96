// Package solar computes the apparent position of the Sun and the local
// sunrise/sunset times for a date, a numeric UTC offset and a geographic
// coordinate.
//
// The formulas are closed-form approximations valid for the years 1901 to
// 2099. Every function in this package is pure: nothing is cached, nothing is
// validated and nothing blocks, so all of them can be called concurrently.
//
// Basic Usage:
//
//	loc := solar.GeoLocation{Latitude: 56.9496, Longitude: 24.1052} // Riga
//	when := solar.DateTime{Year: 2024, Month: 6, Day: 21, Hour: 14, Timezone: 3}
//
//	pos := solar.ComputePosition(when, loc, true)
//	fmt.Printf("Azimuth: %.4f, Elevation: %.4f\n", pos.Azimuth, pos.Elevation)
//
//	times := solar.ComputeSunTimes(when.Date(), when.Timezone, loc)
//	fmt.Printf("Sunrise = %s, Sunset = %s\n", solar.FormatClock(times.Sunrise), solar.FormatClock(times.Sunset))
//
// Invalid input (latitude outside [-90, 90], NaN, ...) is not rejected; it
// produces a mathematically defined but meaningless result, or NaN. Callers
// that want guarantees can run DateTime.Validate and GeoLocation.Validate
// first.
package solar
