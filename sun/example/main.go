// Package main provides an example of the solar calculations next to the suncalc library.
package main

import (
	"fmt"
	"time"

	"github.com/devskill-org/sunpos/reference"
	"github.com/devskill-org/sunpos/solar"
)

func main() {
	loc := solar.GeoLocation{Latitude: 56.9496, Longitude: 24.1052} // Riga
	now := time.Now()
	when := solar.DateTimeFromTime(now)

	// Get sun position (azimuth and elevation)
	pos := solar.ComputePosition(when, loc, true)
	fmt.Printf("Azimuth: %.2f°, Elevation: %.2f°\n", pos.Azimuth, pos.Elevation)

	ref := reference.Position(now, loc)
	fmt.Printf("suncalc: Azimuth: %.2f°, Altitude: %.2f°\n", ref.Azimuth, ref.Elevation)

	// Get sunrise/sunset times
	times := solar.ComputeSunTimes(when.Date(), when.Timezone, loc)
	fmt.Println("Sunrise:", solar.FormatClock(times.Sunrise))
	fmt.Println("Sunset:", solar.FormatClock(times.Sunset))

	if refTimes, err := reference.SunTimes(when.Date(), when.Timezone, loc); err == nil {
		fmt.Println("suncalc sunrise:", solar.FormatClock(refTimes.Suncalc.Sunrise))
		fmt.Println("suncalc sunset:", solar.FormatClock(refTimes.Suncalc.Sunset))
	}
}
