package tracker

import (
	"time"

	"github.com/devskill-org/sunpos/solar"
)

// Clock supplies the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the system wall clock in the local zone
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

// LocationProvider supplies the observer location
type LocationProvider interface {
	Location() solar.GeoLocation
}

// StaticLocation is a fixed observer location
type StaticLocation solar.GeoLocation

// Location returns l unchanged
func (l StaticLocation) Location() solar.GeoLocation { return solar.GeoLocation(l) }
