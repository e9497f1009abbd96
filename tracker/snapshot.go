package tracker

import (
	"github.com/devskill-org/sunpos/reference"
	"github.com/devskill-org/sunpos/solar"
)

// Snapshot is everything computed for one instant at one location
type Snapshot struct {
	When       solar.DateTime
	Location   solar.GeoLocation
	Refraction bool
	Horizon    string

	Position solar.SolarPosition
	SunTimes solar.SunTimes

	// Reference is set when the cross-check is enabled
	Reference *reference.Report
}

// IsDaylight reports whether the Sun is above the horizon
func (s Snapshot) IsDaylight() bool {
	return s.Position.Elevation > 0
}
