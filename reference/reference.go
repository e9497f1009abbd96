// Package reference cross-checks the closed-form solar formulas against
// third-party ephemeris libraries.
package reference

import (
	"errors"
	"math"
	"time"

	"github.com/devskill-org/sunpos/solar"
	"github.com/nathan-osman/go-sunrise"
	"github.com/sixdouglas/suncalc"
	"github.com/soniakeys/meeus/v3/julian"
)

// ErrNoEvent is returned when a library reports no sunrise or sunset for the day.
var ErrNoEvent = errors.New("no sunrise or sunset on this day")

// j2000 is the Julian day of 2000-01-01 12:00 UT.
const j2000 = 2451545.0

// Times holds sunrise/sunset as local decimal hours from each library.
type Times struct {
	Suncalc   solar.SunTimes
	GoSunrise solar.SunTimes
}

// Report compares the closed-form results for one instant with the libraries.
type Report struct {
	Position solar.SolarPosition // suncalc, no refraction
	Times    Times
	TimesErr error

	AzimuthDelta   float64 // ours - suncalc, degrees in [-180, 180)
	ElevationDelta float64 // ours - suncalc, degrees
	SunriseDelta   float64 // ours - suncalc, hours in [-12, 12)
	SunsetDelta    float64 // ours - suncalc, hours in [-12, 12)
	DayNumberDelta float64 // ours - meeus, days
}

// TimeOf converts dt into a time.Time in a fixed zone of dt.Timezone hours.
func TimeOf(dt solar.DateTime) time.Time {
	sec, frac := math.Modf(dt.Second)
	zone := time.FixedZone("", dt.Timezone*3600)
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute,
		int(sec), int(math.Round(frac*1e9)), zone)
}

// Position returns the solar position computed by suncalc, converted to a
// compass azimuth (clockwise from north) in degrees.
func Position(t time.Time, loc solar.GeoLocation) solar.SolarPosition {
	pos := suncalc.GetPosition(t, loc.Latitude, loc.Longitude)
	return solar.SolarPosition{
		// suncalc measures azimuth from south, positive towards west
		Azimuth:   solar.Normalize(pos.Azimuth*180/math.Pi+180, 0, 360),
		Elevation: pos.Altitude * 180 / math.Pi,
	}
}

// SunTimes returns the local sunrise and sunset of date from suncalc and go-sunrise.
func SunTimes(date solar.Date, timezone int, loc solar.GeoLocation) (Times, error) {
	zone := time.FixedZone("", timezone*3600)
	noon := time.Date(date.Year, time.Month(date.Month), date.Day, 12, 0, 0, 0, zone)

	var times Times

	st := suncalc.GetTimes(noon, loc.Latitude, loc.Longitude)
	rise, set := st["sunrise"].Value, st["sunset"].Value
	if !near(rise, noon) || !near(set, noon) {
		return times, ErrNoEvent
	}
	times.Suncalc = solar.SunTimes{Sunrise: decimalHours(rise, zone), Sunset: decimalHours(set, zone)}

	rise, set = sunrise.SunriseSunset(loc.Latitude, loc.Longitude, date.Year, time.Month(date.Month), date.Day)
	if rise.IsZero() || set.IsZero() {
		return times, ErrNoEvent
	}
	times.GoSunrise = solar.SunTimes{Sunrise: decimalHours(rise, zone), Sunset: decimalHours(set, zone)}

	return times, nil
}

// DaysSinceJ2000 returns the number of days between t and the J2000 epoch.
func DaysSinceJ2000(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - j2000
}

// Build computes the closed-form results for dt at loc and compares them with
// the reference libraries.
func Build(dt solar.DateTime, loc solar.GeoLocation) Report {
	t := TimeOf(dt)

	ours := solar.ComputePosition(dt, loc, false)
	ref := Position(t, loc)

	r := Report{
		Position:       ref,
		AzimuthDelta:   solar.Normalize(ours.Azimuth-ref.Azimuth, -180, 180),
		ElevationDelta: ours.Elevation - ref.Elevation,
		DayNumberDelta: solar.DayNumber(dt) - DaysSinceJ2000(t),
	}

	r.Times, r.TimesErr = SunTimes(dt.Date(), dt.Timezone, loc)
	if r.TimesErr == nil {
		sun := solar.ComputeSunTimes(dt.Date(), dt.Timezone, loc)
		r.SunriseDelta = solar.Normalize(sun.Sunrise-r.Times.Suncalc.Sunrise, -12, 12)
		r.SunsetDelta = solar.Normalize(sun.Sunset-r.Times.Suncalc.Sunset, -12, 12)
	}

	return r
}

func near(event, noon time.Time) bool {
	if event.IsZero() {
		return false
	}
	d := event.Sub(noon)
	return d > -18*time.Hour && d < 18*time.Hour
}

func decimalHours(t time.Time, zone *time.Location) float64 {
	t = t.In(zone)
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 + float64(t.Nanosecond())/3.6e12
}
