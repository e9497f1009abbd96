package solar

import (
	"math"
	"time"
)

// DateTime is a local civil date and time together with its offset from UTC.
type DateTime struct {
	Year   int
	Month  int // 1-12
	Day    int
	Hour   int // 0-23
	Minute int // 0-59
	Second float64
	// Timezone is the offset from UTC in whole hours.
	Timezone int
}

// Date returns the calendar part of the date-time.
func (dt DateTime) Date() Date {
	return Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
}

// Date is a calendar date without time of day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// GeoLocation is a point on Earth in decimal degrees.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`  // -90..90, north positive
	Longitude float64 `json:"longitude"` // -180..180, east positive
}

// SolarPosition is the apparent position of the Sun in degrees.
type SolarPosition struct {
	Azimuth   float64 // [0, 360), clockwise from north
	Elevation float64 // [-180, 180), above the horizon is positive
}

// PolarState reports whether the sunrise computation hit the polar fallback.
type PolarState int

const (
	PolarNone  PolarState = iota // the Sun crosses the horizon
	PolarNight                   // the Sun stays below the horizon all day
	PolarDay                     // the Sun stays above the horizon all day
)

func (p PolarState) String() string {
	switch p {
	case PolarNight:
		return "polar night"
	case PolarDay:
		return "polar day"
	default:
		return "none"
	}
}

// SunTimes holds sunrise and sunset as local decimal hours in [0, 24).
type SunTimes struct {
	Sunrise float64
	Sunset  float64
	// Polar is set when the Sun does not cross the horizon on that day. Sunrise
	// and Sunset then carry the approximate fallback values.
	Polar PolarState
}

// DateTimeFromTime converts t into a DateTime using t's own zone offset.
// The offset is truncated to whole hours.
func DateTimeFromTime(t time.Time) DateTime {
	_, offset := t.Zone()
	return DateTime{
		Year:     t.Year(),
		Month:    int(t.Month()),
		Day:      t.Day(),
		Hour:     t.Hour(),
		Minute:   t.Minute(),
		Second:   float64(t.Second()) + float64(t.Nanosecond())/1e9,
		Timezone: offset / 3600,
	}
}

// DateFromTime returns the calendar date of t in t's own zone.
func DateFromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Validate checks the date-time against the ranges the formulas are meant for.
func (dt DateTime) Validate() error {
	if dt.Year < 1901 || dt.Year > 2099 {
		return &ValidationError{Field: "year", Message: "must be between 1901 and 2099"}
	}
	if dt.Month < 1 || dt.Month > 12 {
		return &ValidationError{Field: "month", Message: "must be between 1 and 12"}
	}
	if dt.Day < 1 || dt.Day > daysIn(dt.Year, dt.Month) {
		return &ValidationError{Field: "day", Message: "out of range for month"}
	}
	if dt.Hour < 0 || dt.Hour > 23 {
		return &ValidationError{Field: "hour", Message: "must be between 0 and 23"}
	}
	if dt.Minute < 0 || dt.Minute > 59 {
		return &ValidationError{Field: "minute", Message: "must be between 0 and 59"}
	}
	if math.IsNaN(dt.Second) || dt.Second < 0 || dt.Second >= 60 {
		return &ValidationError{Field: "second", Message: "must be in [0, 60)"}
	}
	if dt.Timezone < -12 || dt.Timezone > 14 {
		return &ValidationError{Field: "timezone", Message: "must be between -12 and 14"}
	}
	return nil
}

// Validate checks that the coordinates are finite and inside the valid ranges.
func (l GeoLocation) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: "must be between -90 and 90"}
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: "must be between -180 and 180"}
	}
	return nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
