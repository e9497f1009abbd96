package solar

import (
	"fmt"
	"math"
)

// AngleDMS is a degrees/minutes/seconds decomposition of a decimal value.
// The sign lives on Degrees only, so values in (-1, 0) lose it; Negative keeps it.
type AngleDMS struct {
	Degrees  int
	Minutes  int
	Seconds  float64
	Negative bool
}

// ToDMS splits value into whole degrees, whole minutes and fractional seconds.
// It works the same for hours (hours, minutes, seconds).
func ToDMS(value float64) AngleDMS {
	totalSeconds := math.Abs(value) * 3600

	minutes := math.Floor(totalSeconds / 60)
	seconds := totalSeconds - minutes*60
	if seconds < 0 {
		minutes--
		seconds += 60
	} else if seconds >= 60 {
		minutes++
		seconds -= 60
	}
	whole := math.Floor(minutes / 60)
	minutes -= whole * 60

	d := int(whole)
	if value < 0 {
		d = -d
	}
	return AngleDMS{
		Degrees:  d,
		Minutes:  int(minutes),
		Seconds:  seconds,
		Negative: value < 0,
	}
}

// Value converts the decomposition back into a signed decimal value.
func (a AngleDMS) Value() float64 {
	v := math.Abs(float64(a.Degrees)) + float64(a.Minutes)/60 + a.Seconds/3600
	if a.Negative {
		return -v
	}
	return v
}

// String formats the angle as 12° 30' 5".
func (a AngleDMS) String() string {
	sign := ""
	if a.Negative && a.Degrees == 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%d° %d' %d\"", sign, a.Degrees, a.Minutes, int(a.Seconds))
}

// FormatClock formats a decimal hour as H:MM:SS.
func FormatClock(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "--:--:--"
	}
	t := ToDMS(hours)
	return fmt.Sprintf("%d:%02d:%02d", t.Degrees, t.Minutes, int(t.Seconds))
}
