package solar

import "math"

// Zenith is the cosine of the zenith angle at which the Sun is considered to
// rise or set.
type Zenith float64

const (
	// ZenithOfficial is 90°50': the Sun's upper limb on the horizon with standard refraction.
	ZenithOfficial Zenith = -0.01454389765
	// ZenithCivil is 96°, the start/end of civil twilight.
	ZenithCivil Zenith = -0.10452846326
)

const (
	riseBase = 6.0
	setBase  = 18.0
)

// DayOfYear returns the ordinal day of date (1 = January 1st).
func DayOfYear(date Date) float64 {
	year, month, day := float64(date.Year), float64(date.Month), float64(date.Day)

	n1 := math.Floor(275 * month / 9)
	n2 := math.Floor((month + 9) / 12)
	n3 := 1 + math.Floor((year-4*math.Floor(year/4)+2)/3)
	return n1 - (n2 * n3) + day - 30
}

// ComputeSunTimes returns the local sunrise and sunset for date at loc, for a
// location whose clock runs timezone hours ahead of UTC.
func ComputeSunTimes(date Date, timezone int, loc GeoLocation) SunTimes {
	return ComputeSunTimesAt(date, timezone, loc, ZenithOfficial)
}

// ComputeSunTimesAt is ComputeSunTimes with an explicit horizon definition.
func ComputeSunTimesAt(date Date, timezone int, loc GeoLocation, zenith Zenith) SunTimes {
	n := DayOfYear(date)

	rise, polar := sunEvent(n, riseBase, loc, zenith)
	set, _ := sunEvent(n, setBase, loc, zenith)

	return SunTimes{
		Sunrise: Rev24(rise + float64(timezone)),
		Sunset:  Rev24(set + float64(timezone)),
		Polar:   polar,
	}
}

// sunEvent computes the UTC time of the rise (base 6) or set (base 18)
// nearest the given approximate local hour.
func sunEvent(n, base float64, loc GeoLocation, zenith Zenith) (float64, PolarState) {
	lngHour := loc.Longitude / 15
	t := n + (base-lngHour)/24

	m := 0.9856*t - 3.289

	l := Rev360(m + 1.916*math.Sin(radians(m)) + 0.020*math.Sin(radians(2*m)) + 282.634)

	ra := degrees(math.Atan(0.91764 * math.Tan(radians(l))))
	ra += math.Floor(l/90)*90 - math.Floor(ra/90)*90
	ra /= 15

	sinDec := 0.39782 * math.Sin(radians(l))
	cosDec := math.Cos(math.Asin(sinDec))

	cosH := (float64(zenith) - sinDec*math.Sin(radians(loc.Latitude))) / (cosDec * math.Cos(radians(loc.Latitude)))

	polar := PolarNone
	switch {
	case cosH > 1:
		polar = PolarNight
		cosH--
	case cosH < -1:
		polar = PolarDay
		cosH++
	}
	// The ±1 shift alone can leave cosH outside acos' domain near the poles.
	cosH = math.Max(-1, math.Min(1, cosH))

	var h float64
	if base == riseBase {
		h = (360 - degrees(math.Acos(cosH))) / 15
	} else {
		h = degrees(math.Acos(cosH)) / 15
	}

	local := h + ra - 0.06571*t - 6.622
	return Rev24(local - lngHour), polar
}
