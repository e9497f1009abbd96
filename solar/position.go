package solar

import "math"

// DayNumber returns the continuous number of days since the J2000 epoch
// (2000-01-01 12:00 UT) for the given local date-time. Accurate from 1901 to 2099.
func DayNumber(dt DateTime) float64 {
	greenwich := float64(dt.Hour-dt.Timezone) + float64(dt.Minute)/60 + dt.Second/3600

	y, m := dt.Year, dt.Month
	days := 367*y - floorDiv(7*(y+floorDiv(m+9, 12)), 4) + floorDiv(275*m, 9) + dt.Day
	return float64(days) - 730531.5 + greenwich/24
}

// ComputePosition returns the azimuth and elevation of the Sun seen from loc
// at dt. When refraction is set the elevation is corrected for atmospheric
// refraction.
func ComputePosition(dt DateTime, loc GeoLocation, refraction bool) SolarPosition {
	rlat := radians(loc.Latitude)
	rlon := radians(loc.Longitude)

	d := DayNumber(dt)

	meanLong := d*0.01720279239 + 4.894967873
	meanAnom := d*0.01720197034 + 6.240040768

	eclipLong := meanLong + 0.03342305518*math.Sin(meanAnom) + 0.0003490658504*math.Sin(2*meanAnom)
	obliquity := 0.4090877234 - 6.981317008e-9*d

	rasc := math.Atan2(math.Cos(obliquity)*math.Sin(eclipLong), math.Cos(eclipLong))
	decl := math.Asin(math.Sin(obliquity) * math.Sin(eclipLong))

	sidereal := 4.894961213 + 6.300388099*d + rlon
	hourAngle := sidereal - rasc

	elevation := math.Asin(math.Sin(decl)*math.Sin(rlat) + math.Cos(decl)*math.Cos(rlat)*math.Cos(hourAngle))
	azimuth := math.Atan2(-math.Cos(decl)*math.Cos(rlat)*math.Sin(hourAngle),
		math.Sin(decl)-math.Sin(rlat)*math.Sin(elevation))

	pos := SolarPosition{
		Azimuth:   Normalize(degrees(azimuth), 0, 360),
		Elevation: Normalize(degrees(elevation), -180, 180),
	}

	if refraction {
		pos.Elevation += RefractionCorrection(pos.Elevation)
	}

	return pos
}

// RefractionCorrection returns the apparent lift in degrees that the
// atmosphere adds to a body at the given true elevation (Sæmundsson).
// It diverges near -5.11 degrees.
func RefractionCorrection(elevation float64) float64 {
	target := radians(elevation + 10.3/(elevation+5.11))
	return (1.02 / math.Tan(target)) / 60
}
