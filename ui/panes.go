package ui

import (
	"fmt"
	"strings"

	"github.com/devskill-org/sunpos/solar"
)

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// renderPositionPane renders where the observer is and where the Sun is
func (m Model) renderPositionPane() string {
	s := m.snapshot
	var content strings.Builder

	content.WriteString(titleStyle.Render("Position"))
	content.WriteString("\n\n")

	content.WriteString(row("Latitude", solar.ToDMS(s.Location.Latitude).String()))
	content.WriteString(row("Longitude", solar.ToDMS(s.Location.Longitude).String()))
	content.WriteString("\n")
	content.WriteString(row("Azimuth", fmt.Sprintf("%s  %.4f", solar.ToDMS(s.Position.Azimuth), s.Position.Azimuth)))
	content.WriteString(row("Elevation", fmt.Sprintf("%s  %.4f", solar.ToDMS(s.Position.Elevation), s.Position.Elevation)))
	content.WriteString("\n")

	if s.IsDaylight() {
		content.WriteString(dayStyle.Render("Sun above the horizon"))
	} else {
		content.WriteString(nightStyle.Render("Sun below the horizon"))
	}
	if s.Refraction {
		content.WriteString(mutedStyle.Render("  (refracted)"))
	}

	return paneStyle.Render(content.String())
}

// renderSunTimesPane renders sunrise, sunset and day length
func (m Model) renderSunTimesPane() string {
	s := m.snapshot
	var content strings.Builder

	content.WriteString(titleStyle.Render("Sun times"))
	content.WriteString("\n\n")

	content.WriteString(row("Sunrise", solar.FormatClock(s.SunTimes.Sunrise)))
	content.WriteString(row("Sunset", solar.FormatClock(s.SunTimes.Sunset)))
	content.WriteString(row("Day length", solar.FormatClock(solar.Rev24(s.SunTimes.Sunset-s.SunTimes.Sunrise))))
	content.WriteString("\n")
	content.WriteString(mutedStyle.Render("Horizon: " + s.Horizon))

	if s.SunTimes.Polar != solar.PolarNone {
		content.WriteString("\n")
		content.WriteString(warningStyle.Render(fmt.Sprintf("%s: times are approximate", s.SunTimes.Polar)))
	}

	return paneStyle.Render(content.String())
}

// renderReferencePane renders the comparison with the reference libraries
func (m Model) renderReferencePane() string {
	ref := m.snapshot.Reference
	var content strings.Builder

	content.WriteString(titleStyle.Render("Reference"))
	content.WriteString("\n\n")

	content.WriteString(row("Azimuth", fmt.Sprintf("%.4f  (%+.4f)", ref.Position.Azimuth, ref.AzimuthDelta)))
	content.WriteString(row("Elevation", fmt.Sprintf("%.4f  (%+.4f)", ref.Position.Elevation, ref.ElevationDelta)))
	content.WriteString(row("Day number", fmt.Sprintf("%+.2e", ref.DayNumberDelta)))
	content.WriteString("\n")

	if ref.TimesErr != nil {
		content.WriteString(warningStyle.Render(ref.TimesErr.Error()))
		return paneStyle.Render(content.String())
	}

	content.WriteString(row("Sunrise", fmt.Sprintf("%s  (%+.1f min)", solar.FormatClock(ref.Times.Suncalc.Sunrise), ref.SunriseDelta*60)))
	content.WriteString(row("Sunset", fmt.Sprintf("%s  (%+.1f min)", solar.FormatClock(ref.Times.Suncalc.Sunset), ref.SunsetDelta*60)))
	content.WriteString(mutedStyle.Render(fmt.Sprintf("go-sunrise %s / %s",
		solar.FormatClock(ref.Times.GoSunrise.Sunrise), solar.FormatClock(ref.Times.GoSunrise.Sunset))))

	return paneStyle.Render(content.String())
}
