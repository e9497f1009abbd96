package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/devskill-org/sunpos/solar"
	"github.com/devskill-org/sunpos/utils"
)

// clearScreen moves the cursor home and clears the terminal
const clearScreen = "\033[H\033[2J"

// Renderer consumes snapshots
type Renderer interface {
	Render(s Snapshot) error
}

// PlainRenderer writes a fixed block of text per snapshot, optionally
// clearing the terminal first
type PlainRenderer struct {
	w     io.Writer
	clear bool
}

// NewPlainRenderer creates a renderer writing to w
func NewPlainRenderer(w io.Writer, clear bool) *PlainRenderer {
	return &PlainRenderer{w: w, clear: clear}
}

// Render writes s to the underlying writer
func (r *PlainRenderer) Render(s Snapshot) error {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(FormatSnapshot(s))

	_, err := io.WriteString(r.w, b.String())
	return err
}

// FormatSnapshot renders s as plain text lines
func FormatSnapshot(s Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "When: %s\n", FormatWhen(s.When))
	fmt.Fprintf(&b, "Where: Latitude = %s, Longitude = %s\n",
		solar.ToDMS(s.Location.Latitude), solar.ToDMS(s.Location.Longitude))
	fmt.Fprintf(&b, "Azimuth: %s or %.4f\n", solar.ToDMS(s.Position.Azimuth), s.Position.Azimuth)
	fmt.Fprintf(&b, "Elevation: %s or %.4f%s\n", solar.ToDMS(s.Position.Elevation), s.Position.Elevation, refractionNote(s))
	fmt.Fprintf(&b, "Sunrise = %s, Sunset = %s%s\n",
		solar.FormatClock(s.SunTimes.Sunrise), solar.FormatClock(s.SunTimes.Sunset), sunTimesNote(s))

	if ref := s.Reference; ref != nil {
		fmt.Fprintf(&b, "Reference: Azimuth %.4f (%+.4f), Elevation %.4f (%+.4f), Day number %+.2e\n",
			ref.Position.Azimuth, ref.AzimuthDelta, ref.Position.Elevation, ref.ElevationDelta, ref.DayNumberDelta)
		if ref.TimesErr != nil {
			fmt.Fprintf(&b, "Reference: %v\n", ref.TimesErr)
		} else {
			fmt.Fprintf(&b, "Reference: Sunrise = %s (%+.1f min), Sunset = %s (%+.1f min)\n",
				solar.FormatClock(ref.Times.Suncalc.Sunrise), ref.SunriseDelta*60,
				solar.FormatClock(ref.Times.Suncalc.Sunset), ref.SunsetDelta*60)
		}
	}

	return b.String()
}

// FormatWhen formats a date-time as 21.06.2024 14:00:00 UTC+3
func FormatWhen(w solar.DateTime) string {
	return fmt.Sprintf("%02d.%02d.%d %02d:%02d:%02d %s",
		w.Day, w.Month, w.Year, w.Hour, w.Minute, int(w.Second), utils.FormatUTCOffset(w.Timezone))
}

func refractionNote(s Snapshot) string {
	if s.Refraction {
		return " (refracted)"
	}
	return ""
}

func sunTimesNote(s Snapshot) string {
	var notes []string
	if s.Horizon == HorizonCivil {
		notes = append(notes, "civil")
	}
	if s.SunTimes.Polar != solar.PolarNone {
		notes = append(notes, s.SunTimes.Polar.String())
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
