package solar

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDateTimeFromTime(t *testing.T) {
	riga := time.FixedZone("EEST", 3*3600)
	got := DateTimeFromTime(time.Date(2024, 6, 21, 14, 5, 7, 500000000, riga))

	expected := DateTime{Year: 2024, Month: 6, Day: 21, Hour: 14, Minute: 5, Second: 7.5, Timezone: 3}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
	if got.Date() != (Date{Year: 2024, Month: 6, Day: 21}) {
		t.Errorf("Unexpected date %+v", got.Date())
	}
}

func TestDateTimeFromTime_FractionalZone(t *testing.T) {
	tests := []struct {
		name     string
		offset   int
		expected int
	}{
		{"India", 5*3600 + 1800, 5},
		{"Newfoundland", -(3*3600 + 1800), -3},
		{"UTC", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone := time.FixedZone(tt.name, tt.offset)
			got := DateTimeFromTime(time.Date(2024, 1, 1, 0, 0, 0, 0, zone))
			if got.Timezone != tt.expected {
				t.Errorf("Expected timezone %d, got %d", tt.expected, got.Timezone)
			}
		})
	}
}

func TestDateTime_Validate(t *testing.T) {
	valid := DateTime{Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 59, Second: 59.9, Timezone: 14}

	tests := []struct {
		name   string
		modify func(*DateTime)
		field  string
	}{
		{"valid", func(*DateTime) {}, ""},
		{"year too early", func(d *DateTime) { d.Year = 1900 }, "year"},
		{"year too late", func(d *DateTime) { d.Year = 2100 }, "year"},
		{"month", func(d *DateTime) { d.Month = 13 }, "month"},
		{"day after leap day", func(d *DateTime) { d.Year = 2023 }, "day"},
		{"hour", func(d *DateTime) { d.Hour = 24 }, "hour"},
		{"minute", func(d *DateTime) { d.Minute = 60 }, "minute"},
		{"second", func(d *DateTime) { d.Second = 60 }, "second"},
		{"second NaN", func(d *DateTime) { d.Second = math.NaN() }, "second"},
		{"timezone", func(d *DateTime) { d.Timezone = -13 }, "timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := valid
			tt.modify(&dt)

			err := dt.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}

func TestGeoLocation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		loc     GeoLocation
		wantErr bool
	}{
		{"valid", GeoLocation{Latitude: 56.9496, Longitude: 24.1052}, false},
		{"north pole", GeoLocation{Latitude: 90, Longitude: 180}, false},
		{"latitude", GeoLocation{Latitude: 200}, true},
		{"longitude", GeoLocation{Longitude: -181}, true},
		{"NaN", GeoLocation{Latitude: math.NaN()}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPolarState_String(t *testing.T) {
	if PolarNight.String() != "polar night" || PolarDay.String() != "polar day" || PolarNone.String() != "none" {
		t.Error("Unexpected PolarState strings")
	}
}
