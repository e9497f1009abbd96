// Package utils provides utility functions for the sunpos application.
package utils //nolint:revive // utils is a common and acceptable package name

import (
	"fmt"
	"time"
)

// ZoneOffsetHours returns the UTC offset of t's zone in whole hours, truncated towards zero.
func ZoneOffsetHours(t time.Time) int {
	_, offset := t.Zone()
	return offset / 3600
}

// FormatUTCOffset formats an hour offset as UTC+3, UTC-5 or UTC.
func FormatUTCOffset(hours int) string {
	if hours == 0 {
		return "UTC"
	}
	return fmt.Sprintf("UTC%+d", hours)
}

// FixedZone returns a zone named after its whole-hour UTC offset.
func FixedZone(hours int) *time.Location {
	return time.FixedZone(FormatUTCOffset(hours), hours*3600)
}
