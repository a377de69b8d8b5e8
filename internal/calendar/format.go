package calendar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DayName returns the day of week name (Sunday, Monday, etc.)
func DayName(rd FixedDay) string {
	return rd.Weekday().String()
}

// ParseDateString parses a date string in YYYY-MM-DD format
func ParseDateString(dateStr string) (FixedDay, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return FromTime(t), nil
}

// FormatDate formats a fixed day as YYYY-MM-DD
func FormatDate(rd FixedDay) string {
	return rd.String()
}

// Location is a point on the Earth's surface together with the standard
// time offset used there.
type Location struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Elevation float64 // meters
	Zone      float64 // offset from UTC in fractions of a day
}

// AngleToDegrees converts degrees, arcminutes and arcseconds to degrees.
func AngleToDegrees(deg, min int, sec float64) float64 {
	return float64(deg) + float64(min)/60 + sec/3600
}

// FormatZone renders a zone offset in days as ±HH:MM.
func FormatZone(zone float64) string {
	sign := '+'
	if zone < 0 {
		sign = '-'
		zone = -zone
	}
	minutes := int(zone*24*60 + 0.5)
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}
