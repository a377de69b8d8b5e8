package chinese

import (
	"math"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

const (
	// Beijing mean solar time, used until the 1929 adoption of UTC+8.
	historicalZone = 1397.0 / 180 / 24
	modernZone     = 8.0 / 24
)

// beijing is the modern civil time zone of the calendar.
var beijing = time.FixedZone("CST", 8*60*60)

// Beijing is the reference point of the calendar.
var (
	beijingLatitude  = calendar.AngleToDegrees(39, 55, 0)
	beijingLongitude = calendar.AngleToDegrees(116, 25, 0)
	beijingElevation = 43.5
)

// Zone returns the UTC offset, in fractions of a day, used by the calendar
// on fixed day rd.
func Zone(rd calendar.FixedDay) float64 {
	if calendar.GregorianYearFromFixed(rd) < 1929 {
		return historicalZone
	}
	return modernZone
}

// Location returns the Beijing reference point with the offset in force
// on fixed day rd.
func Location(rd calendar.FixedDay) calendar.Location {
	return calendar.Location{
		Latitude:  beijingLatitude,
		Longitude: beijingLongitude,
		Elevation: beijingElevation,
		Zone:      Zone(rd),
	}
}

// midnightInChina is the Universal Time moment of the civil midnight that
// starts rd in Beijing.
func midnightInChina(rd calendar.FixedDay) float64 {
	return float64(rd) - Zone(rd)
}

// standardDay is the Beijing civil day of the Universal Time moment t,
// using the offset in force on ref.
func standardDay(t float64, ref calendar.FixedDay) calendar.FixedDay {
	return calendar.FixedDay(math.Floor(t + Zone(ref)))
}

// TimeZone returns the fixed time.Location of the offset in force on rd:
// CST from 1929, Beijing mean time (LMT) before.
func TimeZone(rd calendar.FixedDay) *time.Location {
	zone := Zone(rd)
	if zone == modernZone {
		return beijing
	}
	return time.FixedZone("LMT", int(math.Round(zone*86400)))
}

// BeijingTime converts a Universal Time moment to a time.Time carrying
// the calendar's Beijing offset.
func BeijingTime(t float64) time.Time {
	return calendar.TimeFromMoment(t).In(TimeZone(calendar.FixedDay(math.Floor(t))))
}

// BeijingDay returns the Beijing civil day containing t.
func BeijingDay(t time.Time) calendar.FixedDay {
	return calendar.FromTime(t.In(beijing))
}
