package chinese

import (
	"math"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// SolarTerm is one of the 24 jiéqì, the points where the Sun's longitude
// reaches a multiple of 15 degrees. Major terms (zhōngqì) sit at multiples
// of 30 degrees.
type SolarTerm struct {
	Pinyin    string `json:"pinyin"`
	Hanzi     string `json:"hanzi"`
	English   string `json:"english"`
	Longitude int    `json:"longitude"`
	Major     bool   `json:"major"`
}

// solarTerms is indexed by longitude / 15.
var solarTerms = [24]SolarTerm{
	{"Chūnfēn", "春分", "Spring Equinox", 0, true},
	{"Qīngmíng", "清明", "Clear and Bright", 15, false},
	{"Gǔyǔ", "谷雨", "Grain Rain", 30, true},
	{"Lìxià", "立夏", "Start of Summer", 45, false},
	{"Xiǎomǎn", "小满", "Grain Full", 60, true},
	{"Mángzhòng", "芒种", "Grain in Ear", 75, false},
	{"Xiàzhì", "夏至", "Summer Solstice", 90, true},
	{"Xiǎoshǔ", "小暑", "Minor Heat", 105, false},
	{"Dàshǔ", "大暑", "Major Heat", 120, true},
	{"Lìqiū", "立秋", "Start of Autumn", 135, false},
	{"Chǔshǔ", "处暑", "Limit of Heat", 150, true},
	{"Báilù", "白露", "White Dew", 165, false},
	{"Qiūfēn", "秋分", "Autumn Equinox", 180, true},
	{"Hánlù", "寒露", "Cold Dew", 195, false},
	{"Shuāngjiàng", "霜降", "Frost Descent", 210, true},
	{"Lìdōng", "立冬", "Start of Winter", 225, false},
	{"Xiǎoxuě", "小雪", "Minor Snow", 240, true},
	{"Dàxuě", "大雪", "Major Snow", 255, false},
	{"Dōngzhì", "冬至", "Winter Solstice", 270, true},
	{"Xiǎohán", "小寒", "Minor Cold", 285, false},
	{"Dàhán", "大寒", "Major Cold", 300, true},
	{"Lìchūn", "立春", "Start of Spring", 315, false},
	{"Yǔshuǐ", "雨水", "Rain Water", 330, true},
	{"Jīngzhé", "惊蛰", "Awakening of Insects", 345, false},
}

// SolarTermAt returns the term that begins at the given longitude, which
// must be a multiple of 15 degrees.
func SolarTermAt(longitude int) SolarTerm {
	return solarTerms[calendar.Mod(longitude, 360)/15]
}

// Number returns the term's position, 1 through 12, among the major or the
// minor terms. Major term 1 is Yǔshuǐ and minor term 1 is Lìchūn.
func (s SolarTerm) Number() int {
	if s.Major {
		return calendar.Mod1(2+s.Longitude/30, 12)
	}
	return calendar.Mod1(3+(s.Longitude-15)/30, 12)
}

// MajorSolarTerm returns major term n, 1 through 12.
func MajorSolarTerm(n int) SolarTerm {
	return SolarTermAt(30 * calendar.Mod(n-2, 12))
}

// MinorSolarTerm returns minor term n, 1 through 12.
func MinorSolarTerm(n int) SolarTerm {
	return SolarTermAt(15 + 30*calendar.Mod(n-3, 12))
}

// TermEvent is the start of a solar term.
type TermEvent struct {
	Term   SolarTerm         `json:"term"`
	Day    calendar.FixedDay `json:"-"`
	Moment float64           `json:"-"` // Universal Time
}

// Time returns the moment of the event in Beijing time.
func (e TermEvent) Time() time.Time {
	return BeijingTime(e.Moment)
}

// termFilter selects the longitudes searched for: every step degrees,
// starting at offset.
type termFilter struct {
	step, offset float64
}

var (
	allTerms   = termFilter{step: 15, offset: 0}
	majorTerms = termFilter{step: 30, offset: 0}
	minorTerms = termFilter{step: 30, offset: 15}
)

// solarLongitudeOnAfter finds the first moment on or after the start of
// Beijing day rd when the Sun reaches lambda.
func (c *Calendar) solarLongitudeOnAfter(lambda float64, rd calendar.FixedDay) TermEvent {
	t := c.solarLongitudeAtAfter(lambda, midnightInChina(rd))
	return TermEvent{
		Term:   SolarTermAt(int(math.Round(lambda))),
		Day:    standardDay(t, rd),
		Moment: t,
	}
}

func (c *Calendar) termOnAfter(rd calendar.FixedDay, f termFilter) TermEvent {
	lon := c.solarLongitude(midnightInChina(rd))
	next := f.step*math.Ceil((lon-f.offset)/f.step) + f.offset
	return c.solarLongitudeOnAfter(calendar.ModF(next, 360), rd)
}

// SolarTermOnAfter returns the first solar term, major or minor, that
// begins on or after Beijing day rd.
func (c *Calendar) SolarTermOnAfter(rd calendar.FixedDay) (e TermEvent, err error) {
	if err := checkRange(rd); err != nil {
		return TermEvent{}, err
	}
	defer catch(&err)
	return c.termOnAfter(rd, allTerms), nil
}

// MajorSolarTermOnAfter returns the first major solar term that begins on
// or after Beijing day rd.
func (c *Calendar) MajorSolarTermOnAfter(rd calendar.FixedDay) (e TermEvent, err error) {
	if err := checkRange(rd); err != nil {
		return TermEvent{}, err
	}
	defer catch(&err)
	return c.termOnAfter(rd, majorTerms), nil
}

// MinorSolarTermOnAfter returns the first minor solar term that begins on
// or after Beijing day rd.
func (c *Calendar) MinorSolarTermOnAfter(rd calendar.FixedDay) (e TermEvent, err error) {
	if err := checkRange(rd); err != nil {
		return TermEvent{}, err
	}
	defer catch(&err)
	return c.termOnAfter(rd, minorTerms), nil
}

// SolarTermsInYear returns the 24 solar terms that begin in Gregorian year
// gYear, in order, starting with Xiǎohán in early January.
func (c *Calendar) SolarTermsInYear(gYear int) (events []TermEvent, err error) {
	if err := checkYear(gYear); err != nil {
		return nil, err
	}
	defer catch(&err)

	end := calendar.GregorianNewYear(gYear + 1)
	events = make([]TermEvent, 0, len(solarTerms))
	for rd := calendar.GregorianNewYear(gYear); ; {
		e := c.termOnAfter(rd, allTerms)
		if e.Day >= end {
			break
		}
		events = append(events, e)
		rd = e.Day + 1
	}
	return events, nil
}

// Qingming returns the day of the Qīngmíng festival in Gregorian year
// gYear: the day the minor term at 15 degrees begins.
func (c *Calendar) Qingming(gYear int) (day calendar.FixedDay, err error) {
	if err := checkYear(gYear); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.termOnAfter(calendar.FixedFromGregorian(gYear, time.March, 30), minorTerms).Day, nil
}

// SolarEvent is an equinox or solstice.
type SolarEvent struct {
	Name string `json:"name"`
	TermEvent
}

var seasons = []struct {
	name      string
	longitude float64
	month     time.Month
}{
	{"March Equinox", 0, time.March},
	{"June Solstice", 90, time.June},
	{"September Equinox", 180, time.September},
	{"December Solstice", 270, time.December},
}

// SolarEvents returns the equinoxes and solstices of Gregorian year gYear,
// dated in Beijing time.
func (c *Calendar) SolarEvents(gYear int) (events []SolarEvent, err error) {
	if err := checkYear(gYear); err != nil {
		return nil, err
	}
	defer catch(&err)

	events = make([]SolarEvent, 0, len(seasons))
	for _, s := range seasons {
		start := calendar.FixedFromGregorian(gYear, s.month, 1)
		events = append(events, SolarEvent{
			Name:      s.name,
			TermEvent: c.solarLongitudeOnAfter(s.longitude, start),
		})
	}
	return events, nil
}
