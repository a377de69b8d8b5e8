package chinese

import (
	"testing"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

func TestNewYear(t *testing.T) {
	c := Default()

	tests := []struct {
		year int
		want calendar.FixedDay
	}{
		{1990, gregorian(1990, time.January, 27)},
		{2000, gregorian(2000, time.February, 5)},
		{2019, gregorian(2019, time.February, 5)},
		{2020, gregorian(2020, time.January, 25)},
		{2021, gregorian(2021, time.February, 12)},
		{2022, gregorian(2022, time.February, 1)},
		{2023, gregorian(2023, time.January, 22)},
		{2024, gregorian(2024, time.February, 10)},
		{2025, gregorian(2025, time.January, 29)},
	}

	for _, tt := range tests {
		got, err := c.NewYear(tt.year)
		if err != nil {
			t.Errorf("NewYear(%d) error = %v", tt.year, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NewYear(%d) = %s, want %s", tt.year, got, tt.want)
		}
		d, err := c.FromFixed(got)
		if err != nil {
			t.Errorf("FromFixed(%s) error = %v", got, err)
			continue
		}
		if d.Month != 1 || d.Day != 1 || d.Leap {
			t.Errorf("FromFixed(NewYear(%d)) = %s, want month 1 day 1", tt.year, d)
		}
	}
}

func TestNewYearOnBefore(t *testing.T) {
	c := Default()

	tests := []struct {
		rd   calendar.FixedDay
		want calendar.FixedDay
	}{
		{gregorian(2023, time.January, 21), gregorian(2022, time.February, 1)},
		{gregorian(2023, time.January, 22), gregorian(2023, time.January, 22)},
		{gregorian(2023, time.December, 31), gregorian(2023, time.January, 22)},
	}
	for _, tt := range tests {
		got, err := c.NewYearOnBefore(tt.rd)
		if err != nil {
			t.Fatalf("NewYearOnBefore(%s) error = %v", tt.rd, err)
		}
		if got != tt.want {
			t.Errorf("NewYearOnBefore(%s) = %s, want %s", tt.rd, got, tt.want)
		}
	}
}

func TestWinterSolsticeOnBefore(t *testing.T) {
	c := Default()

	tests := []struct {
		rd   calendar.FixedDay
		want calendar.FixedDay
	}{
		{gregorian(2023, time.January, 10), gregorian(2022, time.December, 22)},
		{gregorian(2022, time.December, 22), gregorian(2022, time.December, 22)},
		{gregorian(2021, time.December, 20), gregorian(2020, time.December, 21)},
		{gregorian(2025, time.June, 1), gregorian(2024, time.December, 21)},
	}
	for _, tt := range tests {
		got, err := c.WinterSolsticeOnBefore(tt.rd)
		if err != nil {
			t.Fatalf("WinterSolsticeOnBefore(%s) error = %v", tt.rd, err)
		}
		if got != tt.want {
			t.Errorf("WinterSolsticeOnBefore(%s) = %s, want %s", tt.rd, got, tt.want)
		}
	}
}

func TestNewMoons(t *testing.T) {
	c := Default()

	// The conjunction of 2023-03-21 17:23 UTC fell on March 22 in Beijing.
	after, err := c.NewMoonOnAfter(gregorian(2023, time.March, 10))
	if err != nil {
		t.Fatal(err)
	}
	if want := gregorian(2023, time.March, 22); after != want {
		t.Errorf("NewMoonOnAfter = %s, want %s", after, want)
	}

	before, err := c.NewMoonBefore(gregorian(2023, time.March, 22))
	if err != nil {
		t.Fatal(err)
	}
	if want := gregorian(2023, time.February, 20); before != want {
		t.Errorf("NewMoonBefore = %s, want %s", before, want)
	}

	same, err := c.NewMoonOnAfter(gregorian(2023, time.March, 22))
	if err != nil {
		t.Fatal(err)
	}
	if want := gregorian(2023, time.March, 22); same != want {
		t.Errorf("NewMoonOnAfter(new moon day) = %s, want %s", same, want)
	}
}

func TestCurrentSolarTerms(t *testing.T) {
	c := Default()

	// On 2023-01-22 the Sun is near 302 degrees: past Dàhán (major 12)
	// and Xiǎohán (minor 12).
	rd := gregorian(2023, time.January, 22)
	major, err := c.CurrentMajorSolarTerm(rd)
	if err != nil {
		t.Fatal(err)
	}
	if major != 12 {
		t.Errorf("CurrentMajorSolarTerm(%s) = %d, want 12", rd, major)
	}
	minor, err := c.CurrentMinorSolarTerm(rd)
	if err != nil {
		t.Fatal(err)
	}
	if minor != 12 {
		t.Errorf("CurrentMinorSolarTerm(%s) = %d, want 12", rd, minor)
	}

	// The leap second month of 2023 holds no major term.
	if !c.noMajorSolarTerm(gregorian(2023, time.March, 22)) {
		t.Error("leap month 2023-03-22 reported a major term")
	}
	if c.noMajorSolarTerm(gregorian(2023, time.February, 20)) {
		t.Error("month 2023-02-20 reported no major term")
	}
}

func TestSolarTermNumbers(t *testing.T) {
	tests := []struct {
		longitude int
		pinyin    string
		major     bool
		number    int
	}{
		{330, "Yǔshuǐ", true, 1},
		{0, "Chūnfēn", true, 2},
		{270, "Dōngzhì", true, 11},
		{300, "Dàhán", true, 12},
		{315, "Lìchūn", false, 1},
		{345, "Jīngzhé", false, 2},
		{15, "Qīngmíng", false, 3},
		{285, "Xiǎohán", false, 12},
		{375, "Qīngmíng", false, 3},
	}
	for _, tt := range tests {
		s := SolarTermAt(tt.longitude)
		if s.Pinyin != tt.pinyin || s.Major != tt.major || s.Number() != tt.number {
			t.Errorf("SolarTermAt(%d) = %s major=%v number=%d, want %s major=%v number=%d",
				tt.longitude, s.Pinyin, s.Major, s.Number(), tt.pinyin, tt.major, tt.number)
		}
	}
}

func TestSolarTermsInYear(t *testing.T) {
	c := Default()

	events, err := c.SolarTermsInYear(2023)
	if err != nil {
		t.Fatalf("SolarTermsInYear error = %v", err)
	}
	if len(events) != 24 {
		t.Fatalf("SolarTermsInYear(2023) returned %d terms, want 24", len(events))
	}

	first, last := events[0], events[len(events)-1]
	if first.Term.Pinyin != "Xiǎohán" || first.Day != gregorian(2023, time.January, 5) {
		t.Errorf("first term = %s on %s, want Xiǎohán on 2023-01-05", first.Term.Pinyin, first.Day)
	}
	if last.Term.Pinyin != "Dōngzhì" || last.Day != gregorian(2023, time.December, 22) {
		t.Errorf("last term = %s on %s, want Dōngzhì on 2023-12-22", last.Term.Pinyin, last.Day)
	}

	for i := 1; i < len(events); i++ {
		gap := events[i].Day - events[i-1].Day
		if gap < 13 || gap > 17 {
			t.Errorf("%s to %s is %d days", events[i-1].Term.Pinyin, events[i].Term.Pinyin, gap)
		}
		if want := calendar.Mod(events[i-1].Term.Longitude+15, 360); events[i].Term.Longitude != want {
			t.Errorf("term %d at %d degrees, want %d", i, events[i].Term.Longitude, want)
		}
	}
}

func TestSolarTermOnAfter(t *testing.T) {
	c := Default()

	e, err := c.SolarTermOnAfter(gregorian(2023, time.March, 22))
	if err != nil {
		t.Fatal(err)
	}
	if e.Term.Pinyin != "Qīngmíng" || e.Day != gregorian(2023, time.April, 5) {
		t.Errorf("SolarTermOnAfter = %s on %s, want Qīngmíng on 2023-04-05", e.Term.Pinyin, e.Day)
	}

	major, err := c.MajorSolarTermOnAfter(gregorian(2023, time.March, 22))
	if err != nil {
		t.Fatal(err)
	}
	if major.Term.Pinyin != "Gǔyǔ" || major.Day != gregorian(2023, time.April, 20) {
		t.Errorf("MajorSolarTermOnAfter = %s on %s, want Gǔyǔ on 2023-04-20", major.Term.Pinyin, major.Day)
	}

	minor, err := c.MinorSolarTermOnAfter(gregorian(2023, time.April, 6))
	if err != nil {
		t.Fatal(err)
	}
	if minor.Term.Pinyin != "Lìxià" || minor.Day != gregorian(2023, time.May, 6) {
		t.Errorf("MinorSolarTermOnAfter = %s on %s, want Lìxià on 2023-05-06", minor.Term.Pinyin, minor.Day)
	}
}

func TestQingming(t *testing.T) {
	c := Default()

	tests := []struct {
		year int
		want calendar.FixedDay
	}{
		{2023, gregorian(2023, time.April, 5)},
		{2024, gregorian(2024, time.April, 4)},
		{2025, gregorian(2025, time.April, 4)},
	}
	for _, tt := range tests {
		got, err := c.Qingming(tt.year)
		if err != nil {
			t.Fatalf("Qingming(%d) error = %v", tt.year, err)
		}
		if got != tt.want {
			t.Errorf("Qingming(%d) = %s, want %s", tt.year, got, tt.want)
		}
	}
}

func TestSolarEvents(t *testing.T) {
	c := Default()

	events, err := c.SolarEvents(2023)
	if err != nil {
		t.Fatalf("SolarEvents error = %v", err)
	}

	want := []struct {
		name string
		day  calendar.FixedDay
	}{
		{"March Equinox", gregorian(2023, time.March, 21)},
		{"June Solstice", gregorian(2023, time.June, 21)},
		{"September Equinox", gregorian(2023, time.September, 23)},
		{"December Solstice", gregorian(2023, time.December, 22)},
	}
	if len(events) != len(want) {
		t.Fatalf("SolarEvents returned %d events, want %d", len(events), len(want))
	}
	for i, w := range want {
		if events[i].Name != w.name || events[i].Day != w.day {
			t.Errorf("event %d = %s on %s, want %s on %s", i, events[i].Name, events[i].Day, w.name, w.day)
		}
	}

	tm := events[0].Time()
	if _, offset := tm.Zone(); offset != 8*3600 {
		t.Errorf("event time offset = %d, want %d", offset, 8*3600)
	}
	if tm.Month() != time.March || tm.Day() != 21 || tm.Hour() != 5 {
		t.Errorf("March equinox at %v, want 2023-03-21 05:xx +08:00", tm)
	}
}

func TestZone(t *testing.T) {
	if got := Zone(gregorian(1928, time.December, 31)); got != 1397.0/180/24 {
		t.Errorf("Zone(1928-12-31) = %v, want %v", got, 1397.0/180/24)
	}
	if got := Zone(gregorian(1929, time.January, 1)); got != 8.0/24 {
		t.Errorf("Zone(1929-01-01) = %v, want %v", got, 8.0/24)
	}
	if got := calendar.FormatZone(Location(gregorian(1900, time.January, 1)).Zone); got != "+07:46" {
		t.Errorf("historical zone = %s, want +07:46", got)
	}
}

func TestSolarTermByNumber(t *testing.T) {
	for n := 1; n <= 12; n++ {
		if got := MajorSolarTerm(n); !got.Major || got.Number() != n {
			t.Errorf("MajorSolarTerm(%d) = %s (major=%v, number %d)", n, got.Pinyin, got.Major, got.Number())
		}
		if got := MinorSolarTerm(n); got.Major || got.Number() != n {
			t.Errorf("MinorSolarTerm(%d) = %s (major=%v, number %d)", n, got.Pinyin, got.Major, got.Number())
		}
	}
	if got := MajorSolarTerm(11).Pinyin; got != "Dōngzhì" {
		t.Errorf("MajorSolarTerm(11) = %s, want Dōngzhì", got)
	}
}

func TestBeijingDay(t *testing.T) {
	// 20:00 UTC on Jan 21 is already the 22nd in Beijing.
	ts := time.Date(2023, time.January, 21, 20, 0, 0, 0, time.UTC)
	if got, want := BeijingDay(ts), gregorian(2023, time.January, 22); got != want {
		t.Errorf("BeijingDay(%v) = %v, want %v", ts, got, want)
	}

	if name, _ := time.Now().In(TimeZone(gregorian(1900, time.June, 1))).Zone(); name != "LMT" {
		t.Errorf("TimeZone(1900) name = %s, want LMT", name)
	}
	if _, off := time.Now().In(TimeZone(gregorian(2000, time.June, 1))).Zone(); off != 8*3600 {
		t.Errorf("TimeZone(2000) offset = %d, want %d", off, 8*3600)
	}
}
