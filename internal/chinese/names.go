package chinese

import "github.com/zapponejosh/lunar-calendar-api/internal/calendar"

// Stem is one of the ten celestial stems (tiāngān).
type Stem struct {
	Pinyin string `json:"pinyin"`
	Hanzi  string `json:"hanzi"`
}

// Branch is one of the twelve terrestrial branches (dìzhī).
type Branch struct {
	Pinyin string `json:"pinyin"`
	Hanzi  string `json:"hanzi"`
	Animal string `json:"animal"`
}

var stems = [10]Stem{
	{"Jiǎ", "甲"}, {"Yǐ", "乙"}, {"Bǐng", "丙"}, {"Dīng", "丁"}, {"Wù", "戊"},
	{"Jǐ", "己"}, {"Gēng", "庚"}, {"Xīn", "辛"}, {"Rén", "壬"}, {"Guǐ", "癸"},
}

var branches = [12]Branch{
	{"Zǐ", "子", "Rat"},
	{"Chǒu", "丑", "Ox"},
	{"Yín", "寅", "Tiger"},
	{"Mǎo", "卯", "Rabbit"},
	{"Chén", "辰", "Dragon"},
	{"Sì", "巳", "Snake"},
	{"Wǔ", "午", "Horse"},
	{"Wèi", "未", "Goat"},
	{"Shēn", "申", "Monkey"},
	{"Yǒu", "酉", "Rooster"},
	{"Xū", "戌", "Dog"},
	{"Hài", "亥", "Pig"},
}

// Sexagenary is a name of the sixty-fold cycle: a stem paired with a
// branch.
type Sexagenary struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// SexagenaryName returns the n-th name of the cycle. Name 1 is Jiǎ-Zǐ;
// n is taken modulo 60.
func SexagenaryName(n int) Sexagenary {
	return Sexagenary{
		Stem:   stems[calendar.Mod1(n, 10)-1],
		Branch: branches[calendar.Mod1(n, 12)-1],
	}
}

// dayNameEpoch is a fixed day whose sexagenary name is the 60th, so that
// day rd is named rd - dayNameEpoch.
const dayNameEpoch calendar.FixedDay = 45

// DayCycleName returns the sexagenary name of fixed day rd.
func DayCycleName(rd calendar.FixedDay) Sexagenary {
	return SexagenaryName(int(rd - dayNameEpoch))
}

// String renders the name in pinyin, such as Guǐ-Mǎo.
func (s Sexagenary) String() string {
	return s.Stem.Pinyin + "-" + s.Branch.Pinyin
}

// Hanzi renders the name in characters, such as 癸卯.
func (s Sexagenary) Hanzi() string {
	return s.Stem.Hanzi + s.Branch.Hanzi
}

var monthNames = [12]string{
	"正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月",
}

var digits = [10]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

func dayName(day int) string {
	switch {
	case day < 1 || day > 30:
		return ""
	case day == 10:
		return "初十"
	case day == 20:
		return "二十"
	case day == 30:
		return "三十"
	case day < 10:
		return "初" + digits[day]
	case day < 20:
		return "十" + digits[day-10]
	default:
		return "廿" + digits[day-20]
	}
}
