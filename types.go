package timeago

// Category is the grammatical form bucket a locale selects for a count
type Category string

const (
	CategorySingle  Category = "single"
	CategoryPlural  Category = "plural"
	CategorySpecial Category = "special"
)

// Categories lists the categories every phrase table can provide, in
// lookup order.
var Categories = []Category{CategorySingle, CategoryPlural, CategorySpecial}

// Unit is the magnitude reported in a relative time phrase
type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
	Days
	Weeks
	Months
	Years
)

// Units lists all units ordered by magnitude.
var Units = []Unit{Seconds, Minutes, Hours, Days, Weeks, Months, Years}

const (
	MinuteSeconds int64 = 60
	HourSeconds         = 60 * MinuteSeconds
	DaySeconds          = 24 * HourSeconds
	WeekSeconds         = 7 * DaySeconds
	// MonthSeconds and YearSeconds follow the fixed 30/365 day convention.
	MonthSeconds = 30 * DaySeconds
	YearSeconds  = 365 * DaySeconds
)

var unitSeconds = [...]int64{
	Seconds: 1,
	Minutes: MinuteSeconds,
	Hours:   HourSeconds,
	Days:    DaySeconds,
	Weeks:   WeekSeconds,
	Months:  MonthSeconds,
	Years:   YearSeconds,
}

var unitNames = [...]string{
	Seconds: "seconds",
	Minutes: "minutes",
	Hours:   "hours",
	Days:    "days",
	Weeks:   "weeks",
	Months:  "months",
	Years:   "years",
}

var unitSingularNames = [...]string{
	Seconds: "second",
	Minutes: "minute",
	Hours:   "hour",
	Days:    "day",
	Weeks:   "week",
	Months:  "month",
	Years:   "year",
}

func (u Unit) valid() bool {
	return u >= Seconds && u <= Years
}

// String returns the plural unit name, which doubles as its phrase key.
func (u Unit) String() string {
	if !u.valid() {
		return "unknown"
	}
	return unitNames[u]
}

// Seconds returns how many seconds one unit spans.
func (u Unit) Seconds() int64 {
	if !u.valid() {
		return 0
	}
	return unitSeconds[u]
}

// PhraseKey returns the phrase table key holding the form for category.
func (u Unit) PhraseKey(category Category) string {
	if !u.valid() {
		return ""
	}
	switch category {
	case CategorySingle:
		return unitSingularNames[u]
	case CategorySpecial:
		return unitNames[u] + "-special"
	default:
		return unitNames[u]
	}
}

// TimeTranslations holds the per category phrase of each unit
type TimeTranslations map[Unit]map[Category]string

// Phrase returns the phrase for unit/category, falling back to the plural
// phrase when the locale has no form for the category.
func (t TimeTranslations) Phrase(unit Unit, category Category) string {
	forms := t[unit]
	if forms == nil {
		return ""
	}
	if phrase := forms[category]; phrase != "" {
		return phrase
	}
	return forms[CategoryPlural]
}
