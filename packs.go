package timeago

// DefaultLocale is used whenever a requested locale is not registered.
const DefaultLocale = "en"

// EnglishRules covers locales that only distinguish one from many.
func EnglishRules(locale string) *RuleSet {
	return &RuleSet{
		Locale: locale,
		Rules: []Rule{
			{
				Category: CategorySingle,
				Groups: [][]Condition{
					{{Operand: OperandCount, Operator: OperatorEquals, Values: []int64{1}}},
				},
			},
			{Category: CategoryPlural},
		},
	}
}

// SlavicRules covers the east Slavic scheme used by ru and uk, where
// the last digit decides the form once the count passes 20.
func SlavicRules(locale string) *RuleSet {
	return &RuleSet{
		Locale: locale,
		Rules: []Rule{
			{
				Category: CategorySingle,
				Groups: [][]Condition{
					{{Operand: OperandCount, Operator: OperatorEquals, Values: []int64{1}}},
					{
						{Operand: OperandLastDigit, Operator: OperatorEquals, Values: []int64{1}},
						{Operand: OperandCount, Operator: OperatorAtLeast, Values: []int64{21}},
					},
				},
			},
			{
				Category: CategoryPlural,
				Groups: [][]Condition{
					{{Operand: OperandCount, Operator: OperatorWithin, Ranges: []Range{{Start: 2, End: 4}}}},
					{
						{Operand: OperandCount, Operator: OperatorAtLeast, Values: []int64{22}},
						{Operand: OperandLastDigit, Operator: OperatorWithin, Ranges: []Range{{Start: 2, End: 4}}},
					},
				},
			},
			{
				Category: CategorySpecial,
				Groups: [][]Condition{
					{{Operand: OperandCount, Operator: OperatorWithin, Ranges: []Range{{Start: 5, End: 20}}}},
					{{Operand: OperandLastDigit, Operator: OperatorEquals, Values: []int64{0}}},
					{{Operand: OperandLastDigit, Operator: OperatorWithin, Ranges: []Range{{Start: 5, End: 9}}}},
				},
			},
		},
	}
}

// PolishRules: 2-4 take the plural form unless the count ends in 12-14,
// everything past one that is not plural takes the special form.
func PolishRules(locale string) *RuleSet {
	return &RuleSet{
		Locale: locale,
		Rules: []Rule{
			{
				Category: CategorySingle,
				Groups: [][]Condition{
					{{Operand: OperandCount, Operator: OperatorEquals, Values: []int64{1}}},
				},
			},
			{
				Category: CategoryPlural,
				Groups: [][]Condition{
					{
						{Operand: OperandLastDigit, Operator: OperatorWithin, Ranges: []Range{{Start: 2, End: 4}}},
						{Operand: OperandCount, Mod: 100, Operator: OperatorNotWithin, Ranges: []Range{{Start: 12, End: 14}}},
					},
				},
			},
			{Category: CategorySpecial},
		},
	}
}

var englishPhrases = Phrases{
	"ago":     "ago",
	"second":  "second",
	"seconds": "seconds",
	"minute":  "minute",
	"minutes": "minutes",
	"hour":    "hour",
	"hours":   "hours",
	"day":     "day",
	"days":    "days",
	"week":    "week",
	"weeks":   "weeks",
	"month":   "month",
	"months":  "months",
	"year":    "year",
	"years":   "years",
}

var russianPhrases = Phrases{
	"ago":             "назад",
	"second":          "секунда",
	"seconds":         "секунды",
	"seconds-special": "секунд",
	"minute":          "минута",
	"minutes":         "минуты",
	"minutes-special": "минут",
	"hour":            "час",
	"hours":           "часа",
	"hours-special":   "часов",
	"day":             "день",
	"days":            "дня",
	"days-special":    "дней",
	"week":            "неделя",
	"weeks":           "недели",
	"weeks-special":   "недель",
	"month":           "месяц",
	"months":          "месяца",
	"months-special":  "месяцев",
	"year":            "год",
	"years":           "года",
	"years-special":   "лет",
}

var ukrainianPhrases = Phrases{
	"ago":             "назад",
	"second":          "секунда",
	"seconds":         "секунди",
	"seconds-special": "секунд",
	"minute":          "хвилина",
	"minutes":         "хвилини",
	"minutes-special": "хвилин",
	"hour":            "година",
	"hours":           "години",
	"hours-special":   "годин",
	"day":             "день",
	"days":            "дня",
	"days-special":    "днів",
	"week":            "тиждень",
	"weeks":           "тижні",
	"weeks-special":   "тижнів",
	"month":           "місяць",
	"months":          "місяці",
	"months-special":  "місяців",
	"year":            "рік",
	"years":           "роки",
	"years-special":   "років",
}

var polishPhrases = Phrases{
	"ago":             "temu",
	"second":          "sekundę",
	"seconds":         "sekundy",
	"seconds-special": "sekund",
	"minute":          "minutę",
	"minutes":         "minuty",
	"minutes-special": "minut",
	"hour":            "godzinę",
	"hours":           "godziny",
	"hours-special":   "godzin",
	"day":             "dzień",
	"days":            "dni",
	"week":            "tydzień",
	"weeks":           "tygodnie",
	"weeks-special":   "tygodni",
	"month":           "miesiąc",
	"months":          "miesiące",
	"months-special":  "miesięcy",
	"year":            "rok",
	"years":           "lata",
	"years-special":   "lat",
}

// German puts the ago word first and uses the dative plural.
var germanPhrases = Phrases{
	"format":  "{ago} {count} {unit}",
	"ago":     "vor",
	"second":  "Sekunde",
	"seconds": "Sekunden",
	"minute":  "Minute",
	"minutes": "Minuten",
	"hour":    "Stunde",
	"hours":   "Stunden",
	"day":     "Tag",
	"days":    "Tagen",
	"week":    "Woche",
	"weeks":   "Wochen",
	"month":   "Monat",
	"months":  "Monaten",
	"year":    "Jahr",
	"years":   "Jahren",
}

// BuiltinPacks returns the compiled in locale packs.
func BuiltinPacks() []Pack {
	return []Pack{
		{Code: "de", Name: "Deutsch", Rules: EnglishRules("de"), Loader: StaticPhrases(germanPhrases)},
		{Code: "en", Name: "English", Rules: EnglishRules("en"), Loader: StaticPhrases(englishPhrases)},
		{Code: "pl", Name: "Polski", Rules: PolishRules("pl"), Loader: StaticPhrases(polishPhrases)},
		{Code: "ru", Name: "Русский", Rules: SlavicRules("ru"), Loader: StaticPhrases(russianPhrases)},
		{Code: "uk", Name: "Українська", Rules: SlavicRules("uk"), Loader: StaticPhrases(ukrainianPhrases)},
	}
}
