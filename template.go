package timeago

import (
	"strconv"
	"strings"
)

// DefaultTemplate is used by locales whose phrase table has no "format" key.
const DefaultTemplate = "{count} {unit} {ago}"

// RenderTemplate substitutes {count}, {unit} and {ago} in template.
// Runs of whitespace left by empty placeholders collapse to one space.
func RenderTemplate(template string, count int64, unit, ago string) string {
	replacer := strings.NewReplacer(
		"{count}", strconv.FormatInt(count, 10),
		"{unit}", unit,
		"{ago}", ago,
	)
	return strings.Join(strings.Fields(replacer.Replace(template)), " ")
}
