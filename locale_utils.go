package timeago

import (
	"strings"

	"golang.org/x/text/language"
)

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeCandidates returns locale followed by its parents, closest
// first, ending with the bare base language.
func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	seen := map[string]struct{}{locale: {}}

	appendCandidate := func(value string) {
		if value == "" || value == "und" {
			return
		}
		if _, exists := seen[value]; exists {
			return
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
	}

	tag, err := language.Parse(locale)
	if err == nil {
		appendCandidate(tag.String())
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		appendCandidate(current)
	}

	if err == nil {
		base, _ := tag.Base()
		appendCandidate(base.String())
	}

	return chain
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}
