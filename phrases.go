package timeago

import "sort"

// Phrases maps phrase keys such as "minutes-special" to their text
type Phrases map[string]string

// PhraseLoader retrieves the default phrases of a locale pack
type PhraseLoader interface {
	Load() (Phrases, error)
}

// PhraseLoaderFunc adapters allow bare functions to implement PhraseLoader
type PhraseLoaderFunc func() (Phrases, error)

// Load implements PhraseLoader for PhraseLoaderFunc
func (fn PhraseLoaderFunc) Load() (Phrases, error) {
	return fn()
}

// StaticPhrases serves a fixed mapping, copied on every load
func StaticPhrases(phrases Phrases) PhraseLoader {
	return PhraseLoaderFunc(func() (Phrases, error) {
		return phrases.Clone(), nil
	})
}

func (p Phrases) Clone() Phrases {
	if p == nil {
		return nil
	}
	out := make(Phrases, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// PhraseTable is an in memory snapshot, read only after construction
type PhraseTable struct {
	phrases Phrases
}

// NewPhraseTable builds an immutable snapshot of phrases
func NewPhraseTable(phrases Phrases) *PhraseTable {
	return &PhraseTable{phrases: phrases.Clone()}
}

// ResolvePhrases overlays overrides on top of defaults, key for key. The
// defaults table is left untouched.
func ResolvePhrases(defaults *PhraseTable, overrides map[string]string) *PhraseTable {
	var base Phrases
	if defaults != nil {
		base = defaults.phrases
	}
	if len(overrides) == 0 {
		return NewPhraseTable(base)
	}

	merged := make(Phrases, len(base)+len(overrides))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return &PhraseTable{phrases: merged}
}

// Get returns the phrase for key and ok=false if missing
func (t *PhraseTable) Get(key string) (string, bool) {
	if t == nil || t.phrases == nil {
		return "", false
	}
	value, ok := t.phrases[key]
	return value, ok
}

// Keys returns all phrase keys in sorted order.
func (t *PhraseTable) Keys() []string {
	if t == nil || len(t.phrases) == 0 {
		return nil
	}
	keys := make([]string, 0, len(t.phrases))
	for key := range t.phrases {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t *PhraseTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.phrases)
}

// Phrases returns a copy of the underlying mapping.
func (t *PhraseTable) Phrases() Phrases {
	if t == nil {
		return nil
	}
	return t.phrases.Clone()
}

// TimeTranslations assembles the single, plural and special phrase of
// every unit. Forms a locale lacks are left empty.
func (t *PhraseTable) TimeTranslations() TimeTranslations {
	out := make(TimeTranslations, len(Units))
	for _, unit := range Units {
		forms := make(map[Category]string, len(Categories))
		for _, category := range Categories {
			value, _ := t.Get(unit.PhraseKey(category))
			forms[category] = value
		}
		out[unit] = forms
	}
	return out
}
