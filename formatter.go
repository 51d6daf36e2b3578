package timeago

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// timestampLayouts are tried in order by TransString.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
}

// Formatter renders relative time phrases for one active locale. Each
// instance owns its locale, overrides and resolved phrases, so callers
// that need different locales concurrently should use separate
// instances. Methods are safe for concurrent use.
type Formatter struct {
	mu        sync.RWMutex
	registry  *Registry
	locale    string
	requested string
	overrides map[string]string
	phrases   *PhraseTable
	rules     *RuleSet
	clock     Clock
	logger    logrus.FieldLogger
	hooks     []Hook
}

// NewFormatter builds a Formatter via supplied options. Without options it
// uses a registry of the built in packs and the default locale.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{requested: DefaultLocale}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if f.logger == nil {
		f.logger = newDefaultLogger()
	}
	if f.registry == nil {
		f.registry = NewBuiltinRegistry(WithRegistryLogger(f.logger))
	}
	if f.clock == nil {
		f.clock = SystemClock{}
	}

	if err := f.SetLocale(f.requested, f.overrides); err != nil {
		return nil, err
	}
	return f, nil
}

// SetLocale activates code with optional phrase overrides. Unsupported
// codes silently fall back to the registry default; only failures to
// load a pack's phrases are returned.
func (f *Formatter) SetLocale(code string, overrides map[string]string) error {
	resolved := f.registry.Resolve(code)

	defaults, err := f.registry.LoadPhrases(resolved)
	if err != nil {
		return err
	}
	rules, err := f.registry.Rules(resolved)
	if err != nil {
		return err
	}

	copied := make(map[string]string, len(overrides))
	for key, value := range overrides {
		copied[key] = value
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.requested = code
	f.locale = resolved
	f.overrides = copied
	f.rules = rules
	f.phrases = ResolvePhrases(defaults, copied)

	return nil
}

// Locale returns the active, resolved locale code.
func (f *Formatter) Locale() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.locale
}

// Overrides returns a copy of the active phrase overrides.
func (f *Formatter) Overrides() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string, len(f.overrides))
	for key, value := range f.overrides {
		out[key] = value
	}
	return out
}

// SupportedLocales returns the codes SetLocale accepts without falling back.
func (f *Formatter) SupportedLocales() []string {
	return f.registry.Locales()
}

// Phrase returns the resolved phrase for key, or an empty string when
// the active locale does not define it.
func (f *Formatter) Phrase(key string) string {
	f.mu.RLock()
	value, ok := f.phrases.Get(key)
	locale := f.locale
	f.mu.RUnlock()

	if !ok {
		f.logger.WithFields(logrus.Fields{
			"locale": locale,
			"key":    key,
		}).Debug("timeago: missing phrase")
	}
	return value
}

// TimeTranslations returns the single, plural and special phrases of
// every unit for the active locale.
func (f *Formatter) TimeTranslations() TimeTranslations {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.phrases.TimeTranslations()
}

// Trans renders how long ago past was, measured against the formatter clock.
func (f *Formatter) Trans(past time.Time) (string, error) {
	return f.run(past, ElapsedSeconds(f.clock, past))
}

// TransString parses value as "2006-01-02 15:04:05" in the clock's
// location, or as RFC3339, and renders it like Trans.
func (f *Formatter) TransString(value string) (string, error) {
	past, err := f.ParseTimestamp(value)
	if err != nil {
		return "", err
	}
	return f.Trans(past)
}

// Format renders an already computed number of elapsed seconds.
func (f *Formatter) Format(elapsed int64) (string, error) {
	return f.run(time.Time{}, elapsed)
}

// ParseTimestamp parses value using the layouts TransString accepts.
func (f *Formatter) ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	location := f.clock.Now().Location()

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognised timestamp %q", ErrInvalidInput, value)
}

func (f *Formatter) run(past time.Time, elapsed int64) (string, error) {
	f.mu.RLock()
	locale := f.locale
	rules := f.rules
	phrases := f.phrases
	f.mu.RUnlock()

	ctx := &HookContext{
		Locale:  locale,
		Past:    past,
		Elapsed: elapsed,
	}

	for _, hook := range f.hooks {
		hook.BeforeTrans(ctx)
	}

	ctx.Result, ctx.Error = f.render(ctx, rules, phrases)

	for _, hook := range f.hooks {
		hook.AfterTrans(ctx)
	}

	return ctx.Result, ctx.Error
}

func (f *Formatter) render(ctx *HookContext, rules *RuleSet, phrases *PhraseTable) (string, error) {
	unit, count, err := Select(ctx.Elapsed)
	if err != nil {
		return "", err
	}
	ctx.Unit = unit
	ctx.Count = count

	category, err := rules.Classify(count, LastDigit(count))
	if err != nil {
		f.logger.WithFields(logrus.Fields{
			"locale": ctx.Locale,
			"count":  count,
		}).Error("timeago: rule set matched no category")
		return "", err
	}
	ctx.Category = category

	forms := phrases.TimeTranslations()
	if forms[unit][category] == "" && category != CategoryPlural {
		ctx.SetMetadata(metadataPhraseFallback, CategoryPlural)
	}
	phrase := forms.Phrase(unit, category)

	ago, _ := phrases.Get("ago")
	template, ok := phrases.Get("format")
	if !ok || strings.TrimSpace(template) == "" {
		template = DefaultTemplate
	}
	ctx.SetMetadata(metadataTemplate, template)

	return RenderTemplate(template, count, phrase, ago), nil
}
