package timeago

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// coverageLimit is the highest count a rule set must classify to be
// accepted by Register. Larger counts are still classified at format
// time and surface ErrNoCategory when no rule matches.
const coverageLimit = 1000

// Pack bundles the rules and default phrases of one locale
type Pack struct {
	Code   string
	Name   string
	Rules  *RuleSet
	Loader PhraseLoader
}

// Registry holds the registered locale packs and the phrase tables
// loaded from them. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	packs    map[string]Pack
	phrases  map[string]*PhraseTable
	fallback string
	logger   logrus.FieldLogger

	loads singleflight.Group
}

// RegistryOption mutates a Registry during construction
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for cache and fallback events
func WithRegistryLogger(logger logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRegistryFallback changes the locale used for unsupported codes.
// The fallback must be registered before it is resolved.
func WithRegistryFallback(locale string) RegistryOption {
	return func(r *Registry) {
		if locale = normalizeLocale(locale); locale != "" {
			r.fallback = locale
		}
	}
}

// NewRegistry builds an empty registry
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		packs:    make(map[string]Pack),
		phrases:  make(map[string]*PhraseTable),
		fallback: DefaultLocale,
		logger:   newDefaultLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// NewBuiltinRegistry builds a registry seeded with BuiltinPacks.
func NewBuiltinRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	for _, pack := range BuiltinPacks() {
		r.MustRegister(pack)
	}
	return r
}

// Register validates and adds a pack. Rule sets that leave any count in
// [0, coverageLimit] unclassified are rejected. Coverage above the limit
// is not checked here.
func (r *Registry) Register(pack Pack) error {
	code := normalizeLocale(pack.Code)
	if code == "" {
		return fmt.Errorf("timeago: register: empty locale code")
	}
	if pack.Loader == nil {
		return fmt.Errorf("timeago: register %q: missing phrase loader", code)
	}
	if err := pack.Rules.Validate(coverageLimit); err != nil {
		return fmt.Errorf("timeago: register %q: %w", code, err)
	}

	pack.Code = code
	pack.Rules = pack.Rules.Clone()
	if pack.Rules.Locale == "" {
		pack.Rules.Locale = code
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packs[code]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocale, code)
	}
	r.packs[code] = pack
	return nil
}

// MustRegister is like Register but panics on error. Meant for compiled in packs.
func (r *Registry) MustRegister(pack Pack) {
	if err := r.Register(pack); err != nil {
		panic(err)
	}
}

// Pack returns the pack registered under code
func (r *Registry) Pack(code string) (Pack, error) {
	code = normalizeLocale(code)

	r.mu.RLock()
	defer r.mu.RUnlock()

	pack, ok := r.packs[code]
	if !ok {
		return Pack{}, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	pack.Rules = pack.Rules.Clone()
	return pack, nil
}

// Locales returns the registered locale codes in sorted order
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.packs))
	for code := range r.packs {
		locales = append(locales, code)
	}
	sort.Strings(locales)
	return locales
}

// Supports reports whether code resolves to a registered pack without
// falling back.
func (r *Registry) Supports(code string) bool {
	_, ok := r.lookup(code)
	return ok
}

// Resolve maps code onto a registered locale. Regional variants resolve
// to their parent ("uk-UA" to "uk"), anything else to the fallback. When
// the fallback itself is not registered the first registered locale is
// used instead. An empty registry resolves to the fallback code.
func (r *Registry) Resolve(code string) string {
	if resolved, ok := r.lookup(code); ok {
		return resolved
	}

	fallback := r.fallbackLocale()
	r.logger.WithFields(logrus.Fields{
		"requested": code,
		"fallback":  fallback,
	}).Debug("timeago: unsupported locale, using fallback")
	return fallback
}

func (r *Registry) fallbackLocale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.packs[r.fallback]; ok || len(r.packs) == 0 {
		return r.fallback
	}

	first := ""
	for code := range r.packs {
		if first == "" || code < first {
			first = code
		}
	}
	r.logger.WithFields(logrus.Fields{
		"fallback": r.fallback,
		"using":    first,
	}).Warn("timeago: fallback locale not registered")
	return first
}

func (r *Registry) lookup(code string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range localeCandidates(code) {
		if _, ok := r.packs[candidate]; ok {
			return candidate, true
		}
	}
	return "", false
}

// LoadPhrases returns the default phrase table of code, invoking the
// pack loader only on first use. Concurrent first calls share one load.
func (r *Registry) LoadPhrases(code string) (*PhraseTable, error) {
	code = normalizeLocale(code)

	if table, ok := r.cachedPhrases(code); ok {
		return table, nil
	}

	v, err, _ := r.loads.Do(code, func() (any, error) {
		// a previous flight may have filled the cache
		if table, ok := r.cachedPhrases(code); ok {
			return table, nil
		}

		r.mu.RLock()
		pack, registered := r.packs[code]
		r.mu.RUnlock()
		if !registered {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
		}

		phrases, err := pack.Loader.Load()
		if err != nil {
			return nil, fmt.Errorf("timeago: load phrases %q: %w", code, err)
		}

		table := NewPhraseTable(phrases)

		r.mu.Lock()
		r.phrases[code] = table
		r.mu.Unlock()

		r.logger.WithFields(logrus.Fields{
			"locale":  code,
			"phrases": table.Len(),
		}).Debug("timeago: phrase table loaded")
		return table, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PhraseTable), nil
}

func (r *Registry) cachedPhrases(code string) (*PhraseTable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.phrases[code]
	return table, ok
}

// Rules returns a copy of the rule set registered for code
func (r *Registry) Rules(code string) (*RuleSet, error) {
	pack, err := r.Pack(code)
	if err != nil {
		return nil, err
	}
	return pack.Rules, nil
}

// Reset drops every cached phrase table.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phrases = make(map[string]*PhraseTable)
}
