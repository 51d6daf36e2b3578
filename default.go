package timeago

import (
	"sync"
	"time"
)

var (
	defaultMu        sync.Mutex
	defaultRegistry  *Registry
	defaultFormatter *Formatter
)

// DefaultRegistry returns the process wide registry behind the package
// level helpers, seeded with BuiltinPacks.
func DefaultRegistry() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return ensureDefaultRegistry()
}

func ensureDefaultRegistry() *Registry {
	if defaultRegistry == nil {
		defaultRegistry = NewBuiltinRegistry()
	}
	return defaultRegistry
}

func ensureDefaultFormatter() (*Formatter, error) {
	if defaultFormatter != nil {
		return defaultFormatter, nil
	}
	f, err := NewFormatter(WithRegistry(ensureDefaultRegistry()))
	if err != nil {
		return nil, err
	}
	defaultFormatter = f
	return f, nil
}

// SetLocale switches the package level formatter. Like every package
// level helper it affects all callers in the process.
func SetLocale(code string, overrides map[string]string) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	f, err := ensureDefaultFormatter()
	if err != nil {
		return err
	}
	return f.SetLocale(code, overrides)
}

// Trans renders past with the package level formatter.
func Trans(past time.Time) (string, error) {
	defaultMu.Lock()
	f, err := ensureDefaultFormatter()
	defaultMu.Unlock()
	if err != nil {
		return "", err
	}
	return f.Trans(past)
}

// TransString parses value and renders it with the package level formatter.
func TransString(value string) (string, error) {
	defaultMu.Lock()
	f, err := ensureDefaultFormatter()
	defaultMu.Unlock()
	if err != nil {
		return "", err
	}
	return f.TransString(value)
}

// SupportedLocales returns the locale codes of the default registry.
func SupportedLocales() []string {
	return DefaultRegistry().Locales()
}

// Reset restores the package level state: English, no overrides and an
// empty phrase cache.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry != nil {
		defaultRegistry.Reset()
	}
	defaultFormatter = nil
}
