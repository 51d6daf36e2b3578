package timeago

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Option mutates a Formatter during construction
type Option func(*Formatter) error

// WithRegistry uses registry instead of a fresh built in one
func WithRegistry(registry *Registry) Option {
	return func(f *Formatter) error {
		if registry == nil {
			return errors.New("timeago: nil registry")
		}
		f.registry = registry
		return nil
	}
}

// WithLocale sets the initially active locale
func WithLocale(code string) Option {
	return func(f *Formatter) error {
		f.requested = code
		return nil
	}
}

// WithOverrides replaces default phrases key for key, e.g.
// {"day": "single day"}.
func WithOverrides(overrides map[string]string) Option {
	return func(f *Formatter) error {
		if len(overrides) == 0 {
			return nil
		}
		if f.overrides == nil {
			f.overrides = make(map[string]string, len(overrides))
		}
		for key, value := range overrides {
			f.overrides[key] = value
		}
		return nil
	}
}

// WithClock sets the source of "now"
func WithClock(clock Clock) Option {
	return func(f *Formatter) error {
		if clock != nil {
			f.clock = clock
		}
		return nil
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(f *Formatter) error {
		if logger != nil {
			f.logger = logger
		}
		return nil
	}
}

// WithHooks registers hooks run around every Trans call, in order
func WithHooks(hooks ...Hook) Option {
	return func(f *Formatter) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			f.hooks = append(f.hooks, hook)
		}
		return nil
	}
}
