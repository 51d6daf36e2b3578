package timeago

import "errors"

// ErrNoCategory indicates that no rule of a locale matched a count. It
// always points at a malformed rule set.
var ErrNoCategory = errors.New("timeago: no category matched")

// ErrRuleCoverage is returned when a rule set fails validation at registration
var ErrRuleCoverage = errors.New("timeago: rule set does not cover all counts")

// ErrNegativeElapsed marks timestamps that lie in the future
var ErrNegativeElapsed = errors.New("timeago: negative elapsed time")

// ErrInvalidInput marks counts or digits outside their domain
var ErrInvalidInput = errors.New("timeago: invalid input")

// ErrUnknownLocale is returned by registry lookups for unregistered codes
var ErrUnknownLocale = errors.New("timeago: unknown locale")

var ErrDuplicateLocale = errors.New("timeago: locale already registered")
