// Package tags normalizes and validates prompt tag sets.
package tags

import (
	"errors"
	"fmt"
	"strings"
)

// Default limits, matching the documented API contract.
const (
	DefaultMaxTags      = 10
	DefaultMaxTagLength = 30
)

// ErrConstraint is the root of every tag validation failure. Callers match it
// with errors.Is to map violations to a client error.
var ErrConstraint = errors.New("tag constraint violated")

// Limits bounds a normalized tag set.
type Limits struct {
	MaxTags      int
	MaxTagLength int
}

// DefaultLimits returns the standard limits (10 tags, 30 chars each).
func DefaultLimits() Limits {
	return Limits{MaxTags: DefaultMaxTags, MaxTagLength: DefaultMaxTagLength}
}

// Normalize canonicalizes raw tags: trim whitespace, lowercase, drop entries
// that become empty, and dedupe while preserving first-occurrence order.
// Normalize never fails; limits are enforced separately by Validate.
func Normalize(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		cleaned := strings.ToLower(strings.TrimSpace(tag))
		if cleaned == "" {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		normalized = append(normalized, cleaned)
	}
	return normalized
}

// Validate checks a normalized tag set against lim. It must run before any
// store mutation; a failing set is never partially applied.
func Validate(normalized []string, lim Limits) error {
	if len(normalized) > lim.MaxTags {
		return fmt.Errorf("%w: at most %d unique tags allowed, got %d", ErrConstraint, lim.MaxTags, len(normalized))
	}
	for _, tag := range normalized {
		if len(tag) > lim.MaxTagLength {
			return fmt.Errorf("%w: tag %q exceeds %d characters", ErrConstraint, tag, lim.MaxTagLength)
		}
	}
	return nil
}

// NormalizeAndValidate is the write-path helper: canonicalize, then enforce
// limits, returning the normalized set only when it is fully valid.
func NormalizeAndValidate(raw []string, lim Limits) ([]string, error) {
	normalized := Normalize(raw)
	if err := Validate(normalized, lim); err != nil {
		return nil, err
	}
	return normalized, nil
}
