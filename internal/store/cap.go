package store

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionCap bounds how many versions are retained per prompt. The zero value
// is unlimited, so the pruning branch is exhaustive: either Limit reports a
// bound or retention is unbounded, with no sentinel in between.
type VersionCap struct {
	n int // 0 means unlimited
}

// Unlimited returns a cap that never prunes.
func Unlimited() VersionCap { return VersionCap{} }

// Bounded returns a cap retaining at most n versions per prompt. n must be
// positive; use Unlimited for no bound.
func Bounded(n int) VersionCap {
	if n <= 0 {
		panic("store: bounded version cap must be positive")
	}
	return VersionCap{n: n}
}

// Limit reports the retention bound. ok is false when the cap is unlimited.
func (c VersionCap) Limit() (n int, ok bool) {
	return c.n, c.n > 0
}

func (c VersionCap) String() string {
	if c.n == 0 {
		return "unlimited"
	}
	return strconv.Itoa(c.n)
}

// ParseVersionCap parses "unlimited" (or empty) and positive integers.
func ParseVersionCap(s string) (VersionCap, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "unlimited" {
		return Unlimited(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return VersionCap{}, fmt.Errorf("invalid version cap %q: %w", s, err)
	}
	if n <= 0 {
		return VersionCap{}, fmt.Errorf("invalid version cap %d: must be positive or \"unlimited\"", n)
	}
	return Bounded(n), nil
}

// Decode implements envconfig.Decoder so MAX_VERSIONS_PER_PROMPT can be set
// to either "unlimited" or a positive integer.
func (c *VersionCap) Decode(value string) error {
	parsed, err := ParseVersionCap(value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
