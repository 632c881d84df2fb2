// Package durationspec parses human-readable duration expressions such as
// "30s", "5m", "1h30m", or a bare number of seconds.
package durationspec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMalformed is returned (wrapped) for any duration expression that cannot
// be parsed.
var ErrMalformed = errors.New("malformed duration")

// maxSeconds is the largest second count representable as a time.Duration.
// Anything bigger would wrap negative and fire a freshly armed timer
// immediately.
const maxSeconds = math.MaxInt64 / int64(time.Second)

var unitSeconds = map[byte]int64{
	's': 1,
	'm': 60,
	'h': 3600,
}

// Parse converts a duration expression into a time.Duration.
//
// Two forms are accepted: a bare integer, read as whole seconds, and a
// sequence of <digits><unit> components with unit one of s, m, h, in any
// order but each at most once ("1h30m"). Input is trimmed and lowercased
// before parsing. Negative values and zero-magnitude components are
// rejected; "0" on its own is valid and means "fire immediately".
func Parse(text string) (time.Duration, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	// A bare integer is a count of whole seconds.
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative duration %q", ErrMalformed, text)
		}
		if n > maxSeconds {
			return 0, fmt.Errorf("%w: duration %q too large", ErrMalformed, text)
		}
		return time.Duration(n) * time.Second, nil
	}

	var total int64
	seen := make(map[byte]bool, 3)
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if start == i {
			return 0, fmt.Errorf("%w: unexpected %q in %q", ErrMalformed, string(s[i]), text)
		}
		if i == len(s) {
			return 0, fmt.Errorf("%w: missing unit after %q in %q", ErrMalformed, s[start:], text)
		}
		unit := s[i]
		mult, ok := unitSeconds[unit]
		if !ok {
			return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrMalformed, string(unit), text)
		}
		if seen[unit] {
			return 0, fmt.Errorf("%w: unit %q given twice in %q", ErrMalformed, string(unit), text)
		}
		seen[unit] = true

		n, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad magnitude %q in %q", ErrMalformed, s[start:i], text)
		}
		if n == 0 {
			return 0, fmt.Errorf("%w: zero-length component %q in %q", ErrMalformed, s[start:i+1], text)
		}
		if n > maxSeconds/mult || total > maxSeconds-n*mult {
			return 0, fmt.Errorf("%w: duration %q too large", ErrMalformed, text)
		}
		total += n * mult
		i++
	}

	return time.Duration(total) * time.Second, nil
}

// String renders d in the compact form Parse accepts, e.g. "1h30m" or "45s".
// Sub-second precision is dropped. The zero duration renders as "0s".
func String(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs <= 0 {
		return "0s"
	}

	var b strings.Builder
	if h := secs / 3600; h > 0 {
		fmt.Fprintf(&b, "%dh", h)
	}
	if m := secs % 3600 / 60; m > 0 {
		fmt.Fprintf(&b, "%dm", m)
	}
	if s := secs % 60; s > 0 {
		fmt.Fprintf(&b, "%ds", s)
	}
	return b.String()
}
