package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	perr "tsconv/internal/platform/errors"
)

// relUnit is one step of the largest-unit-first ladder
type relUnit struct {
	name string
	d    time.Duration
}

// relUnits, largest first. Months and years use the conventional 30/365
// day approximations
var relUnits = []relUnit{
	{"year", 365 * 24 * time.Hour},
	{"month", 30 * 24 * time.Hour},
	{"week", 7 * 24 * time.Hour},
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// RelativeTo renders t against now using the largest unit whose count
// reaches 1: "2 hours ago", "in 3 days", or "just now" when no unit does
func RelativeTo(t, now time.Time) string {
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}
	for _, u := range relUnits {
		n := int64(d / u.d)
		if n < 1 {
			continue
		}
		name := u.name
		if n != 1 {
			name += "s"
		}
		if future {
			return fmt.Sprintf("in %d %s", n, name)
		}
		return fmt.Sprintf("%d %s ago", n, name)
	}
	return "just now"
}

var (
	relPastRe   = regexp.MustCompile(`^(\d+) (second|minute|hour|day|week|month|year)s? ago$`)
	relFutureRe = regexp.MustCompile(`^in (\d+) (second|minute|hour|day|week|month|year)s?$`)
	relNowRe    = regexp.MustCompile(`^(just now|now)$`)
)

// ParseRelativeTo resolves a relative phrase against a reference now
func ParseRelativeTo(s string, now time.Time) (time.Time, error) {
	if relNowRe.MatchString(s) {
		return now, nil
	}
	sign := time.Duration(-1)
	m := relPastRe.FindStringSubmatch(s)
	if m == nil {
		m = relFutureRe.FindStringSubmatch(s)
		sign = 1
	}
	if m == nil {
		return time.Time{}, perr.InvalidArgf("not a relative phrase: %q", s)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, perr.InvalidArgf("bad count in relative phrase: %q", s)
	}
	for _, u := range relUnits {
		if u.name == m[2] {
			return now.Add(sign * time.Duration(n) * u.d), nil
		}
	}
	return time.Time{}, perr.InvalidArgf("unknown unit in relative phrase: %q", s)
}
