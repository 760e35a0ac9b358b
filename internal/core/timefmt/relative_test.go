package timefmt

import (
	"testing"
	"time"
)

var relNow = time.Date(2024, time.January, 15, 10, 30, 45, 0, time.UTC)

func TestRelativeTo_Ladder(t *testing.T) {
	cases := []struct {
		t    time.Time
		want string
	}{
		{relNow.Add(-30 * time.Second), "30 seconds ago"},
		{relNow.Add(-time.Minute), "1 minute ago"},
		{relNow.Add(-90 * time.Minute), "1 hour ago"},
		{relNow.Add(-72 * time.Hour), "3 days ago"},
		{relNow.Add(-10 * 24 * time.Hour), "1 week ago"},
		{relNow.Add(-45 * 24 * time.Hour), "1 month ago"},
		{relNow.Add(-800 * 24 * time.Hour), "2 years ago"},
		{relNow.Add(5 * time.Hour), "in 5 hours"},
		{relNow.Add(2 * 24 * time.Hour), "in 2 days"},
		{relNow.Add(500 * time.Millisecond), "just now"},
		{relNow, "just now"},
	}
	for _, c := range cases {
		if got := RelativeTo(c.t, relNow); got != c.want {
			t.Fatalf("RelativeTo(%v) = %q, want %q", c.t, got, c.want)
		}
	}
}

func TestParseRelativeTo(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"3 days ago", relNow.Add(-3 * 24 * time.Hour)},
		{"1 hour ago", relNow.Add(-time.Hour)},
		{"in 2 weeks", relNow.Add(2 * 7 * 24 * time.Hour)},
		{"in 1 month", relNow.Add(30 * 24 * time.Hour)},
		{"just now", relNow},
		{"now", relNow},
	}
	for _, c := range cases {
		got, err := ParseRelativeTo(c.in, relNow)
		if err != nil {
			t.Fatalf("ParseRelativeTo(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseRelativeTo(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "soon", "3 fortnights ago", "ago 3 days"} {
		if _, err := ParseRelativeTo(bad, relNow); err == nil {
			t.Fatalf("ParseRelativeTo(%q) should fail", bad)
		}
	}
}

func TestRelative_RoundTrip(t *testing.T) {
	phrase := RelativeTo(relNow.Add(-3*24*time.Hour), relNow)
	back, err := ParseRelativeTo(phrase, relNow)
	if err != nil {
		t.Fatalf("parse %q: %v", phrase, err)
	}
	if !back.Equal(relNow.Add(-3 * 24 * time.Hour)) {
		t.Fatalf("round trip %q = %v", phrase, back)
	}
}
