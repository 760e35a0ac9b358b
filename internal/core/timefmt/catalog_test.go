package timefmt

import (
	"strings"
	"testing"
	"time"
)

func mustBuiltin(t *testing.T) *Registry {
	t.Helper()
	g, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	return g
}

func TestBuiltin_CatalogShape(t *testing.T) {
	g := mustBuiltin(t)

	if g.Len() < 20 {
		t.Fatalf("catalog has %d descriptors, expected at least 20", g.Len())
	}
	for _, d := range g.All() {
		if d.DisplayName == "" || d.Example == "" || d.Description == "" {
			t.Errorf("%s: missing display metadata", d.ID)
		}
		if rule, ok := d.Matches(d.Example); !ok {
			t.Errorf("%s: own example %q does not match any rule", d.ID, d.Example)
		} else if rule.Name() == "" {
			t.Errorf("%s: matched rule has no name", d.ID)
		}
	}

	// aliases resolve to their owner
	for alias, want := range map[string]string{
		"unix":     "unix_seconds",
		"epoch_ms": "unix_milliseconds",
		"iso":      "iso8601_full",
		"rfc3339":  "iso8601_datetime",
		"mdy":      "us_date",
		"dmy":      "eu_date",
		"wareki":   "japanese_era",
		"minguo":   "roc_year",
		"thai":     "buddhist_year",
		"relative": "relative_time",
	} {
		d, ok := g.Resolve(alias)
		if !ok || d.ID != want {
			t.Errorf("Resolve(%q) = %v, want %s", alias, d, want)
		}
	}
}

func TestBuiltin_RoundTrips(t *testing.T) {
	g := mustBuiltin(t)
	ref := time.Date(2024, time.January, 15, 10, 30, 45, 0, time.UTC)

	cases := []struct {
		id   string
		want string
	}{
		{"unix_seconds", "1705314645"},
		{"unix_milliseconds", "1705314645000"},
		{"iso8601_full", "2024-01-15T10:30:45.000Z"},
		{"iso8601_datetime", "2024-01-15T10:30:45Z"},
		{"iso8601_date", "2024-01-15"},
		{"iso8601_compact", "20240115"},
		{"iso8601_week", "2024-W03-1"},
		{"rfc2822", "Mon, 15 Jan 2024 10:30:45 +0000"},
		{"http_date", "Mon, 15 Jan 2024 10:30:45 GMT"},
		{"sql_datetime", "2024-01-15 10:30:45"},
		{"us_date", "01/15/2024"},
		{"eu_date", "15/01/2024"},
		{"locale_long", "January 15, 2024"},
		{"month_year", "January 2024"},
		{"time_only", "10:30:45"},
		{"quarter", "Q1 2024"},
		{"japanese_era", "令和6年1月15日"},
		{"buddhist_year", "พ.ศ. 2567"},
		{"roc_year", "民國113年1月15日"},
	}
	for _, c := range cases {
		d, ok := g.Resolve(c.id)
		if !ok {
			t.Fatalf("%s: not registered", c.id)
		}
		got, err := d.Format(ref, nil, "")
		if err != nil {
			t.Fatalf("%s: Format: %v", c.id, err)
		}
		if got != c.want {
			t.Fatalf("%s: Format = %q, want %q", c.id, got, c.want)
		}
		if d.Parse == nil {
			continue
		}
		back, err := d.Parse(got)
		if err != nil {
			t.Fatalf("%s: Parse(%q): %v", c.id, got, err)
		}
		// lossy formats only need to preserve their own precision
		rendered, err := d.Format(back, nil, "")
		if err != nil || rendered != got {
			t.Fatalf("%s: re-render = %q (%v), want %q", c.id, rendered, err, got)
		}
	}
}

func TestBuiltin_UnixSecondsValidation(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("unix_seconds")

	if !d.Validate("1705315845") {
		t.Fatalf("in-window epoch should validate")
	}
	if d.Validate("9999999999") {
		t.Fatalf("epoch beyond the 32-bit window should fail validation")
	}

	// the parser still accepts an implausible value
	got, err := d.Parse("9999999999")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Year() != 2286 {
		t.Fatalf("Parse(9999999999).Year = %d", got.Year())
	}
}

func TestBuiltin_MillisCanonicalLength(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("unix_milliseconds")

	if !d.Validate("1705315845123") {
		t.Fatalf("13 digits should validate")
	}
	if d.Validate("170531584512") {
		t.Fatalf("12 digits matches the shape but is not canonical")
	}
}

func TestBuiltin_TimeOnlyValidation(t *testing.T) {
	if !validClockTime("23:59:59") || !validClockTime("0:00") {
		t.Fatalf("valid wall-clock times rejected")
	}
	for _, bad := range []string{"24:00:00", "12:60:00", "12:00:60", "99:99"} {
		if validClockTime(bad) {
			t.Fatalf("validClockTime(%q) should fail", bad)
		}
	}
}

func TestBuiltin_ExcelSerial(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("excel_serial")

	got, err := d.Parse("45306")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Parse(45306) = %v, want %v", got, want)
	}

	// fractional part is time of day
	noon, err := d.Parse("45306.5")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if noon.Hour() != 12 {
		t.Fatalf("Parse(45306.5).Hour = %d, want 12", noon.Hour())
	}

	out, err := d.Format(want, nil, "")
	if err != nil || out != "45306" {
		t.Fatalf("Format = %q (%v), want 45306", out, err)
	}

	if d.Validate("0") || d.Validate("2958466") {
		t.Fatalf("serials outside [1, 2958465] should fail validation")
	}
	if !d.Validate("1") || !d.Validate("2958465") {
		t.Fatalf("boundary serials should validate")
	}
}

func TestBuiltin_ISOWeekParse(t *testing.T) {
	got, err := parseISOWeek("2024-W03-1")
	if err != nil {
		t.Fatalf("parseISOWeek: %v", err)
	}
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("2024-W03-1 = %v, want %v", got, want)
	}

	// weekday defaults to Monday
	def, err := parseISOWeek("2024-W03")
	if err != nil || !def.Equal(want) {
		t.Fatalf("2024-W03 = %v (%v), want %v", def, err, want)
	}

	// week 1 can start in the previous calendar year
	w1, err := parseISOWeek("2021-W01-1")
	if err != nil {
		t.Fatalf("parseISOWeek: %v", err)
	}
	if w1.Year() != 2021 || w1.Month() != time.January || w1.Day() != 4 {
		t.Fatalf("2021-W01-1 = %v, want 2021-01-04", w1)
	}
}

func TestBuiltin_SyslogAssumesCurrentYear(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("syslog_timestamp")

	got, err := d.Parse("Jan 15 10:30:45")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Year() != time.Now().UTC().Year() {
		t.Fatalf("syslog year = %d, want current", got.Year())
	}
	if got.Month() != time.January || got.Day() != 15 || got.Hour() != 10 {
		t.Fatalf("syslog fields wrong: %v", got)
	}
}

func TestBuiltin_SlashDateShapesShareARule(t *testing.T) {
	g := mustBuiltin(t)
	us, _ := g.Resolve("us_date")
	eu, _ := g.Resolve("eu_date")

	for _, in := range []string{"01/15/2024", "15/01/2024"} {
		if _, ok := us.Matches(in); !ok {
			t.Fatalf("us_date should match %q structurally", in)
		}
		if _, ok := eu.Matches(in); !ok {
			t.Fatalf("eu_date should match %q structurally", in)
		}
	}

	// validators disagree where the day exceeds 12
	if us.Validate("15/01/2024") {
		t.Fatalf("us_date validator should reject a month of 15")
	}
	if !eu.Validate("15/01/2024") {
		t.Fatalf("eu_date validator should accept day-first order")
	}
}

func TestBuiltin_LocaleLongUsesTranslator(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("locale_long")
	ref := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	en, err := d.Format(ref, nil, "en")
	if err != nil || en != "January 15, 2024" {
		t.Fatalf("en render = %q (%v)", en, err)
	}

	fr, err := d.Format(ref, nil, "fr")
	if err != nil {
		t.Fatalf("fr render: %v", err)
	}
	if !strings.Contains(fr, "janvier") {
		t.Fatalf("fr render = %q, want janvier", fr)
	}
}

func TestBuiltin_QuarterBoundaries(t *testing.T) {
	g := mustBuiltin(t)
	d, _ := g.Resolve("quarter")

	cases := map[string]time.Month{
		"Q1 2024": time.January,
		"Q2 2024": time.April,
		"Q3 2024": time.July,
		"Q4 2024": time.October,
	}
	for in, month := range cases {
		got, err := d.Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got.Month() != month || got.Day() != 1 {
			t.Fatalf("Parse(%q) = %v", in, got)
		}
		out, err := d.Format(got, nil, "")
		if err != nil || out != in {
			t.Fatalf("Format round trip = %q (%v), want %q", out, err, in)
		}
	}
}
