package timefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	perr "tsconv/internal/platform/errors"
)

const (
	longMonths  = `(January|February|March|April|May|June|July|August|September|October|November|December)`
	shortMonths = `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
	shortDays   = `(Mon|Tue|Wed|Thu|Fri|Sat|Sun)`
)

// layoutFormatter renders with a stdlib layout in the requested location
func layoutFormatter(layout string) FormatFunc {
	return func(t time.Time, loc *time.Location, _ string) (string, error) {
		if loc != nil {
			return t.In(loc).Format(layout), nil
		}
		return t.UTC().Format(layout), nil
	}
}

// utcFormatter renders with a stdlib layout, always in UTC
func utcFormatter(layout string) FormatFunc {
	return func(t time.Time, _ *time.Location, _ string) (string, error) {
		return t.UTC().Format(layout), nil
	}
}

// layoutParser tries each layout in order
func layoutParser(layouts ...string) ParseFunc {
	return func(s string) (time.Time, error) {
		for _, l := range layouts {
			if t, err := time.Parse(l, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, perr.InvalidArgf("no layout matched %q", s)
	}
}

// layoutValidator reports whether s parses under any layout
func layoutValidator(layouts ...string) ValidateFunc {
	p := layoutParser(layouts...)
	return func(s string) bool {
		_, err := p(s)
		return err == nil
	}
}

// Builtin constructs the full descriptor catalog.
// The registry is immutable once returned; build it at process start and
// inject it wherever detection or conversion happens
func Builtin() (*Registry, error) {
	g := NewRegistry()
	for _, d := range builtinDescriptors() {
		if err := g.Register(d); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func builtinDescriptors() []*FormatDescriptor {
	return []*FormatDescriptor{
		{
			ID:             "unix_seconds",
			DisplayName:    "Unix Timestamp (seconds)",
			Template:       "##########",
			Example:        "1705315845",
			ExampleValue:   "2024-01-15T10:50:45Z",
			Description:    "Seconds since the Unix epoch (1970-01-01T00:00:00Z)",
			Category:       CategoryStandard,
			Aliases:        []string{"unix", "epoch", "unix_timestamp", "timestamp"},
			Rules:          []Rule{MustRule("unix-seconds-digits", `^\d{9,10}$`)},
			BaseConfidence: 0.9,
			Numeric:        true,
			Format: func(t time.Time, _ *time.Location, _ string) (string, error) {
				return strconv.FormatInt(t.Unix(), 10), nil
			},
			Parse: func(s string) (time.Time, error) {
				v, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return time.Time{}, perr.InvalidArgf("not an integer: %q", s)
				}
				return time.Unix(v, 0).UTC(), nil
			},
			// outside the 32-bit signed window the value is suspicious,
			// though the parser still accepts it
			Validate: func(s string) bool {
				v, err := strconv.ParseInt(s, 10, 64)
				return err == nil && v >= 0 && v <= math.MaxInt32
			},
			Meta: Metadata{UseCase: "APIs, databases, logs", Precision: PrecisionSecond},
		},
		{
			ID:             "unix_milliseconds",
			DisplayName:    "Unix Timestamp (milliseconds)",
			Template:       "#############",
			Example:        "1705315845123",
			ExampleValue:   "2024-01-15T10:50:45.123Z",
			Description:    "Milliseconds since the Unix epoch; 13 digits is canonical",
			Category:       CategoryStandard,
			Aliases:        []string{"unix_ms", "epoch_ms", "millis"},
			Rules:          []Rule{MustRule("unix-millis-digits", `^\d{12,13}$`)},
			BaseConfidence: 0.85,
			Numeric:        true,
			Format: func(t time.Time, _ *time.Location, _ string) (string, error) {
				return strconv.FormatInt(t.UnixMilli(), 10), nil
			},
			Parse: func(s string) (time.Time, error) {
				v, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return time.Time{}, perr.InvalidArgf("not an integer: %q", s)
				}
				return time.UnixMilli(v).UTC(), nil
			},
			Validate: func(s string) bool { return len(s) == 13 },
			Meta:     Metadata{UseCase: "JavaScript, Java, telemetry", Precision: PrecisionSecond},
		},
		{
			ID:           "iso8601_full",
			DisplayName:  "ISO 8601 (full precision)",
			Template:     "YYYY-MM-DDTHH:mm:ss.sssZ",
			Example:      "2024-01-15T10:30:45.123Z",
			ExampleValue: "2024-01-15T10:30:45.123Z",
			Description:  "ISO 8601 with fractional seconds and zone designator",
			Category:     CategoryISO,
			Aliases:      []string{"iso", "iso8601", "iso_full"},
			Rules: []Rule{
				MustRule("iso-fractional", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,9}(Z|[+-]\d{2}:\d{2})$`),
			},
			BaseConfidence: 0.95,
			Format:         layoutFormatter("2006-01-02T15:04:05.000Z07:00"),
			Parse:          layoutParser(time.RFC3339Nano),
			Validate:       layoutValidator(time.RFC3339Nano),
			Meta:           Metadata{UseCase: "interchange, APIs", Precision: PrecisionSecond, TimezoneAware: true},
		},
		{
			ID:           "iso8601_datetime",
			DisplayName:  "ISO 8601 (seconds)",
			Template:     "YYYY-MM-DDTHH:mm:ssZ",
			Example:      "2024-01-15T10:30:45Z",
			ExampleValue: "2024-01-15T10:30:45Z",
			Description:  "ISO 8601 date-time without fractional seconds",
			Category:     CategoryISO,
			Aliases:      []string{"rfc3339", "iso_datetime"},
			Rules: []Rule{
				MustRule("iso-datetime", `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:?\d{2})?$`),
			},
			BaseConfidence: 0.9,
			Format:         layoutFormatter("2006-01-02T15:04:05Z07:00"),
			Parse:          layoutParser(time.RFC3339, "2006-01-02T15:04:05"),
			Validate:       layoutValidator(time.RFC3339, "2006-01-02T15:04:05"),
			Meta:           Metadata{UseCase: "interchange, APIs", Precision: PrecisionSecond, TimezoneAware: true},
		},
		{
			ID:             "iso8601_date",
			DisplayName:    "ISO 8601 (date only)",
			Template:       "YYYY-MM-DD",
			Example:        "2024-01-15",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Calendar date in ISO 8601 order",
			Category:       CategoryISO,
			Aliases:        []string{"date", "iso_date", "ymd"},
			Rules:          []Rule{MustRule("iso-date", `^\d{4}-\d{2}-\d{2}$`)},
			BaseConfidence: 0.85,
			Format:         layoutFormatter("2006-01-02"),
			Parse:          layoutParser("2006-01-02"),
			Validate:       layoutValidator("2006-01-02"),
			Meta:           Metadata{UseCase: "dates without time", Precision: PrecisionDay},
		},
		{
			ID:             "iso8601_week",
			DisplayName:    "ISO 8601 week date",
			Template:       "YYYY-Www-D",
			Example:        "2024-W03-1",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "ISO week-numbering year, week, and optional weekday",
			Category:       CategoryISO,
			Aliases:        []string{"week_date", "iso_week"},
			Rules:          []Rule{MustRule("iso-week", `^\d{4}-W(0[1-9]|[1-4]\d|5[0-3])(-[1-7])?$`)},
			BaseConfidence: 0.8,
			Format: func(t time.Time, loc *time.Location, _ string) (string, error) {
				if loc != nil {
					t = t.In(loc)
				} else {
					t = t.UTC()
				}
				y, w := t.ISOWeek()
				wd := int(t.Weekday())
				if wd == 0 {
					wd = 7
				}
				return fmt.Sprintf("%04d-W%02d-%d", y, w, wd), nil
			},
			Parse: parseISOWeek,
			Meta:  Metadata{UseCase: "planning, logistics", Precision: PrecisionDay},
		},
		{
			ID:             "iso8601_compact",
			DisplayName:    "ISO 8601 basic date",
			Template:       "YYYYMMDD",
			Example:        "20240115",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Separator-free calendar date",
			Category:       CategoryISO,
			Aliases:        []string{"basic_date", "yyyymmdd", "compact_date"},
			Rules:          []Rule{MustRule("eight-digit-number", `^\d{8}$`)},
			BaseConfidence: 0.7,
			Numeric:        true,
			Format:         layoutFormatter("20060102"),
			Parse:          layoutParser("20060102"),
			Validate:       layoutValidator("20060102"),
			Meta:           Metadata{UseCase: "filenames, batch ids", Precision: PrecisionDay},
		},
		{
			ID:           "rfc2822",
			DisplayName:  "RFC 2822",
			Template:     "ddd, DD MMM YYYY HH:mm:ss ZZ",
			Example:      "Mon, 15 Jan 2024 10:30:45 +0000",
			ExampleValue: "2024-01-15T10:30:45Z",
			Description:  "Internet message date as used in email headers",
			Category:     CategoryStandard,
			Aliases:      []string{"email_date", "rfc822"},
			Rules: []Rule{
				MustRule("rfc2822-datetime",
					`^`+shortDays+`, \d{1,2} `+shortMonths+` \d{4} \d{2}:\d{2}(:\d{2})? [+-]\d{4}$`),
			},
			BaseConfidence: 0.85,
			Format:         layoutFormatter("Mon, 02 Jan 2006 15:04:05 -0700"),
			Parse:          layoutParser("Mon, 2 Jan 2006 15:04:05 -0700", "Mon, 2 Jan 2006 15:04 -0700"),
			Validate:       layoutValidator("Mon, 2 Jan 2006 15:04:05 -0700", "Mon, 2 Jan 2006 15:04 -0700"),
			Meta:           Metadata{UseCase: "email, feeds", Precision: PrecisionSecond, TimezoneAware: true},
		},
		{
			ID:           "http_date",
			DisplayName:  "HTTP date (RFC 7231)",
			Template:     "ddd, DD MMM YYYY HH:mm:ss GMT",
			Example:      "Mon, 15 Jan 2024 10:30:45 GMT",
			ExampleValue: "2024-01-15T10:30:45Z",
			Description:  "IMF-fixdate used in HTTP headers; always GMT",
			Category:     CategoryTechnical,
			Aliases:      []string{"http", "rfc7231", "imf_fixdate"},
			Rules: []Rule{
				MustRule("http-date",
					`^`+shortDays+`, \d{2} `+shortMonths+` \d{4} \d{2}:\d{2}:\d{2} GMT$`),
			},
			BaseConfidence: 0.8,
			Format:         utcFormatter("Mon, 02 Jan 2006 15:04:05 GMT"),
			Parse:          layoutParser("Mon, 02 Jan 2006 15:04:05 GMT"),
			Validate:       layoutValidator("Mon, 02 Jan 2006 15:04:05 GMT"),
			Meta:           Metadata{UseCase: "HTTP caching headers", Precision: PrecisionSecond},
		},
		{
			ID:             "sql_datetime",
			DisplayName:    "SQL datetime",
			Template:       "YYYY-MM-DD HH:mm:ss",
			Example:        "2024-01-15 10:30:45",
			ExampleValue:   "2024-01-15T10:30:45Z",
			Description:    "Space-separated datetime as stored by most SQL databases",
			Category:       CategoryTechnical,
			Aliases:        []string{"sql", "mysql", "db_datetime"},
			Rules:          []Rule{MustRule("sql-datetime", `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)},
			BaseConfidence: 0.85,
			Format:         layoutFormatter("2006-01-02 15:04:05"),
			Parse:          layoutParser("2006-01-02 15:04:05"),
			Validate:       layoutValidator("2006-01-02 15:04:05"),
			Meta:           Metadata{UseCase: "databases", Precision: PrecisionSecond},
		},
		{
			ID:           "syslog_timestamp",
			DisplayName:  "Syslog timestamp",
			Template:     "MMM DD HH:mm:ss",
			Example:      "Jan 15 10:30:45",
			ExampleValue: "10:30:45 on January 15th of the current year",
			Description:  "Classic BSD syslog timestamp; the year is assumed current",
			Category:     CategoryTechnical,
			Aliases:      []string{"syslog"},
			Rules: []Rule{
				MustRule("syslog-timestamp", `^`+shortMonths+`\s{1,2}\d{1,2} \d{2}:\d{2}:\d{2}$`),
			},
			BaseConfidence: 0.7,
			Format:         layoutFormatter("Jan _2 15:04:05"),
			Parse: func(s string) (time.Time, error) {
				t, err := time.Parse("Jan _2 15:04:05", s)
				if err != nil {
					return time.Time{}, perr.InvalidArgf("not a syslog timestamp: %q", s)
				}
				// the wire format carries no year
				now := time.Now().UTC()
				return time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
			},
			Meta: Metadata{UseCase: "log files", Precision: PrecisionSecond},
		},
		{
			ID:             "us_date",
			DisplayName:    "US date (MM/DD/YYYY)",
			Template:       "MM/DD/YYYY",
			Example:        "01/15/2024",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Month-first slash date common in the United States",
			Category:       CategoryLocale,
			Aliases:        []string{"us", "american_date", "mdy"},
			Rules:          []Rule{MustRule("slash-date", `^\d{1,2}/\d{1,2}/\d{4}$`)},
			BaseConfidence: 0.6,
			Format:         layoutFormatter("01/02/2006"),
			Parse:          layoutParser("1/2/2006"),
			Validate:       layoutValidator("1/2/2006"),
			Meta:           Metadata{Region: "US", Language: "en", UseCase: "forms, documents", Precision: PrecisionDay, LocaleDependent: true},
		},
		{
			ID:             "eu_date",
			DisplayName:    "European date (DD/MM/YYYY)",
			Template:       "DD/MM/YYYY",
			Example:        "15/01/2024",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Day-first slash date common in Europe",
			Category:       CategoryLocale,
			Aliases:        []string{"eu", "european_date", "dmy"},
			Rules:          []Rule{MustRule("slash-date", `^\d{1,2}/\d{1,2}/\d{4}$`)},
			BaseConfidence: 0.6,
			Format:         layoutFormatter("02/01/2006"),
			Parse:          layoutParser("2/1/2006"),
			Validate:       layoutValidator("2/1/2006"),
			Meta:           Metadata{Region: "EU", UseCase: "forms, documents", Precision: PrecisionDay, LocaleDependent: true},
		},
		{
			ID:             "locale_long",
			DisplayName:    "Long date",
			Template:       "MMMM D, YYYY",
			Example:        "January 15, 2024",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Written-out date rendered per CLDR locale data",
			Category:       CategoryLocale,
			Aliases:        []string{"long_date", "human_date"},
			Rules:          []Rule{MustRule("long-month-date", `^`+longMonths+` \d{1,2}, \d{4}$`)},
			BaseConfidence: 0.75,
			Format: func(t time.Time, loc *time.Location, lang string) (string, error) {
				if loc != nil {
					t = t.In(loc)
				} else {
					t = t.UTC()
				}
				return TranslatorFor(lang).FmtDateLong(t), nil
			},
			Parse:    layoutParser("January 2, 2006"),
			Validate: layoutValidator("January 2, 2006"),
			Meta:     Metadata{UseCase: "display", Precision: PrecisionDay, LocaleDependent: true},
		},
		{
			ID:             "month_year",
			DisplayName:    "Month and year",
			Template:       "MMMM YYYY",
			Example:        "January 2024",
			ExampleValue:   "2024-01-01T00:00:00Z",
			Description:    "Month-granularity date",
			Category:       CategoryStandard,
			Aliases:        []string{"month"},
			Rules:          []Rule{MustRule("long-month-year", `^`+longMonths+` \d{4}$`)},
			BaseConfidence: 0.65,
			Format:         layoutFormatter("January 2006"),
			Parse:          layoutParser("January 2006"),
			Validate:       layoutValidator("January 2006"),
			Meta:           Metadata{UseCase: "reports", Precision: PrecisionMonth},
		},
		{
			ID:             "time_only",
			DisplayName:    "Time of day",
			Template:       "HH:mm:ss",
			Example:        "10:30:45",
			ExampleValue:   "10:30:45 on an unspecified date",
			Description:    "Wall-clock time without a date",
			Category:       CategoryStandard,
			Aliases:        []string{"time", "clock"},
			Rules:          []Rule{MustRule("clock-time", `^\d{1,2}:\d{2}(:\d{2})?$`)},
			BaseConfidence: 0.7,
			Format:         layoutFormatter("15:04:05"),
			Parse:          layoutParser("15:04:05", "15:04"),
			Validate:       validClockTime,
			Meta:           Metadata{UseCase: "schedules", Precision: PrecisionSecond},
		},
		{
			ID:             "excel_serial",
			DisplayName:    "Spreadsheet serial date",
			Template:       "#####",
			Example:        "45306",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Day count since the 1899-12-30 spreadsheet epoch (Lotus leap-bug offset preserved)",
			Category:       CategoryBusiness,
			Aliases:        []string{"excel", "serial", "spreadsheet"},
			Rules:          []Rule{MustRule("day-serial", `^\d{1,6}(\.\d+)?$`)},
			BaseConfidence: 0.55,
			Numeric:        true,
			Format: func(t time.Time, _ *time.Location, _ string) (string, error) {
				return formatSerial(toSerial(t)), nil
			},
			Parse: func(s string) (time.Time, error) {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return time.Time{}, perr.InvalidArgf("not a serial: %q", s)
				}
				return fromSerial(v), nil
			},
			Validate: func(s string) bool {
				v, err := strconv.ParseFloat(s, 64)
				return err == nil && v >= 1 && v <= serialMax
			},
			Meta: Metadata{UseCase: "spreadsheets, finance exports", Precision: PrecisionDay},
		},
		{
			ID:             "quarter",
			DisplayName:    "Calendar quarter",
			Template:       "Qn YYYY",
			Example:        "Q1 2024",
			ExampleValue:   "2024-01-01T00:00:00Z",
			Description:    "Quarter of a calendar year",
			Category:       CategoryBusiness,
			Aliases:        []string{"fiscal_quarter", "q"},
			Rules:          []Rule{MustRule("quarter-year", `^Q[1-4] \d{4}$`)},
			BaseConfidence: 0.8,
			Format: func(t time.Time, loc *time.Location, _ string) (string, error) {
				if loc != nil {
					t = t.In(loc)
				} else {
					t = t.UTC()
				}
				return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year()), nil
			},
			Parse: func(s string) (time.Time, error) {
				q := int(s[1] - '0')
				y, err := strconv.Atoi(s[3:])
				if err != nil {
					return time.Time{}, perr.InvalidArgf("not a quarter: %q", s)
				}
				return time.Date(y, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC), nil
			},
			Meta: Metadata{UseCase: "reporting", Precision: PrecisionMonth},
		},
		{
			ID:           "japanese_era",
			DisplayName:  "Japanese era date",
			Template:     "GGyy年M月d日",
			Example:      "令和6年1月15日",
			ExampleValue: "2024-01-15T00:00:00Z",
			Description:  "Era-relative date (gengo); pre-Meiji dates fall back to a localized rendering",
			Category:     CategoryCultural,
			Aliases:      []string{"wareki", "japanese", "gengo"},
			Rules: []Rule{
				MustRule("japanese-era-date", `^(令和|平成|昭和|大正|明治)(元|\d{1,2})年\d{1,2}月\d{1,2}日$`),
			},
			BaseConfidence: 0.85,
			Format:         formatJapaneseEra,
			Parse:          parseJapaneseEra,
			Meta:           Metadata{Region: "JP", Language: "ja", UseCase: "official documents", Precision: PrecisionDay, LocaleDependent: true},
		},
		{
			ID:             "buddhist_year",
			DisplayName:    "Thai Buddhist year",
			Template:       "พ.ศ. yyyy",
			Example:        "พ.ศ. 2567",
			ExampleValue:   "2024-01-01T00:00:00Z",
			Description:    "Buddhist era year (Gregorian + 543)",
			Category:       CategoryCultural,
			Aliases:        []string{"thai", "buddhist", "be"},
			Rules:          []Rule{MustRule("buddhist-year", `^พ\.ศ\. ?\d{4}$`)},
			BaseConfidence: 0.75,
			Format:         formatBuddhistYear,
			Parse:          parseBuddhistYear,
			Meta:           Metadata{Region: "TH", Language: "th", UseCase: "official documents", Precision: PrecisionYear, LocaleDependent: true},
		},
		{
			ID:             "roc_year",
			DisplayName:    "Minguo (ROC) date",
			Template:       "民國yyy年M月d日",
			Example:        "民國113年1月15日",
			ExampleValue:   "2024-01-15T00:00:00Z",
			Description:    "Republic of China calendar; pre-1912 dates fall back to a localized rendering",
			Category:       CategoryCultural,
			Aliases:        []string{"minguo", "taiwan", "roc"},
			Rules:          []Rule{MustRule("minguo-date", `^民國\d{1,3}年\d{1,2}月\d{1,2}日$`)},
			BaseConfidence: 0.75,
			Format:         formatROC,
			Parse:          parseROC,
			Meta:           Metadata{Region: "TW", Language: "zh", UseCase: "official documents", Precision: PrecisionDay, LocaleDependent: true},
		},
		{
			ID:           "relative_time",
			DisplayName:  "Relative time",
			Template:     "n units ago | in n units | just now",
			Example:      "3 days ago",
			ExampleValue: "an instant 3 days before now",
			Description:  "Humanized offset from the current moment",
			Category:     CategoryCustom,
			Aliases:      []string{"relative", "ago", "humanized"},
			Rules: []Rule{
				MustRule("relative-past", `^\d+ (second|minute|hour|day|week|month|year)s? ago$`),
				MustRule("relative-future", `^in \d+ (second|minute|hour|day|week|month|year)s?$`),
				MustRule("relative-now", `^(just now|now)$`),
			},
			BaseConfidence: 0.8,
			Format: func(t time.Time, _ *time.Location, _ string) (string, error) {
				return RelativeTo(t, time.Now().UTC()), nil
			},
			Parse: func(s string) (time.Time, error) {
				return ParseRelativeTo(s, time.Now().UTC())
			},
			Meta: Metadata{UseCase: "activity feeds, UIs", Precision: PrecisionSecond},
		},
	}
}

// validClockTime checks hour/minute/second ranges on HH:mm[:ss] text
func validClockTime(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}
	limits := []int{24, 60, 60}
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v >= limits[i] {
			return false
		}
	}
	return true
}

// formatSerial renders whole-day serials without a fraction
func formatSerial(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// parseISOWeek resolves YYYY-Www[-D] to the matching calendar day.
// The weekday defaults to Monday
func parseISOWeek(s string) (time.Time, error) {
	m := isoWeekRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, perr.InvalidArgf("not an iso week date: %q", s)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	wd := 1
	if m[3] != "" {
		wd, _ = strconv.Atoi(strings.TrimPrefix(m[3], "-"))
	}
	// week 1 contains January 4th
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	off := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -off)
	return week1Monday.AddDate(0, 0, (week-1)*7+(wd-1)), nil
}

var isoWeekRe = regexp.MustCompile(`^(\d{4})-W(\d{2})(-[1-7])?$`)
