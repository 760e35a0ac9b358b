package timefmt

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	perr "tsconv/internal/platform/errors"
)

// era is a named period with an inclusive start date
type era struct {
	name  string
	start time.Time
}

// japaneseEras, newest first. The set is intentionally small and fixed;
// the gannen chain stops at Meiji
var japaneseEras = []era{
	{"令和", time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC)},
	{"平成", time.Date(1989, time.January, 8, 0, 0, 0, 0, time.UTC)},
	{"昭和", time.Date(1926, time.December, 25, 0, 0, 0, 0, time.UTC)},
	{"大正", time.Date(1912, time.July, 30, 0, 0, 0, 0, time.UTC)},
	{"明治", time.Date(1868, time.January, 25, 0, 0, 0, 0, time.UTC)},
}

// rocStart is the Minguo calendar epoch (1912-01-01); dates before it
// fall back to a generic localized rendering
var rocStart = time.Date(1912, time.January, 1, 0, 0, 0, 0, time.UTC)

// buddhistOffset converts a Gregorian year to a Thai Buddhist year
const buddhistOffset = 543

// formatJapaneseEra renders t as an era-relative date, e.g. 令和6年1月15日.
// Era year 1 is rendered 元. Dates before the Meiji epoch fall back to
// the Japanese CLDR long date instead of producing a negative era year
func formatJapaneseEra(t time.Time, loc *time.Location, _ string) (string, error) {
	if loc != nil {
		t = t.In(loc)
	} else {
		t = t.UTC()
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, e := range japaneseEras {
		if day.Before(e.start) {
			continue
		}
		y := t.Year() - e.start.Year() + 1
		label := strconv.Itoa(y)
		if y == 1 {
			label = "元"
		}
		return fmt.Sprintf("%s%s年%d月%d日", e.name, label, int(t.Month()), t.Day()), nil
	}
	return TranslatorFor("ja").FmtDateLong(t), nil
}

var japaneseEraRe = regexp.MustCompile(`^(令和|平成|昭和|大正|明治)(元|\d{1,2})年(\d{1,2})月(\d{1,2})日$`)

// parseJapaneseEra converts an era-relative date back to an instant
func parseJapaneseEra(s string) (time.Time, error) {
	m := japaneseEraRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, perr.InvalidArgf("not a japanese era date: %q", s)
	}
	var start time.Time
	for _, e := range japaneseEras {
		if e.name == m[1] {
			start = e.start
			break
		}
	}
	y := 1
	if m[2] != "元" {
		y, _ = strconv.Atoi(m[2])
	}
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	t := time.Date(start.Year()+y-1, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Before(start) {
		return time.Time{}, perr.InvalidArgf("%s precedes era %s", s, m[1])
	}
	return t, nil
}

// formatROC renders t as a Minguo date, e.g. 民國113年1月15日.
// Pre-1912 dates fall back to the Chinese CLDR long date
func formatROC(t time.Time, loc *time.Location, _ string) (string, error) {
	if loc != nil {
		t = t.In(loc)
	} else {
		t = t.UTC()
	}
	if t.Year() < rocStart.Year() {
		return TranslatorFor("zh").FmtDateLong(t), nil
	}
	return fmt.Sprintf("民國%d年%d月%d日", t.Year()-rocStart.Year()+1, int(t.Month()), t.Day()), nil
}

var rocRe = regexp.MustCompile(`^民國(\d{1,3})年(\d{1,2})月(\d{1,2})日$`)

// parseROC converts a Minguo date back to an instant
func parseROC(s string) (time.Time, error) {
	m := rocRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, perr.InvalidArgf("not a minguo date: %q", s)
	}
	y, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(rocStart.Year()+y-1, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// formatBuddhistYear renders the Thai Buddhist era year, e.g. พ.ศ. 2567
func formatBuddhistYear(t time.Time, loc *time.Location, _ string) (string, error) {
	if loc != nil {
		t = t.In(loc)
	} else {
		t = t.UTC()
	}
	return fmt.Sprintf("พ.ศ. %d", t.Year()+buddhistOffset), nil
}

var buddhistRe = regexp.MustCompile(`^พ\.ศ\. ?(\d{4})$`)

// parseBuddhistYear converts a Buddhist era year to January 1st of the
// corresponding Gregorian year
func parseBuddhistYear(s string) (time.Time, error) {
	m := buddhistRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, perr.InvalidArgf("not a buddhist year: %q", s)
	}
	y, _ := strconv.Atoi(m[1])
	return time.Date(y-buddhistOffset, time.January, 1, 0, 0, 0, 0, time.UTC), nil
}
