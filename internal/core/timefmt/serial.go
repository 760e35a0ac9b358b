package timefmt

import (
	"math"
	"time"
)

// serialEpoch anchors spreadsheet serial dates. Day 1 is nominally
// 1900-01-01, but the Lotus 1-2-3 leap-year defect (1900 treated as a
// leap year) shifts the working epoch two days earlier. The offset is
// kept as-is for compatibility with spreadsheet output
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialMax is the serial for 9999-12-31
const serialMax = 2958465

// fromSerial converts a spreadsheet day serial to an instant.
// The fractional part carries the time of day
func fromSerial(serial float64) time.Time {
	days, frac := math.Modf(serial)
	t := serialEpoch.AddDate(0, 0, int(days))
	if frac > 0 {
		t = t.Add(time.Duration(frac * float64(24*time.Hour)))
	}
	return t
}

// toSerial converts an instant to a spreadsheet day serial
func toSerial(t time.Time) float64 {
	d := t.UTC().Sub(serialEpoch)
	return d.Hours() / 24
}
