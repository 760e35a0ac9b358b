// Package convert turns text into instants and instants back into text
// using the format catalog. All failures are encoded in outcome values;
// nothing escapes the engine as a panic or error
package convert

import (
	"fmt"
	"strings"
	"time"

	"tsconv/internal/core/detect"
	"tsconv/internal/core/timefmt"
)

// ParseOutcome is the result of converting text to an instant
type ParseOutcome struct {
	Success      bool
	Instant      time.Time
	Format       string
	DisplayName  string
	Confidence   float64
	Alternatives []detect.Alternative
	Warnings     []string
	Error        string
	Elapsed      time.Duration
}

// FormatOutcome is the result of rendering an instant as text
type FormatOutcome struct {
	Success     bool
	Text        string
	Format      string
	DisplayName string
	Error       string
	Elapsed     time.Duration
}

// Engine binds a registry and a detector into the conversion surface
type Engine struct {
	reg *timefmt.Registry
	det *detect.Detector
}

// New constructs an Engine over an already-built registry
func New(reg *timefmt.Registry, det *detect.Detector) *Engine {
	return &Engine{reg: reg, det: det}
}

// Registry exposes the catalog for listing and resolution
func (e *Engine) Registry() *timefmt.Registry { return e.reg }

// Detect runs format detection without parsing
func (e *Engine) Detect(input string) detect.Result {
	return e.det.Detect(input)
}

// Parse detects the input's format and converts it to an instant.
// Detection confidence is carried through unchanged
func (e *Engine) Parse(input string) ParseOutcome {
	return e.ParseWith(input, e.det.Detect(input))
}

// ParseWith parses using a previously computed detection result
func (e *Engine) ParseWith(input string, res detect.Result) ParseOutcome {
	start := time.Now()
	in := strings.TrimSpace(input)

	out := ParseOutcome{
		Format:       res.Detected,
		Confidence:   res.Confidence,
		Alternatives: res.Alternatives,
		Warnings:     append(append([]string(nil), res.Warnings...), res.Suggestions...),
	}
	if res.Detected == detect.UnknownFormat {
		out.Error = "no known format matched the input"
		out.Elapsed = time.Since(start)
		return out
	}

	d, ok := e.reg.Resolve(res.Detected)
	if !ok {
		// detection only reports registered ids; a miss here is a bug
		out.Error = fmt.Sprintf("detected format %q is not registered", res.Detected)
		out.Elapsed = time.Since(start)
		return out
	}
	out.DisplayName = d.DisplayName

	t, err := safeParse(d, in)
	if err != nil {
		out.Error = err.Error()
		out.Elapsed = time.Since(start)
		return out
	}
	if t.IsZero() {
		out.Error = "value parsed to an invalid instant"
		out.Elapsed = time.Since(start)
		return out
	}
	out.Success = true
	out.Instant = t
	out.Elapsed = time.Since(start)
	return out
}

// ParseAs parses with a caller-chosen format, skipping detection.
// An explicit format carries full confidence
func (e *Engine) ParseAs(input, identifier string) ParseOutcome {
	start := time.Now()
	in := strings.TrimSpace(input)

	out := ParseOutcome{Format: identifier}
	d, ok := e.reg.Resolve(identifier)
	if !ok {
		out.Error = fmt.Sprintf("unknown format identifier %q", identifier)
		out.Elapsed = time.Since(start)
		return out
	}
	out.Format = d.ID
	out.DisplayName = d.DisplayName
	out.Confidence = 1

	if _, matched := d.Matches(in); !matched {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("input does not match the %s shape; attempting to parse anyway", d.DisplayName))
	}

	t, err := safeParse(d, in)
	if err != nil {
		out.Error = err.Error()
		out.Elapsed = time.Since(start)
		return out
	}
	if t.IsZero() {
		out.Error = "value parsed to an invalid instant"
		out.Elapsed = time.Since(start)
		return out
	}
	out.Success = true
	out.Instant = t
	out.Elapsed = time.Since(start)
	return out
}

// Format renders t with the format resolved from identifier. An
// unresolved identifier or a failing formatter yields a failure outcome
// with empty text; timing is attached either way
func (e *Engine) Format(t time.Time, identifier, timezone, lang string) FormatOutcome {
	start := time.Now()

	out := FormatOutcome{Format: identifier, DisplayName: "unknown"}
	d, ok := e.reg.Resolve(identifier)
	if !ok {
		out.Error = fmt.Sprintf("unknown format identifier %q", identifier)
		out.Elapsed = time.Since(start)
		return out
	}
	out.Format = d.ID
	out.DisplayName = d.DisplayName

	var loc *time.Location
	if strings.TrimSpace(timezone) != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			out.Error = fmt.Sprintf("unknown timezone %q", timezone)
			out.Elapsed = time.Since(start)
			return out
		}
	}

	text, err := safeFormat(d, t, loc, lang)
	if err != nil {
		out.Error = err.Error()
		out.Elapsed = time.Since(start)
		return out
	}
	out.Success = true
	out.Text = text
	out.Elapsed = time.Since(start)
	return out
}

// safeParse runs the descriptor's parser (or the generic fallback) with
// panic containment
func safeParse(d *timefmt.FormatDescriptor, in string) (t time.Time, err error) {
	defer func() {
		if v := recover(); v != nil {
			t = time.Time{}
			err = fmt.Errorf("parser for %s panicked: %v", d.ID, v)
		}
	}()
	if d.Parse != nil {
		return d.Parse(in)
	}
	return GenericParse(in)
}

// safeFormat runs the descriptor's formatter with panic containment
func safeFormat(d *timefmt.FormatDescriptor, t time.Time, loc *time.Location, lang string) (s string, err error) {
	defer func() {
		if v := recover(); v != nil {
			s = ""
			err = fmt.Errorf("formatter for %s panicked: %v", d.ID, v)
		}
	}()
	return d.Format(t, loc, lang)
}

// genericLayouts is the fallback ladder for descriptors without a parser
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"2006/01/02",
}

// GenericParse tries a ladder of common layouts in order
func GenericParse(in string) (time.Time, error) {
	for _, l := range genericLayouts {
		if t, err := time.Parse(l, in); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse %q as a date or time", in)
}
