// Package detect ranks catalog formats against free-text input
package detect

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"tsconv/internal/core/timefmt"
)

// UnknownFormat is the Detected value when no descriptor matches
const UnknownFormat = "unknown"

// Options controls detector behavior
type Options struct {
	// WarnBelow flags a successful detection whose confidence is under
	// this threshold (default 0.5)
	WarnBelow float64
	// MaxAlternatives caps the alternatives list (default 3)
	MaxAlternatives int
}

const (
	defaultWarnBelow       = 0.5
	defaultMaxAlternatives = 3
)

// Composition counts rune classes over the trimmed input
type Composition struct {
	Digits  int
	Letters int
	Symbols int
	Spaces  int
}

// Candidate is one descriptor's evaluation against the input
type Candidate struct {
	Descriptor *timefmt.FormatDescriptor
	Confidence float64
	Reason     string

	validatorFailed bool
}

// Alternative is a runner-up surfaced alongside the detected format
type Alternative struct {
	ID          string
	DisplayName string
	Confidence  float64
}

// Result is the detector's output. Detection never fails: an
// unrecognized input yields Detected == UnknownFormat with confidence 0
// and at least one suggestion
type Result struct {
	Input        string
	Detected     string
	DisplayName  string
	Confidence   float64
	Reason       string
	Alternatives []Alternative
	Composition  Composition
	Ambiguity    float64
	Suggestions  []string
	Warnings     []string
	Elapsed      time.Duration
}

// Detector evaluates input against every descriptor in a registry.
// The registry is immutable after construction, so a single Detector is
// safe for concurrent use
type Detector struct {
	reg  *timefmt.Registry
	opts Options
}

// New creates a Detector with default options
func New(reg *timefmt.Registry) *Detector {
	return NewWithOptions(reg, Options{})
}

// NewWithOptions creates a Detector with custom options
func NewWithOptions(reg *timefmt.Registry, opts Options) *Detector {
	if opts.WarnBelow <= 0 {
		opts.WarnBelow = defaultWarnBelow
	}
	if opts.MaxAlternatives <= 0 {
		opts.MaxAlternatives = defaultMaxAlternatives
	}
	return &Detector{reg: reg, opts: opts}
}

// Detect trims input, scores every matching descriptor, and returns the
// ranked result
func (d *Detector) Detect(input string) Result {
	start := time.Now()
	in := strings.TrimSpace(input)
	comp := compose(in)

	res := Result{
		Input:       in,
		Detected:    UnknownFormat,
		Composition: comp,
	}
	if in == "" {
		res.Suggestions = []string{"input is empty; supply a timestamp or date string"}
		res.Elapsed = time.Since(start)
		return res
	}

	var cands []Candidate
	for _, desc := range d.reg.All() {
		rule, ok := desc.Matches(in)
		if !ok {
			continue
		}
		conf, reason, vfail := score(desc, rule, in, comp)
		cands = append(cands, Candidate{
			Descriptor:      desc,
			Confidence:      conf,
			Reason:          reason,
			validatorFailed: vfail,
		})
	}

	// ties keep registry order
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Confidence > cands[j].Confidence })

	if len(cands) == 0 {
		res.Suggestions = suggestNoMatch(comp)
		res.Elapsed = time.Since(start)
		return res
	}

	top := cands[0]
	res.Detected = top.Descriptor.ID
	res.DisplayName = top.Descriptor.DisplayName
	res.Confidence = top.Confidence
	res.Reason = top.Reason
	for _, c := range cands[1:] {
		if len(res.Alternatives) >= d.opts.MaxAlternatives {
			break
		}
		res.Alternatives = append(res.Alternatives, Alternative{
			ID:          c.Descriptor.ID,
			DisplayName: c.Descriptor.DisplayName,
			Confidence:  c.Confidence,
		})
	}
	res.Ambiguity = ambiguity(cands)
	res.Warnings, res.Suggestions = d.diagnose(cands)
	res.Elapsed = time.Since(start)
	return res
}

// compose counts rune classes over s
func compose(s string) Composition {
	var c Composition
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			c.Digits++
		case unicode.IsLetter(r):
			c.Letters++
		case unicode.IsSpace(r):
			c.Spaces++
		default:
			c.Symbols++
		}
	}
	return c
}

// ambiguity is a step function of the confidence gap between the top two
// candidates; fewer than two candidates means no ambiguity at all
func ambiguity(cands []Candidate) float64 {
	if len(cands) < 2 {
		return 0
	}
	gap := cands[0].Confidence - cands[1].Confidence
	switch {
	case gap < 0.1:
		return 0.9
	case gap < 0.2:
		return 0.6
	case gap < 0.3:
		return 0.3
	default:
		return 0.1
	}
}

// diagnose derives human-readable warnings and suggestions from the
// candidate set
func (d *Detector) diagnose(cands []Candidate) (warnings, suggestions []string) {
	top := cands[0]

	if top.Confidence < d.opts.WarnBelow {
		warnings = append(warnings, fmt.Sprintf(
			"low confidence (%.2f); the detected format may be wrong", top.Confidence))
	}
	if top.validatorFailed {
		if top.Descriptor.ID == "time_only" {
			warnings = append(warnings, "time component out of range (hour >= 24 or minute >= 60)")
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"value matches the %s shape but fails validation", top.Descriptor.DisplayName))
		}
	}

	var sawUS, sawEU bool
	for _, c := range cands {
		switch c.Descriptor.ID {
		case "us_date":
			sawUS = true
		case "eu_date":
			sawEU = true
		}
	}
	if sawUS && sawEU {
		warnings = append(warnings,
			"day/month order is ambiguous: the value reads as both a US (MM/DD) and a European (DD/MM) date")
		suggestions = append(suggestions,
			"pass an explicit format id (us_date or eu_date) to disambiguate")
	}

	if len(cands) > 1 && ambiguity(cands) >= 0.6 && !(sawUS && sawEU) {
		suggestions = append(suggestions,
			"several formats score similarly; pass an explicit format id to disambiguate")
	}
	return warnings, suggestions
}

// suggestNoMatch explains a zero-candidate detection
func suggestNoMatch(comp Composition) []string {
	if comp.Digits > 0 && comp.Letters == 0 {
		return []string{
			"numeric input did not match a known shape; unix timestamps have 10 digits (seconds) or 13 digits (milliseconds)",
		}
	}
	return []string{"no known format matched; try an ISO 8601 string like 2024-01-15T10:30:45Z"}
}
