// Package timefmt defines the catalog of recognized time formats: one
// descriptor per format with match rules, metadata, and parse/format hooks
package timefmt

import "time"

// Category buckets descriptors for listing and for composition scoring
type Category string

const (
	// CategoryStandard covers epoch timestamps and other everyday formats
	CategoryStandard Category = "standard"
	// CategoryLocale covers region-dependent date orders and spellings
	CategoryLocale Category = "locale"
	// CategoryISO covers the ISO 8601 family
	CategoryISO Category = "iso"
	// CategoryCustom covers app-specific renderings like relative time
	CategoryCustom Category = "custom"
	// CategoryBusiness covers spreadsheet serials, quarters and the like
	CategoryBusiness Category = "business"
	// CategoryTechnical covers wire and log formats (SQL, HTTP, syslog)
	CategoryTechnical Category = "technical"
	// CategoryCultural covers era and non-Gregorian calendar renderings
	CategoryCultural Category = "cultural"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryStandard, CategoryLocale, CategoryISO, CategoryCustom,
		CategoryBusiness, CategoryTechnical, CategoryCultural:
		return true
	}
	return false
}

// Categories lists all known categories in display order
func Categories() []Category {
	return []Category{
		CategoryStandard, CategoryLocale, CategoryISO, CategoryCustom,
		CategoryBusiness, CategoryTechnical, CategoryCultural,
	}
}

// Precision is the granularity a format can faithfully represent
type Precision string

const (
	// PrecisionSecond resolves to whole seconds
	PrecisionSecond Precision = "second"
	// PrecisionMinute resolves to whole minutes
	PrecisionMinute Precision = "minute"
	// PrecisionHour resolves to whole hours
	PrecisionHour Precision = "hour"
	// PrecisionDay resolves to calendar days
	PrecisionDay Precision = "day"
	// PrecisionMonth resolves to calendar months
	PrecisionMonth Precision = "month"
	// PrecisionYear resolves to calendar years
	PrecisionYear Precision = "year"
)

// FormatFunc renders t in the descriptor's format.
// loc is nil for UTC; lang is a BCP 47 tag or empty for the default
type FormatFunc func(t time.Time, loc *time.Location, lang string) (string, error)

// ParseFunc converts matching text into an instant.
// Descriptors without one fall back to the engine's generic parser
type ParseFunc func(s string) (time.Time, error)

// ValidateFunc reports whether structurally matching text is also
// semantically plausible (e.g. an epoch within the 32-bit window)
type ValidateFunc func(s string) bool

// Metadata carries descriptive attributes surfaced to callers
type Metadata struct {
	Region          string
	Language        string
	UseCase         string
	Precision       Precision
	TimezoneAware   bool
	LocaleDependent bool
}

// FormatDescriptor is one catalog entry.
// ID is globally unique; Aliases resolve case-insensitively to ID;
// Rules must be non-empty
type FormatDescriptor struct {
	ID           string
	DisplayName  string
	Template     string
	Example      string
	ExampleValue string
	Description  string
	Category     Category
	Aliases      []string

	// Rules are OR-ed: any match makes the descriptor a candidate
	Rules []Rule

	// BaseConfidence seeds the detection score before adjustments
	BaseConfidence float64

	// Numeric marks digits-only formats so the scorer can apply
	// digit-ratio adjustments
	Numeric bool

	Format   FormatFunc
	Parse    ParseFunc
	Validate ValidateFunc

	Meta Metadata
}

// Matches reports whether s satisfies any of the descriptor's rules
func (d *FormatDescriptor) Matches(s string) (Rule, bool) {
	for _, r := range d.Rules {
		if r.Match(s) {
			return r, true
		}
	}
	return Rule{}, false
}
