// Package domain holds DTOs for the formats catalog endpoints
package domain

// FormatInfo describes one catalog entry
type FormatInfo struct {
	ID          string   `json:"id" example:"iso8601_full"`
	DisplayName string   `json:"display_name" example:"ISO 8601 Full"`
	Template    string   `json:"template,omitempty" example:"YYYY-MM-DDTHH:mm:ss.sssZ"`
	Example     string   `json:"example,omitempty" example:"2024-01-15T10:30:45.123Z"`
	Description string   `json:"description,omitempty" example:"ISO 8601 with fractional seconds and zone"`
	Category    string   `json:"category" example:"iso"`
	Aliases     []string `json:"aliases,omitempty" example:"iso,iso8601"`

	Region          string `json:"region,omitempty" example:"US"`
	Language        string `json:"language,omitempty" example:"en"`
	UseCase         string `json:"use_case,omitempty" example:"APIs and logs"`
	Precision       string `json:"precision,omitempty" example:"second"`
	TimezoneAware   bool   `json:"timezone_aware" example:"true"`
	LocaleDependent bool   `json:"locale_dependent" example:"false"`
}

// ListResponse is the catalog listing
type ListResponse struct {
	Total   int          `json:"total" example:"22"`
	Formats []FormatInfo `json:"formats"`
}
