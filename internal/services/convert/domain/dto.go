// Package domain holds DTOs and ports for the convert service
package domain

// DetectInput asks which format an input string is
type DetectInput struct {
	Input string `json:"input" validate:"required,max=512" example:"1705315845"`
}

// AlternativeDTO is a runner-up format for an ambiguous input
type AlternativeDTO struct {
	Format      string  `json:"format" example:"eu_date"`
	DisplayName string  `json:"display_name" example:"European Date"`
	Confidence  float64 `json:"confidence" example:"0.45"`
}

// CompositionDTO reports the character classes of the analyzed input
type CompositionDTO struct {
	Digits  int `json:"digits" example:"10"`
	Letters int `json:"letters" example:"0"`
	Symbols int `json:"symbols" example:"0"`
	Spaces  int `json:"spaces" example:"0"`
}

// DetectResponse is the detection verdict for one input
type DetectResponse struct {
	Input        string           `json:"input" example:"1705315845"`
	Format       string           `json:"format" example:"unix_seconds"`
	DisplayName  string           `json:"display_name,omitempty" example:"Unix Timestamp (seconds)"`
	Confidence   float64          `json:"confidence" example:"0.95"`
	Reason       string           `json:"reason,omitempty" example:"matched unix-seconds"`
	Ambiguity    float64          `json:"ambiguity" example:"0.1"`
	Alternatives []AlternativeDTO `json:"alternatives,omitempty"`
	Composition  CompositionDTO   `json:"composition"`
	Suggestions  []string         `json:"suggestions,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	ElapsedMs    float64          `json:"elapsed_ms" example:"0.12"`
}

// ParseInput converts text to an instant; Format skips detection
type ParseInput struct {
	Input  string `json:"input" validate:"required,max=512" example:"15/01/2024"`
	Format string `json:"format,omitempty" validate:"omitempty,max=64" example:"eu_date"`
}

// ParseResponse is the outcome of a parse request
type ParseResponse struct {
	Success      bool             `json:"success" example:"true"`
	Instant      string           `json:"instant,omitempty" example:"2024-01-15T00:00:00Z"`
	Unix         int64            `json:"unix,omitempty" example:"1705276800"`
	UnixMillis   int64            `json:"unix_ms,omitempty" example:"1705276800000"`
	Format       string           `json:"format" example:"eu_date"`
	DisplayName  string           `json:"display_name,omitempty" example:"European Date"`
	Confidence   float64          `json:"confidence" example:"1"`
	Alternatives []AlternativeDTO `json:"alternatives,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
	Error        string           `json:"error,omitempty"`
	ElapsedMs    float64          `json:"elapsed_ms" example:"0.2"`
}

// FormatInput renders an instant in a named format.
// Input accepts RFC3339 text or a unix seconds/milliseconds number
type FormatInput struct {
	Input    string `json:"input" validate:"required,max=64" example:"2024-01-15T10:30:45Z"`
	Format   string `json:"format" validate:"required,max=64" example:"japanese_era"`
	Timezone string `json:"timezone,omitempty" validate:"omitempty,max=64" example:"Asia/Tokyo"`
	Locale   string `json:"locale,omitempty" validate:"omitempty,max=16" example:"ja"`
}

// FormatResponse is the outcome of a format request
type FormatResponse struct {
	Success     bool    `json:"success" example:"true"`
	Output      string  `json:"output,omitempty" example:"令和6年1月15日"`
	Format      string  `json:"format" example:"japanese_era"`
	DisplayName string  `json:"display_name,omitempty" example:"Japanese Era"`
	Error       string  `json:"error,omitempty"`
	ElapsedMs   float64 `json:"elapsed_ms" example:"0.1"`
}

// StatsResponse aggregates the detection history and cache usage
type StatsResponse struct {
	Total         int            `json:"total" example:"42"`
	Unknown       int            `json:"unknown" example:"3"`
	AvgConfidence float64        `json:"avg_confidence" example:"0.81"`
	ByFormat      map[string]int `json:"by_format"`
	ParseCached   int            `json:"parse_cached" example:"17"`
	FormatCached  int            `json:"format_cached" example:"9"`
}

// CacheClearResponse reports what a cache clear removed
type CacheClearResponse struct {
	Cleared        bool `json:"cleared" example:"true"`
	ParseEntries   int  `json:"parse_entries" example:"17"`
	FormatEntries  int  `json:"format_entries" example:"9"`
	HistoryEntries int  `json:"history_entries" example:"42"`
}
