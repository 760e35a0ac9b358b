package module

import "tsconv/internal/platform/config"

// Options holds configuration settings for the convert module
type Options struct {
	LowConfidence  float64
	ParseCacheCap  int
	FormatCacheCap int
	HistoryCap     int
	WarnBelow      float64
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cv := cfg.Prefix("CONVERT_")
	return Options{
		LowConfidence:  cv.MayFloat64("LOW_CONFIDENCE", 0.3),
		ParseCacheCap:  cv.MayInt("PARSE_CACHE_CAP", 1024),
		FormatCacheCap: cv.MayInt("FORMAT_CACHE_CAP", 1024),
		HistoryCap:     cv.MayInt("HISTORY_CAP", 1000),
		WarnBelow:      cv.MayFloat64("WARN_BELOW", 0.5),
	}
}
