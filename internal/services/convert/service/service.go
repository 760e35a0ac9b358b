// Package service implements the convert service: detection, parsing,
// and formatting with bounded memoization and a rolling history
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"tsconv/internal/core/convert"
	"tsconv/internal/core/detect"
	"tsconv/internal/platform/cache"
	perr "tsconv/internal/platform/errors"
	"tsconv/internal/services/convert/domain"
)

// Config for the convert service
type Config struct {
	// LowConfidence rejects auto-detected parses scoring under it
	LowConfidence  float64
	ParseCacheCap  int
	FormatCacheCap int
	HistoryCap     int
}

// Service implements domain.ConversionPort
type Service struct {
	eng *convert.Engine
	cfg Config

	// mu makes ClearCaches atomic with respect to both caches
	mu      sync.Mutex
	parses  *cache.LRU[convert.ParseOutcome]
	formats *cache.LRU[convert.FormatOutcome]
	hist    *detect.History
}

// New constructs a convert service over an engine
func New(eng *convert.Engine, cfg Config) *Service {
	if eng == nil {
		panic("convert.Service requires a non nil Engine")
	}
	if cfg.LowConfidence <= 0 {
		cfg.LowConfidence = 0.3
	}
	return &Service{
		eng:     eng,
		cfg:     cfg,
		parses:  cache.NewLRU[convert.ParseOutcome](cfg.ParseCacheCap),
		formats: cache.NewLRU[convert.FormatOutcome](cfg.FormatCacheCap),
		hist:    detect.NewHistory(cfg.HistoryCap),
	}
}

// Detect runs detection and records the verdict in the history
func (s *Service) Detect(_ context.Context, in domain.DetectInput) (domain.DetectResponse, error) {
	res := s.eng.Detect(in.Input)
	s.hist.Record(res)
	return toDetectResponse(res), nil
}

// Parse converts text to an instant. An explicit Format skips detection;
// otherwise the detected format must clear the low-confidence threshold.
// Outcomes are memoized by input and format
func (s *Service) Parse(_ context.Context, in domain.ParseInput) (domain.ParseResponse, error) {
	key := "p|" + strings.ToLower(in.Format) + "|" + strings.TrimSpace(in.Input)
	if out, ok := s.parses.Get(key); ok {
		return toParseResponse(out), nil
	}

	var out convert.ParseOutcome
	if in.Format != "" {
		out = s.eng.ParseAs(in.Input, in.Format)
	} else {
		res := s.eng.Detect(in.Input)
		s.hist.Record(res)
		if res.Detected != detect.UnknownFormat && res.Confidence < s.cfg.LowConfidence {
			out = convert.ParseOutcome{
				Format:       res.Detected,
				DisplayName:  res.DisplayName,
				Confidence:   res.Confidence,
				Alternatives: res.Alternatives,
				Warnings:     append(append([]string(nil), res.Warnings...), res.Suggestions...),
				Error: fmt.Sprintf("detection confidence %.2f is below the threshold %.2f; pass an explicit format",
					res.Confidence, s.cfg.LowConfidence),
				Elapsed: res.Elapsed,
			}
		} else {
			out = s.eng.ParseWith(in.Input, res)
		}
	}

	s.parses.Set(key, out)
	return toParseResponse(out), nil
}

// Format renders an instant in a named format. The instant is taken from
// RFC3339 text or a unix seconds/milliseconds number. Outcomes are
// memoized by instant, format, timezone, and locale
func (s *Service) Format(_ context.Context, in domain.FormatInput) (domain.FormatResponse, error) {
	t, err := instantOf(in.Input)
	if err != nil {
		return domain.FormatResponse{Format: in.Format, Error: err.Error()}, nil
	}

	key := "f|" + strconv.FormatInt(t.UnixNano(), 10) +
		"|" + strings.ToLower(in.Format) + "|" + in.Timezone + "|" + in.Locale
	if out, ok := s.formats.Get(key); ok {
		return toFormatResponse(out), nil
	}

	out := s.eng.Format(t, in.Format, in.Timezone, in.Locale)
	s.formats.Set(key, out)
	return toFormatResponse(out), nil
}

// Stats reports history aggregates and cache fill
func (s *Service) Stats(_ context.Context) (domain.StatsResponse, error) {
	st := s.hist.Stats()
	return domain.StatsResponse{
		Total:         st.Total,
		Unknown:       st.Unknown,
		AvgConfidence: st.AvgConfidence,
		ByFormat:      st.ByFormat,
		ParseCached:   s.parses.Len(),
		FormatCached:  s.formats.Len(),
	}, nil
}

// ClearCaches empties both caches atomically and reports what was dropped.
// The history is kept; it feeds stats, not results
func (s *Service) ClearCaches(_ context.Context) (domain.CacheClearResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := domain.CacheClearResponse{
		Cleared:        true,
		ParseEntries:   s.parses.Len(),
		FormatEntries:  s.formats.Len(),
		HistoryEntries: s.hist.Len(),
	}
	s.parses.Clear()
	s.formats.Clear()
	return resp, nil
}

// instantOf reads an instant from RFC3339 text or an epoch number
func instantOf(in string) (time.Time, error) {
	v := strings.TrimSpace(in)
	if v == "" {
		return time.Time{}, perr.InvalidArgf("input is required")
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		if len(v) >= 12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, perr.InvalidArgf("input %q is not RFC3339 text or an epoch number", v)
}

func toDetectResponse(res detect.Result) domain.DetectResponse {
	return domain.DetectResponse{
		Input:        res.Input,
		Format:       res.Detected,
		DisplayName:  res.DisplayName,
		Confidence:   res.Confidence,
		Reason:       res.Reason,
		Ambiguity:    res.Ambiguity,
		Alternatives: toAlternatives(res.Alternatives),
		Composition: domain.CompositionDTO{
			Digits:  res.Composition.Digits,
			Letters: res.Composition.Letters,
			Symbols: res.Composition.Symbols,
			Spaces:  res.Composition.Spaces,
		},
		Suggestions: res.Suggestions,
		Warnings:    res.Warnings,
		ElapsedMs:   ms(res.Elapsed),
	}
}

func toParseResponse(out convert.ParseOutcome) domain.ParseResponse {
	resp := domain.ParseResponse{
		Success:      out.Success,
		Format:       out.Format,
		DisplayName:  out.DisplayName,
		Confidence:   out.Confidence,
		Alternatives: toAlternatives(out.Alternatives),
		Warnings:     out.Warnings,
		Error:        out.Error,
		ElapsedMs:    ms(out.Elapsed),
	}
	if out.Success {
		resp.Instant = out.Instant.UTC().Format(time.RFC3339Nano)
		resp.Unix = out.Instant.Unix()
		resp.UnixMillis = out.Instant.UnixMilli()
	}
	return resp
}

func toFormatResponse(out convert.FormatOutcome) domain.FormatResponse {
	return domain.FormatResponse{
		Success:     out.Success,
		Output:      out.Text,
		Format:      out.Format,
		DisplayName: out.DisplayName,
		Error:       out.Error,
		ElapsedMs:   ms(out.Elapsed),
	}
}

func toAlternatives(alts []detect.Alternative) []domain.AlternativeDTO {
	if len(alts) == 0 {
		return nil
	}
	out := make([]domain.AlternativeDTO, 0, len(alts))
	for _, a := range alts {
		out = append(out, domain.AlternativeDTO{
			Format:      a.ID,
			DisplayName: a.DisplayName,
			Confidence:  a.Confidence,
		})
	}
	return out
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
