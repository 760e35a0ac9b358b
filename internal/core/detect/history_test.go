package detect

import "testing"

func TestHistory_RecordAndStats(t *testing.T) {
	h := NewHistory(0)

	h.Record(Result{Detected: "unix_seconds", Confidence: 1.0})
	h.Record(Result{Detected: "unix_seconds", Confidence: 0.9})
	h.Record(Result{Detected: "eu_date", Confidence: 0.7})
	h.Record(Result{Detected: UnknownFormat, Confidence: 0})

	s := h.Stats()
	if s.Total != 4 || s.Unknown != 1 {
		t.Fatalf("Stats = %+v", s)
	}
	if s.ByFormat["unix_seconds"] != 2 || s.ByFormat["eu_date"] != 1 {
		t.Fatalf("ByFormat = %v", s.ByFormat)
	}
	if s.AvgConfidence != 0.65 {
		t.Fatalf("AvgConfidence = %v, want 0.65", s.AvgConfidence)
	}
}

func TestHistory_TrimsToNewestHalf(t *testing.T) {
	h := NewHistory(10)
	for i := 0; i < 10; i++ {
		h.Record(Result{Detected: "old", Confidence: 0.5})
	}
	if h.Len() != 10 {
		t.Fatalf("Len = %d", h.Len())
	}

	h.Record(Result{Detected: "new", Confidence: 0.5})
	if h.Len() != 5 {
		t.Fatalf("Len after overflow = %d, want 5", h.Len())
	}
	if h.Stats().ByFormat["new"] != 1 {
		t.Fatalf("newest entry must survive the trim")
	}
}

func TestHistory_EmptyStats(t *testing.T) {
	h := NewHistory(5)
	s := h.Stats()
	if s.Total != 0 || s.AvgConfidence != 0 || len(s.ByFormat) != 0 {
		t.Fatalf("empty Stats = %+v", s)
	}
}
