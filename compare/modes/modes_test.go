package modes

import (
	"testing"

	"github.com/snapdiff/snapdiff/compare/diff"
	"github.com/snapdiff/snapdiff/compare/options"
)

func TestResolveStaticAndDynamic(t *testing.T) {
	cfg := options.DefaultConfig()

	if f, ok := Resolve(cfg, "static"); !ok || !f.CompareTextContent {
		t.Errorf("expected static mode to compare text content, got %+v ok=%v", f, ok)
	}
	if f, ok := Resolve(cfg, "dynamic"); !ok || f.CompareTextContent {
		t.Errorf("expected dynamic mode to skip text content, got %+v ok=%v", f, ok)
	}
	if _, ok := Resolve(cfg, "bogus"); ok {
		t.Error("expected unrecognized mode to report ok=false")
	}
}

func TestAssembleCountsUnchangedAndModified(t *testing.T) {
	results := []diff.ElementResult{
		{ElementID: "a", TotalDifferences: 0},
		{ElementID: "b", TotalDifferences: 2, Differences: []diff.Difference{
			{Severity: diff.SeverityCritical},
			{Severity: diff.SeverityLow},
		}},
	}

	s := Assemble(results)
	if s.TotalElements != 2 {
		t.Errorf("expected 2 total elements, got %d", s.TotalElements)
	}
	if s.UnchangedElements != 1 || s.ModifiedElements != 1 {
		t.Errorf("expected 1 unchanged and 1 modified, got unchanged=%d modified=%d", s.UnchangedElements, s.ModifiedElements)
	}
	if s.TotalDifferences != 2 {
		t.Errorf("expected 2 total differences, got %d", s.TotalDifferences)
	}
	if s.SeverityCounts.Critical != 1 || s.SeverityCounts.Low != 1 {
		t.Errorf("expected 1 critical and 1 low, got %+v", s.SeverityCounts)
	}
}

func TestAssembleEmpty(t *testing.T) {
	s := Assemble(nil)
	if s.TotalElements != 0 || s.ModifiedElements != 0 || s.UnchangedElements != 0 {
		t.Errorf("expected all-zero summary for empty input, got %+v", s)
	}
}

func TestMatchRate(t *testing.T) {
	cases := []struct {
		matched, total int
		want           float64
	}{
		{10, 10, 100},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 100},
	}
	for _, c := range cases {
		if got := MatchRate(c.matched, c.total); got != c.want {
			t.Errorf("MatchRate(%d, %d) = %v, want %v", c.matched, c.total, got, c.want)
		}
	}
}
