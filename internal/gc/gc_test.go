package gc

import (
	"math"
	"strings"
	"testing"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		bases string
		want  float64
	}{
		{"", 0},
		{"AATT", 0},
		{"GGCC", 100},
		{"ATGC", 50},
		{"ATG", 100.0 / 3},
		{strings.Repeat("G", 1000) + strings.Repeat("A", 3000), 25},
	}
	for _, c := range cases {
		got := Percent(c.bases)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Percent(%q) = %v, want %v", c.bases, got, c.want)
		}
	}
}

func TestPercentMatchesDefinition(t *testing.T) {
	s := "ATGCGGCATTACG"
	want := 100 * float64(strings.Count(s, "G")+strings.Count(s, "C")) / float64(len(s))
	if got := Percent(s); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Percent(%q) = %v, want %v", s, got, want)
	}
}

func TestCompositionSumsToHundred(t *testing.T) {
	gcPct, atPct := Composition("ATGGGC")
	if math.Abs(gcPct+atPct-100) > 1e-9 {
		t.Fatalf("composition does not sum to 100: %v + %v", gcPct, atPct)
	}
	if math.Abs(gcPct-100.0*4/6) > 1e-9 {
		t.Fatalf("unexpected gc share: %v", gcPct)
	}
}
