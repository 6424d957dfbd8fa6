package analysis

import (
	"math"
	"testing"

	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/fasta"
)

func TestAggregate(t *testing.T) {
	rows, summary, ok := Aggregate([]fasta.Record{
		{Name: "a", Bases: "AATT"},
		{Name: "b", Bases: "GGCC"},
	})
	if !ok {
		t.Fatal("expected ok for non-empty input")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "a" || rows[0].Length != 4 || rows[0].GCPercent != 0 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Name != "b" || rows[1].GCPercent != 100 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if summary.Min != 0 || summary.Max != 100 || math.Abs(summary.Avg-50) > 1e-9 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestAggregatePreservesOrder(t *testing.T) {
	recs := []fasta.Record{
		{Name: "z", Bases: "GGGG"},
		{Name: "a", Bases: "AAAA"},
		{Name: "m", Bases: "ATGC"},
	}
	rows, _, _ := Aggregate(recs)
	for i, rec := range recs {
		if rows[i].Name != rec.Name {
			t.Fatalf("row %d: expected %q, got %q", i, rec.Name, rows[i].Name)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	rows, summary, ok := Aggregate(nil)
	if ok {
		t.Fatal("expected ok=false for empty input")
	}
	if rows != nil || summary != (Summary{}) {
		t.Fatalf("expected zero results, got %+v / %+v", rows, summary)
	}
}

func TestHistogram(t *testing.T) {
	rows := []Row{
		{GCPercent: 0},
		{GCPercent: 9.9},
		{GCPercent: 10},
		{GCPercent: 55},
		{GCPercent: 100}, // exact top edge belongs to the last bin
	}
	counts := Histogram(rows, 10)
	if len(counts) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(counts))
	}
	want := []int{2, 1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Fatalf("bin %d: expected %d, got %d (all: %v)", i, want[i], counts[i], counts)
		}
	}
}
