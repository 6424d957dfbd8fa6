package analysis

// Package analysis turns validated sequence records into result rows and
// summary statistics for display and export.

import (
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/fasta"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/gc"
)

// Row is the per-sequence analysis result. GCPercent is stored unrounded;
// two-decimal formatting is a presentation concern.
type Row struct {
	Name      string
	Length    int
	GCPercent float64
}

// Summary holds min/max/mean GC% over one row set. It is only meaningful when
// Aggregate reported ok.
type Summary struct {
	Min float64
	Max float64
	Avg float64
}

// Aggregate computes a Row per record, preserving input order, plus the
// Summary over the set. ok is false when records is empty; the caller must
// treat that as a distinct "no data" outcome and not display the zero Summary.
func Aggregate(records []fasta.Record) (rows []Row, summary Summary, ok bool) {
	if len(records) == 0 {
		return nil, Summary{}, false
	}
	rows = make([]Row, 0, len(records))
	var sum float64
	for i, rec := range records {
		pct := gc.Percent(rec.Bases)
		rows = append(rows, Row{Name: rec.Name, Length: len(rec.Bases), GCPercent: pct})
		sum += pct
		if i == 0 || pct < summary.Min {
			summary.Min = pct
		}
		if i == 0 || pct > summary.Max {
			summary.Max = pct
		}
	}
	summary.Avg = sum / float64(len(rows))
	return rows, summary, true
}

// Histogram counts rows per equal-width GC% bin spanning [0, 100]. A GC% of
// exactly 100 lands in the last bin. bins must be positive.
func Histogram(rows []Row, bins int) []int {
	counts := make([]int, bins)
	width := 100.0 / float64(bins)
	for _, row := range rows {
		idx := int(row.GCPercent / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}
