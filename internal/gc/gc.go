package gc

// Package gc computes GC content for DNA sequences.

import "strings"

// Percent returns the GC content of bases as a percentage in [0, 100].
// Empty input yields exactly 0 rather than a division fault, so the function
// is total. Bases are assumed upper-cased; the fasta package guarantees that
// for parsed records.
func Percent(bases string) float64 {
	if len(bases) == 0 {
		return 0
	}
	gc := strings.Count(bases, "G") + strings.Count(bases, "C")
	return float64(gc) / float64(len(bases)) * 100
}

// Composition returns the GC and AT shares of bases as percentages. For
// strict A/T/G/C input the two always sum to 100.
func Composition(bases string) (gcPct, atPct float64) {
	gcPct = Percent(bases)
	return gcPct, 100 - gcPct
}
