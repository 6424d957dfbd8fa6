package main

import (
	"strings"
	"testing"

	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/fasta"
)

func testRecords() []fasta.Record {
	return []fasta.Record{
		{Name: "seq1", Bases: "AATT"},
		{Name: "seq2", Bases: "GGCC"},
	}
}

func TestCycleMode(t *testing.T) {
	m := newModel(testRecords(), nil, lightTheme)
	if m.currentMode != modeSequence {
		t.Fatalf("expected initial mode sequence, got %v", m.currentMode)
	}
	m = m.cycleMode()
	if m.currentMode != modeBars {
		t.Fatalf("expected bars, got %v", m.currentMode)
	}
	m = m.cycleMode()
	m = m.cycleMode()
	m = m.cycleMode()
	if m.currentMode != modeSequence {
		t.Fatalf("expected wrap back to sequence, got %v", m.currentMode)
	}
}

func TestToggleTheme(t *testing.T) {
	m := newModel(testRecords(), nil, lightTheme)
	m = m.toggleTheme()
	if m.theme.name != darkTheme.name {
		t.Fatalf("expected dark theme, got %s", m.theme.name)
	}
	m = m.toggleTheme()
	if m.theme.name != lightTheme.name {
		t.Fatalf("expected light theme, got %s", m.theme.name)
	}
}

func TestModelSummary(t *testing.T) {
	m := newModel(testRecords(), nil, lightTheme)
	if m.summary.Min != 0 || m.summary.Max != 100 || m.summary.Avg != 50 {
		t.Fatalf("unexpected summary: %+v", m.summary)
	}
}

func TestRenderBarChart(t *testing.T) {
	m := newModel(testRecords(), nil, lightTheme)
	m.width = 120
	m.height = 40
	out := m.renderBarChart()
	if !strings.Contains(out, "seq1") || !strings.Contains(out, "seq2") {
		t.Fatalf("bar chart missing sequence names:\n%s", out)
	}
	if !strings.Contains(out, "100.00") {
		t.Fatalf("bar chart missing GC%% value:\n%s", out)
	}
}

func TestRenderHistogramCounts(t *testing.T) {
	m := newModel(testRecords(), nil, lightTheme)
	m.width = 120
	m.height = 40
	out := m.renderHistogram()
	if !strings.Contains(out, "GC Content Distribution") {
		t.Fatalf("missing histogram title:\n%s", out)
	}
}

func TestSkippedStatus(t *testing.T) {
	skipped := []fasta.Skipped{{Name: "bad", Reason: fasta.ReasonInvalidChars}}
	m := newModel(testRecords(), skipped, lightTheme)
	if !strings.Contains(m.status, "skipped") {
		t.Fatalf("expected skip notice in status, got %q", m.status)
	}
}
