package fasta

// Package fasta contains minimal helpers to parse DNA input used by the
// project. Two grammars are supported: FASTA text and comma-separated plain
// sequences. It intentionally keeps parsing simple and conservative.

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Record represents a single named DNA sequence. Bases are upper-cased with
// all internal whitespace removed.
type Record struct {
	Name  string
	Bases string
}

// Reason classifies why a record was excluded from analysis.
type Reason string

const (
	// ReasonInvalidChars marks records with bases outside A/T/G/C.
	ReasonInvalidChars Reason = "invalid characters"
	// ReasonEmpty marks records that carry a name but no bases.
	ReasonEmpty Reason = "empty sequence"
)

// Skipped reports a record that was excluded during validation.
type Skipped struct {
	Name   string
	Reason Reason
}

// ErrNoValidSequences is returned by ParseFile when the input parses but
// yields zero valid records.
var ErrNoValidSequences = errors.New("no valid sequences found")

// stripSpaces removes every whitespace character from s.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Parse reads raw pasted or decoded file text and returns the valid records
// alongside reports for the records that failed validation. The grammar is
// chosen by the first non-blank character: '>' selects FASTA, anything else
// selects the comma-separated plain grammar. Parse never fails; malformed
// entries surface as Skipped reports.
//
// Whitespace policy: all internal whitespace is stripped from sequence data
// before upper-casing, in both grammars.
func Parse(raw string) ([]Record, []Skipped) {
	trimmed := strings.TrimSpace(raw)
	var records []Record
	if strings.HasPrefix(trimmed, ">") {
		records = ParseFASTA(trimmed)
	} else {
		records = ParsePlain(trimmed)
	}
	return Validate(records)
}

// ParseFASTA reads FASTA records from raw text. Lines beginning with '>'
// denote headers; the record name is the first whitespace-delimited token of
// the header, trailing description words are discarded. Sequence lines are
// concatenated with internal whitespace removed and upper-cased. Blank lines
// are ignored. A header followed by no sequence lines yields no record.
func ParseFASTA(raw string) []Record {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	var records []Record
	var name string
	var bases strings.Builder
	flush := func() {
		if name != "" && bases.Len() > 0 {
			records = append(records, Record{Name: name, Bases: bases.String()})
		}
		bases.Reset()
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			name = headerName(line[1:])
			continue
		}
		bases.WriteString(strings.ToUpper(stripSpaces(line)))
	}
	flush()
	return records
}

// headerName returns the first whitespace-delimited token of a FASTA header.
func headerName(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ParsePlain splits raw text on commas into anonymous sequences. Empty pieces
// are discarded; the remaining pieces are named Sequence_1, Sequence_2, ... in
// emission order.
func ParsePlain(raw string) []Record {
	var records []Record
	for _, piece := range strings.Split(raw, ",") {
		bases := strings.ToUpper(stripSpaces(piece))
		if bases == "" {
			continue
		}
		records = append(records, Record{
			Name:  fmt.Sprintf("Sequence_%d", len(records)+1),
			Bases: bases,
		})
	}
	return records
}

// Validate partitions records into valid ones and skip reports. A record is
// valid iff its bases are non-empty and drawn only from {A, T, G, C}. Nothing
// is dropped silently: every excluded record appears in the second return
// value with its name and reason.
func Validate(records []Record) ([]Record, []Skipped) {
	var valid []Record
	var skipped []Skipped
	for _, rec := range records {
		switch {
		case rec.Bases == "":
			skipped = append(skipped, Skipped{Name: rec.Name, Reason: ReasonEmpty})
		case !isDNA(rec.Bases):
			skipped = append(skipped, Skipped{Name: rec.Name, Reason: ReasonInvalidChars})
		default:
			valid = append(valid, rec)
		}
	}
	return valid, skipped
}

// isDNA reports whether s contains only the strict DNA alphabet.
func isDNA(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return false
		}
	}
	return true
}

// ParseFile reads path, decodes it as UTF-8 text and parses it with the same
// grammars as pasted input. Read and decode failures abort the whole input;
// an input with zero valid records returns ErrNoValidSequences together with
// the skip reports so the caller can still explain what was rejected.
func ParseFile(path string) ([]Record, []Skipped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, nil, fmt.Errorf("decode input %s: not valid UTF-8 text", path)
	}
	valid, skipped := Parse(string(data))
	if len(valid) == 0 {
		return nil, skipped, ErrNoValidSequences
	}
	return valid, skipped, nil
}
