package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/analysis"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/config"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/fasta"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/report"
)

// version is the program version. It can be overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// timestampWriter prefixes each flushed line with an RFC3339 timestamp.
type timestampWriter struct {
	w   io.Writer
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write buffers bytes until a newline is found; for each full line, write a timestamped
// line to the underlying writer. Partial lines are kept in the buffer.
func (t *timestampWriter) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, _ := t.buf.Write(p)
	total := n
	for {
		line, err := t.buf.ReadString('\n')
		if err != nil {
			break
		}
		ts := time.Now().Format(time.RFC3339)
		if _, err := t.w.Write([]byte(ts + " " + line)); err != nil {
			return total, err
		}
	}
	return total, nil
}

// terminalWriter wraps an io.Writer and exposes an Fd method so libraries that
// inspect the file descriptor (for TTY detection) can work with wrapped writers.
type terminalWriter struct {
	w  io.Writer
	fd uintptr
}

func (tw *terminalWriter) Write(p []byte) (int, error) { return tw.w.Write(p) }

// Fd exposes the underlying file descriptor (e.g., os.Stderr.Fd()).
func (tw *terminalWriter) Fd() uintptr { return tw.fd }

func main() {
	// CLI flags
	inputFlag := flag.String("in", "", "input FASTA or plain sequence file path")
	outputFlag := flag.String("out", "", "optional output CSV file path")
	xlsxFlag := flag.String("xlsx", "", "optional output XLSX file path")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose (debug) logging")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("gc-content-analyzer", version)
		return
	}

	// load config (optional file)
	cfg, cfgErr := config.LoadConfig(*configFlag)

	// merge CLI flags into config (flags override config when provided)
	if cfg == nil {
		cfg = &config.Config{}
	}
	if flag.NArg() > 0 {
		cfg.InputPath = flag.Arg(0)
	}
	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	}
	if *outputFlag != "" {
		cfg.OutputCSV = *outputFlag
	}
	if *xlsxFlag != "" {
		cfg.OutputXLSX = *xlsxFlag
	}

	// configure logger output
	var loggerOut io.Writer = os.Stderr
	var logFileHandle *os.File
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			// write to both stderr and file so running interactively still shows logs
			loggerOut = io.MultiWriter(os.Stderr, f)
			logFileHandle = f
			// keep file handle open until program exit
			defer func() { _ = logFileHandle.Close() }()
		}
	}
	// If stderr is a terminal-like device, force colors for libraries that honor FORCE_COLOR.
	if fi, err := os.Stderr.Stat(); err == nil {
		if fi.Mode()&os.ModeCharDevice != 0 {
			_ = os.Setenv("FORCE_COLOR", "1")
		}
	}
	// create logger backed by the timestamping writer and expose Fd so charm.log can detect TTY
	tw := &timestampWriter{w: loggerOut}
	termW := &terminalWriter{w: tw, fd: os.Stderr.Fd()}
	logger := log.New(termW)

	// apply log level from flags/config (flags override config)
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		switch strings.ToLower(cfg.LogLevel) {
		case "debug":
			logger.SetLevel(log.DebugLevel)
		case "info", "":
			logger.SetLevel(log.InfoLevel)
		case "warn", "warning":
			logger.SetLevel(log.WarnLevel)
		case "error":
			logger.SetLevel(log.ErrorLevel)
		default:
			logger.SetLevel(log.InfoLevel)
			logger.Warn("unknown log_level in config.json, defaulting to info", "provided", cfg.LogLevel)
		}
	}
	if cfgErr != nil {
		logger.Warn("could not parse config file; using flags only", "err", cfgErr)
	}

	logger.Debug("loaded config", "input_path", cfg.InputPath, "output_csv", cfg.OutputCSV, "output_xlsx", cfg.OutputXLSX, "log_file", cfg.LogFile, "log_level", cfg.LogLevel)

	if cfg.InputPath == "" {
		logger.Fatal("no input file given; pass a path or use -in")
	}

	records, skipped, err := fasta.ParseFile(cfg.InputPath)
	if err != nil {
		for _, s := range skipped {
			logger.Warn("sequence skipped", "name", s.Name, "reason", string(s.Reason))
		}
		if errors.Is(err, fasta.ErrNoValidSequences) {
			fmt.Println("No valid sequences found.")
			return
		}
		logger.Fatal("failed to read input", "path", cfg.InputPath, "err", err)
	}
	logger.Info("parsed input", "path", cfg.InputPath, "sequences", len(records), "skipped", len(skipped))

	// per-record problems are reported, never silently dropped
	for _, s := range skipped {
		logger.Warn("sequence skipped", "name", s.Name, "reason", string(s.Reason))
	}

	rows, summary, ok := analysis.Aggregate(records)
	if !ok {
		fmt.Println("No valid sequences found.")
		return
	}

	for _, row := range rows {
		fmt.Printf("%s: Length=%d, GC%%=%.2f\n", row.Name, row.Length, row.GCPercent)
	}

	fmt.Println("\nSummary Statistics:")
	fmt.Printf("Minimum GC%%: %.2f\n", summary.Min)
	fmt.Printf("Maximum GC%%: %.2f\n", summary.Max)
	fmt.Printf("Average GC%%: %.2f\n", summary.Avg)

	if cfg.OutputCSV != "" {
		if err := report.SaveCSV(cfg.OutputCSV, rows); err != nil {
			logger.Error("failed to write CSV", "path", cfg.OutputCSV, "err", err)
		} else {
			logger.Info("wrote results", "format", "csv", "path", cfg.OutputCSV, "rows", len(rows))
			fmt.Printf("\nResults saved to %s\n", cfg.OutputCSV)
		}
	}
	if cfg.OutputXLSX != "" {
		if err := report.SaveXLSX(cfg.OutputXLSX, rows); err != nil {
			logger.Error("failed to write XLSX", "path", cfg.OutputXLSX, "err", err)
		} else {
			logger.Info("wrote results", "format", "xlsx", "path", cfg.OutputXLSX, "rows", len(rows))
			fmt.Printf("Results saved to %s\n", cfg.OutputXLSX)
		}
	}
}
