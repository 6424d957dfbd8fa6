package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/analysis"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/config"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/fasta"
	"github.com/Mahrukh-Haseeb/gc-content-analyzer/internal/report"
)

const histogramBins = 10

// theme holds one color palette. The light and dark palettes mirror the
// tool's web styling.
type theme struct {
	name      string
	primary   lipgloss.Color // headings, highlights
	secondary lipgloss.Color // GC share in charts
	accent    lipgloss.Color // AT share in charts
	surface   lipgloss.Color // panels, status bar
	text      lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
}

var (
	lightTheme = theme{
		name:      "Light",
		primary:   lipgloss.Color("#2E86C1"),
		secondary: lipgloss.Color("#2E86C1"),
		accent:    lipgloss.Color("#FFBB33"),
		surface:   lipgloss.Color("#F0F2F6"),
		text:      lipgloss.Color("#000000"),
		muted:     lipgloss.Color("#333333"),
		border:    lipgloss.Color("#888888"),
	}
	darkTheme = theme{
		name:      "Dark",
		primary:   lipgloss.Color("#4FC3F7"),
		secondary: lipgloss.Color("#4CAF50"),
		accent:    lipgloss.Color("#FF9999"),
		surface:   lipgloss.Color("#262730"),
		text:      lipgloss.Color("#FAFAFA"),
		muted:     lipgloss.Color("#9CA3AF"),
		border:    lipgloss.Color("#374151"),
	}
)

// styles derived from the active theme.
type styles struct {
	container lipgloss.Style
	title     lipgloss.Style
	statusBar lipgloss.Style
	help      lipgloss.Style
	muted     lipgloss.Style
	gcBar     lipgloss.Style
	atBar     lipgloss.Style
	sequence  lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		container: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.border),
		title: lipgloss.NewStyle().
			Foreground(t.primary).
			Bold(true),
		statusBar: lipgloss.NewStyle().
			Foreground(t.text).
			Background(t.surface).
			Padding(0, 1),
		help: lipgloss.NewStyle().
			Foreground(t.muted).
			Italic(true),
		muted: lipgloss.NewStyle().Foreground(t.muted),
		gcBar: lipgloss.NewStyle().Foreground(t.secondary),
		atBar: lipgloss.NewStyle().Foreground(t.accent),
		sequence: lipgloss.NewStyle().
			Foreground(t.text).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.border),
	}
}

type listItem struct {
	row analysis.Row
}

func (i listItem) FilterValue() string { return i.row.Name }

func (i listItem) Title() string { return i.row.Name }

func (i listItem) Description() string {
	return fmt.Sprintf("Length: %d    GC%%: %.2f", i.row.Length, i.row.GCPercent)
}

type mode int

const (
	modeSequence mode = iota
	modeBars
	modeHistogram
	modeComposition
)

const modeCount = 4

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "🧬 Sequence"
	case modeBars:
		return "📊 GC% per Sequence"
	case modeHistogram:
		return "📈 Distribution"
	case modeComposition:
		return "🥧 GC vs AT"
	default:
		return "Unknown"
	}
}

type model struct {
	list        list.Model
	rows        []analysis.Row
	bases       []string // aligned with rows
	summary     analysis.Summary
	skipped     []fasta.Skipped
	currentMode mode
	theme       theme
	styles      styles
	showHelp    bool
	width       int
	height      int
	status      string
	csvPath     string
	xlsxPath    string
}

func newModel(records []fasta.Record, skipped []fasta.Skipped, th theme) model {
	rows, summary, _ := analysis.Aggregate(records)

	items := make([]list.Item, len(rows))
	bases := make([]string, len(rows))
	for i, row := range rows {
		items[i] = listItem{row: row}
		bases[i] = records[i].Bases
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sequences"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	status := ""
	if len(skipped) > 0 {
		status = fmt.Sprintf("%d sequence(s) skipped (invalid or empty)", len(skipped))
	}

	return model{
		list:        l,
		rows:        rows,
		bases:       bases,
		summary:     summary,
		skipped:     skipped,
		currentMode: modeSequence,
		theme:       th,
		styles:      newStyles(th),
		status:      status,
		csvPath:     "gc_content_results.csv",
		xlsxPath:    "gc_content_results.xlsx",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// cycleMode advances to the next view mode, wrapping around.
func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % modeCount
	return m
}

func (m model) toggleTheme() model {
	if m.theme.name == lightTheme.name {
		m.theme = darkTheme
	} else {
		m.theme = lightTheme
	}
	m.styles = newStyles(m.theme)
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of the width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "t":
			return m.toggleTheme(), nil

		case "tab":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeSequence
			return m, nil

		case "2":
			m.currentMode = modeBars
			return m, nil

		case "3":
			m.currentMode = modeHistogram
			return m, nil

		case "4":
			m.currentMode = modeComposition
			return m, nil

		case "s":
			if err := report.SaveCSV(m.csvPath, m.rows); err != nil {
				m.status = fmt.Sprintf("CSV export failed: %v", err)
			} else {
				m.status = "Results saved to " + m.csvPath
			}
			return m, nil

		case "x":
			if err := report.SaveXLSX(m.xlsxPath, m.rows); err != nil {
				m.status = fmt.Sprintf("XLSX export failed: %v", err)
			} else {
				m.status = "Results saved to " + m.xlsxPath
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	return m.styles.container.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.rows) == 0 {
		return m.styles.container.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No sequences loaded")
	}

	var content string
	switch m.currentMode {
	case modeSequence:
		content = m.renderSequenceView()
	case modeBars:
		content = m.renderBarChart()
	case modeHistogram:
		content = m.renderHistogram()
	case modeComposition:
		content = m.renderComposition()
	}

	return m.styles.container.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(content)
}

func (m model) selectedIndex() int {
	idx := m.list.Index()
	if idx < 0 || idx >= len(m.rows) {
		return 0
	}
	return idx
}

func (m model) renderSequenceView() string {
	idx := m.selectedIndex()
	row := m.rows[idx]

	header := m.styles.title.Render(row.Name)
	meta := m.styles.muted.Render(fmt.Sprintf("Length: %d    GC%%: %.2f", row.Length, row.GCPercent))

	body := m.styles.sequence.
		Width(m.width*2/3 - 6).
		Render(m.bases[idx])

	return lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body)
}

// barLine renders a labeled horizontal bar filled proportionally to pct.
func (m model) barLine(label string, pct float64, width int, st lipgloss.Style) string {
	if width < 10 {
		width = 10
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := st.Render(strings.Repeat("█", filled)) + m.styles.muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%-14.14s %s %6.2f", label, bar, pct)
}

func (m model) renderBarChart() string {
	width := m.width*2/3 - 30
	lines := []string{m.styles.title.Render("GC% per Sequence"), ""}
	for _, row := range m.rows {
		lines = append(lines, m.barLine(row.Name, row.GCPercent, width, m.styles.gcBar))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderHistogram() string {
	counts := analysis.Histogram(m.rows, histogramBins)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	width := m.width*2/3 - 30
	if width < 10 {
		width = 10
	}
	lines := []string{m.styles.title.Render("GC Content Distribution"), ""}
	binWidth := 100 / histogramBins
	for i, c := range counts {
		filled := 0
		if max > 0 {
			filled = c * width / max
		}
		bar := m.styles.gcBar.Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("%3d-%3d%%  %s %d", i*binWidth, (i+1)*binWidth, bar, c))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderComposition() string {
	idx := m.selectedIndex()
	row := m.rows[idx]
	at := 100 - row.GCPercent

	width := m.width*2/3 - 30
	lines := []string{
		m.styles.title.Render("GC vs AT Composition"),
		m.styles.muted.Render(row.Name),
		"",
		m.barLine("GC%", row.GCPercent, width, m.styles.gcBar),
		m.barLine("AT%", at, width, m.styles.atBar),
	}
	return strings.Join(lines, "\n")
}

func (m model) renderStatusBar() string {
	left := fmt.Sprintf("🧬 %d/%d sequences", m.selectedIndex()+1, len(m.rows))
	center := fmt.Sprintf("Min %.2f  Max %.2f  Avg %.2f  |  Mode: %s  |  Theme: %s",
		m.summary.Min, m.summary.Max, m.summary.Avg, m.currentMode, m.theme.name)
	right := "'h' help • 'q' quit"
	if m.status != "" {
		right = m.status
	}

	content := fmt.Sprintf("%s  %s  %s", left, center, right)
	return m.styles.statusBar.
		Width(m.width).
		Render(content)
}

func (m model) renderHelpModal() string {
	helpContent := `🧬 GC Content Analyzer - Help

Navigation:
  ↑/↓, j/k     Navigate sequences
  /            Filter by name

View Modes:
  1            Sequence bases
  2            GC% bar chart
  3            GC distribution histogram
  4            GC vs AT composition
  Tab          Cycle view modes

Actions:
  t            Toggle light/dark theme
  s            Save results as CSV
  x            Save results as XLSX

General:
  h            Toggle this help
  q, Ctrl+C    Quit

Current Mode: ` + m.currentMode.String() + `
Sequences: ` + fmt.Sprintf("%d", len(m.rows)) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.primary).
		Padding(1, 2).
		Background(m.theme.surface).
		Foreground(m.theme.text).
		Width(60)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(helpContent),
	)
}

func main() {
	inputFlag := flag.String("in", "", "input FASTA or plain sequence file path")
	configFlag := flag.String("config", "", "path to config.json (optional)")
	flag.Parse()

	cfg, _ := config.LoadConfig(*configFlag)
	if flag.NArg() > 0 {
		cfg.InputPath = flag.Arg(0)
	}
	if *inputFlag != "" {
		cfg.InputPath = *inputFlag
	}
	if cfg.InputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: tui [-in] <sequences.fasta>")
		os.Exit(2)
	}

	records, skipped, err := fasta.ParseFile(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	th := lightTheme
	if strings.EqualFold(cfg.Theme, "dark") {
		th = darkTheme
	}

	m := newModel(records, skipped, th)
	if cfg.OutputCSV != "" {
		m.csvPath = cfg.OutputCSV
	}
	if cfg.OutputXLSX != "" {
		m.xlsxPath = cfg.OutputXLSX
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
