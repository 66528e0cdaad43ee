package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "covsight.dev/pkg/covsight/internal/model"
)

const (
	lowCoverage    = 50.0
	mediumCoverage = 80.0

	defaultItemsPerPage = 10
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle  = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Top    key.Binding
	Bottom key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PgUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
	PgDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) help() string {
	bindings := []key.Binding{k.Up, k.Down, k.PgUp, k.PgDown, k.Top, k.Bottom, k.Quit}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	status io.Writer
}

// NewTUI creates a new TUI. Tables go to output, status lines to status.
func NewTUI(output, status io.Writer) *TUI {
	return &TUI{output: output, status: status}
}

// DisplaySummary renders the coverage table, paging it when it does not fit
// the terminal.
func (p *TUI) DisplaySummary(ctx context.Context, report m.CoverageReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newSummaryModel(buildFileRows(report), report.Covered(), report.Coverable(), report.Percent())

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayExported prints the destination of a finished export.
func (p *TUI) DisplayExported(ctx context.Context, dest m.Path, format m.OutputType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(p.status, "%s %s report written to %s\n", highStyle.Render("✔"), format, dest)

	return err
}

type summaryModel struct {
	rows      []fileRow
	covered   int
	coverable int
	percent   float64
	height    int
	width     int
	offset    int
	quitting  bool
}

func newSummaryModel(rows []fileRow, covered, coverable int, percent float64) summaryModel {
	return summaryModel{
		rows:      rows,
		covered:   covered,
		coverable: coverable,
		percent:   percent,
	}
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width
		sm.offset = min(sm.offset, sm.maxOffset())

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm summaryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		sm.quitting = true
		return sm, tea.Quit
	case key.Matches(msg, keys.Down):
		sm.offset++
	case key.Matches(msg, keys.Up):
		sm.offset--
	case key.Matches(msg, keys.PgDown):
		sm.offset += sm.itemsPerPage()
	case key.Matches(msg, keys.PgUp):
		sm.offset -= sm.itemsPerPage()
	case key.Matches(msg, keys.Top):
		sm.offset = 0
	case key.Matches(msg, keys.Bottom):
		sm.offset = sm.maxOffset()
	}

	sm.offset = max(0, min(sm.offset, sm.maxOffset()))

	return sm, nil
}

// itemsPerPage calculates how many rows fit on screen.
func (sm summaryModel) itemsPerPage() int {
	if sm.height == 0 {
		return defaultItemsPerPage
	}

	// title, blank, header, blank, total, blank, page, help
	const reserved = 8

	return max(1, sm.height-reserved)
}

func (sm summaryModel) maxOffset() int {
	return max(0, len(sm.rows)-sm.itemsPerPage())
}

func (sm summaryModel) needsPagination() bool {
	return sm.height > 0 && len(sm.rows) > sm.itemsPerPage()
}

func (sm summaryModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("covsight coverage summary"))
	b.WriteString("\n\n")

	if len(sm.rows) == 0 {
		b.WriteString("  " + emptyStyle.Render("No coverage data") + "\n")
		return b.String()
	}

	width := pathColumnWidth(sm.rows)
	fmt.Fprintf(&b, "  %-*s %9s %9s %8s\n", width, "Path", "Covered", "Coverable", "%")

	paginate := sm.needsPagination()
	start, end := 0, len(sm.rows)

	if paginate {
		start = sm.offset
		end = min(start+sm.itemsPerPage(), len(sm.rows))
	}

	for _, row := range sm.rows[start:end] {
		fmt.Fprintf(&b, "  %-*s %9d %9d %s\n",
			width, row.path, row.covered, row.coverable,
			rateStyle(row).Render(fmt.Sprintf("%8s", formatPercent(row.percent))))
	}

	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("  Total: %d/%d lines covered (%s) across %d file(s)",
		sm.covered, sm.coverable, formatPercent(sm.percent), len(sm.rows))))
	b.WriteString("\n")

	if paginate {
		perPage := sm.itemsPerPage()
		currentPage := sm.offset/perPage + 1
		totalPages := (len(sm.rows) + perPage - 1) / perPage

		fmt.Fprintf(&b, "\n  Page %d/%d | Showing %d-%d of %d\n", currentPage, totalPages, start+1, end, len(sm.rows))
		b.WriteString("  " + helpStyle.Render(keys.help()) + "\n")
	}

	return b.String()
}

func rateStyle(row fileRow) lipgloss.Style {
	switch {
	case row.coverable == 0:
		return emptyStyle
	case row.percent < lowCoverage:
		return lowStyle
	case row.percent < mediumCoverage:
		return mediumStyle
	default:
		return highStyle
	}
}

func pathColumnWidth(rows []fileRow) int {
	width := len("Path")
	for _, row := range rows {
		width = max(width, lipgloss.Width(row.path))
	}

	return width
}
