// Package tui implements an interactive Bubble Tea browser for ranked
// progressions and their chosen SATB realization, grounded on the
// ako-backing-tracks reference's display.TUIModel (Init/Update/View
// shape, lipgloss style vocabulary) but scoped to a static list
// instead of a live-playback clock.
package tui

import (
	"fmt"
	"strings"

	"harmonizer/harmony"
	"harmonizer/satb"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#00FFFF")
	secondaryColor = lipgloss.Color("#FFFF00")
	dimColor       = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	dimStyle = lipgloss.NewStyle().Foreground(dimColor)

	scoreStyle = lipgloss.NewStyle().Foreground(secondaryColor)
)

// Model is the Bubble Tea model for browsing scored progressions and,
// once one is selected, its SATB realization.
type Model struct {
	progressions []harmony.ScoredProgression
	cursor       int
	selected     *harmony.ScoredProgression
	realization  satb.Realization
	report       satb.ValidationReport
	realize      func(progression []string) (satb.Realization, satb.ValidationReport, error)
	err          error
	quitting     bool
}

// New builds a browser model over a ranked progression list. realize
// is called when the user presses enter on a progression, to produce
// its SATB realization and validation report.
func New(progressions []harmony.ScoredProgression, realize func([]string) (satb.Realization, satb.ValidationReport, error)) *Model {
	return &Model{progressions: progressions, realize: realize}
}

// Init starts the program with no background ticking: the view is static.
func (m *Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles key messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.progressions)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.progressions) {
			p := m.progressions[m.cursor]
			m.selected = &p
			realization, report, err := m.realize(p.Numerals)
			m.realization, m.report, m.err = realization, report, err
		}
	case "b":
		m.selected = nil
	}
	return m, nil
}

// View renders the current screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.selected != nil {
		return m.renderRealization()
	}
	return m.renderList()
}

func (m *Model) renderList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Ranked progressions"))
	b.WriteString("\n\n")
	for i, p := range m.progressions {
		line := fmt.Sprintf("%-24s %s", strings.Join(p.Numerals, " "), p.Style)
		score := scoreStyle.Render(fmt.Sprintf(" (%d)", p.Score))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + score + "\n")
		} else {
			b.WriteString(dimStyle.Render("  "+line) + score + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down to browse, enter to realize, q to quit"))
	return b.String()
}

func (m *Model) renderRealization() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SATB realization: " + strings.Join(m.selected.Numerals, " ")))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("error: %v\n", m.err))
		return b.String()
	}
	for i, v := range m.realization {
		b.WriteString(fmt.Sprintf("%2d  S:%-4s A:%-4s T:%-4s B:%-4s\n",
			i+1, v.Soprano.Name(), v.Alto.Name(), v.Tenor.Name(), v.Bass.Name()))
	}
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("score: %d", m.report.Score)))
	b.WriteString("\n")
	for _, w := range m.report.Warnings {
		b.WriteString(dimStyle.Render("  warning: " + w))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("b to go back, q to quit"))
	return b.String()
}
