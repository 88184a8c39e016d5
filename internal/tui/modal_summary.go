package tui

import (
	"strings"

	"github.com/tinytelemetry/memory/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SummaryModal is the end-of-game dialog. It swallows all input until the
// player confirms it.
type SummaryModal struct {
	score   int
	elapsed string
	accent  lipgloss.Color
}

func NewSummaryModal(score int, elapsed string, skin Skin) *SummaryModal {
	return &SummaryModal{score: score, elapsed: elapsed, accent: lipgloss.Color(skin.Accent)}
}

func (s *SummaryModal) ID() string { return "summary" }

func (s *SummaryModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", "escape", " ":
			return true, nil
		}
	}
	return false, nil
}

func (s *SummaryModal) View(width, height int) string {
	lines := strings.Split(model.SummaryText(s.score, s.elapsed), "\n")

	header := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Render(lines[0])
	body := lipgloss.NewStyle().
		Foreground(ColorWhite).
		Render(strings.Join(lines[1:], "\n"))
	hint := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("enter: OK")

	box := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.accent).
		Render(lipgloss.JoinVertical(lipgloss.Center, header, "", body, "", hint))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
