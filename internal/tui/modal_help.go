package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderWithViewport renders the help modal using its viewport.
func (h *HelpModal) renderWithViewport(width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := modalWidth - 4   // modal borders
	contentHeight := modalHeight - 4 // header + status

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.help.Width = contentWidth
	h.viewport.SetContent(lipgloss.NewStyle().
		Width(contentWidth).
		Render(helpContent + "\n" + h.help.View(h.keys)))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(h.viewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("How to play")

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

const helpContent = `Memory

Sixteen cards lie face down in a 4x4 grid. Every picture appears on
exactly two cards.

Turn over two cards per turn:
  - If they match, both stay face up and you score 10 points.
  - If not, both are shown for a second and then turned back over.
    Clicks are ignored until that happens.

The game ends when all eight pairs are found. The timer stops and a
summary with your score and time is shown.

MOUSE:
  Click a card to turn it over.
`
