package tui

import (
	"fmt"
	"strings"

	"github.com/tinytelemetry/memory/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Board geometry in terminal cells. Each card is a bordered box.
const (
	cardInnerWidth  = 7
	cardInnerHeight = 3
	cardWidth       = cardInnerWidth + 2
	cardHeight      = cardInnerHeight + 2
	cardGap         = 1

	boardLeft = 2
	boardTop  = 3 // title, labels, blank line
)

func boardWidth(cols int) int  { return cols*cardWidth + (cols-1)*cardGap }
func boardHeight(rows int) int { return rows * cardHeight }

// cardAt resolves a terminal cell to a card position.
func (p *BoardPage) cardAt(x, y int) (int, bool) {
	x -= boardLeft
	y -= boardTop
	if x < 0 || y < 0 || p.board.cols == 0 {
		return 0, false
	}
	col := x / (cardWidth + cardGap)
	if x%(cardWidth+cardGap) >= cardWidth {
		return 0, false
	}
	row := y / cardHeight
	if row >= p.board.rows || col >= p.board.cols {
		return 0, false
	}
	return row*p.board.cols + col, true
}

// View renders the board page.
func (p *BoardPage) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Initializing board..."
	}

	// A modal on the stack renders full-screen.
	if modal := p.Top(); modal != nil {
		return modal.View(width, height)
	}

	minWidth := boardLeft + boardWidth(p.board.cols) + 2
	minHeight := boardTop + boardHeight(p.board.rows) + 4
	if width < minWidth || height < minHeight {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight)
	}

	return p.renderBoard(width)
}

func (p *BoardPage) renderBoard(width int) string {
	accent := lipgloss.Color(p.skin.Accent)

	title := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Render("Memory")

	labelStyle := lipgloss.NewStyle().Foreground(ColorWhite)
	labels := labelStyle.Render(p.board.score) + "    " + labelStyle.Render(p.board.time)

	rows := make([]string, p.board.rows)
	for r := 0; r < p.board.rows; r++ {
		cards := make([]string, 0, p.board.cols*2)
		for c := 0; c < p.board.cols; c++ {
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, p.renderCard(r*p.board.cols+c))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	grid := lipgloss.NewStyle().
		MarginLeft(boardLeft).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	status := lipgloss.NewStyle().
		Foreground(p.statusColor()).
		Render(p.board.status)

	footer := p.help.View(p.keys)

	indent := strings.Repeat(" ", boardLeft)
	return lipgloss.JoinVertical(lipgloss.Left,
		indent+title,
		indent+labels,
		"",
		grid,
		"",
		indent+status,
		indent+footer,
	)
}

func (p *BoardPage) renderCard(pos int) string {
	border := lipgloss.Color(p.skin.Border)
	if card, ok := p.engine.Card(pos); ok && card.State == model.Matched {
		border = lipgloss.Color(p.skin.Matched)
	}
	borderStyle := lipgloss.RoundedBorder()
	if pos == p.cursor {
		border = lipgloss.Color(p.skin.Cursor)
		borderStyle = lipgloss.ThickBorder()
	}

	content := lipgloss.NewStyle().Foreground(ColorGray).Render(p.skin.Back)
	if face := p.board.faces[pos]; face != faceHidden {
		content = p.skin.face(face)
	}

	return lipgloss.NewStyle().
		Width(cardInnerWidth).
		Height(cardInnerHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Border(borderStyle).
		BorderForeground(border).
		Render(content)
}

func (p *BoardPage) statusColor() lipgloss.Color {
	switch p.board.status {
	case model.StatusMatch:
		return ColorGreen
	case model.StatusMismatch:
		return ColorRed
	case model.StatusGameOver:
		return ColorYellow
	default:
		return ColorBlue
	}
}
