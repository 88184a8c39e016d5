package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages. Every engine call happens here, so ticks, delayed
// tasks and input are serialized by Bubble Tea's event loop.
func (p *BoardPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width
		return nil, nil

	case TickMsg:
		p.engine.Tick(time.Time(msg))
		return p.tick(), nil

	case taskDueMsg:
		p.sched.run(msg.id)
		return p.sched.drain(), nil

	case tea.KeyMsg:
		if modal := p.Top(); modal != nil {
			pop, cmd := modal.Update(msg)
			if pop {
				p.Pop()
			}
			return cmd, nil
		}
		return p.handleKeyPress(msg), nil

	case tea.MouseMsg:
		if modal := p.Top(); modal != nil {
			pop, cmd := modal.Update(msg)
			if pop {
				p.Pop()
			}
			return cmd, nil
		}
		return p.handleMouseEvent(msg), nil
	}

	return nil, nil
}

func (p *BoardPage) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.Close()
		return tea.Quit
	case key.Matches(msg, p.keys.Help):
		p.Push(NewHelpModal(p.keys))
	case key.Matches(msg, p.keys.Reset):
		p.engine.NewGame()
	case key.Matches(msg, p.keys.Select):
		p.engine.Select(p.cursor)
	case key.Matches(msg, p.keys.Up):
		p.moveCursor(-1, 0)
	case key.Matches(msg, p.keys.Down):
		p.moveCursor(1, 0)
	case key.Matches(msg, p.keys.Left):
		p.moveCursor(0, -1)
	case key.Matches(msg, p.keys.Right):
		p.moveCursor(0, 1)
	}
	return p.sched.drain()
}

// moveCursor moves the cursor by whole rows/columns, stopping at the edges.
func (p *BoardPage) moveCursor(dRow, dCol int) {
	if p.board.cols == 0 {
		return
	}
	row := p.cursor/p.board.cols + dRow
	col := p.cursor%p.board.cols + dCol
	if row < 0 || row >= p.board.rows || col < 0 || col >= p.board.cols {
		return
	}
	p.cursor = row*p.board.cols + col
}

// handleMouseEvent turns a left click on a card into a selection.
func (p *BoardPage) handleMouseEvent(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	pos, ok := p.cardAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	p.cursor = pos
	p.engine.Select(pos)
	return p.sched.drain()
}
