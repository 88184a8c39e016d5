package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is a full-screen view hosted by App. The board is the only page
// today; App routes every message to the active one.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav is returned from Update to switch the active page.
type PageNav struct {
	PageID string
}
