package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained modal that owns its own Update/View lifecycle.
// Modals are kept on a stack by the board page; the topmost modal receives
// all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// ModalStack holds open modals, topmost last.
type ModalStack struct {
	modals []Modal
}

// Push opens m unless a modal with the same ID is already open.
func (s *ModalStack) Push(m Modal) {
	for _, open := range s.modals {
		if open.ID() == m.ID() {
			return
		}
	}
	s.modals = append(s.modals, m)
}

// Pop closes the topmost modal.
func (s *ModalStack) Pop() {
	if len(s.modals) > 0 {
		s.modals = s.modals[:len(s.modals)-1]
	}
}

// Top returns the topmost modal, or nil.
func (s *ModalStack) Top() Modal {
	if len(s.modals) == 0 {
		return nil
	}
	return s.modals[len(s.modals)-1]
}

// Clear closes every modal.
func (s *ModalStack) Clear() { s.modals = nil }
