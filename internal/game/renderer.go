package game

import "github.com/tinytelemetry/memory/internal/model"

// MultiRenderer forwards every instruction to each renderer in order.
type MultiRenderer []model.Renderer

func (m MultiRenderer) LayoutBoard(rows, cols int) {
	for _, r := range m {
		r.LayoutBoard(rows, cols)
	}
}

func (m MultiRenderer) ShowFace(position, face int) {
	for _, r := range m {
		r.ShowFace(position, face)
	}
}

func (m MultiRenderer) ShowBack(position int) {
	for _, r := range m {
		r.ShowBack(position)
	}
}

func (m MultiRenderer) SetScoreText(score int) {
	for _, r := range m {
		r.SetScoreText(score)
	}
}

func (m MultiRenderer) SetTimeText(elapsed string) {
	for _, r := range m {
		r.SetTimeText(elapsed)
	}
}

func (m MultiRenderer) SetStatusText(message string) {
	for _, r := range m {
		r.SetStatusText(message)
	}
}

func (m MultiRenderer) ShowEndOfGameDialog(score int, elapsed string) {
	for _, r := range m {
		r.ShowEndOfGameDialog(score, elapsed)
	}
}
