package httpserver

import (
	"sync"

	"github.com/tinytelemetry/memory/internal/model"
)

// CardView is the API representation of a card. Face is only present while
// the card is showing.
type CardView struct {
	Position int  `json:"position"`
	Face     *int `json:"face,omitempty"`
	FaceUp   bool `json:"face_up"`
}

// SummaryView is the end-of-game summary, set once the game is finished.
type SummaryView struct {
	Score int    `json:"score"`
	Time  string `json:"time"`
}

// GameView is the API representation of the visible game.
type GameView struct {
	Rows     int          `json:"rows"`
	Cols     int          `json:"cols"`
	Cards    []CardView   `json:"cards"`
	Score    int          `json:"score"`
	Time     string       `json:"time"`
	Status   string       `json:"status"`
	Finished bool         `json:"finished"`
	Games    int          `json:"games"`
	Summary  *SummaryView `json:"summary,omitempty"`
}

// StatusBoard is a model.Renderer that rebuilds what a player would see from
// renderer instructions alone. It is safe to read from HTTP handlers while
// the engine writes to it from its own context.
type StatusBoard struct {
	mu    sync.RWMutex
	view  GameView
	faces []int
}

// NewStatusBoard creates an empty board.
func NewStatusBoard() *StatusBoard {
	return &StatusBoard{view: GameView{Time: model.FormatElapsed(0)}}
}

func (b *StatusBoard) LayoutBoard(rows, cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.view.Rows, b.view.Cols = rows, cols
	b.faces = make([]int, rows*cols)
	for i := range b.faces {
		b.faces[i] = -1
	}
	b.view.Finished = false
	b.view.Summary = nil
	b.view.Games++
}

func (b *StatusBoard) ShowFace(position, face int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if position >= 0 && position < len(b.faces) {
		b.faces[position] = face
	}
}

func (b *StatusBoard) ShowBack(position int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if position >= 0 && position < len(b.faces) {
		b.faces[position] = -1
	}
}

func (b *StatusBoard) SetScoreText(score int) {
	b.mu.Lock()
	b.view.Score = score
	b.mu.Unlock()
}

func (b *StatusBoard) SetTimeText(elapsed string) {
	b.mu.Lock()
	b.view.Time = elapsed
	b.mu.Unlock()
}

func (b *StatusBoard) SetStatusText(message string) {
	b.mu.Lock()
	b.view.Status = message
	b.mu.Unlock()
}

func (b *StatusBoard) ShowEndOfGameDialog(score int, elapsed string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.view.Finished = true
	b.view.Summary = &SummaryView{Score: score, Time: elapsed}
}

// View returns a copy of the current view.
func (b *StatusBoard) View() GameView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := b.view
	v.Cards = make([]CardView, len(b.faces))
	for i, face := range b.faces {
		cv := CardView{Position: i}
		if face >= 0 {
			f := face
			cv.Face = &f
			cv.FaceUp = true
		}
		v.Cards[i] = cv
	}
	if b.view.Summary != nil {
		s := *b.view.Summary
		v.Summary = &s
	}
	return v
}
