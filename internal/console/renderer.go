package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/tinytelemetry/memory/internal/model"
)

// Renderer is a line-oriented model.Renderer. It keeps the visible state of
// every card and prints instructions as they arrive; timer updates are only
// stored and shown when the board is printed.
type Renderer struct {
	out  io.Writer
	rows int
	cols int

	cells  []int // face value, or hidden
	score  int
	time   string
	status string
}

const hidden = -1

// NewRenderer creates a renderer that writes to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, time: model.FormatElapsed(0)}
}

// FaceLabel maps a face value to a single letter.
func FaceLabel(face int) string {
	if face < 0 || face >= 26 {
		return "?"
	}
	return string(rune('A' + face))
}

func (r *Renderer) LayoutBoard(rows, cols int) {
	r.rows, r.cols = rows, cols
	r.cells = make([]int, rows*cols)
	for i := range r.cells {
		r.cells[i] = hidden
	}
}

func (r *Renderer) ShowFace(position, face int) {
	if position < 0 || position >= len(r.cells) {
		return
	}
	r.cells[position] = face
	fmt.Fprintf(r.out, "card %d: %s\n", position, FaceLabel(face))
}

func (r *Renderer) ShowBack(position int) {
	if position < 0 || position >= len(r.cells) {
		return
	}
	r.cells[position] = hidden
}

func (r *Renderer) SetScoreText(score int) {
	r.score = score
	fmt.Fprintln(r.out, model.ScoreLabel(score))
}

func (r *Renderer) SetTimeText(elapsed string) {
	r.time = elapsed
}

func (r *Renderer) SetStatusText(message string) {
	r.status = message
	fmt.Fprintln(r.out, message)
	if message == model.StatusStarted {
		r.PrintBoard()
	}
}

func (r *Renderer) ShowEndOfGameDialog(score int, elapsed string) {
	lines := strings.Split(model.SummaryText(score, elapsed), "\n")
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	border := "+" + strings.Repeat("-", width+2) + "+"
	fmt.Fprintln(r.out, border)
	for _, l := range lines {
		fmt.Fprintf(r.out, "| %-*s |\n", width, l)
	}
	fmt.Fprintln(r.out, border)
}

// PrintBoard writes the labels and the card grid. Hidden cards show their
// position so the player knows what to type.
func (r *Renderer) PrintBoard() {
	fmt.Fprintf(r.out, "%s  %s\n", model.ScoreLabel(r.score), model.TimeLabel(r.time))
	for row := 0; row < r.rows; row++ {
		cells := make([]string, r.cols)
		for col := 0; col < r.cols; col++ {
			pos := row*r.cols + col
			if face := r.cells[pos]; face != hidden {
				cells[col] = fmt.Sprintf("[ %s]", FaceLabel(face))
			} else {
				cells[col] = fmt.Sprintf("[%2d]", pos)
			}
		}
		fmt.Fprintln(r.out, strings.Join(cells, " "))
	}
}
