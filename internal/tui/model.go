package tui

import (
	"time"

	"github.com/tinytelemetry/memory/internal/game"
	"github.com/tinytelemetry/memory/internal/model"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// BoardPageID identifies the game board page.
const BoardPageID = "board"

// Options configures a BoardPage.
type Options struct {
	Clock         model.Clock
	MismatchDelay time.Duration
	TickInterval  time.Duration
	Seed          uint64
	Skin          Skin
	// Observers receive every renderer instruction the page receives.
	Observers []model.Renderer
}

// boardView is what the renderer has been told to show.
type boardView struct {
	rows   int
	cols   int
	faces  []int // face value per position, or faceHidden
	score  string
	time   string
	status string
}

const faceHidden = -1

// BoardPage is the game screen. It hosts the engine on Bubble Tea's event
// loop and doubles as the engine's renderer.
type BoardPage struct {
	ModalStack

	engine       *game.Engine
	sched        *teaScheduler
	keys         KeyMap
	help         help.Model
	skin         Skin
	tickInterval time.Duration

	board  boardView
	cursor int
	width  int
	height int
}

// TickMsg represents a periodic timer update.
type TickMsg time.Time

// NewBoardPage creates the page and deals the first game.
func NewBoardPage(opts Options) *BoardPage {
	if opts.TickInterval <= 0 {
		opts.TickInterval = model.DefaultTickInterval
	}
	if len(opts.Skin.Faces) == 0 {
		opts.Skin = DefaultSkin()
	}

	p := &BoardPage{
		sched:        newTeaScheduler(),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		skin:         opts.Skin,
		tickInterval: opts.TickInterval,
	}

	var renderer model.Renderer = p
	if len(opts.Observers) > 0 {
		renderer = append(game.MultiRenderer{p}, opts.Observers...)
	}
	p.engine = game.New(renderer, opts.Clock, p.sched, game.Config{
		MismatchDelay: opts.MismatchDelay,
		Seed:          opts.Seed,
	})
	return p
}

func (p *BoardPage) ID() string { return BoardPageID }

func (p *BoardPage) Init() tea.Cmd {
	return tea.Batch(p.tick(), p.sched.drain())
}

func (p *BoardPage) tick() tea.Cmd {
	return tea.Tick(p.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Close stops the game and cancels its pending work.
func (p *BoardPage) Close() {
	p.engine.Close()
}

// Engine exposes the hosted engine for inspection.
func (p *BoardPage) Engine() *game.Engine { return p.engine }

// Renderer implementation. The engine only calls these from Update.

func (p *BoardPage) LayoutBoard(rows, cols int) {
	p.board.rows, p.board.cols = rows, cols
	p.board.faces = make([]int, rows*cols)
	for i := range p.board.faces {
		p.board.faces[i] = faceHidden
	}
	if p.cursor >= len(p.board.faces) {
		p.cursor = 0
	}
	p.ModalStack.Clear()
}

func (p *BoardPage) ShowFace(position, face int) {
	if position >= 0 && position < len(p.board.faces) {
		p.board.faces[position] = face
	}
}

func (p *BoardPage) ShowBack(position int) {
	if position >= 0 && position < len(p.board.faces) {
		p.board.faces[position] = faceHidden
	}
}

func (p *BoardPage) SetScoreText(score int) {
	p.board.score = model.ScoreLabel(score)
}

func (p *BoardPage) SetTimeText(elapsed string) {
	p.board.time = model.TimeLabel(elapsed)
}

func (p *BoardPage) SetStatusText(message string) {
	p.board.status = message
}

func (p *BoardPage) ShowEndOfGameDialog(score int, elapsed string) {
	p.Push(NewSummaryModal(score, elapsed, p.skin))
}
