package game

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/tinytelemetry/memory/internal/model"
)

const noSelection = -1

// Config holds tunable engine parameters.
type Config struct {
	MismatchDelay time.Duration
	// Seed fixes the shuffle sequence. Zero picks a random seed.
	Seed uint64
}

// Engine owns board, turn, score and timer state for one game session and
// drives a Renderer. It is not safe for concurrent use: every method,
// including tasks handed to the Scheduler, must run on one serialized
// execution context.
type Engine struct {
	renderer model.Renderer
	clock    model.Clock
	sched    model.Scheduler
	delay    time.Duration
	rng      *rand.Rand

	id     string
	board  Board
	first  int
	second int

	inputEnabled bool
	score        int
	pairsFound   int
	timer        gameClock
	status       model.GameStatus

	// cancelResolution is set while a mismatch resolution is scheduled.
	cancelResolution model.CancelFunc
}

// New creates an engine and starts the first game.
func New(renderer model.Renderer, clock model.Clock, sched model.Scheduler, cfg Config) *Engine {
	if clock == nil {
		clock = model.SystemClock{}
	}
	if cfg.MismatchDelay <= 0 {
		cfg.MismatchDelay = model.DefaultMismatchDelay
	}
	e := &Engine{
		renderer: renderer,
		clock:    clock,
		sched:    sched,
		delay:    cfg.MismatchDelay,
		rng:      newRand(cfg.Seed),
		first:    noSelection,
		second:   noSelection,
	}
	e.NewGame()
	return e
}

// NewGame discards the current game and deals a fresh shuffled board.
// A pending mismatch resolution from the previous game is cancelled.
func (e *Engine) NewGame() {
	e.cancelPendingResolution()

	e.id = uuid.NewString()
	e.board = NewBoard(e.rng)
	e.first, e.second = noSelection, noSelection
	e.score = 0
	e.pairsFound = 0
	e.status = model.InProgress
	e.timer.restart(e.clock.Now())
	e.inputEnabled = true

	e.renderer.LayoutBoard(model.GridRows, model.GridCols)
	for pos := range e.board.Cards {
		e.renderer.ShowBack(pos)
	}
	e.renderer.SetScoreText(e.score)
	e.renderer.SetTimeText(model.FormatElapsed(0))
	e.renderer.SetStatusText(model.StatusStarted)

	log.Printf("game: %s started", e.id)
}

// Select handles a click on the card at position. It reports whether the
// click was accepted; rejected clicks leave all state untouched.
func (e *Engine) Select(position int) bool {
	if !e.inputEnabled || position < 0 || position >= len(e.board.Cards) {
		return false
	}
	card := &e.board.Cards[position]
	if card.State == model.Matched || position == e.first {
		return false
	}

	card.State = model.FaceUp
	e.renderer.ShowFace(position, card.Face)

	if e.first == noSelection {
		e.first = position
		return true
	}

	e.second = position
	e.inputEnabled = false
	if e.board.Cards[e.first].Face == card.Face {
		e.handleMatch()
	} else {
		e.handleMismatch()
	}
	return true
}

func (e *Engine) handleMatch() {
	e.board.Cards[e.first].State = model.Matched
	e.board.Cards[e.second].State = model.Matched
	e.score += model.ScoreIncrement
	e.pairsFound++

	e.renderer.SetScoreText(e.score)
	e.renderer.SetStatusText(model.StatusMatch)

	if e.pairsFound == model.PairCount {
		e.endGame()
		return
	}
	e.clearTurn()
}

func (e *Engine) handleMismatch() {
	e.renderer.SetStatusText(model.StatusMismatch)

	first, second := e.first, e.second
	e.cancelResolution = e.sched.AfterFunc(e.delay, func() {
		e.resolveMismatch(first, second)
	})
}

// resolveMismatch turns a mismatched pair back over once the delay elapses.
func (e *Engine) resolveMismatch(first, second int) {
	e.cancelResolution = nil
	if first != e.first || second != e.second {
		log.Printf("game: %s dropped stale mismatch resolution (%d, %d)", e.id, first, second)
		return
	}
	for _, pos := range []int{first, second} {
		e.board.Cards[pos].State = model.FaceDown
		e.renderer.ShowBack(pos)
	}
	e.clearTurn()
}

func (e *Engine) clearTurn() {
	e.first, e.second = noSelection, noSelection
	e.inputEnabled = true
}

func (e *Engine) endGame() {
	elapsed := model.FormatElapsed(e.timer.stop(e.clock.Now()))
	e.inputEnabled = false
	e.first, e.second = noSelection, noSelection
	e.status = model.Finished

	e.renderer.SetTimeText(elapsed)
	e.renderer.ShowEndOfGameDialog(e.score, elapsed)
	e.renderer.SetStatusText(model.StatusGameOver)

	log.Printf("game: %s finished score=%d time=%s", e.id, e.score, elapsed)
}

// Tick refreshes the timer label. It does nothing once the clock stopped.
func (e *Engine) Tick(now time.Time) {
	d, running := e.timer.observe(now)
	if !running {
		return
	}
	e.renderer.SetTimeText(model.FormatElapsed(d))
}

// Close stops the clock, cancels any pending resolution and disables input.
// The engine can be revived with NewGame.
func (e *Engine) Close() {
	e.cancelPendingResolution()
	e.timer.stop(e.clock.Now())
	e.inputEnabled = false
}

func (e *Engine) cancelPendingResolution() {
	if e.cancelResolution == nil {
		return
	}
	e.cancelResolution()
	e.cancelResolution = nil
	log.Printf("game: %s cancelled pending mismatch resolution", e.id)
}

// ID returns the current game's identifier.
func (e *Engine) ID() string { return e.id }

// Status reports whether the current game is still in progress.
func (e *Engine) Status() model.GameStatus { return e.status }

// Card returns the card at position.
func (e *Engine) Card(position int) (model.Card, bool) {
	if position < 0 || position >= len(e.board.Cards) {
		return model.Card{}, false
	}
	return e.board.Cards[position], true
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() model.Snapshot {
	var selected []int
	for _, pos := range []int{e.first, e.second} {
		if pos != noSelection {
			selected = append(selected, pos)
		}
	}
	return model.Snapshot{
		GameID:            e.id,
		Cards:             e.board.clone(),
		Selected:          selected,
		Score:             e.score,
		PairsFound:        e.pairsFound,
		Elapsed:           e.timer.elapsed,
		Status:            e.status,
		InputEnabled:      e.inputEnabled,
		ResolutionPending: e.cancelResolution != nil,
		ClockRunning:      e.timer.running,
	}
}
