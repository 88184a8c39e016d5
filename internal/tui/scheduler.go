package tui

import (
	"time"

	"github.com/tinytelemetry/memory/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// taskDueMsg is delivered when a scheduled task's delay has elapsed.
type taskDueMsg struct {
	id uint64
}

// teaScheduler implements model.Scheduler on top of Bubble Tea. Tasks are
// turned into tea.Tick commands and run from Update when their taskDueMsg
// arrives, so they share the program's single event loop with every other
// engine call. It must only be used from Update.
type teaScheduler struct {
	nextID uint64
	tasks  map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{tasks: make(map[uint64]func())}
}

func (s *teaScheduler) AfterFunc(delay time.Duration, fn func()) model.CancelFunc {
	s.nextID++
	id := s.nextID
	s.tasks[id] = fn
	s.queued = append(s.queued, tea.Tick(delay, func(time.Time) tea.Msg {
		return taskDueMsg{id: id}
	}))
	return func() { delete(s.tasks, id) }
}

// drain returns the commands for tasks scheduled since the last drain.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// run executes the task with id. Cancelled or unknown tasks are skipped.
func (s *teaScheduler) run(id uint64) bool {
	fn, ok := s.tasks[id]
	if !ok {
		return false
	}
	delete(s.tasks, id)
	fn()
	return true
}

func (s *teaScheduler) pending() int { return len(s.tasks) }
