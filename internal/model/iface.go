package model

import "time"

// Renderer receives presentation instructions from the game engine.
// Implementations are called on the engine's execution context and must not
// call back into the engine.
type Renderer interface {
	LayoutBoard(rows, cols int)
	ShowFace(position, face int)
	ShowBack(position int)
	SetScoreText(score int)
	SetTimeText(elapsed string)
	SetStatusText(message string)
	ShowEndOfGameDialog(score int, elapsed string)
}

// Clock supplies wall-clock timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CancelFunc cancels a scheduled task. Calling it after the task ran, or
// more than once, is a no-op.
type CancelFunc func()

// Scheduler runs one-shot delayed tasks on the same serialized execution
// context as every other engine call.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) CancelFunc
}
