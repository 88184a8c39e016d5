package model

import (
	"fmt"
	"time"
)

// CardState is the visibility of a single card.
type CardState int

const (
	FaceDown CardState = iota
	FaceUp
	Matched
)

func (s CardState) String() string {
	switch s {
	case FaceDown:
		return "face-down"
	case FaceUp:
		return "face-up"
	case Matched:
		return "matched"
	default:
		return fmt.Sprintf("CardState(%d)", int(s))
	}
}

// Card is one board slot. Position is fixed for the lifetime of a game;
// Face is in [0, PairCount) and appears on exactly two cards.
type Card struct {
	Position int
	Face     int
	State    CardState
}

// GameStatus reports whether a game is still being played.
type GameStatus int

const (
	InProgress GameStatus = iota
	Finished
)

func (s GameStatus) String() string {
	if s == Finished {
		return "finished"
	}
	return "in-progress"
}

// Snapshot is a read-only copy of engine state.
type Snapshot struct {
	GameID            string
	Cards             []Card
	Selected          []int
	Score             int
	PairsFound        int
	Elapsed           time.Duration
	Status            GameStatus
	InputEnabled      bool
	ResolutionPending bool
	ClockRunning      bool
}

// FormatElapsed renders d as mm:ss. Minutes keep counting past 59 and
// sub-second precision is truncated. Negative durations render as 00:00.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ScoreLabel is the on-screen score text.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// TimeLabel is the on-screen timer text for an already formatted mm:ss value.
func TimeLabel(elapsed string) string {
	return "Time: " + elapsed
}

// SummaryText is the end-of-game message body.
func SummaryText(score int, elapsed string) string {
	return fmt.Sprintf("Congratulations! You finished the game!\nScore: %d points\nTime: %s", score, elapsed)
}
