package model

import "time"

// Board geometry and scoring. The board is always a fixed 4x4 grid.
const (
	GridRows       = 4
	GridCols       = 4
	CardCount      = GridRows * GridCols
	PairCount      = CardCount / 2
	ScoreIncrement = 10
)

// Shared defaults used by both front ends.
const (
	DefaultMismatchDelay = 1000 * time.Millisecond
	DefaultTickInterval  = time.Second
	DefaultSkin          = "default"
)

// Status line messages.
const (
	StatusStarted  = "Game started!"
	StatusMatch    = "Match found!"
	StatusMismatch = "No match! Try again."
	StatusGameOver = "Game over! Press R to play again."
)
