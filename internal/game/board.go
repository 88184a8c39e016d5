package game

import (
	"math/rand/v2"

	"github.com/tinytelemetry/memory/internal/model"
)

// Board is the fixed 4x4 grid of cards, indexed by position.
type Board struct {
	Cards []model.Card
}

// NewBoard deals two cards of every face and shuffles them uniformly.
func NewBoard(rng *rand.Rand) Board {
	faces := make([]int, 0, model.CardCount)
	for face := 0; face < model.PairCount; face++ {
		faces = append(faces, face, face)
	}
	// rand.Shuffle is Fisher-Yates, so every permutation is equally likely.
	rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})

	cards := make([]model.Card, len(faces))
	for pos, face := range faces {
		cards[pos] = model.Card{Position: pos, Face: face, State: model.FaceDown}
	}
	return Board{Cards: cards}
}

// Faces returns the face value at every position.
func (b Board) Faces() []int {
	faces := make([]int, len(b.Cards))
	for i, c := range b.Cards {
		faces[i] = c.Face
	}
	return faces
}

// Partner returns the other position holding the same face as pos.
func (b Board) Partner(pos int) (int, bool) {
	if pos < 0 || pos >= len(b.Cards) {
		return 0, false
	}
	for i, c := range b.Cards {
		if i != pos && c.Face == b.Cards[pos].Face {
			return i, true
		}
	}
	return 0, false
}

// AllMatched reports whether every card has been matched.
func (b Board) AllMatched() bool {
	for _, c := range b.Cards {
		if c.State != model.Matched {
			return false
		}
	}
	return true
}

func (b Board) clone() []model.Card {
	out := make([]model.Card, len(b.Cards))
	copy(out, b.Cards)
	return out
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// PreviewDeal returns the first board an engine configured with seed deals.
// Seed must be non-zero.
func PreviewDeal(seed uint64) Board {
	return NewBoard(newRand(seed))
}
