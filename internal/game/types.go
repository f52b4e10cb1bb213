// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Code: per-letter result of a guess (correct/present/absent).
//   - Feedback: the ordered codes for one guess.
//   - State: coarse lifecycle of a game.
//   - Game: state for a single in-progress or finished game.

package game

import "strings"

// Code represents the evaluation result for a single letter in a guess.
// The byte values double as the wire/display encoding:
//   - '2': letter is correct and in the correct position.
//   - '1': letter exists in the answer but in a different position.
//   - '0': letter does not exist in the (remaining) answer at all.
type Code byte

const (
	Absent  Code = '0'
	Present Code = '1'
	Correct Code = '2'
)

func (c Code) String() string {
	switch c {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "unknown"
}

// Feedback is the ordered per-letter evaluation of a guess.
type Feedback []Code

// String encodes the feedback as a run of '0', '1' and '2'.
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(len(f))
	for _, c := range f {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// Solved reports whether every letter is Correct.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, c := range f {
		if c != Correct {
			return false
		}
	}
	return true
}

// State is the coarse lifecycle of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary decides whether a guess belongs to the game's corpus.
type Dictionary interface {
	Contains(word string) bool
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string     // Unique game identifier (random hex string).
	Answer   string     // The solution word (always lowercase).
	Rows     int        // Maximum number of guesses allowed.
	Cols     int        // Number of letters per word.
	Guesses  []string   // Guesses made so far (lowercased).
	Feedback []Feedback // Feedback per guess, same order as Guesses.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.

	dict Dictionary
}
