// internal/game/engine.go
//
// Game engine for a single Wordle session.
// Responsibilities:
//   - Create new games sized by the answer and the configured attempt count.
//   - Validate and apply guesses (length, letters, corpus membership).
//   - Score guesses through Evaluate.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The corpus is injected as a Dictionary; the engine never loads words.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrFinished      = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
)

// New constructs a game for answer with the given number of attempts.
// dict may be nil, in which case every well-formed guess is accepted.
func New(answer string, attempts int, dict Dictionary) *Game {
	ans := strings.ToLower(strings.TrimSpace(answer))
	return &Game{
		ID:      randomID(),
		Answer:  ans,
		Rows:    attempts,
		Cols:    utf8.RuneCountInString(ans),
		Guesses: []string{},
		dict:    dict,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// A rejected guess leaves the game untouched.
//
// State transitions:
//   - If every code is Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Feedback, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if utf8.RuneCountInString(guess) != g.Cols || !isLetters(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if g.dict != nil && !g.dict.Contains(guess) {
		return nil, g.State(), ErrNotInWordList
	}

	fb, err := Evaluate(g.Answer, guess)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, guess)
	g.Feedback = append(g.Feedback, fb)

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining is the number of guesses still available.
func (g *Game) Remaining() int {
	if n := g.Rows - len(g.Guesses); n > 0 {
		return n
	}
	return 0
}

// LetterHints returns the best code seen so far for every guessed letter.
// Correct beats Present beats Absent.
func (g *Game) LetterHints() map[rune]Code {
	return g.LetterHintsBefore(len(g.Guesses))
}

// LetterHintsBefore is LetterHints over the first n guesses only. n is
// clamped to the number of guesses made.
func (g *Game) LetterHintsBefore(n int) map[rune]Code {
	n = max(0, min(n, len(g.Guesses)))
	hints := make(map[rune]Code)
	for i, guess := range g.Guesses[:n] {
		for j, r := range []rune(guess) {
			c := g.Feedback[i][j]
			if prev, ok := hints[r]; !ok || c > prev {
				hints[r] = c
			}
		}
	}
	return hints
}

// isLetters reports whether s is non-empty and made of letters only.
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
