package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when target and guess differ in length.
var ErrLengthMismatch = errors.New("game: target and guess lengths differ")

// Evaluate scores guess against target with the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Pool the remaining (non-matched) target letters by count.
//
// Pass 2, left to right:
//   - For each non-correct guess letter: if the pool still holds that letter,
//     mark Present and take one from the pool; otherwise mark Absent.
//
// Letters are compared as lowercase runes, so accented corpora work too.
func Evaluate(target, guess string) (Feedback, error) {
	t := []rune(strings.ToLower(target))
	g := []rune(strings.ToLower(guess))
	if len(t) != len(g) {
		return nil, fmt.Errorf("%w: target has %d letters, guess has %d", ErrLengthMismatch, len(t), len(g))
	}

	res := make(Feedback, len(g))
	pool := make(map[rune]int, len(t))

	for i := range g {
		if g[i] == t[i] {
			res[i] = Correct
		} else {
			res[i] = Absent
			pool[t[i]]++
		}
	}

	for i := range g {
		if res[i] == Correct {
			continue
		}
		if pool[g[i]] > 0 {
			res[i] = Present
			pool[g[i]]--
		}
	}
	return res, nil
}
