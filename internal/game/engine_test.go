package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[string]struct{}

func (s wordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

func newDict(words ...string) wordSet {
	s := wordSet{}
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func TestNew(t *testing.T) {
	g := New(" Crane ", 6, nil)

	require.NotNil(t, g)
	assert.Equal(t, "crane", g.Answer)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 6, g.Remaining())
}

func TestNew_ColsCountLetters(t *testing.T) {
	g := New("mañana", 6, nil)
	assert.Equal(t, 6, g.Cols)
}

func TestGame_ApplyGuess(t *testing.T) {
	dict := newDict("crane", "slate", "trace", "react")

	t.Run("win", func(t *testing.T) {
		// Given: a new game
		g := New("crane", 3, dict)

		// When: a miss and then the answer are played
		fb, state, err := g.ApplyGuess("slate")
		require.NoError(t, err)
		assert.Equal(t, "00202", fb.String())
		assert.Equal(t, StatePlaying, state)

		fb, state, err = g.ApplyGuess("CRANE")
		require.NoError(t, err)

		// Then: the game is won and closed
		assert.True(t, fb.Solved())
		assert.Equal(t, StateWon, state)
		assert.True(t, g.Finished)
		assert.True(t, g.Won)
		assert.Equal(t, []string{"slate", "crane"}, g.Guesses)
		assert.Len(t, g.Feedback, 2)
		assert.Equal(t, 1, g.Remaining())

		_, _, err = g.ApplyGuess("trace")
		require.ErrorIs(t, err, ErrFinished)
	})

	t.Run("loss after last attempt", func(t *testing.T) {
		g := New("crane", 2, dict)

		_, state, err := g.ApplyGuess("trace")
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, state)

		_, state, err = g.ApplyGuess("react")
		require.NoError(t, err)
		assert.Equal(t, StateLost, state)
		assert.True(t, g.Finished)
		assert.False(t, g.Won)
		assert.Equal(t, 0, g.Remaining())
	})

	t.Run("rejections leave state untouched", func(t *testing.T) {
		g := New("crane", 6, dict)

		_, _, err := g.ApplyGuess("cran")
		require.ErrorIs(t, err, ErrInvalidGuess)

		_, _, err = g.ApplyGuess("cr4ne")
		require.ErrorIs(t, err, ErrInvalidGuess)

		_, _, err = g.ApplyGuess("")
		require.ErrorIs(t, err, ErrInvalidGuess)

		_, state, err := g.ApplyGuess("zzzzz")
		require.ErrorIs(t, err, ErrNotInWordList)
		assert.Equal(t, StatePlaying, state)

		assert.Empty(t, g.Guesses)
		assert.Empty(t, g.Feedback)
		assert.Equal(t, 6, g.Remaining())
	})

	t.Run("nil dictionary accepts any word", func(t *testing.T) {
		g := New("crane", 6, nil)
		_, _, err := g.ApplyGuess("zzzzz")
		require.NoError(t, err)
	})
}

func TestGame_LetterHints(t *testing.T) {
	g := New("crane", 6, nil)

	_, _, err := g.ApplyGuess("nacre")
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("crust")
	require.NoError(t, err)

	hints := g.LetterHints()

	assert.Equal(t, Correct, hints['c'])
	assert.Equal(t, Correct, hints['r'])
	assert.Equal(t, Correct, hints['e'])
	assert.Equal(t, Present, hints['n'])
	assert.Equal(t, Present, hints['a'])
	assert.Equal(t, Absent, hints['u'])
	assert.Equal(t, Absent, hints['s'])
	_, seen := hints['z']
	assert.False(t, seen)
}

func TestGame_LetterHintsBefore(t *testing.T) {
	g := New("crane", 6, nil)

	_, _, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("trace")
	require.NoError(t, err)

	first := g.LetterHintsBefore(1)
	assert.Equal(t, map[rune]Code{'s': Absent, 'l': Absent, 'a': Correct, 't': Absent, 'e': Correct}, first)

	assert.Equal(t, g.LetterHints(), g.LetterHintsBefore(2))
	assert.Equal(t, g.LetterHints(), g.LetterHintsBefore(99), "clamped to the guesses made")
	assert.Empty(t, g.LetterHintsBefore(0))
	assert.Empty(t, g.LetterHintsBefore(-3))
}
