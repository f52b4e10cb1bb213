package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/desktop/internal/game"
	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

func newTestPlay(attempts int) *Play {
	dict := words.NewWordList([]string{"crane", "slate", "trace", "react"})
	return NewPlay(game.New("crane", attempts, dict), false)
}

func typeWord(p *Play, w string) {
	for _, r := range w {
		p.TypeRune(r)
	}
}

func TestPlay_Typing(t *testing.T) {
	p := newTestPlay(6)

	typeWord(p, "Sl4a-teX")
	assert.Equal(t, "slate", p.Input(), "digits and punctuation dropped, capped at 5")

	p.Backspace()
	p.Backspace()
	assert.Equal(t, "sla", p.Input())

	p.Backspace()
	p.Backspace()
	p.Backspace()
	p.Backspace()
	assert.Equal(t, "", p.Input())
}

func TestPlay_SubmitInvalid(t *testing.T) {
	p := newTestPlay(6)

	typeWord(p, "cra")
	_, err := p.Submit()
	require.ErrorIs(t, err, game.ErrInvalidGuess)
	assert.Equal(t, "Invalid guess! Enter a 5-letter word.", p.Message)
	assert.Equal(t, "cra", p.Input(), "rejected input is kept")

	typeWord(p, "zy")
	_, err = p.Submit()
	require.ErrorIs(t, err, game.ErrNotInWordList)
	assert.Equal(t, "Invalid guess! Enter a 5-letter word.", p.Message)
	assert.Empty(t, p.Game.Guesses)
}

func TestPlay_Win(t *testing.T) {
	p := newTestPlay(6)

	typeWord(p, "slate")
	fb, err := p.Submit()
	require.NoError(t, err)
	assert.Equal(t, "00202", fb.String())
	assert.Equal(t, "", p.Message)
	assert.Equal(t, "", p.Input())

	typeWord(p, "crane")
	fb, err = p.Submit()
	require.NoError(t, err)
	assert.True(t, fb.Solved())
	assert.Equal(t, "Congratulations! You guessed the word!", p.Message)
	assert.True(t, p.Done())

	// Input is frozen once the game ends.
	p.TypeRune('a')
	assert.Equal(t, "", p.Input())
	_, err = p.Submit()
	require.ErrorIs(t, err, game.ErrFinished)
}

func TestPlay_Loss(t *testing.T) {
	p := newTestPlay(1)

	typeWord(p, "trace")
	_, err := p.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Game over! The word was: CRANE", p.Message)
	assert.True(t, p.Done())
}

func TestPlay_Rows(t *testing.T) {
	p := newTestPlay(3)

	typeWord(p, "slate")
	_, err := p.Submit()
	require.NoError(t, err)
	typeWord(p, "cr")

	rows := p.Rows()
	require.Len(t, rows, 3)

	assert.Equal(t, RowSubmitted, rows[0].Kind)
	assert.Equal(t, []rune("slate"), rows[0].Letters)
	assert.Equal(t, "00202", rows[0].Feedback.String())

	assert.Equal(t, RowActive, rows[1].Kind)
	assert.Equal(t, []rune{'c', 'r', 0, 0, 0}, rows[1].Letters)
	assert.Nil(t, rows[1].Feedback)

	assert.Equal(t, RowEmpty, rows[2].Kind)
	assert.Len(t, rows[2].Letters, 5)
}

func TestPlay_RowsAfterWin(t *testing.T) {
	p := newTestPlay(3)
	typeWord(p, "crane")
	_, err := p.Submit()
	require.NoError(t, err)

	rows := p.Rows()
	assert.Equal(t, RowSubmitted, rows[0].Kind)
	assert.Equal(t, RowEmpty, rows[1].Kind, "no active row after the game ends")
	assert.Equal(t, RowEmpty, rows[2].Kind)
}

func TestPlay_HintsBefore(t *testing.T) {
	p := newTestPlay(6)

	typeWord(p, "slate")
	_, err := p.Submit()
	require.NoError(t, err)
	typeWord(p, "trace")
	_, err = p.Submit()
	require.NoError(t, err)

	// While the second row reveals, only the first row colours the keyboard.
	hints := p.HintsBefore(1)
	assert.Equal(t, game.Correct, hints['a'])
	assert.Equal(t, game.Absent, hints['s'])
	_, seen := hints['r']
	assert.False(t, seen)
	_, seen = hints['c']
	assert.False(t, seen)

	hints = p.HintsBefore(2)
	assert.Equal(t, game.Correct, hints['r'])
	assert.Equal(t, game.Present, hints['c'])
	assert.Equal(t, p.Game.LetterHints(), hints)

	assert.Empty(t, p.HintsBefore(0))
	assert.Equal(t, p.Game.LetterHints(), p.HintsBefore(10))
}
