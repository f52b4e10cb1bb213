// internal/screens/play.go
//
// Input and message state of the game screen, independent of any GUI toolkit.
// Responsibilities:
//   - Collect typed letters for the active row (at most one word length).
//   - Submit the row to the game engine and translate the outcome to a message.
//   - Expose every grid row (submitted, active, empty) for rendering.

package screens

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/robalobadob/wordle/apps/desktop/internal/game"
)

const (
	msgWon  = "Congratulations! You guessed the word!"
	msgLost = "Game over! The word was: %s"
	msgBad  = "Invalid guess! Enter a %d-letter word."
)

// RowKind tells the renderer how to draw a grid row.
type RowKind int

const (
	RowEmpty RowKind = iota
	RowActive
	RowSubmitted
)

// Row is one line of the grid. Letters has one entry per column ('\x00' for
// a blank cell); Feedback is set only for submitted rows.
type Row struct {
	Kind     RowKind
	Letters  []rune
	Feedback game.Feedback
}

// Play is the game screen state.
type Play struct {
	Game    *game.Game
	Daily   bool
	Message string

	input []rune
}

// NewPlay wraps a fresh game.
func NewPlay(g *game.Game, daily bool) *Play {
	return &Play{Game: g, Daily: daily}
}

// TypeRune appends a letter to the active row. Non-letters and input past
// the word length are ignored.
func (p *Play) TypeRune(r rune) {
	if p.Done() || !unicode.IsLetter(r) || len(p.input) >= p.Game.Cols {
		return
	}
	p.input = append(p.input, unicode.ToLower(r))
}

// Backspace removes the last typed letter.
func (p *Play) Backspace() {
	if p.Done() || len(p.input) == 0 {
		return
	}
	p.input = p.input[:len(p.input)-1]
}

// Input is the text typed in the active row.
func (p *Play) Input() string { return string(p.input) }

// Submit plays the active row. A rejected row keeps its letters and sets
// the invalid-guess message; an accepted row clears the input.
func (p *Play) Submit() (game.Feedback, error) {
	if p.Done() {
		return nil, game.ErrFinished
	}
	fb, state, err := p.Game.ApplyGuess(string(p.input))
	if err != nil {
		if errors.Is(err, game.ErrInvalidGuess) || errors.Is(err, game.ErrNotInWordList) {
			p.Message = fmt.Sprintf(msgBad, p.Game.Cols)
		}
		return nil, err
	}

	p.input = p.input[:0]
	switch state {
	case game.StateWon:
		p.Message = msgWon
	case game.StateLost:
		p.Message = fmt.Sprintf(msgLost, strings.ToUpper(p.Game.Answer))
	default:
		p.Message = ""
	}
	return fb, nil
}

// HintsBefore is the keyboard colouring after the first n submitted rows.
// The renderer passes the row still being revealed so its letters stay
// hidden until the animation ends.
func (p *Play) HintsBefore(n int) map[rune]game.Code {
	return p.Game.LetterHintsBefore(n)
}

// Done reports whether the game is over.
func (p *Play) Done() bool { return p.Game.Finished }

// Rows lays out the whole grid, one Row per allowed attempt.
func (p *Play) Rows() []Row {
	g := p.Game
	rows := make([]Row, g.Rows)
	for i := range rows {
		letters := make([]rune, g.Cols)
		switch {
		case i < len(g.Guesses):
			copy(letters, []rune(g.Guesses[i]))
			rows[i] = Row{Kind: RowSubmitted, Letters: letters, Feedback: g.Feedback[i]}
		case i == len(g.Guesses) && !g.Finished:
			copy(letters, p.input)
			rows[i] = Row{Kind: RowActive, Letters: letters}
		default:
			rows[i] = Row{Kind: RowEmpty, Letters: letters}
		}
	}
	return rows
}
