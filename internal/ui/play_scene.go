package ui

import (
	"errors"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/robalobadob/wordle/apps/desktop/internal/game"
	"github.com/robalobadob/wordle/apps/desktop/internal/screens"
)

const (
	tileGap         = 6
	gridTop         = 70
	keyboardHeight  = 150
	revealPerTile   = 0.25 // seconds
	keyboardLetters = "abcdefghijklmnopqrstuvwxyz"
)

type playScene struct {
	app  *App
	play *screens.Play

	chars []rune

	// reveal animates the colours of the last submitted row, one tile at
	// a time. revealed is the number of tiles already shown.
	reveal    *gween.Tween
	revealRow int
	revealed  float32
}

func newPlayScene(app *App, play *screens.Play) *playScene {
	return &playScene{app: app, play: play, revealRow: -1}
}

func (s *playScene) Update() error {
	if s.reveal != nil {
		v, done := s.reveal.Update(float32(1.0 / float64(ebiten.TPS())))
		s.revealed = v
		if done {
			s.reveal = nil
		}
		// Input waits for the row to finish revealing.
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.app.showMenu("")
		return nil
	}
	if s.play.Done() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
			s.app.showMenu("")
		}
		return nil
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		s.play.TypeRune(r)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		s.play.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.submit()
	}
	return nil
}

func (s *playScene) submit() {
	row := len(s.play.Game.Guesses)
	_, err := s.play.Submit()
	if err != nil {
		if !errors.Is(err, game.ErrInvalidGuess) && !errors.Is(err, game.ErrNotInWordList) {
			s.app.logGameError(s.play.Game, err)
		}
		return
	}
	cols := float32(s.play.Game.Cols)
	s.revealRow = row
	s.revealed = 0
	s.reveal = gween.New(0, cols, revealPerTile*cols, ease.OutQuad)
}

func (s *playScene) Draw(screen *ebiten.Image) {
	f := s.app.faces
	w := float64(s.app.width)
	cx := w / 2

	title := windowTitle
	if s.play.Daily {
		title = "Daily Challenge"
	}
	drawCentered(screen, title, f.normal, cx, 20, colorText)

	s.drawGrid(screen)
	s.drawKeyboard(screen)

	if s.reveal == nil && s.play.Message != "" {
		clr := colorText
		if !s.play.Done() {
			clr = colorError
		}
		drawWrapped(screen, s.play.Message, f.small, cx, float64(s.app.height-keyboardHeight-40), w-20, clr)
	}

	if s.play.Done() {
		s.app.drawHint(screen, "Enter or Esc for the menu")
	} else {
		s.app.drawHint(screen, "Type a word, Enter to guess, Esc for the menu")
	}
}

// tileSize fits the grid between the title and the keyboard.
func (s *playScene) tileSize() float32 {
	g := s.play.Game
	availW := float64(s.app.width-20) / float64(g.Cols)
	availH := float64(s.app.height-gridTop-keyboardHeight-60) / float64(g.Rows)
	return float32(math.Min(availW, availH) - tileGap)
}

func (s *playScene) drawGrid(screen *ebiten.Image) {
	g := s.play.Game
	size := s.tileSize()
	step := size + tileGap
	left := (float32(s.app.width) - step*float32(g.Cols) + tileGap) / 2

	for r, row := range s.play.Rows() {
		y := float32(gridTop) + step*float32(r)
		for c, letter := range row.Letters {
			x := left + step*float32(c)

			var bg color.Color = colorEmptyTile
			switch row.Kind {
			case screens.RowActive:
				if letter != 0 {
					bg = colorActiveTile
				}
			case screens.RowSubmitted:
				if r == s.revealRow && float32(c) >= s.revealed {
					bg = colorActiveTile
				} else {
					bg = codeColor(row.Feedback[c])
				}
			}
			vector.FillRect(screen, x, y, size, size, bg, false)

			if letter != 0 {
				drawInBox(screen, strings.ToUpper(string(letter)), s.app.faces.tile,
					float64(x+size/2), float64(y+size/2), colorText)
			}
		}
	}
}

// drawKeyboard shows every letter with the best hint seen for it.
func (s *playScene) drawKeyboard(screen *ebiten.Image) {
	hints := s.play.Game.LetterHints()
	if s.reveal != nil {
		// Hide what the revealing row has not shown yet.
		hints = s.play.HintsBefore(s.revealRow)
	}

	letters := []rune(keyboardLetters)
	var extra []rune
	for r := range hints {
		if !strings.ContainsRune(keyboardLetters, r) {
			extra = append(extra, r)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	letters = append(letters, extra...)

	const perRow = 13
	const keyW, keyH, keyGap = 26, 34, 4
	top := float32(s.app.height - keyboardHeight)
	for i, r := range letters {
		row, col := i/perRow, i%perRow
		inRow := perRow
		if rest := len(letters) - row*perRow; rest < perRow {
			inRow = rest
		}
		left := (float32(s.app.width) - float32(inRow)*(keyW+keyGap) + keyGap) / 2
		x := left + float32(col)*(keyW+keyGap)
		y := top + float32(row)*(keyH+keyGap)

		var bg color.Color = colorActiveTile
		if c, ok := hints[r]; ok {
			bg = codeColor(c)
		}
		vector.FillRect(screen, x, y, keyW, keyH, bg, false)
		drawInBox(screen, strings.ToUpper(string(r)), s.app.faces.small, float64(x+keyW/2), float64(y+keyH/2), colorText)
	}
}

// repeatingKeyPressed reports a press on the first frame and then at a
// fixed rate while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	if d >= delay && (d-delay)%interval == 0 {
		return true
	}
	return false
}
