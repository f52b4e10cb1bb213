package ui

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/robalobadob/wordle/apps/desktop/internal/screens"
	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

type settingsScene struct {
	app    *App
	form   *screens.SettingsForm
	status string

	chars []rune
}

func newSettingsScene(app *App, form *screens.SettingsForm) *settingsScene {
	return &settingsScene{app: app, form: form}
}

func (s *settingsScene) Update() error {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.app.showMenu("")
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyTab) && shift,
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.form.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.form.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.form.CycleLanguage(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.form.CycleLanguage(1)
	case repeatingKeyPressed(ebiten.KeyBackspace):
		s.form.Backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		s.activate()
		return nil
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		s.form.TypeRune(r)
	}
	return nil
}

// activate handles Enter on the focused element.
func (s *settingsScene) activate() {
	switch s.form.Focus {
	case screens.FieldReset:
		s.form.Reset()
		s.status = ""
	case screens.FieldSave:
		res, ok := s.form.Result()
		if !ok {
			s.status = ""
			return
		}
		if err := s.app.saveSettings(res); err != nil {
			if errors.Is(err, words.ErrEmptyWordList) {
				s.status = "No words of that length in this language."
			} else {
				s.status = "Could not save settings."
			}
			return
		}
		s.app.showMenu("Settings saved.")
	default:
		s.form.Next()
	}
}

func (s *settingsScene) Draw(screen *ebiten.Image) {
	f := s.app.faces
	w := float64(s.app.width)
	cx := w / 2

	drawCentered(screen, "Settings", f.title, cx, 40, colorText)

	y := 120.0
	s.drawField(screen, s.form.AttemptsLabel(), s.form.Attempts, screens.FieldAttempts, y)
	y += 90
	s.drawField(screen, s.form.WordLengthLabel(), s.form.WordLength, screens.FieldWordLength, y)
	y += 90
	s.drawField(screen, s.form.LanguageLabel(), "< "+s.form.LanguageName()+" >", screens.FieldLanguage, y)
	y += 100

	s.drawButton(screen, "Reset", screens.FieldReset, cx-110, y)
	s.drawButton(screen, "Save", screens.FieldSave, cx+10, y)

	if s.status != "" {
		drawWrapped(screen, s.status, f.small, cx, y+70, w-40, colorError)
	}
	s.app.drawHint(screen, "Tab to move, Left/Right for language, Enter, Esc")
}

func (s *settingsScene) drawField(screen *ebiten.Image, label, value string, field screens.Field, y float64) {
	f := s.app.faces
	x := 40.0
	labelColor := colorText
	if s.form.Invalid(field) {
		labelColor = colorError
	}
	drawText(screen, label, f.small, x, y, labelColor)

	boxW := float32(s.app.width) - 80
	var border color.Color = colorEmptyTile
	if s.form.Focus == field {
		border = colorSelected
	}
	vector.StrokeRect(screen, float32(x), float32(y+22), boxW, 36, 2, border, false)
	drawText(screen, value, f.normal, x+10, y+28, colorText)
}

func (s *settingsScene) drawButton(screen *ebiten.Image, label string, field screens.Field, x, y float64) {
	var bg color.Color = colorActiveTile
	if s.form.Focus == field {
		bg = colorCorrect
	}
	vector.FillRect(screen, float32(x), float32(y), 100, 40, bg, false)
	drawInBox(screen, label, s.app.faces.normal, x+50, y+20, colorText)
}
