package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/robalobadob/wordle/apps/desktop/internal/screens"
)

type menuScene struct {
	app    *App
	menu   *screens.Menu
	status string
}

func newMenuScene(app *App, status string) *menuScene {
	return &menuScene{app: app, menu: screens.NewMenu(), status: status}
}

func (s *menuScene) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.menu.Up()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.menu.Down()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		switch s.menu.Current() {
		case screens.MenuStart:
			s.app.startGame(false)
		case screens.MenuDaily:
			s.app.startGame(true)
		case screens.MenuSettings:
			s.app.showSettings()
		case screens.MenuExit:
			return ebiten.Termination
		}
	}
	return nil
}

func (s *menuScene) Draw(screen *ebiten.Image) {
	f := s.app.faces
	cx := float64(s.app.width) / 2

	drawCentered(screen, windowTitle, f.title, cx, 90, colorText)

	y := 200.0
	for i, opt := range s.menu.Options {
		clr := colorText
		label := opt.String()
		if i == s.menu.Selected {
			clr = colorSelected
			label = "> " + label + " <"
		}
		drawCentered(screen, label, f.normal, cx, y, clr)
		y += 44
	}

	if s.status != "" {
		drawWrapped(screen, s.status, f.small, cx, y+20, float64(s.app.width)-40, colorError)
	}
	s.app.drawHint(screen, "Up/Down to move, Enter to select, Esc to quit")
}
