// internal/ui/app.go
//
// Desktop shell built on ebiten.
// Responsibilities:
//   - Own the window and switch between the menu, game and settings scenes.
//   - Start regular and daily games from the current settings.
//   - Hand settings edits to the settings manager.
//
// Notes:
//   - All game rules live in internal/game and internal/screens; scenes only
//     translate keyboard input and draw state.

package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/desktop/internal/config"
	"github.com/robalobadob/wordle/apps/desktop/internal/daily"
	"github.com/robalobadob/wordle/apps/desktop/internal/game"
	"github.com/robalobadob/wordle/apps/desktop/internal/screens"
	"github.com/robalobadob/wordle/apps/desktop/internal/settings"
)

const windowTitle = "Wordle"

// scene is one screen of the app.
type scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// App implements ebiten.Game.
type App struct {
	cfg      *config.Config
	mgr      *settings.Manager
	settings settings.Settings
	faces    *faces
	scene    scene

	width, height int
}

// New loads the saved settings and opens on the main menu.
func New(ctx context.Context, cfg *config.Config, mgr *settings.Manager) (*App, error) {
	s, err := mgr.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	f, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	a := &App{
		cfg:      cfg,
		mgr:      mgr,
		settings: s,
		faces:    f,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}
	a.showMenu("")
	return a, nil
}

// Run opens the window and blocks until the player exits.
func Run(ctx context.Context, cfg *config.Config, mgr *settings.Manager) error {
	a, err := New(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(windowTitle)

	err = ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (a *App) Update() error {
	return a.scene.Update()
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.scene.Draw(screen)
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

func (a *App) showMenu(status string) {
	a.scene = newMenuScene(a, status)
}

func (a *App) showSettings() {
	a.scene = newSettingsScene(a, screens.NewSettingsForm(a.settings))
}

// startGame begins a game with a random answer, or today's answer when
// isDaily is set. Failures go back to the menu with a status line.
func (a *App) startGame(isDaily bool) {
	wl, err := a.mgr.WordList(context.Background(), a.settings)
	if err != nil {
		log.Error().Err(err).Msg("ui: word list unavailable")
		a.showMenu("No words available for these settings.")
		return
	}

	var answer string
	if isDaily {
		answer = daily.Pick(wl.Words(), time.Now(), a.cfg.Daily.Salt)
	} else {
		answer, err = wl.Random()
	}
	if err != nil || answer == "" {
		log.Error().Err(err).Msg("ui: could not pick an answer")
		a.showMenu("No words available for these settings.")
		return
	}

	g := game.New(answer, a.settings.Attempts, wl)
	log.Info().
		Str("game", g.ID).
		Bool("daily", isDaily).
		Str("lang", a.settings.Language).
		Int("cols", g.Cols).
		Int("rows", g.Rows).
		Msg("ui: game started")
	a.scene = newPlayScene(a, screens.NewPlay(g, isDaily))
}

// saveSettings persists s and returns the error shown by the form.
func (a *App) saveSettings(s settings.Settings) error {
	saved, err := a.mgr.Save(context.Background(), s)
	if err != nil {
		log.Warn().Err(err).Msg("ui: settings not saved")
		return err
	}
	a.settings = saved
	return nil
}

// drawHint writes a key hint at the bottom of the window.
func (a *App) drawHint(screen *ebiten.Image, hint string) {
	drawCentered(screen, hint, a.faces.small, float64(a.width)/2, float64(a.height)-24, colorDim)
}

func (a *App) logGameError(g *game.Game, err error) {
	log.Error().Err(err).Str("game", g.ID).Msg("ui: guess failed")
}
