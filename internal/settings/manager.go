package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

// WordLister builds the candidate list for a length and language.
type WordLister interface {
	WordList(ctx context.Context, length int, lang string) (words.WordList, error)
}

// Manager loads, saves and resets settings, keeping the word list in step
// with the word length and language.
type Manager struct {
	store  Store
	corpus WordLister
}

// NewManager wires a Store to a word source.
func NewManager(store Store, corpus WordLister) *Manager {
	return &Manager{store: store, corpus: corpus}
}

// Load returns the saved settings with a fresh word list.
// When nothing is saved yet the defaults are written out first.
// Out-of-range saved fields fall back to their defaults. A saved
// length/language pair with no candidate words loads with an empty
// WordList so the player can still reach the settings screen.
func (m *Manager) Load(ctx context.Context) (Settings, error) {
	saved, err := m.store.Load()
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if saved == nil {
		s = Defaults()
		if err := m.store.Save(&s); err != nil {
			return Settings{}, err
		}
		log.Info().Msg("settings: wrote defaults")
	} else {
		var fixed []string
		s, fixed = saved.sanitize()
		if len(fixed) > 0 {
			log.Warn().Strs("fields", fixed).Msg("settings: saved values out of range, using defaults")
		}
	}

	out, err := m.withWordList(ctx, s)
	if errors.Is(err, words.ErrEmptyWordList) {
		log.Warn().
			Int("word_length", s.WordLength).
			Str("lang", s.Language).
			Msg("settings: no words for saved configuration")
		s.WordList = []string{}
		return s, nil
	}
	return out, err
}

// Save validates s, persists it and returns it with a fresh word list.
func (m *Manager) Save(ctx context.Context, s Settings) (Settings, error) {
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	out, err := m.withWordList(ctx, s)
	if err != nil {
		return Settings{}, err
	}
	if err := m.store.Save(&out); err != nil {
		return Settings{}, err
	}
	log.Info().
		Int("attempts", out.Attempts).
		Int("word_length", out.WordLength).
		Str("lang", out.Language).
		Msg("settings: saved")
	return out, nil
}

// Reset returns the defaults with a word list, without saving them.
func (m *Manager) Reset(ctx context.Context) (Settings, error) {
	return m.withWordList(ctx, Defaults())
}

// WordList regenerates the candidate list for s.
func (m *Manager) WordList(ctx context.Context, s Settings) (words.WordList, error) {
	wl, err := m.corpus.WordList(ctx, s.WordLength, s.Language)
	if err != nil {
		return words.WordList{}, fmt.Errorf("word list for %s/%d: %w", s.Language, s.WordLength, err)
	}
	return wl, nil
}

func (m *Manager) withWordList(ctx context.Context, s Settings) (Settings, error) {
	wl, err := m.WordList(ctx, s)
	if err != nil {
		return Settings{}, err
	}
	s.WordList = wl.Words()
	return s, nil
}
