// internal/settings/settings.go
//
// Player-facing game settings.
// Defines:
//   - Settings: attempts, word length, corpus language and the derived word list.
//   - Defaults and bounds, shared with the settings form.
//   - Validation and text parsing with the messages shown next to each field.

package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

const (
	MinAttempts   = 1
	MaxAttempts   = 10
	MinWordLength = 3
	MaxWordLength = 10

	DefaultAttempts   = 6
	DefaultWordLength = 5
	DefaultLanguage   = "en"
)

var (
	ErrInvalidAttempts   = errors.New("attempts must be a number between 1 and 10")
	ErrInvalidWordLength = errors.New("word length must be a number between 3 and 10")
)

// Messages shown in place of a field label when its input is rejected.
const (
	InvalidAttemptsMsg   = "Invalid Input! Enter a number (1-10)."
	InvalidWordLengthMsg = "Invalid Input! Enter a number (3-10)."
)

// Settings is the persisted game configuration.
// WordList is derived from WordLength and Language and is never persisted.
type Settings struct {
	Attempts   int      `json:"attempts"`
	WordLength int      `json:"word_length"`
	Language   string   `json:"language"`
	WordList   []string `json:"word_list"`
}

// Defaults returns the factory settings without a word list.
func Defaults() Settings {
	return Settings{
		Attempts:   DefaultAttempts,
		WordLength: DefaultWordLength,
		Language:   DefaultLanguage,
		WordList:   []string{},
	}
}

// Validate checks every field against its bounds.
func (s Settings) Validate() error {
	var errs []error
	if s.Attempts < MinAttempts || s.Attempts > MaxAttempts {
		errs = append(errs, ErrInvalidAttempts)
	}
	if s.WordLength < MinWordLength || s.WordLength > MaxWordLength {
		errs = append(errs, ErrInvalidWordLength)
	}
	if !words.IsSupported(s.Language) {
		errs = append(errs, fmt.Errorf("%w: %q", words.ErrUnsupportedLanguage, s.Language))
	}
	return errors.Join(errs...)
}

// sanitize replaces out-of-range fields with their defaults and reports
// which fields were replaced.
func (s Settings) sanitize() (Settings, []string) {
	var fixed []string
	if s.Attempts < MinAttempts || s.Attempts > MaxAttempts {
		s.Attempts = DefaultAttempts
		fixed = append(fixed, "attempts")
	}
	if s.WordLength < MinWordLength || s.WordLength > MaxWordLength {
		s.WordLength = DefaultWordLength
		fixed = append(fixed, "word_length")
	}
	if !words.IsSupported(s.Language) {
		s.Language = DefaultLanguage
		fixed = append(fixed, "language")
	}
	return s, fixed
}

// ParseAttempts parses the attempts field of the settings form.
func ParseAttempts(v string) (int, error) {
	return parseBounded(v, MinAttempts, MaxAttempts, ErrInvalidAttempts)
}

// ParseWordLength parses the word length field of the settings form.
func ParseWordLength(v string) (int, error) {
	return parseBounded(v, MinWordLength, MaxWordLength, ErrInvalidWordLength)
}

// parseBounded accepts only plain decimal digits (no sign, no spaces inside).
func parseBounded(v string, lo, hi int, bad error) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, bad
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, bad
		}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		return 0, bad
	}
	return n, nil
}
