package screens

import (
	"strconv"

	"github.com/robalobadob/wordle/apps/desktop/internal/settings"
	"github.com/robalobadob/wordle/apps/desktop/internal/words"
)

const (
	labelAttempts   = "Number of Attempts:"
	labelWordLength = "Word Length:"
	labelLanguage   = "Select Language:"

	fieldMaxLen = 2
)

// Field is a focusable element of the settings form.
type Field int

const (
	FieldAttempts Field = iota
	FieldWordLength
	FieldLanguage
	FieldReset
	FieldSave
	fieldCount
)

// SettingsForm is the settings screen state.
type SettingsForm struct {
	Attempts   string
	WordLength string
	Language   int // index into words.Languages
	Focus      Field

	attemptsErr   bool
	wordLengthErr bool
}

// NewSettingsForm fills the form from s.
func NewSettingsForm(s settings.Settings) *SettingsForm {
	f := &SettingsForm{}
	f.fill(s)
	return f
}

func (f *SettingsForm) fill(s settings.Settings) {
	f.Attempts = strconv.Itoa(s.Attempts)
	f.WordLength = strconv.Itoa(s.WordLength)
	f.Language = words.IndexOf(s.Language)
	if f.Language < 0 {
		f.Language = words.IndexOf(settings.DefaultLanguage)
	}
	f.attemptsErr, f.wordLengthErr = false, false
}

// Next moves focus forward, wrapping around.
func (f *SettingsForm) Next() { f.Focus = (f.Focus + 1) % fieldCount }

// Prev moves focus backward, wrapping around.
func (f *SettingsForm) Prev() { f.Focus = (f.Focus - 1 + fieldCount) % fieldCount }

// TypeRune edits the focused numeric field; only digits are accepted.
func (f *SettingsForm) TypeRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	if p := f.focusedText(); p != nil && len(*p) < fieldMaxLen {
		*p += string(r)
	}
}

// Backspace deletes the last character of the focused numeric field.
func (f *SettingsForm) Backspace() {
	if p := f.focusedText(); p != nil && len(*p) > 0 {
		*p = (*p)[:len(*p)-1]
	}
}

// CycleLanguage moves the language selection by delta, wrapping around.
// It only acts while the language selector has focus.
func (f *SettingsForm) CycleLanguage(delta int) {
	if f.Focus != FieldLanguage {
		return
	}
	n := len(words.Languages)
	f.Language = ((f.Language+delta)%n + n) % n
}

// LanguageName is the display name of the selected language.
func (f *SettingsForm) LanguageName() string { return words.Languages[f.Language].Name }

// Reset restores the form to the factory defaults.
func (f *SettingsForm) Reset() { f.fill(settings.Defaults()) }

// Result validates both numeric fields and returns the chosen settings.
// Labels of invalid fields switch to their error message.
func (f *SettingsForm) Result() (settings.Settings, bool) {
	attempts, aErr := settings.ParseAttempts(f.Attempts)
	length, lErr := settings.ParseWordLength(f.WordLength)
	f.attemptsErr = aErr != nil
	f.wordLengthErr = lErr != nil
	if aErr != nil || lErr != nil {
		return settings.Settings{}, false
	}
	return settings.Settings{
		Attempts:   attempts,
		WordLength: length,
		Language:   words.Languages[f.Language].Code,
	}, true
}

// AttemptsLabel is the attempts caption or its error message.
func (f *SettingsForm) AttemptsLabel() string {
	if f.attemptsErr {
		return settings.InvalidAttemptsMsg
	}
	return labelAttempts
}

// WordLengthLabel is the word length caption or its error message.
func (f *SettingsForm) WordLengthLabel() string {
	if f.wordLengthErr {
		return settings.InvalidWordLengthMsg
	}
	return labelWordLength
}

// Invalid reports whether field failed the last Result check.
func (f *SettingsForm) Invalid(field Field) bool {
	switch field {
	case FieldAttempts:
		return f.attemptsErr
	case FieldWordLength:
		return f.wordLengthErr
	}
	return false
}

// LanguageLabel is the language caption.
func (f *SettingsForm) LanguageLabel() string { return labelLanguage }

func (f *SettingsForm) focusedText() *string {
	switch f.Focus {
	case FieldAttempts:
		return &f.Attempts
	case FieldWordLength:
		return &f.WordLength
	}
	return nil
}
