package words

import "errors"

// ErrUnsupportedLanguage is returned for a language code outside Languages.
var ErrUnsupportedLanguage = errors.New("words: unsupported language")

// Language pairs a corpus code with its display name.
type Language struct {
	Code string
	Name string
}

// Languages lists the corpora in menu order.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
}

// IsSupported reports whether code names a known corpus.
func IsSupported(code string) bool {
	_, ok := indexOf(code)
	return ok
}

// NameOf returns the display name for code, or "" if unknown.
func NameOf(code string) string {
	if i, ok := indexOf(code); ok {
		return Languages[i].Name
	}
	return ""
}

// CodeOf maps a display name back to its code, or "" if unknown.
func CodeOf(name string) string {
	for _, l := range Languages {
		if l.Name == name {
			return l.Code
		}
	}
	return ""
}

// IndexOf returns the position of code in Languages, or -1.
func IndexOf(code string) int {
	if i, ok := indexOf(code); ok {
		return i
	}
	return -1
}

func indexOf(code string) (int, bool) {
	for i, l := range Languages {
		if l.Code == code {
			return i, true
		}
	}
	return 0, false
}
