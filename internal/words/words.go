// internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Read frequency-ranked word lists per language from a Source.
//   - Build the candidate list for a (language, length) pair: top-N words,
//     letters only, exact length, lowercased, de-duplicated, rank order kept.
//   - Cache built lists so the settings screen can flip back and forth cheaply.
//   - Supply WordList helpers: Contains, Random, Len.
//
// Sources:
//   - FSSource: "<lang>.txt" files in an fs.FS, one word per line, most
//     frequent first. The embedded assets are the default; WORDS_DIR points
//     an os.DirFS at a directory with the same layout.
//   - SQLiteSource (sqlite.go): a frequency table built by cmd/wordle-corpus.

package words

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// DefaultTopN mirrors the size of the frequency lookup used to seed lists.
const DefaultTopN = 100000

// ErrEmptyWordList is returned when no word of the requested length exists.
var ErrEmptyWordList = errors.New("words: word list is empty")

// Source yields up to n words of a language, most frequent first.
type Source interface {
	Ranked(ctx context.Context, lang string, n int) ([]string, error)
}

// FSSource reads "<lang>.txt" frequency files from an fs.FS.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource wraps fsys as a Source.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// Ranked implements Source.
func (s *FSSource) Ranked(ctx context.Context, lang string, n int) ([]string, error) {
	if !IsSupported(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	f, err := s.fsys.Open(lang + ".txt")
	if err != nil {
		return nil, fmt.Errorf("open %s frequency list: %w", lang, err)
	}
	defer f.Close()
	return ReadRanked(ctx, f, n)
}

// ReadRanked reads up to n words from a frequency list, one per line, most
// frequent first. Blank lines and lines starting with '#' are skipped.
func ReadRanked(ctx context.Context, r io.Reader, n int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() && len(out) < n {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// WordList is the candidate list for one game configuration.
type WordList struct {
	words []string
	set   map[string]struct{}
}

// NewWordList builds a WordList from already-normalized words.
func NewWordList(list []string) WordList {
	return WordList{words: list, set: toSet(list)}
}

// Words returns the words in rank order. The slice must not be modified.
func (l WordList) Words() []string { return l.words }

// Len is the number of words.
func (l WordList) Len() int { return len(l.words) }

// Contains reports whether w (any case) is in the list.
func (l WordList) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Random returns a cryptographically random word from the list.
func (l WordList) Random() (string, error) {
	if len(l.words) == 0 {
		return "", ErrEmptyWordList
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", err
	}
	return l.words[nBig.Int64()], nil
}

type listKey struct {
	lang   string
	length int
}

// Corpus builds and caches word lists from a Source.
type Corpus struct {
	src  Source
	topN int

	mu    sync.RWMutex
	lists map[listKey]WordList
}

// NewCorpus constructs a Corpus. topN <= 0 selects DefaultTopN.
func NewCorpus(src Source, topN int) *Corpus {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Corpus{src: src, topN: topN, lists: make(map[listKey]WordList)}
}

// WordList returns the candidate words of the given length for lang.
func (c *Corpus) WordList(ctx context.Context, length int, lang string) (WordList, error) {
	key := listKey{lang: lang, length: length}

	c.mu.RLock()
	if l, ok := c.lists[key]; ok {
		c.mu.RUnlock()
		return l, nil
	}
	c.mu.RUnlock()

	ranked, err := c.src.Ranked(ctx, lang, c.topN)
	if err != nil {
		return WordList{}, err
	}
	list := filterLength(ranked, length)
	if len(list) == 0 {
		return WordList{}, fmt.Errorf("%w: lang=%s length=%d", ErrEmptyWordList, lang, length)
	}
	wl := NewWordList(list)

	c.mu.Lock()
	c.lists[key] = wl
	c.mu.Unlock()

	log.Debug().Str("lang", lang).Int("length", length).Int("words", wl.Len()).Msg("word list built")
	return wl, nil
}

// filterLength keeps lowercase, letters-only words of exactly length runes,
// dropping duplicates and preserving order.
func filterLength(ranked []string, length int) []string {
	out := make([]string, 0, len(ranked)/8)
	seen := make(map[string]struct{})
	for _, w := range ranked {
		w = strings.ToLower(strings.TrimSpace(w))
		if utf8.RuneCountInString(w) != length || !isLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isLetters reports whether s is made of letters only.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
