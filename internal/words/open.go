package words

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/desktop/assets"
)

// OpenSource picks the frequency source: the SQLite corpus at corpusDB when
// set, else the "<lang>.txt" files in dir, else the embedded lists.
// The returned close func is never nil.
func OpenSource(corpusDB, dir string) (Source, func() error, error) {
	noop := func() error { return nil }

	switch {
	case corpusDB != "":
		src, err := OpenSQLiteSource(corpusDB)
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("db", corpusDB).Msg("words: using sqlite corpus")
		return src, src.Close, nil
	case dir != "":
		fi, err := os.Stat(dir)
		if err != nil {
			return nil, noop, fmt.Errorf("words dir: %w", err)
		}
		if !fi.IsDir() {
			return nil, noop, fmt.Errorf("words dir %s is not a directory", dir)
		}
		log.Info().Str("dir", dir).Msg("words: using frequency files")
		return NewFSSource(os.DirFS(dir)), noop, nil
	}
	log.Debug().Msg("words: using embedded frequency lists")
	return NewFSSource(assets.Frequency()), noop, nil
}
