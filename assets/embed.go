// Package assets embeds the default word frequency lists.
//
// Each file freq/<lang>.txt holds one word per line, most frequent first.
// Blank lines and lines starting with '#' are ignored by readers.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed freq/*.txt
var files embed.FS

// Frequency returns the embedded lists rooted so that "en.txt" resolves.
func Frequency() fs.FS {
	sub, err := fs.Sub(files, "freq")
	if err != nil {
		// freq/ is embedded at build time; Sub only fails on a bad pattern.
		panic(err)
	}
	return sub
}
