package words

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRanked(t *testing.T) {
	in := "# header\nthe\n\n  of \n#skip\nand\nto\n"

	got, err := ReadRanked(context.Background(), strings.NewReader(in), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "of", "and"}, got)
}

func TestReadRanked_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadRanked(ctx, strings.NewReader("a\nb\n"), 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOpenSource_Embedded(t *testing.T) {
	src, closeFn, err := OpenSource("", "")
	require.NoError(t, err)
	defer closeFn()

	got, err := src.Ranked(context.Background(), "en", 5)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestOpenSource_Dir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.txt"), []byte("haus\nmaus\n"), 0o644))

	src, closeFn, err := OpenSource("", dir)
	require.NoError(t, err)
	defer closeFn()

	got, err := src.Ranked(context.Background(), "de", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"haus", "maus"}, got)

	_, _, err = OpenSource("", filepath.Join(dir, "de.txt"))
	require.Error(t, err, "a file is not a words dir")

	_, _, err = OpenSource("", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestOpenSource_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	db, err := OpenCorpusDB(path)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	_, err = Import(context.Background(), db, "it", []string{"casa", "mare"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// The database wins over the directory.
	src, closeFn, err := OpenSource(path, t.TempDir())
	require.NoError(t, err)
	defer closeFn()

	got, err := src.Ranked(context.Background(), "it", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"casa", "mare"}, got)
}
