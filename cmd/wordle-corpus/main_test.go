package main

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportThenWords(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "corpus.db")
	list := filepath.Join(dir, "fr.txt")
	require.NoError(t, os.WriteFile(list, []byte("# fr\nmonde\nle\nterre\nmonde\n"), 0o644))

	_, err := run(t, "import", "--db", db, "--lang", "fr", list)
	require.NoError(t, err)

	out, err := run(t, "words", "--db", db, "--lang", "fr", "--length", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"2 words (fr, length 5)", "monde", "terre"}, lines)
}

func TestSeed(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")

	_, err := run(t, "seed", "--db", db)
	require.NoError(t, err)

	out, err := run(t, "words", "--db", db, "--lang", "es", "--length", "5", "--limit", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "en.txt")
	require.NoError(t, os.WriteFile(list, []byte("word\n"), 0o644))

	_, err := run(t, "import", "--db", "", list)
	require.Error(t, err, "db is required")

	_, err = run(t, "import", "--db", filepath.Join(dir, "c.db"), "--lang", "pt", list)
	require.Error(t, err)

	_, err = run(t, "import", "--db", filepath.Join(dir, "c.db"), filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestSourcesAreGofmted(t *testing.T) {
	for _, path := range []string{
		"main.go",
		filepath.Join("..", "..", "internal", "ui", "theme.go"),
	} {
		src, err := os.ReadFile(path)
		require.NoError(t, err)
		want, err := format.Source(src)
		require.NoError(t, err, path)
		assert.Equal(t, string(want), string(src), "%s needs gofmt", path)
	}
}
