package daily

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)

	assert.Equal(t, "2026-02-28", DateKey(d))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	later := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 100)
	require.GreaterOrEqual(t, i, 0)
	require.Less(t, i, 100)

	// Same calendar day, same index.
	assert.Equal(t, i, WordIndex(later, "salt", 100))
	assert.Equal(t, 0, WordIndex(day, "salt", 0))

	// Very long salts are accepted.
	long := strings.Repeat("s", 200)
	j := WordIndex(day, long, 100)
	assert.Equal(t, j, WordIndex(later, long, 100))
}

func TestWordIndex_SpreadsAcrossDays(t *testing.T) {
	seen := map[int]bool{}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 60; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 40)
}

func TestPick(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	list := []string{"crane", "slate", "trace"}

	w := Pick(list, day, "salt")
	assert.Contains(t, list, w)
	assert.Equal(t, w, Pick(list, day, "salt"))
	assert.Equal(t, "", Pick(nil, day, "salt"))
}
