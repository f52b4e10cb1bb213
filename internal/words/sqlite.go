// internal/words/sqlite.go
//
// SQLite-backed frequency corpus.
// Responsibilities:
//   - Opening the corpus database with a busy timeout (rollback journal, so
//     the finished file can be opened read-only without -wal/-shm siblings).
//   - Applying the embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Importing a ranked word list for one language.
//   - Serving ranked lookups read-only to the game (SQLiteSource).

package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

/**
 * OpenCorpusDB opens (and creates if missing) a corpus database for writing.
 *
 * - Ensures parent directory exists for relative paths (e.g. ./data/corpus.db).
 * - Configures busy timeout; keeps the default rollback journal.
 */
func OpenCorpusDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = DELETE;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * Migrate applies the embedded SQL migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order, each in its own transaction.
 * - Skips files already applied.
 */
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk sql dir: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Import replaces the ranked list stored for lang. Ranks start at 1 and
// follow the order of list; blank entries are skipped.
func Import(ctx context.Context, db *sql.DB, lang string, list []string) (int, error) {
	if !IsSupported(lang) {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM frequency WHERE lang=?`, lang); err != nil {
		return 0, fmt.Errorf("clear %s: %w", lang, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO frequency (lang, rank, word) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	rank := 0
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		rank++
		if _, err := stmt.ExecContext(ctx, lang, rank, w); err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rank, nil
}

// SQLiteSource serves ranked lookups from a corpus database.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLiteSource opens an existing corpus database read-only.
func OpenSQLiteSource(path string) (*SQLiteSource, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("corpus db: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("corpus db: %w", err)
	}
	return &SQLiteSource{db: db}, nil
}

// NewSQLiteSource wraps an already-open database.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Ranked implements Source.
func (s *SQLiteSource) Ranked(ctx context.Context, lang string, n int) ([]string, error) {
	if !IsSupported(lang) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM frequency WHERE lang=? ORDER BY rank ASC LIMIT ?`, lang, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error { return s.db.Close() }
