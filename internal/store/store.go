package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the library database and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Sets returns the beatmap set repository backed by this store.
func (s *Store) Sets() SetRepo {
	return &setRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the library tables.
func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS beatmap_sets (
	online_id    INTEGER PRIMARY KEY,
	title        TEXT NOT NULL,
	artist       TEXT NOT NULL,
	creator      TEXT NOT NULL,
	source       TEXT NOT NULL DEFAULT '',
	beatmaps     TEXT NOT NULL,
	import_batch TEXT NOT NULL,
	imported_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_beatmap_sets_title ON beatmap_sets(title);
CREATE INDEX IF NOT EXISTS idx_beatmap_sets_artist ON beatmap_sets(artist);
`
	_, err := db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. BEATDECK_DB environment variable
// 2. $XDG_DATA_HOME/beatdeck/library.db
// 3. ~/.local/share/beatdeck/library.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("BEATDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "beatdeck", "library.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
