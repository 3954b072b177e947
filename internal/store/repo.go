package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okarum/beatdeck/internal/beatmap"
)

// ImportedSet is a beatmap set as held in the library, with import
// provenance attached.
type ImportedSet struct {
	beatmap.Set
	ImportBatch string
	ImportedAt  time.Time
}

// SetRepo manages the local beatmap library.
type SetRepo interface {
	// Upsert inserts or replaces a set, recording the import batch id.
	Upsert(ctx context.Context, set *beatmap.Set, batch string) error

	// Get returns the set with the given online id, or nil if absent.
	Get(ctx context.Context, onlineID int64) (*ImportedSet, error)

	// List returns sets whose title, artist or creator contains query,
	// ordered by artist then title. An empty query lists everything.
	List(ctx context.Context, query string) ([]*ImportedSet, error)

	// Count returns the number of sets and the total difficulty count.
	Count(ctx context.Context) (sets int, beatmaps int, err error)

	// Wipe deletes the entire library.
	Wipe(ctx context.Context) error
}

// setRepo implements SetRepo over database/sql.
type setRepo struct {
	db *sql.DB
}

func (r *setRepo) Upsert(ctx context.Context, set *beatmap.Set, batch string) error {
	maps, err := json.Marshal(set.Beatmaps)
	if err != nil {
		return fmt.Errorf("marshal beatmaps: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO beatmap_sets (online_id, title, artist, creator, source, beatmaps, import_batch, imported_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(online_id) DO UPDATE SET
	title        = excluded.title,
	artist       = excluded.artist,
	creator      = excluded.creator,
	source       = excluded.source,
	beatmaps     = excluded.beatmaps,
	import_batch = excluded.import_batch,
	imported_at  = excluded.imported_at`,
		set.OnlineID, set.Title, set.Artist, set.Creator, set.Source,
		string(maps), batch, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert set %d: %w", set.OnlineID, err)
	}
	return nil
}

func (r *setRepo) Get(ctx context.Context, onlineID int64) (*ImportedSet, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT online_id, title, artist, creator, source, beatmaps, import_batch, imported_at
FROM beatmap_sets WHERE online_id = ?`, onlineID)

	set, err := scanSet(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get set %d: %w", onlineID, err)
	}
	return set, nil
}

func (r *setRepo) List(ctx context.Context, query string) ([]*ImportedSet, error) {
	like := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, `
SELECT online_id, title, artist, creator, source, beatmaps, import_batch, imported_at
FROM beatmap_sets
WHERE title LIKE ? OR artist LIKE ? OR creator LIKE ?
ORDER BY artist COLLATE NOCASE, title COLLATE NOCASE`, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sets []*ImportedSet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (r *setRepo) Count(ctx context.Context) (int, int, error) {
	var sets int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beatmap_sets`).Scan(&sets); err != nil {
		return 0, 0, fmt.Errorf("count sets: %w", err)
	}

	// Difficulty counts live inside the JSON column; sum them in Go.
	all, err := r.List(ctx, "")
	if err != nil {
		return 0, 0, err
	}
	var maps int
	for _, s := range all {
		maps += len(s.Beatmaps)
	}
	return sets, maps, nil
}

func (r *setRepo) Wipe(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beatmap_sets`); err != nil {
		return fmt.Errorf("wipe library: %w", err)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSet(row rowScanner) (*ImportedSet, error) {
	var (
		set        ImportedSet
		mapsJSON   string
		importedAt string
	)
	if err := row.Scan(
		&set.OnlineID, &set.Title, &set.Artist, &set.Creator, &set.Source,
		&mapsJSON, &set.ImportBatch, &importedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(mapsJSON), &set.Beatmaps); err != nil {
		return nil, fmt.Errorf("decode beatmaps: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, importedAt); err == nil {
		set.ImportedAt = t
	}
	return &set, nil
}
