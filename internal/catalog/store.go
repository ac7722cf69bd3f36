package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"doxa/internal/domain"
)

// CurrentSchemaVersion is the latest schema version.
// Bump this when adding migrations.
const CurrentSchemaVersion = 1

const dateLayout = "2006-01-02"

// Store is the SQLite backed song catalog
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (creating if needed) the catalog database at path
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("catalog database opened", zap.String("path", path))
	return &Store{db: db, log: log.Named("catalog")}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies schema migrations based on user_version
func migrate(db *sql.DB) error {
	version, err := userVersion(db)
	if err != nil {
		return err
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS songs (
		  id                      INTEGER PRIMARY KEY AUTOINCREMENT,
		  number                  TEXT,
		  title                   TEXT NOT NULL,
		  theme                   TEXT NOT NULL,
		  last_played             TEXT,
		  times_played_last_month INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_songs_theme ON songs(theme);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	return nil
}

func userVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("failed to set user_version: %w", err)
	}
	return nil
}

// SchemaVersion reports the schema version stored in the database
func (s *Store) SchemaVersion() (int, error) {
	return userVersion(s.db)
}

const songColumns = `id, number, title, theme, last_played, times_played_last_month`

// Songs returns the whole catalog in id order
func (s *Store) Songs(ctx context.Context) ([]domain.Song, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+songColumns+` FROM songs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	defer rows.Close()

	songs := []domain.Song{}
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read songs: %w", err)
	}
	return songs, nil
}

// Song returns one song by id
func (s *Store) Song(ctx context.Context, id int64) (domain.Song, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+songColumns+` FROM songs WHERE id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Song{}, fmt.Errorf("%w: %d", ErrSongNotFound, id)
	}
	return song, err
}

// AddSong inserts a song and returns it with its assigned id
func (s *Store) AddSong(ctx context.Context, song domain.Song) (domain.Song, error) {
	if err := Validate(song); err != nil {
		return domain.Song{}, err
	}
	id, err := insertSong(ctx, s.db, song)
	if err != nil {
		return domain.Song{}, err
	}
	song.ID = id
	s.log.Info("song added", zap.Int64("id", id), zap.String("title", song.Title))
	return song, nil
}

// Seed inserts the sample catalog when the songs table is empty and returns
// the number of songs inserted
func (s *Store) Seed(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	samples := SampleSongs()
	for _, song := range samples {
		if _, err := insertSong(ctx, tx, song); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	s.log.Info("catalog seeded", zap.Int("songs", len(samples)))
	return len(samples), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertSong(ctx context.Context, db execer, song domain.Song) (int64, error) {
	var lastPlayed sql.NullString
	if song.LastPlayed != nil {
		lastPlayed = sql.NullString{String: song.LastPlayed.Format(dateLayout), Valid: true}
	}
	number := sql.NullString{String: song.Number, Valid: song.Number != ""}

	res, err := db.ExecContext(ctx,
		`INSERT INTO songs (number, title, theme, last_played, times_played_last_month) VALUES (?, ?, ?, ?, ?)`,
		number, song.Title, song.Theme, lastPlayed, song.TimesPlayedLastMonth,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert song %q: %w", song.Title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read song id: %w", err)
	}
	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSong(row scanner) (domain.Song, error) {
	var (
		song       domain.Song
		number     sql.NullString
		lastPlayed sql.NullString
		played     sql.NullInt64
	)
	if err := row.Scan(&song.ID, &number, &song.Title, &song.Theme, &lastPlayed, &played); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Song{}, err
		}
		return domain.Song{}, fmt.Errorf("failed to scan song: %w", err)
	}
	song.Number = number.String
	song.TimesPlayedLastMonth = int(played.Int64)
	if lastPlayed.Valid && lastPlayed.String != "" {
		t, err := time.Parse(dateLayout, lastPlayed.String)
		if err != nil {
			return domain.Song{}, fmt.Errorf("song %d: bad last_played %q: %w", song.ID, lastPlayed.String, err)
		}
		song.LastPlayed = &t
	}
	return song, nil
}
