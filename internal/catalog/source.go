package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"doxa/internal/domain"
)

var (
	// ErrSongNotFound is returned when a song id is not in the catalog
	ErrSongNotFound = errors.New("song not found")
	// ErrInvalidSong is returned when a song is missing a title or theme
	ErrInvalidSong = errors.New("invalid song")
)

// Source provides the song catalog
type Source interface {
	Songs(ctx context.Context) ([]domain.Song, error)
}

// Validate checks the fields every catalog song must carry
func Validate(song domain.Song) error {
	if song.Title == "" {
		return errors.Join(ErrInvalidSong, errors.New("title is required"))
	}
	if song.Theme == "" {
		return errors.Join(ErrInvalidSong, errors.New("theme is required"))
	}
	return nil
}

// MemorySource is an in-memory catalog
type MemorySource struct {
	mu     sync.RWMutex
	songs  []domain.Song
	nextID int64
}

// NewMemorySource creates a catalog holding songs in the given order
func NewMemorySource(songs ...domain.Song) *MemorySource {
	m := &MemorySource{}
	for _, s := range songs {
		m.songs = append(m.songs, s)
		if s.ID >= m.nextID {
			m.nextID = s.ID + 1
		}
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
	return m
}

// Songs returns a copy of the catalog
func (m *MemorySource) Songs(ctx context.Context) ([]domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Song, len(m.songs))
	copy(out, m.songs)
	return out, nil
}

// AddSong appends a song, assigning the next free id
func (m *MemorySource) AddSong(ctx context.Context, song domain.Song) (domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return domain.Song{}, err
	}
	if err := Validate(song); err != nil {
		return domain.Song{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	song.ID = m.nextID
	m.nextID++
	m.songs = append(m.songs, song)
	return song, nil
}

// SampleSongs returns the starter catalog of hymns and contemporary songs
func SampleSongs() []domain.Song {
	return []domain.Song{
		{ID: 1, Number: "101", Title: "Amazing Grace", Theme: "Hymn", LastPlayed: day(2023, 12, 10), TimesPlayedLastMonth: 2},
		{ID: 2, Number: "102", Title: "How Great Thou Art", Theme: "Hymn", LastPlayed: day(2023, 11, 15), TimesPlayedLastMonth: 1},
		{ID: 3, Number: "103", Title: "Great Is Thy Faithfulness", Theme: "Hymn", LastPlayed: day(2023, 12, 24), TimesPlayedLastMonth: 3},
		{ID: 4, Number: "201", Title: "Holy Spirit", Theme: "Contemporary", LastPlayed: day(2024, 1, 7), TimesPlayedLastMonth: 2},
		{ID: 5, Number: "202", Title: "10,000 Reasons", Theme: "Contemporary", LastPlayed: day(2023, 12, 17), TimesPlayedLastMonth: 1},
		{ID: 6, Number: "203", Title: "Cornerstone", Theme: "Contemporary", LastPlayed: day(2024, 1, 14), TimesPlayedLastMonth: 2},
		{ID: 7, Number: "104", Title: "Blessed Assurance", Theme: "Hymn", LastPlayed: day(2023, 10, 22), TimesPlayedLastMonth: 0},
		{ID: 8, Number: "204", Title: "What A Beautiful Name", Theme: "Contemporary", LastPlayed: day(2023, 12, 3), TimesPlayedLastMonth: 1},
	}
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
