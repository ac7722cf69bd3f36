// Package planfile stores service plans as TOML documents.
package planfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"doxa/internal/domain"
	"doxa/internal/plan"
)

// Version is written into every plan file
const Version = 1

const dateLayout = "2006-01-02"

type file struct {
	Version       int                `toml:"version"`
	Service       serviceRecord      `toml:"service"`
	Songs         []songRecord       `toml:"songs"`
	Gifts         []giftRecord       `toml:"gifts"`
	Announcements []announcementItem `toml:"announcements"`
}

type serviceRecord struct {
	Name string `toml:"name"`
	Date string `toml:"date"`
}

type songRecord struct {
	ID                   int64  `toml:"id"`
	Number               string `toml:"number,omitempty"`
	Title                string `toml:"title"`
	Theme                string `toml:"theme"`
	LastPlayed           string `toml:"last_played,omitempty"`
	TimesPlayedLastMonth int    `toml:"times_played_last_month,omitempty"`
}

type giftRecord struct {
	ID      string `toml:"id"`
	Type    string `toml:"type"`
	Content string `toml:"content"`
}

type announcementItem struct {
	ID      string `toml:"id"`
	Content string `toml:"content"`
}

// Save writes plan to path, replacing any existing file
func Save(path string, p domain.Plan) error {
	f := file{
		Version: Version,
		Service: serviceRecord{Name: p.Service.Name, Date: p.Service.Date},
	}
	for _, s := range p.Songs {
		rec := songRecord{
			ID:                   s.ID,
			Number:               s.Number,
			Title:                s.Title,
			Theme:                s.Theme,
			TimesPlayedLastMonth: s.TimesPlayedLastMonth,
		}
		if s.LastPlayed != nil {
			rec.LastPlayed = s.LastPlayed.Format(dateLayout)
		}
		f.Songs = append(f.Songs, rec)
	}
	for _, g := range p.Gifts {
		f.Gifts = append(f.Gifts, giftRecord{ID: g.ID, Type: string(g.Type), Content: g.Content})
	}
	for _, a := range p.Announcements {
		f.Announcements = append(f.Announcements, announcementItem{ID: a.ID, Content: a.Content})
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}
	out, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create plan file: %w", err)
	}
	tmp := out.Name()
	_, err = out.Write(data)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0644)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace plan file: %w", err)
	}
	return nil
}

// Load reads a plan written by Save
func Load(path string) (domain.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("failed to read plan file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if f.Version > Version {
		return domain.Plan{}, fmt.Errorf("plan file version %d is newer than supported version %d", f.Version, Version)
	}

	p := domain.Plan{
		Service:       domain.ServiceInfo{Name: f.Service.Name, Date: f.Service.Date},
		Songs:         make([]domain.Song, 0, len(f.Songs)),
		Gifts:         make([]domain.SpiritualGift, 0, len(f.Gifts)),
		Announcements: make([]domain.Announcement, 0, len(f.Announcements)),
	}
	for _, rec := range f.Songs {
		song := domain.Song{
			ID:                   rec.ID,
			Number:               rec.Number,
			Title:                rec.Title,
			Theme:                rec.Theme,
			TimesPlayedLastMonth: rec.TimesPlayedLastMonth,
		}
		if rec.LastPlayed != "" {
			t, err := time.Parse(dateLayout, rec.LastPlayed)
			if err != nil {
				return domain.Plan{}, fmt.Errorf("song %d: bad last_played %q: %w", rec.ID, rec.LastPlayed, err)
			}
			song.LastPlayed = &t
		}
		p.Songs = append(p.Songs, song)
	}
	for _, rec := range f.Gifts {
		t := domain.GiftType(rec.Type)
		if !t.Valid() {
			return domain.Plan{}, fmt.Errorf("gift %s: %w %q", rec.ID, plan.ErrInvalidGiftType, rec.Type)
		}
		p.Gifts = append(p.Gifts, domain.SpiritualGift{ID: rec.ID, Type: t, Content: rec.Content})
	}
	for _, rec := range f.Announcements {
		p.Announcements = append(p.Announcements, domain.Announcement{ID: rec.ID, Content: rec.Content})
	}
	return p, nil
}
