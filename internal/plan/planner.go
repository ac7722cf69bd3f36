package plan

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"doxa/internal/domain"
	"doxa/internal/eventbus"
)

// Planner owns all state of a service plan being edited: the catalog
// snapshot, the live search query, the ordered song selection, gifts,
// announcements and the service header. Every mutation goes through one of
// its methods; a nil bus disables event publishing.
type Planner struct {
	bus  eventbus.EventBus
	log  *zap.Logger
	opts FilterOptions

	catalog []domain.Song
	query   string

	songs         *List[domain.Song]
	gifts         *List[domain.SpiritualGift]
	announcements *List[domain.Announcement]
	service       domain.ServiceInfo

	results []domain.Song
	dirty   bool

	newID func() string
}

// NewPlanner creates an empty planner
func NewPlanner(bus eventbus.EventBus, log *zap.Logger, opts FilterOptions) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{
		bus:           bus,
		log:           log.Named("planner"),
		opts:          opts,
		songs:         NewList[domain.Song](),
		gifts:         NewList[domain.SpiritualGift](),
		announcements: NewList[domain.Announcement](),
		dirty:         true,
		newID:         func() string { return ulid.Make().String() },
	}
}

// Catalog

// SetCatalog replaces the catalog snapshot
func (p *Planner) SetCatalog(songs []domain.Song) {
	p.catalog = append(p.catalog[:0:0], songs...)
	p.dirty = true
	p.log.Debug("catalog replaced", zap.Int("songs", len(songs)))
}

// CatalogSize returns the number of songs in the catalog snapshot
func (p *Planner) CatalogSize() int {
	return len(p.catalog)
}

// SetQuery updates the live search query
func (p *Planner) SetQuery(query string) {
	if query == p.query {
		return
	}
	p.query = query
	p.dirty = true
}

// Query returns the live search query
func (p *Planner) Query() string {
	return p.query
}

// Options returns the active filter options
func (p *Planner) Options() FilterOptions {
	return p.opts
}

// Results returns the catalog songs matching the current query that are not
// yet in the plan
func (p *Planner) Results() []domain.Song {
	if p.dirty {
		p.results = Filter(p.catalog, p.query, p.songs.Items(), p.opts)
		p.dirty = false
	}
	out := make([]domain.Song, len(p.results))
	copy(out, p.results)
	return out
}

// Songs

// Songs returns the planned songs in order
func (p *Planner) Songs() []domain.Song {
	return p.songs.Items()
}

// AppendSong adds song to the end of the plan without any duplicate check
func (p *Planner) AppendSong(song domain.Song) {
	p.songs.Append(song)
	p.dirty = true
	p.publish(eventbus.SongAddedEvent{Song: song, Position: p.songs.Len() - 1})
}

// AddResult appends the i-th entry of the current results to the plan
func (p *Planner) AddResult(i int) (domain.Song, error) {
	results := p.Results()
	if i < 0 || i >= len(results) {
		return domain.Song{}, &IndexError{Op: "add", Index: i, Len: len(results)}
	}
	song := results[i]
	p.AppendSong(song)
	return song, nil
}

// AddSong appends the song with the given id if it is among the current
// results. Songs already planned are never among the results.
func (p *Planner) AddSong(id int64) (domain.Song, error) {
	for i, song := range p.Results() {
		if song.ID == id {
			return p.AddResult(i)
		}
	}
	return domain.Song{}, fmt.Errorf("song %d: %w", id, ErrNotFound)
}

// RemoveSong removes the planned song at position
func (p *Planner) RemoveSong(position int) (domain.Song, error) {
	song, err := p.songs.RemoveAt(position)
	if err != nil {
		return domain.Song{}, err
	}
	p.dirty = true
	p.publish(eventbus.SongRemovedEvent{Song: song, Position: position})
	return song, nil
}

// MoveSong moves the planned song at from so that it ends up at to
func (p *Planner) MoveSong(from, to int) error {
	song, err := p.songs.At(from)
	if err != nil {
		return err
	}
	if err := p.songs.Move(from, to); err != nil {
		return err
	}
	if from != to {
		p.publish(eventbus.SongMovedEvent{SongID: song.ID, From: from, To: to})
	}
	return nil
}

// Spiritual gifts

// Gifts returns the spiritual gifts in order
func (p *Planner) Gifts() []domain.SpiritualGift {
	return p.gifts.Items()
}

// AddGift appends an empty vision entry and returns it
func (p *Planner) AddGift() domain.SpiritualGift {
	gift := domain.SpiritualGift{ID: p.newID(), Type: domain.GiftVision}
	p.gifts.Append(gift)
	p.publish(eventbus.GiftChangedEvent{Kind: domain.ChangeAdded, Gift: gift})
	return gift
}

// UpdateGift replaces the content of the gift with the given id
func (p *Planner) UpdateGift(id, content string) error {
	return p.editGift(id, func(g *domain.SpiritualGift) error {
		g.Content = content
		return nil
	})
}

// SetGiftType changes the type of the gift with the given id
func (p *Planner) SetGiftType(id string, t domain.GiftType) error {
	return p.editGift(id, func(g *domain.SpiritualGift) error {
		if !t.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidGiftType, t)
		}
		g.Type = t
		return nil
	})
}

// RemoveGift deletes the gift with the given id
func (p *Planner) RemoveGift(id string) error {
	i := p.gifts.IndexFunc(func(g domain.SpiritualGift) bool { return g.ID == id })
	if i < 0 {
		return fmt.Errorf("gift %s: %w", id, ErrNotFound)
	}
	gift, err := p.gifts.RemoveAt(i)
	if err != nil {
		return err
	}
	p.publish(eventbus.GiftChangedEvent{Kind: domain.ChangeRemoved, Gift: gift})
	return nil
}

func (p *Planner) editGift(id string, edit func(*domain.SpiritualGift) error) error {
	i := p.gifts.IndexFunc(func(g domain.SpiritualGift) bool { return g.ID == id })
	if i < 0 {
		return fmt.Errorf("gift %s: %w", id, ErrNotFound)
	}
	gift, _ := p.gifts.At(i)
	if err := edit(&gift); err != nil {
		return err
	}
	if err := p.gifts.Set(i, gift); err != nil {
		return err
	}
	p.publish(eventbus.GiftChangedEvent{Kind: domain.ChangeUpdated, Gift: gift})
	return nil
}

// Announcements

// Announcements returns the announcements in order
func (p *Planner) Announcements() []domain.Announcement {
	return p.announcements.Items()
}

// AddAnnouncement appends an empty announcement and returns it
func (p *Planner) AddAnnouncement() domain.Announcement {
	a := domain.Announcement{ID: p.newID()}
	p.announcements.Append(a)
	p.publish(eventbus.AnnouncementChangedEvent{Kind: domain.ChangeAdded, Announcement: a})
	return a
}

// UpdateAnnouncement replaces the content of the announcement with the given id
func (p *Planner) UpdateAnnouncement(id, content string) error {
	i := p.announcements.IndexFunc(func(a domain.Announcement) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("announcement %s: %w", id, ErrNotFound)
	}
	a := domain.Announcement{ID: id, Content: content}
	if err := p.announcements.Set(i, a); err != nil {
		return err
	}
	p.publish(eventbus.AnnouncementChangedEvent{Kind: domain.ChangeUpdated, Announcement: a})
	return nil
}

// RemoveAnnouncement deletes the announcement with the given id
func (p *Planner) RemoveAnnouncement(id string) error {
	i := p.announcements.IndexFunc(func(a domain.Announcement) bool { return a.ID == id })
	if i < 0 {
		return fmt.Errorf("announcement %s: %w", id, ErrNotFound)
	}
	a, err := p.announcements.RemoveAt(i)
	if err != nil {
		return err
	}
	p.publish(eventbus.AnnouncementChangedEvent{Kind: domain.ChangeRemoved, Announcement: a})
	return nil
}

// Service header

// Service returns the service header
func (p *Planner) Service() domain.ServiceInfo {
	return p.service
}

// SetServiceName sets the service name
func (p *Planner) SetServiceName(name string) {
	p.service.Name = strings.TrimSpace(name)
	p.publish(eventbus.ServiceInfoChangedEvent{Service: p.service})
}

// SetServiceDate sets the service date
func (p *Planner) SetServiceDate(date string) {
	p.service.Date = strings.TrimSpace(date)
	p.publish(eventbus.ServiceInfoChangedEvent{Service: p.service})
}

// Snapshot returns a copy of the plan for exporters and persistence
func (p *Planner) Snapshot() domain.Plan {
	return domain.Plan{
		Service:       p.service,
		Songs:         p.songs.Items(),
		Gifts:         p.gifts.Items(),
		Announcements: p.announcements.Items(),
	}
}

// Restore replaces the plan contents with a previously saved plan
func (p *Planner) Restore(plan domain.Plan) {
	p.service = plan.Service
	p.songs.Reset(plan.Songs)
	p.gifts.Reset(plan.Gifts)
	p.announcements.Reset(plan.Announcements)
	p.dirty = true
	p.log.Info("plan restored",
		zap.Int("songs", len(plan.Songs)),
		zap.Int("gifts", len(plan.Gifts)),
		zap.Int("announcements", len(plan.Announcements)))
}

func (p *Planner) publish(e eventbus.DomainEvent) {
	if p.bus != nil {
		p.bus.Publish(e)
	}
}
