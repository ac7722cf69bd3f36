package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadStarted     EventType = "CatalogLoadStarted"
	EventCatalogLoaded          EventType = "CatalogLoaded"
	EventCatalogReloadRequested EventType = "CatalogReloadRequested"
	EventSongAdded              EventType = "SongAdded"
	EventSongRemoved            EventType = "SongRemoved"
	EventSongMoved              EventType = "SongMoved"
	EventGiftChanged            EventType = "GiftChanged"
	EventAnnouncementChanged    EventType = "AnnouncementChanged"
	EventServiceInfoChanged     EventType = "ServiceInfoChanged"
	EventPlanExported           EventType = "PlanExported"
	EventPlanSaved              EventType = "PlanSaved"
	EventError                  EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadStartedEvent is emitted when a catalog load begins
type CatalogLoadStartedEvent struct{}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadedEvent carries a fresh catalog snapshot
type CatalogLoadedEvent struct {
	Songs []Song
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadRequestedEvent asks the loader to read the catalog again
type CatalogReloadRequestedEvent struct{}

func (e CatalogReloadRequestedEvent) Type() EventType { return EventCatalogReloadRequested }

// SongAddedEvent is emitted when a song is appended to the plan
type SongAddedEvent struct {
	Song     Song
	Position int
}

func (e SongAddedEvent) Type() EventType { return EventSongAdded }

// SongRemovedEvent is emitted when a song is removed from the plan
type SongRemovedEvent struct {
	Song     Song
	Position int
}

func (e SongRemovedEvent) Type() EventType { return EventSongRemoved }

// SongMovedEvent is emitted when a planned song changes position
type SongMovedEvent struct {
	SongID int64
	From   int
	To     int
}

func (e SongMovedEvent) Type() EventType { return EventSongMoved }

// ChangeKind describes what happened to a gift or announcement
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
)

// GiftChangedEvent is emitted when a spiritual gift is added, edited or removed
type GiftChangedEvent struct {
	Kind ChangeKind
	Gift SpiritualGift
}

func (e GiftChangedEvent) Type() EventType { return EventGiftChanged }

// AnnouncementChangedEvent is emitted when an announcement is added, edited or removed
type AnnouncementChangedEvent struct {
	Kind         ChangeKind
	Announcement Announcement
}

func (e AnnouncementChangedEvent) Type() EventType { return EventAnnouncementChanged }

// ServiceInfoChangedEvent is emitted when the service name or date changes
type ServiceInfoChangedEvent struct {
	Service ServiceInfo
}

func (e ServiceInfoChangedEvent) Type() EventType { return EventServiceInfoChanged }

// PlanExportedEvent is emitted after a plan document has been written
type PlanExportedEvent struct {
	Path   string
	Format string
}

func (e PlanExportedEvent) Type() EventType { return EventPlanExported }

// PlanSavedEvent is emitted after the plan file has been written
type PlanSavedEvent struct {
	Path string
}

func (e PlanSavedEvent) Type() EventType { return EventPlanSaved }

// ErrorEvent is emitted when a background operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
