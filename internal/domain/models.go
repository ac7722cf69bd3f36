package domain

import "time"

// Song represents a catalog entry that can be placed into a service plan
type Song struct {
	ID                   int64
	Number               string
	Title                string
	Theme                string
	LastPlayed           *time.Time // nil if never played
	TimesPlayedLastMonth int
}

// GiftType is the kind of spiritual gift being recorded
type GiftType string

const (
	GiftVision     GiftType = "vision"
	GiftRevelation GiftType = "revelation"
	GiftDream      GiftType = "dream"
)

// GiftTypes lists the gift types in display order
var GiftTypes = []GiftType{GiftVision, GiftRevelation, GiftDream}

// Valid reports whether t is a known gift type
func (t GiftType) Valid() bool {
	for _, known := range GiftTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Next returns the gift type following t, wrapping around
func (t GiftType) Next() GiftType {
	for i, known := range GiftTypes {
		if t == known {
			return GiftTypes[(i+1)%len(GiftTypes)]
		}
	}
	return GiftVision
}

// SpiritualGift is a vision, revelation or dream shared during the service
type SpiritualGift struct {
	ID      string
	Type    GiftType
	Content string
}

// Announcement is a free-text notice read during the service
type Announcement struct {
	ID      string
	Content string
}

// ServiceInfo holds the service header fields
type ServiceInfo struct {
	Name string
	Date string // YYYY-MM-DD, empty if undated
}

// Plan is a point-in-time copy of everything planned for a service
type Plan struct {
	Service       ServiceInfo
	Songs         []Song
	Gifts         []SpiritualGift
	Announcements []Announcement
}
