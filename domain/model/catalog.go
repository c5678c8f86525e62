package model

import "time"

// Platform identifies the hosting service a video lives on. It is only
// used by the presentation layer to build embed URLs.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformVimeo   Platform = "vimeo"
	PlatformMuse    Platform = "muse"
)

// Problem is a student problem statement a video addresses. Problems are
// referenced by videos, never owned by them, so they are embedded as
// plain values on the video view.
type Problem struct {
	Text  string `json:"text"`
	Theme string `json:"theme"`
}

// Video is the denormalized catalog view of a single video row. The same
// *Video instance is shared between Catalog.Videos and every category
// list it appears in, so a like-count update is visible from both.
type Video struct {
	ID         int64     `json:"id"`
	Platform   Platform  `json:"platform"`
	PlatformID string    `json:"platform_id"`
	Title      string    `json:"title"`
	Keywords   string    `json:"keywords"`
	ViewCount  int       `json:"view_count"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
	Categories []string  `json:"categories"`
	Problems   []Problem `json:"problems,omitempty"`
}

// Category groups videos for display. A category references its videos;
// it does not own them.
type Category struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Videos      []*Video `json:"videos"`
}

// FreshCategoryKey is reserved for the derived recent-videos section.
// The leading underscore keeps it out of the persisted key space; the
// admin surface rejects keys starting with an underscore.
const FreshCategoryKey = "_FRESH"

// FreshWindow is the trailing window inside which a video counts as fresh.
const FreshWindow = 14 * 24 * time.Hour

// Catalog is the full view model handed to the presentation boundary.
// Order preserves the storage order of category keys since a Go map does not.
type Catalog struct {
	Categories map[string]*Category `json:"categories"`
	Order      []string             `json:"order"`
	Videos     []*Video             `json:"videos"`
}

// NewCatalog returns an empty but non-nil catalog. Loaders return this on
// storage failure so callers never see a partial view model.
func NewCatalog() Catalog {
	return Catalog{Categories: map[string]*Category{}, Order: []string{}, Videos: []*Video{}}
}
