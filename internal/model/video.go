package model

import (
	"strings"
	"time"
)

// Badge is a short marker rendered on top of a video thumbnail
type Badge string

const (
	BadgeNew  Badge = "NEW"
	BadgeHot  Badge = "HOT"
	BadgeLive Badge = "LIVE"
	Badge4K   Badge = "4K"
	BadgeHD   Badge = "HD"
)

// Video represents a single catalog entry
type Video struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Thumbnail    string      `json:"thumbnail"`
	Duration     int         `json:"duration"` // seconds
	Views        int64       `json:"views"`
	Author       string      `json:"author"`
	AuthorAvatar string      `json:"author_avatar,omitempty"`
	Status       VideoStatus `json:"status"`
	Progress     *int        `json:"progress,omitempty"` // percent, only while processing
	ETA          *int        `json:"eta,omitempty"`      // minutes, only while discovered
	Badges       []Badge     `json:"badges"`
	CreatedAt    time.Time   `json:"created_at"`
	Category     string      `json:"category"`
	Tags         []string    `json:"tags"`
	URL          string      `json:"url,omitempty"`
}

// IsPlayable reports whether the video can be loaded into the player
func (v *Video) IsPlayable() bool {
	return v.Status.IsPlayable()
}

// ProgressPercent returns the processing progress clamped to 0..100.
// The second value is false unless the video is processing and carries progress.
func (v *Video) ProgressPercent() (int, bool) {
	if v.Status != VideoStatusProcessing || v.Progress == nil {
		return 0, false
	}
	p := *v.Progress
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return p, true
}

// ETAMinutes returns the estimated minutes until processing starts.
// The second value is false unless the video is discovered and carries an ETA.
func (v *Video) ETAMinutes() (int, bool) {
	if v.Status != VideoStatusDiscovered || v.ETA == nil {
		return 0, false
	}
	if *v.ETA < 0 {
		return 0, true
	}
	return *v.ETA, true
}

// HasBadge checks if the video carries the given badge
func (v *Video) HasBadge(b Badge) bool {
	for _, badge := range v.Badges {
		if badge == b {
			return true
		}
	}
	return false
}

// Matches reports whether the query appears in the title, author, category or tags
func (v *Video) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Author), q) ||
		strings.Contains(strings.ToLower(v.Category), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Category groups catalog videos for the categories screen
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Thumbnail  string `json:"thumbnail"`
	VideoCount int    `json:"video_count"`
}

// SuggestionType classifies a search suggestion
type SuggestionType string

const (
	SuggestionRecent   SuggestionType = "recent"
	SuggestionTrending SuggestionType = "trending"
	SuggestionCategory SuggestionType = "category"
)

// SearchSuggestion is a clickable hint shown under the search box
type SearchSuggestion struct {
	Type  SuggestionType `json:"type"`
	Label string         `json:"label"`
	Value string         `json:"value"`
	Count int            `json:"count,omitempty"`
}

// Intn returns a pointer to n, handy for optional Progress/ETA fields
func Intn(n int) *int {
	return &n
}
