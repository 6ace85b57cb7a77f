// Package library records the favorite and report intents raised from video cards.
package library

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ytget/voidplay/internal/model"
)

// ReportReason classifies a content report
type ReportReason string

const (
	ReasonSpam       ReportReason = "spam"
	ReasonMisleading ReportReason = "misleading"
	ReasonCopyright  ReportReason = "copyright"
	ReasonOther      ReportReason = "other"
)

// Reasons lists the accepted report reasons
var Reasons = []ReportReason{ReasonSpam, ReasonMisleading, ReasonCopyright, ReasonOther}

var (
	// ErrInvalidReason is returned for reasons outside Reasons
	ErrInvalidReason = errors.New("invalid report reason")
	// ErrAlreadyReported is returned when a video was reported before
	ErrAlreadyReported = errors.New("video already reported")
)

// Report is one content report
type Report struct {
	VideoID   string
	Reason    ReportReason
	Note      string
	CreatedAt time.Time
}

// Library keeps favorites and reports for the running session
type Library struct {
	mu        sync.RWMutex
	favorites map[string]model.Video
	added     map[string]time.Time
	reports   map[string]Report
	now       func() time.Time
	onUpdate  func()
}

// New creates an empty library
func New() *Library {
	return &Library{
		favorites: make(map[string]model.Video),
		added:     make(map[string]time.Time),
		reports:   make(map[string]Report),
		now:       time.Now,
	}
}

// SetUpdateCallback sets the callback invoked after favorites or reports change
func (l *Library) SetUpdateCallback(callback func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onUpdate = callback
}

// ToggleFavorite adds or removes video and returns whether it is now a favorite
func (l *Library) ToggleFavorite(video model.Video) bool {
	l.mu.Lock()
	_, exists := l.favorites[video.ID]
	if exists {
		delete(l.favorites, video.ID)
		delete(l.added, video.ID)
	} else {
		l.favorites[video.ID] = video
		l.added[video.ID] = l.now()
	}
	l.mu.Unlock()

	l.notifyUpdate()
	return !exists
}

// IsFavorite reports whether the video id is a favorite
func (l *Library) IsFavorite(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.favorites[id]
	return ok
}

// Favorites returns favorites, most recently added first
func (l *Library) Favorites() []model.Video {
	l.mu.RLock()
	defer l.mu.RUnlock()

	videos := make([]model.Video, 0, len(l.favorites))
	for _, v := range l.favorites {
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, k int) bool {
		ai, ak := l.added[videos[i].ID], l.added[videos[k].ID]
		if ai.Equal(ak) {
			return videos[i].ID < videos[k].ID
		}
		return ai.After(ak)
	})
	return videos
}

// Report records a content report. A video can be reported once.
func (l *Library) Report(videoID string, reason ReportReason, note string) (Report, error) {
	if !validReason(reason) {
		return Report{}, fmt.Errorf("%w: %q", ErrInvalidReason, reason)
	}

	l.mu.Lock()
	if _, exists := l.reports[videoID]; exists {
		l.mu.Unlock()
		return Report{}, fmt.Errorf("%w: %s", ErrAlreadyReported, videoID)
	}
	report := Report{
		VideoID:   videoID,
		Reason:    reason,
		Note:      strings.TrimSpace(note),
		CreatedAt: l.now(),
	}
	l.reports[videoID] = report
	l.mu.Unlock()

	log.Printf("Video %s reported: %s", videoID, reason)
	l.notifyUpdate()
	return report, nil
}

// IsReported reports whether the video id has a report
func (l *Library) IsReported(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.reports[id]
	return ok
}

// Reports returns all reports, oldest first
func (l *Library) Reports() []Report {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reports := make([]Report, 0, len(l.reports))
	for _, r := range l.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, k int) bool {
		if reports[i].CreatedAt.Equal(reports[k].CreatedAt) {
			return reports[i].VideoID < reports[k].VideoID
		}
		return reports[i].CreatedAt.Before(reports[k].CreatedAt)
	})
	return reports
}

func (l *Library) notifyUpdate() {
	l.mu.RLock()
	callback := l.onUpdate
	l.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func validReason(reason ReportReason) bool {
	for _, r := range Reasons {
		if r == reason {
			return true
		}
	}
	return false
}
