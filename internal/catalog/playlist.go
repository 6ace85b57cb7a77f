package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/voidplay/internal/model"
)

// Timeout constants
const (
	DefaultPlaylistTimeout = 60 * time.Second
)

// URL parameters and templates
const (
	PlaylistParam            = "list="
	ParamSeparator           = "&"
	YouTubeVideoURLTemplate  = "https://www.youtube.com/watch?v=%s"
	YouTubeThumbnailTemplate = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
	playlistCategory         = "Playlist"
)

// playlistLister lists every video of a playlist
type playlistLister func(ctx context.Context, playlistID string) ([]model.Video, error)

// PlaylistSource pages through a YouTube playlist listed with yt-dlp. The
// playlist is listed once on the first fetch and paged from memory afterwards.
type PlaylistSource struct {
	playlistID string
	pageSize   int
	timeout    time.Duration
	list       playlistLister

	mu     sync.Mutex
	videos []model.Video
	loaded bool
}

// NewPlaylistSource creates a source for a playlist id or playlist URL
func NewPlaylistSource(playlist string) (*PlaylistSource, error) {
	id := ExtractPlaylistID(playlist)
	if id == "" {
		return nil, fmt.Errorf("could not extract playlist ID from %q", playlist)
	}

	return &PlaylistSource{
		playlistID: id,
		pageSize:   DefaultPageSize,
		timeout:    DefaultPlaylistTimeout,
		list:       listWithYTDLP,
	}, nil
}

// SetPageSize sets the number of videos per page
func (p *PlaylistSource) SetPageSize(size int) {
	p.pageSize = max(1, size)
}

// SetTimeout sets the timeout for the listing request
func (p *PlaylistSource) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// FetchPage returns the page at token, listing the playlist on first use
func (p *PlaylistSource) FetchPage(ctx context.Context, pageToken string) (Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		ctx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()

		videos, err := p.list(ctx, p.playlistID)
		if err != nil {
			return Page{}, fmt.Errorf("list playlist %s: %w", p.playlistID, err)
		}
		log.Printf("Listed playlist %s: %d videos", p.playlistID, len(videos))
		p.videos = videos
		p.loaded = true
	}

	return pageOf(p.videos, pageToken, p.pageSize)
}

// listWithYTDLP fetches playlist items through the yt-dlp library
func listWithYTDLP(ctx context.Context, playlistID string) ([]model.Video, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	now := time.Now()
	videos := make([]model.Video, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		videos = append(videos, model.Video{
			ID:        it.VideoID,
			Title:     it.Title,
			Thumbnail: fmt.Sprintf(YouTubeThumbnailTemplate, it.VideoID),
			URL:       fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Status:    model.VideoStatusPublished,
			Category:  playlistCategory,
			CreatedAt: now,
		})
	}
	return videos, nil
}

// ExtractPlaylistID accepts a bare playlist id or any URL carrying list=
func ExtractPlaylistID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.Contains(value, PlaylistParam) {
		if strings.ContainsAny(value, "/?&=") {
			return ""
		}
		return value
	}

	parts := strings.Split(value, PlaylistParam)
	playlistPart := parts[1]
	if strings.Contains(playlistPart, ParamSeparator) {
		playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
	}
	return playlistPart
}
