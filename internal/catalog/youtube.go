package catalog

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/model"
)

// YouTube Data API request parameters
const (
	youtubePartID             = "id"
	youtubePartSnippet        = "snippet"
	youtubePartContentDetails = "contentDetails"
	youtubePartStatistics     = "statistics"
	youtubeTypeVideo          = "video"
	youtubeDefinitionHD       = "hd"
	youtubeCategory           = "YouTube"
)

// YouTubeSource pages search results of the YouTube Data API. Page tokens are
// the API's own nextPageToken values.
type YouTubeSource struct {
	service  *youtube.Service
	query    string
	pageSize int64
}

// NewYouTubeSource creates a search-backed source for query
func NewYouTubeSource(ctx context.Context, apiKey, query string, opts ...option.ClientOption) (*YouTubeSource, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &YouTubeSource{
		service:  service,
		query:    query,
		pageSize: DefaultPageSize,
	}, nil
}

// SetPageSize sets maxResults, limited to 1..50 by the API
func (y *YouTubeSource) SetPageSize(size int) {
	y.pageSize = int64(max(1, min(size, 50)))
}

// FetchPage runs one search request and resolves durations and view counts
// for the returned ids with a single videos request
func (y *YouTubeSource) FetchPage(ctx context.Context, pageToken string) (Page, error) {
	call := y.service.Search.List([]string{youtubePartID, youtubePartSnippet}).
		Q(y.query).
		Type(youtubeTypeVideo).
		MaxResults(y.pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return Page{}, fmt.Errorf("youtube search: %w", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		ids = append(ids, item.Id.VideoId)
	}

	details := make(map[string]*youtube.Video, len(ids))
	if len(ids) > 0 {
		videosResp, err := y.service.Videos.List([]string{youtubePartContentDetails, youtubePartStatistics}).
			Id(ids...).
			Context(ctx).
			Do()
		if err != nil {
			return Page{}, fmt.Errorf("youtube videos: %w", err)
		}
		for _, v := range videosResp.Items {
			details[v.Id] = v
		}
	}

	items := make([]model.Video, 0, len(ids))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		items = append(items, y.toVideo(item, details[item.Id.VideoId]))
	}

	return Page{
		Items:     items,
		NextToken: response.NextPageToken,
		HasMore:   response.NextPageToken != "",
	}, nil
}

func (y *YouTubeSource) toVideo(item *youtube.SearchResult, detail *youtube.Video) model.Video {
	id := item.Id.VideoId
	video := model.Video{
		ID:       id,
		Title:    item.Snippet.Title,
		Author:   item.Snippet.ChannelTitle,
		Status:   model.VideoStatusPublished,
		Category: youtubeCategory,
		URL:      fmt.Sprintf(YouTubeVideoURLTemplate, id),
	}

	if thumbs := item.Snippet.Thumbnails; thumbs != nil {
		switch {
		case thumbs.High != nil:
			video.Thumbnail = thumbs.High.Url
		case thumbs.Medium != nil:
			video.Thumbnail = thumbs.Medium.Url
		case thumbs.Default != nil:
			video.Thumbnail = thumbs.Default.Url
		}
	}
	if video.Thumbnail == "" {
		video.Thumbnail = fmt.Sprintf(YouTubeThumbnailTemplate, id)
	}

	if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		video.CreatedAt = published
	}

	if detail != nil {
		if detail.ContentDetails != nil {
			seconds, err := format.ISODuration(detail.ContentDetails.Duration)
			if err != nil {
				log.Printf("Skipping duration for %s: %v", id, err)
			} else {
				video.Duration = seconds
			}
			if detail.ContentDetails.Definition == youtubeDefinitionHD {
				video.Badges = append(video.Badges, model.BadgeHD)
			}
		}
		if detail.Statistics != nil {
			video.Views = int64(detail.Statistics.ViewCount)
		}
	}

	return video
}
