// Package catalog supplies pages of videos to the feed. It defines the Source
// contract and ships three implementations: an in-memory mock corpus, the
// YouTube Data API search endpoint and a yt-dlp backed playlist listing.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ytget/voidplay/internal/model"
)

// ErrInvalidToken is returned when a page token was not issued by the source
var ErrInvalidToken = errors.New("invalid page token")

// DefaultPageSize matches the number of cards in one feed page
const DefaultPageSize = 12

// Page is one slice of a catalog listing
type Page struct {
	Items     []model.Video
	NextToken string
	HasMore   bool
}

// Source fetches catalog pages. An empty token requests the first page.
type Source interface {
	FetchPage(ctx context.Context, pageToken string) (Page, error)
}

// pageOf slices items at the offset encoded in token
func pageOf(items []model.Video, token string, size int) (Page, error) {
	offset, err := parseOffset(token)
	if err != nil {
		return Page{}, err
	}
	if offset > len(items) {
		return Page{}, fmt.Errorf("%w: offset %d beyond %d items", ErrInvalidToken, offset, len(items))
	}

	end := min(offset+size, len(items))
	page := Page{
		Items:   append([]model.Video(nil), items[offset:end]...),
		HasMore: end < len(items),
	}
	if page.HasMore {
		page.NextToken = strconv.Itoa(end)
	}
	return page, nil
}

func parseOffset(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return offset, nil
}
