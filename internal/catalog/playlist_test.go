package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ytget/voidplay/internal/model"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"watch URL with list", "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID", "PLAYLIST_ID"},
		{"playlist URL", "https://www.youtube.com/playlist?list=PLAYLIST_ID", "PLAYLIST_ID"},
		{"extra parameters", "https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=1", "PLAYLIST_ID"},
		{"bare id", "PLxyz123", "PLxyz123"},
		{"bare id with spaces", "  PLxyz123 ", "PLxyz123"},
		{"URL without list", "https://www.youtube.com/watch?v=VIDEO_ID", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.value); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewPlaylistSource_InvalidURL(t *testing.T) {
	if _, err := NewPlaylistSource("https://example.com/watch?v=1"); err == nil {
		t.Error("expected error for URL without playlist")
	}
}

func TestPlaylistSource_ListsOnce(t *testing.T) {
	source, err := NewPlaylistSource("https://www.youtube.com/playlist?list=PL1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := 0
	source.list = func(ctx context.Context, playlistID string) ([]model.Video, error) {
		calls++
		if playlistID != "PL1" {
			t.Errorf("expected PL1, got %s", playlistID)
		}
		return numbered(14), nil
	}

	first, err := source.FetchPage(context.Background(), "")
	if err != nil {
		t.Fatalf("first page failed: %v", err)
	}
	if len(first.Items) != DefaultPageSize || !first.HasMore {
		t.Fatalf("unexpected first page: %d items, more=%v", len(first.Items), first.HasMore)
	}

	second, err := source.FetchPage(context.Background(), first.NextToken)
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}
	if len(second.Items) != 2 || second.HasMore {
		t.Errorf("unexpected second page: %d items, more=%v", len(second.Items), second.HasMore)
	}

	if calls != 1 {
		t.Errorf("expected playlist to be listed once, got %d", calls)
	}
}

func TestPlaylistSource_ListErrorIsRetryable(t *testing.T) {
	source, err := NewPlaylistSource("PL2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("network down")
	fail := true
	source.list = func(ctx context.Context, playlistID string) ([]model.Video, error) {
		if fail {
			return nil, boom
		}
		return numbered(1), nil
	}

	if _, err := source.FetchPage(context.Background(), ""); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped listing error, got %v", err)
	}

	fail = false
	page, err := source.FetchPage(context.Background(), "")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(page.Items) != 1 {
		t.Errorf("expected 1 item after retry, got %d", len(page.Items))
	}
}
