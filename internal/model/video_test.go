package model

import "testing"

func TestVideo_ProgressPercent(t *testing.T) {
	tests := []struct {
		name     string
		video    Video
		expected int
		ok       bool
	}{
		{"processing with progress", Video{Status: VideoStatusProcessing, Progress: Intn(42)}, 42, true},
		{"processing clamps high", Video{Status: VideoStatusProcessing, Progress: Intn(140)}, 100, true},
		{"processing clamps low", Video{Status: VideoStatusProcessing, Progress: Intn(-5)}, 0, true},
		{"processing without progress", Video{Status: VideoStatusProcessing}, 0, false},
		{"published ignores progress", Video{Status: VideoStatusPublished, Progress: Intn(50)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.video.ProgressPercent()
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ProgressPercent() = (%d, %v), expected (%d, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestVideo_ETAMinutes(t *testing.T) {
	tests := []struct {
		name     string
		video    Video
		expected int
		ok       bool
	}{
		{"discovered with eta", Video{Status: VideoStatusDiscovered, ETA: Intn(15)}, 15, true},
		{"discovered negative eta", Video{Status: VideoStatusDiscovered, ETA: Intn(-3)}, 0, true},
		{"discovered without eta", Video{Status: VideoStatusDiscovered}, 0, false},
		{"published ignores eta", Video{Status: VideoStatusPublished, ETA: Intn(15)}, 0, false},
		{"processing ignores eta", Video{Status: VideoStatusProcessing, ETA: Intn(15)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.video.ETAMinutes()
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ETAMinutes() = (%d, %v), expected (%d, %v)", got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestVideo_Matches(t *testing.T) {
	video := Video{
		Title:    "Neon Drift: Night Run",
		Author:   "Pulse Lab",
		Category: "Music",
		Tags:     []string{"synthwave", "retro"},
	}

	tests := []struct {
		query    string
		expected bool
	}{
		{"neon", true},
		{"PULSE", true},
		{"music", true},
		{"synth", true},
		{"  retro ", true},
		{"jazz", false},
		{"", false},
	}

	for _, test := range tests {
		if got := video.Matches(test.query); got != test.expected {
			t.Errorf("Matches(%q) = %v, expected %v", test.query, got, test.expected)
		}
	}
}

func TestVideo_HasBadge(t *testing.T) {
	video := Video{Badges: []Badge{BadgeNew, Badge4K}}

	if !video.HasBadge(Badge4K) {
		t.Error("Expected video to carry 4K badge")
	}
	if video.HasBadge(BadgeLive) {
		t.Error("Expected video not to carry LIVE badge")
	}
}

func TestJob_CanRetry(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, true},
		{JobStatusProcessing, false},
		{JobStatusUploading, false},
		{JobStatusPublished, false},
		{JobStatusFailed, true},
	}

	for _, test := range tests {
		job := &Job{Status: test.status}
		if got := job.CanRetry(); got != test.expected {
			t.Errorf("Job{Status: %s}.CanRetry() = %v, expected %v", test.status, got, test.expected)
		}
	}
}
