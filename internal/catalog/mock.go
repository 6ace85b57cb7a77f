package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ytget/voidplay/internal/model"
)

// DefaultMockDelay simulates network latency for the mock source
const DefaultMockDelay = 800 * time.Millisecond

// Thumbnail URL template for mock entries
const mockThumbnailTemplate = "https://picsum.photos/seed/void-%02d/640/360"

// mockEpoch anchors mock timestamps so the corpus is deterministic
var mockEpoch = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type mockEntry struct {
	title    string
	author   string
	category string
	duration int
	views    int64
	badges   []model.Badge
	tags     []string
}

var mockEntries = []mockEntry{
	{"Neon Drift: Night Run", "Pulse Lab", "Music", 245, 1540000, []model.Badge{model.BadgeHot, model.BadgeHD}, []string{"synthwave", "retro"}},
	{"Deep Ocean Trenches in 4K", "Abyss Films", "Nature", 1820, 870000, []model.Badge{model.Badge4K}, []string{"ocean", "documentary"}},
	{"Building a Tiny Cabin Alone", "Northwood", "DIY", 2410, 2300000, []model.Badge{model.BadgeHot}, []string{"cabin", "woodwork"}},
	{"Street Food of Hanoi After Dark", "Wander Plate", "Food", 968, 412000, []model.Badge{model.BadgeNew}, []string{"street food", "vietnam"}},
	{"Speedrun Finals Highlights", "Frame Perfect", "Gaming", 3605, 5100000, []model.Badge{model.BadgeLive}, []string{"speedrun", "esports"}},
	{"Lo-fi Beats to Focus To", "Pulse Lab", "Music", 7200, 12400000, nil, []string{"lofi", "study"}},
	{"Aurora Timelapse Over Tromsø", "Polar Frame", "Nature", 312, 98000, []model.Badge{model.Badge4K, model.BadgeNew}, []string{"aurora", "timelapse"}},
	{"Restoring a 1970s Camera", "Old Glass", "DIY", 1504, 356000, []model.Badge{model.BadgeHD}, []string{"restoration", "camera"}},
	{"One-Pan Ramen Hacks", "Wander Plate", "Food", 540, 1200000, []model.Badge{model.BadgeHot}, []string{"ramen", "recipe"}},
	{"Indie Game Devlog #12", "Pixel Hearth", "Gaming", 845, 64000, []model.Badge{model.BadgeNew}, []string{"gamedev", "indie"}},
	{"Jazz Café Live Session", "Blue Room", "Music", 2950, 230000, []model.Badge{model.BadgeLive}, []string{"jazz", "live"}},
	{"Desert Storms from Above", "Abyss Films", "Nature", 1122, 745000, []model.Badge{model.Badge4K}, []string{"desert", "drone"}},
	{"Hand-Cut Dovetail Joints", "Northwood", "DIY", 1310, 188000, nil, []string{"woodwork", "joinery"}},
	{"Sourdough Starter From Zero", "Crumb Theory", "Food", 1045, 920000, []model.Badge{model.BadgeHD}, []string{"bread", "baking"}},
	{"Retro Console Teardown", "Frame Perfect", "Gaming", 1488, 310000, nil, []string{"retro", "hardware"}},
	{"Synth Patch Design Basics", "Pulse Lab", "Music", 1720, 145000, []model.Badge{model.BadgeNew}, []string{"synth", "tutorial"}},
	{"Rainforest Canopy Sounds", "Polar Frame", "Nature", 3600, 3300000, []model.Badge{model.BadgeHD}, []string{"ambient", "rainforest"}},
	{"Van Build: Electrical System", "Roam Works", "DIY", 2780, 640000, []model.Badge{model.BadgeHot}, []string{"vanlife", "electrical"}},
	{"Tokyo Izakaya Crawl", "Wander Plate", "Food", 1398, 505000, []model.Badge{model.Badge4K}, []string{"japan", "izakaya"}},
	{"Roguelike Run: No Damage", "Pixel Hearth", "Gaming", 2204, 890000, []model.Badge{model.BadgeHot}, []string{"roguelike", "challenge"}},
	{"Ambient Piano at Midnight", "Blue Room", "Music", 4210, 2100000, nil, []string{"piano", "ambient"}},
	{"Volcano Eruption Up Close", "Abyss Films", "Nature", 780, 6700000, []model.Badge{model.Badge4K, model.BadgeHot}, []string{"volcano", "documentary"}},
	{"Fixing a Leaky Faucet Properly", "Roam Works", "DIY", 402, 1450000, nil, []string{"plumbing", "home"}},
	{"Perfect Neapolitan Pizza", "Crumb Theory", "Food", 1190, 3800000, []model.Badge{model.BadgeHD}, []string{"pizza", "baking"}},
	{"Co-op Survival Night One", "Frame Perfect", "Gaming", 5400, 720000, []model.Badge{model.BadgeLive}, []string{"survival", "co-op"}},
	{"Drum & Bass Mix Vol. 7", "Pulse Lab", "Music", 3540, 960000, []model.Badge{model.BadgeNew}, []string{"dnb", "mix"}},
	{"Wolves of Yellowstone", "Polar Frame", "Nature", 2650, 1100000, []model.Badge{model.Badge4K}, []string{"wildlife", "wolves"}},
	{"Epoxy River Table Build", "Northwood", "DIY", 1945, 2700000, []model.Badge{model.BadgeHot}, []string{"epoxy", "woodwork"}},
	{"Spicy Noodle Challenge", "Wander Plate", "Food", 655, 4100000, []model.Badge{model.BadgeHot}, []string{"challenge", "noodles"}},
	{"Pixel Art Speed Paint", "Pixel Hearth", "Gaming", 980, 215000, nil, []string{"pixel art", "timelapse"}},
	{"Vinyl Crate Digging in Berlin", "Blue Room", "Music", 1333, 87000, []model.Badge{model.BadgeNew}, []string{"vinyl", "berlin"}},
	{"Glacier Calving in Slow Motion", "Abyss Films", "Nature", 415, 1900000, []model.Badge{model.Badge4K}, []string{"glacier", "slow motion"}},
	{"Off-Grid Solar Explained", "Roam Works", "DIY", 1620, 530000, []model.Badge{model.BadgeHD}, []string{"solar", "off-grid"}},
	{"Croissants, Step by Step", "Crumb Theory", "Food", 1575, 1350000, nil, []string{"pastry", "baking"}},
	{"Tournament Grand Final", "Frame Perfect", "Gaming", 6120, 8800000, []model.Badge{model.BadgeLive, model.BadgeHot}, []string{"esports", "final"}},
	{"Field Recording: City Rain", "Polar Frame", "Nature", 1800, 44000, []model.Badge{model.BadgeNew}, []string{"ambient", "rain"}},
}

var pendingEntries = []struct {
	mockEntry
	status   model.VideoStatus
	progress *int
	eta      *int
}{
	{mockEntry{"Night Market Documentary", "Wander Plate", "Food", 2100, 0, []model.Badge{model.BadgeNew}, []string{"market"}}, model.VideoStatusProcessing, model.Intn(64), nil},
	{mockEntry{"Modular Synth Jam", "Pulse Lab", "Music", 1400, 0, nil, []string{"modular"}}, model.VideoStatusProcessing, model.Intn(12), nil},
	{mockEntry{"Iceland Ring Road Drive", "Polar Frame", "Nature", 5200, 0, []model.Badge{model.Badge4K}, []string{"iceland"}}, model.VideoStatusDiscovered, nil, model.Intn(45)},
	{mockEntry{"Speedrun Route Breakdown", "Frame Perfect", "Gaming", 2600, 0, nil, []string{"speedrun"}}, model.VideoStatusDiscovered, nil, model.Intn(135)},
}

func (e mockEntry) video(n int, status model.VideoStatus) model.Video {
	return model.Video{
		ID:        "v-" + strconv.Itoa(n),
		Title:     e.title,
		Thumbnail: fmt.Sprintf(mockThumbnailTemplate, n),
		Duration:  e.duration,
		Views:     e.views,
		Author:    e.author,
		Status:    status,
		Badges:    e.badges,
		CreatedAt: mockEpoch.Add(-time.Duration(n*7) * time.Hour),
		Category:  e.category,
		Tags:      e.tags,
	}
}

// MockVideos returns the published part of the built-in corpus
func MockVideos() []model.Video {
	videos := make([]model.Video, 0, len(mockEntries))
	for i, e := range mockEntries {
		videos = append(videos, e.video(i+1, model.VideoStatusPublished))
	}
	return videos
}

// ProcessingVideos returns corpus entries that are not published yet
func ProcessingVideos() []model.Video {
	videos := make([]model.Video, 0, len(pendingEntries))
	for i, e := range pendingEntries {
		v := e.video(len(mockEntries)+i+1, e.status)
		v.Progress = e.progress
		v.ETA = e.eta
		videos = append(videos, v)
	}
	return videos
}

// Corpus returns published and pending videos in feed order
func Corpus() []model.Video {
	return append(MockVideos(), ProcessingVideos()...)
}

// DefaultSeed returns the first feed page of the corpus and the token that
// continues right after it
func DefaultSeed() Page {
	page, _ := pageOf(Corpus(), "", DefaultPageSize)
	return page
}

// MockJobs returns the admin board fixtures
func MockJobs() []model.Job {
	started := mockEpoch.Add(-2 * time.Hour)
	completed := mockEpoch.Add(-90 * time.Minute)
	return []model.Job{
		{ID: "job-1", VideoID: "v-37", Status: model.JobStatusProcessing, Attempts: 1, MaxAttempts: 3, Progress: 64, StartedAt: &started},
		{ID: "job-2", VideoID: "v-38", Status: model.JobStatusUploading, Attempts: 1, MaxAttempts: 3, Progress: 12, StartedAt: &started},
		{ID: "job-3", VideoID: "v-39", Status: model.JobStatusPending, Attempts: 0, MaxAttempts: 3},
		{ID: "job-4", VideoID: "v-40", Status: model.JobStatusPending, Attempts: 0, MaxAttempts: 3},
		{ID: "job-5", VideoID: "v-41", Status: model.JobStatusFailed, Attempts: 3, MaxAttempts: 3, Progress: 37, Error: "transcode: unsupported codec", StartedAt: &started},
		{ID: "job-6", VideoID: "v-1", Status: model.JobStatusPublished, Attempts: 1, MaxAttempts: 3, Progress: 100, StartedAt: &started, CompletedAt: &completed},
	}
}

// MockSource pages through an in-memory corpus with simulated latency
type MockSource struct {
	videos   []model.Video
	pageSize int
	delay    time.Duration
}

// NewMockSource creates a mock source over the given videos (the corpus when nil)
func NewMockSource(videos []model.Video) *MockSource {
	if videos == nil {
		videos = Corpus()
	}
	return &MockSource{
		videos:   videos,
		pageSize: DefaultPageSize,
		delay:    DefaultMockDelay,
	}
}

// SetPageSize sets the number of videos per page
func (m *MockSource) SetPageSize(size int) {
	if size < 1 {
		size = 1
	}
	m.pageSize = size
}

// SetDelay sets the simulated latency
func (m *MockSource) SetDelay(delay time.Duration) {
	m.delay = delay
}

// FetchPage returns the page at token after the simulated delay
func (m *MockSource) FetchPage(ctx context.Context, pageToken string) (Page, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Page{}, ctx.Err()
		}
	}
	return pageOf(m.videos, pageToken, m.pageSize)
}
