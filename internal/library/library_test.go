package library

import (
	"errors"
	"testing"
	"time"

	"github.com/ytget/voidplay/internal/model"
)

func newTestLibrary() *Library {
	l := New()
	clock := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return l
}

func TestToggleFavorite(t *testing.T) {
	l := newTestLibrary()
	a := model.Video{ID: "a"}
	b := model.Video{ID: "b"}

	if !l.ToggleFavorite(a) {
		t.Error("expected a to become a favorite")
	}
	l.ToggleFavorite(b)

	favorites := l.Favorites()
	if len(favorites) != 2 || favorites[0].ID != "b" || favorites[1].ID != "a" {
		t.Errorf("expected [b a], got %v", favorites)
	}

	if l.ToggleFavorite(a) {
		t.Error("expected a to be removed")
	}
	if l.IsFavorite("a") || !l.IsFavorite("b") {
		t.Error("unexpected favorite state")
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name    string
		reason  ReportReason
		wantErr error
	}{
		{name: "spam", reason: ReasonSpam},
		{name: "copyright", reason: ReasonCopyright},
		{name: "unknown reason", reason: "boring", wantErr: ErrInvalidReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLibrary()
			report, err := l.Report("v-1", tt.reason, "  see title  ")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if l.IsReported("v-1") {
					t.Error("expected no report stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if report.Note != "see title" || report.Reason != tt.reason {
				t.Errorf("unexpected report %+v", report)
			}
			if !l.IsReported("v-1") {
				t.Error("expected video to be reported")
			}
		})
	}
}

func TestReportOnce(t *testing.T) {
	l := newTestLibrary()
	if _, err := l.Report("v-1", ReasonSpam, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.Report("v-1", ReasonOther, ""); !errors.Is(err, ErrAlreadyReported) {
		t.Errorf("expected ErrAlreadyReported, got %v", err)
	}
	if _, err := l.Report("v-2", ReasonOther, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reports := l.Reports()
	if len(reports) != 2 || reports[0].VideoID != "v-1" || reports[1].VideoID != "v-2" {
		t.Errorf("expected reports in order, got %v", reports)
	}
}

func TestUpdateCallback(t *testing.T) {
	l := newTestLibrary()
	calls := 0
	l.SetUpdateCallback(func() { calls++ })

	l.ToggleFavorite(model.Video{ID: "a"})
	_, _ = l.Report("a", ReasonSpam, "")
	_, _ = l.Report("a", ReasonSpam, "")

	if calls != 2 {
		t.Errorf("expected 2 updates, got %d", calls)
	}
}
