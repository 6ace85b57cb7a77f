// Package format turns raw catalog fields into display strings.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/sosodev/duration"

	"github.com/ytget/voidplay/internal/model"
)

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
	DateLayout       = "2006-01-02"
	TruncateSuffix   = "..."
)

// Tone is a semantic color bucket for statuses
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
)

// Duration formats seconds as m:ss or h:mm:ss
func Duration(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}

	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

// Position formats a fractional playback offset, dropping the sub-second part
func Position(seconds float64) string {
	return Duration(int(seconds))
}

// Views formats a view counter in compact form
func Views(views int64) string {
	switch {
	case views <= 0:
		return "0 views"
	case views < 1000:
		return fmt.Sprintf("%d views", views)
	case views < 1000000:
		return fmt.Sprintf("%.1fK views", float64(views)/1000)
	default:
		return fmt.Sprintf("%.1fM views", float64(views)/1000000)
	}
}

// Count formats an exact counter with thousands separators
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// TimeAgo formats the distance between t and now
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format(DateLayout)
	}
}

// ETA formats the minutes left before a discovered video gets processed
func ETA(minutes int) string {
	if minutes < 1 {
		return "Almost ready"
	}
	if minutes < 60 {
		suffix := ""
		if minutes > 1 {
			suffix = "s"
		}
		return fmt.Sprintf("Coming in %d min%s", minutes, suffix)
	}
	return fmt.Sprintf("Coming in %dh %dm", minutes/60, minutes%60)
}

// Truncate shortens text to maxLength runes and appends an ellipsis
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxLength])) + TruncateSuffix
}

// StatusTone maps a video or job status string to a tone
func StatusTone(status string) Tone {
	switch status {
	case string(model.VideoStatusPublished), "completed":
		return ToneSuccess
	case string(model.VideoStatusProcessing), string(model.JobStatusUploading):
		return ToneInfo
	case string(model.VideoStatusFailed):
		return ToneError
	case string(model.JobStatusPending), string(model.VideoStatusDiscovered):
		return ToneWarning
	default:
		return ToneNeutral
	}
}

// ISODuration converts an ISO-8601 duration such as PT1H2M3S into whole seconds
func ISODuration(value string) (int, error) {
	d, err := duration.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", value, err)
	}
	seconds := d.Seconds + d.Minutes*SecondsPerMinute + d.Hours*SecondsPerHour + d.Days*24*SecondsPerHour
	return int(seconds), nil
}
