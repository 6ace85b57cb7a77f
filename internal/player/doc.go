// Package player implements the preview player session: current video,
// playback flags, the up-next queue and the autoplay countdown that moves to
// the next queued video.
package player
