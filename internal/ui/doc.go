// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the paged feed grid, the player panel with its up-next queue,
// search, favorites and the admin job board. All UI strings are localized via
// Localization.
package ui
