// Package feed maintains the paginated video list shown in the grid. The Pager
// appends catalog pages on demand and interleaves sponsored entries; the
// Observer turns scroll proximity into LoadMore calls.
package feed
