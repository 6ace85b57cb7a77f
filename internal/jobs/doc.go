// Package jobs keeps the admin board of ingest jobs: listing, retrying,
// cancelling and the counters shown on the dashboard.
package jobs
