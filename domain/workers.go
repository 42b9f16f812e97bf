package domain

import "context"

// SyncViewsWorker periodically drains the pending profile view counters
// from the cache and applies them to the database.
type SyncViewsWorker interface {
	Start(ctx context.Context)
}
