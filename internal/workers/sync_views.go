package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kstagehub/kstage-backend/domain"
)

const syncViewsInterval = 30 * time.Second

type syncViewsWorker struct {
	ArtistRepo domain.ArtistRepository
	Cache      domain.ArtistCache
}

var _ domain.SyncViewsWorker = (*syncViewsWorker)(nil)

func NewSyncViewsWorker(ar domain.ArtistRepository, cache domain.ArtistCache) *syncViewsWorker {
	return &syncViewsWorker{
		ArtistRepo: ar,
		Cache:      cache,
	}
}

// Start drains the buffered view counters into MySQL on every tick and
// once more on shutdown so pending views survive a restart.
func (s syncViewsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(syncViewsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(ctx)
		case <-ctx.Done():
			logrus.Info("shuting down SyncViewsWorker, flushing remain views...")
			// ctx is already cancelled, give the final flush its own deadline
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			s.flush(flushCtx)
			cancel()
			return
		}
	}
}

func (s syncViewsWorker) flush(ctx context.Context) {
	pending, err := s.Cache.FetchAndResetViews(ctx)
	if err != nil {
		logrus.Errorf("failed to fetch pending views: %v", err)
		return
	}

	for ref, delta := range pending {
		if delta == 0 {
			continue
		}
		if err := s.ArtistRepo.AddViews(ctx, ref, delta); err != nil {
			logrus.Errorf("failed to sync %d views for %s %d: %v", delta, ref.Kind, ref.ID, err)
		}
	}
}
