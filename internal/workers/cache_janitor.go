package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/user-management-api/internal/cache"
	"github.com/MKhiriev/user-management-api/internal/logger"
)

// DefaultSweepInterval is used when no sweep interval is configured.
const DefaultSweepInterval = time.Minute

// CacheJanitor periodically removes expired entries from the users cache.
// Expired entries are also dropped lazily on access; the janitor only keeps
// long-unaccessed entries from accumulating.
type CacheJanitor struct {
	cache    *cache.Users
	interval time.Duration
	logger   *logger.Logger

	ctx context.Context
}

// NewCacheJanitor constructs a janitor sweeping the given cache every
// interval. A non-positive interval falls back to [DefaultSweepInterval].
// The janitor stops when ctx is cancelled.
func NewCacheJanitor(ctx context.Context, usersCache *cache.Users, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &CacheJanitor{
		cache:    usersCache,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
	}
}

// Run starts the sweep loop in a separate goroutine and returns immediately,
// satisfying the [Worker] contract.
func (j *CacheJanitor) Run() {
	j.logger.Info().Dur("interval", j.interval).Msg("cache janitor started")

	go j.loop()
}

func (j *CacheJanitor) loop() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.ctx.Done():
			j.logger.Info().Msg("cache janitor stopped")
			return
		case <-ticker.C:
			if dropped := j.cache.DeleteExpired(); dropped > 0 {
				j.logger.Debug().Int("dropped", dropped).Msg("swept expired cache entries")
			}
		}
	}
}
