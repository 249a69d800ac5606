package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/firmdesk/client-portal/internal/core/domain"
)

// lockTTL bounds how long a crashed sync can hold its lock. Generously above
// any realistic delete+recreate duration.
const lockTTL = 30 * time.Second

// SyncLock serializes catalog syncs per service with a Redis advisory lock.
// Key format: synclock:<service_id>
type SyncLock struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewSyncLock(client *redis.Client, log zerolog.Logger) *SyncLock {
	return &SyncLock{client: client, log: log}
}

// Acquire takes the lock for serviceID, returning a release function. When
// the lock is already held it returns domain.ErrSyncInProgress immediately;
// sync is a rare admin action, so callers retry rather than queue.
func (l *SyncLock) Acquire(ctx context.Context, serviceID string) (func(), error) {
	key := l.key(serviceID)

	ok, err := l.client.SetNX(ctx, key, "1", lockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrSyncInProgress
	}

	return func() {
		// Release on a fresh context: the request context may already be
		// cancelled, and the TTL only covers crashes.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.client.Del(releaseCtx, key).Err(); err != nil {
			l.log.Warn().Err(err).Str("service_id", serviceID).Msg("failed to release sync lock, waiting for TTL")
		}
	}, nil
}

func (l *SyncLock) key(serviceID string) string {
	return "synclock:" + serviceID
}
