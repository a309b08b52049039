package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleet-manager/backend/internal/application/usecase/report"
)

const (
	// snapshotKey is the Redis key holding the serialized report snapshot.
	snapshotKey = "fleet:report:snapshot"

	// changesChannel is the pub/sub channel collections announce writes on.
	changesChannel = "fleet:changes"

	// snapshotTTL bounds staleness if an invalidation message is lost.
	snapshotTTL = 5 * time.Minute
)

// ReportCache is a Redis-backed cache for the derived report snapshot. It
// also implements adapter.ChangePublisher: every repository write publishes
// the changed collection name on the changes channel, and the subscriber
// loop drops the cached snapshot in response. The snapshot is always
// recomputed from scratch, never patched incrementally.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a new Redis-backed report cache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{
		client: client,
	}
}

// Get returns the cached snapshot, or nil when none is stored.
func (c *ReportCache) Get(ctx context.Context) (*report.Snapshot, error) {
	payload, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot report.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set stores the snapshot.
func (c *ReportCache) Set(ctx context.Context, snapshot *report.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, payload, snapshotTTL).Err()
}

// Invalidate drops the stored snapshot.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}

// PublishChange broadcasts that the named collection changed. Publishing is
// best-effort: a failed publish only means the snapshot expires via TTL
// instead of immediately.
func (c *ReportCache) PublishChange(ctx context.Context, collection string) {
	if err := c.client.Publish(ctx, changesChannel, collection).Err(); err != nil {
		slog.Warn("failed to publish change event",
			"collection", collection,
			"error", err)
	}
}

// ListenForChanges subscribes to the changes channel and drops the cached
// snapshot whenever any collection changes. It blocks until ctx is
// cancelled, so callers run it in its own goroutine.
func (c *ReportCache) ListenForChanges(ctx context.Context) {
	pubsub := c.client.Subscribe(ctx, changesChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := c.Invalidate(ctx); err != nil {
				slog.Warn("failed to invalidate report snapshot",
					"collection", msg.Payload,
					"error", err)
			}
		}
	}
}
