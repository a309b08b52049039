package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/usecase/report"
)

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReportCache(client), mr
}

func TestReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("a miss is reported as nil without error", func(t *testing.T) {
		cache, _ := newTestCache(t)

		snapshot, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if snapshot != nil {
			t.Error("expected nil on a cold cache")
		}
	})

	t.Run("set then get round-trips the snapshot", func(t *testing.T) {
		cache, _ := newTestCache(t)

		stored := &report.Snapshot{
			Revenue:     decimal.NewFromInt(50000),
			NetProfit:   decimal.NewFromInt(42000),
			ActiveCount: 3,
			GeneratedAt: time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC),
		}
		if err := cache.Set(ctx, stored); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got == nil {
			t.Fatal("expected a cached snapshot")
		}
		if !got.Revenue.Equal(stored.Revenue) || !got.NetProfit.Equal(stored.NetProfit) || got.ActiveCount != 3 {
			t.Errorf("cached snapshot differs: %+v", got)
		}
	})

	t.Run("invalidate drops the snapshot", func(t *testing.T) {
		cache, _ := newTestCache(t)

		if err := cache.Set(ctx, &report.Snapshot{Revenue: decimal.NewFromInt(1)}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}

		got, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != nil {
			t.Error("snapshot must be gone after invalidation")
		}
	})

	t.Run("the stored snapshot expires", func(t *testing.T) {
		cache, mr := newTestCache(t)

		if err := cache.Set(ctx, &report.Snapshot{Revenue: decimal.NewFromInt(1)}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		mr.FastForward(snapshotTTL + time.Second)

		got, err := cache.Get(ctx)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != nil {
			t.Error("snapshot must expire after its TTL")
		}
	})

	t.Run("a published change invalidates the snapshot", func(t *testing.T) {
		cache, _ := newTestCache(t)

		listenCtx, stop := context.WithCancel(ctx)
		defer stop()
		go cache.ListenForChanges(listenCtx)

		if err := cache.Set(ctx, &report.Snapshot{Revenue: decimal.NewFromInt(1)}); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			cache.PublishChange(ctx, "entries")
			time.Sleep(10 * time.Millisecond)

			got, err := cache.Get(ctx)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got == nil {
				return
			}
		}
		t.Fatal("snapshot still cached after a change was published")
	})
}
