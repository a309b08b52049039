// Package report contains financial reporting use cases.
package report

import "context"

// Cache stores the last derived snapshot. Implementations drop the stored
// snapshot whenever any collection changes; the snapshot is never patched
// in place. A cache miss is reported as (nil, nil).
type Cache interface {
	// Get returns the cached snapshot, or nil when none is stored.
	Get(ctx context.Context) (*Snapshot, error)

	// Set stores the snapshot.
	Set(ctx context.Context, snapshot *Snapshot) error

	// Invalidate drops the stored snapshot.
	Invalidate(ctx context.Context) error
}
