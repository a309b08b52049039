// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// HistoricalStatsRepository defines the interface for the historical stats singleton.
type HistoricalStatsRepository interface {
	// Get retrieves the singleton accumulator, or the domain not-found
	// error when no period has been closed yet.
	Get(ctx context.Context) (*entity.HistoricalStats, error)

	// Save creates or replaces the singleton accumulator.
	Save(ctx context.Context, stats *entity.HistoricalStats) error
}
