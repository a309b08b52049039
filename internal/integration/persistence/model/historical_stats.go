package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// HistoricalStatsModel represents the historical_stats table. The table
// holds a single accumulator row that survives period closes.
type HistoricalStatsModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccumulatedRevenue  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	AccumulatedExpenses decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	AccumulatedProfit   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	LastPurgeDate       *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the HistoricalStatsModel.
func (HistoricalStatsModel) TableName() string {
	return "historical_stats"
}

// ToEntity converts a HistoricalStatsModel to a domain HistoricalStats entity.
func (m *HistoricalStatsModel) ToEntity() *entity.HistoricalStats {
	return &entity.HistoricalStats{
		ID:                  m.ID,
		AccumulatedRevenue:  m.AccumulatedRevenue,
		AccumulatedExpenses: m.AccumulatedExpenses,
		AccumulatedProfit:   m.AccumulatedProfit,
		LastPurgeDate:       m.LastPurgeDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// HistoricalStatsFromEntity creates a HistoricalStatsModel from a domain entity.
func HistoricalStatsFromEntity(s *entity.HistoricalStats) *HistoricalStatsModel {
	return &HistoricalStatsModel{
		ID:                  s.ID,
		AccumulatedRevenue:  s.AccumulatedRevenue,
		AccumulatedExpenses: s.AccumulatedExpenses,
		AccumulatedProfit:   s.AccumulatedProfit,
		LastPurgeDate:       s.LastPurgeDate,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
