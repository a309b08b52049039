package maintenance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

func newTestVehicle(mileage int) *entity.Vehicle {
	v := entity.NewVehicle("Kangoo", "EF-456-GH", decimal.NewFromInt(12000), time.Now().UTC(), mileage, "")
	return v
}

func TestAdvanceConfig(t *testing.T) {
	t.Run("uses the entry mileage when present", func(t *testing.T) {
		v := newTestVehicle(50000)
		cfg := entity.NewMaintenanceConfig(v.ID, "Vidange", 10000, 50000, 40000)
		performed := 50200

		AdvanceConfig(cfg, v, &performed)

		if cfg.LastPerformedKm != 50200 {
			t.Errorf("LastPerformedKm = %d, want 50200", cfg.LastPerformedKm)
		}
		if cfg.NextDueKm != 60200 {
			t.Errorf("NextDueKm = %d, want 60200", cfg.NextDueKm)
		}
	})

	t.Run("falls back to the vehicle odometer", func(t *testing.T) {
		v := newTestVehicle(48000)
		cfg := entity.NewMaintenanceConfig(v.ID, "Pneus", 20000, 50000, 30000)

		AdvanceConfig(cfg, v, nil)

		if cfg.LastPerformedKm != 48000 {
			t.Errorf("LastPerformedKm = %d, want 48000", cfg.LastPerformedKm)
		}
		if cfg.NextDueKm != 68000 {
			t.Errorf("NextDueKm = %d, want 68000", cfg.NextDueKm)
		}
	})

	t.Run("keeps the next-due invariant", func(t *testing.T) {
		v := newTestVehicle(31337)
		cfg := entity.NewMaintenanceConfig(v.ID, "Filtre à air", 15000, 40000, 25000)

		AdvanceConfig(cfg, v, nil)

		if cfg.NextDueKm != cfg.LastPerformedKm+cfg.IntervalKm {
			t.Errorf("NextDueKm %d != LastPerformedKm %d + IntervalKm %d",
				cfg.NextDueKm, cfg.LastPerformedKm, cfg.IntervalKm)
		}
	})
}

func TestKmLeft(t *testing.T) {
	cfg := entity.NewMaintenanceConfig(uuid.New(), "Vidange", 10000, 50000, 40000)

	t.Run("positive while under the threshold", func(t *testing.T) {
		if got := cfg.KmLeft(49500); got != 500 {
			t.Errorf("KmLeft(49500) = %d, want 500", got)
		}
	})

	t.Run("negative once overdue", func(t *testing.T) {
		if got := cfg.KmLeft(50200); got != -200 {
			t.Errorf("KmLeft(50200) = %d, want -200", got)
		}
	})
}
