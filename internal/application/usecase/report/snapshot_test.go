package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testEntry(entryType entity.EntryType, status entity.EntryStatus, amount int64, day time.Time) *entity.FinancialEntry {
	e := entity.NewFinancialEntry(entryType, status, money(amount), day, "test entry", "Agent", uuid.Nil)
	return e
}

func testVehicle(purchase int64, registered time.Time) *entity.Vehicle {
	return entity.NewVehicle("Clio 4", "AB-123-CD", money(purchase), registered, 10000, "")
}

func TestBuildSnapshot(t *testing.T) {
	now := date(2024, time.June, 15)

	t.Run("computes the core totals", func(t *testing.T) {
		v := testVehicle(80000, date(2023, time.June, 15))
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 30000, date(2024, time.May, 2)),
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusPending, 20000, date(2024, time.May, 3)),
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusApproved, 3000, date(2024, time.May, 4)),
				testEntry(entity.EntryTypeExpenseMaintenance, entity.EntryStatusApproved, 2000, date(2024, time.May, 5)),
			},
			GlobalExpenses: []*entity.GlobalExpense{
				entity.NewGlobalExpense("Rent", money(3000), date(2024, time.May, 1), uuid.Nil),
			},
			Vehicles: []*entity.Vehicle{v},
			Now:      now,
		}

		s := BuildSnapshot(in)

		if !s.Revenue.Equal(money(50000)) {
			t.Errorf("Revenue = %s, want 50000", s.Revenue)
		}
		if !s.Expenses.Equal(money(5000)) {
			t.Errorf("Expenses = %s, want 5000", s.Expenses)
		}
		if !s.GlobalExpenses.Equal(money(3000)) {
			t.Errorf("GlobalExpenses = %s, want 3000", s.GlobalExpenses)
		}
		if !s.TotalExpenses.Equal(money(8000)) {
			t.Errorf("TotalExpenses = %s, want 8000", s.TotalExpenses)
		}
		if !s.NetProfit.Equal(money(42000)) {
			t.Errorf("NetProfit = %s, want 42000", s.NetProfit)
		}
		if s.ActiveCount != 1 {
			t.Errorf("ActiveCount = %d, want 1", s.ActiveCount)
		}
	})

	t.Run("pending entries count, rejected entries never do", func(t *testing.T) {
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusPending, 100, now),
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusRejected, 900, now),
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusRejected, 400, now),
			},
			Now: now,
		}

		s := BuildSnapshot(in)

		if !s.Revenue.Equal(money(100)) {
			t.Errorf("Revenue = %s, want 100", s.Revenue)
		}
		if !s.Expenses.Equal(money(0)) {
			t.Errorf("Expenses = %s, want 0", s.Expenses)
		}
	})

	t.Run("funding is neither revenue nor expense", func(t *testing.T) {
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeFunding, entity.EntryStatusApproved, 5000, now),
			},
			Now: now,
		}

		s := BuildSnapshot(in)

		if !s.Revenue.Equal(money(0)) || !s.TotalExpenses.Equal(money(0)) {
			t.Errorf("funding leaked into totals: revenue %s, expenses %s", s.Revenue, s.TotalExpenses)
		}
	})

	t.Run("carries forward the historical accumulators", func(t *testing.T) {
		hist := entity.NewHistoricalStats()
		hist.AccumulatedRevenue = money(10000)
		hist.AccumulatedExpenses = money(4000)

		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 1000, now),
			},
			Historical: hist,
			Now:        now,
		}

		s := BuildSnapshot(in)

		if !s.Revenue.Equal(money(11000)) {
			t.Errorf("Revenue = %s, want 11000", s.Revenue)
		}
		if !s.TotalExpenses.Equal(money(4000)) {
			t.Errorf("TotalExpenses = %s, want 4000", s.TotalExpenses)
		}
	})

	t.Run("today buckets only include entries dated today", func(t *testing.T) {
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 700, now),
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusApproved, 200, now),
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 9999, now.AddDate(0, 0, -1)),
			},
			Now: now,
		}

		s := BuildSnapshot(in)

		if !s.TodayRevenue.Equal(money(700)) {
			t.Errorf("TodayRevenue = %s, want 700", s.TodayRevenue)
		}
		if !s.TodayExpenses.Equal(money(200)) {
			t.Errorf("TodayExpenses = %s, want 200", s.TodayExpenses)
		}
		if !s.TodayProfit.Equal(money(500)) {
			t.Errorf("TodayProfit = %s, want 500", s.TodayProfit)
		}
	})

	t.Run("sale loss counts only after the sale has matured", func(t *testing.T) {
		salePrice := money(60000)

		mature := testVehicle(80000, date(2023, time.January, 1))
		mature.Archived = true
		mature.SalePrice = &salePrice
		saleDate := date(2024, time.February, 10)
		mature.SaleDate = &saleDate

		recentPrice := money(50000)
		recent := testVehicle(55000, date(2023, time.January, 1))
		recent.Archived = true
		recent.SalePrice = &recentPrice
		recentSale := date(2024, time.May, 20)
		recent.SaleDate = &recentSale

		in := SnapshotInput{
			Vehicles: []*entity.Vehicle{mature, recent},
			Now:      now,
		}

		s := BuildSnapshot(in)

		// Only the matured sale's loss (80000 - 60000) is recognized.
		if !s.NetProfit.Equal(money(-20000)) {
			t.Errorf("NetProfit = %s, want -20000", s.NetProfit)
		}
	})

	t.Run("simulated resale price never enters the aggregation", func(t *testing.T) {
		sim := money(1)
		v := testVehicle(80000, date(2023, time.January, 1))
		v.SimulatedResalePrice = &sim

		s := BuildSnapshot(SnapshotInput{Vehicles: []*entity.Vehicle{v}, Now: now})

		if !s.NetProfit.Equal(money(0)) {
			t.Errorf("NetProfit = %s, want 0", s.NetProfit)
		}
	})

	t.Run("cost per vehicle divides by matured active vehicles", func(t *testing.T) {
		matureA := testVehicle(1, date(2023, time.June, 1))
		matureB := testVehicle(1, date(2023, time.July, 1))
		fresh := testVehicle(1, date(2024, time.June, 1))

		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusApproved, 600, now),
			},
			Vehicles: []*entity.Vehicle{matureA, matureB, fresh},
			Now:      now,
		}

		s := BuildSnapshot(in)

		if s.ActiveCount != 3 {
			t.Errorf("ActiveCount = %d, want 3", s.ActiveCount)
		}
		if !s.CostPerVehicle.Equal(money(300)) {
			t.Errorf("CostPerVehicle = %s, want 300", s.CostPerVehicle)
		}
	})

	t.Run("divisors are floored at one for an empty fleet", func(t *testing.T) {
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusApproved, 250, now),
			},
			Now: now,
		}

		s := BuildSnapshot(in)

		if s.FinalMonths != 1 {
			t.Errorf("FinalMonths = %d, want 1", s.FinalMonths)
		}
		if !s.CostPerVehicle.Equal(money(250)) {
			t.Errorf("CostPerVehicle = %s, want 250", s.CostPerVehicle)
		}
	})

	t.Run("monthly profit divides by months since earliest registration", func(t *testing.T) {
		v := testVehicle(1, date(2024, time.February, 15))

		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 4000, now),
			},
			Vehicles: []*entity.Vehicle{v},
			Now:      now,
		}

		s := BuildSnapshot(in)

		if s.FinalMonths != 4 {
			t.Errorf("FinalMonths = %d, want 4", s.FinalMonths)
		}
		if !s.MonthlyProfit.Equal(money(1000)) {
			t.Errorf("MonthlyProfit = %s, want 1000", s.MonthlyProfit)
		}
	})

	t.Run("cash on hand sums every desk balance", func(t *testing.T) {
		deskA := entity.NewCashDesk(uuid.New())
		deskA.Balance = money(150)
		deskB := entity.NewCashDesk(uuid.New())
		deskB.Balance = money(-40)

		s := BuildSnapshot(SnapshotInput{CashDesks: []*entity.CashDesk{deskA, deskB}, Now: now})

		if !s.CashOnHand.Equal(money(110)) {
			t.Errorf("CashOnHand = %s, want 110", s.CashOnHand)
		}
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		in := SnapshotInput{
			Entries: []*entity.FinancialEntry{
				testEntry(entity.EntryTypeRevenue, entity.EntryStatusApproved, 1234, now),
				testEntry(entity.EntryTypeExpenseSimple, entity.EntryStatusPending, 567, now),
			},
			Vehicles: []*entity.Vehicle{testVehicle(9000, date(2024, time.January, 1))},
			Now:      now,
		}

		a := BuildSnapshot(in)
		b := BuildSnapshot(in)

		if !a.NetProfit.Equal(b.NetProfit) || !a.Revenue.Equal(b.Revenue) ||
			!a.MonthlyProfit.Equal(b.MonthlyProfit) || a.FinalMonths != b.FinalMonths {
			t.Error("two builds over the same input disagree")
		}
		if !a.GeneratedAt.Equal(b.GeneratedAt) {
			t.Error("GeneratedAt must come from the input clock")
		}
	})
}
