// Package report contains financial reporting use cases.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// Snapshot is the read-only set of financial KPIs derived from the current
// collections plus the carried-forward history. It is re-derived on every
// build; nothing in it is authoritative state.
type Snapshot struct {
	Revenue        decimal.Decimal `json:"revenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	GlobalExpenses decimal.Decimal `json:"globalExpenses"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	MonthlyProfit  decimal.Decimal `json:"monthlyProfit"`
	ActiveCount    int             `json:"activeCount"`
	CostPerVehicle decimal.Decimal `json:"costPerVehicle"`
	FinalMonths    int             `json:"finalMonths"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
	TodayExpenses  decimal.Decimal `json:"todayExpenses"`
	TodayProfit    decimal.Decimal `json:"todayProfit"`
	CashOnHand     decimal.Decimal `json:"cashOnHand"`
	GeneratedAt    time.Time       `json:"generatedAt"`
}

// SnapshotInput carries the collections the aggregation reads. The
// historical stats may be nil when no period has been closed yet.
type SnapshotInput struct {
	Entries        []*entity.FinancialEntry
	GlobalExpenses []*entity.GlobalExpense
	Vehicles       []*entity.Vehicle
	CashDesks      []*entity.CashDesk
	Historical     *entity.HistoricalStats
	Now            time.Time
}

// BuildSnapshot computes the financial KPIs. It is pure: no side effects,
// identical output for identical input.
func BuildSnapshot(in SnapshotInput) *Snapshot {
	histRevenue := decimal.Zero
	histExpenses := decimal.Zero
	if in.Historical != nil {
		histRevenue = in.Historical.AccumulatedRevenue
		histExpenses = in.Historical.AccumulatedExpenses
	}

	today := dateOnly(in.Now)

	periodRevenue := decimal.Zero
	vehicleExpenses := decimal.Zero
	todayRevenue := decimal.Zero
	todayExpenses := decimal.Zero

	for _, e := range in.Entries {
		// Rejected entries never contribute to any total.
		if e.Status == entity.EntryStatusRejected {
			continue
		}

		switch {
		case e.Type == entity.EntryTypeRevenue:
			periodRevenue = periodRevenue.Add(e.Amount)
		case e.IsExpense():
			vehicleExpenses = vehicleExpenses.Add(e.Amount)
		}

		if dateOnly(e.Date).Equal(today) {
			if e.Type == entity.EntryTypeRevenue {
				todayRevenue = todayRevenue.Add(e.Amount)
			} else if e.IsExpense() {
				todayExpenses = todayExpenses.Add(e.Amount)
			}
		}
	}

	globalExpensesTotal := decimal.Zero
	for _, g := range in.GlobalExpenses {
		globalExpensesTotal = globalExpensesTotal.Add(g.Amount)
	}

	revenue := periodRevenue.Add(histRevenue)
	totalExpenses := vehicleExpenses.Add(globalExpensesTotal).Add(histExpenses)
	operatingProfit := revenue.Sub(totalExpenses)

	// Sale-loss recognition: only archived, sold vehicles whose sale date
	// has matured contribute. Unsold or not-yet-accountable sales add nothing.
	purchaseSum := decimal.Zero
	saleSum := decimal.Zero
	activeCount := 0
	matureCount := 0
	var earliestRegistration *time.Time

	for _, v := range in.Vehicles {
		if !v.Archived {
			activeCount++
			if IsAccountable(v.RegistrationDate, in.Now) {
				matureCount++
			}
		}
		if v.IsSold() && IsAccountable(*v.SaleDate, in.Now) {
			purchaseSum = purchaseSum.Add(v.PurchasePrice)
			saleSum = saleSum.Add(*v.SalePrice)
		}
		reg := v.RegistrationDate
		if earliestRegistration == nil || reg.Before(*earliestRegistration) {
			earliestRegistration = &reg
		}
	}

	lossOnPastSales := purchaseSum.Sub(saleSum)
	netProfit := operatingProfit.Sub(lossOnPastSales)

	months := 0
	if earliestRegistration != nil {
		months = wholeMonthsBetween(*earliestRegistration, in.Now)
	}
	finalMonths := months
	if finalMonths < 1 {
		finalMonths = 1
	}
	monthlyProfit := netProfit.Div(decimal.NewFromInt(int64(finalMonths)))

	divisor := matureCount
	if divisor < 1 {
		divisor = 1
	}
	costPerVehicle := totalExpenses.Div(decimal.NewFromInt(int64(divisor)))

	cashOnHand := decimal.Zero
	for _, d := range in.CashDesks {
		cashOnHand = cashOnHand.Add(d.Balance)
	}

	return &Snapshot{
		Revenue:        revenue,
		Expenses:       vehicleExpenses,
		GlobalExpenses: globalExpensesTotal,
		TotalExpenses:  totalExpenses,
		NetProfit:      netProfit,
		MonthlyProfit:  monthlyProfit,
		ActiveCount:    activeCount,
		CostPerVehicle: costPerVehicle,
		FinalMonths:    finalMonths,
		TodayRevenue:   todayRevenue,
		TodayExpenses:  todayExpenses,
		TodayProfit:    todayRevenue.Sub(todayExpenses),
		CashOnHand:     cashOnHand,
		GeneratedAt:    in.Now,
	}
}
