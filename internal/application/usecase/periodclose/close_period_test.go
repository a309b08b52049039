package periodclose

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/application/usecase/report"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

type stubEntryRepo struct {
	entries       []*entity.FinancialEntry
	failDeleteAll bool
}

func (s *stubEntryRepo) Create(_ context.Context, e *entity.FinancialEntry) error {
	s.entries = append(s.entries, e)
	return nil
}

func (s *stubEntryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.FinancialEntry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrEntryNotFound
}

func (s *stubEntryRepo) FindAll(_ context.Context) ([]*entity.FinancialEntry, error) {
	return s.entries, nil
}

func (s *stubEntryRepo) FindByFilter(_ context.Context, _ adapter.EntryFilter) ([]*entity.FinancialEntry, error) {
	return s.entries, nil
}

func (s *stubEntryRepo) Update(_ context.Context, _ *entity.FinancialEntry) error { return nil }

func (s *stubEntryRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubEntryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}

func (s *stubEntryRepo) DeleteAll(_ context.Context) error {
	if s.failDeleteAll {
		return errors.New("connection reset")
	}
	s.entries = nil
	return nil
}

type stubExpenseRepo struct {
	expenses []*entity.GlobalExpense
}

func (s *stubExpenseRepo) Create(_ context.Context, e *entity.GlobalExpense) error {
	s.expenses = append(s.expenses, e)
	return nil
}

func (s *stubExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.GlobalExpense, error) {
	return nil, domainerror.ErrGlobalExpenseNotFound
}

func (s *stubExpenseRepo) FindAll(_ context.Context) ([]*entity.GlobalExpense, error) {
	return s.expenses, nil
}

func (s *stubExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubExpenseRepo) DeleteAll(_ context.Context) error {
	s.expenses = nil
	return nil
}

type stubNotificationRepo struct {
	notifications []*entity.Notification
}

func (s *stubNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	s.notifications = append(s.notifications, n)
	return nil
}

func (s *stubNotificationRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Notification, error) {
	return nil, domainerror.ErrNotificationNotFound
}

func (s *stubNotificationRepo) FindActive(_ context.Context) ([]*entity.Notification, error) {
	return s.notifications, nil
}

func (s *stubNotificationRepo) FindAll(_ context.Context) ([]*entity.Notification, error) {
	return s.notifications, nil
}

func (s *stubNotificationRepo) FindActiveMaintenance(_ context.Context, _ uuid.UUID, _ string) (*entity.Notification, error) {
	return nil, domainerror.ErrNotificationNotFound
}

func (s *stubNotificationRepo) ExistsActiveMaintenance(_ context.Context, _ uuid.UUID, _ string, _ int) (bool, error) {
	return false, nil
}

func (s *stubNotificationRepo) ExistsActiveSaturation(_ context.Context) (bool, error) {
	return false, nil
}

func (s *stubNotificationRepo) Archive(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (s *stubNotificationRepo) DeleteAll(_ context.Context) error {
	s.notifications = nil
	return nil
}

type stubMessageRepo struct {
	messages []*entity.Message
}

func (s *stubMessageRepo) Create(_ context.Context, m *entity.Message) error {
	s.messages = append(s.messages, m)
	return nil
}

func (s *stubMessageRepo) FindAll(_ context.Context) ([]*entity.Message, error) {
	return s.messages, nil
}

func (s *stubMessageRepo) DeleteAll(_ context.Context) error {
	s.messages = nil
	return nil
}

type stubUserRepo struct {
	users []*entity.User
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	s.users = append(s.users, u)
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	return s.users, nil
}

func (s *stubUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func (s *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type stubVehicleRepo struct {
	vehicles []*entity.Vehicle
}

func (s *stubVehicleRepo) Create(_ context.Context, v *entity.Vehicle) error {
	s.vehicles = append(s.vehicles, v)
	return nil
}

func (s *stubVehicleRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Vehicle, error) {
	return nil, domainerror.ErrVehicleNotFound
}

func (s *stubVehicleRepo) FindAll(_ context.Context) ([]*entity.Vehicle, error) {
	return s.vehicles, nil
}

func (s *stubVehicleRepo) Update(_ context.Context, _ *entity.Vehicle) error { return nil }

func (s *stubVehicleRepo) AddConfig(_ context.Context, _ *entity.MaintenanceConfig) error {
	return nil
}

func (s *stubVehicleRepo) SaveConfig(_ context.Context, _ *entity.MaintenanceConfig) error {
	return nil
}

type stubCashDeskRepo struct {
	desks []*entity.CashDesk
}

func (s *stubCashDeskRepo) Create(_ context.Context, d *entity.CashDesk) error {
	s.desks = append(s.desks, d)
	return nil
}

func (s *stubCashDeskRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.CashDesk, error) {
	return nil, domainerror.ErrCashDeskNotFound
}

func (s *stubCashDeskRepo) FindByUser(_ context.Context, _ uuid.UUID) (*entity.CashDesk, error) {
	return nil, domainerror.ErrCashDeskNotFound
}

func (s *stubCashDeskRepo) FindAll(_ context.Context) ([]*entity.CashDesk, error) {
	return s.desks, nil
}

func (s *stubCashDeskRepo) AdjustBalance(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}

type stubStatsRepo struct {
	stats *entity.HistoricalStats
	saved int
}

func (s *stubStatsRepo) Get(_ context.Context) (*entity.HistoricalStats, error) {
	if s.stats == nil {
		return nil, domainerror.ErrHistoricalStatsNotFound
	}
	return s.stats, nil
}

func (s *stubStatsRepo) Save(_ context.Context, stats *entity.HistoricalStats) error {
	s.stats = stats
	s.saved++
	return nil
}

type spyCache struct {
	invalidated int
}

func (c *spyCache) Get(_ context.Context) (*report.Snapshot, error) { return nil, nil }
func (c *spyCache) Set(_ context.Context, _ *report.Snapshot) error { return nil }
func (c *spyCache) Invalidate(_ context.Context) error {
	c.invalidated++
	return nil
}

type fixture struct {
	uc           *ClosePeriodUseCase
	entryRepo    *stubEntryRepo
	expenseRepo  *stubExpenseRepo
	notifRepo    *stubNotificationRepo
	messageRepo  *stubMessageRepo
	userRepo     *stubUserRepo
	vehicleRepo  *stubVehicleRepo
	cashDeskRepo *stubCashDeskRepo
	statsRepo    *stubStatsRepo
	cache        *spyCache
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		entryRepo:    &stubEntryRepo{},
		expenseRepo:  &stubExpenseRepo{},
		notifRepo:    &stubNotificationRepo{},
		messageRepo:  &stubMessageRepo{},
		userRepo:     &stubUserRepo{},
		vehicleRepo:  &stubVehicleRepo{},
		cashDeskRepo: &stubCashDeskRepo{},
		statsRepo:    &stubStatsRepo{},
		cache:        &spyCache{},
	}

	getReport := report.NewGetReportUseCase(
		f.entryRepo, f.expenseRepo, f.vehicleRepo, f.cashDeskRepo, f.statsRepo, nil,
	).WithClock(func() time.Time { return now })

	f.uc = NewClosePeriodUseCase(
		getReport, f.statsRepo, f.userRepo, f.entryRepo, f.expenseRepo,
		f.notifRepo, f.messageRepo, f.cache,
	).WithClock(func() time.Time { return now })

	return f
}

func approvedEntry(entryType entity.EntryType, amount int64, day time.Time) *entity.FinancialEntry {
	return entity.NewFinancialEntry(entryType, entity.EntryStatusApproved,
		decimal.NewFromInt(amount), day, "entry", "Agent", uuid.Nil)
}

func TestClosePeriodUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

	t.Run("requires explicit confirmation", func(t *testing.T) {
		f := newFixture(now)

		_, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: false})
		if !errors.Is(err, domainerror.ErrConfirmationRequired) {
			t.Errorf("error = %v, want ErrConfirmationRequired", err)
		}
		if f.statsRepo.saved != 0 {
			t.Error("nothing may be written without confirmation")
		}
	})

	t.Run("folds the period into the accumulators and purges", func(t *testing.T) {
		f := newFixture(now)
		f.entryRepo.entries = []*entity.FinancialEntry{
			approvedEntry(entity.EntryTypeRevenue, 30000, now.AddDate(0, 0, -10)),
			approvedEntry(entity.EntryTypeExpenseSimple, 5000, now.AddDate(0, 0, -9)),
		}
		f.expenseRepo.expenses = []*entity.GlobalExpense{
			entity.NewGlobalExpense("Rent", decimal.NewFromInt(3000), now.AddDate(0, 0, -8), uuid.Nil),
		}
		f.notifRepo.notifications = []*entity.Notification{entity.NewSaturationNotification("full")}
		f.messageRepo.messages = []*entity.Message{entity.NewMessage(uuid.New(), "Karim", "salut")}
		f.vehicleRepo.vehicles = []*entity.Vehicle{
			entity.NewVehicle("Clio 4", "AB-123-CD", decimal.NewFromInt(9000), now.AddDate(-1, 0, 0), 30000, ""),
		}
		desk := entity.NewCashDesk(uuid.New())
		f.cashDeskRepo.desks = []*entity.CashDesk{desk}

		out, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: true})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if !out.Historical.AccumulatedRevenue.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("AccumulatedRevenue = %s, want 30000", out.Historical.AccumulatedRevenue)
		}
		if !out.Historical.AccumulatedExpenses.Equal(decimal.NewFromInt(8000)) {
			t.Errorf("AccumulatedExpenses = %s, want 8000", out.Historical.AccumulatedExpenses)
		}
		if !out.Historical.AccumulatedProfit.Equal(decimal.NewFromInt(22000)) {
			t.Errorf("AccumulatedProfit = %s, want 22000", out.Historical.AccumulatedProfit)
		}
		if out.Historical.LastPurgeDate == nil || !out.Historical.LastPurgeDate.Equal(now) {
			t.Errorf("LastPurgeDate = %v, want %v", out.Historical.LastPurgeDate, now)
		}

		if len(f.entryRepo.entries) != 0 {
			t.Error("entries must be purged")
		}
		if len(f.expenseRepo.expenses) != 0 {
			t.Error("global expenses must be purged")
		}
		if len(f.notifRepo.notifications) != 0 {
			t.Error("notifications must be purged")
		}
		if len(f.messageRepo.messages) != 0 {
			t.Error("messages must be purged")
		}

		if len(f.vehicleRepo.vehicles) != 1 {
			t.Error("vehicles must survive the close")
		}
		if len(f.cashDeskRepo.desks) != 1 {
			t.Error("cash desks must survive the close")
		}
		if f.statsRepo.saved != 1 {
			t.Errorf("stats saved %d times, want 1", f.statsRepo.saved)
		}
		if f.cache.invalidated != 1 {
			t.Errorf("cache invalidated %d times, want 1", f.cache.invalidated)
		}
	})

	t.Run("a second close compounds the carried revenue", func(t *testing.T) {
		f := newFixture(now)
		f.entryRepo.entries = []*entity.FinancialEntry{
			approvedEntry(entity.EntryTypeRevenue, 10000, now.AddDate(0, 0, -5)),
		}

		if _, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: true}); err != nil {
			t.Fatalf("first close: %v", err)
		}

		f.entryRepo.entries = []*entity.FinancialEntry{
			approvedEntry(entity.EntryTypeRevenue, 2000, now.AddDate(0, 0, -1)),
		}
		out, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: true})
		if err != nil {
			t.Fatalf("second close: %v", err)
		}

		// The second snapshot's revenue (2000 + carried 10000) is added on
		// top of the stored 10000. The prior carry is counted twice.
		if !out.Historical.AccumulatedRevenue.Equal(decimal.NewFromInt(22000)) {
			t.Errorf("AccumulatedRevenue = %s, want 22000", out.Historical.AccumulatedRevenue)
		}
	})

	t.Run("deactivates dormant agents but never admins", func(t *testing.T) {
		f := newFixture(now)

		admin := entity.NewUser("admin@fleet.test", "Nora", "x", entity.UserRoleAdmin)
		dormant := entity.NewUser("idle@fleet.test", "Sami", "x", entity.UserRoleAgent)
		old := now.AddDate(0, 0, -90)
		dormant.LastLogin = &old
		neverSeen := entity.NewUser("new@fleet.test", "Lea", "x", entity.UserRoleAgent)
		recent := entity.NewUser("active@fleet.test", "Karim", "x", entity.UserRoleAgent)
		fresh := now.AddDate(0, 0, -3)
		recent.LastLogin = &fresh

		f.userRepo.users = []*entity.User{admin, dormant, neverSeen, recent}

		out, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: true})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.DeactivatedUsers != 2 {
			t.Errorf("DeactivatedUsers = %d, want 2", out.DeactivatedUsers)
		}
		if !admin.Active {
			t.Error("admins are never deactivated")
		}
		if dormant.Active {
			t.Error("dormant agent must be deactivated")
		}
		if neverSeen.Active {
			t.Error("an agent with no recorded login must be deactivated")
		}
		if !recent.Active {
			t.Error("recently seen agent must stay active")
		}
	})

	t.Run("a failed purge names the step and what already ran", func(t *testing.T) {
		f := newFixture(now)
		f.entryRepo.failDeleteAll = true

		_, err := f.uc.Execute(ctx, ClosePeriodInput{Confirmed: true})

		var closeErr *domainerror.PeriodCloseError
		if !errors.As(err, &closeErr) {
			t.Fatalf("error = %v, want PeriodCloseError", err)
		}
		if closeErr.FailedStep != "purge entries" {
			t.Errorf("FailedStep = %q, want %q", closeErr.FailedStep, "purge entries")
		}

		found := false
		for _, step := range closeErr.CompletedSteps {
			if step == "deactivate dormant users" {
				found = true
			}
		}
		if !found {
			t.Errorf("CompletedSteps = %v, must include the user deactivation", closeErr.CompletedSteps)
		}

		if f.statsRepo.saved != 0 {
			t.Error("the accumulators must not persist after a failed purge")
		}
	})
}
